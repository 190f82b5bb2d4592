package app

import (
	"station_exam_backend/docs"
	"station_exam_backend/internal/config"
	"station_exam_backend/internal/middleware"
	"station_exam_backend/internal/model"
	"station_exam_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		// 考官评分端（管理员对考官接口天然放行）
		examiner := authGroup.Group("/examiner")
		examiner.Use(middleware.RoleMiddleware(model.Examiner))
		{
			examiner.POST("/scores", c.score.Submit)
			examiner.GET("/scores/:sessionId/:stationId", c.score.Get)
			examiner.GET("/rubrics/resolve", c.rubric.Resolve)
			examiner.GET("/graders", c.catalog.ListGraders)
			examiner.GET("/chains/:chainId/sessions", c.catalog.ListChainSessions)
			examiner.POST("/regrades", c.regrade.Request)
			examiner.GET("/regrades/:id", c.regrade.Get)
		}

		// 管理端
		admin := authGroup.Group("/admin")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/regrades/pending", c.regrade.ListPending)
			admin.POST("/regrades/:id/decision", c.regrade.Decide)
			admin.GET("/scores/:sessionId/:stationId", c.score.Get)
		}
	}
}
