package controller

import (
	"strconv"

	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// CatalogController 考务目录只读接口
// 共享账号评分前要先选定申报的 grader，评分端从这里取目录。
type CatalogController struct {
	Graders  *repository.GraderRepository
	Sessions *repository.ExamSessionRepository
}

func NewCatalogController(graders *repository.GraderRepository, sessions *repository.ExamSessionRepository) *CatalogController {
	return &CatalogController{Graders: graders, Sessions: sessions}
}

// @Summary 评分人目录
// @Tags 目录
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/examiner/graders [get]
func (c *CatalogController) ListGraders(ctx *gin.Context) {
	graders, err := c.Graders.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, graders)
}

// @Summary 按考链列出考生场次
// @Tags 目录
// @Produce json
// @Security BearerAuth
// @Param chainId path int true "考链ID"
// @Success 200 {object} util.Response
// @Router /api/examiner/chains/{chainId}/sessions [get]
func (c *CatalogController) ListChainSessions(ctx *gin.Context) {
	chainID, err := strconv.Atoi(ctx.Param("chainId"))
	if err != nil {
		util.BadRequest(ctx, "invalid chain id")
		return
	}

	sessions, err := c.Sessions.ListByChain(uint(chainID))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, sessions)
}
