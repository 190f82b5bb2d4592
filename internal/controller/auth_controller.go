package controller

import (
	"station_exam_backend/internal/service"
	"station_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService  *service.AuthService
	ScopeService *service.ScopeService
}

func NewAuthController(authService *service.AuthService, scopeService *service.ScopeService) *AuthController {
	return &AuthController{AuthService: authService, ScopeService: scopeService}
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// @Summary 登录
// @Tags 认证
// @Accept json
// @Produce json
// @Param body body loginRequest true "登录凭据"
// @Success 200 {object} util.Response
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, account, err := c.AuthService.Login(req.Username, req.Password)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"token":   token,
		"account": account,
	})
}

// @Summary 当前账号及其评分授权范围
// @Tags 认证
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	account, err := c.AuthService.GetAccount(user.AccountID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	resp := gin.H{"account": account}

	// 管理员不配置范围，考官缺范围属于配置问题，由前端提示
	if !user.IsAdmin() {
		scope, err := c.ScopeService.Resolve(user.AccountID)
		if err == nil {
			resp["scope"] = scope
		}
	}

	util.Success(ctx, resp)
}
