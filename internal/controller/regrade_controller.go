package controller

import (
	"station_exam_backend/internal/model"
	"station_exam_backend/internal/service"
	"station_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RegradeController struct {
	RegradeService *service.RegradeService
}

func NewRegradeController(regradeService *service.RegradeService) *RegradeController {
	return &RegradeController{RegradeService: regradeService}
}

// @Summary 申请复评
// @Description 目标成绩必须处于锁定状态；同键已有待审申请时返回该申请
// @Tags 复评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.RegradeRequestInput true "复评申请"
// @Success 201 {object} util.Response
// @Success 200 {object} util.Response "已有待审申请"
// @Router /api/examiner/regrades [post]
func (c *RegradeController) Request(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var input service.RegradeRequestInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.RegradeService.Request(user, &input)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	if result.Duplicate {
		util.Success(ctx, result)
		return
	}
	util.Created(ctx, result)
}

// @Summary 查询复评申请
// @Description 申请方轮询决议进度
// @Tags 复评
// @Produce json
// @Security BearerAuth
// @Param id path string true "申请ID"
// @Success 200 {object} util.Response
// @Router /api/examiner/regrades/{id} [get]
func (c *RegradeController) Get(ctx *gin.Context) {
	req, err := c.RegradeService.Get(ctx.Param("id"))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}
	util.Success(ctx, req)
}

// @Summary 待决议复评申请列表
// @Tags 复评
// @Produce json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/admin/regrades/pending [get]
func (c *RegradeController) ListPending(ctx *gin.Context) {
	reqs, err := c.RegradeService.ListPending()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, reqs)
}

type decisionRequest struct {
	Outcome model.RegradeStatus `json:"outcome" binding:"required"`
}

// @Summary 决议复评申请
// @Description 仅管理员；决议一次性，已决议的申请返回冲突
// @Tags 复评
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "申请ID"
// @Param body body decisionRequest true "approved 或 rejected"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/admin/regrades/{id}/decision [post]
func (c *RegradeController) Decide(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var body decisionRequest
	if err := ctx.ShouldBindJSON(&body); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	req, err := c.RegradeService.Decide(user, ctx.Param("id"), body.Outcome)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, req)
}
