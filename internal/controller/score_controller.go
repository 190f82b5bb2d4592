package controller

import (
	"strconv"

	"station_exam_backend/internal/service"
	"station_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ScoreController struct {
	ScoreService *service.ScoreService
}

func NewScoreController(scoreService *service.ScoreService) *ScoreController {
	return &ScoreController{ScoreService: scoreService}
}

// @Summary 提交评分
// @Description 首次提交插入并立即锁定；已锁定的成绩仅在复评批准后可改写一次
// @Tags 评分
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body service.ScoreSubmission true "评分载荷"
// @Success 200 {object} util.Response
// @Failure 409 {object} util.Response
// @Router /api/examiner/scores [post]
func (c *ScoreController) Submit(ctx *gin.Context) {
	user := util.GetUserFromContext(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ScoreSubmission
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.ScoreService.Submit(user, &req)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, result)
}

// @Summary 查询成绩与锁定状态
// @Description 轮询接口，评分端据此感知锁定/解锁变化
// @Tags 评分
// @Produce json
// @Security BearerAuth
// @Param sessionId path int true "考生场次ID"
// @Param stationId path int true "站点ID"
// @Success 200 {object} util.Response
// @Router /api/examiner/scores/{sessionId}/{stationId} [get]
func (c *ScoreController) Get(ctx *gin.Context) {
	sessionID, err1 := strconv.Atoi(ctx.Param("sessionId"))
	stationID, err2 := strconv.Atoi(ctx.Param("stationId"))
	if err1 != nil || err2 != nil {
		util.BadRequest(ctx, "invalid session or station id")
		return
	}

	score, err := c.ScoreService.Get(uint(sessionID), uint(stationID))
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, score)
}
