package controller

import (
	"strconv"

	"station_exam_backend/internal/service"
	"station_exam_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RubricController struct {
	RubricService *service.RubricService
}

func NewRubricController(rubricService *service.RubricService) *RubricController {
	return &RubricController{RubricService: rubricService}
}

// @Summary 解析评分量表
// @Description 按(站点,批次,层次,轮次)上下文取唯一 Active 量表；零条或多条命中分别报 404 与 404(Ambiguous)
// @Tags 量表
// @Produce json
// @Security BearerAuth
// @Param stationId query int true "站点ID"
// @Param cohortId query int true "批次ID"
// @Param levelId query int true "层次ID"
// @Param examRoundId query int true "轮次ID"
// @Success 200 {object} util.Response
// @Router /api/examiner/rubrics/resolve [get]
func (c *RubricController) Resolve(ctx *gin.Context) {
	var missing []string
	parse := func(name string) uint {
		v, err := strconv.Atoi(ctx.Query(name))
		if err != nil || v <= 0 {
			missing = append(missing, name)
			return 0
		}
		return uint(v)
	}

	stationID := parse("stationId")
	cohortID := parse("cohortId")
	levelID := parse("levelId")
	examRoundID := parse("examRoundId")

	if len(missing) > 0 {
		util.BadRequest(ctx, (&util.ValidationError{Fields: missing}).Error())
		return
	}

	rubric, err := c.RubricService.Resolve(stationID, cohortID, levelID, examRoundID)
	if err != nil {
		util.DomainError(ctx, err)
		return
	}

	util.Success(ctx, rubric)
}
