package service

import (
	"fmt"

	"station_exam_backend/internal/model"
	"station_exam_backend/internal/util"
)

// 评分计算：纯函数，不碰存储。
// 量表名义满分不超过 10 分时原始分直接作为总分，否则按 10/满分 折算，
// 折算结果恒落在 [0,10]。

type ScoreResult struct {
	RawTotal        float64           `json:"rawTotal"`
	Total           float64           `json:"total"`
	SuggestedRating model.RatingLevel `json:"suggestedRating"`
}

// ComputeScore 依据量表计算归一化总分与建议等级
// itemScores 缺失的条目计 0 分；条目分必须恰为该条目四档之一，
// 未定义的档位分与量表外的条目均按校验错误处理，不静默置 0。
func ComputeScore(rubric *model.Rubric, itemScores map[uint]float64) (ScoreResult, error) {
	items := make(map[uint]*model.RubricItem, len(rubric.Items))
	for i := range rubric.Items {
		items[rubric.Items[i].ID] = &rubric.Items[i]
	}

	raw := 0.0
	for id, score := range itemScores {
		item, ok := items[id]
		if !ok {
			return ScoreResult{}, fmt.Errorf("item %d: %w", id, util.ErrUnknownRubricItem)
		}
		if !item.AllowsScore(score) {
			return ScoreResult{}, fmt.Errorf("item %d score %g: %w", id, score, util.ErrScoreValueNotDefined)
		}
		raw += score
	}

	total := raw
	if rubric.MaxScore > 10 {
		total = raw * 10 / rubric.MaxScore
	}
	total = clamp(total, 0, 10)

	return ScoreResult{
		RawTotal:        raw,
		Total:           total,
		SuggestedRating: SuggestRating(total),
	}, nil
}

// SuggestRating 总分到建议等级的分段映射
// <5 不合格；[5,6.5) 合格；[6.5,8.5) 良好；>=8.5 优秀。
// 仅是建议，考官明确给出的等级原样入账。
func SuggestRating(total float64) model.RatingLevel {
	switch {
	case total < 5:
		return model.RatingFail
	case total < 6.5:
		return model.RatingPass
	case total < 8.5:
		return model.RatingGood
	default:
		return model.RatingExcellent
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
