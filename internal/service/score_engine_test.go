package service

import (
	"testing"

	"station_exam_backend/internal/model"
	"station_exam_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func engineRubric(maxScore float64, items ...model.RubricItem) *model.Rubric {
	return &model.Rubric{MaxScore: maxScore, Items: items}
}

func engineItem(id uint, fail, pass, good, excellent float64) model.RubricItem {
	item := model.RubricItem{ScoreFail: fail, ScorePass: pass, ScoreGood: good, ScoreExcellent: excellent}
	item.ID = id
	return item
}

func TestComputeScore(t *testing.T) {
	// 4 条目、每条满档 2 分、名义满分 8
	rubric := engineRubric(8,
		engineItem(1, 0, 1, 1.5, 2),
		engineItem(2, 0, 1, 1.5, 2),
		engineItem(3, 0, 1, 1.5, 2),
		engineItem(4, 0, 1, 1.5, 2),
	)

	testCases := []struct {
		name       string
		rubric     *model.Rubric
		itemScores map[uint]float64
		wantRaw    float64
		wantTotal  float64
		wantRating model.RatingLevel
	}{
		{
			name:       "折算到十分制",
			rubric:     rubric,
			itemScores: map[uint]float64{1: 1, 2: 2, 3: 2, 4: 1},
			wantRaw:    6,
			wantTotal:  7.5,
			wantRating: model.RatingGood,
		},
		{
			name:       "满分封顶为优秀",
			rubric:     rubric,
			itemScores: map[uint]float64{1: 2, 2: 2, 3: 2, 4: 2},
			wantRaw:    8,
			wantTotal:  10,
			wantRating: model.RatingExcellent,
		},
		{
			name:       "缺失条目计零分",
			rubric:     rubric,
			itemScores: map[uint]float64{1: 2},
			wantRaw:    2,
			wantTotal:  2.5,
			wantRating: model.RatingFail,
		},
		{
			name:       "全部缺失为零分",
			rubric:     rubric,
			itemScores: map[uint]float64{},
			wantRaw:    0,
			wantTotal:  0,
			wantRating: model.RatingFail,
		},
		{
			name:       "满分不超过十分时不折算",
			rubric:     engineRubric(6, engineItem(1, 0, 2, 4, 6)),
			itemScores: map[uint]float64{1: 4},
			wantRaw:    4,
			wantTotal:  4,
			wantRating: model.RatingFail,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeScore(tc.rubric, tc.itemScores)
			require.NoError(t, err)
			assert.Equal(t, tc.wantRaw, got.RawTotal)
			assert.Equal(t, tc.wantTotal, got.Total)
			assert.Equal(t, tc.wantRating, got.SuggestedRating)
		})
	}
}

func TestComputeScoreDeterministic(t *testing.T) {
	rubric := engineRubric(8,
		engineItem(1, 0, 1, 1.5, 2),
		engineItem(2, 0, 1, 1.5, 2),
	)
	scores := map[uint]float64{1: 1.5, 2: 2}

	first, err := ComputeScore(rubric, scores)
	require.NoError(t, err)
	for i := 0; i < 50; i++ {
		again, err := ComputeScore(rubric, scores)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.GreaterOrEqual(t, first.Total, 0.0)
	assert.LessOrEqual(t, first.Total, 10.0)
}

func TestComputeScoreValidation(t *testing.T) {
	rubric := engineRubric(8, engineItem(1, 0, 1, 1.5, 2))

	t.Run("量表外的条目", func(t *testing.T) {
		_, err := ComputeScore(rubric, map[uint]float64{99: 1})
		assert.ErrorIs(t, err, util.ErrUnknownRubricItem)
	})

	t.Run("未定义的档位分不静默置零", func(t *testing.T) {
		_, err := ComputeScore(rubric, map[uint]float64{1: 1.7})
		assert.ErrorIs(t, err, util.ErrScoreValueNotDefined)
	})
}

func TestSuggestRatingBands(t *testing.T) {
	testCases := []struct {
		total float64
		want  model.RatingLevel
	}{
		{0, model.RatingFail},
		{4.9, model.RatingFail},
		{5, model.RatingPass},
		{6.4, model.RatingPass},
		{6.5, model.RatingGood},
		{8.4, model.RatingGood},
		{8.5, model.RatingExcellent},
		{10, model.RatingExcellent},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, SuggestRating(tc.total), "total=%v", tc.total)
	}
}
