package repository

import (
	"errors"

	"station_exam_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ScoreRepository struct {
	DB *gorm.DB
}

func NewScoreRepository(db *gorm.DB) *ScoreRepository {
	return &ScoreRepository{DB: db}
}

func (r *ScoreRepository) Find(examSessionID, stationID uint) (*model.Score, error) {
	var s model.Score
	err := r.DB.Where("exam_session_id = ? AND station_id = ?", examSessionID, stationID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// InsertIfAbsent 对(场次,站点)键做一次原子的"不存在才插入"
// 依赖 idx_score_session_station 唯一索引处理冲突，两个并发首提
// 不可能都插入成功。返回 false 表示该键已有成绩。
func (r *ScoreRepository) InsertIfAbsent(score *model.Score) (bool, error) {
	score.Locked = true // 首次写入即落锁，不存在未锁定的中间窗口
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "exam_session_id"}, {Name: "station_id"}},
		DoNothing: true,
	}).Create(score)
	if res.Error != nil {
		// 并发竞争下部分驱动仍可能上报唯一键冲突而非静默跳过
		if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateIfUnlocked 条件改写：仅当行当前未锁定时覆盖全部评分字段，
// 并在同一条语句中重新置锁。锁检查与写入之间没有窗口，
// 一次复评批准恰好换来一次改写。返回 false 表示行仍处于锁定状态。
func (r *ScoreRepository) UpdateIfUnlocked(score *model.Score) (bool, error) {
	res := r.DB.Model(&model.Score{}).
		Where("exam_session_id = ? AND station_id = ? AND locked = ?",
			score.ExamSessionID, score.StationID, false).
		Updates(map[string]interface{}{
			"student_id":  score.StudentID,
			"grader_id":   score.GraderID,
			"rubric_id":   score.RubricID,
			"item_scores": score.ItemScores,
			"raw_total":   score.RawTotal,
			"total":       score.Total,
			"rating":      score.Rating,
			"comment":     score.Comment,
			"locked":      true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// UpdateForce 管理员直写：无视锁定状态覆盖，同样重新置锁
func (r *ScoreRepository) UpdateForce(score *model.Score) (bool, error) {
	res := r.DB.Model(&model.Score{}).
		Where("exam_session_id = ? AND station_id = ?", score.ExamSessionID, score.StationID).
		Updates(map[string]interface{}{
			"student_id":  score.StudentID,
			"grader_id":   score.GraderID,
			"rubric_id":   score.RubricID,
			"item_scores": score.ItemScores,
			"raw_total":   score.RawTotal,
			"total":       score.Total,
			"rating":      score.Rating,
			"comment":     score.Comment,
			"locked":      true,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
