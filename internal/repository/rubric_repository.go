package repository

import (
	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type RubricRepository struct {
	DB *gorm.DB
}

func NewRubricRepository(db *gorm.DB) *RubricRepository {
	return &RubricRepository{DB: db}
}

// FindActiveByContext 返回上下文命中的 Active 量表
// 最多取两条：零条与多条是两种不同的失败，由解析方区分，绝不静默取一。
func (r *RubricRepository) FindActiveByContext(stationID, cohortID, levelID, examRoundID uint) ([]model.Rubric, error) {
	var rs []model.Rubric
	err := r.DB.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("rubric_items.`order` asc, rubric_items.id asc")
	}).
		Where("station_id = ? AND cohort_id = ? AND level_id = ? AND exam_round_id = ? AND active = ?",
			stationID, cohortID, levelID, examRoundID, true).
		Limit(2).
		Find(&rs).Error
	return rs, err
}

func (r *RubricRepository) FindByID(id uint) (*model.Rubric, error) {
	var rb model.Rubric
	err := r.DB.Preload("Items").First(&rb, id).Error
	if err != nil {
		return nil, err
	}
	return &rb, nil
}
