package repository

import (
	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type GraderRepository struct {
	DB *gorm.DB
}

func NewGraderRepository(db *gorm.DB) *GraderRepository {
	return &GraderRepository{DB: db}
}

func (r *GraderRepository) FindByID(id uint) (*model.Grader, error) {
	var g model.Grader
	err := r.DB.First(&g, id).Error
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// Exists 判断 grader 是否在目录中且未停用
func (r *GraderRepository) Exists(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Grader{}).Where("id = ? AND enabled = ?", id, true).Count(&count).Error
	return count > 0, err
}

func (r *GraderRepository) List() ([]model.Grader, error) {
	var gs []model.Grader
	err := r.DB.Where("enabled = ?", true).Order("employee_no asc").Find(&gs).Error
	return gs, err
}
