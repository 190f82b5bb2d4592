package repository

import (
	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ExamSessionRepository struct {
	DB *gorm.DB
}

func NewExamSessionRepository(db *gorm.DB) *ExamSessionRepository {
	return &ExamSessionRepository{DB: db}
}

func (r *ExamSessionRepository) FindByID(id uint) (*model.ExamSession, error) {
	var s model.ExamSession
	err := r.DB.First(&s, id).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ExamSessionRepository) ListByChain(chainID uint) ([]model.ExamSession, error) {
	var ss []model.ExamSession
	err := r.DB.Where("exam_chain_id = ?", chainID).Order("id asc").Find(&ss).Error
	return ss, err
}
