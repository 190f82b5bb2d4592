package repository

import (
	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type ScopeRepository struct {
	DB *gorm.DB
}

func NewScopeRepository(db *gorm.DB) *ScopeRepository {
	return &ScopeRepository{DB: db}
}

func (r *ScopeRepository) FindByAccountID(accountID uint) (*model.ScopeAssignment, error) {
	var s model.ScopeAssignment
	err := r.DB.Where("account_id = ?", accountID).First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}
