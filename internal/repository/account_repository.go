package repository

import (
	"time"

	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type AccountRepository struct {
	DB *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{DB: db}
}

func (r *AccountRepository) FindByUsername(username string) (*model.Account, error) {
	var a model.Account
	err := r.DB.Where("username = ?", username).First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) FindByID(id uint) (*model.Account, error) {
	var a model.Account
	err := r.DB.First(&a, id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AccountRepository) UpdateLastLogin(id uint) error {
	return r.DB.Model(&model.Account{}).Where("id = ?", id).Update("last_login", time.Now()).Error
}
