package service

import (
	"errors"

	"station_exam_backend/internal/config"
	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	Accounts *repository.AccountRepository
	Config   *config.Config
}

func NewAuthService(accounts *repository.AccountRepository, cfg *config.Config) *AuthService {
	return &AuthService{Accounts: accounts, Config: cfg}
}

func (s *AuthService) Login(username, password string) (string, *model.Account, error) {
	account, err := s.Accounts.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, util.ErrAccountNotFound
		}
		return "", nil, err
	}

	if account.Disabled {
		return "", nil, util.ErrAccountDisabled
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(password)); err != nil {
		return "", nil, util.ErrAccountNotFound
	}

	token, err := util.GenerateJWT(account, s.Config.JWT.Secret, s.Config.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}

	s.Accounts.UpdateLastLogin(account.ID)

	return token, account, nil
}

func (s *AuthService) GetAccount(id uint) (*model.Account, error) {
	account, err := s.Accounts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, err
	}
	return account, nil
}
