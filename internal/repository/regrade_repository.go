package repository

import (
	"station_exam_backend/internal/model"

	"gorm.io/gorm"
)

type RegradeRepository struct {
	DB *gorm.DB
}

func NewRegradeRepository(db *gorm.DB) *RegradeRepository {
	return &RegradeRepository{DB: db}
}

// Create 插入一条 pending 申请，OpenFlag=1 交给唯一索引去重：
// 同键已有 pending 时返回 gorm.ErrDuplicatedKey，不产生第二行。
func (r *RegradeRepository) Create(req *model.RegradeRequest) error {
	one := uint8(1)
	req.Status = model.RegradePending
	req.OpenFlag = &one
	return r.DB.Create(req).Error
}

func (r *RegradeRepository) FindByID(id string) (*model.RegradeRequest, error) {
	var req model.RegradeRequest
	err := r.DB.Where("id = ?", id).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RegradeRepository) FindPending(examSessionID, stationID uint) (*model.RegradeRequest, error) {
	var req model.RegradeRequest
	err := r.DB.Where("exam_session_id = ? AND station_id = ? AND status = ?",
		examSessionID, stationID, model.RegradePending).First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RegradeRepository) ListPending() ([]model.RegradeRequest, error) {
	var reqs []model.RegradeRequest
	err := r.DB.Where("status = ?", model.RegradePending).Order("created_at asc").Find(&reqs).Error
	return reqs, err
}
