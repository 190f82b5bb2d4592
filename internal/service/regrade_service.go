package service

import (
	"errors"
	"fmt"
	"time"

	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"
	"station_exam_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// RegradeService 复评工作流
// 状态机：none → pending → {approved | rejected}，决议一次性。
// 批准的效果是把目标成绩行开锁，台账的下一次条件改写即消耗该批准。
type RegradeService struct {
	DB       *gorm.DB
	Regrades *repository.RegradeRepository
	Scores   *repository.ScoreRepository
	Sessions *repository.ExamSessionRepository
	Scope    *ScopeService
}

func NewRegradeService(db *gorm.DB, regrades *repository.RegradeRepository, scores *repository.ScoreRepository, sessions *repository.ExamSessionRepository, scope *ScopeService) *RegradeService {
	return &RegradeService{DB: db, Regrades: regrades, Scores: scores, Sessions: sessions, Scope: scope}
}

type RegradeRequestInput struct {
	ExamSessionID uint   `json:"examSessionId"`
	StationID     uint   `json:"stationId"`
	RequestedBy   uint   `json:"requestedBy"` // grader id
	Reason        string `json:"reason"`
}

type RegradeRequestResult struct {
	Request   *model.RegradeRequest `json:"request"`
	Duplicate bool                  `json:"duplicate"` // 已有 pending，返回其现状
}

// Request 创建复评申请
// 前提：目标成绩当前处于锁定状态。同键 pending 去重靠唯一索引，
// 撞索引时返回已有申请而不是第二行。
func (s *RegradeService) Request(claims *util.Claims, input *RegradeRequestInput) (*RegradeRequestResult, error) {
	var missing []string
	if input.ExamSessionID == 0 {
		missing = append(missing, "examSessionId")
	}
	if input.StationID == 0 {
		missing = append(missing, "stationId")
	}
	if input.RequestedBy == 0 {
		missing = append(missing, "requestedBy")
	}
	if len(missing) > 0 {
		return nil, &util.ValidationError{Fields: missing}
	}

	session, err := s.Sessions.FindByID(input.ExamSessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if err := s.Scope.AuthorizeSubmission(claims, input.RequestedBy, input.StationID, session.ExamChainID); err != nil {
		return nil, err
	}

	score, err := s.Scores.Find(input.ExamSessionID, input.StationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScoreNotLocked
		}
		return nil, err
	}
	if !score.Locked {
		return nil, util.ErrScoreNotLocked
	}

	req := &model.RegradeRequest{
		ExamSessionID: input.ExamSessionID,
		StationID:     input.StationID,
		RequestedBy:   input.RequestedBy,
		Reason:        input.Reason,
	}
	if err := s.Regrades.Create(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.Regrades.FindPending(input.ExamSessionID, input.StationID)
			if ferr != nil {
				// pending 在撞索引与回查之间被决议掉了，按重复处理
				return nil, util.ErrDuplicatePending
			}
			return &RegradeRequestResult{Request: existing, Duplicate: true}, nil
		}
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}

	return &RegradeRequestResult{Request: req}, nil
}

// Decide 管理员决议，一次性
// CAS：仅当行仍为 pending 时更新，竞争的第二次决议拿到 0 行，报已决议。
// 批准时在同一事务内把目标成绩行开锁。
func (s *RegradeService) Decide(claims *util.Claims, requestID string, outcome model.RegradeStatus) (*model.RegradeRequest, error) {
	if !claims.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	if outcome != model.RegradeApproved && outcome != model.RegradeRejected {
		return nil, &util.ValidationError{Fields: []string{"outcome"}}
	}

	req, err := s.Regrades.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRequestNotFound
		}
		return nil, err
	}

	now := time.Now()
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.RegradeRequest{}).
			Where("id = ? AND status = ?", requestID, model.RegradePending).
			Updates(map[string]interface{}{
				"status":     outcome,
				"decided_by": claims.AccountID,
				"decided_at": now,
				"open_flag":  nil,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return util.ErrAlreadyDecided
		}

		if outcome == model.RegradeApproved {
			// 开锁即"解锁已授权"状态，无需单独的批准消耗标记：
			// 台账改写成功时同一条语句重新落锁。
			return tx.Model(&model.Score{}).
				Where("exam_session_id = ? AND station_id = ?", req.ExamSessionID, req.StationID).
				Update("locked", false).Error
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, util.ErrAlreadyDecided) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}

	monitoring.RegradeDecisions.WithLabelValues(string(outcome)).Inc()

	return s.Regrades.FindByID(requestID)
}

// Get 申请方轮询单条申请的决议进度
func (s *RegradeService) Get(requestID string) (*model.RegradeRequest, error) {
	req, err := s.Regrades.FindByID(requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListPending 管理端轮询待决议申请
func (s *RegradeService) ListPending() ([]model.RegradeRequest, error) {
	return s.Regrades.ListPending()
}
