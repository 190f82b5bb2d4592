package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"
	"station_exam_backend/pkg/monitoring"

	"gorm.io/gorm"
)

// ScoreService 成绩台账
// 每个(场次,站点)键上的状态机：无 → 锁定 → (批准复评后开锁) → 锁定 → …
// 所有写入都走单条条件语句，检查与写入之间不存在竞态窗口。
type ScoreService struct {
	Scores   *repository.ScoreRepository
	Sessions *repository.ExamSessionRepository
	Scope    *ScopeService
	Rubrics  *RubricService
}

func NewScoreService(scores *repository.ScoreRepository, sessions *repository.ExamSessionRepository, scope *ScopeService, rubrics *RubricService) *ScoreService {
	return &ScoreService{Scores: scores, Sessions: sessions, Scope: scope, Rubrics: rubrics}
}

// ScoreSubmission 评分端提交载荷
// Total 为指针以区分"未提交"与 0 分；服务端会按量表重算，入库以重算值为准。
type ScoreSubmission struct {
	ExamSessionID uint              `json:"examSessionId"`
	StationID     uint              `json:"stationId"`
	LevelID       uint              `json:"levelId"`
	CohortID      uint              `json:"cohortId"`
	ExamRoundID   uint              `json:"examRoundId"`
	StudentID     string            `json:"studentId"`
	GraderID      uint              `json:"graderId"`
	ItemScores    map[uint]float64  `json:"itemScores"`
	Total         *float64          `json:"normalizedTotal"`
	Rating        model.RatingLevel `json:"rating"`
	Comment       string            `json:"comment"`
}

type SubmitResult struct {
	Accepted        bool              `json:"accepted"`
	Action          string            `json:"action"` // inserted | updated
	Locked          bool              `json:"locked"`
	RawTotal        float64           `json:"rawTotal"`
	Total           float64           `json:"total"`
	Rating          model.RatingLevel `json:"rating"`
	SuggestedRating model.RatingLevel `json:"suggestedRating"`
}

// validate 一次性列出全部缺失字段，而非只报第一个
func (req *ScoreSubmission) validate() error {
	var missing []string
	if req.ExamSessionID == 0 {
		missing = append(missing, "examSessionId")
	}
	if req.StationID == 0 {
		missing = append(missing, "stationId")
	}
	if req.LevelID == 0 {
		missing = append(missing, "levelId")
	}
	if req.CohortID == 0 {
		missing = append(missing, "cohortId")
	}
	if req.ExamRoundID == 0 {
		missing = append(missing, "examRoundId")
	}
	if req.StudentID == "" {
		missing = append(missing, "studentId")
	}
	if req.GraderID == 0 {
		missing = append(missing, "graderId")
	}
	if req.Total == nil {
		missing = append(missing, "normalizedTotal")
	}
	if req.Rating == "" {
		missing = append(missing, "rating")
	}
	if len(missing) > 0 {
		return &util.ValidationError{Fields: missing}
	}
	return nil
}

// Submit 接受或拒绝一次评分提交
// 键上无行：原子 insert-if-absent，随插入落锁；键上有行：仅当复评批准
// 开锁（或管理员直写）时条件改写成功，同一条语句重新落锁——一次批准
// 恰好换来一次改写，没有敞开的解锁窗口。
func (s *ScoreService) Submit(claims *util.Claims, req *ScoreSubmission) (*SubmitResult, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	session, err := s.Sessions.FindByID(req.ExamSessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSessionNotFound
		}
		return nil, err
	}

	if err := s.Scope.AuthorizeSubmission(claims, req.GraderID, req.StationID, session.ExamChainID); err != nil {
		return nil, err
	}

	rubric, err := s.Rubrics.Resolve(req.StationID, req.CohortID, req.LevelID, req.ExamRoundID)
	if err != nil {
		return nil, err
	}

	computed, err := ComputeScore(rubric, req.ItemScores)
	if err != nil {
		return nil, err
	}

	rawItems, err := json.Marshal(req.ItemScores)
	if err != nil {
		return nil, err
	}

	score := &model.Score{
		ExamSessionID: req.ExamSessionID,
		StationID:     req.StationID,
		StudentID:     req.StudentID,
		GraderID:      req.GraderID,
		RubricID:      rubric.ID,
		ItemScores:    rawItems,
		RawTotal:      computed.RawTotal,
		Total:         computed.Total,
		Rating:        req.Rating, // 考官明确给出的等级原样入账
		Comment:       req.Comment,
	}

	result := &SubmitResult{
		Accepted:        true,
		Locked:          true,
		RawTotal:        computed.RawTotal,
		Total:           computed.Total,
		Rating:          req.Rating,
		SuggestedRating: computed.SuggestedRating,
	}

	inserted, err := s.Scores.InsertIfAbsent(score)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	if inserted {
		result.Action = "inserted"
		monitoring.ScoreSubmissions.WithLabelValues("inserted").Inc()
		return result, nil
	}

	var updated bool
	if claims.IsAdmin() {
		updated, err = s.Scores.UpdateForce(score)
	} else {
		updated, err = s.Scores.UpdateIfUnlocked(score)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrStoreUnavailable, err)
	}
	if !updated {
		monitoring.ScoreSubmissions.WithLabelValues("rejected").Inc()
		return nil, util.ErrScoreLocked
	}

	result.Action = "updated"
	monitoring.ScoreSubmissions.WithLabelValues("updated").Inc()
	return result, nil
}

// Get 轮询读：返回当前成绩行与锁定状态，无序性由轮询方自行容忍
func (s *ScoreService) Get(examSessionID, stationID uint) (*model.Score, error) {
	score, err := s.Scores.Find(examSessionID, stationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScoreNotFound
		}
		return nil, err
	}
	return score, nil
}
