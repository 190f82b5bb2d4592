package model

import (
	"encoding/json"
	"time"
)

// Score 一个(考生场次,站点)的评分结果，全局至多一行
// Locked 随首次写入置真；此后仅当管理员批准复评时置假，
// 且任何一次被接受的改写都会在同一条更新语句里重新置真。
// swagger:model Score
type Score struct {
	BaseModel
	ExamSessionID uint            `gorm:"uniqueIndex:idx_score_session_station;not null" json:"examSessionId"`
	StationID     uint            `gorm:"uniqueIndex:idx_score_session_station;not null" json:"stationId"`
	StudentID     string          `gorm:"size:50;index;not null" json:"studentId"`
	GraderID      uint            `gorm:"index;not null" json:"graderId"`
	RubricID      uint            `gorm:"index" json:"rubricId"`
	ItemScores    json.RawMessage `gorm:"type:json" json:"itemScores"` // item_id -> 档位分
	RawTotal      float64         `json:"rawTotal"`
	Total         float64         `gorm:"not null" json:"total"` // 归一化后 0-10
	Rating        RatingLevel     `gorm:"type:varchar(20);not null" json:"rating"`
	Comment       string          `gorm:"type:text" json:"comment"`
	Locked        bool            `gorm:"not null;default:true" json:"locked"`
}

func (Score) TableName() string {
	return "scores"
}

type RegradeStatus string

const (
	RegradePending  RegradeStatus = "pending"
	RegradeApproved RegradeStatus = "approved"
	RegradeRejected RegradeStatus = "rejected"
)

// RegradeRequest 复评申请
// OpenFlag 在 pending 时为 1，决议后置 NULL；
// (exam_session_id, station_id, open_flag) 上的唯一索引因此只拦截
// 并存的 pending 申请，历史决议不受影响（NULL 可重复）。
type RegradeRequest struct {
	UUIDBase
	ExamSessionID uint          `gorm:"uniqueIndex:idx_regrade_open;not null" json:"examSessionId"`
	StationID     uint          `gorm:"uniqueIndex:idx_regrade_open;not null" json:"stationId"`
	RequestedBy   uint          `gorm:"index;not null" json:"requestedBy"` // grader id
	Reason        string        `gorm:"type:text" json:"reason"`
	Status        RegradeStatus `gorm:"type:varchar(20);default:'pending'" json:"status"`
	DecidedBy     *uint         `json:"decidedBy,omitempty"` // 管理员账号 id
	DecidedAt     *time.Time    `json:"decidedAt,omitempty"`
	OpenFlag      *uint8        `gorm:"uniqueIndex:idx_regrade_open" json:"-"`
}

func (RegradeRequest) TableName() string {
	return "regrade_requests"
}

func (r *RegradeRequest) Decided() bool {
	return r.Status != RegradePending
}
