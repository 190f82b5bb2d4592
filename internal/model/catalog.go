package model

import "time"

// 考务目录：由外部教务/考务系统维护，核心只读。

// swagger:model Station
type Station struct {
	BaseModel
	Name     string `gorm:"size:100;not null" json:"name"`
	Code     string `gorm:"size:50;unique;not null" json:"code"`
	Location string `gorm:"size:255" json:"location"`
}

func (Station) TableName() string {
	return "stations"
}

// ExamRound 考试轮次
type ExamRound struct {
	BaseModel
	Name     string     `gorm:"size:100;not null" json:"name"`
	StartsAt *time.Time `json:"startsAt,omitempty"`
	EndsAt   *time.Time `json:"endsAt,omitempty"`
}

func (ExamRound) TableName() string {
	return "exam_rounds"
}

// ExamChain 考链：同一轮次内一起轮转各站点的一组考生
type ExamChain struct {
	BaseModel
	Name        string `gorm:"size:100;not null" json:"name"`
	ExamRoundID uint   `gorm:"index;not null" json:"examRoundId"`
}

func (ExamChain) TableName() string {
	return "exam_chains"
}

// Cohort 考生批次（如年级/专业队列）
type Cohort struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
}

func (Cohort) TableName() string {
	return "cohorts"
}

// ExamLevel 考核层次
type ExamLevel struct {
	BaseModel
	Name string `gorm:"size:100;not null" json:"name"`
}

func (ExamLevel) TableName() string {
	return "exam_levels"
}

// ExamSession 一名考生在一条考链上的应考记录
// StudentID 为外部花名册中的学号，花名册导入不在核心范围内。
type ExamSession struct {
	BaseModel
	StudentID   string `gorm:"size:50;index;not null" json:"studentId"`
	StudentName string `gorm:"size:100" json:"studentName"`
	ExamChainID uint   `gorm:"index;not null" json:"examChainId"`
	ExamRoundID uint   `gorm:"index;not null" json:"examRoundId"`
	CohortID    uint   `gorm:"index;not null" json:"cohortId"`
	LevelID     uint   `gorm:"index;not null" json:"levelId"`
}

func (ExamSession) TableName() string {
	return "exam_sessions"
}
