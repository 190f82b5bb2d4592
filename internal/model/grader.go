package model

// Grader 评分人目录，由外部教务系统维护，核心只读
// swagger:model Grader
type Grader struct {
	BaseModel
	Name       string `gorm:"size:100;not null" json:"name"`
	EmployeeNo string `gorm:"size:50;unique;not null" json:"employeeNo"`
	Title      string `gorm:"size:100" json:"title"`
	Enabled    bool   `gorm:"default:true" json:"enabled"`
}

func (Grader) TableName() string {
	return "graders"
}

// ScopeAssignment 账号的评分授权范围
// BoundGraderID 为空表示共享账号：提交时申报任意有效 grader；
// 不为空则该账号的每次提交必须申报这一 grader。
// StationID / ExamChainID 为空表示不限站点/考链。
type ScopeAssignment struct {
	BaseModel
	AccountID     uint  `gorm:"uniqueIndex;not null" json:"accountId"`
	BoundGraderID *uint `json:"boundGraderId,omitempty"`
	StationID     *uint `json:"stationId,omitempty"`
	ExamChainID   *uint `json:"examChainId,omitempty"`
}

func (ScopeAssignment) TableName() string {
	return "scope_assignments"
}

// Shared 共享账号：未绑定固定评分人
func (s *ScopeAssignment) Shared() bool {
	return s.BoundGraderID == nil
}
