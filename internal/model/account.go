package model

import (
	"time"
)

type AccountRole string

const (
	Examiner AccountRole = "examiner"
	Admin    AccountRole = "admin"
)

// Account 登录账号（考官/管理员）
// 账号本身不等于评分人：共享账号允许多名考官使用同一登录，
// 评分时再申报具体的 grader，见 ScopeAssignment。
// swagger:model Account
type Account struct {
	BaseModel
	Username  string      `gorm:"size:100;unique;not null" json:"username"`
	Name      string      `gorm:"size:100;not null" json:"name"`
	Password  string      `gorm:"size:100;not null" json:"-"`
	Role      AccountRole `gorm:"type:varchar(20);default:'examiner'" json:"role"`
	Disabled  bool        `gorm:"default:false" json:"disabled"`
	LastLogin time.Time   `json:"lastLogin"`
}

func (Account) TableName() string {
	return "accounts"
}
