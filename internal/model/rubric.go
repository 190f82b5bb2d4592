package model

// RatingLevel 评分等级（四档，等级分数由量表逐项定义）
type RatingLevel string

const (
	RatingFail      RatingLevel = "fail"
	RatingPass      RatingLevel = "pass"
	RatingGood      RatingLevel = "good"
	RatingExcellent RatingLevel = "excellent"
)

// Rubric 某(站点,批次,层次,轮次)上下文下的评分量表
// 同一上下文在评分时刻必须恰有一份 Active 量表，多于一份属于配置错误。
// swagger:model Rubric
type Rubric struct {
	BaseModel
	Name        string       `gorm:"size:255;not null" json:"name"`
	StationID   uint         `gorm:"index:idx_rubric_ctx;not null" json:"stationId"`
	CohortID    uint         `gorm:"index:idx_rubric_ctx;not null" json:"cohortId"`
	LevelID     uint         `gorm:"index:idx_rubric_ctx;not null" json:"levelId"`
	ExamRoundID uint         `gorm:"index:idx_rubric_ctx;not null" json:"examRoundId"`
	Version     int          `gorm:"default:1" json:"version"`
	Active      bool         `gorm:"default:false" json:"active"`
	MaxScore    float64      `gorm:"not null" json:"maxScore"` // 名义满分
	Items       []RubricItem `gorm:"foreignKey:RubricID" json:"items"`
}

func (Rubric) TableName() string {
	return "rubrics"
}

// RubricItem 量表条目，四档等级各对应一个非负分值
type RubricItem struct {
	BaseModel
	RubricID       uint    `gorm:"index;not null" json:"rubricId"`
	Name           string  `gorm:"size:255;not null" json:"name"`
	Order          int     `gorm:"default:0" json:"order"`
	ScoreFail      float64 `gorm:"not null" json:"scoreFail"`
	ScorePass      float64 `gorm:"not null" json:"scorePass"`
	ScoreGood      float64 `gorm:"not null" json:"scoreGood"`
	ScoreExcellent float64 `gorm:"not null" json:"scoreExcellent"`
}

func (RubricItem) TableName() string {
	return "rubric_items"
}

// LevelScores 按 Fail<Pass<Good<Excellent 顺序返回条目的四档分值
func (i *RubricItem) LevelScores() [4]float64 {
	return [4]float64{i.ScoreFail, i.ScorePass, i.ScoreGood, i.ScoreExcellent}
}

// AllowsScore 判断提交的条目分是否恰为四档之一
func (i *RubricItem) AllowsScore(score float64) bool {
	for _, s := range i.LevelScores() {
		if s == score {
			return true
		}
	}
	return false
}
