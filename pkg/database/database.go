package database

import (
	"fmt"
	"log"

	"station_exam_backend/internal/config"
	"station_exam_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Info),
		TranslateError: true,
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	return db, nil
}

// Migrate 建表并写入演示目录数据，测试环境用 sqlite 走同一套迁移
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.Account{},
		&model.Grader{},
		&model.ScopeAssignment{},
		&model.Station{},
		&model.ExamRound{},
		&model.ExamChain{},
		&model.Cohort{},
		&model.ExamLevel{},
		&model.ExamSession{},
		&model.Rubric{},
		&model.RubricItem{},
		&model.Score{},
		&model.RegradeRequest{},
	)
	if err != nil {
		return err
	}

	seedDefaults(db)
	return nil
}

// seedDefaults 目录数据由外部考务系统维护，这里只在空库时放入演示数据
func seedDefaults(db *gorm.DB) {
	var count int64
	db.Model(&model.Account{}).Count(&count)
	if count == 0 {
		hash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		db.Create(&model.Account{
			Username: "admin",
			Name:     "系统管理员",
			Password: string(hash),
			Role:     model.Admin,
		})
	}

	var stCount int64
	db.Model(&model.Station{}).Count(&stCount)
	if stCount == 0 {
		defaultStations := []model.Station{
			{Name: "病史采集", Code: "S01", Location: "一号诊室"},
			{Name: "体格检查", Code: "S02", Location: "二号诊室"},
			{Name: "基本操作", Code: "S03", Location: "技能实验室"},
			{Name: "辅助检查判读", Code: "S04", Location: "阅片室"},
		}
		for _, s := range defaultStations {
			db.Create(&s)
		}
	}

	var gCount int64
	db.Model(&model.Grader{}).Count(&gCount)
	if gCount == 0 {
		defaultGraders := []model.Grader{
			{Name: "王建国", EmployeeNo: "T1001", Title: "主任医师", Enabled: true},
			{Name: "李敏", EmployeeNo: "T1002", Title: "副主任医师", Enabled: true},
			{Name: "张伟", EmployeeNo: "T1003", Title: "主治医师", Enabled: true},
		}
		for _, g := range defaultGraders {
			db.Create(&g)
		}
	}
}
