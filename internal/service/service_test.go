package service

import (
	"testing"

	"station_exam_backend/internal/config"
	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"
	"station_exam_backend/pkg/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	// 内存库按连接隔离，收紧到单连接避免各协程各见一库
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{RubricTTLSeconds: 300, ScopeTTLSeconds: 60},
	}
}

// fixture 一条最小可评分的考务数据链：轮次→考链→场次，站点与量表
type fixture struct {
	Station model.Station
	Round   model.ExamRound
	Chain   model.ExamChain
	Cohort  model.Cohort
	Level   model.ExamLevel
	Session model.ExamSession
	Rubric  model.Rubric
	Grader  model.Grader
	Grader2 model.Grader
}

func seedFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{}

	f.Station = model.Station{Name: "体格检查", Code: "FX01"}
	require.NoError(t, db.Create(&f.Station).Error)

	f.Round = model.ExamRound{Name: "期末轮次"}
	require.NoError(t, db.Create(&f.Round).Error)

	f.Chain = model.ExamChain{Name: "A链", ExamRoundID: f.Round.ID}
	require.NoError(t, db.Create(&f.Chain).Error)

	f.Cohort = model.Cohort{Name: "2023级临床"}
	require.NoError(t, db.Create(&f.Cohort).Error)

	f.Level = model.ExamLevel{Name: "本科"}
	require.NoError(t, db.Create(&f.Level).Error)

	f.Session = model.ExamSession{
		StudentID:   "20230101",
		StudentName: "陈晨",
		ExamChainID: f.Chain.ID,
		ExamRoundID: f.Round.ID,
		CohortID:    f.Cohort.ID,
		LevelID:     f.Level.ID,
	}
	require.NoError(t, db.Create(&f.Session).Error)

	f.Grader = model.Grader{Name: "评分人甲", EmployeeNo: "FX1001", Enabled: true}
	require.NoError(t, db.Create(&f.Grader).Error)
	f.Grader2 = model.Grader{Name: "评分人乙", EmployeeNo: "FX1002", Enabled: true}
	require.NoError(t, db.Create(&f.Grader2).Error)

	// 4 个条目、各档 0/1/1.5/2，名义满分 8
	f.Rubric = model.Rubric{
		Name:        "体格检查量表",
		StationID:   f.Station.ID,
		CohortID:    f.Cohort.ID,
		LevelID:     f.Level.ID,
		ExamRoundID: f.Round.ID,
		Active:      true,
		MaxScore:    8,
	}
	require.NoError(t, db.Create(&f.Rubric).Error)
	for i := 0; i < 4; i++ {
		item := model.RubricItem{
			RubricID:       f.Rubric.ID,
			Name:           "条目",
			Order:          i + 1,
			ScoreFail:      0,
			ScorePass:      1,
			ScoreGood:      1.5,
			ScoreExcellent: 2,
		}
		require.NoError(t, db.Create(&item).Error)
		f.Rubric.Items = append(f.Rubric.Items, item)
	}

	return f
}

func newServices(db *gorm.DB) (*ScopeService, *RubricService, *ScoreService, *RegradeService) {
	cfg := testConfig()
	scopeRepo := repository.NewScopeRepository(db)
	graderRepo := repository.NewGraderRepository(db)
	sessionRepo := repository.NewExamSessionRepository(db)
	rubricRepo := repository.NewRubricRepository(db)
	scoreRepo := repository.NewScoreRepository(db)
	regradeRepo := repository.NewRegradeRepository(db)

	scope := NewScopeService(scopeRepo, graderRepo, nil, cfg)
	rubric := NewRubricService(rubricRepo, nil, cfg)
	score := NewScoreService(scoreRepo, sessionRepo, scope, rubric)
	regrade := NewRegradeService(db, regradeRepo, scoreRepo, sessionRepo, scope)
	return scope, rubric, score, regrade
}

func examinerClaims(accountID uint) *util.Claims {
	return &util.Claims{AccountID: accountID, Role: model.Examiner, Name: "考官"}
}

func adminClaims(accountID uint) *util.Claims {
	return &util.Claims{AccountID: accountID, Role: model.Admin, Name: "管理员"}
}

func grantScope(t *testing.T, db *gorm.DB, accountID uint, boundGrader, station, chain *uint) {
	t.Helper()
	require.NoError(t, db.Create(&model.ScopeAssignment{
		AccountID:     accountID,
		BoundGraderID: boundGrader,
		StationID:     station,
		ExamChainID:   chain,
	}).Error)
}

func uintPtr(v uint) *uint { return &v }

func floatPtr(v float64) *float64 { return &v }
