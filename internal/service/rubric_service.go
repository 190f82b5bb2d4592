package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"station_exam_backend/internal/config"
	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"

	"github.com/go-redis/redis/v8"
)

// RubricService 量表解析
// 量表在外部编制、外部激活，评分事务内视为不可变。
type RubricService struct {
	Repo   *repository.RubricRepository
	Redis  *redis.Client
	Config *config.Config
}

func NewRubricService(repo *repository.RubricRepository, rdb *redis.Client, cfg *config.Config) *RubricService {
	return &RubricService{Repo: repo, Redis: rdb, Config: cfg}
}

func rubricCacheKey(stationID, cohortID, levelID, examRoundID uint) string {
	return fmt.Sprintf("rubric:%d:%d:%d:%d", stationID, cohortID, levelID, examRoundID)
}

// Resolve 返回上下文唯一的 Active 量表
// 零条命中与多条命中是两种不同的配置错误，分别上报，绝不任取其一。
// 只有无歧义的命中才会进缓存。
func (s *RubricService) Resolve(stationID, cohortID, levelID, examRoundID uint) (*model.Rubric, error) {
	ctx := context.Background()
	key := rubricCacheKey(stationID, cohortID, levelID, examRoundID)

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Bytes(); err == nil {
			var cached model.Rubric
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	rubrics, err := s.Repo.FindActiveByContext(stationID, cohortID, levelID, examRoundID)
	if err != nil {
		return nil, err
	}
	if len(rubrics) == 0 {
		return nil, util.ErrRubricNotFound
	}
	if len(rubrics) > 1 {
		return nil, util.ErrRubricAmbiguous
	}

	rubric := &rubrics[0]

	if s.Redis != nil {
		if raw, err := json.Marshal(rubric); err == nil {
			ttl := time.Duration(s.Config.Cache.RubricTTLSeconds) * time.Second
			s.Redis.Set(ctx, key, raw, ttl)
		}
	}

	return rubric, nil
}
