package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"station_exam_backend/internal/config"
	"station_exam_backend/internal/model"
	"station_exam_backend/internal/repository"
	"station_exam_backend/internal/util"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// ScopeService 评分授权范围解析
// 每个请求解析一次，显式传入后续操作，不依赖任何全局"当前用户"。
type ScopeService struct {
	ScopeRepo  *repository.ScopeRepository
	GraderRepo *repository.GraderRepository
	Redis      *redis.Client
	Config     *config.Config
}

func NewScopeService(scopeRepo *repository.ScopeRepository, graderRepo *repository.GraderRepository, rdb *redis.Client, cfg *config.Config) *ScopeService {
	return &ScopeService{ScopeRepo: scopeRepo, GraderRepo: graderRepo, Redis: rdb, Config: cfg}
}

func (s *ScopeService) scopeCacheKey(accountID uint) string {
	return fmt.Sprintf("scope:%d", accountID)
}

// Resolve 取账号的授权范围，带 Redis 读缓存
// 范围由外部管理端维护，缓存只做 TTL 过期，不做主动失效。
func (s *ScopeService) Resolve(accountID uint) (*model.ScopeAssignment, error) {
	ctx := context.Background()

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, s.scopeCacheKey(accountID)).Bytes(); err == nil {
			var cached model.ScopeAssignment
			if json.Unmarshal(raw, &cached) == nil {
				return &cached, nil
			}
		}
	}

	scope, err := s.ScopeRepo.FindByAccountID(accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrScopeNotFound
		}
		return nil, err
	}

	if s.Redis != nil {
		if raw, err := json.Marshal(scope); err == nil {
			ttl := time.Duration(s.Config.Cache.ScopeTTLSeconds) * time.Second
			s.Redis.Set(ctx, s.scopeCacheKey(accountID), raw, ttl)
		}
	}

	return scope, nil
}

// AuthorizeSubmission 判定该账号能否以申报的 grader 身份给指定站点/考链评分
// 管理员无条件放行；其余规则依次：绑定评分人必须一致、共享账号申报的
// grader 必须在目录中、站点与考链限制逐项比对。
func (s *ScopeService) AuthorizeSubmission(claims *util.Claims, declaredGraderID, stationID, examChainID uint) error {
	if claims.IsAdmin() {
		return nil
	}

	scope, err := s.Resolve(claims.AccountID)
	if err != nil {
		return err
	}

	if scope.BoundGraderID != nil {
		if *scope.BoundGraderID != declaredGraderID {
			return util.ErrGraderMismatch
		}
	} else {
		ok, err := s.GraderRepo.Exists(declaredGraderID)
		if err != nil {
			return err
		}
		if !ok {
			return util.ErrUnknownGrader
		}
	}

	if scope.StationID != nil && *scope.StationID != stationID {
		return util.ErrOutOfStationScope
	}
	if scope.ExamChainID != nil && *scope.ExamChainID != examChainID {
		return util.ErrOutOfChainScope
	}

	return nil
}
