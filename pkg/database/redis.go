package database

import (
	"context"
	"fmt"
	"time"

	"station_exam_backend/internal/config"
	"station_exam_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// InitRedis 量表与授权范围的读缓存连接
// 缓存是可选加速项，调用方在连接失败时可以降级为直查数据库。
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     50,
		MinIdleConns: 5,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, err
	}

	logger.Log.Info("Redis connection established")
	return rdb, nil
}
