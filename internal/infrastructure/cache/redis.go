package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"HistoryScanner/internal/domain"
	"HistoryScanner/internal/ports"
)

const redisKeyPrefix = "historyscanner:events:"

// Redis stores results as JSON blobs with a server-side TTL, so cache
// state survives process restarts and is shared between replicas.
type Redis struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

var _ ports.Cache = (*Redis)(nil)

// NewRedis wraps an existing client; ttl <= 0 selects DefaultTTL.
func NewRedis(rdb *redis.Client, ttl time.Duration, logger *slog.Logger) *Redis {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Redis{rdb: rdb, ttl: ttl, logger: logger}
}

// Get returns the cached result for key; any backend error is treated
// as a miss so a degraded Redis never blocks aggregation.
func (r *Redis) Get(ctx context.Context, key string) (domain.Result, bool) {
	raw, err := r.rdb.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) && r.logger != nil {
			r.logger.Warn("cache read failed", "key", key, "error", err)
		}
		return domain.Result{}, false
	}

	var result domain.Result
	if err := json.Unmarshal(raw, &result); err != nil {
		if r.logger != nil {
			r.logger.Warn("cache entry corrupt", "key", key, "error", err)
		}
		return domain.Result{}, false
	}

	return result, true
}

// Set stores the result under key; write failures are logged and
// otherwise ignored.
func (r *Redis) Set(ctx context.Context, key string, result domain.Result) {
	raw, err := json.Marshal(result)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("cache marshal failed", "key", key, "error", err)
		}
		return
	}

	if err := r.rdb.Set(ctx, redisKeyPrefix+key, raw, r.ttl).Err(); err != nil && r.logger != nil {
		r.logger.Warn("cache write failed", "key", key, "error", err)
	}
}
