package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bookswap/bookswap-backend/internal/models"
	"github.com/redis/go-redis/v9"
)

// StatsCache keeps rating aggregates in Redis for a short TTL so profile
// pages don't recompute them on every hit. All methods are best effort and
// nil-safe: a nil cache behaves like a permanent miss.
type StatsCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStatsCache(rdb *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{rdb: rdb, ttl: ttl}
}

func statsKey(userID int64) string { return fmt.Sprintf("rating:stats:%d", userID) }

func (s *StatsCache) Get(ctx context.Context, userID int64) (*models.RatingStats, bool) {
	if s == nil || s.rdb == nil {
		return nil, false
	}
	b, err := s.rdb.Get(ctx, statsKey(userID)).Bytes()
	if err != nil {
		return nil, false
	}
	var stats models.RatingStats
	if err := json.Unmarshal(b, &stats); err != nil {
		return nil, false
	}
	return &stats, true
}

func (s *StatsCache) Set(ctx context.Context, userID int64, stats *models.RatingStats) {
	if s == nil || s.rdb == nil {
		return
	}
	b, _ := json.Marshal(stats)
	_ = s.rdb.Set(ctx, statsKey(userID), b, s.ttl).Err()
}

func (s *StatsCache) Invalidate(ctx context.Context, userID int64) {
	if s == nil || s.rdb == nil {
		return
	}
	_ = s.rdb.Del(ctx, statsKey(userID)).Err()
}
