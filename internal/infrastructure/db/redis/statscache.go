package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/southtrails/tours-api/internal/core/ports"
)

const (
	statsKey = "dashboard:stats"
	statsTTL = 30 * time.Second
)

// StatsCache caches the admin dashboard aggregation in Redis with a short
// TTL. Every error degrades to a cache miss; the dashboard never fails
// because Redis is unavailable.
type StatsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewStatsCache creates a StatsCache wrapping the given Redis client.
func NewStatsCache(client *redis.Client, log zerolog.Logger) *StatsCache {
	return &StatsCache{client: client, log: log}
}

// Get returns the cached stats, or (nil, false) on miss or error.
func (c *StatsCache) Get(ctx context.Context) (*ports.DashboardStats, bool) {
	raw, err := c.client.Get(ctx, statsKey).Bytes()
	if err != nil {
		return nil, false
	}
	var stats ports.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		c.log.Warn().Err(err).Msg("discarding malformed dashboard stats cache entry")
		return nil, false
	}
	return &stats, true
}

// Set stores the stats for statsTTL. Failures are logged and ignored.
func (c *StatsCache) Set(ctx context.Context, stats *ports.DashboardStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		c.log.Warn().Err(err).Msg("failed to marshal dashboard stats for cache")
		return
	}
	if err := c.client.Set(ctx, statsKey, raw, statsTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("failed to cache dashboard stats")
	}
}
