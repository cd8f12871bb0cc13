package storage

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"pavanxo/menu-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	menuCacheKey       = "menu:all"
	popularAllTimeKey  = "popular:alltime"
	popularDailyPrefix = "popular:daily:"
	ordersDailyPrefix  = "orders:daily:"
)

type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func (c *RedisCache) GetMenu(ctx context.Context) ([]domain.MenuItem, bool, error) {
	raw, err := c.Client.Get(ctx, menuCacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		// A corrupt snapshot is a miss; the next SetMenu overwrites it.
		return nil, false, nil
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	return items, true, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, items []domain.MenuItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.Client.Set(ctx, menuCacheKey, payload, c.TTL).Err()
}

func (c *RedisCache) InvalidateMenu(ctx context.Context) error {
	return c.Client.Del(ctx, menuCacheKey).Err()
}

// TopOrdered reads the tally maintained by agg-svc: all-time when day is
// empty, otherwise the daily tally for that YYYY-MM-DD.
func (c *RedisCache) TopOrdered(ctx context.Context, day string, limit int) ([]domain.PopularItem, error) {
	key := popularAllTimeKey
	if day != "" {
		key = popularDailyPrefix + day
	}
	members, err := c.Client.ZRevRangeWithScores(ctx, key, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	ranked := make([]domain.PopularItem, 0, len(members))
	for _, member := range members {
		name, ok := member.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(name)
		if err != nil {
			continue
		}
		ranked = append(ranked, domain.PopularItem{
			MenuItem: domain.MenuItem{ID: id},
			Ordered:  int(member.Score),
		})
	}
	return ranked, nil
}

// DailyStats reads the order count and revenue for one day. A day with no
// orders, or one whose tally expired, reads as zero.
func (c *RedisCache) DailyStats(ctx context.Context, day string) (domain.DailyStats, error) {
	stats := domain.DailyStats{Date: day}
	values, err := c.Client.HGetAll(ctx, ordersDailyPrefix+day).Result()
	if err != nil {
		return stats, err
	}
	if raw, ok := values["orders"]; ok {
		if orders, err := strconv.Atoi(raw); err == nil {
			stats.Orders = orders
		}
	}
	if raw, ok := values["revenue"]; ok {
		if revenue, err := strconv.ParseFloat(raw, 64); err == nil {
			stats.Revenue = revenue
		}
	}
	return stats, nil
}
