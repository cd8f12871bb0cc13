package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"pavanxo/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	AllTimeKey = "popular:alltime"
	dailyTTL   = 7 * 24 * time.Hour
)

func DailyPopularKey(day string) string { return "popular:daily:" + day }

func DailyStatsKey(day string) string { return "orders:daily:" + day }

type Store struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewStore(db *sql.DB, rdb *redis.Client) *Store {
	return &Store{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// RecordOrder adds each line's quantity to the daily and all-time popularity
// sets and bumps the day's order count and revenue. The day comes from the
// event timestamp when present.
func (s *Store) RecordOrder(ctx context.Context, msg domain.KafkaMessage) error {
	at := msg.Timestamp
	if at.IsZero() {
		at = s.now()
	}
	day := at.UTC().Format("2006-01-02")
	dailyKey := DailyPopularKey(day)
	statsKey := DailyStatsKey(day)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, line := range msg.Items {
			if line.MenuItemID <= 0 || line.Quantity <= 0 {
				continue
			}
			member := strconv.Itoa(line.MenuItemID)
			pipe.ZIncrBy(ctx, dailyKey, float64(line.Quantity), member)
			pipe.ZIncrBy(ctx, AllTimeKey, float64(line.Quantity), member)
		}
		pipe.Expire(ctx, dailyKey, dailyTTL)

		pipe.HIncrBy(ctx, statsKey, "orders", 1)
		pipe.HIncrByFloat(ctx, statsKey, "revenue", msg.TotalAmount)
		pipe.Expire(ctx, statsKey, dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record order %d: %w", msg.OrderID, err)
	}
	return nil
}

// AcknowledgeOrder moves a pending order to received. It reports false when
// the order was missing or already past pending.
func (s *Store) AcknowledgeOrder(ctx context.Context, orderID int) (bool, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE orders
		SET status = 'received'
		WHERE id = $1 AND status = 'pending'
	`, orderID)
	if err != nil {
		return false, fmt.Errorf("acknowledge order %d: %w", orderID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
