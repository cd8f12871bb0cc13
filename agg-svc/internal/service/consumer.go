package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"pavanxo/agg-svc/internal/domain"

	"go.uber.org/zap"
)

const (
	DefaultMinBackoff = 100 * time.Millisecond
	DefaultMaxBackoff = 5 * time.Second
)

// Consumer waits MinBackoff after a failed read, doubling up to MaxBackoff
// while failures continue. A successful read resets the wait.
type Consumer struct {
	Reader     MessageReader
	Store      StoreInterface
	Logger     *zap.Logger
	MinBackoff time.Duration
	MaxBackoff time.Duration
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader:     reader,
		Store:      store,
		Logger:     logger,
		MinBackoff: DefaultMinBackoff,
		MaxBackoff: DefaultMaxBackoff,
	}
}

func (c *Consumer) log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

func (c *Consumer) backoffBounds() (time.Duration, time.Duration) {
	minWait, maxWait := c.MinBackoff, c.MaxBackoff
	if minWait <= 0 {
		minWait = DefaultMinBackoff
	}
	if maxWait < minWait {
		maxWait = minWait
	}
	return minWait, maxWait
}

// Start reads until ctx is cancelled or the reader is closed. Undecodable
// messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) error {
	c.log().Info("order aggregation consumer started")
	minWait, maxWait := c.backoffBounds()
	wait := minWait
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, io.EOF) {
				c.log().Info("order aggregation consumer stopped")
				return nil
			}
			c.log().Warn("read message failed", zap.Error(err), zap.Duration("retry_in", wait))

			timer := time.NewTimer(wait)
			select {
			case <-ctx.Done():
				timer.Stop()
				c.log().Info("order aggregation consumer stopped")
				return nil
			case <-timer.C:
			}
			wait *= 2
			if wait > maxWait {
				wait = maxWait
			}
			continue
		}
		wait = minWait

		var msg domain.KafkaMessage
		if err := json.Unmarshal(message.Value, &msg); err != nil {
			c.log().Warn("skipping undecodable message",
				zap.Int64("offset", message.Offset), zap.Error(err))
			continue
		}

		_ = c.ProcessOrder(ctx, msg)
	}
}

func (c *Consumer) ProcessOrder(ctx context.Context, msg domain.KafkaMessage) error {
	if msg.Type != domain.OrderCreated {
		return nil
	}
	logger := c.log().With(zap.Int("order_id", msg.OrderID))

	if err := c.Store.RecordOrder(ctx, msg); err != nil {
		logger.Error("recording order failed", zap.Error(err))
		return err
	}

	acked, err := c.Store.AcknowledgeOrder(ctx, msg.OrderID)
	if err != nil {
		logger.Error("acknowledging order failed", zap.Error(err))
		return err
	}

	logger.Info("order aggregated", zap.Int("lines", len(msg.Items)), zap.Bool("acknowledged", acked))
	return nil
}
