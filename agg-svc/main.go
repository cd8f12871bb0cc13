package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pavanxo/agg-svc/internal/service"
	"pavanxo/agg-svc/internal/storage"
	"pavanxo/config"

	"go.uber.org/zap"
)

const consumerGroup = "agg-svc"

func main() {
	cfg := config.Load("8082")

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if cfg.KafkaBroker == "" || cfg.RedisAddr == "" {
		logger.Fatal("KAFKA_BROKER and REDIS_ADDR are required")
	}

	db := config.MustInitPostgres(cfg.DatabaseURL, logger)
	defer db.Close()

	rdb := config.MustInitRedis(cfg.RedisAddr, logger)
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.KafkaBroker, cfg.OrdersTopic, consumerGroup)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(db, rdb), logger)
	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("consumer stopped", zap.Error(err))
	}
}
