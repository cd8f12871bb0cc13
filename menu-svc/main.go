package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"pavanxo/config"
	httpapi "pavanxo/menu-svc/internal/api/http"
	"pavanxo/menu-svc/internal/service"
	"pavanxo/menu-svc/internal/storage"

	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("3000")

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := config.MustInitPostgres(cfg.DatabaseURL, logger)
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repo := storage.NewPostgresRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Fatal("failed to prepare schema", zap.Error(err))
	}

	var (
		cache   service.MenuCache
		popular service.PopularityReader
	)
	if rdb := config.MustInitRedis(cfg.RedisAddr, logger); rdb != nil {
		defer rdb.Close()
		redisCache := storage.NewRedisCache(rdb, cfg.MenuCacheTTL)
		cache, popular = redisCache, redisCache
	} else {
		logger.Info("REDIS_ADDR not set, menu cache and popularity disabled")
	}

	var publisher service.OrderPublisher
	if cfg.KafkaBroker != "" {
		writer := config.NewKafkaWriter(cfg.KafkaBroker, cfg.OrdersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	} else {
		logger.Info("KAFKA_BROKER not set, order events disabled")
	}

	qr := service.ReceiptQR{BaseURL: cfg.PublicBaseURL}

	handler := httpapi.NewHandler(
		service.NewMenuService(repo, cache, popular, logger),
		service.NewOrderService(repo, qr, publisher, logger),
		service.NewContactService(repo),
	)

	if err := httpapi.StartServer(ctx, ":"+cfg.Port, httpapi.NewRouter(handler, logger), logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
