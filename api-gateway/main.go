package main

import (
	"net/http"
	"time"

	"pavanxo/api-gateway/internal/gateway"
	"pavanxo/config"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load("8080")

	logger, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	gw := gateway.NewGateway(gateway.Config{
		MenuSvcURL: cfg.MenuSvcURL,
		StaticDir:  cfg.StaticDir,
	}, &http.Client{Timeout: 30 * time.Second}, logger)

	handler := cors.Default().Handler(gw.SetupRoutes())

	logger.Info("api gateway starting",
		zap.String("port", cfg.Port),
		zap.String("menu_svc", cfg.MenuSvcURL),
		zap.String("static_dir", cfg.StaticDir))
	if err := http.ListenAndServe(":"+cfg.Port, handler); err != nil {
		logger.Fatal("gateway stopped", zap.Error(err))
	}
}
