package main

import (
	"context"
	"log"
	"time"

	"cortesec-admin/internal/app"
	"cortesec-admin/internal/bootstrap"
	"cortesec-admin/internal/config"
	"cortesec-admin/internal/shared/apperror"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a, err := app.BuildApp(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}
	defer a.Close()

	bootstrap.StartHTTPServer(
		a.Router,
		bootstrap.ServerConfig{
			Port:         cfg.Port,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		a.Recorder,
	)
}
