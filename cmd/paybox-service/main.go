package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"paybox/internal/app"
	"paybox/internal/config"
	"paybox/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := logger.LevelName(cfg.Logger.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse log level: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewAdapter(
		logger.Config{
			Service:  cfg.App.Name,
			Env:      cfg.Env,
			Filename: cfg.Logger.Filename,
		},
		level,
		logger.MaxSize(cfg.Logger.MaxSize),
		logger.MaxBackups(max(cfg.Logger.MaxBackups, 1)),
		logger.MaxAge(cfg.Logger.MaxAge),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Infow("application starting", "env", cfg.Env, "version", cfg.App.Version)

	err = app.Run(ctx, cfg, log)
	if err != nil {
		log.Errorw("application failed", "error", err)
		cancel()
		os.Exit(1)
	}

	log.Infow("application exited normally")
}
