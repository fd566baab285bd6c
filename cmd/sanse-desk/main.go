package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"sanse-desk/internal/cli"
	"sanse-desk/internal/config"
	"sanse-desk/internal/db"
	"sanse-desk/internal/scheduler"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
	}))
	slog.SetDefault(logger)

	slog.Info("Starting sanse-desk", "pid", os.Getpid())

	cfg := config.Load()
	slog.Info("Configuration loaded",
		"db_dsn", cfg.DBDsn,
		"sweep_schedule", cfg.SweepSchedule,
		"has_bootstrap_admin", cfg.AdminUsername != "",
	)

	repo, err := db.NewRepository(cfg.DBDsn)
	if err != nil {
		slog.Error("Failed to initialize database repository", "error", err, "dsn", cfg.DBDsn)
		os.Exit(1)
	}
	slog.Info("Database repository initialized successfully")

	if err := repo.AutoMigrate(); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}
	if err := repo.EnsureWallet(); err != nil {
		slog.Error("Wallet bootstrap failed", "error", err)
		os.Exit(1)
	}
	if err := repo.EnsureAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		slog.Error("Admin bootstrap failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready")

	sched := scheduler.NewScheduler(repo, cfg)
	if err := sched.Start(); err != nil {
		slog.Error("Failed to start scheduler", "error", err)
		slog.Warn("Continuing without scheduler - expired subscriptions are only demoted on check")
	} else {
		defer func() {
			slog.Info("Stopping scheduler")
			sched.Stop()
		}()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	menu := cli.New(cfg, repo)
	if err := menu.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			slog.Info("Menu loop stopped by signal")
		} else {
			slog.Error("Menu loop failed", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("sanse-desk shutdown completed")
}
