package scheduler

import (
	"fmt"
	"log/slog"

	"sanse-desk/internal/config"
	"sanse-desk/internal/db"

	"github.com/robfig/cron/v3"
)

type Scheduler struct {
	cron *cron.Cron
	repo *db.Repository
	cfg  *config.Config
}

func NewScheduler(repo *db.Repository, cfg *config.Config) *Scheduler {
	return &Scheduler{
		cron: cron.New(),
		repo: repo,
		cfg:  cfg,
	}
}

func (s *Scheduler) Start() error {
	// Cron job: demote expired paid subscriptions (default daily 00:10)
	_, err := s.cron.AddFunc(s.cfg.SweepSchedule, s.sweepExpiredSubscriptions)
	if err != nil {
		return fmt.Errorf("failed to add expiry sweep job: %w", err)
	}

	s.cron.Start()
	slog.Info("Cron scheduler started", "sweep_schedule", s.cfg.SweepSchedule)

	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
	slog.Info("Cron scheduler stopped")
}

// sweepExpiredSubscriptions resets every expired paid account to Silver
func (s *Scheduler) sweepExpiredSubscriptions() {
	slog.Info("Running expired subscriptions sweep...")

	demoted, err := s.repo.SweepExpiredSubscriptions()
	if err != nil {
		slog.Error("Expired subscriptions sweep failed", "error", err)
		return
	}

	if demoted == 0 {
		slog.Info("No expired subscriptions found")
		return
	}

	slog.Info("Expired subscriptions sweep completed", "demoted", demoted)
}
