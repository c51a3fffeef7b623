// Package scheduler runs periodic background jobs such as the dataset warmup.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// Warmer prefetches default datasets for a list of symbols.
type Warmer interface {
	WarmAll(ctx context.Context, symbols []string) (int, error)
}

// Scheduler manages the cron tasks.
type Scheduler struct {
	cron    *cron.Cron
	warmer  Warmer
	symbols []string
	ctx     context.Context
}

// NewScheduler creates a new Scheduler. ctx bounds every job run.
func NewScheduler(ctx context.Context, warmer Warmer, symbols []string) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		warmer:  warmer,
		symbols: symbols,
		ctx:     ctx,
	}
}

// Register registers the warmup task with a six-field cron spec (seconds first).
func (s *Scheduler) Register(warmupCron string) error {
	if _, err := s.cron.AddFunc(warmupCron, s.warmupTask); err != nil {
		return fmt.Errorf("register warmup task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunWarmupNow executes the warmup task immediately (for RUN_ON_START).
func (s *Scheduler) RunWarmupNow() {
	s.warmupTask()
}

func (s *Scheduler) warmupTask() {
	slog.Info("running warmup task", "symbols", len(s.symbols))
	warmed, err := s.warmer.WarmAll(s.ctx, s.symbols)
	if err != nil {
		slog.Error("warmup task aborted", "warmed", warmed, "error", err)
	}
}
