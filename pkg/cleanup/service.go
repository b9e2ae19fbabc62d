// Package cleanup provides data retention and cleanup services.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal jobs past the job retention window
//   - Deletes cached query results not refreshed within theirs
//
// All operations are idempotent and safe to run repeatedly.
type Service struct {
	config  config.RetentionConfig
	jobs    *services.JobService
	results *services.QueryResultService

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg config.RetentionConfig, jobs *services.JobService, results *services.QueryResultService) *Service {
	return &Service{
		config:  cfg,
		jobs:    jobs,
		results: results,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"result_retention_days", s.config.ResultRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	interval := s.config.CleanupInterval
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.deleteOldJobs(ctx)
	s.deleteOldResults(ctx)
}

func (s *Service) deleteOldJobs(ctx context.Context) {
	count, err := s.jobs.DeleteTerminalOlderThan(ctx, s.config.JobRetentionDays)
	if err != nil {
		slog.Error("Retention: terminal job cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old terminal jobs", "count", count)
	}
}

func (s *Service) deleteOldResults(ctx context.Context) {
	count, err := s.results.DeleteOlderThan(ctx, s.config.ResultRetentionDays)
	if err != nil {
		slog.Error("Retention: query result cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("Retention: deleted old query results", "count", count)
	}
}
