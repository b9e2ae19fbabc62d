package queue

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// Chart build shape: ten progress steps, one dataset point per day.
const (
	chartBuildSteps  = 10
	defaultChartDays = 30
)

// ChartBuilder runs chart_build jobs: a simulated long-running build
// that reports progress in ten steps and completes with a generated
// time-series dataset.
type ChartBuilder struct {
	jobs      JobStore
	publisher *events.Publisher
	stepDelay time.Duration
	logger    *slog.Logger
}

// NewChartBuilder creates a chart builder with the production step
// delay of 500ms.
func NewChartBuilder(jobs JobStore, publisher *events.Publisher, logger *slog.Logger) *ChartBuilder {
	if logger == nil {
		logger = slog.Default()
	}
	return &ChartBuilder{
		jobs:      jobs,
		publisher: publisher,
		stepDelay: 500 * time.Millisecond,
		logger:    logger.With("component", "chart_builder"),
	}
}

// Run executes one chart_build job. Progress advances by 10 per step;
// the final step carries the dataset in the completion result.
func (b *ChartBuilder) Run(ctx context.Context, j *ent.Job) error {
	days := chartDays(j.Params)

	for step := 1; step < chartBuildSteps; step++ {
		select {
		case <-ctx.Done():
			return fmt.Errorf("chart build interrupted: %w", ctx.Err())
		case <-time.After(b.stepDelay):
		}
		b.checkpoint(ctx, j.ID, step*100/chartBuildSteps)
	}

	select {
	case <-ctx.Done():
		return fmt.Errorf("chart build interrupted: %w", ctx.Err())
	case <-time.After(b.stepDelay):
	}

	dataset := buildDataset(days)
	updated, err := b.jobs.Transition(ctx, j.ID, job.StatusCompleted, services.TransitionFields{
		Result: map[string]interface{}{
			"type":    "chart",
			"dataset": dataset,
			"blocks": []models.Block{{
				Type: models.BlockTypeChart,
				Data: map[string]interface{}{
					"chartId": fmt.Sprintf("chart_%s", j.ID),
					"dataset": dataset,
				},
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to complete chart build: %w", err)
	}

	if err := b.publisher.PublishJobUpdate(events.JobUpdatePayload{
		JobID:    updated.ID,
		Status:   string(updated.Status),
		Progress: updated.Progress,
		Result:   updated.Result,
	}); err != nil {
		b.logger.Warn("Failed to publish chart completion", "job_id", j.ID, "error", err)
	}
	return nil
}

// checkpoint records intermediate progress. Best effort.
func (b *ChartBuilder) checkpoint(ctx context.Context, jobID string, progress int) {
	updated, err := b.jobs.Transition(ctx, jobID, job.StatusProgress, services.TransitionFields{
		Progress: &progress,
	})
	if err != nil {
		b.logger.Warn("Failed to record chart progress", "job_id", jobID, "error", err)
		return
	}
	if err := b.publisher.PublishJobUpdate(events.JobUpdatePayload{
		JobID:    updated.ID,
		Status:   string(updated.Status),
		Progress: updated.Progress,
	}); err != nil {
		b.logger.Warn("Failed to publish chart progress", "job_id", jobID, "error", err)
	}
}

// chartDays reads the requested range from the job params.
func chartDays(params map[string]interface{}) int {
	if params == nil {
		return defaultChartDays
	}
	switch v := params["range"].(type) {
	case float64:
		if v > 0 {
			return int(v)
		}
	case int:
		if v > 0 {
			return v
		}
	}
	return defaultChartDays
}

// buildDataset generates one synthetic value per day, oldest first.
func buildDataset(days int) []map[string]interface{} {
	now := time.Now()
	dataset := make([]map[string]interface{}, 0, days)
	for i := days - 1; i >= 0; i-- {
		dataset = append(dataset, map[string]interface{}{
			"date":  now.AddDate(0, 0, -i).Format("2006-01-02"),
			"value": rand.IntN(100),
		})
	}
	return dataset
}
