// Package queue implements the background job scheduler: a worker pool
// that claims queued jobs from the database and an executor that runs
// them with per-job timeout and cancellation.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/services"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable means no queued job was found to claim.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity means the global concurrent job limit is reached.
	ErrAtCapacity = errors.New("at maximum concurrent job capacity")

	// ErrShuttingDown means the executor no longer accepts jobs.
	ErrShuttingDown = errors.New("executor is shutting down")
)

// JobStore is the slice of the job service the queue needs.
type JobStore interface {
	Transition(ctx context.Context, id string, next job.Status, fields services.TransitionFields) (*ent.Job, error)
}

// JobRunner executes one job to its terminal state on success. A nil
// return means the runner already completed or failed the job; a
// non-nil error means the executor must mark the job failed.
type JobRunner interface {
	Run(ctx context.Context, j *ent.Job) error
}

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// WorkerHealth is a snapshot of one worker's state.
type WorkerHealth struct {
	ID            string       `json:"id"`
	Status        WorkerStatus `json:"status"`
	CurrentJobID  string       `json:"current_job_id,omitempty"`
	JobsProcessed int          `json:"jobs_processed"`
	LastActivity  time.Time    `json:"last_activity"`
}

// PoolHealth is a snapshot of the whole pool's state.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveJobs    int            `json:"active_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}
