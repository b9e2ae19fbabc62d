package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/metrics"
	"github.com/splunk-genie/genie/pkg/services"
)

// Executor runs claimed jobs in their own goroutines, one per job,
// dispatching by job type. It owns the per-job timeout, the cancel
// registry, and the failed transition for every job whose runner did
// not reach a terminal state itself.
type Executor struct {
	cfg       config.QueueConfig
	jobs      JobStore
	publisher *events.Publisher
	runners   map[job.Type]JobRunner
	logger    *slog.Logger

	mu      sync.RWMutex
	stopped bool
	active  map[string]*execution
	wg      sync.WaitGroup
}

// execution is the in-flight record of one running job.
type execution struct {
	cancel context.CancelFunc
	done   chan struct{}

	mu     sync.Mutex
	reason string
}

func (e *execution) cancelWith(reason string) {
	e.mu.Lock()
	if e.reason == "" {
		e.reason = reason
	}
	e.mu.Unlock()
	e.cancel()
}

func (e *execution) cancelReason() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.reason
}

// NewExecutor creates an executor dispatching assistant_response jobs
// to the pipeline runner and chart_build jobs to the chart builder.
func NewExecutor(cfg config.QueueConfig, jobs JobStore, publisher *events.Publisher, pipeline, chart JobRunner, logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Executor{
		cfg:       cfg,
		jobs:      jobs,
		publisher: publisher,
		runners: map[job.Type]JobRunner{
			job.TypeAssistantResponse: pipeline,
			job.TypeChartBuild:        chart,
		},
		logger: logger.With("component", "executor"),
		active: make(map[string]*execution),
	}
}

// Submit starts the job in its own goroutine and returns immediately.
// Returns ErrShuttingDown after Stop has begun.
func (x *Executor) Submit(j *ent.Job) error {
	// Double-checked stop state: wg.Add must happen under the read lock
	// so Stop cannot observe a drained wg while a submit is in flight.
	x.mu.RLock()
	if x.stopped {
		x.mu.RUnlock()
		return ErrShuttingDown
	}
	x.wg.Add(1)
	x.mu.RUnlock()

	ctx, cancel := context.WithTimeout(context.Background(), x.jobTimeout())
	exec := &execution{cancel: cancel, done: make(chan struct{})}

	x.mu.Lock()
	if x.stopped {
		x.mu.Unlock()
		cancel()
		x.wg.Done()
		return ErrShuttingDown
	}
	x.active[j.ID] = exec
	x.mu.Unlock()

	go x.run(ctx, j, exec)
	return nil
}

// Cancel aborts a running job. Returns false when the job is not
// currently executing here.
func (x *Executor) Cancel(jobID, reason string) bool {
	x.mu.RLock()
	exec, ok := x.active[jobID]
	x.mu.RUnlock()
	if !ok {
		return false
	}
	exec.cancelWith(reason)
	return true
}

// AwaitDone returns a channel closed when the job's goroutine exits.
// For a job not executing here the channel is already closed.
func (x *Executor) AwaitDone(jobID string) <-chan struct{} {
	x.mu.RLock()
	exec, ok := x.active[jobID]
	x.mu.RUnlock()
	if !ok {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return exec.done
}

// ActiveCount returns the number of jobs executing here.
func (x *Executor) ActiveCount() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.active)
}

// Stop refuses new submissions, cancels every running job, and waits
// up to the graceful shutdown timeout. Jobs still not terminal after
// the grace period are marked failed with reason "shutdown".
func (x *Executor) Stop() {
	x.mu.Lock()
	if x.stopped {
		x.mu.Unlock()
		return
	}
	x.stopped = true
	execs := make(map[string]*execution, len(x.active))
	for id, exec := range x.active {
		execs[id] = exec
	}
	x.mu.Unlock()

	for _, exec := range execs {
		exec.cancelWith("shutdown")
	}

	done := make(chan struct{})
	go func() {
		x.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(x.gracePeriod()):
		x.logger.Warn("Graceful shutdown timeout, forcing job failure")
	}

	// Best effort: anything still non-terminal fails with "shutdown".
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	for id := range execs {
		x.failJob(ctx, id, "shutdown")
	}
}

// run executes one job and guarantees a terminal outcome.
func (x *Executor) run(ctx context.Context, j *ent.Job, exec *execution) {
	defer func() {
		exec.cancel()
		x.mu.Lock()
		delete(x.active, j.ID)
		x.mu.Unlock()
		close(exec.done)
		x.wg.Done()
	}()

	logger := x.logger.With("job_id", j.ID, "type", j.Type)

	runner, ok := x.runners[j.Type]
	if !ok || runner == nil {
		x.failJob(context.Background(), j.ID, fmt.Sprintf("no runner for job type %q", j.Type))
		return
	}

	start := time.Now()
	metrics.RecordJobStart()
	err := runner.Run(ctx, j)
	if err == nil {
		metrics.RecordJobEnd(string(j.Type), "completed", time.Since(start).Seconds())
		logger.Info("Job finished", "duration", time.Since(start))
		return
	}

	reason := x.failureReason(ctx, exec, err)
	metrics.RecordJobEnd(string(j.Type), "failed", time.Since(start).Seconds())
	logger.Warn("Job failed", "duration", time.Since(start), "reason", reason)
	x.failJob(context.Background(), j.ID, reason)
}

// failureReason maps a runner error and the job context to the error
// text stored on the job.
func (x *Executor) failureReason(ctx context.Context, exec *execution, err error) string {
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		return fmt.Sprintf("job timed out after %v", x.jobTimeout())
	case errors.Is(ctx.Err(), context.Canceled):
		if reason := exec.cancelReason(); reason != "" {
			return reason
		}
		return "shutdown"
	default:
		return err.Error()
	}
}

// failJob transitions a job to failed, tolerating jobs that are
// already terminal.
func (x *Executor) failJob(ctx context.Context, jobID, reason string) {
	updated, err := x.jobs.Transition(ctx, jobID, job.StatusFailed, services.TransitionFields{
		Error: &reason,
	})
	if err != nil {
		if !errors.Is(err, services.ErrInvalidTransition) && !errors.Is(err, services.ErrNotFound) {
			x.logger.Error("Failed to mark job failed", "job_id", jobID, "error", err)
		}
		return
	}
	if err := x.publisher.PublishJobUpdate(events.JobUpdatePayload{
		JobID:    updated.ID,
		Status:   string(updated.Status),
		Progress: updated.Progress,
		Error:    updated.Error,
	}); err != nil {
		x.logger.Warn("Failed to publish job failure", "job_id", jobID, "error", err)
	}
}

func (x *Executor) jobTimeout() time.Duration {
	if x.cfg.JobTimeout > 0 {
		return x.cfg.JobTimeout
	}
	return 5 * time.Minute
}

func (x *Executor) gracePeriod() time.Duration {
	if x.cfg.GracefulShutdownTimeout > 0 {
		return x.cfg.GracefulShutdownTimeout
	}
	return 10 * time.Second
}
