package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
)

// WorkerPool manages the claiming workers and the shared executor.
type WorkerPool struct {
	client   *ent.Client
	config   config.QueueConfig
	executor *Executor
	workers  []*Worker
	started  bool
}

// NewWorkerPool creates a new worker pool around an executor.
func NewWorkerPool(client *ent.Client, cfg config.QueueConfig, executor *Executor) *WorkerPool {
	return &WorkerPool{
		client:   client,
		config:   cfg,
		executor: executor,
		workers:  make([]*Worker, 0, cfg.WorkerCount),
	}
}

// Start spawns the worker goroutines. It is safe to call multiple
// times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call")
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool", "worker_count", p.config.WorkerCount)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("worker-%d", i)
		worker := NewWorker(workerID, p.client, p.config, p.executor, p.executor.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	slog.Info("Worker pool started")
	return nil
}

// Stop halts claiming, then drains the executor: running jobs get the
// graceful shutdown window before being failed with reason "shutdown".
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}
	p.executor.Stop()

	slog.Info("Worker pool stopped gracefully")
}

// CancelJob aborts a running job on this process. Returns true when
// the job was found and cancelled.
func (p *WorkerPool) CancelJob(jobID, reason string) bool {
	return p.executor.Cancel(jobID, reason)
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.Job.Query().
		Where(job.StatusEQ(job.StatusQueued)).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check", "error", errQ)
	}

	activeJobs, errA := p.client.Job.Query().
		Where(job.StatusIn(job.StatusStarted, job.StatusProgress)).
		Count(ctx)
	if errA != nil {
		slog.Error("Failed to query active jobs for health check", "error", errA)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == WorkerStatusWorking {
			activeWorkers++
		}
	}

	// DB errors affect health status: unreachable database means the
	// pool cannot make progress.
	dbHealthy := errQ == nil && errA == nil
	isHealthy := len(p.workers) > 0 && activeJobs <= p.config.MaxConcurrentJobs && dbHealthy

	var dbError string
	if !dbHealthy {
		if errQ != nil {
			dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
		} else {
			dbError = fmt.Sprintf("active jobs query failed: %v", errA)
		}
	}

	return &PoolHealth{
		IsHealthy:     isHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		ActiveJobs:    activeJobs,
		MaxConcurrent: p.config.MaxConcurrentJobs,
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
	}
}
