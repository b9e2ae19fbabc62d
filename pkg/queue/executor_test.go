package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/services"
)

// memJobs applies transitions through the real validator.
type memJobs struct {
	mu   sync.Mutex
	jobs map[string]*ent.Job
}

func newMemJobs(seed ...*ent.Job) *memJobs {
	m := &memJobs{jobs: make(map[string]*ent.Job)}
	for _, j := range seed {
		cp := *j
		m.jobs[j.ID] = &cp
	}
	return m
}

func (m *memJobs) Transition(_ context.Context, id string, next job.Status, fields services.TransitionFields) (*ent.Job, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	if err := services.ValidateTransition(j.Status, j.Progress, j.Result != nil, next, fields); err != nil {
		return nil, err
	}
	j.Status = next
	switch {
	case next == job.StatusCompleted:
		j.Progress = 100
	case fields.Progress != nil:
		j.Progress = *fields.Progress
	}
	if fields.Result != nil {
		j.Result = fields.Result
	}
	if fields.Error != nil {
		j.Error = fields.Error
	}
	cp := *j
	return &cp, nil
}

func (m *memJobs) get(id string) *ent.Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *m.jobs[id]
	return &cp
}

// scriptedRunner blocks until its context ends or release is closed.
type scriptedRunner struct {
	err     error
	block   bool
	release chan struct{}

	mu   sync.Mutex
	runs []*ent.Job
}

func (r *scriptedRunner) Run(ctx context.Context, j *ent.Job) error {
	r.mu.Lock()
	r.runs = append(r.runs, j)
	r.mu.Unlock()
	if r.block {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-r.release:
		}
	}
	return r.err
}

func (r *scriptedRunner) runCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.runs)
}

func startedJob(id string, jobType job.Type) *ent.Job {
	return &ent.Job{ID: id, Type: jobType, Status: job.StatusStarted}
}

func newTestExecutor(t *testing.T, cfg config.QueueConfig, jobs JobStore, pipeline, chart JobRunner) *Executor {
	t.Helper()
	bus := events.NewBus(64)
	t.Cleanup(bus.Close)
	return NewExecutor(cfg, jobs, events.NewPublisher(bus), pipeline, chart, nil)
}

func TestExecutorDispatchesByType(t *testing.T) {
	jobs := newMemJobs(
		startedJob("assist", job.TypeAssistantResponse),
		startedJob("chart", job.TypeChartBuild),
	)
	pipeline := &scriptedRunner{}
	chart := &scriptedRunner{}
	x := newTestExecutor(t, config.QueueConfig{}, jobs, pipeline, chart)

	require.NoError(t, x.Submit(jobs.get("assist")))
	require.NoError(t, x.Submit(jobs.get("chart")))
	<-x.AwaitDone("assist")
	<-x.AwaitDone("chart")

	assert.Equal(t, 1, pipeline.runCount())
	assert.Equal(t, 1, chart.runCount())
}

func TestExecutorFailsJobOnRunnerError(t *testing.T) {
	jobs := newMemJobs(startedJob("j1", job.TypeAssistantResponse))
	pipeline := &scriptedRunner{err: errors.New("pipeline exploded")}
	x := newTestExecutor(t, config.QueueConfig{}, jobs, pipeline, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("j1")))
	<-x.AwaitDone("j1")

	j := jobs.get("j1")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Equal(t, "pipeline exploded", *j.Error)
}

func TestExecutorTimesOutJob(t *testing.T) {
	jobs := newMemJobs(startedJob("slow", job.TypeAssistantResponse))
	pipeline := &scriptedRunner{block: true, release: make(chan struct{})}
	x := newTestExecutor(t, config.QueueConfig{JobTimeout: 30 * time.Millisecond}, jobs, pipeline, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("slow")))
	select {
	case <-x.AwaitDone("slow"):
	case <-time.After(2 * time.Second):
		t.Fatal("job did not finish after timeout")
	}

	j := jobs.get("slow")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Contains(t, *j.Error, "timed out")
}

func TestExecutorCancelWithReason(t *testing.T) {
	jobs := newMemJobs(startedJob("c1", job.TypeAssistantResponse))
	pipeline := &scriptedRunner{block: true, release: make(chan struct{})}
	x := newTestExecutor(t, config.QueueConfig{JobTimeout: time.Minute}, jobs, pipeline, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("c1")))
	require.Eventually(t, func() bool { return pipeline.runCount() == 1 }, time.Second, 5*time.Millisecond)

	assert.True(t, x.Cancel("c1", "cancelled by user"))
	<-x.AwaitDone("c1")

	j := jobs.get("c1")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Equal(t, "cancelled by user", *j.Error)

	assert.False(t, x.Cancel("c1", "again"), "finished jobs are no longer cancellable")
}

func TestExecutorStopFailsInFlightJobs(t *testing.T) {
	jobs := newMemJobs(startedJob("s1", job.TypeAssistantResponse))
	pipeline := &scriptedRunner{block: true, release: make(chan struct{})}
	x := newTestExecutor(t, config.QueueConfig{
		JobTimeout:              time.Minute,
		GracefulShutdownTimeout: 100 * time.Millisecond,
	}, jobs, pipeline, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("s1")))
	require.Eventually(t, func() bool { return pipeline.runCount() == 1 }, time.Second, 5*time.Millisecond)

	x.Stop()

	j := jobs.get("s1")
	assert.Equal(t, job.StatusFailed, j.Status)
	require.NotNil(t, j.Error)
	assert.Equal(t, "shutdown", *j.Error)

	assert.ErrorIs(t, x.Submit(startedJob("s2", job.TypeAssistantResponse)), ErrShuttingDown)
}

func TestExecutorUnknownTypeFails(t *testing.T) {
	j := &ent.Job{ID: "weird", Type: "mystery", Status: job.StatusStarted}
	jobs := newMemJobs(j)
	x := newTestExecutor(t, config.QueueConfig{}, jobs, &scriptedRunner{}, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("weird")))
	<-x.AwaitDone("weird")

	got := jobs.get("weird")
	assert.Equal(t, job.StatusFailed, got.Status)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "no runner")
}

func TestExecutorSuccessfulRunnerOwnsTerminalState(t *testing.T) {
	jobs := newMemJobs(startedJob("ok", job.TypeAssistantResponse))
	// A well-behaved runner completes the job itself.
	pipeline := &completingRunner{jobs: jobs}
	x := newTestExecutor(t, config.QueueConfig{}, jobs, pipeline, &scriptedRunner{})

	require.NoError(t, x.Submit(jobs.get("ok")))
	<-x.AwaitDone("ok")

	j := jobs.get("ok")
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Nil(t, j.Error)
}

type completingRunner struct {
	jobs JobStore
}

func (r *completingRunner) Run(ctx context.Context, j *ent.Job) error {
	_, err := r.jobs.Transition(ctx, j.ID, job.StatusCompleted, services.TransitionFields{
		Result: map[string]interface{}{"ok": true},
	})
	return err
}
