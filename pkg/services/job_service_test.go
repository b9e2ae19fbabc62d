package services

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/splunk-genie/genie/ent/job"
)

func intPtr(v int) *int       { return &v }
func strPtr(s string) *string { return &s }

func TestValidateTransition(t *testing.T) {
	tests := []struct {
		name        string
		current     job.Status
		progress    int
		resultSet   bool
		next        job.Status
		fields      TransitionFields
		wantInvalid bool
	}{
		{
			name:    "queued to started",
			current: job.StatusQueued,
			next:    job.StatusStarted,
		},
		{
			name:     "started to progress",
			current:  job.StatusStarted,
			next:     job.StatusProgress,
			fields:   TransitionFields{Progress: intPtr(25)},
			progress: 0,
		},
		{
			name:     "progress to progress",
			current:  job.StatusProgress,
			progress: 25,
			next:     job.StatusProgress,
			fields:   TransitionFields{Progress: intPtr(60)},
		},
		{
			name:     "progress to completed with result",
			current:  job.StatusProgress,
			progress: 90,
			next:     job.StatusCompleted,
			fields:   TransitionFields{Result: map[string]interface{}{"message_id": 1}},
		},
		{
			name:    "started to failed with error",
			current: job.StatusStarted,
			next:    job.StatusFailed,
			fields:  TransitionFields{Error: strPtr("boom")},
		},
		{
			name:        "no re-queueing",
			current:     job.StatusStarted,
			next:        job.StatusQueued,
			wantInvalid: true,
		},
		{
			name:        "queued cannot complete without starting",
			current:     job.StatusQueued,
			next:        job.StatusCompleted,
			wantInvalid: true,
		},
		{
			name:        "queued cannot fail without starting",
			current:     job.StatusQueued,
			next:        job.StatusFailed,
			fields:      TransitionFields{Error: strPtr("boom")},
			wantInvalid: true,
		},
		{
			name:        "completed is terminal",
			current:     job.StatusCompleted,
			progress:    100,
			resultSet:   true,
			next:        job.StatusProgress,
			fields:      TransitionFields{Progress: intPtr(100)},
			wantInvalid: true,
		},
		{
			name:        "failed is terminal",
			current:     job.StatusFailed,
			next:        job.StatusStarted,
			wantInvalid: true,
		},
		{
			name:        "progress cannot decrease",
			current:     job.StatusProgress,
			progress:    60,
			next:        job.StatusProgress,
			fields:      TransitionFields{Progress: intPtr(40)},
			wantInvalid: true,
		},
		{
			name:        "progress 100 outside completion",
			current:     job.StatusStarted,
			next:        job.StatusProgress,
			fields:      TransitionFields{Progress: intPtr(100)},
			wantInvalid: true,
		},
		{
			name:        "result only on completion",
			current:     job.StatusStarted,
			next:        job.StatusProgress,
			fields:      TransitionFields{Progress: intPtr(10), Result: map[string]interface{}{"x": 1}},
			wantInvalid: true,
		},
		{
			name:        "result is set at most once",
			current:     job.StatusProgress,
			progress:    50,
			resultSet:   true,
			next:        job.StatusCompleted,
			fields:      TransitionFields{Result: map[string]interface{}{"x": 1}},
			wantInvalid: true,
		},
		{
			name:        "failure requires an error",
			current:     job.StatusProgress,
			progress:    50,
			next:        job.StatusFailed,
			wantInvalid: true,
		},
		{
			name:        "error only on failure",
			current:     job.StatusProgress,
			progress:    50,
			next:        job.StatusCompleted,
			fields:      TransitionFields{Error: strPtr("boom")},
			wantInvalid: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTransition(tt.current, tt.progress, tt.resultSet, tt.next, tt.fields)
			if tt.wantInvalid {
				assert.ErrorIs(t, err, ErrInvalidTransition)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

// jobModel replays transitions through the validator the way the
// service would, tracking the fields a row would hold.
type jobModel struct {
	status    job.Status
	progress  int
	resultSet bool
	errorSet  bool
	history   []job.Status
}

func newJobModel() *jobModel {
	return &jobModel{status: job.StatusQueued, history: []job.Status{job.StatusQueued}}
}

func (m *jobModel) apply(next job.Status, fields TransitionFields) bool {
	if err := ValidateTransition(m.status, m.progress, m.resultSet, next, fields); err != nil {
		return false
	}
	m.status = next
	m.history = append(m.history, next)
	switch {
	case next == job.StatusCompleted:
		m.progress = 100
	case fields.Progress != nil:
		m.progress = *fields.Progress
	}
	if fields.Result != nil {
		m.resultSet = true
	}
	if fields.Error != nil {
		m.errorSet = true
	}
	return true
}

// isLifecyclePrefix reports whether statuses follows
// queued, started, progress*, (completed|failed)? with no back-edges.
func isLifecyclePrefix(statuses []job.Status) bool {
	if len(statuses) == 0 || statuses[0] != job.StatusQueued {
		return false
	}
	rank := map[job.Status]int{
		job.StatusQueued:    0,
		job.StatusStarted:   1,
		job.StatusProgress:  2,
		job.StatusCompleted: 3,
		job.StatusFailed:    3,
	}
	for i := 1; i < len(statuses); i++ {
		prev, cur := statuses[i-1], statuses[i]
		if rank[cur] < rank[prev] {
			return false
		}
		if rank[prev] == 3 {
			return false
		}
		if cur == job.StatusQueued {
			return false
		}
		if cur == job.StatusStarted && prev != job.StatusQueued {
			return false
		}
	}
	return true
}

func TestTransitionLifecycleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	statusGen := gen.OneConstOf(
		job.StatusQueued, job.StatusStarted, job.StatusProgress,
		job.StatusCompleted, job.StatusFailed,
	)
	properties.Property("accepted sequences stay on the lifecycle", prop.ForAll(
		func(nexts []job.Status, progresses []int, withError bool) bool {
			m := newJobModel()
			for i, next := range nexts {
				fields := TransitionFields{}
				if i < len(progresses) && next == job.StatusProgress {
					fields.Progress = intPtr(progresses[i])
				}
				if next == job.StatusFailed {
					fields.Error = strPtr("synthetic failure")
				}
				if next == job.StatusCompleted {
					fields.Result = map[string]interface{}{"ok": true}
				}
				m.apply(next, fields)
			}
			return isLifecyclePrefix(m.history)
		},
		gen.SliceOf(statusGen),
		gen.SliceOf(gen.IntRange(-10, 120)),
		gen.Bool(),
	))

	properties.Property("progress never decreases across accepted transitions", prop.ForAll(
		func(nexts []job.Status, progresses []int) bool {
			m := newJobModel()
			last := 0
			for i, next := range nexts {
				fields := TransitionFields{}
				if i < len(progresses) {
					fields.Progress = intPtr(progresses[i])
				}
				if next == job.StatusFailed {
					fields.Error = strPtr("synthetic failure")
				}
				if !m.apply(next, fields) {
					continue
				}
				if m.progress < last {
					return false
				}
				last = m.progress
			}
			return true
		},
		gen.SliceOf(statusGen),
		gen.SliceOf(gen.IntRange(-10, 120)),
	))

	properties.Property("result is set iff completed, error iff failed", prop.ForAll(
		func(nexts []job.Status) bool {
			m := newJobModel()
			for _, next := range nexts {
				fields := TransitionFields{}
				if next == job.StatusFailed {
					fields.Error = strPtr("synthetic failure")
				}
				if next == job.StatusCompleted {
					fields.Result = map[string]interface{}{"ok": true}
				}
				m.apply(next, fields)
			}
			if m.resultSet != (m.status == job.StatusCompleted) {
				return false
			}
			return m.errorSet == (m.status == job.StatusFailed)
		},
		gen.SliceOf(statusGen),
	))

	properties.TestingRun(t)
}
