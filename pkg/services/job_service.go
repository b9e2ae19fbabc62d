package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
)

// TransitionFields carries the optional fields that may change
// together with a job's status.
type TransitionFields struct {
	// Progress, when set, replaces the current progress. Must be
	// non-decreasing and within 0–100.
	Progress *int

	// Result may only accompany a transition to completed, and only
	// once per job.
	Result map[string]interface{}

	// Error must accompany a transition to failed and nothing else.
	Error *string
}

// JobService is the sole authority over job rows. Every status change
// goes through Transition, which takes a row lock and enforces the
// lifecycle rules, so racing writers serialize and the loser observes
// the committed state.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService.
func NewJobService(client *ent.Client) *JobService {
	return &JobService{client: client}
}

// Create inserts a queued job. params is immutable after this call.
func (s *JobService) Create(ctx context.Context, jobType job.Type, params map[string]interface{}, conversationID *int) (*ent.Job, error) {
	create := s.client.Job.Create().
		SetID(uuid.New().String()).
		SetType(jobType).
		SetStatus(job.StatusQueued).
		SetNillableConversationID(conversationID)
	if params != nil {
		create.SetParams(params)
	}

	j, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to create job: %w", err)
	}
	return j, nil
}

// Get returns one job by id.
func (s *JobService) Get(ctx context.Context, id string) (*ent.Job, error) {
	j, err := s.client.Job.Query().
		Where(job.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}
	return j, nil
}

// ListByConversation returns a conversation's jobs, newest first.
func (s *JobService) ListByConversation(ctx context.Context, conversationID int) ([]*ent.Job, error) {
	jobs, err := s.client.Job.Query().
		Where(job.ConversationIDEQ(conversationID)).
		Order(ent.Desc(job.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	return jobs, nil
}

// Transition atomically moves a job to the next status and applies the
// accompanying fields. The row is locked for the duration, so
// concurrent transitions on the same id serialize; a transition that
// violates the lifecycle rules returns ErrInvalidTransition and leaves
// the row unchanged.
func (s *JobService) Transition(ctx context.Context, id string, next job.Status, fields TransitionFields) (*ent.Job, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	current, err := tx.Job.Query().
		Where(job.IDEQ(id)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock job: %w", err)
	}

	if err := ValidateTransition(current.Status, current.Progress, current.Result != nil, next, fields); err != nil {
		return nil, err
	}

	update := tx.Job.UpdateOneID(id).SetStatus(next)
	switch {
	case next == job.StatusCompleted:
		// progress=100 holds exactly for completed jobs.
		update.SetProgress(100)
	case fields.Progress != nil:
		update.SetProgress(*fields.Progress)
	}
	if fields.Result != nil {
		update.SetResult(fields.Result)
	}
	if fields.Error != nil {
		update.SetError(*fields.Error)
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update job: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit job transition: %w", err)
	}
	return updated, nil
}

// DeleteTerminalOlderThan removes completed and failed jobs whose last
// update is older than the cutoff. Returns the number of rows removed.
func (s *JobService) DeleteTerminalOlderThan(ctx context.Context, cutoffDays int) (int, error) {
	cutoff := daysAgo(cutoffDays)
	n, err := s.client.Job.Delete().
		Where(
			job.StatusIn(job.StatusCompleted, job.StatusFailed),
			job.UpdatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old jobs: %w", err)
	}
	return n, nil
}

// ValidateTransition checks one status change against the job
// lifecycle: queued → started → progress* → completed | failed, no
// back-edges, monotonic progress, result exactly once on completion,
// error exactly on failure. It is a pure function of its inputs.
func ValidateTransition(current job.Status, currentProgress int, resultSet bool, next job.Status, fields TransitionFields) error {
	if current == job.StatusCompleted || current == job.StatusFailed {
		return fmt.Errorf("%w: job is already %s", ErrInvalidTransition, current)
	}

	switch next {
	case job.StatusQueued:
		return fmt.Errorf("%w: queued is the initial status only", ErrInvalidTransition)
	case job.StatusStarted:
		if current != job.StatusQueued {
			return fmt.Errorf("%w: %s → started", ErrInvalidTransition, current)
		}
	case job.StatusProgress:
		if current != job.StatusStarted && current != job.StatusProgress {
			return fmt.Errorf("%w: %s → progress", ErrInvalidTransition, current)
		}
	case job.StatusCompleted, job.StatusFailed:
		if current == job.StatusQueued {
			return fmt.Errorf("%w: queued → %s without starting", ErrInvalidTransition, next)
		}
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, next)
	}

	if fields.Progress != nil {
		p := *fields.Progress
		if p < 0 || p > 100 {
			return fmt.Errorf("%w: progress %d out of range", ErrInvalidTransition, p)
		}
		if p < currentProgress {
			return fmt.Errorf("%w: progress %d < %d", ErrInvalidTransition, p, currentProgress)
		}
		if p == 100 && next != job.StatusCompleted {
			return fmt.Errorf("%w: progress 100 requires completion", ErrInvalidTransition)
		}
	}

	if fields.Result != nil {
		if next != job.StatusCompleted {
			return fmt.Errorf("%w: result only accompanies completion", ErrInvalidTransition)
		}
		if resultSet {
			return fmt.Errorf("%w: result is already set", ErrInvalidTransition)
		}
	}

	if next == job.StatusFailed && fields.Error == nil {
		return fmt.Errorf("%w: failure requires an error", ErrInvalidTransition)
	}
	if next != job.StatusFailed && fields.Error != nil {
		return fmt.Errorf("%w: error only accompanies failure", ErrInvalidTransition)
	}

	return nil
}
