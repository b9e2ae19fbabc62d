package pipeline

import (
	"context"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
)

// MessageStore is the slice of the message service the pipeline needs.
type MessageStore interface {
	Create(ctx context.Context, conversationID int, role, content string, blocks []models.Block) (*ent.Message, error)
	Recent(ctx context.Context, conversationID, limit int) ([]*ent.Message, error)
	UpdateContent(ctx context.Context, id int, content string) error
	Finalize(ctx context.Context, id int, content string, blocks []models.Block) (*ent.Message, error)
}

// JobStore is the slice of the job service the pipeline needs.
type JobStore interface {
	Transition(ctx context.Context, id string, next job.Status, fields services.TransitionFields) (*ent.Job, error)
}

// ResultStore caches executed analytics queries.
type ResultStore interface {
	Upsert(ctx context.Context, input services.UpsertQueryResultInput) (*ent.QueryResult, error)
}

// RetrievalAdapter supplies knowledge-base context for prompt building.
type RetrievalAdapter interface {
	Available() bool
	SplunkContext(ctx context.Context, userQuery string) string
}

// AnalyticsAdapter executes generated queries against the search
// backend.
type AnalyticsAdapter interface {
	Available() bool
	ExecuteQuery(ctx context.Context, query, earliest, latest string) (*analytics.QueryResult, error)
}
