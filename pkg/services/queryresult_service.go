package services

import (
	"context"
	"fmt"
	"time"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/queryresult"
	"github.com/splunk-genie/genie/pkg/analytics"
	"github.com/splunk-genie/genie/pkg/models"
)

// UpsertQueryResultInput carries one executed query and its formatted
// outcome. Error is set instead of Formatted when execution failed.
type UpsertQueryResultInput struct {
	UserID    string
	Query     string
	Earliest  *string
	Latest    *string
	Formatted *models.FormattedResult
	Error     *string
}

// QueryResultService caches executed analytics queries, one row per
// (user, query fingerprint). Re-executing an identical query within
// the same time window updates the row in place; the cache never holds
// two rows for the same fingerprint and user.
type QueryResultService struct {
	client *ent.Client
}

// NewQueryResultService creates a new QueryResultService.
func NewQueryResultService(client *ent.Client) *QueryResultService {
	return &QueryResultService{client: client}
}

// Upsert stores an execution outcome under its fingerprint. The
// (user_id, query_hash) unique index backs the update-not-duplicate
// guarantee; the row lock serializes concurrent executions of the same
// query.
func (s *QueryResultService) Upsert(ctx context.Context, input UpsertQueryResultInput) (*ent.QueryResult, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.Query == "" {
		return nil, NewValidationError("query", "required")
	}

	hash := analytics.QueryFingerprint(input.Query, input.Earliest, input.Latest)

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.QueryResult.Query().
		Where(
			queryresult.UserIDEQ(input.UserID),
			queryresult.QueryHashEQ(hash),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up cached result: %w", err)
	}

	var row *ent.QueryResult
	if existing != nil {
		row, err = applyResult(existing.Update(), input).Save(ctx)
	} else {
		create := tx.QueryResult.Create().
			SetUserID(input.UserID).
			SetQuery(input.Query).
			SetQueryHash(hash).
			SetNillableEarliest(input.Earliest).
			SetNillableLatest(input.Latest)
		row, err = applyResultCreate(create, input).Save(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to store query result: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit query result: %w", err)
	}
	return row, nil
}

// Get returns one cached result by id.
func (s *QueryResultService) Get(ctx context.Context, id int) (*ent.QueryResult, error) {
	row, err := s.client.QueryResult.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get query result: %w", err)
	}
	return row, nil
}

// DeleteOlderThan removes cached results not refreshed within the
// cutoff. Returns the number of rows removed.
func (s *QueryResultService) DeleteOlderThan(ctx context.Context, cutoffDays int) (int, error) {
	n, err := s.client.QueryResult.Delete().
		Where(queryresult.UpdatedAtLT(daysAgo(cutoffDays))).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old query results: %w", err)
	}
	return n, nil
}

func applyResult(u *ent.QueryResultUpdateOne, input UpsertQueryResultInput) *ent.QueryResultUpdateOne {
	u.SetQuery(input.Query).
		SetNillableEarliest(input.Earliest).
		SetNillableLatest(input.Latest).
		ClearError()
	if input.Error != nil {
		return u.SetError(*input.Error)
	}
	f := input.Formatted
	u.SetColumns(f.Columns).
		SetRows(f.Rows).
		SetRowCount(f.RowCount).
		SetVisualizationType(f.VisualizationType).
		SetIsTimeSeries(f.IsTimeSeries).
		SetAllowChartTypeSwitch(f.AllowChartTypeSwitch).
		SetNillableExecutionTime(f.ExecutionTime).
		SetNillableSingleValue(f.SingleValue).
		SetNillableGaugeValue(f.GaugeValue).
		SetNillableSearchJobID(f.SearchJobID)
	if f.VisualizationConfig != nil {
		u.SetVisualizationConfig(f.VisualizationConfig)
	}
	if f.ChartData != nil {
		u.SetChartData(f.ChartData)
	}
	return u
}

func applyResultCreate(c *ent.QueryResultCreate, input UpsertQueryResultInput) *ent.QueryResultCreate {
	if input.Error != nil {
		return c.SetError(*input.Error)
	}
	f := input.Formatted
	c.SetColumns(f.Columns).
		SetRows(f.Rows).
		SetRowCount(f.RowCount).
		SetVisualizationType(f.VisualizationType).
		SetIsTimeSeries(f.IsTimeSeries).
		SetAllowChartTypeSwitch(f.AllowChartTypeSwitch).
		SetNillableExecutionTime(f.ExecutionTime).
		SetNillableSingleValue(f.SingleValue).
		SetNillableGaugeValue(f.GaugeValue).
		SetNillableSearchJobID(f.SearchJobID)
	if f.VisualizationConfig != nil {
		c.SetVisualizationConfig(f.VisualizationConfig)
	}
	if f.ChartData != nil {
		c.SetChartData(f.ChartData)
	}
	return c
}

func daysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}
