package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/config"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/pkg/services"
	"github.com/splunk-genie/genie/test/util"
)

func retentionConfig() config.RetentionConfig {
	return config.RetentionConfig{
		Enabled:             true,
		JobRetentionDays:    30,
		ResultRetentionDays: 7,
		CleanupInterval:     time.Hour,
	}
}

// completedJob creates a job, drives it to completed, and backdates its
// last update.
func completedJob(t *testing.T, client *ent.Client, jobs *services.JobService, age time.Duration) string {
	t.Helper()
	ctx := context.Background()

	j, err := jobs.Create(ctx, job.TypeAssistantResponse, nil, nil)
	require.NoError(t, err)
	_, err = jobs.Transition(ctx, j.ID, job.StatusStarted, services.TransitionFields{})
	require.NoError(t, err)
	_, err = jobs.Transition(ctx, j.ID, job.StatusCompleted, services.TransitionFields{
		Result: map[string]interface{}{"content": "done"},
	})
	require.NoError(t, err)

	require.NoError(t, client.Job.UpdateOneID(j.ID).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(ctx))
	return j.ID
}

func cachedResult(t *testing.T, client *ent.Client, results *services.QueryResultService, query string, age time.Duration) int {
	t.Helper()
	ctx := context.Background()

	row, err := results.Upsert(ctx, services.UpsertQueryResultInput{
		UserID:    "tester",
		Query:     query,
		Formatted: &models.FormattedResult{Columns: []string{"count"}, RowCount: 1, VisualizationType: models.VisualizationSingleValue},
	})
	require.NoError(t, err)

	require.NoError(t, client.QueryResult.UpdateOneID(row.ID).
		SetUpdatedAt(time.Now().Add(-age)).
		Exec(ctx))
	return row.ID
}

func TestServiceDeletesOldTerminalJobs(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	jobs := services.NewJobService(entClient)
	results := services.NewQueryResultService(entClient)
	ctx := context.Background()

	oldID := completedJob(t, entClient, jobs, 40*24*time.Hour)
	recentID := completedJob(t, entClient, jobs, time.Hour)

	// A queued job is never terminal, however old.
	queued, err := jobs.Create(ctx, job.TypeChartBuild, nil, nil)
	require.NoError(t, err)
	require.NoError(t, entClient.Job.UpdateOneID(queued.ID).
		SetUpdatedAt(time.Now().Add(-400*24*time.Hour)).
		Exec(ctx))

	svc := NewService(retentionConfig(), jobs, results)
	svc.runAll(ctx)

	_, err = jobs.Get(ctx, oldID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = jobs.Get(ctx, recentID)
	assert.NoError(t, err)
	_, err = jobs.Get(ctx, queued.ID)
	assert.NoError(t, err)
}

func TestServiceDeletesOldQueryResults(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	jobs := services.NewJobService(entClient)
	results := services.NewQueryResultService(entClient)
	ctx := context.Background()

	oldID := cachedResult(t, entClient, results, "index=old | stats count", 10*24*time.Hour)
	recentID := cachedResult(t, entClient, results, "index=new | stats count", time.Hour)

	svc := NewService(retentionConfig(), jobs, results)
	svc.runAll(ctx)

	_, err := results.Get(ctx, oldID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = results.Get(ctx, recentID)
	assert.NoError(t, err)
}

func TestServiceStartStop(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	jobs := services.NewJobService(entClient)
	results := services.NewQueryResultService(entClient)

	svc := NewService(retentionConfig(), jobs, results)
	svc.Start(context.Background())
	svc.Stop()

	// Stop is idempotent against a second call's nil channel.
	svc.Stop()
}
