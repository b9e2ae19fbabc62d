package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/test/util"
)

func TestQueryResultUpsert(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	svc := NewQueryResultService(entClient)

	formatted := &models.FormattedResult{
		Columns:           []string{"status", "count"},
		Rows:              [][]interface{}{{"200", float64(41)}, {"500", float64(3)}},
		RowCount:          2,
		VisualizationType: models.VisualizationTable,
	}

	t.Run("identical query updates in place", func(t *testing.T) {
		first, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "alice",
			Query:     "index=web | stats count by status",
			Earliest:  strPtr("-24h"),
			Latest:    strPtr("now"),
			Formatted: formatted,
		})
		require.NoError(t, err)

		refreshed := &models.FormattedResult{
			Columns:           []string{"status", "count"},
			Rows:              [][]interface{}{{"200", float64(52)}},
			RowCount:          1,
			VisualizationType: models.VisualizationTable,
		}
		second, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "alice",
			Query:     "index=web | stats count by status",
			Earliest:  strPtr("-24h"),
			Latest:    strPtr("now"),
			Formatted: refreshed,
		})
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID, "re-execution must update the cached row, not insert")
		assert.Equal(t, 1, second.RowCount)

		got, err := svc.Get(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, [][]interface{}{{"200", float64(52)}}, got.Rows)
	})

	t.Run("different window is a different row", func(t *testing.T) {
		a, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "bob",
			Query:     "index=web | stats count",
			Earliest:  strPtr("-1h"),
			Formatted: formatted,
		})
		require.NoError(t, err)

		b, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "bob",
			Query:     "index=web | stats count",
			Earliest:  strPtr("-7d"),
			Formatted: formatted,
		})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("same query per user is isolated", func(t *testing.T) {
		a, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "carol",
			Query:     "index=_internal | head 10",
			Formatted: formatted,
		})
		require.NoError(t, err)

		b, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "dave",
			Query:     "index=_internal | head 10",
			Formatted: formatted,
		})
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("failed execution stores error and clears on success", func(t *testing.T) {
		row, err := svc.Upsert(ctx, UpsertQueryResultInput{
			UserID: "erin",
			Query:  "index=web | bad syntax",
			Error:  strPtr("analytics backend unavailable"),
		})
		require.NoError(t, err)
		require.NotNil(t, row.Error)
		assert.Equal(t, "analytics backend unavailable", *row.Error)

		row, err = svc.Upsert(ctx, UpsertQueryResultInput{
			UserID:    "erin",
			Query:     "index=web | bad syntax",
			Formatted: formatted,
		})
		require.NoError(t, err)
		assert.Nil(t, row.Error)
		assert.Equal(t, 2, row.RowCount)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := svc.Upsert(ctx, UpsertQueryResultInput{Query: "x", Formatted: formatted})
		assert.True(t, IsValidationError(err))

		_, err = svc.Upsert(ctx, UpsertQueryResultInput{UserID: "x", Formatted: formatted})
		assert.True(t, IsValidationError(err))
	})
}

func TestQueryResultGetNotFound(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	svc := NewQueryResultService(entClient)

	_, err := svc.Get(context.Background(), 999999)
	assert.ErrorIs(t, err, ErrNotFound)
}
