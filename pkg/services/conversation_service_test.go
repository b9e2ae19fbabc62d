package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/models"
	"github.com/splunk-genie/genie/test/util"
)

func TestConversationLifecycle(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()

	conversations := NewConversationService(entClient)
	messages := NewMessageService(entClient)
	jobs := NewJobService(entClient)

	conv, err := conversations.Create(ctx, strPtr("Weekly errors"))
	require.NoError(t, err)
	require.NotNil(t, conv.Title)
	assert.Equal(t, "Weekly errors", *conv.Title)

	untitled, err := conversations.Create(ctx, nil)
	require.NoError(t, err)
	assert.Nil(t, untitled.Title)

	t.Run("list is most recently active first", func(t *testing.T) {
		// Appending a message bumps the older conversation to the top.
		_, err := messages.Create(ctx, conv.ID, "user", "show errors by status", nil)
		require.NoError(t, err)

		all, err := conversations.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 2)
		assert.Equal(t, conv.ID, all[0].ID)
	})

	t.Run("messages keep append order", func(t *testing.T) {
		_, err := messages.Create(ctx, conv.ID, "assistant", "Here is what I found.", []models.Block{
			{Type: models.BlockTypeQuery, Data: map[string]interface{}{"query": "index=web error"}},
		})
		require.NoError(t, err)

		listed, err := messages.ListByConversation(ctx, conv.ID)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, "user", string(listed[0].Role))
		assert.Equal(t, "assistant", string(listed[1].Role))
		require.Len(t, listed[1].Blocks, 1)
		assert.Equal(t, models.BlockTypeQuery, listed[1].Blocks[0].Type)
	})

	t.Run("recent returns the tail chronologically", func(t *testing.T) {
		recent, err := messages.Recent(ctx, conv.ID, 1)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, "assistant", string(recent[0].Role))
	})

	t.Run("delete cascades messages, detaches jobs", func(t *testing.T) {
		j, err := jobs.Create(ctx, job.TypeAssistantResponse,
			map[string]interface{}{"user_message": "hi"}, &conv.ID)
		require.NoError(t, err)

		require.NoError(t, conversations.Delete(ctx, conv.ID))

		_, err = conversations.Get(ctx, conv.ID)
		assert.ErrorIs(t, err, ErrNotFound)

		listed, err := messages.ListByConversation(ctx, conv.ID)
		require.NoError(t, err)
		assert.Empty(t, listed)

		// Job history survives the conversation.
		kept, err := jobs.Get(ctx, j.ID)
		require.NoError(t, err)
		assert.Nil(t, kept.ConversationID)
	})
}

func TestMessageValidation(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	messages := NewMessageService(entClient)

	_, err := messages.Create(ctx, 1, "system", "nope", nil)
	assert.True(t, IsValidationError(err))

	_, err = messages.Create(ctx, 424242, "user", "orphan", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobTransitionPersistence(t *testing.T) {
	entClient, _ := util.SetupTestDatabase(t)
	ctx := context.Background()
	jobs := NewJobService(entClient)

	j, err := jobs.Create(ctx, job.TypeChartBuild, map[string]interface{}{"range": float64(7)}, nil)
	require.NoError(t, err)
	assert.Equal(t, job.StatusQueued, j.Status)

	j, err = jobs.Transition(ctx, j.ID, job.StatusStarted, TransitionFields{})
	require.NoError(t, err)
	assert.Equal(t, job.StatusStarted, j.Status)

	j, err = jobs.Transition(ctx, j.ID, job.StatusProgress, TransitionFields{Progress: intPtr(40)})
	require.NoError(t, err)
	assert.Equal(t, 40, j.Progress)

	// Regressing progress is rejected and leaves the row unchanged.
	_, err = jobs.Transition(ctx, j.ID, job.StatusProgress, TransitionFields{Progress: intPtr(10)})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	j, err = jobs.Transition(ctx, j.ID, job.StatusCompleted, TransitionFields{
		Result: map[string]interface{}{"type": "chart"},
	})
	require.NoError(t, err)
	assert.Equal(t, 100, j.Progress)
	require.NotNil(t, j.Result)

	// Terminal rows are immutable.
	_, err = jobs.Transition(ctx, j.ID, job.StatusFailed, TransitionFields{Error: strPtr("late")})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := jobs.Get(ctx, j.ID)
	require.NoError(t, err)
	assert.Equal(t, job.StatusCompleted, got.Status)
}
