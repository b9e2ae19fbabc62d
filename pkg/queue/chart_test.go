package queue

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/ent"
	"github.com/splunk-genie/genie/ent/job"
	"github.com/splunk-genie/genie/pkg/events"
	"github.com/splunk-genie/genie/pkg/models"
)

func newTestChartBuilder(t *testing.T, jobs JobStore) *ChartBuilder {
	t.Helper()
	bus := events.NewBus(64)
	t.Cleanup(bus.Close)
	b := NewChartBuilder(jobs, events.NewPublisher(bus), nil)
	b.stepDelay = time.Millisecond
	return b
}

func TestChartBuilderCompletes(t *testing.T) {
	jobs := newMemJobs(&ent.Job{
		ID:     "chart-1",
		Type:   job.TypeChartBuild,
		Status: job.StatusStarted,
		Params: map[string]interface{}{"range": float64(7)},
	})
	b := newTestChartBuilder(t, jobs)

	require.NoError(t, b.Run(context.Background(), jobs.get("chart-1")))

	j := jobs.get("chart-1")
	assert.Equal(t, job.StatusCompleted, j.Status)
	assert.Equal(t, 100, j.Progress)

	require.NotNil(t, j.Result)
	assert.Equal(t, "chart", j.Result["type"])

	dataset, ok := j.Result["dataset"].([]map[string]interface{})
	require.True(t, ok)
	assert.Len(t, dataset, 7)
	for _, point := range dataset {
		assert.Contains(t, point, "date")
		assert.Contains(t, point, "value")
	}

	blocks, ok := j.Result["blocks"].([]models.Block)
	require.True(t, ok)
	require.Len(t, blocks, 1)
	assert.Equal(t, models.BlockTypeChart, blocks[0].Type)
	assert.Equal(t, "chart_chart-1", blocks[0].Data["chartId"])
}

func TestChartBuilderDefaultRange(t *testing.T) {
	jobs := newMemJobs(&ent.Job{
		ID:     "chart-2",
		Type:   job.TypeChartBuild,
		Status: job.StatusStarted,
	})
	b := newTestChartBuilder(t, jobs)

	require.NoError(t, b.Run(context.Background(), jobs.get("chart-2")))

	dataset := jobs.get("chart-2").Result["dataset"].([]map[string]interface{})
	assert.Len(t, dataset, 30)
}

func TestChartBuilderCancellation(t *testing.T) {
	jobs := newMemJobs(&ent.Job{
		ID:     "chart-3",
		Type:   job.TypeChartBuild,
		Status: job.StatusStarted,
	})
	b := newTestChartBuilder(t, jobs)
	b.stepDelay = 50 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(75 * time.Millisecond)
		cancel()
	}()

	err := b.Run(ctx, jobs.get("chart-3"))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)

	// The builder leaves the terminal transition to its caller.
	j := jobs.get("chart-3")
	assert.NotEqual(t, job.StatusCompleted, j.Status)
	assert.NotEqual(t, job.StatusFailed, j.Status)
}

func TestChartDays(t *testing.T) {
	assert.Equal(t, 30, chartDays(nil))
	assert.Equal(t, 30, chartDays(map[string]interface{}{}))
	assert.Equal(t, 30, chartDays(map[string]interface{}{"range": float64(0)}))
	assert.Equal(t, 30, chartDays(map[string]interface{}{"range": "7"}))
	assert.Equal(t, 14, chartDays(map[string]interface{}{"range": float64(14)}))
	assert.Equal(t, 14, chartDays(map[string]interface{}{"range": 14}))
}
