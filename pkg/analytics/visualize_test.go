package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatQueryResult(t *testing.T) {
	t.Run("timechart query produces a time series line chart", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_time", "count"},
			Results: []map[string]interface{}{
				{"_time": "2024-03-15T10:00:00Z", "count": "12"},
				{"_time": "2024-03-15T10:15:00Z", "count": "19"},
				{"_time": "2024-03-15T10:30:00Z", "count": "7"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | timechart span=15m count", nil)

		assert.Equal(t, "chart", formatted.VisualizationType)
		assert.True(t, formatted.IsTimeSeries)
		assert.True(t, formatted.AllowChartTypeSwitch)
		assert.Equal(t, map[string]interface{}{
			"chartType": "line",
			"xAxis":     "_time",
			"yAxis":     "count",
			"series":    []string{"count"},
		}, formatted.VisualizationConfig)

		require.Len(t, formatted.ChartData, 3)
		assert.Equal(t, map[string]interface{}{"time": "10:00 AM", "count": "12"}, formatted.ChartData[0])
		assert.Equal(t, map[string]interface{}{"time": "10:15 AM", "count": "19"}, formatted.ChartData[1])
		assert.Equal(t, map[string]interface{}{"time": "10:30 AM", "count": "7"}, formatted.ChartData[2])
	})

	t.Run("epoch second time values render as formatted labels", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_time", "count"},
			Results: []map[string]interface{}{
				{"_time": "1710496800", "count": 12},
				{"_time": "1710497700", "count": 19},
			},
		}

		formatted := FormatQueryResult(result, "index=web | timechart span=15m count", nil)

		require.Len(t, formatted.ChartData, 2)
		assert.Equal(t, "10:00 AM", formatted.ChartData[0]["time"])
		assert.Equal(t, "10:15 AM", formatted.ChartData[1]["time"])
	})

	t.Run("labels render in the caller timezone", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_time", "count"},
			Results: []map[string]interface{}{
				{"_time": "2024-03-15T10:00:00Z", "count": 1},
				{"_time": "2024-03-15T10:15:00Z", "count": 2},
			},
		}

		est := time.FixedZone("EST", -5*60*60)
		formatted := FormatQueryResult(result, "index=web | timechart span=15m count", est)

		assert.Equal(t, "5:00 AM", formatted.ChartData[0]["time"])
		assert.Equal(t, "5:15 AM", formatted.ChartData[1]["time"])
	})

	t.Run("stats aggregate without grouping produces a single value", func(t *testing.T) {
		result := &QueryResult{
			Fields:  []string{"count"},
			Results: []map[string]interface{}{{"count": "1234"}},
		}

		formatted := FormatQueryResult(result, "index=app | stats count", nil)

		assert.Equal(t, "single-value", formatted.VisualizationType)
		require.NotNil(t, formatted.SingleValue)
		assert.Equal(t, 1234.0, *formatted.SingleValue)
		assert.Equal(t, map[string]interface{}{
			"format":     "number",
			"valueField": "count",
			"unit":       "",
		}, formatted.VisualizationConfig)
		assert.False(t, formatted.IsTimeSeries)
	})

	t.Run("unparseable single value coerces to zero", func(t *testing.T) {
		result := &QueryResult{
			Fields:  []string{"avg"},
			Results: []map[string]interface{}{{"avg": "N/A"}},
		}

		formatted := FormatQueryResult(result, "index=app | stats avg(latency)", nil)

		assert.Equal(t, "single-value", formatted.VisualizationType)
		require.NotNil(t, formatted.SingleValue)
		assert.Equal(t, 0.0, *formatted.SingleValue)
	})

	t.Run("stats grouped over few categories produces a pie chart", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"status", "count"},
			Results: []map[string]interface{}{
				{"status": "200", "count": "1500"},
				{"status": "404", "count": "93"},
				{"status": "500", "count": "12"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | stats count by status", nil)

		assert.Equal(t, "chart", formatted.VisualizationType)
		assert.Equal(t, "pie", formatted.VisualizationConfig["chartType"])
		assert.Equal(t, "status", formatted.VisualizationConfig["labelField"])
		assert.Equal(t, "count", formatted.VisualizationConfig["valueField"])
		assert.Equal(t, []map[string]interface{}{
			{"name": "200", "value": 1500.0},
			{"name": "404", "value": 93.0},
			{"name": "500", "value": 12.0},
		}, formatted.ChartData)
		assert.False(t, formatted.IsTimeSeries)
		assert.True(t, formatted.AllowChartTypeSwitch)
	})

	t.Run("stats grouped over many categories produces a bar chart", func(t *testing.T) {
		rows := make([]map[string]interface{}, 0, 7)
		for _, host := range []string{"a", "b", "c", "d", "e", "f", "g"} {
			rows = append(rows, map[string]interface{}{"host": host, "count": "1"})
		}
		result := &QueryResult{Fields: []string{"host", "count"}, Results: rows}

		formatted := FormatQueryResult(result, "index=web | stats count by host", nil)

		assert.Equal(t, "chart", formatted.VisualizationType)
		assert.Equal(t, "bar", formatted.VisualizationConfig["chartType"])
		assert.Len(t, formatted.ChartData, 7)
	})

	t.Run("missing category values coerce to empty name and zero", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"status", "count"},
			Results: []map[string]interface{}{
				{"status": "200", "count": "10"},
				{"status": "503"},
				{"count": "4"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | stats count by status", nil)

		assert.Equal(t, []map[string]interface{}{
			{"name": "200", "value": 10.0},
			{"name": "503", "value": 0.0},
			{"name": "", "value": 4.0},
		}, formatted.ChartData)
	})

	t.Run("time-typed field in results produces a time series chart", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"timestamp", "errors"},
			Results: []map[string]interface{}{
				{"timestamp": "2024-03-15T10:00:00Z", "errors": 3},
				{"timestamp": "2024-03-15T11:00:00Z", "errors": 5},
			},
		}

		formatted := FormatQueryResult(result, "index=web error | head 100", nil)

		assert.Equal(t, "chart", formatted.VisualizationType)
		assert.True(t, formatted.IsTimeSeries)
		assert.Equal(t, "timestamp", formatted.VisualizationConfig["xAxis"])
	})

	t.Run("single row with time field stays a table", func(t *testing.T) {
		result := &QueryResult{
			Fields:  []string{"_time", "count"},
			Results: []map[string]interface{}{{"_time": "2024-03-15T10:00:00Z", "count": 3}},
		}

		formatted := FormatQueryResult(result, "index=web error | head 100", nil)

		assert.Equal(t, "table", formatted.VisualizationType)
		assert.False(t, formatted.IsTimeSeries)
	})

	t.Run("plain search produces a table", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"host", "status"},
			Results: []map[string]interface{}{
				{"host": "web-01", "status": "200"},
				{"host": "web-02", "status": "500"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | head 10", nil)

		assert.Equal(t, "table", formatted.VisualizationType)
		assert.Equal(t, []string{"host", "status"}, formatted.Columns)
		assert.Equal(t, 2, formatted.RowCount)
		assert.Nil(t, formatted.ChartData)
		assert.Nil(t, formatted.VisualizationConfig)
	})

	t.Run("internal fields are hidden from display", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_raw", "_serial", "host", "status"},
			Results: []map[string]interface{}{
				{"_raw": "raw line", "_serial": 0, "host": "web-01", "status": "200"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | head 10", nil)

		assert.Equal(t, []string{"host", "status"}, formatted.Columns)
		assert.Equal(t, [][]interface{}{{"web-01", "200"}}, formatted.Rows)
	})

	t.Run("internal fields are excluded from chart series", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_time", "_span", "count"},
			Results: []map[string]interface{}{
				{"_time": "1710496800", "_span": "900", "count": 12},
				{"_time": "1710497700", "_span": "900", "count": 19},
			},
		}

		formatted := FormatQueryResult(result, "index=web | timechart count", nil)

		assert.Equal(t, []string{"_time", "count"}, formatted.Columns)
		assert.Equal(t, []string{"count"}, formatted.VisualizationConfig["series"])
		// Span comes from the _span field, so labels are minute granular.
		assert.Equal(t, map[string]interface{}{"time": "10:00 AM", "count": 12}, formatted.ChartData[0])
	})

	t.Run("empty results produce an empty table", func(t *testing.T) {
		result := &QueryResult{Fields: []string{"host", "count"}}

		formatted := FormatQueryResult(result, "index=web | stats count by host", nil)

		assert.Equal(t, "table", formatted.VisualizationType)
		assert.Equal(t, []string{"host", "count"}, formatted.Columns)
		assert.Empty(t, formatted.Rows)
		assert.Equal(t, 0, formatted.RowCount)
	})

	t.Run("missing row values become empty strings", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"host", "status"},
			Results: []map[string]interface{}{
				{"host": "web-01"},
			},
		}

		formatted := FormatQueryResult(result, "index=web | head 10", nil)

		assert.Equal(t, [][]interface{}{{"web-01", ""}}, formatted.Rows)
	})

	t.Run("search job id is carried through", func(t *testing.T) {
		result := &QueryResult{
			Fields:  []string{"host"},
			Results: []map[string]interface{}{{"host": "web-01"}},
			JobID:   "1724501234.567",
		}

		formatted := FormatQueryResult(result, "index=web", nil)

		require.NotNil(t, formatted.SearchJobID)
		assert.Equal(t, "1724501234.567", *formatted.SearchJobID)
	})

	t.Run("formatting is deterministic", func(t *testing.T) {
		result := &QueryResult{
			Fields: []string{"_time", "count"},
			Results: []map[string]interface{}{
				{"_time": "2024-03-15T10:00:00Z", "count": "12"},
				{"_time": "2024-03-15T10:15:00Z", "count": "19"},
			},
		}

		first := FormatQueryResult(result, "index=web | timechart span=15m count", nil)
		second := FormatQueryResult(result, "index=web | timechart span=15m count", nil)
		assert.Equal(t, first, second)
	})
}

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want float64
	}{
		{"float64", 42.5, 42.5},
		{"int", 7, 7.0},
		{"numeric string", "123", 123.0},
		{"numeric string with spaces", " 9.5 ", 9.5},
		{"non-numeric string", "N/A", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, coerceFloat(tc.in))
		})
	}
}
