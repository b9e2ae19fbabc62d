package models

import "time"

// Visualization types produced by the result classifier.
const (
	VisualizationTable       = "table"
	VisualizationChart       = "chart"
	VisualizationSingleValue = "single-value"
)

// FormattedResult is the frontend-facing shape of an executed analytics
// query: raw tabular data plus the visualization metadata chosen by the
// classifier. Field names are camelCase because the frontend consumes
// this object directly.
type FormattedResult struct {
	Columns              []string                 `json:"columns"`
	Rows                 [][]interface{}          `json:"rows"`
	RowCount             int                      `json:"rowCount"`
	ExecutionTime        *float64                 `json:"executionTime"`
	VisualizationType    string                   `json:"visualizationType"`
	VisualizationConfig  map[string]interface{}   `json:"visualizationConfig,omitempty"`
	SingleValue          *float64                 `json:"singleValue,omitempty"`
	GaugeValue           *float64                 `json:"gaugeValue,omitempty"`
	ChartData            []map[string]interface{} `json:"chartData,omitempty"`
	IsTimeSeries         bool                     `json:"isTimeSeries"`
	AllowChartTypeSwitch bool                     `json:"allowChartTypeSwitch"`
	SearchJobID          *string                  `json:"searchJobId,omitempty"`
}

// QueryResultRead is the API representation of a cached query result.
type QueryResultRead struct {
	ID        int       `json:"id"`
	UserID    string    `json:"user_id"`
	Query     string    `json:"query"`
	QueryHash string    `json:"query_hash"`
	Earliest  *string   `json:"earliest_time,omitempty"`
	Latest    *string   `json:"latest_time,omitempty"`
	Error     *string   `json:"error,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	FormattedResult
}
