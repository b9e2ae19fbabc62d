package analytics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/splunk-genie/genie/pkg/models"
)

var statsAggPattern = regexp.MustCompile(`stats\s+(count|sum|avg|max|min)`)

var timeFieldNames = map[string]bool{
	"_time":     true,
	"time":      true,
	"timestamp": true,
	"date":      true,
}

// classification is the visualization decision for one result set.
type classification struct {
	visualizationType    string
	visualizationConfig  map[string]interface{}
	chartData            []map[string]interface{}
	singleValue          *float64
	isTimeSeries         bool
	allowChartTypeSwitch bool
}

// FormatQueryResult converts a completed search into the
// frontend-facing shape: display columns and rows plus the
// visualization chosen by the classifier. loc controls time label
// rendering; nil falls back to UTC.
func FormatQueryResult(result *QueryResult, query string, loc *time.Location) models.FormattedResult {
	display := displayFields(result.Fields)

	if len(result.Results) == 0 {
		return models.FormattedResult{
			Columns:           display,
			Rows:              [][]interface{}{},
			RowCount:          0,
			VisualizationType: models.VisualizationTable,
		}
	}

	rows := make([][]interface{}, 0, len(result.Results))
	for _, res := range result.Results {
		row := make([]interface{}, len(display))
		for i, field := range display {
			if v, ok := res[field]; ok {
				row[i] = v
			} else {
				row[i] = ""
			}
		}
		rows = append(rows, row)
	}

	cls := classify(result.Results, result.Fields, query, loc)

	var searchJobID *string
	if result.JobID != "" {
		searchJobID = &result.JobID
	}

	return models.FormattedResult{
		Columns:              display,
		Rows:                 rows,
		RowCount:             len(rows),
		VisualizationType:    cls.visualizationType,
		VisualizationConfig:  cls.visualizationConfig,
		SingleValue:          cls.singleValue,
		ChartData:            cls.chartData,
		IsTimeSeries:         cls.isTimeSeries,
		AllowChartTypeSwitch: cls.allowChartTypeSwitch,
		SearchJobID:          searchJobID,
	}
}

// classify decides the visualization for (rows, fields, query). Pure:
// identical inputs always yield the identical classification.
func classify(results []map[string]interface{}, fields []string, query string, loc *time.Location) classification {
	queryLower := strings.ToLower(query)

	if strings.Contains(queryLower, "timechart") {
		return timechartClassification(results, fields, query, loc)
	}

	if statsAggPattern.MatchString(queryLower) && !strings.Contains(queryLower, "by") {
		if len(results) == 1 && len(displayFields(fields)) <= 2 {
			return singleValueClassification(results, fields)
		}
	}

	if strings.Contains(queryLower, "stats") && strings.Contains(queryLower, "by") {
		return categoricalClassification(results, fields)
	}

	if hasTimeField(fields) && len(results) > 1 {
		return timechartClassification(results, fields, query, loc)
	}

	return classification{visualizationType: models.VisualizationTable}
}

func timechartClassification(results []map[string]interface{}, fields []string, query string, loc *time.Location) classification {
	timeField := ""
	for _, f := range fields {
		if isTimeField(f) {
			timeField = f
			break
		}
	}
	valueFields := make([]string, 0, len(fields))
	for _, f := range fields {
		if internalField(f) || isTimeField(f) {
			continue
		}
		valueFields = append(valueFields, f)
	}

	var times []time.Time
	if timeField != "" {
		for _, row := range results {
			if t, ok := ParseTimeValue(row[timeField]); ok {
				times = append(times, t)
			}
		}
	}
	span := BucketSpan(query, results, times)

	chartData := make([]map[string]interface{}, 0, len(results))
	for _, row := range results {
		point := make(map[string]interface{}, len(valueFields)+1)
		if timeField != "" {
			raw, present := row[timeField]
			if t, ok := ParseTimeValue(raw); ok {
				point["time"] = FormatTimeLabel(t, span, loc)
			} else if present {
				point["time"] = fmt.Sprintf("%v", raw)
			} else {
				point["time"] = ""
			}
		}
		for _, f := range valueFields {
			if v, ok := row[f]; ok {
				point[f] = v
			} else {
				point[f] = 0
			}
		}
		chartData = append(chartData, point)
	}

	xAxis := timeField
	if xAxis == "" {
		xAxis = "time"
	}
	yAxis := "value"
	if len(valueFields) > 0 {
		yAxis = valueFields[0]
	}

	return classification{
		visualizationType: models.VisualizationChart,
		visualizationConfig: map[string]interface{}{
			"chartType": "line",
			"xAxis":     xAxis,
			"yAxis":     yAxis,
			"series":    valueFields,
		},
		chartData:            chartData,
		isTimeSeries:         true,
		allowChartTypeSwitch: true,
	}
}

func singleValueClassification(results []map[string]interface{}, fields []string) classification {
	display := displayFields(fields)
	valueField := "value"
	if len(display) > 0 {
		valueField = display[0]
	}
	value := coerceFloat(results[0][valueField])

	return classification{
		visualizationType: models.VisualizationSingleValue,
		visualizationConfig: map[string]interface{}{
			"format":     "number",
			"valueField": valueField,
			"unit":       "",
		},
		singleValue: &value,
	}
}

func categoricalClassification(results []map[string]interface{}, fields []string) classification {
	// Pie reads well for a handful of categories, bar beyond that.
	chartType := "bar"
	if len(results) <= 5 {
		chartType = "pie"
	}

	display := displayFields(fields)
	categoryField := "category"
	if len(display) > 0 {
		categoryField = display[0]
	}
	valueField := "value"
	if len(display) > 1 {
		valueField = display[1]
	}

	chartData := make([]map[string]interface{}, 0, len(results))
	for _, row := range results {
		name := ""
		if v, ok := row[categoryField]; ok {
			name = fmt.Sprintf("%v", v)
		}
		chartData = append(chartData, map[string]interface{}{
			"name":  name,
			"value": coerceFloat(row[valueField]),
		})
	}

	return classification{
		visualizationType: models.VisualizationChart,
		visualizationConfig: map[string]interface{}{
			"chartType":  chartType,
			"xAxis":      categoryField,
			"yAxis":      valueField,
			"labelField": categoryField,
			"valueField": valueField,
		},
		chartData:            chartData,
		isTimeSeries:         false,
		allowChartTypeSwitch: true,
	}
}

func isTimeField(field string) bool {
	return timeFieldNames[strings.ToLower(field)]
}

// internalField reports whether a field is internal to the search
// engine and excluded from display. _time is the exception; it is the
// time axis.
func internalField(field string) bool {
	return strings.HasPrefix(field, "_") && field != "_time"
}

func displayFields(fields []string) []string {
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		if internalField(f) {
			continue
		}
		out = append(out, f)
	}
	return out
}

func hasTimeField(fields []string) bool {
	for _, f := range fields {
		if isTimeField(f) {
			return true
		}
	}
	return false
}

// coerceFloat converts a result value to a number; missing and
// unparseable values become 0.
func coerceFloat(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return f
		}
	}
	return 0
}
