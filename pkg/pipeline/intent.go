package pipeline

import (
	"fmt"
	"strings"
)

// Intent is the classified purpose of a user message. It decides which
// pipeline stages run.
type Intent string

const (
	IntentAnalyticsQuery Intent = "analytics_query"
	IntentVisualization  Intent = "visualization"
	IntentCode           Intent = "code"
	IntentChat           Intent = "chat"
)

// Keyword groups checked in priority order. The first group with a hit
// wins; a message matching none of them is plain chat.
var (
	analyticsKeywords = []string{
		"splunk", "spl query", "index=", "stats", "timechart",
		"search", "query splunk", "splunk search", "log analysis",
		"search logs", "analyze logs", "find in logs",
	}

	visualizationKeywords = []string{
		"chart", "graph", "visualization", "plot", "visualize",
		"bar chart", "line chart", "pie chart", "timechart",
	}

	codeKeywords = []string{
		"code", "example", "show code", "python", "javascript",
		"sql query", "programming",
	}
)

// ClassifyIntent derives the intent of a user message by keyword
// matching with tie-break order analytics_query > visualization >
// code > chat. An empty message is chat.
func ClassifyIntent(message string) Intent {
	lower := strings.ToLower(strings.TrimSpace(message))
	switch {
	case containsAny(lower, analyticsKeywords):
		return IntentAnalyticsQuery
	case containsAny(lower, visualizationKeywords):
		return IntentVisualization
	case containsAny(lower, codeKeywords):
		return IntentCode
	default:
		return IntentChat
	}
}

// TemplateQuery produces a canned SPL query for a message when the LLM
// cannot generate one.
func TemplateQuery(message string) string {
	lower := strings.ToLower(message)
	switch {
	case strings.Contains(lower, "error"):
		return "index=* error | stats count by status"
	case strings.Contains(lower, "count"), strings.Contains(lower, "stats"):
		return "index=* | stats count"
	case strings.Contains(lower, "timechart"):
		return "index=* | timechart count"
	default:
		return fmt.Sprintf("index=* %s | head 100", message)
	}
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
