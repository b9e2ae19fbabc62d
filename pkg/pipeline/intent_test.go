package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyIntent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    Intent
	}{
		{"splunk keyword", "can you search splunk for failed logins", IntentAnalyticsQuery},
		{"spl fragment", "run index=web | stats count", IntentAnalyticsQuery},
		{"chart request", "show me a bar chart of sales", IntentVisualization},
		{"plot request", "plot the response times", IntentVisualization},
		{"code request", "show code for parsing json in python", IntentCode},
		{"plain chat", "how was your day", IntentChat},
		{"empty message", "", IntentChat},
		{"whitespace only", "   ", IntentChat},
		{"case insensitive", "SPLUNK QUERY please", IntentAnalyticsQuery},
		{"timechart prefers analytics over visualization", "timechart of logins", IntentAnalyticsQuery},
		{"visualization beats code", "plot this code", IntentVisualization},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClassifyIntent(tc.message))
		})
	}
}

func TestTemplateQuery(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"error", "show me errors", "index=* error | stats count by status"},
		{"count", "count the requests", "index=* | stats count"},
		{"stats", "give me stats", "index=* | stats count"},
		{"timechart", "timechart it", "index=* | timechart count"},
		{"fallback embeds the message", "failed logins", "index=* failed logins | head 100"},
		{"error wins over count", "count of errors", "index=* error | stats count by status"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TemplateQuery(tc.message))
		})
	}
}
