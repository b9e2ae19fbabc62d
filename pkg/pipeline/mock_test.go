package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/models"
)

func TestMockResponseContent(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"greeting", "hello there", "Hello! How can I help you today?"},
		{"hi greeting", "hi", "Hello! How can I help you today?"},
		{"help", "help me out", "I'm an AI assistant. I can help you with various tasks, answer questions, and generate charts. What would you like to do?"},
		{"capabilities", "what can you do", "I'm an AI assistant. I can help you with various tasks, answer questions, and generate charts. What would you like to do?"},
		{"chart", "make a chart of sales", "I can help you generate charts! Click the chart button or ask me to create a visualization."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			content, _ := MockResponse(tc.message)
			assert.Equal(t, tc.want, content)
		})
	}

	t.Run("question truncates to fifty runes", func(t *testing.T) {
		long := strings.Repeat("a", 80) + "?"
		content, _ := MockResponse(long)
		assert.Contains(t, content, strings.Repeat("a", 50)+"...")
		assert.NotContains(t, content, strings.Repeat("a", 51))
	})

	t.Run("default echoes the message", func(t *testing.T) {
		content, _ := MockResponse("deploy finished")
		assert.Contains(t, content, "deploy finished")
	})
}

func TestMockResponseBlocks(t *testing.T) {
	t.Run("chart request yields a demo chart block", func(t *testing.T) {
		_, blocks := MockResponse("show me a pie chart")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeSplunkChart, blocks[0].Type)
		assert.Equal(t, "pie", blocks[0].Data["type"])
	})

	t.Run("analytics request yields a template query block", func(t *testing.T) {
		_, blocks := MockResponse("search splunk for errors")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeQuery, blocks[0].Type)
		assert.Equal(t, "index=* error | stats count by status", blocks[0].Data["query"])
		assert.Equal(t, false, blocks[0].Data["autoExecute"])
	})

	t.Run("plain chat yields no blocks", func(t *testing.T) {
		_, blocks := MockResponse("good morning everyone")
		assert.Empty(t, blocks)
	})

	t.Run("deterministic", func(t *testing.T) {
		c1, b1 := MockResponse("timechart of errors")
		c2, b2 := MockResponse("timechart of errors")
		assert.Equal(t, c1, c2)
		assert.Equal(t, b1, b2)
	})
}
