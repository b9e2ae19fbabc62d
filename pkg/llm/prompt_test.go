package llm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/models"
)

func TestBuildMessagesShape(t *testing.T) {
	history := []HistoryMessage{
		{Role: RoleUser, Content: "show me errors"},
		{Role: RoleAssistant, Content: "Here is a query."},
	}

	msgs := BuildMessages("what about warnings?", history, 10)

	require.Len(t, msgs, 4)
	assert.Equal(t, RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "You are Splunk Genie")
	assert.Equal(t, "show me errors", msgs[1].Content)
	assert.Equal(t, "Here is a query.", msgs[2].Content)
	assert.Equal(t, RoleUser, msgs[3].Role)
	assert.Equal(t, "what about warnings?", msgs[3].Content)
}

func TestBuildMessagesTrimsToRecentHistory(t *testing.T) {
	history := make([]HistoryMessage, 15)
	for i := range history {
		role := RoleUser
		if i%2 == 1 {
			role = RoleAssistant
		}
		history[i] = HistoryMessage{Role: role, Content: fmt.Sprintf("turn-%d", i)}
	}

	msgs := BuildMessages("current", history, 10)

	// system + 10 most recent turns + current user message
	require.Len(t, msgs, 12)
	assert.Equal(t, "turn-5", msgs[1].Content)
	assert.Equal(t, "turn-14", msgs[10].Content)
}

func TestBuildMessagesSkipsEmptyAndUnknownRoles(t *testing.T) {
	history := []HistoryMessage{
		{Role: RoleUser, Content: ""},
		{Role: "tool", Content: "not a chat turn"},
		{Role: RoleAssistant, Content: "kept"},
	}

	msgs := BuildMessages("current", history, 10)

	require.Len(t, msgs, 3)
	assert.Equal(t, "kept", msgs[1].Content)
}

func TestBuildMessagesFoldsQueryResultsIntoContext(t *testing.T) {
	rows := make([]interface{}, 12)
	for i := range rows {
		rows[i] = []interface{}{fmt.Sprintf("web-%02d", i+1), 42}
	}
	history := []HistoryMessage{
		{
			Role:    RoleAssistant,
			Content: "Ran the query for you.",
			Blocks: []models.Block{
				{
					Type: models.BlockTypeQuery,
					Data: map[string]interface{}{
						"query":    "index=web | stats count by host",
						"language": "spl",
						"result": map[string]interface{}{
							"rowCount":          12,
							"columns":           []string{"host", "count"},
							"rows":              rows,
							"visualizationType": "table",
						},
					},
				},
			},
		},
	}

	msgs := BuildMessages("which host is worst?", history, 10)

	require.Len(t, msgs, 3)
	context := msgs[1].Content
	assert.True(t, strings.HasPrefix(context, "Ran the query for you."))
	assert.Contains(t, context, "[Query (SPL)]:")
	assert.Contains(t, context, "index=web | stats count by host")
	assert.Contains(t, context, "[Query Results]: 12 row(s)")
	assert.Contains(t, context, "Columns: host, count")
	assert.Contains(t, context, "Row 1: web-01 | 42")
	assert.Contains(t, context, "Row 10: web-10 | 42")
	assert.NotContains(t, context, "Row 11:")
	assert.Contains(t, context, "... (2 more rows)")
	assert.Contains(t, context, "Visualization: table")
}

func TestFormatBlocksTruncatesCode(t *testing.T) {
	code := strings.Repeat("x", 600)
	text := formatBlocksForContext([]models.Block{
		{Type: models.BlockTypeCode, Data: map[string]interface{}{"code": code, "language": "python"}},
	})

	assert.Contains(t, text, "[Code (python)]:")
	assert.Contains(t, text, strings.Repeat("x", 500))
	assert.NotContains(t, text, strings.Repeat("x", 501))
	assert.Contains(t, text, "... (truncated)")
}

func TestQueryGenerationPrompt(t *testing.T) {
	withCtx := QueryGenerationPrompt("show errors", "Relevant context from knowledge base:\n[1] Web logs:")
	assert.Contains(t, withCtx, "Relevant context from knowledge base:")
	assert.Contains(t, withCtx, "Based on the context provided above")
	assert.Contains(t, withCtx, "User request: show errors")

	noCtx := QueryGenerationPrompt("show errors", "")
	assert.NotContains(t, noCtx, "Based on the context provided above")
	assert.Contains(t, noCtx, "Generate a valid SPL query.")
	assert.Contains(t, noCtx, `"count requests by status" -> index=* | stats count by status`)
}

func TestCleanGeneratedQuery(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"index=main | stats count", "index=main | stats count"},
		{"  index=main | stats count\n", "index=main | stats count"},
		{"```spl\nindex=main | stats count\n```", "index=main | stats count"},
		{"```\nindex=main\n| stats count\n```", "index=main\n| stats count"},
		{"```sql\nSELECT * FROM logs;\n```\n", "SELECT * FROM logs;"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, CleanGeneratedQuery(tc.in), "input %q", tc.in)
	}
}
