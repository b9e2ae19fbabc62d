package llm

import (
	"fmt"
	"strings"

	"github.com/splunk-genie/genie/pkg/models"
)

const systemPrompt = `You are Splunk Genie, an AI assistant specialized in helping users with Splunk queries, data analysis, and visualization.

Your capabilities include:
- Generating Splunk Processing Language (SPL) queries from natural language
- Explaining Splunk concepts and query syntax
- Creating data visualizations (charts, tables, graphs)
- Analyzing log data and metrics
- Answering questions about Splunk functionality

When users ask for data analysis or queries, you can:
1. Generate appropriate SPL queries
2. Explain what the query does
3. Suggest visualizations for the results

You have access to previous query execution results in the conversation history. Use these results to:
- Answer follow-up questions about the data
- Provide insights based on the query results
- Suggest refinements to queries based on results
- Explain patterns or trends in the data

Format your responses naturally, and when including code or queries, use clear formatting.
If you generate a Splunk query, you can indicate it should be executed by the system.
`

const queryPromptWithContext = `Convert the following user request into a Splunk Processing Language (SPL) query.

%s

User request: %s

Based on the context provided above, generate a valid SPL query that:
1. Uses the appropriate index names mentioned in the context
2. Uses the correct field names from the field mappings
3. Follows Splunk best practices

If the context mentions specific indexes or fields, use them in the query.
If the request is ambiguous, create a reasonable query based on the context.

Return only the SPL query, no additional text.

Examples:
- "show me errors in the last hour" -> index=* error | stats count
- "count requests by status" -> index=* | stats count by status
- "show me web logs from today" -> index=web_logs earliest=-1d@d latest=now
`

const queryPromptNoContext = `Convert the following user request into a Splunk Processing Language (SPL) query.

User request: %s

Generate a valid SPL query. If the request is ambiguous, create a reasonable query and explain what it does.
Return only the SPL query, no additional text.

Examples:
- "show me errors in the last hour" -> index=* error | stats count
- "count requests by status" -> index=* | stats count by status
- "show me web logs from today" -> index=web_logs earliest=-1d@d latest=now
`

const maxSampleRows = 10

// HistoryMessage is one prior conversation turn, including the display
// blocks whose query results feed follow-up questions.
type HistoryMessage struct {
	Role    string
	Content string
	Blocks  []models.Block
}

// BuildMessages assembles the model input for a chat completion: the
// system prompt, up to maxHistory prior turns with their block context
// folded in, and the current user message.
func BuildMessages(userMessage string, history []HistoryMessage, maxHistory int) []Message {
	msgs := make([]Message, 0, len(history)+2)
	msgs = append(msgs, Message{Role: RoleSystem, Content: systemPrompt})

	if maxHistory > 0 && len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	for _, h := range history {
		if h.Role != RoleUser && h.Role != RoleAssistant {
			continue
		}
		if h.Content == "" {
			continue
		}
		content := h.Content
		if text := formatBlocksForContext(h.Blocks); text != "" {
			content = content + "\n" + text
		}
		msgs = append(msgs, Message{Role: h.Role, Content: content})
	}

	msgs = append(msgs, Message{Role: RoleUser, Content: userMessage})
	return msgs
}

// QueryGenerationPrompt builds the single-shot prompt that turns a
// natural language request into an SPL query, optionally grounded on
// retrieved knowledge base context.
func QueryGenerationPrompt(userMessage, context string) string {
	if context != "" {
		return fmt.Sprintf(queryPromptWithContext, context, userMessage)
	}
	return fmt.Sprintf(queryPromptNoContext, userMessage)
}

// CleanGeneratedQuery strips markdown code fences and surrounding
// whitespace from a model-generated query.
func CleanGeneratedQuery(raw string) string {
	q := strings.TrimSpace(raw)
	if strings.HasPrefix(q, "```") {
		lines := strings.Split(q, "\n")
		kept := make([]string, 0, len(lines))
		for _, line := range lines {
			if strings.HasPrefix(strings.TrimSpace(line), "```") {
				continue
			}
			kept = append(kept, line)
		}
		q = strings.Join(kept, "\n")
	}
	return strings.TrimSpace(q)
}

// formatBlocksForContext renders message blocks as plain text so the
// model can reason over prior query executions.
func formatBlocksForContext(blocks []models.Block) string {
	if len(blocks) == 0 {
		return ""
	}

	var parts []string
	for _, block := range blocks {
		data := block.Data
		switch block.Type {
		case models.BlockTypeQuery:
			language := asString(data["language"])
			if language == "" {
				language = "spl"
			}
			parts = append(parts, "\n[Query ("+strings.ToUpper(language)+")]:")
			parts = append(parts, asString(data["query"]))

			result, ok := data["result"].(map[string]interface{})
			if !ok || len(result) == 0 {
				continue
			}
			parts = append(parts, fmt.Sprintf("\n[Query Results]: %d row(s)", asInt(result["rowCount"])))

			columns := asStringSlice(result["columns"])
			rows := asSlice(result["rows"])
			if len(columns) > 0 && len(rows) > 0 {
				parts = append(parts, "Columns: "+strings.Join(columns, ", "))
				parts = append(parts, "Sample results:")
				shown := rows
				if len(shown) > maxSampleRows {
					shown = shown[:maxSampleRows]
				}
				for i, row := range shown {
					parts = append(parts, fmt.Sprintf("  Row %d: %s", i+1, joinRow(row)))
				}
				if len(rows) > maxSampleRows {
					parts = append(parts, fmt.Sprintf("  ... (%d more rows)", len(rows)-maxSampleRows))
				}
			}

			if vt := asString(result["visualizationType"]); vt != "" {
				parts = append(parts, "Visualization: "+vt)
				if vt == models.VisualizationChart {
					if chartData := asSlice(result["chartData"]); len(chartData) > 0 {
						parts = append(parts, fmt.Sprintf("Chart data points: %d", len(chartData)))
						shown := chartData
						if len(shown) > 3 {
							shown = shown[:3]
						}
						for i, point := range shown {
							parts = append(parts, fmt.Sprintf("  Point %d: %v", i+1, point))
						}
						if len(chartData) > 3 {
							parts = append(parts, fmt.Sprintf("  ... (%d more points)", len(chartData)-3))
						}
					}
				}
			}

			if errText := asString(result["error"]); errText != "" {
				parts = append(parts, "Error: "+errText)
			}

		case models.BlockTypeTable:
			columns := asStringSlice(data["columns"])
			rows := asSlice(data["rows"])
			if len(columns) == 0 || len(rows) == 0 {
				continue
			}
			parts = append(parts, fmt.Sprintf("\n[Table]: %d row(s)", len(rows)))
			parts = append(parts, "Columns: "+strings.Join(columns, ", "))
			shown := rows
			if len(shown) > 5 {
				shown = shown[:5]
			}
			for i, row := range shown {
				parts = append(parts, fmt.Sprintf("  Row %d: %s", i+1, joinRow(row)))
			}

		case models.BlockTypeCode:
			code := asString(data["code"])
			if code == "" {
				continue
			}
			parts = append(parts, "\n[Code ("+asString(data["language"])+")]:")
			if len(code) > 500 {
				parts = append(parts, code[:500])
				parts = append(parts, "  ... (truncated)")
			} else {
				parts = append(parts, code)
			}
		}
	}
	return strings.Join(parts, "\n")
}

func joinRow(row interface{}) string {
	vals, ok := row.([]interface{})
	if !ok {
		return fmt.Sprintf("%v", row)
	}
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = fmt.Sprintf("%v", v)
	}
	return strings.Join(strs, " | ")
}

func asString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func asInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asSlice(v interface{}) []interface{} {
	s, _ := v.([]interface{})
	return s
}

func asStringSlice(v interface{}) []string {
	switch s := v.(type) {
	case []string:
		return s
	case []interface{}:
		out := make([]string, 0, len(s))
		for _, item := range s {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out
	}
	return nil
}
