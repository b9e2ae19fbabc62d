package pipeline

import (
	"fmt"
	"strings"

	"github.com/splunk-genie/genie/pkg/models"
)

// MockResponse is the deterministic fallback generator, used when mock
// mode is configured or the LLM is unavailable. It pattern-matches the
// user message to a canned reply and demo blocks; it never fails and
// calls nothing external.
func MockResponse(message string) (string, []models.Block) {
	lower := strings.ToLower(strings.TrimSpace(message))
	return mockContent(message, lower), mockBlocks(message, lower)
}

func mockContent(message, lower string) string {
	switch {
	case containsAny(lower, []string{"hello", "hi", "hey"}):
		return "Hello! How can I help you today?"
	case containsAny(lower, []string{"help", "what can you do"}):
		return "I'm an AI assistant. I can help you with various tasks, answer questions, and generate charts. What would you like to do?"
	case strings.Contains(lower, "chart") || strings.Contains(lower, "graph"):
		return "I can help you generate charts! Click the chart button or ask me to create a visualization."
	case strings.Contains(message, "?"):
		return fmt.Sprintf("That's an interesting question about '%s...'. I'm here to help! Could you provide more details?", truncateRunes(message, 50))
	default:
		return fmt.Sprintf("I understand you said: '%s'. How can I assist you further?", message)
	}
}

func mockBlocks(message, lower string) []models.Block {
	var blocks []models.Block

	if block, ok := chartBlockFor(message, ""); ok {
		blocks = append(blocks, block)
	}

	if containsAny(lower, analyticsKeywords) {
		blocks = append(blocks, models.Block{
			Type: models.BlockTypeQuery,
			Data: map[string]interface{}{
				"query":       TemplateQuery(message),
				"language":    "spl",
				"title":       "Splunk Query",
				"autoExecute": false,
			},
		})
	}

	return blocks
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
