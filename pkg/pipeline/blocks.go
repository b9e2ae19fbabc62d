package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/splunk-genie/genie/pkg/models"
)

var (
	jsonBlockPattern = regexp.MustCompile("(?s)```json\\s*(\\{.*?\\})\\s*```")
	splPattern       = regexp.MustCompile(`(?im)(index\s*=\s*[^\n|]+(?:\s*\|\s*[^\n]+)*)`)
	sqlPattern       = regexp.MustCompile(`(?is)(SELECT\s+.*?(?:;|$))`)
	codeFencePattern = regexp.MustCompile("(?s)```(\\w+)?\\s*\\n(.*?)```")
	anyFencePattern  = regexp.MustCompile("(?s)```\\w*\\s*\\n.*?```")
)

// Substantial enough to be worth a block on its own.
const minQueryLength = 10

var chartKeywords = []string{
	"chart", "graph", "visualization", "plot", "timechart",
	"bar chart", "line chart",
}

// ExtractBlocks parses structured artifacts out of a response: fenced
// JSON block descriptors, SPL queries, SQL statements, fenced code,
// and chart requests inferred from the exchange. It returns the text
// with all fenced blocks removed plus the extracted blocks.
//
// Extraction is a fixpoint on the text: running it again on the
// cleaned output changes nothing, and the block list for a given
// input is always the same.
func ExtractBlocks(responseText, userMessage string) (string, []models.Block) {
	var blocks []models.Block
	cleaned := responseText

	// Explicit JSON block descriptors win over inference. The fence is
	// removed so the descriptor does not render as prose.
	for _, match := range jsonBlockPattern.FindAllStringSubmatch(responseText, -1) {
		var block models.Block
		if err := json.Unmarshal([]byte(match[1]), &block); err != nil || block.Type == "" {
			continue
		}
		blocks = append(blocks, block)
		cleaned = strings.Replace(cleaned, match[0], "", 1)
	}

	for _, match := range splPattern.FindAllStringSubmatch(responseText, -1) {
		query := strings.TrimSpace(match[1])
		if len(query) <= minQueryLength {
			continue
		}
		blocks = append(blocks, models.Block{
			Type: models.BlockTypeQuery,
			Data: map[string]interface{}{
				"query":       query,
				"language":    "spl",
				"title":       "Splunk Query",
				"autoExecute": false,
			},
		})
	}

	for _, match := range sqlPattern.FindAllStringSubmatch(responseText, -1) {
		query := strings.TrimSuffix(strings.TrimSpace(match[1]), ";")
		if len(query) <= minQueryLength {
			continue
		}
		blocks = append(blocks, models.Block{
			Type: models.BlockTypeQuery,
			Data: map[string]interface{}{
				"query":       query,
				"language":    "sql",
				"title":       "SQL Query",
				"autoExecute": false,
			},
		})
	}

	for _, match := range codeFencePattern.FindAllStringSubmatch(responseText, -1) {
		lang := strings.ToLower(match[1])
		if lang == "" {
			lang = "text"
		}
		// json/spl/sql fences were already captured above.
		if lang == "json" || lang == "spl" || lang == "sql" {
			continue
		}
		blocks = append(blocks, models.Block{
			Type: models.BlockTypeCode,
			Data: map[string]interface{}{
				"code":     strings.TrimSpace(match[2]),
				"language": lang,
				"title":    strings.ToUpper(lang) + " Code",
			},
		})
	}

	if block, ok := chartBlockFor(userMessage, responseText); ok {
		blocks = append(blocks, block)
	}

	cleaned = anyFencePattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned), blocks
}

// chartBlockFor returns a chart scaffold when the exchange mentions
// visualization. The data is empty; query execution fills it in.
func chartBlockFor(userMessage, responseText string) (models.Block, bool) {
	userLower := strings.ToLower(userMessage)
	responseLower := strings.ToLower(responseText)

	mentioned := false
	for _, kw := range chartKeywords {
		if strings.Contains(userLower, kw) || strings.Contains(responseLower, kw) {
			mentioned = true
			break
		}
	}
	if !mentioned {
		return models.Block{}, false
	}

	chartType := "line"
	switch {
	case strings.Contains(userLower, "bar") || strings.Contains(responseLower, "bar"):
		chartType = "bar"
	case strings.Contains(userLower, "pie") || strings.Contains(responseLower, "pie"):
		chartType = "pie"
	case strings.Contains(userLower, "area") || strings.Contains(responseLower, "area"):
		chartType = "area"
	case strings.Contains(userLower, "time") || strings.Contains(responseLower, "time"):
		chartType = "timechart"
	}

	xAxis := "name"
	if chartType == "timechart" {
		xAxis = "time"
	}

	return models.Block{
		Type: models.BlockTypeSplunkChart,
		Data: map[string]interface{}{
			"type":                 chartType,
			"title":                "Data Visualization",
			"data":                 []interface{}{},
			"xAxis":                xAxis,
			"yAxis":                "value",
			"height":               300,
			"isTimeSeries":         chartType == "timechart",
			"allowChartTypeSwitch": chartType != "pie",
		},
	}, true
}
