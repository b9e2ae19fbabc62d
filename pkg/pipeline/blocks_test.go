package pipeline

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/splunk-genie/genie/pkg/models"
)

func TestExtractBlocks(t *testing.T) {
	t.Run("json descriptor becomes a block and leaves the text", func(t *testing.T) {
		text := "Here you go:\n```json\n{\"type\": \"table\", \"data\": {\"rows\": []}}\n```\nDone."
		cleaned, blocks := ExtractBlocks(text, "")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeTable, blocks[0].Type)
		assert.NotContains(t, cleaned, "```")
	})

	t.Run("invalid json descriptor is skipped", func(t *testing.T) {
		text := "```json\n{not valid}\n```"
		cleaned, blocks := ExtractBlocks(text, "")
		assert.Empty(t, blocks)
		assert.Empty(t, cleaned)
	})

	t.Run("spl query is captured", func(t *testing.T) {
		text := "Try this: index=web status=500 | stats count by host"
		_, blocks := ExtractBlocks(text, "")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeQuery, blocks[0].Type)
		assert.Equal(t, "spl", blocks[0].Data["language"])
		assert.Equal(t, false, blocks[0].Data["autoExecute"])
	})

	t.Run("short spl fragment is ignored", func(t *testing.T) {
		_, blocks := ExtractBlocks("index=a", "")
		assert.Empty(t, blocks)
	})

	t.Run("sql statement is captured", func(t *testing.T) {
		text := "SELECT host, count(*) FROM events GROUP BY host;"
		_, blocks := ExtractBlocks(text, "")
		require.Len(t, blocks, 1)
		assert.Equal(t, "sql", blocks[0].Data["language"])
		assert.NotContains(t, blocks[0].Data["query"], ";")
	})

	t.Run("code fence becomes a code block", func(t *testing.T) {
		text := "```python\nprint('hi')\n```"
		cleaned, blocks := ExtractBlocks(text, "")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeCode, blocks[0].Type)
		assert.Equal(t, "python", blocks[0].Data["language"])
		assert.Equal(t, "PYTHON Code", blocks[0].Data["title"])
		assert.Empty(t, cleaned)
	})

	t.Run("chart keywords add a chart scaffold", func(t *testing.T) {
		_, blocks := ExtractBlocks("Here is your data.", "show a bar chart of logins")
		require.Len(t, blocks, 1)
		assert.Equal(t, models.BlockTypeSplunkChart, blocks[0].Type)
		assert.Equal(t, "bar", blocks[0].Data["type"])
	})

	t.Run("pie chart disables type switching", func(t *testing.T) {
		_, blocks := ExtractBlocks("", "pie chart of status codes")
		require.Len(t, blocks, 1)
		assert.Equal(t, false, blocks[0].Data["allowChartTypeSwitch"])
	})

	t.Run("timechart uses a time axis", func(t *testing.T) {
		_, blocks := ExtractBlocks("", "chart this over time")
		require.Len(t, blocks, 1)
		assert.Equal(t, "timechart", blocks[0].Data["type"])
		assert.Equal(t, "time", blocks[0].Data["xAxis"])
		assert.Equal(t, true, blocks[0].Data["isTimeSeries"])
	})
}

func TestExtractBlocksProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	fragmentGen := gen.OneConstOf(
		"plain prose about systems",
		"index=web status=500 | stats count by host",
		"```python\nprint('x')\n```",
		"```json\n{\"type\": \"table\", \"data\": {}}\n```",
		"SELECT a, b FROM t WHERE a > 1;",
		"show me a bar chart",
		"\n\n",
	)
	textGen := gen.SliceOf(fragmentGen).Map(func(parts []string) string {
		return strings.Join(parts, "\n")
	})

	properties.Property("extraction is idempotent on its cleaned output", prop.ForAll(
		func(text string) bool {
			cleaned, _ := ExtractBlocks(text, "")
			cleanedAgain, _ := ExtractBlocks(cleaned, "")
			return cleanedAgain == cleaned
		},
		textGen,
	))

	properties.Property("extraction is deterministic", prop.ForAll(
		func(text, userMessage string) bool {
			c1, b1 := ExtractBlocks(text, userMessage)
			c2, b2 := ExtractBlocks(text, userMessage)
			return c1 == c2 && reflect.DeepEqual(b1, b2)
		},
		textGen,
		gen.OneConstOf("", "chart please", "hello"),
	))

	properties.Property("cleaned text never retains a fence", prop.ForAll(
		func(text string) bool {
			cleaned, _ := ExtractBlocks(text, "")
			return !strings.Contains(cleaned, "```")
		},
		textGen,
	))

	properties.TestingRun(t)
}
