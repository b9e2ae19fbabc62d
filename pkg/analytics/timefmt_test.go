package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketSpan(t *testing.T) {
	t.Run("span clause in query wins", func(t *testing.T) {
		results := []map[string]interface{}{{"_span": "3600"}}
		span := BucketSpan("index=web | timechart span=15m count", results, nil)
		assert.Equal(t, 15*time.Minute, span)
	})

	t.Run("span units", func(t *testing.T) {
		tests := []struct {
			query string
			want  time.Duration
		}{
			{"timechart span=30s count", 30 * time.Second},
			{"timechart span=5m count", 5 * time.Minute},
			{"timechart span=1h count", time.Hour},
			{"timechart span=2d count", 48 * time.Hour},
			{"timechart span=1w count", 7 * 24 * time.Hour},
			{"timechart SPAN=10M count", 10 * time.Minute},
		}
		for _, tc := range tests {
			assert.Equal(t, tc.want, BucketSpan(tc.query, nil, nil), "query %q", tc.query)
		}
	})

	t.Run("falls back to _span field", func(t *testing.T) {
		results := []map[string]interface{}{{"_span": "900", "count": 3}}
		span := BucketSpan("index=web | timechart count", results, nil)
		assert.Equal(t, 15*time.Minute, span)
	})

	t.Run("falls back to mean delta between time values", func(t *testing.T) {
		base := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		times := []time.Time{base, base.Add(30 * time.Minute), base.Add(time.Hour)}
		span := BucketSpan("index=web", nil, times)
		assert.Equal(t, 30*time.Minute, span)
	})

	t.Run("defaults to fifteen minutes", func(t *testing.T) {
		assert.Equal(t, 15*time.Minute, BucketSpan("index=web", nil, nil))
	})

	t.Run("single time value cannot produce a delta", func(t *testing.T) {
		times := []time.Time{time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)}
		assert.Equal(t, 15*time.Minute, BucketSpan("index=web", nil, times))
	})
}

func TestFormatTimeLabel(t *testing.T) {
	at := time.Date(2024, 3, 15, 15, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		span time.Duration
		want string
	}{
		{"minutes", 15 * time.Minute, "3:04 PM"},
		{"just under two hours", 90 * time.Minute, "3:04 PM"},
		{"hours", 4 * time.Hour, "3 PM"},
		{"one day", 24 * time.Hour, "Fri 3 PM"},
		{"several days", 3 * 24 * time.Hour, "03/15"},
		{"weeks", 14 * 24 * time.Hour, "Mar 15"},
		{"months", 60 * 24 * time.Hour, "Mar 2024"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatTimeLabel(at, tc.span, nil))
		})
	}

	t.Run("renders in the given location", func(t *testing.T) {
		cet := time.FixedZone("CET", 60*60)
		assert.Equal(t, "4:04 PM", FormatTimeLabel(at, 15*time.Minute, cet))
	})
}

func TestParseTimeValue(t *testing.T) {
	t.Run("epoch seconds", func(t *testing.T) {
		want := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

		for _, v := range []interface{}{1710496800.0, 1710496800, int64(1710496800), "1710496800"} {
			got, ok := ParseTimeValue(v)
			require.True(t, ok, "value %v", v)
			assert.True(t, want.Equal(got), "value %v", v)
		}
	})

	t.Run("iso formats", func(t *testing.T) {
		for _, v := range []string{
			"2024-03-15T10:00:00Z",
			"2024-03-15T10:00:00.123456789Z",
			"2024-03-15T10:00:00",
			"2024-03-15 10:00:00",
		} {
			got, ok := ParseTimeValue(v)
			require.True(t, ok, "value %q", v)
			assert.Equal(t, 2024, got.Year(), "value %q", v)
			assert.Equal(t, 10, got.Hour(), "value %q", v)
		}
	})

	t.Run("date only", func(t *testing.T) {
		got, ok := ParseTimeValue("2024-03-15")
		require.True(t, ok)
		assert.Equal(t, time.March, got.Month())
	})

	t.Run("passthrough", func(t *testing.T) {
		at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
		got, ok := ParseTimeValue(at)
		require.True(t, ok)
		assert.Equal(t, at, got)
	})

	t.Run("unparseable", func(t *testing.T) {
		for _, v := range []interface{}{"", "   ", "not a time", nil, true} {
			_, ok := ParseTimeValue(v)
			assert.False(t, ok, "value %v", v)
		}
	})
}
