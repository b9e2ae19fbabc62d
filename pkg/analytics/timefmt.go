package analytics

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

var spanPattern = regexp.MustCompile(`(?i)span=(\d+)([smhdw])`)

const defaultBucketSpan = 15 * time.Minute

var spanUnits = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
	"w": 7 * 24 * time.Hour,
}

// BucketSpan resolves the time bucket width for a result set. The
// query's span=<n><unit> clause wins; otherwise the _span field in the
// results, then the mean delta between consecutive time values, then a
// 15 minute default.
func BucketSpan(query string, results []map[string]interface{}, times []time.Time) time.Duration {
	if span := spanFromQuery(query); span > 0 {
		return span
	}
	if span := spanFromResults(results); span > 0 {
		return span
	}
	if span := meanDelta(times); span > 0 {
		return span
	}
	return defaultBucketSpan
}

// FormatTimeLabel renders a bucket timestamp at a granularity suited
// to the bucket span. A nil location falls back to UTC.
func FormatTimeLabel(t time.Time, span time.Duration, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}

	var layout string
	switch {
	case span < 2*time.Hour:
		layout = "3:04 PM"
	case span < 24*time.Hour:
		layout = "3 PM"
	case span < 48*time.Hour:
		layout = "Mon 3 PM"
	case span < 7*24*time.Hour:
		layout = "01/02"
	case span < 30*24*time.Hour:
		layout = "Jan 02"
	default:
		layout = "Jan 2006"
	}
	return t.In(loc).Format(layout)
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseTimeValue interprets a raw result value as a timestamp: epoch
// seconds UTC when numeric, ISO-8601 otherwise.
func ParseTimeValue(v interface{}) (time.Time, bool) {
	switch value := v.(type) {
	case time.Time:
		return value, true
	case float64:
		return time.Unix(int64(value), 0).UTC(), true
	case int:
		return time.Unix(int64(value), 0).UTC(), true
	case int64:
		return time.Unix(value, 0).UTC(), true
	case string:
		s := strings.TrimSpace(value)
		if s == "" {
			return time.Time{}, false
		}
		if secs, err := strconv.ParseFloat(s, 64); err == nil {
			return time.Unix(int64(secs), 0).UTC(), true
		}
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

func spanFromQuery(query string) time.Duration {
	match := spanPattern.FindStringSubmatch(query)
	if match == nil {
		return 0
	}
	n, err := strconv.Atoi(match[1])
	if err != nil || n <= 0 {
		return 0
	}
	return time.Duration(n) * spanUnits[strings.ToLower(match[2])]
}

func spanFromResults(results []map[string]interface{}) time.Duration {
	for _, row := range results {
		v, ok := row["_span"]
		if !ok {
			continue
		}
		if secs := coerceFloat(v); secs > 0 {
			return time.Duration(secs * float64(time.Second))
		}
	}
	return 0
}

// meanDelta is the average spacing of the (chronological) time values.
// Consecutive deltas telescope, so only the endpoints matter.
func meanDelta(times []time.Time) time.Duration {
	if len(times) < 2 {
		return 0
	}
	delta := times[len(times)-1].Sub(times[0]) / time.Duration(len(times)-1)
	if delta < 0 {
		delta = -delta
	}
	return delta
}
