package analytics

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestQueryFingerprint(t *testing.T) {
	t.Run("known vector", func(t *testing.T) {
		earliest := "-24h"
		latest := "now"
		hash := QueryFingerprint("index=web | stats count by status", &earliest, &latest)
		assert.Equal(t, "662e92aa365c8b0f79897e89c2379da1e1faef52d199ef10a1143423847d313d", hash)
	})

	t.Run("nil time range equals empty time range", func(t *testing.T) {
		empty := ""
		withNil := QueryFingerprint("index=* | stats count", nil, nil)
		withEmpty := QueryFingerprint("index=* | stats count", &empty, &empty)
		assert.Equal(t, withEmpty, withNil)
		assert.Equal(t, "5bbb21e89d0956d30f5a9efdd56184c76d411546c1d5579df38db51805706b13", withNil)
	})

	t.Run("time range is part of the identity", func(t *testing.T) {
		earliest := "-1h"
		base := QueryFingerprint("index=web error", nil, nil)
		scoped := QueryFingerprint("index=web error", &earliest, nil)
		assert.NotEqual(t, base, scoped)
	})
}

func TestQueryFingerprintProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("fingerprint is deterministic", prop.ForAll(
		func(query, earliest, latest string) bool {
			return QueryFingerprint(query, &earliest, &latest) == QueryFingerprint(query, &earliest, &latest)
		},
		gen.AnyString(), gen.AnyString(), gen.AnyString(),
	))

	properties.Property("fingerprint is 64 lowercase hex characters", prop.ForAll(
		func(query string) bool {
			hash := QueryFingerprint(query, nil, nil)
			if len(hash) != 64 {
				return false
			}
			for _, r := range hash {
				if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
					return false
				}
			}
			return true
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
