package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// QueryFingerprint identifies a (query, time range) combination for
// cached result lookup. The same inputs always hash to the same value,
// so re-running a query overwrites its cached row instead of creating
// a new one.
func QueryFingerprint(query string, earliest, latest *string) string {
	e := ""
	if earliest != nil {
		e = *earliest
	}
	l := ""
	if latest != nil {
		l = *latest
	}
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s", query, e, l)))
	return hex.EncodeToString(sum[:])
}
