package pipeline

import (
	"errors"
	"fmt"

	"github.com/splunk-genie/genie/pkg/models"
)

// PartialError marks a stage failure that happened after some output
// was already produced. The pipeline still runs block extraction on the
// accumulated text and persists the assistant message; only the job is
// marked failed.
type PartialError struct {
	// Content is the text accumulated before the failure.
	Content string

	// Blocks holds whatever blocks were produced before the failure.
	Blocks []models.Block

	// Err is the underlying failure.
	Err error
}

func (e *PartialError) Error() string {
	return fmt.Sprintf("partial response: %v", e.Err)
}

func (e *PartialError) Unwrap() error {
	return e.Err
}

// AsPartial unwraps err into a *PartialError if one is in its chain.
func AsPartial(err error) (*PartialError, bool) {
	var partial *PartialError
	if errors.As(err, &partial) {
		return partial, true
	}
	return nil, false
}
