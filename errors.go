package iconlint

import (
	"errors"
	"fmt"
)

// ErrMalformedPath is matched by every path-data tokenization failure.
var ErrMalformedPath = errors.New("iconlint: malformed path")

// MalformedPathError reports where and why path data could not be tokenized.
type MalformedPathError struct {
	// Offset is the byte offset of the offending text in the path data.
	Offset int
	// Text is the offending substring.
	Text string
	// Reason describes the grammar violation.
	Reason string
}

func (e *MalformedPathError) Error() string {
	return fmt.Sprintf("malformed path at offset %d (%q): %s", e.Offset, e.Text, e.Reason)
}

// Is makes errors.Is(err, ErrMalformedPath) succeed.
func (e *MalformedPathError) Is(target error) bool {
	return target == ErrMalformedPath
}
