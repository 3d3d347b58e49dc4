package dataset

import (
	"errors"
	"fmt"
)

// ColumnError reports a required column that does not exist in the frame.
// Helpers return it instead of rendering anything; callers may treat it as
// a recoverable condition.
type ColumnError struct {
	Column string
}

func (e *ColumnError) Error() string {
	return fmt.Sprintf("column %q does not exist in the frame", e.Column)
}

// ErrNoTimeIndex is returned by time-aware operations when the frame has no
// parseable time index (no "date" label and no row timestamps).
var ErrNoTimeIndex = errors.New("dataset: frame has no time index")
