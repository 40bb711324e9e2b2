package ids

import (
	"errors"
	"fmt"
)

var (
	// ErrNotEmpty is returned when a snapshot is restored into an interner
	// that already holds identifiers beyond the reserved empty string.
	ErrNotEmpty = errors.New("interner is not empty")
)

// OverflowError indicates that an Area ran out of values in its narrow "to"
// integer domain. This is a configuration error: the embedder chose a To type
// too small for the number of distinct identifiers translated.
type OverflowError struct {
	Limit uint64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("area id overflow: to domain holds at most %d values", e.Limit)
}
