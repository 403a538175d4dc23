package scheduling

import (
	"errors"
	"fmt"
)

// ValidationError rejects a submission locally, before any store call.
// Fields maps field ids to human-readable problems.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// CapacityConflictError means the slot filled up between the last
// availability check and submission. The write is refused.
type CapacityConflictError struct {
	Date  string
	Slot  string
	State string
}

func (e *CapacityConflictError) Error() string {
	return fmt.Sprintf("slot %s %s is no longer available in %s", e.Date, e.Slot, e.State)
}

// ErrNotFound is returned when the referenced record does not exist.
var ErrNotFound = errors.New("record not found")

// IsValidation reports whether err is a local validation rejection.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsCapacityConflict reports whether err is a lost booking race.
func IsCapacityConflict(err error) bool {
	var ce *CapacityConflictError
	return errors.As(err, &ce)
}
