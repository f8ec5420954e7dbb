package t2048

import (
	"errors"
	"fmt"
)

// ErrCorruptSave is matched by every *CorruptSaveError via errors.Is.
var ErrCorruptSave = errors.New("t2048: corrupt save")

// PreconditionError reports an engine call made in a state that forbids it,
// such as spawning onto a full board. It signals a bug in the caller.
type PreconditionError struct {
	Op     string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("t2048: %s: %s", e.Op, e.Reason)
}

// CorruptSaveError reports saved state that cannot be restored.
// Line is 1-based; zero means the error is not tied to one line.
type CorruptSaveError struct {
	Line   int
	Key    string
	Reason string
	Err    error
}

func (e *CorruptSaveError) Error() string {
	msg := "t2048: corrupt save"
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Key != "" {
		msg += fmt.Sprintf(" %s", e.Key)
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptSaveError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrCorruptSave) hold for any CorruptSaveError.
func (e *CorruptSaveError) Is(target error) bool {
	return target == ErrCorruptSave
}
