package field

import (
	"fmt"

	"github.com/joshuapare/qmakepatch/pkg/types"
)

// Error reports a field whose boundaries could not be resolved or whose
// reserved area cannot hold a replacement. It always unwraps to
// types.ErrDataFailure.
type Error struct {
	Field   string // Field name, beacon or variable leader
	Offset  int    // Offset where the problem was detected
	Message string // Human-readable error message
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("field '%s' at offset 0x%X: %s", e.Field, e.Offset, e.Message)
}

// Unwrap returns the data-failure sentinel so callers can classify the error.
func (e *Error) Unwrap() error {
	return types.ErrDataFailure
}

func errorf(name string, off int, format string, args ...any) *Error {
	return &Error{Field: name, Offset: off, Message: fmt.Sprintf(format, args...)}
}
