package types

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeValues(t *testing.T) {
	// Exit statuses are part of the command-line contract.
	assert.Equal(t, 0, int(Success))
	assert.Equal(t, 1, int(BadSyntax))
	assert.Equal(t, 2, int(BadConfig))
	assert.Equal(t, 3, int(GenericFailure))
	assert.Equal(t, 4, int(FileFailure))
	assert.Equal(t, 5, int(DataFailure))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "data failure", DataFailure.String())
	assert.Equal(t, "code(42)", Code(42).String())
	assert.Equal(t, "code(-1)", Code(-1).String())
}

func TestErrorfWrapsCause(t *testing.T) {
	cause := errors.New("disk on fire")
	err := Errorf(FileFailure, "could not read %q: %w", "qmake", cause)

	assert.Equal(t, `could not read "qmake": disk on fire`, err.Error())
	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrFileFailure)
	assert.NotErrorIs(t, err, ErrDataFailure)
}

func TestErrorMessageForms(t *testing.T) {
	assert.Equal(t, "data failure", ErrDataFailure.Error())
	assert.Equal(t, "x: y", (&Error{Code: BadConfig, Msg: "x", Err: errors.New("y")}).Error())

	var nilErr *Error
	assert.Equal(t, "<nil>", nilErr.Error())
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Code
	}{
		{"nil", nil, Success},
		{"sentinel", ErrBadSyntax, BadSyntax},
		{"typed", Errorf(DataFailure, "beacon missing"), DataFailure},
		{"wrapped typed", fmt.Errorf("patch: %w", Errorf(BadConfig, "no '='")), BadConfig},
		{"outermost wins", Errorf(FileFailure, "write: %w", ErrDataFailure), FileFailure},
		{"untyped", errors.New("boom"), GenericFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CodeOf(tt.err))
		})
	}
}
