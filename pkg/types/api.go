package types

import (
	"errors"
	"fmt"
)

// -----------------------------------------------------------------------------
// Result Codes (stable categories, also the process exit status)
// -----------------------------------------------------------------------------

// Code classifies the outcome of an operation so callers can branch on intent
// rather than text.
type Code int

const (
	Success        Code = iota // operation completed
	BadSyntax                  // malformed command invocation
	BadConfig                  // valid syntax, unsupported request (unknown major, spec without '=')
	GenericFailure             // resource exhaustion or an unclassified error
	FileFailure                // open/stat/read/write/sync/close failure
	DataFailure                // anchor or terminator not found, area malformed or too small
)

var codeNames = [...]string{
	Success:        "success",
	BadSyntax:      "bad syntax",
	BadConfig:      "bad configuration",
	GenericFailure: "generic failure",
	FileFailure:    "file failure",
	DataFailure:    "data failure",
}

func (c Code) String() string {
	if c < 0 || int(c) >= len(codeNames) {
		return fmt.Sprintf("code(%d)", int(c))
	}
	return codeNames[c]
}

// -----------------------------------------------------------------------------
// Typed Errors
// -----------------------------------------------------------------------------

// Error is a typed error with an optional underlying cause.
type Error struct {
	Code Code
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	switch {
	case e.Msg == "" && e.Err != nil:
		return e.Err.Error()
	case e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	default:
		return e.Msg
	}
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error with the same Code, so that
// errors.Is(err, types.ErrDataFailure) matches any data failure.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Code == t.Code
}

// Sentinels, one per failure Code.
var (
	// ErrBadSyntax indicates a malformed command invocation.
	ErrBadSyntax = &Error{Code: BadSyntax, Msg: "bad syntax"}
	// ErrBadConfig indicates a well-formed but unsupported request.
	ErrBadConfig = &Error{Code: BadConfig, Msg: "bad configuration"}
	// ErrGenericFailure indicates an unclassified failure.
	ErrGenericFailure = &Error{Code: GenericFailure, Msg: "generic failure"}
	// ErrFileFailure indicates an I/O-layer failure.
	ErrFileFailure = &Error{Code: FileFailure, Msg: "file failure"}
	// ErrDataFailure indicates the byte heuristics could not locate or validate a field.
	ErrDataFailure = &Error{Code: DataFailure, Msg: "data failure"}
)

// Errorf builds a typed error of the given code. A %w verb in format wraps
// its argument as the cause, exactly like fmt.Errorf.
func Errorf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Err: fmt.Errorf(format, args...)}
}

// CodeOf maps err onto its result code: the Code of the outermost *Error in
// the chain. A nil error is Success, and an error that carries no Code is a
// GenericFailure.
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var te *Error
	if errors.As(err, &te) && te != nil {
		return te.Code
	}
	return GenericFailure
}
