package strength

import (
	"errors"
	"fmt"
)

// Sentinel errors for reading password input. Evaluate itself never fails;
// these only surface from EvaluateReader and from callers enforcing limits.
var (
	ErrReadInput     = errors.New("failed to read password input")
	ErrInputTooLarge = errors.New("password input too large")
)

// StrengthError records the operation, the underlying sentinel and optional
// context. It implements the error and Unwrap interfaces.
type StrengthError struct {
	Op  string // Operation that failed
	Err error  // Underlying (sentinel) error
	Msg string // Additional context
}

func (e *StrengthError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StrengthError) Unwrap() error {
	return e.Err
}

func newError(op string, err error, msg string) error {
	return &StrengthError{
		Op:  op,
		Err: err,
		Msg: msg,
	}
}
