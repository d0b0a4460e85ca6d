package ui

import (
	"errors"
	"fmt"
)

var (
	// ErrCancelled means the user backed out of a widget. It is flow control,
	// not a failure.
	ErrCancelled = errors.New("operation cancelled by user")

	// ErrQuit means the window was closed while a widget was open.
	ErrQuit = errors.New("window closed")
)

// InfrastructureError is a failure in the toolkit itself, such as a texture
// that could not be created or a missing font. Callers cannot recover from it
// at the screen level.
type InfrastructureError struct {
	Op  string
	Err error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("ui: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ui: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}

func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
