package mvi

import (
	"errors"
	"fmt"
)

// ErrCollaboratorPanic is wrapped by errors produced when a collaborator
// call panics inside [Apply].
var ErrCollaboratorPanic = errors.New("collaborator panicked")

func panicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrCollaboratorPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrCollaboratorPanic, r)
}

// ErrorMessage returns the human-readable text shown to users for err.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
