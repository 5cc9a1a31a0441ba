package services

import (
	"errors"
	"fmt"
)

// Error kinds. Every failure wraps exactly one of these so the adapter
// layer can translate with errors.Is instead of inspecting messages.
var (
	ErrValidation  = errors.New("validation_error")
	ErrConflict    = errors.New("conflict_error")
	ErrNotFound    = errors.New("not_found")
	ErrPersistence = errors.New("persistence_error")
)

func validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrNotFound, fmt.Sprintf(format, args...))
}

func persistencef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrPersistence, fmt.Sprintf(format, args...))
}
