package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks malformed or missing input. Nothing was written.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound marks a referenced id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrConflict marks an operation blocked by the current state of the store.
	ErrConflict = errors.New("conflict")
	// ErrStore marks an underlying I/O or transaction failure. Retrying is safe.
	ErrStore = errors.New("store failure")
)

// CategoryInUseError is returned when a category cannot be deleted because
// todos still reference it. It matches ErrConflict.
type CategoryInUseError struct {
	CategoryID uint
	TodoCount  int64
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("cannot delete category %d: %d todos are using this category", e.CategoryID, e.TodoCount)
}

func (e *CategoryInUseError) Is(target error) bool {
	return target == ErrConflict
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStore, op, err)
}
