package model

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates that an offset falls outside the valid span
	// of a tree or subtree. Callers must treat it as fatal for the
	// operation; offsets are never silently clamped at this level.
	ErrOutOfRange = errors.New("offset out of range")

	// ErrStructuralViolation indicates a breach of a tree invariant, such
	// as removing a child that is not present in its parent.
	ErrStructuralViolation = errors.New("structural violation")
)

func outOfRange(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrOutOfRange)
}

func structuralViolation(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrStructuralViolation)
}
