package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound         = errors.New("project not found")
	ErrInvalidDraft     = errors.New("invalid project draft")
	ErrUnsupportedImage = errors.New("unsupported diagram image type")
	ErrImageTooLarge    = errors.New("diagram image too large")
)

// ValidationError lists the draft fields that were missing or invalid.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return ErrInvalidDraft.Error() + ": invalid " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDraft
}
