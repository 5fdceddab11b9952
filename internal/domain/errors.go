package domain

import (
	"errors"
	"sort"
	"strings"
)

// Sentinel errors shared by repositories, services and the HTTP layer; match with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrConflict         = errors.New("already exists")
	ErrCorruptState     = errors.New("corrupt stored state")
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ValidationError carries the field-level violations of a rejected input.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
