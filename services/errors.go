package services

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when no record has the requested id
	ErrNotFound = errors.New("record not found")
	// ErrEmptyNote is returned when a note has no content
	ErrEmptyNote = errors.New("note content is required")
	// ErrNoFile is returned when an upload has neither a file nor a name
	ErrNoFile = errors.New("please select a file or enter a document name")
	// ErrFileTooLarge is returned when an upload exceeds the size limit
	ErrFileTooLarge = errors.New("file size exceeds maximum allowed size")
)

// ValidationErrors maps a form field to the message shown next to it
type ValidationErrors map[string]string

// Error implements error, listing fields in a stable order
func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+v[field])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// add records msg for field unless the field already has a message
func (v ValidationErrors) add(field, msg string) {
	if _, exists := v[field]; !exists {
		v[field] = msg
	}
}

// errOrNil returns nil when nothing was recorded
func (v ValidationErrors) errOrNil() error {
	if len(v) == 0 {
		return nil
	}
	return v
}
