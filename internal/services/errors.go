package services

import "errors"

var (
	// ErrUnsupportedFormat is returned for file types that cannot be read.
	ErrUnsupportedFormat = errors.New("unsupported file format")
	// ErrEmptyDocument is returned when a readable file holds no text.
	ErrEmptyDocument = errors.New("no text content found in document")
	ErrFileTooLarge  = errors.New("file too large")
	// ErrInvalidInput marks a request missing a required field.
	ErrInvalidInput = errors.New("invalid input")
	// ErrIndexDisabled is returned by vector search when no index is configured.
	ErrIndexDisabled = errors.New("vector index is not configured")
)
