package common

import "errors"

var (
	// Store-level errors.
	ErrorNotFound = errors.New("not found")

	// Session errors.
	ErrNotLoggedIn     = errors.New("not logged in")
	ErrCorruptedRecord = errors.New("corrupted record")

	// Validation errors.
	ErrorValidation    = errors.New("validation error")
	ErrMissingFields   = errors.New("missing required fields")
	ErrEmptyMessage    = errors.New("empty message")
	ErrUnsupportedLang = errors.New("unsupported language")
	ErrInvalidTheme    = errors.New("invalid theme")
)
