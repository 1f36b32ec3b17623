package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrTooManyColors indicates more palette slots than the maximum.
	ErrTooManyColors = errors.New("too many palette colors")

	// ErrFileNotFound indicates the configuration file doesn't exist.
	ErrFileNotFound = errors.New("config file not found")

	// ErrUnknownKey indicates an option key that Get and Set don't know.
	ErrUnknownKey = errors.New("unknown option key")
)

// OptionError describes an invalid configuration value.
type OptionError struct {
	// Field is the option that failed validation.
	Field string
	// Message describes the problem.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *OptionError) Error() string {
	return fmt.Sprintf("invalid option %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying error.
func (e *OptionError) Unwrap() error {
	return e.Err
}
