// Package loader provides configuration file loading.
//
// Three sources are supported: TOML config files, environment variable
// overlays, and one-shot import from editor settings JSON. Sources
// compose by overlaying onto a base Options value, so precedence is
// decided by application order.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultPath returns the conventional config file location,
// typically ~/.config/prism/config.toml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "prism", "config.toml"), nil
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	// Path is the file path that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
