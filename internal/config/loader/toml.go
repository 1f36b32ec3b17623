package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/prism/internal/config"
)

// Load reads options from a TOML file, overlaying the file's settings
// on the built-in defaults. Missing files return config.ErrFileNotFound.
func Load(path string) (config.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config.Default(), fmt.Errorf("%w: %s", config.ErrFileNotFound, path)
		}
		return config.Default(), fmt.Errorf("reading config file %s: %w", path, err)
	}
	return Parse(path, data)
}

// LoadOrDefault reads options from a TOML file, returning the defaults
// if the file does not exist.
func LoadOrDefault(path string) (config.Options, error) {
	opts, err := Load(path)
	if err != nil {
		if errors.Is(err, config.ErrFileNotFound) {
			return config.Default(), nil
		}
		return config.Default(), err
	}
	return opts, nil
}

// Parse parses TOML data, overlaying onto the defaults. Fields absent
// from the data keep their default values.
func Parse(source string, data []byte) (config.Options, error) {
	opts := config.Default()
	if err := toml.Unmarshal(data, &opts); err != nil {
		return config.Default(), &ParseError{
			Path:    source,
			Message: err.Error(),
			Err:     err,
		}
	}
	if err := opts.Validate(); err != nil {
		return config.Default(), fmt.Errorf("config %s: %w", source, err)
	}
	return opts, nil
}

// Save writes options to a TOML file, creating parent directories as
// needed.
func Save(path string, opts config.Options) error {
	data, err := toml.Marshal(opts)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file %s: %w", path, err)
	}
	return nil
}
