package config

import (
	"fmt"
	"regexp"

	"github.com/dshills/prism/internal/palette"
)

// DefaultMimeTypeRegex selects the documents highlighted out of the box.
const DefaultMimeTypeRegex = "^text/.*"

// Options is the user-facing highlighting configuration. The zero value
// is not useful; start from Default.
type Options struct {
	// Enabled toggles highlighting globally.
	Enabled bool `toml:"enabled"`

	// MimeTypeRegex selects which document MIME types are highlighted.
	// An empty string falls back to DefaultMimeTypeRegex.
	MimeTypeRegex string `toml:"mime_type_regex"`

	// Braces enables highlighting of { and }.
	Braces bool `toml:"braces"`

	// Brackets enables highlighting of [ and ].
	Brackets bool `toml:"brackets"`

	// Parentheses enables highlighting of ( and ).
	Parentheses bool `toml:"parentheses"`

	// SkipComments suppresses highlighting inside comment tokens.
	SkipComments bool `toml:"skip_comments"`

	// SkipStrings suppresses highlighting inside string tokens.
	SkipStrings bool `toml:"skip_strings"`

	// Colors configures the palette slots, outermost depth first.
	// At most palette.MaxColors entries are allowed.
	Colors []ColorOption `toml:"colors"`
}

// ColorOption is a single configurable palette slot.
type ColorOption struct {
	Hex     string `toml:"hex"`
	Enabled bool   `toml:"enabled"`
}

// Default returns the built-in configuration: highlighting on for all
// text documents, every bracket family enabled, comments and strings
// skipped, and the full default palette.
func Default() Options {
	entries := palette.DefaultEntries()
	colors := make([]ColorOption, len(entries))
	for i, e := range entries {
		colors[i] = ColorOption{Hex: e.Color.Hex(), Enabled: e.Enabled}
	}

	return Options{
		Enabled:       true,
		MimeTypeRegex: DefaultMimeTypeRegex,
		Braces:        true,
		Brackets:      true,
		Parentheses:   true,
		SkipComments:  true,
		SkipStrings:   true,
		Colors:        colors,
	}
}

// Clone returns a deep copy of the options.
func (o Options) Clone() Options {
	out := o
	out.Colors = make([]ColorOption, len(o.Colors))
	copy(out.Colors, o.Colors)
	return out
}

// Validate checks the options without building a snapshot.
func (o Options) Validate() error {
	if len(o.Colors) > palette.MaxColors {
		return &OptionError{
			Field:   "colors",
			Message: fmt.Sprintf("%d entries exceeds maximum of %d", len(o.Colors), palette.MaxColors),
			Err:     ErrTooManyColors,
		}
	}

	for i, c := range o.Colors {
		if _, err := palette.ParseHex(c.Hex); err != nil {
			return &OptionError{
				Field:   fmt.Sprintf("colors[%d]", i),
				Message: err.Error(),
				Err:     err,
			}
		}
	}

	if o.MimeTypeRegex != "" {
		if _, err := regexp.Compile(o.MimeTypeRegex); err != nil {
			return &OptionError{
				Field:   "mime_type_regex",
				Message: err.Error(),
				Err:     err,
			}
		}
	}

	return nil
}

// mimeRegex returns the effective MIME pattern source.
func (o Options) mimeRegex() string {
	if o.MimeTypeRegex == "" {
		return DefaultMimeTypeRegex
	}
	return o.MimeTypeRegex
}
