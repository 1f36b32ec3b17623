package config

import (
	"fmt"
	"regexp"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/palette"
)

// Snapshot is a compiled, immutable view of Options. Highlight
// generators hold a snapshot for their whole lifetime, so a
// configuration change mid-scan can never produce a half-updated
// result. Snapshots are safe for concurrent use.
type Snapshot struct {
	options Options

	mimeRegex *regexp.Regexp
	skip      map[string]bool
	palette   *palette.Palette
}

// NewSnapshot compiles options into a snapshot. It fails if the MIME
// pattern does not compile or a color does not parse.
func NewSnapshot(o Options) (*Snapshot, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}

	re, err := regexp.Compile(o.mimeRegex())
	if err != nil {
		return nil, &OptionError{
			Field:   "mime_type_regex",
			Message: err.Error(),
			Err:     err,
		}
	}

	entries := make([]palette.Entry, len(o.Colors))
	for i, c := range o.Colors {
		col, err := palette.ParseHex(c.Hex)
		if err != nil {
			return nil, &OptionError{
				Field:   fmt.Sprintf("colors[%d]", i),
				Message: err.Error(),
				Err:     err,
			}
		}
		entries[i] = palette.Entry{Color: col, Enabled: c.Enabled}
	}

	// Character literals are always skipped; comment and string
	// skipping follow their toggles.
	skip := map[string]bool{
		classify.CategoryCharacter: true,
	}
	if o.SkipComments {
		skip[classify.CategoryComment] = true
		skip[classify.CategoryCommentLine] = true
	}
	if o.SkipStrings {
		skip[classify.CategoryString] = true
	}

	return &Snapshot{
		options:   o.Clone(),
		mimeRegex: re,
		skip:      skip,
		palette:   palette.New(entries),
	}, nil
}

// MustSnapshot builds a snapshot and panics on error. For use with
// known-good options such as Default.
func MustSnapshot(o Options) *Snapshot {
	s, err := NewSnapshot(o)
	if err != nil {
		panic(fmt.Sprintf("config: bad options: %v", err))
	}
	return s
}

// Options returns a copy of the options the snapshot was built from.
func (s *Snapshot) Options() Options {
	return s.options.Clone()
}

// Enabled reports whether highlighting is globally enabled.
func (s *Snapshot) Enabled() bool {
	return s.options.Enabled
}

// AppliesTo reports whether documents with the given MIME type are
// highlighted.
func (s *Snapshot) AppliesTo(mimeType string) bool {
	return s.mimeRegex.MatchString(mimeType)
}

// Braces reports whether { and } are highlighted.
func (s *Snapshot) Braces() bool {
	return s.options.Braces
}

// Brackets reports whether [ and ] are highlighted.
func (s *Snapshot) Brackets() bool {
	return s.options.Brackets
}

// Parentheses reports whether ( and ) are highlighted.
func (s *Snapshot) Parentheses() bool {
	return s.options.Parentheses
}

// SkipCategory reports whether tokens of the given classification
// category are suppressed.
func (s *Snapshot) SkipCategory(category string) bool {
	return s.skip[category]
}

// Palette returns the effective palette.
func (s *Snapshot) Palette() *palette.Palette {
	return s.palette
}

// ShouldHighlight reports whether a document with the given MIME type
// would produce any highlights: highlighting must be enabled, the MIME
// type must match, and at least one palette color must be active.
func (s *Snapshot) ShouldHighlight(mimeType string) bool {
	return s.Enabled() && s.AppliesTo(mimeType) && !s.palette.IsEmpty()
}
