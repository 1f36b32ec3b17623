// Package document provides immutable text snapshots for highlighting.
//
// A Snapshot captures document content at a point in time. Offsets are
// rune offsets, not byte offsets; every offset-based API in this module
// counts runes so multi-byte characters occupy exactly one position.
package document

import (
	"fmt"
	"os"

	"github.com/google/uuid"
)

// Snapshot is a read-only view of a document at a specific point in time.
// It is safe for concurrent access and will not change even if the
// underlying file is modified.
type Snapshot struct {
	id       string
	name     string
	mimeType string
	runes    []rune
}

// FromString creates a snapshot from in-memory text.
func FromString(name, mimeType, text string) *Snapshot {
	return &Snapshot{
		id:       uuid.New().String(),
		name:     name,
		mimeType: mimeType,
		runes:    []rune(text),
	}
}

// FromFile creates a snapshot from a file on disk. If mimeType is empty,
// it is detected from the file extension.
func FromFile(path, mimeType string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read document: %w", err)
	}
	if mimeType == "" {
		mimeType = DetectMimeType(path)
	}
	return FromString(path, mimeType, string(data)), nil
}

// ID returns the unique snapshot identifier.
func (s *Snapshot) ID() string {
	return s.id
}

// Name returns the document name (usually a file path).
func (s *Snapshot) Name() string {
	return s.name
}

// MimeType returns the document MIME type.
func (s *Snapshot) MimeType() string {
	return s.mimeType
}

// Len returns the document length in runes.
func (s *Snapshot) Len() int {
	return len(s.runes)
}

// IsEmpty returns true if the snapshot has no content.
func (s *Snapshot) IsEmpty() bool {
	return len(s.runes) == 0
}

// Text returns the full snapshot content as a string.
func (s *Snapshot) Text() string {
	return string(s.runes)
}

// RuneAt returns the rune at the given offset.
// The second return value is false if the offset is out of range.
func (s *Snapshot) RuneAt(offset int) (rune, bool) {
	if offset < 0 || offset >= len(s.runes) {
		return 0, false
	}
	return s.runes[offset], true
}

// Slice returns the text in [start, end). Bounds are clamped to the
// document; an inverted range yields the empty string.
func (s *Snapshot) Slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(s.runes) {
		end = len(s.runes)
	}
	if start >= end {
		return ""
	}
	return string(s.runes[start:end])
}

// Point is a zero-based line/column position.
type Point struct {
	Line   int
	Column int
}

// OffsetToPoint converts a rune offset to line/column. Offsets past the
// end of the document map to the position just after the last rune.
func (s *Snapshot) OffsetToPoint(offset int) Point {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.runes) {
		offset = len(s.runes)
	}

	var p Point
	for _, r := range s.runes[:offset] {
		if r == '\n' {
			p.Line++
			p.Column = 0
		} else {
			p.Column++
		}
	}
	return p
}
