// Package render turns highlight spans into colored terminal output.
// The ANSI renderer writes inline escape sequences for piping or dumping;
// the viewer drives a full terminal screen.
package render

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/dshills/prism/internal/document"
	"github.com/dshills/prism/internal/highlight"
	"github.com/dshills/prism/internal/palette"
)

// ANSI renders document text with colored brackets as a stream of
// escape-annotated runes.
type ANSI struct {
	profile termenv.Profile
	bold    bool
}

// ANSIOption configures the ANSI renderer.
type ANSIOption func(*ANSI)

// WithProfile forces a color profile instead of detecting one.
func WithProfile(p termenv.Profile) ANSIOption {
	return func(r *ANSI) {
		r.profile = p
	}
}

// WithBold renders brackets in bold.
func WithBold() ANSIOption {
	return func(r *ANSI) {
		r.bold = true
	}
}

// NewANSI creates an ANSI renderer. The color profile defaults to
// whatever the current terminal supports.
func NewANSI(opts ...ANSIOption) *ANSI {
	r := &ANSI{profile: termenv.ColorProfile()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the document with spans colored from the palette.
// Text outside spans passes through untouched.
func (r *ANSI) Render(w io.Writer, doc *document.Snapshot, pal *palette.Palette, spans []highlight.Span) error {
	_, err := io.WriteString(w, r.RenderString(doc, pal, spans))
	return err
}

// RenderString renders the document to a string.
func (r *ANSI) RenderString(doc *document.Snapshot, pal *palette.Palette, spans []highlight.Span) string {
	if doc == nil {
		return ""
	}
	if len(spans) == 0 || pal == nil || pal.IsEmpty() || r.profile == termenv.Ascii {
		return doc.Text()
	}

	// Spans cover exactly one rune each, so a start-offset index is enough.
	byStart := make(map[int]highlight.Span, len(spans))
	for _, sp := range spans {
		byStart[sp.Start] = sp
	}

	var b strings.Builder
	b.Grow(len(doc.Text()) + len(spans)*16)
	for off := 0; off < doc.Len(); off++ {
		ch, ok := doc.RuneAt(off)
		if !ok {
			break
		}
		sp, hit := byStart[off]
		if !hit {
			b.WriteRune(ch)
			continue
		}
		c := pal.ColorFor(sp.ColorIndex)
		styled := r.profile.String(string(ch)).Foreground(r.profile.Color(c.Hex()))
		if r.bold {
			styled = styled.Bold()
		}
		b.WriteString(styled.String())
	}
	return b.String()
}
