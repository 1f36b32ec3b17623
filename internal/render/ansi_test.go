package render

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/muesli/termenv"

	"github.com/dshills/prism/internal/document"
	"github.com/dshills/prism/internal/highlight"
	"github.com/dshills/prism/internal/palette"
)

// ansiRegex matches ANSI escape sequences.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func hasANSI(s string) bool {
	return ansiRegex.MatchString(s)
}

// span builds a one-rune paren span at the given offset.
func span(start, colorIndex int) highlight.Span {
	return highlight.Span{
		Start:      start,
		End:        start + 1,
		Kind:       highlight.KindParenOpen,
		ColorIndex: colorIndex,
	}
}

func TestANSIRenderPreservesText(t *testing.T) {
	doc := document.FromString("sample.go", "text/x-go", "f() {}")
	spans := []highlight.Span{span(1, 0), span(2, 0), span(4, 0), span(5, 0)}

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, palette.Default(), spans)

	if !hasANSI(out) {
		t.Error("output has no escape sequences")
	}
	if got := stripANSI(out); got != "f() {}" {
		t.Errorf("stripped output = %q, want %q", got, "f() {}")
	}
}

func TestANSIRenderNoSpans(t *testing.T) {
	doc := document.FromString("plain.txt", "text/plain", "no brackets here")

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, palette.Default(), nil)

	if hasANSI(out) {
		t.Errorf("spanless output contains escapes: %q", out)
	}
	if out != "no brackets here" {
		t.Errorf("output = %q, want passthrough", out)
	}
}

func TestANSIRenderAsciiProfile(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "()")
	spans := []highlight.Span{span(0, 0), span(1, 0)}

	out := NewANSI(WithProfile(termenv.Ascii)).RenderString(doc, palette.Default(), spans)

	if out != "()" {
		t.Errorf("ascii output = %q, want plain text", out)
	}
}

func TestANSIRenderTrueColorSequence(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "(")
	spans := []highlight.Span{span(0, 0)}

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, palette.Default(), spans)

	// Palette slot zero is #D16969.
	if !strings.Contains(out, "38;2;209;105;105") {
		t.Errorf("output missing truecolor foreground for slot 0: %q", out)
	}
}

func TestANSIRenderColorIndexSelectsSlot(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "ab")
	pal, err := palette.FromHexes([]string{"#FF0000", "#00FF00"})
	if err != nil {
		t.Fatal(err)
	}
	spans := []highlight.Span{span(0, 0), span(1, 1)}

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, pal, spans)

	if !strings.Contains(out, "38;2;255;0;0") {
		t.Errorf("slot 0 color missing: %q", out)
	}
	if !strings.Contains(out, "38;2;0;255;0") {
		t.Errorf("slot 1 color missing: %q", out)
	}
}

func TestANSIRenderBold(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "(")
	spans := []highlight.Span{span(0, 0)}

	out := NewANSI(WithProfile(termenv.TrueColor), WithBold()).RenderString(doc, palette.Default(), spans)

	if !strings.Contains(out, ";1m") {
		t.Errorf("bold attribute missing: %q", out)
	}
}

func TestANSIRenderEmptyPalette(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "()")
	spans := []highlight.Span{span(0, 0), span(1, 0)}

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, palette.New(nil), spans)

	if out != "()" {
		t.Errorf("output = %q, want plain text with empty palette", out)
	}
}

func TestANSIRenderNilDocument(t *testing.T) {
	if out := NewANSI().RenderString(nil, palette.Default(), nil); out != "" {
		t.Errorf("RenderString(nil doc) = %q, want empty", out)
	}
}

func TestANSIRenderMultiByte(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "αβ(γ)")
	spans := []highlight.Span{span(2, 0), span(4, 0)}

	out := NewANSI(WithProfile(termenv.TrueColor)).RenderString(doc, palette.Default(), spans)

	if got := stripANSI(out); got != "αβ(γ)" {
		t.Errorf("stripped output = %q, want %q", got, "αβ(γ)")
	}
	if !strings.HasPrefix(out, "αβ\x1b[") {
		t.Errorf("escape not placed at the bracket rune: %q", out)
	}
}

func TestANSIRenderWriter(t *testing.T) {
	doc := document.FromString("sample.txt", "text/plain", "[]")
	spans := []highlight.Span{span(0, 0), span(1, 0)}
	r := NewANSI(WithProfile(termenv.TrueColor))

	var buf bytes.Buffer
	if err := r.Render(&buf, doc, palette.Default(), spans); err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if buf.String() != r.RenderString(doc, palette.Default(), spans) {
		t.Error("Render() and RenderString() outputs differ")
	}
}
