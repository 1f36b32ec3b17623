package highlight

import (
	"errors"
	"testing"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/document"
)

func TestHighlighterValidRanges(t *testing.T) {
	cfg := config.MustSnapshot(config.Default())
	doc := document.FromString("test", "text/x-test", "(())")
	hl := NewHighlighter(doc, cfg, nil)

	tests := []struct {
		name       string
		start, end int
		wantCount  int
	}{
		{"full", 0, 4, 4},
		{"subset", 1, 3, 2},
		{"empty at start", 0, 0, 0},
		{"empty at end", 4, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := hl.Highlights(tt.start, tt.end)
			spans := Collect(seq)
			if len(spans) != tt.wantCount {
				t.Errorf("got %d spans, want %d", len(spans), tt.wantCount)
			}
			if seq.Err() != nil {
				t.Errorf("unexpected error: %v", seq.Err())
			}
		})
	}
}

func TestHighlighterRejectsOutOfBounds(t *testing.T) {
	cfg := config.MustSnapshot(config.Default())
	doc := document.FromString("test", "text/x-test", "(())")
	hl := NewHighlighter(doc, cfg, nil)

	tests := []struct {
		name       string
		start, end int
	}{
		{"negative start", -1, 2},
		{"end past document", 0, 5},
		{"inverted", 3, 1},
		{"both past document", 10, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := hl.Highlights(tt.start, tt.end)
			if seq.Next() {
				t.Error("expected exhausted sequence")
			}
			if !errors.Is(seq.Err(), ErrRangeOutOfBounds) {
				t.Errorf("Err() = %v, want ErrRangeOutOfBounds", seq.Err())
			}
		})
	}
}

func TestHighlighterFastRejectIgnoresRange(t *testing.T) {
	// Configuration rejects take precedence: a disabled highlighter
	// returns a clean empty sequence even for a nonsense range.
	opts := config.Default()
	opts.Enabled = false
	cfg := config.MustSnapshot(opts)
	doc := document.FromString("test", "text/x-test", "(())")
	hl := NewHighlighter(doc, cfg, nil)

	seq := hl.Highlights(-10, 100)
	if seq.Next() {
		t.Error("expected exhausted sequence")
	}
	if seq.Err() != nil {
		t.Errorf("fast reject should not report an error, got %v", seq.Err())
	}
}

func TestHighlighterAll(t *testing.T) {
	cfg := config.MustSnapshot(config.Default())
	doc := document.FromString("test", "text/x-test", "f(a[0]) {x}")
	hl := NewHighlighter(doc, cfg, nil)

	spans := Collect(hl.All())
	if len(spans) != 6 {
		t.Errorf("got %d spans, want 6", len(spans))
	}
	if hl.Document() != doc {
		t.Error("Document() did not return the bound snapshot")
	}
}

func TestHighlighterSequencesAreIndependent(t *testing.T) {
	cfg := config.MustSnapshot(config.Default())
	doc := document.FromString("test", "text/x-test", "((((")
	hl := NewHighlighter(doc, cfg, nil)

	a := hl.Highlights(0, 4)
	b := hl.Highlights(0, 4)

	// Draining one sequence must not move the other.
	Collect(a)
	if !b.Next() {
		t.Fatal("second sequence exhausted by the first")
	}
	if got := b.Span().Depth; got != 0 {
		t.Errorf("first span depth = %d, want 0", got)
	}
}

func TestHighlighterUsesClassifier(t *testing.T) {
	cfg := config.MustSnapshot(config.Default())
	//            0123456
	doc := document.FromString("test", "text/x-test", `("(")x(`)
	table := classify.NewTable([]classify.Classification{
		{Category: classify.CategoryString, Start: 1, End: 4},
	})
	hl := NewHighlighter(doc, cfg, table)

	spans := Collect(hl.All())
	if len(spans) != 3 {
		t.Fatalf("expected 3 spans, got %d: %+v", len(spans), spans)
	}
	if spans[0].Start != 0 || spans[1].Start != 4 || spans[2].Start != 6 {
		t.Errorf("unexpected starts: %+v", spans)
	}
}
