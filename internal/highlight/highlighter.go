package highlight

import (
	"errors"
	"fmt"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/document"
)

// ErrRangeOutOfBounds is reported through Sequence.Err when a requested
// range falls outside the document.
var ErrRangeOutOfBounds = errors.New("range out of bounds")

// Highlighter binds a document to a classifier and a configuration
// snapshot and produces span sequences on demand. Unlike NewSequence,
// which clamps, Highlights validates the requested range against the
// document and refuses ranges that fall outside it.
//
// A Highlighter is immutable and safe for concurrent use; each call to
// Highlights returns an independent sequence. Build a new Highlighter
// after a configuration change.
type Highlighter struct {
	doc        *document.Snapshot
	cfg        *config.Snapshot
	classifier classify.Classifier
}

// NewHighlighter binds doc, cfg and classifier. A nil classifier treats
// the whole document as plain code.
func NewHighlighter(doc *document.Snapshot, cfg *config.Snapshot, classifier classify.Classifier) *Highlighter {
	return &Highlighter{doc: doc, cfg: cfg, classifier: classifier}
}

// Document returns the bound document.
func (h *Highlighter) Document() *document.Snapshot {
	return h.doc
}

// Highlights returns a span sequence for [start, end).
//
// When highlighting is off for the document (global disable, MIME
// mismatch, or empty palette) the sequence is exhausted with a nil Err
// no matter what range was asked for. Otherwise the range must satisfy
// 0 <= start <= end <= document length; a range outside those bounds
// yields an exhausted sequence whose Err wraps ErrRangeOutOfBounds,
// and the document is never read out of bounds.
func (h *Highlighter) Highlights(start, end int) *Sequence {
	if !h.cfg.ShouldHighlight(h.doc.MimeType()) {
		return &Sequence{exhausted: true}
	}
	if start < 0 || start > end || end > h.doc.Len() {
		return &Sequence{
			exhausted: true,
			err:       fmt.Errorf("%w: [%d, %d) of %d runes", ErrRangeOutOfBounds, start, end, h.doc.Len()),
		}
	}
	return NewSequence(h.doc, h.cfg, h.classifier, start, end)
}

// All returns a span sequence covering the whole document.
func (h *Highlighter) All() *Sequence {
	return h.Highlights(0, h.doc.Len())
}
