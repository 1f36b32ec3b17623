package highlight

import (
	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/document"
)

// Sequence is a pull-based stream of highlight spans over a document
// range. Create one with NewSequence, then alternate Next and Span:
//
//	seq := highlight.NewSequence(doc, cfg, classifier, 0, doc.Len())
//	for seq.Next() {
//	    span := seq.Span()
//	    ...
//	}
//
// Spans arrive in document order. A Sequence is single-use and not safe
// for concurrent use; the snapshot and config it holds are immutable,
// so a configuration change during iteration cannot affect the result.
type Sequence struct {
	doc        *document.Snapshot
	cfg        *config.Snapshot
	classifier classify.Classifier

	pos int
	end int

	// Signed balance per family, relative to the range start.
	braces   int
	brackets int
	parens   int

	cur       Span
	exhausted bool
	err       error
}

// NewSequence builds a span sequence for doc over [start, end). Bounds
// are clamped to the document.
//
// The sequence is exhausted without scanning when highlighting is
// disabled, the document's MIME type doesn't match, the effective
// palette is empty, or the clamped range is empty. A nil classifier
// treats the whole document as plain code.
func NewSequence(doc *document.Snapshot, cfg *config.Snapshot, classifier classify.Classifier, start, end int) *Sequence {
	if classifier == nil {
		classifier = classify.None
	}
	s := &Sequence{doc: doc, cfg: cfg, classifier: classifier}

	if start < 0 {
		start = 0
	}
	if end > doc.Len() {
		end = doc.Len()
	}
	if start >= end || !cfg.ShouldHighlight(doc.MimeType()) {
		s.exhausted = true
		return s
	}

	s.pos = start
	s.end = end
	return s
}

// Next advances to the next span. It returns false once the range is
// exhausted, after which it keeps returning false.
func (s *Sequence) Next() bool {
	if s.exhausted {
		return false
	}

	for i := s.pos; i < s.end; i++ {
		if cls, ok := s.classifier.ClassifyAt(i); ok && s.cfg.SkipCategory(cls.Category) {
			// Resume after the token. A classification that doesn't
			// reach past i still advances one position so the scan
			// always makes progress.
			if cls.End > i {
				i = cls.End - 1
			}
			continue
		}

		r, ok := s.doc.RuneAt(i)
		if !ok {
			break
		}

		kind := KindOf(r)
		if kind == KindNone || !s.familyEnabled(kind.Family()) {
			continue
		}

		depth := s.updateBalance(kind)

		colorIndex := 0
		if depth >= 0 {
			colorIndex = depth % s.cfg.Palette().Len()
		}

		s.cur = Span{Start: i, End: i + 1, Kind: kind, Depth: depth, ColorIndex: colorIndex}
		s.pos = i + 1
		return true
	}

	s.pos = s.end
	s.exhausted = true
	return false
}

// Span returns the current span. It is only valid after a call to Next
// that returned true.
func (s *Sequence) Span() Span {
	return s.cur
}

// Err returns the error that exhausted the sequence before any
// scanning, such as a rejected range. It is nil for a sequence that
// ran to completion or was fast-rejected by configuration.
func (s *Sequence) Err() error {
	return s.err
}

// updateBalance applies the bracket to its family counter and returns
// the nesting depth: the pre-increment balance for opens, the
// post-decrement balance for closes. Both count the brackets enclosing
// this one.
func (s *Sequence) updateBalance(k Kind) int {
	var bal *int
	switch k.Family() {
	case FamilyBrace:
		bal = &s.braces
	case FamilyBracket:
		bal = &s.brackets
	default:
		bal = &s.parens
	}

	if k.IsOpen() {
		*bal++
		return *bal - 1
	}
	*bal--
	return *bal
}

func (s *Sequence) familyEnabled(f Family) bool {
	switch f {
	case FamilyBrace:
		return s.cfg.Braces()
	case FamilyBracket:
		return s.cfg.Brackets()
	case FamilyParen:
		return s.cfg.Parentheses()
	default:
		return false
	}
}

// Collect drains a sequence into a slice.
func Collect(s *Sequence) []Span {
	var spans []Span
	for s.Next() {
		spans = append(spans, s.Span())
	}
	return spans
}
