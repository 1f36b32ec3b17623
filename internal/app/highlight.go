package app

import (
	"fmt"

	"github.com/dshills/prism/internal/highlight"
)

// Sequence returns a fresh span generator for a range of an open document.
// The generator snapshots the current configuration; a reload during
// iteration does not affect it. A range outside the document is
// reported through the sequence's Err method.
func (s *Service) Sequence(id string, start, end int) (*highlight.Sequence, error) {
	s.mu.RLock()
	entry, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrDocumentNotFound
	}
	hl := highlight.NewHighlighter(entry.doc, s.snapshot.Load(), entry.classifier)
	return hl.Highlights(start, end), nil
}

// Highlight returns the spans for a range of an open document. A range
// outside the document is an error unless the document is rejected
// outright. Results are cached until the configuration changes or the
// TTL expires. Callers must not modify the returned slice.
func (s *Service) Highlight(id string, start, end int) ([]highlight.Span, error) {
	s.mu.RLock()
	entry, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrDocumentNotFound
	}

	// Generation is read before the snapshot: if a swap lands between
	// the two loads the result is cached under an unreachable key
	// instead of serving stale colors under a fresh one.
	gen := s.generation.Load()
	snap := s.snapshot.Load()
	if !snap.ShouldHighlight(entry.doc.MimeType()) {
		s.metrics.RecordReject()
		return nil, nil
	}

	key := cacheKey(id, gen, start, end)
	if cached, ok := s.spans.Get(key); ok {
		if spans, ok := cached.([]highlight.Span); ok {
			s.metrics.RecordCacheHit()
			return spans, nil
		}
	}
	s.metrics.RecordCacheMiss()

	timer := StartTimer()
	seq := highlight.NewHighlighter(entry.doc, snap, entry.classifier).Highlights(start, end)
	if err := seq.Err(); err != nil {
		return nil, NewOperationError("highlight", id, err)
	}
	spans := highlight.Collect(seq)
	s.metrics.RecordScan(timer.Elapsed(), len(spans))

	s.spans.Set(key, spans, s.cacheTTL)
	return spans, nil
}

// HighlightAll returns the spans for an entire open document.
func (s *Service) HighlightAll(id string) ([]highlight.Span, error) {
	s.mu.RLock()
	entry, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		return nil, ErrDocumentNotFound
	}
	return s.Highlight(id, 0, entry.doc.Len())
}

// cacheKey builds a span cache key. The generation counter makes keys
// from before a config swap unreachable.
func cacheKey(id string, generation uint64, start, end int) string {
	return fmt.Sprintf("%s:%d:%d:%d", id, generation, start, end)
}
