package app

import (
	"path/filepath"
	"strings"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/document"
)

// OpenFile opens a document from a file and builds its classifier.
// The MIME type is detected from the file extension. Opening a path
// that is already open returns the existing document.
func (s *Service) OpenFile(path string) (*document.Snapshot, error) {
	return s.OpenFileAs(path, "")
}

// OpenFileAs opens a document from a file with an explicit MIME type.
// An empty mimeType falls back to extension detection. A path that is
// already open returns the existing document with its original type.
func (s *Service) OpenFileAs(path, mimeType string) (*document.Snapshot, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}
	if id, ok := s.byPath[absPath]; ok {
		return s.documents[id].doc, nil
	}

	doc, err := document.FromFile(absPath, mimeType)
	if err != nil {
		return nil, NewOperationError("open", path, err)
	}

	s.register(doc)
	s.byPath[absPath] = doc.ID()
	return doc, nil
}

// OpenString opens an in-memory document. Every call creates a new entry.
func (s *Service) OpenString(name, mimeType, text string) (*document.Snapshot, error) {
	doc := document.FromString(name, mimeType, text)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrServiceClosed
	}
	s.register(doc)
	return doc, nil
}

// register adds a document and its classifier. Caller holds s.mu.
func (s *Service) register(doc *document.Snapshot) {
	classifier, err := s.newClassifier(doc)
	if err != nil {
		// Open stays usable without a classifier: brackets inside
		// strings and comments will simply be counted.
		s.logger.Warn("classifier unavailable for %s: %v", doc.Name(), err)
		classifier = classify.None
	}

	s.documents[doc.ID()] = &openDocument{doc: doc, classifier: classifier}
	s.order = append(s.order, doc.ID())
}

// Document returns an open document by id.
func (s *Service) Document(id string) (*document.Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.documents[id]
	if !ok {
		return nil, false
	}
	return entry.doc, true
}

// Documents returns all open documents in open order.
func (s *Service) Documents() []*document.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]*document.Snapshot, 0, len(s.order))
	for _, id := range s.order {
		if entry, ok := s.documents[id]; ok {
			docs = append(docs, entry.doc)
		}
	}
	return docs
}

// Count returns the number of open documents.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.documents)
}

// SetClassifier replaces the classifier for an open document.
// The previous classifier is closed if it holds resources.
func (s *Service) SetClassifier(id string, c classify.Classifier) error {
	if c == nil {
		c = classify.None
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.documents[id]
	if !ok {
		return ErrDocumentNotFound
	}
	old := entry.classifier
	entry.classifier = c
	if old != nil {
		closeClassifier(old)
	}
	s.dropCached(id)
	return nil
}

// CloseDocument removes a document and releases its classifier.
func (s *Service) CloseDocument(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.documents[id]
	if !ok {
		return ErrDocumentNotFound
	}

	delete(s.documents, id)
	for path, docID := range s.byPath {
		if docID == id {
			delete(s.byPath, path)
			break
		}
	}
	for i, docID := range s.order {
		if docID == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}

	closeClassifier(entry.classifier)
	s.dropCached(id)
	return nil
}

// dropCached removes cached span lists for a document. Caller holds s.mu.
func (s *Service) dropCached(id string) {
	prefix := id + ":"
	for key := range s.spans.Items() {
		if strings.HasPrefix(key, prefix) {
			s.spans.Delete(key)
		}
	}
}
