package app

import (
	"sync"
	"sync/atomic"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dshills/prism/internal/classify"
	"github.com/dshills/prism/internal/config"
	"github.com/dshills/prism/internal/config/loader"
	"github.com/dshills/prism/internal/config/notify"
	"github.com/dshills/prism/internal/config/watcher"
	"github.com/dshills/prism/internal/document"
)

const (
	// DefaultCacheTTL is how long cached span lists stay valid.
	DefaultCacheTTL = 5 * time.Minute

	// defaultCacheCleanup is how often expired cache entries are purged.
	defaultCacheCleanup = 10 * time.Minute
)

// ClassifierFactory builds a classifier for a newly opened document.
type ClassifierFactory func(doc *document.Snapshot) (classify.Classifier, error)

// Service is the central coordinator for bracket highlighting.
// It owns the compiled configuration, the open document registry,
// per-document classifiers, and the span cache.
type Service struct {
	mu sync.RWMutex

	// Compiled configuration, swapped atomically on reload.
	snapshot atomic.Pointer[config.Snapshot]

	// Incremented on every config swap so stale scans cannot
	// repopulate the cache with old colors.
	generation atomic.Uint64

	documents map[string]*openDocument // id -> entry
	byPath    map[string]string        // absolute path -> id
	order     []string                 // ids in open order

	notifier *notify.Notifier
	watch    *watcher.Watcher

	spans    *gocache.Cache
	cacheTTL time.Duration

	metrics       *Metrics
	logger        *Logger
	newClassifier ClassifierFactory

	closed bool
}

// openDocument pairs a document with its classifier.
type openDocument struct {
	doc        *document.Snapshot
	classifier classify.Classifier
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets the service logger.
func WithLogger(l *Logger) Option {
	return func(s *Service) {
		s.logger = l
	}
}

// WithMetrics sets the metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClassifierFactory sets the factory used when documents are opened.
func WithClassifierFactory(f ClassifierFactory) Option {
	return func(s *Service) {
		s.newClassifier = f
	}
}

// WithCacheTTL sets how long cached span lists stay valid.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		s.cacheTTL = ttl
	}
}

// New creates a service from the given options.
// Returns an error if the options do not compile into a valid snapshot.
func New(opts config.Options, svcOpts ...Option) (*Service, error) {
	snap, err := config.NewSnapshot(opts)
	if err != nil {
		return nil, err
	}

	s := &Service{
		documents: make(map[string]*openDocument),
		byPath:    make(map[string]string),
		notifier:  notify.New(),
		cacheTTL:  DefaultCacheTTL,
		metrics:   NewMetrics(),
		logger:    GetLogger().WithComponent("service"),
	}
	s.snapshot.Store(snap)

	for _, opt := range svcOpts {
		opt(s)
	}

	if s.newClassifier == nil {
		s.newClassifier = defaultClassifier
	}
	s.spans = gocache.New(s.cacheTTL, defaultCacheCleanup)

	return s, nil
}

// NewDefault creates a service with default options.
func NewDefault(svcOpts ...Option) *Service {
	s, err := New(config.Default(), svcOpts...)
	if err != nil {
		// Default options always compile.
		panic(err)
	}
	return s
}

// defaultClassifier tokenizes the document with a lexer chosen by MIME type.
func defaultClassifier(doc *document.Snapshot) (classify.Classifier, error) {
	return classify.NewChroma(doc)
}

// Snapshot returns the current compiled configuration.
func (s *Service) Snapshot() *config.Snapshot {
	return s.snapshot.Load()
}

// Options returns a copy of the current configuration options.
func (s *Service) Options() config.Options {
	return s.snapshot.Load().Options().Clone()
}

// ApplyOptions compiles and installs new options.
// On error the previous configuration stays in effect.
func (s *Service) ApplyOptions(opts config.Options, source string) error {
	snap, err := config.NewSnapshot(opts)
	if err != nil {
		return err
	}
	s.install(snap, source, notify.ChangeUpdate)
	return nil
}

// install swaps the compiled snapshot and invalidates derived state.
func (s *Service) install(snap *config.Snapshot, source string, ct notify.ChangeType) {
	old := s.snapshot.Swap(snap)
	s.generation.Add(1)
	s.spans.Flush()
	s.metrics.RecordReload()

	change := notify.Change{
		Type:   ct,
		Old:    old.Options(),
		New:    snap.Options(),
		Source: source,
	}
	s.notifier.Notify(change)
	s.logger.Debug("config installed from %s", source)
}

// Subscribe registers an observer for configuration changes.
func (s *Service) Subscribe(obs notify.Observer) *notify.Subscription {
	return s.notifier.Subscribe(obs)
}

// WatchConfig reloads configuration whenever the file at path changes.
// Files that fail to load or validate are ignored and the previous
// configuration stays in effect.
func (s *Service) WatchConfig(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrServiceClosed
	}
	if s.watch != nil {
		return ErrAlreadyWatching
	}

	w, err := watcher.New(path, s.reloadFrom, watcher.WithErrorHandler(func(err error) {
		s.logger.Warn("config watch: %v", err)
	}))
	if err != nil {
		return NewOperationError("watch", path, err)
	}
	s.watch = w
	s.logger.Info("watching config at %s", w.Path())
	return nil
}

// reloadFrom loads the changed file and installs it if it is valid.
func (s *Service) reloadFrom(path string) {
	opts, err := loader.Load(path)
	if err != nil {
		s.logger.Warn("config reload rejected: %v", err)
		return
	}
	snap, err := config.NewSnapshot(opts)
	if err != nil {
		s.logger.Warn("config reload rejected: %v", err)
		return
	}
	s.install(snap, path, notify.ChangeReload)
}

// Metrics returns the service metrics tracker.
func (s *Service) Metrics() *Metrics {
	return s.metrics
}

// Close stops the config watch, closes classifiers, and releases the
// notifier. Safe to call more than once.
func (s *Service) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	w := s.watch
	s.watch = nil
	entries := make([]*openDocument, 0, len(s.documents))
	for _, e := range s.documents {
		entries = append(entries, e)
	}
	s.documents = make(map[string]*openDocument)
	s.byPath = make(map[string]string)
	s.order = nil
	s.mu.Unlock()

	var firstErr error
	if w != nil {
		if err := w.Close(); err != nil {
			firstErr = err
		}
	}
	for _, e := range entries {
		closeClassifier(e.classifier)
	}
	s.notifier.Close()
	s.spans.Flush()
	return firstErr
}

// closeClassifier releases classifier resources when it holds any.
func closeClassifier(c classify.Classifier) {
	if closer, ok := c.(interface{ Close() error }); ok {
		_ = closer.Close()
	}
}
