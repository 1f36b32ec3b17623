// Package notify provides change notification for configuration updates.
//
// Components that hold a compiled config snapshot subscribe here and
// rebuild when the options change. Delivery is synchronous by default;
// WithAsync decouples observers from the updater's goroutine.
package notify

import (
	"sync"

	"github.com/dshills/prism/internal/config"
)

// ChangeType represents the type of configuration change.
type ChangeType int

const (
	// ChangeUpdate indicates options were modified in place.
	ChangeUpdate ChangeType = iota

	// ChangeReload indicates the entire configuration was reloaded
	// from disk.
	ChangeReload
)

// String returns the change type name.
func (c ChangeType) String() string {
	switch c {
	case ChangeUpdate:
		return "update"
	case ChangeReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Change represents a configuration change event.
type Change struct {
	// Type is the type of change.
	Type ChangeType

	// Old is the previous options value.
	Old config.Options

	// New is the new options value.
	New config.Options

	// Source identifies where the change came from, such as "file",
	// "env" or "api".
	Source string
}

// Observer is called when configuration changes occur.
type Observer func(change Change)

// Subscription represents an active observer subscription.
type Subscription struct {
	id       uint64
	notifier *Notifier
}

// Unsubscribe removes this subscription.
func (s *Subscription) Unsubscribe() {
	if s.notifier != nil {
		s.notifier.unsubscribe(s.id)
	}
}

// Notifier manages configuration change subscriptions.
type Notifier struct {
	mu sync.RWMutex

	observers map[uint64]Observer
	nextID    uint64

	async  bool
	buffer chan Change
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

// Option configures a Notifier.
type Option func(*Notifier)

// WithAsync enables asynchronous notification delivery.
func WithAsync(bufferSize int) Option {
	return func(n *Notifier) {
		if bufferSize > 0 {
			n.async = true
			n.buffer = make(chan Change, bufferSize)
		}
	}
}

// New creates a new Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		observers: make(map[uint64]Observer),
		done:      make(chan struct{}),
	}

	for _, opt := range opts {
		opt(n)
	}

	if n.async {
		n.wg.Add(1)
		go n.processAsync()
	}

	return n
}

// Subscribe registers an observer for all changes.
func (n *Notifier) Subscribe(observer Observer) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := n.nextID
	n.nextID++
	n.observers[id] = observer

	return &Subscription{id: id, notifier: n}
}

// Notify sends a change notification to all observers.
func (n *Notifier) Notify(change Change) {
	n.mu.RLock()
	if n.closed {
		n.mu.RUnlock()
		return
	}
	n.mu.RUnlock()

	if n.async {
		select {
		case n.buffer <- change:
		case <-n.done:
		}
		return
	}

	n.deliver(change)
}

// NotifyUpdate is a convenience method for in-place option changes.
func (n *Notifier) NotifyUpdate(old, new config.Options, source string) {
	n.Notify(Change{Type: ChangeUpdate, Old: old, New: new, Source: source})
}

// NotifyReload is a convenience method for reload events.
func (n *Notifier) NotifyReload(old, new config.Options, source string) {
	n.Notify(Change{Type: ChangeReload, Old: old, New: new, Source: source})
}

// Close shuts down the notifier. It is safe to call Close multiple
// times.
func (n *Notifier) Close() {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		return
	}
	n.closed = true
	n.mu.Unlock()

	close(n.done)
	n.wg.Wait()
}

func (n *Notifier) unsubscribe(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	delete(n.observers, id)
}

func (n *Notifier) deliver(change Change) {
	n.mu.RLock()
	observers := make([]Observer, 0, len(n.observers))
	for _, o := range n.observers {
		observers = append(observers, o)
	}
	n.mu.RUnlock()

	for _, o := range observers {
		o(change)
	}
}

func (n *Notifier) processAsync() {
	defer n.wg.Done()

	for {
		select {
		case change := <-n.buffer:
			n.deliver(change)
		case <-n.done:
			// Drain anything still buffered before exiting.
			for {
				select {
				case change := <-n.buffer:
					n.deliver(change)
				default:
					return
				}
			}
		}
	}
}
