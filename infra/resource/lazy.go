package resource

import (
	"sync"

	"github.com/mbeoliero/iou/pkg/lazy"
)

// Lazy is a lazily constructed client shared between goroutines. The cell
// it wraps has a single owner, so every access goes through mu.
type Lazy[S, T any] struct {
	mu      sync.Mutex
	cell    *lazy.Cell[S, T]
	release func(T) error
}

// NewLazy returns a pending resource. release, if not nil, is called by
// Close on a value that was built.
func NewLazy[S, T any](name string, seed S, init lazy.Init[S, T], release func(T) error) *Lazy[S, T] {
	return &Lazy[S, T]{
		cell:    lazy.New(seed, init, lazy.WithName(name)),
		release: release,
	}
}

// Get builds the value on first call and returns it.
func (l *Lazy[S, T]) Get() (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var v T
	err := l.cell.View(func(cur T) { v = cur })
	return v, err
}

func (l *Lazy[S, T]) Force() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cell.Force()
}

func (l *Lazy[S, T]) String() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cell.String()
}

// Close releases a built value. A resource that was never built stays
// pending and Close does nothing; a corrupted one has nothing to release.
func (l *Lazy[S, T]) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	ok, err := l.cell.IsInitialized()
	if err != nil || !ok {
		return nil
	}
	v, err := l.cell.Consume()
	if err != nil {
		return err
	}
	if l.release == nil {
		return nil
	}
	return l.release(v)
}
