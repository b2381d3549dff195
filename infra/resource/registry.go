package resource

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already registered")
)

// Resource is anything that can be forced and can report its state without
// being forced. *Lazy satisfies it.
type Resource interface {
	Force() error
	String() string
}

// Registry names the lazy resources of a process.
type Registry struct {
	mu    sync.RWMutex
	items map[string]Resource
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Resource)}
}

func (r *Registry) Register(name string, res Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	r.items[name] = res
	return nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// States reports every resource's state. Nothing is forced.
func (r *Registry) States() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	states := make(map[string]string, len(r.items))
	for name, res := range r.items {
		states[name] = res.String()
	}
	return states
}

// Force builds the named resource if needed and returns its new state.
func (r *Registry) Force(name string) (string, error) {
	r.mu.RLock()
	res, ok := r.items[name]
	r.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	err := res.Force()
	return res.String(), err
}

// Close closes every resource that implements io.Closer and collects the
// failures.
func (r *Registry) Close() error {
	var result *multierror.Error
	for _, name := range r.Names() {
		r.mu.RLock()
		res := r.items[name]
		r.mu.RUnlock()

		closer, ok := res.(io.Closer)
		if !ok {
			continue
		}
		if err := closer.Close(); err != nil {
			result = multierror.Append(result, fmt.Errorf("close %s: %w", name, err))
		}
	}
	return result.ErrorOrNil()
}
