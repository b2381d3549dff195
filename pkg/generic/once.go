package generic

import (
	"sync"

	"github.com/mbeoliero/iou/pkg/lazy"
)

// Once returns a function that computes f on first call and returns the
// cached result afterwards. It is safe for concurrent use. If f panics, the
// panic reaches the first caller and every later call panics with
// lazy.ErrCorruptedState.
func Once[T any](f func() T) func() T {
	get := OnceErr(func() (T, error) { return f(), nil })
	return func() T {
		v, err := get()
		if err != nil {
			panic(err)
		}
		return v
	}
}

// OnceErr is Once for functions that can fail. The first caller receives
// f's error; later callers receive lazy.ErrCorruptedState. f is never
// retried.
func OnceErr[T any](f func() (T, error)) func() (T, error) {
	var mu sync.Mutex
	cell := lazy.New(struct{}{}, func(struct{}) (T, error) { return f() })
	return func() (T, error) {
		mu.Lock()
		defer mu.Unlock()

		var v T
		err := cell.View(func(cur T) { v = cur })
		return v, err
	}
}
