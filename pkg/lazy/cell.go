// Package lazy provides Cell, a value that is initialized on first use.
//
// A Cell holds seed data and an initializer until the value is first read,
// written or explicitly forced. The initializer then runs exactly once and
// its result is cached for the rest of the cell's life. If the initializer
// fails, the cell is corrupted for good: the caller that triggered it sees
// the original failure, every later caller sees ErrCorruptedState.
//
// A Cell has a single owner and is not safe for concurrent use. Borrows of
// the value are tracked at run time: conflicting borrows fail immediately
// with ErrBorrowConflict instead of blocking.
package lazy

import (
	"time"

	"github.com/mbeoliero/iou/pkg/log"
)

type state uint8

const (
	statePending state = iota
	stateInitializing
	stateInitialized
	stateCorrupted
	stateConsumed
)

var stateNames = [...]string{
	statePending:      "pending",
	stateInitializing: "initializing",
	stateInitialized:  "initialized",
	stateCorrupted:    "corrupted",
	stateConsumed:     "consumed",
}

func (s state) String() string {
	return stateNames[s]
}

// Init produces a cell's value from its seed. It is called at most once.
type Init[S, T any] func(S) (T, error)

// Infallible adapts a function that cannot fail to an Init.
func Infallible[S, T any](f func(S) T) Init[S, T] {
	return func(seed S) (T, error) {
		return f(seed), nil
	}
}

// Cell defers the construction of a T from a seed S until first use.
type Cell[S, T any] struct {
	state state
	seed  S
	init  Init[S, T]
	value T

	// >0 shared borrows, -1 exclusive borrow
	borrows int

	name   string
	logger log.Logger
}

// New returns a pending cell. The initializer is not called.
func New[S, T any](seed S, init Init[S, T], opts ...Option) *Cell[S, T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Cell[S, T]{
		state:  statePending,
		seed:   seed,
		init:   init,
		name:   o.name,
		logger: o.logger,
	}
}

// String reports the cell's state without forcing it.
func (c *Cell[S, T]) String() string {
	return c.state.String()
}

// Force runs the initializer if the cell is still pending.
//
// An error returned by the initializer is passed through unchanged, and a
// panic is re-raised with its original value. In both cases the cell is left
// corrupted.
func (c *Cell[S, T]) Force() error {
	return c.force("force")
}

// IsInitialized reports whether the value has been computed. A corrupted or
// consumed cell returns an error rather than false.
func (c *Cell[S, T]) IsInitialized() (bool, error) {
	switch c.state {
	case stateInitialized:
		return true, nil
	case statePending:
		return false, nil
	default:
		return false, c.stateErr("is_initialized")
	}
}

// Read forces the cell and returns a shared borrow of the value. The caller
// must Release it.
func (c *Cell[S, T]) Read() (*Ref[T], error) {
	if err := c.force("read"); err != nil {
		return nil, err
	}
	if c.borrows < 0 {
		return nil, c.wrap("read", ErrBorrowConflict)
	}
	c.borrows++
	return &Ref[T]{value: &c.value, release: c.releaseShared}, nil
}

// Mutate forces the cell and returns an exclusive borrow of the value. The
// caller must Release it.
func (c *Cell[S, T]) Mutate() (*RefMut[T], error) {
	if err := c.force("mutate"); err != nil {
		return nil, err
	}
	if c.borrows != 0 {
		return nil, c.wrap("mutate", ErrBorrowConflict)
	}
	c.borrows = -1
	return &RefMut[T]{value: &c.value, release: c.releaseExclusive}, nil
}

// View calls fn with a shared borrow of the value held for its duration.
func (c *Cell[S, T]) View(fn func(T)) error {
	ref, err := c.Read()
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(ref.Value())
	return nil
}

// Update calls fn with an exclusive borrow of the value held for its
// duration.
func (c *Cell[S, T]) Update(fn func(*T)) error {
	ref, err := c.Mutate()
	if err != nil {
		return err
	}
	defer ref.Release()
	fn(ref.Ptr())
	return nil
}

// Consume moves the value out of the cell, running the initializer first if
// the cell is still pending. Afterwards every operation on the cell returns
// ErrConsumed. Consume fails with ErrBorrowConflict while a borrow is
// outstanding and leaves the cell untouched.
func (c *Cell[S, T]) Consume() (T, error) {
	var zero T
	if c.borrows != 0 {
		return zero, c.wrap("consume", ErrBorrowConflict)
	}

	switch c.state {
	case statePending:
		seed, init := c.take()
		v, err := c.run(seed, init)
		if err != nil {
			return zero, err
		}
		c.state = stateConsumed
		return v, nil
	case stateInitialized:
		v := c.value
		c.value = zero
		c.state = stateConsumed
		return v, nil
	default:
		return zero, c.stateErr("consume")
	}
}

func (c *Cell[S, T]) force(op string) error {
	switch c.state {
	case stateInitialized:
		return nil
	case statePending:
		seed, init := c.take()
		v, err := c.run(seed, init)
		if err != nil {
			return err
		}
		c.value = v
		c.state = stateInitialized
		return nil
	default:
		return c.stateErr(op)
	}
}

// take empties the pending state. The cell stays initializing until run
// settles it.
func (c *Cell[S, T]) take() (S, Init[S, T]) {
	seed, init := c.seed, c.init
	var zero S
	c.seed, c.init = zero, nil
	c.state = stateInitializing
	return seed, init
}

// run calls the initializer. On any failure the cell is corrupted before
// control returns to the caller.
func (c *Cell[S, T]) run(seed S, init Init[S, T]) (T, error) {
	var zero T
	if init == nil {
		c.state = stateCorrupted
		c.log().Error("lazy cell %s: %v", c.label(), ErrNilInit)
		return zero, ErrNilInit
	}

	start := time.Now()
	done := false
	defer func() {
		if done {
			return
		}
		c.state = stateCorrupted
		if r := recover(); r != nil {
			c.log().Error("lazy cell %s: initializer panicked: %v", c.label(), r)
			panic(r)
		}
	}()

	v, err := init(seed)
	done = true
	if err != nil {
		c.state = stateCorrupted
		c.log().Error("lazy cell %s: initializer failed: %v", c.label(), err)
		return zero, err
	}
	c.log().Debug("lazy cell %s: initialized in %v", c.label(), time.Since(start))
	return v, nil
}

func (c *Cell[S, T]) releaseShared() {
	c.borrows--
}

func (c *Cell[S, T]) releaseExclusive() {
	c.borrows = 0
}

func (c *Cell[S, T]) stateErr(op string) error {
	switch c.state {
	case stateInitializing:
		return c.wrap(op, ErrReentrantInitialization)
	case stateCorrupted:
		return c.wrap(op, ErrCorruptedState)
	case stateConsumed:
		return c.wrap(op, ErrConsumed)
	}
	return nil
}

func (c *Cell[S, T]) wrap(op string, err error) error {
	return &opError{name: c.name, op: op, err: err}
}

func (c *Cell[S, T]) log() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.DefaultLogger()
}

func (c *Cell[S, T]) label() string {
	if c.name == "" {
		return "<unnamed>"
	}
	return c.name
}
