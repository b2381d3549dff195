package lazy

import (
	"errors"
	"fmt"
)

var (
	// ErrCorruptedState is returned by every operation on a cell whose
	// initializer previously failed. The cell cannot recover and should be
	// discarded.
	ErrCorruptedState = errors.New("corrupted state")
	// ErrBorrowConflict is returned when a guard is requested that would
	// alias an outstanding exclusive guard, or an exclusive guard is
	// requested while any guard is outstanding.
	ErrBorrowConflict = errors.New("borrow conflict")
	// ErrReentrantInitialization is returned when a cell is used from
	// inside its own initializer.
	ErrReentrantInitialization = errors.New("reentrant initialization")
	// ErrConsumed is returned by every operation after Consume.
	ErrConsumed = errors.New("cell consumed")
	// ErrNilInit is the initializer failure reported for a nil initializer.
	ErrNilInit = errors.New("nil initializer")
)

type opError struct {
	name string
	op   string
	err  error
}

func (e *opError) Error() string {
	if e.name == "" {
		return fmt.Sprintf("lazy: %s: %v", e.op, e.err)
	}
	return fmt.Sprintf("lazy %s: %s: %v", e.name, e.op, e.err)
}

func (e *opError) Unwrap() error {
	return e.err
}
