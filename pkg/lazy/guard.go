package lazy

// Ref is a shared borrow of a cell's value. Any number of Refs may be
// outstanding at once, but none while a RefMut is held.
type Ref[T any] struct {
	value   *T
	release func()
}

// Value returns the borrowed value. It panics after Release.
func (r *Ref[T]) Value() T {
	if r.value == nil {
		panic("lazy: use of released Ref")
	}
	return *r.value
}

// Release ends the borrow. Calling it more than once is a no-op.
func (r *Ref[T]) Release() {
	if r.value == nil {
		return
	}
	r.value = nil
	r.release()
}

// RefMut is an exclusive borrow of a cell's value.
type RefMut[T any] struct {
	value   *T
	release func()
}

// Value returns the borrowed value. It panics after Release.
func (r *RefMut[T]) Value() T {
	return *r.Ptr()
}

// Ptr returns a pointer to the value stored in the cell. The pointer must
// not be used after Release.
func (r *RefMut[T]) Ptr() *T {
	if r.value == nil {
		panic("lazy: use of released RefMut")
	}
	return r.value
}

// Set replaces the stored value.
func (r *RefMut[T]) Set(v T) {
	*r.Ptr() = v
}

// Release ends the borrow. Calling it more than once is a no-op.
func (r *RefMut[T]) Release() {
	if r.value == nil {
		return
	}
	r.value = nil
	r.release()
}
