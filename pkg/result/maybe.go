package result

// Maybe holds an optional value. The zero Maybe holds nothing.
type Maybe[T any] struct {
	value T
	ok    bool
}

// Some returns a Maybe holding v.
func Some[T any](v T) Maybe[T] {
	return Maybe[T]{value: v, ok: true}
}

// None returns an empty Maybe.
func None[T any]() Maybe[T] {
	return Maybe[T]{}
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Maybe[T] {
	if p == nil {
		return None[T]()
	}

	return Some(*p)
}

// HasValue reports whether a value is present.
func (m Maybe[T]) HasValue() bool { return m.ok }

// HasNoValue reports whether the value is absent.
func (m Maybe[T]) HasNoValue() bool { return !m.ok }

// Value returns the held value. It panics when the value is absent.
func (m Maybe[T]) Value() T {
	if !m.ok {
		panic("result: value of an empty maybe")
	}

	return m.value
}

// Or returns the held value, or def when absent.
func (m Maybe[T]) Or(def T) T {
	if !m.ok {
		return def
	}

	return m.value
}

// Ptr returns a pointer to a copy of the held value, or nil when absent.
func (m Maybe[T]) Ptr() *T {
	if !m.ok {
		return nil
	}
	v := m.value

	return &v
}
