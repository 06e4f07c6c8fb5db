package peekmore

// Optional is a single value container that can either have a value or not.
// The peek operations return optionals, and the queue of unconsumed elements
// stores its slots as optionals, with an empty one recording that the source
// iterator was exhausted at that position.
type Optional[T any] struct {
	inner  T
	isSome bool
}

// None creates an Optional with no value.
func None[T any]() Optional[T] {
	return Optional[T]{isSome: false}
}

// Some creates an Optional containing the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// IsSome returns true if the optional contains a value.
func (self Optional[T]) IsSome() bool {
	return self.isSome
}

// IsNone returns true if the optional does not contain a value.
func (self Optional[T]) IsNone() bool {
	return !self.isSome
}

// assertSome panics if the optional does not contain a value.
func (self *Optional[T]) assertSome() {
	if !self.isSome {
		panic("tried to unwrap empty optional")
	}
}

// Unwrap returns the contained value or panics if the Optional is empty.
func (self Optional[T]) Unwrap() T {
	self.assertSome()
	return self.inner
}

// UnwrapOr returns the contained value or the given fallback if the Optional
// is empty.
func (self Optional[T]) UnwrapOr(fallback T) T {
	if self.isSome {
		return self.inner
	}
	return fallback
}

// Get is like Unwrap but returns a pointer to the contained value.
func (self *Optional[T]) Get() *T {
	self.assertSome()
	return &self.inner
}

// Take takes the value out of the Optional, leaving the original without a
// value.
func (self *Optional[T]) Take() Optional[T] {
	taken := *self
	var empty T
	self.inner = empty
	self.isSome = false
	return taken
}
