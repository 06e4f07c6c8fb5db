package peekmore

// Iterator describes any type with a Next method returning the next value
// and whether a value was produced. Once Next returns false the iterator is
// exhausted; it is expected, but not required, to keep returning false on
// further calls.
type Iterator[T any] interface {
	Next() (T, bool)
}

// SizedIterator is an Iterator that additionally knows exactly how many
// values it will still produce.
type SizedIterator[T any] interface {
	Iterator[T]
	Remaining() int
}

// sliceIterator yields the elements of a slice in order. It is sized and
// stays exhausted once the end of the slice is reached.
type sliceIterator[T any] struct {
	items []T
	pos   int
}

func (self *sliceIterator[T]) Next() (T, bool) {
	if self.pos == len(self.items) {
		var none T
		return none, false
	}
	item := self.items[self.pos]
	self.pos++
	return item, true
}

func (self *sliceIterator[T]) Remaining() int {
	return len(self.items) - self.pos
}

// funcIterator yields values by calling the wrapped function.
type funcIterator[T any] func() (T, bool)

func (self funcIterator[T]) Next() (T, bool) {
	return self()
}

// New creates a peekable wrapper for the given iterator. The wrapper takes
// ownership of the iterator: nothing else may pull from it afterwards.
func New[T any](it Iterator[T]) *Peekable[T] {
	return &Peekable[T]{it: it}
}

// FromSlice creates a peekable iterator over the elements of the given slice.
// The slice is not copied and must not be modified while iterating.
func FromSlice[T any](items []T) *Peekable[T] {
	return New[T](&sliceIterator[T]{items: items})
}

// FromFunc creates a peekable iterator that pulls values from the given
// function until it returns false.
func FromFunc[T any](next func() (T, bool)) *Peekable[T] {
	return New[T](funcIterator[T](next))
}
