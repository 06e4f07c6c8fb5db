package peekmore

import (
	"golang.org/x/exp/slices"
)

// Thresholds for switching to chunked queue filling. These only affect how
// the queue grows, never its contents.
const (
	fillBatchThreshold  = 1000
	fillChunkSize       = 500
	rangeBatchThreshold = 2000
)

// Peekable wraps an Iterator with the ability to peek at any number of
// unconsumed values.
//
// Elements pulled from the wrapped iterator but not yet consumed are kept in
// a queue. The front of the queue (offset 0) is the next element Next will
// return; the cursor is an offset into the queue selecting the element Peek
// looks at. Consuming an element dequeues the front slot, so the cursor
// keeps its position relative to the consumption point.
//
// A Peekable is not safe for concurrent use.
type Peekable[T any] struct {
	// The wrapped iterator. Pulling from it does not consume elements as far
	// as the Peekable is concerned, it only moves them into the queue.
	it Iterator[T]
	// Pulled but unconsumed elements. An empty optional records that the
	// iterator was exhausted at that position, so exhaustion is remembered
	// instead of probed again.
	queue []Optional[T]
	// Offset into the queue of the element we are currently peeking at.
	cursor int
}

// Peek returns the element the cursor currently points to, pulling from the
// wrapped iterator as needed. If the cursor points past the end of the
// iterator an empty optional is returned.
//
// Peeking does not move the cursor: repeated calls return the same element
// until the cursor is moved or the element is consumed.
func (self *Peekable[T]) Peek() Optional[T] {
	return self.PeekNth(self.cursor)
}

// PeekNth returns the element at offset n from the consumption point,
// without using or moving the cursor.
func (self *Peekable[T]) PeekNth(n int) Optional[T] {
	self.fill(saturatingAdd(n, 1))
	return self.queue[n]
}

// PeekFirst returns the first unconsumed element, regardless of where the
// cursor currently is. This is the element a plain single-step peekable
// wrapper would show.
func (self *Peekable[T]) PeekFirst() Optional[T] {
	return self.PeekNth(0)
}

// PeekNext advances the cursor to the next element and returns it.
func (self *Peekable[T]) PeekNext() Optional[T] {
	return self.AdvanceCursor().Peek()
}

// PeekPrevious moves the cursor back by one element and returns it. If the
// cursor already points at the first unconsumed element, ErrConsumed is
// returned and the cursor stays where it was.
func (self *Peekable[T]) PeekPrevious() (Optional[T], error) {
	return self.PeekBackward(1)
}

// PeekForward moves the cursor n elements forward and returns the element it
// then points to.
func (self *Peekable[T]) PeekForward(n int) Optional[T] {
	return self.AdvanceCursorBy(n).Peek()
}

// PeekBackward moves the cursor n elements backward and returns the element
// it then points to. If there aren't n elements before the cursor,
// ErrConsumed is returned and the cursor stays where it was.
//
// To fall back to the first unconsumed element instead of failing, use
// PeekBackwardOrFirst.
func (self *Peekable[T]) PeekBackward(n int) (Optional[T], error) {
	if err := self.MoveCursorBackBy(n); err != nil {
		return None[T](), err
	}
	return self.Peek(), nil
}

// PeekBackwardOrFirst moves the cursor n elements backward, or to the first
// unconsumed element if there aren't n elements before the cursor, and
// returns the element it then points to.
func (self *Peekable[T]) PeekBackwardOrFirst(n int) Optional[T] {
	return self.MoveCursorBackOrReset(n).Peek()
}

// PeekRange returns a view of the elements from offset start (inclusive) to
// offset end (exclusive). Offsets are counted from the consumption point and
// do not take the cursor into account.
//
// The returned slice always has exactly end-start slots; positions past the
// end of the iterator hold empty optionals. It is a view into the queue and
// is only valid until the next operation on the Peekable; it must not be
// modified.
//
// Panics if start > end.
func (self *Peekable[T]) PeekRange(start, end int) []Optional[T] {
	if start > end {
		panic("peekmore: invalid peek range, start must not be greater than end")
	}
	if end-len(self.queue) > rangeBatchThreshold {
		self.fillAdaptive(end)
	} else {
		self.fill(end)
	}
	return self.queue[start:end]
}

// PeekAmount returns a view of the first n unconsumed elements, like
// PeekRange(0, n).
func (self *Peekable[T]) PeekAmount(n int) []Optional[T] {
	return self.PeekRange(0, n)
}

// Next returns the next value, advancing the iterator. The front of the
// queue is consumed if it is non-empty, otherwise the value is pulled from
// the wrapped iterator directly.
//
// The cursor keeps pointing at the same element relative to the consumption
// point, unless it pointed at the consumed element, in which case it moves
// along to the new first unconsumed element.
func (self *Peekable[T]) Next() (T, bool) {
	var item T
	var ok bool
	if len(self.queue) == 0 {
		item, ok = self.it.Next()
	} else {
		slot := self.queue[0]
		self.queue = slices.Delete(self.queue, 0, 1)
		if slot.IsSome() {
			item, ok = slot.Unwrap(), true
		}
	}
	self.decrementCursor()
	return item, ok
}

// NextIf consumes and returns the next value if pred returns true for it.
// Otherwise nothing is consumed and an empty optional is returned.
//
// This always inspects the first unconsumed element; the cursor position is
// irrelevant to it.
func (self *Peekable[T]) NextIf(pred func(T) bool) Optional[T] {
	first := self.PeekFirst()
	if first.IsSome() && pred(first.Unwrap()) {
		item, _ := self.Next()
		return Some(item)
	}
	return None[T]()
}

// NextIfEq consumes and returns the next value of the given iterator if it
// is equal to expected. This is a free function rather than a method since
// it requires the element type to be comparable.
func NextIfEq[T comparable](it *Peekable[T], expected T) Optional[T] {
	return it.NextIf(func(value T) bool {
		return value == expected
	})
}

// Nth consumes n+1 elements and returns the last one, or an empty optional
// if the iterator is exhausted before that.
func (self *Peekable[T]) Nth(n int) Optional[T] {
	for i := 0; i <= n; i++ {
		item, ok := self.Next()
		if !ok {
			return None[T]()
		}
		if i == n {
			return Some(item)
		}
	}
	return None[T]()
}

// Remaining returns the exact number of unconsumed elements, if the wrapped
// iterator knows how many values it will still produce. Buffered but
// unconsumed elements count as remaining.
func (self *Peekable[T]) Remaining() (int, bool) {
	sized, ok := self.it.(SizedIterator[T])
	if !ok {
		return 0, false
	}
	count := sized.Remaining()
	for _, slot := range self.queue {
		if slot.IsSome() {
			count++
		}
	}
	return count, true
}

// TruncateIteratorToCursor discards all unconsumed elements before the
// cursor, so that the element the cursor pointed at becomes the next element
// returned by Next. The cursor is reset to the consumption point.
//
// The discarded elements are never returned by Next. Truncating does not
// change what Peek returns, it only frees the queue slots and resets the
// cursor.
func (self *Peekable[T]) TruncateIteratorToCursor() {
	if self.cursor < len(self.queue) {
		self.queue = slices.Delete(self.queue, 0, self.cursor)
	} else {
		// Elements between the end of the queue and the cursor were never
		// pulled; skip them on the iterator itself.
		for i := len(self.queue); i < self.cursor; i++ {
			self.it.Next()
		}
		self.queue = self.queue[:0]
	}
	self.cursor = 0
}

// fill pulls from the wrapped iterator until the queue holds at least want
// slots. Every pull result is appended, including exhaustion, which is
// recorded as an empty slot. The queue never shrinks.
func (self *Peekable[T]) fill(want int) {
	missing := want - len(self.queue)
	if missing <= 0 {
		return
	}
	if missing > fillBatchThreshold {
		self.fillChunked(want, fillChunkSize)
		return
	}
	for len(self.queue) < want {
		self.pushNextToQueue()
	}
}

// fillAdaptive is fill for large ranges, with a chunk size scaled to the
// number of missing slots.
func (self *Peekable[T]) fillAdaptive(want int) {
	missing := want - len(self.queue)
	var chunkSize int
	switch {
	case missing > 10000:
		chunkSize = 2000
	case missing > 5000:
		chunkSize = 1000
	default:
		chunkSize = 500
	}
	self.fillChunked(want, chunkSize)
}

// fillChunked grows the queue to want slots in chunks, pre-allocating the
// full amount up front. The resulting queue contents are identical to
// filling one element at a time.
func (self *Peekable[T]) fillChunked(want, chunkSize int) {
	self.queue = slices.Grow(self.queue, want-len(self.queue))
	for len(self.queue) < want {
		chunk := minInt(chunkSize, want-len(self.queue))
		for i := 0; i < chunk; i++ {
			self.pushNextToQueue()
		}
	}
}

// pushNextToQueue pulls one value from the wrapped iterator and appends it
// to the queue.
func (self *Peekable[T]) pushNextToQueue() {
	item, ok := self.it.Next()
	if ok {
		self.queue = append(self.queue, Some(item))
	} else {
		self.queue = append(self.queue, None[T]())
	}
}
