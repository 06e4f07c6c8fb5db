package peekmore

// AdvanceCursor moves the cursor to the next peekable element.
//
// This does not advance the iterator itself; to consume elements, call Next.
// The receiver is returned so that cursor movements can be chained.
func (self *Peekable[T]) AdvanceCursor() *Peekable[T] {
	return self.AdvanceCursorBy(1)
}

// AdvanceCursorBy moves the cursor n elements forward. Moving by zero is a
// no-op. The cursor saturates at the maximum integer value instead of
// overflowing.
//
// This does not advance the iterator itself; to consume elements, call Next.
func (self *Peekable[T]) AdvanceCursorBy(n int) *Peekable[T] {
	if n > 0 {
		self.cursor = saturatingAdd(self.cursor, n)
	}
	return self
}

// AdvanceCursorWhile moves the cursor forward until pred is no longer true
// for the peeked element. After it returns the cursor points at the first
// element that failed pred; if the first checked element already fails, the
// cursor is unchanged.
//
// The predicate receives an empty optional once the cursor moves past the
// end of the iterator, so a predicate that rejects empty optionals always
// terminates.
func (self *Peekable[T]) AdvanceCursorWhile(pred func(Optional[T]) bool) *Peekable[T] {
	for pred(self.Peek()) {
		self.cursor = saturatingAdd(self.cursor, 1)
	}
	return self
}

// MoveCursorBack moves the cursor to the previous peekable element. If the
// cursor already points at the first unconsumed element, ErrConsumed is
// returned and the cursor stays where it was.
func (self *Peekable[T]) MoveCursorBack() error {
	return self.MoveCursorBackBy(1)
}

// MoveCursorBackBy moves the cursor n elements backward. If there aren't n
// unconsumed elements before the cursor, ErrConsumed is returned and the
// cursor stays where it was.
//
// To fall back to the first unconsumed element instead of failing, use
// MoveCursorBackOrReset.
func (self *Peekable[T]) MoveCursorBackBy(n int) error {
	if self.cursor < n {
		return ErrConsumed
	}
	self.cursor -= n
	return nil
}

// MoveCursorBackOrReset moves the cursor n elements backward, or to the
// first unconsumed element if there aren't n elements before the cursor.
func (self *Peekable[T]) MoveCursorBackOrReset(n int) *Peekable[T] {
	if self.MoveCursorBackBy(n) != nil {
		self.ResetCursor()
	}
	return self
}

// MoveNth moves the cursor to offset n from the consumption point. The
// offset may point past the buffered elements or even past the end of the
// iterator.
func (self *Peekable[T]) MoveNth(n int) *Peekable[T] {
	self.cursor = n
	return self
}

// ResetCursor moves the cursor back to the first unconsumed element. A Peek
// right after a reset returns the same element a Next would.
func (self *Peekable[T]) ResetCursor() {
	self.cursor = 0
}

// Cursor returns the current cursor position as an offset from the
// consumption point.
func (self *Peekable[T]) Cursor() int {
	return self.cursor
}

// decrementCursor moves the cursor one element back, stopping at the first
// unconsumed element.
func (self *Peekable[T]) decrementCursor() {
	if self.cursor > 0 {
		self.cursor--
	}
}
