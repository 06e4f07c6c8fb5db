package peekmore

import "errors"

// ErrConsumed is returned when trying to move the cursor to an element that
// has already been consumed. Only unconsumed elements can be peeked at.
var ErrConsumed = errors.New("peekmore: element has already been consumed")
