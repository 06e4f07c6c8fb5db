// Package peekmore provides an iterator adapter that allows peeking at any
// number of unconsumed elements, unlike a conventional peekable wrapper which
// only allows peeking at the next element.
//
// The adapter pulls elements from the wrapped iterator on demand and keeps
// them in a queue until they are consumed. A cursor, independent of the
// consumption point, selects the element the peek operations look at:
//
//	iter := peekmore.FromSlice([]int{1, 2, 3, 4})
//	iter.Peek()          // Some(1)
//	iter.AdvanceCursor()
//	iter.Peek()          // Some(2)
//	iter.Next()          // 1, true; the cursor keeps pointing at 2
//	iter.Peek()          // Some(2)
//
// Consuming elements with Next is the only way to permanently advance the
// iterator; all peek and cursor operations only affect the queue and the
// cursor.
package peekmore
