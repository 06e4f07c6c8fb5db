package peekmore

import "testing"

// The chunked fill paths are internal tuning; these tests check that they
// produce the same queue contents as filling one element at a time.

func TestLargeRangeUsesChunkedFill(t *testing.T) {
	iter := intRange(0, 2000)
	view := iter.PeekRange(0, 1500)
	if len(view) != 1500 {
		t.Fatalf("view has %d slots, expected 1500", len(view))
	}
	expectSome(t, view[0], 0)
	expectSome(t, view[1499], 1499)
}

func TestVeryLargeRangeUsesAdaptiveChunks(t *testing.T) {
	for _, size := range []int{2500, 6000, 11000} {
		iter := intRange(0, size+500)
		view := iter.PeekRange(0, size)
		if len(view) != size {
			t.Fatalf("view has %d slots, expected %d", len(view), size)
		}
		expectSome(t, view[0], 0)
		expectSome(t, view[size-1], size-1)
	}
}

func TestChunkedFillMatchesSingleStepFill(t *testing.T) {
	const sourceLen = 2500
	const viewLen = 3000

	chunked := intRange(0, sourceLen)
	view := chunked.PeekRange(0, viewLen)

	single := intRange(0, sourceLen)
	for i := 0; i < viewLen; i++ {
		if view[i] != single.PeekNth(i) {
			t.Fatalf("slot %d is %v, expected %v", i, view[i], single.PeekNth(i))
		}
	}
}

func TestLargeJumpPeekNth(t *testing.T) {
	iter := intRange(0, 3000)
	expectSome(t, iter.PeekNth(1500), 1500)
	if got := len(iter.queue); got != 1501 {
		t.Errorf("queue holds %d slots, expected 1501", got)
	}
	expectCursor(t, iter, 0)
}

func TestLargeCursorJump(t *testing.T) {
	iter := intRange(0, 500)
	iter.AdvanceCursorBy(200)
	expectSome(t, iter.Peek(), 200)
}

func TestFillDoesNotReorderAcrossConsumption(t *testing.T) {
	iter := intRange(0, 5000)
	iter.PeekRange(0, 2500)
	for i := 0; i < 2500; i++ {
		expectNext(t, iter, i)
	}
	// The rest was never buffered and is pulled directly.
	expectSome(t, iter.PeekNth(2000), 5000-500)
	for i := 2500; i < 5000; i++ {
		expectNext(t, iter, i)
	}
	expectNone(t, iter.Peek())
}
