package peekmore

import "testing"

func TestSliceIterator(t *testing.T) {
	it := &sliceIterator[int]{items: []int{1, 2}}
	if got := it.Remaining(); got != 2 {
		t.Errorf("got %d, expected 2", got)
	}
	expectNext(t, New[int](it), 1)
}

func TestSliceIteratorStaysExhausted(t *testing.T) {
	it := &sliceIterator[int]{items: []int{1}}
	it.Next()
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Fatal("iterator returned a value after exhaustion")
		}
	}
	if got := it.Remaining(); got != 0 {
		t.Errorf("got %d, expected 0", got)
	}
}

func TestFromFunc(t *testing.T) {
	calls := 0
	iter := FromFunc(func() (int, bool) {
		calls++
		return calls, calls <= 2
	})
	expectNext(t, iter, 1)
	expectNext(t, iter, 2)
	if _, ok := iter.Next(); ok {
		t.Error("iterator returned a value after the function signaled exhaustion")
	}
}

func TestNewStartsEmpty(t *testing.T) {
	iter := FromSlice([]int{1})
	if got := len(iter.queue); got != 0 {
		t.Errorf("fresh iterator buffered %d slots, expected 0", got)
	}
	expectCursor(t, iter, 0)
}
