package peekmore

import "testing"

func BenchmarkPeekAndConsume(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter := intRange(0, 11)
		iter.Peek()
		iter.PeekNth(10)
		iter.Nth(10)
	}
}

func BenchmarkAdvanceCursorWalk(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter := intRange(0, 1000)
		iter.AdvanceCursorWhile(Optional[int].IsSome)
		iter.TruncateIteratorToCursor()
	}
}

func BenchmarkLargeRangeFill(b *testing.B) {
	for i := 0; i < b.N; i++ {
		iter := intRange(0, 5000)
		iter.PeekAmount(5000)
	}
}
