package piece

import "fmt"

// A Span is the half-open byte range [off1, off2) of an AppendOnlyBuffer.
// Spans are values; splitting one produces two new spans.
type Span struct {
	off1 int
	off2 int
}

// NewSpan returns the span [off1, off2). It panics if the range is
// inverted or starts before zero.
func NewSpan(off1, off2 int) Span {
	if off1 < 0 || off2 < off1 {
		panic(fmt.Sprintf("piece: invalid span [%d, %d)", off1, off2))
	}
	return Span{off1: off1, off2: off2}
}

func (s Span) Start() int {
	return s.off1
}

func (s Span) End() int {
	return s.off2
}

// Len returns the number of bytes covered by s.
func (s Span) Len() int {
	return s.off2 - s.off1
}

func (s Span) IsEmpty() bool {
	return s.Len() == 0
}

// Split divides s such that left holds the first n bytes. ok is false
// when n is 0 or s.Len(): splitting there would produce an empty span and
// callers treat it as an edit exactly on a piece boundary.
func (s Span) Split(n int) (left, right Span, ok bool) {
	if n < 0 || n > s.Len() {
		panic(fmt.Sprintf("piece: split of %v at %d", s, n))
	}
	if n == 0 || n == s.Len() {
		return Span{}, Span{}, false
	}
	return NewSpan(s.off1, s.off1+n), NewSpan(s.off1+n, s.off2), true
}

func (s Span) String() string {
	return fmt.Sprintf("[%d, %d)", s.off1, s.off2)
}
