package piece

import (
	"testing"
)

// chainEntry is one visible piece as reported by a PieceIter.
type chainEntry struct {
	Start int
	Piece Piece
	Span  Span
}

func (t *Text) chain() []chainEntry {
	var c []chainEntry
	it := t.Pieces()
	for {
		s, p, ok := it.Next()
		if !ok {
			return c
		}
		c = append(c, chainEntry{Start: s, Piece: p, Span: t.Span(p)})
	}
}

func (t *Text) checkContent(testname string, tt *testing.T, want string) {
	tt.Helper()
	if got := t.String(); got != want {
		tt.Errorf("%s: content got %q, want %q", testname, got, want)
	}
	if got, want := t.Len(), len(want); got != want {
		tt.Errorf("%s: Len got %d, want %d", testname, got, want)
	}
	if err := t.validate(); err != nil {
		tt.Errorf("%s: %v", testname, err)
	}
}

func (t *Text) checkPiecesCnt(tt *testing.T, want int) {
	tt.Helper()
	if got := t.NumPieces(); got != want {
		tt.Errorf("got %d pieces, want %d", got, want)
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}
