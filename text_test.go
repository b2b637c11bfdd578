package piece

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var spanCmp = cmp.AllowUnexported(Span{})

func TestNew(t *testing.T) {
	tx := New()
	tx.checkContent("#0", t, "")
	tx.checkPiecesCnt(t, 0)
	if got := tx.chain(); len(got) != 0 {
		t.Errorf("empty text has pieces %v", got)
	}
}

func TestInsertBeginning(t *testing.T) {
	tx := New()
	tx.InsertString(0, "World")
	tx.checkContent("#0", t, "World")
	tx.InsertString(0, "Hello ")
	tx.checkContent("#1", t, "Hello World")
	tx.InsertString(0, "...")
	tx.checkContent("#2", t, "...Hello World")
	tx.checkPiecesCnt(t, 3)
}

func TestInsertAtEnd(t *testing.T) {
	tx := New()
	tx.InsertString(0, "Hello")
	tx.checkContent("#0", t, "Hello")
	tx.InsertString(5, " Bene")
	tx.checkContent("#1", t, "Hello Bene")
	tx.checkPiecesCnt(t, 2)
}

func TestInsertMiddle(t *testing.T) {
	tx := New()
	tx.InsertString(0, "1234")
	tx.InsertString(2, "x")
	tx.checkContent("#0", t, "12x34")
	tx.checkPiecesCnt(t, 3)

	// 3 is the boundary between "x" and "34": no split needed.
	tx.InsertString(3, "yz")
	tx.checkContent("#1", t, "12xyz34")
	tx.checkPiecesCnt(t, 4)
}

func TestAppend(t *testing.T) {
	tx := New()
	tx.AppendString("Hello")
	tx.Append([]byte(" "))
	tx.Append([]byte("World!"))
	tx.checkContent("#0", t, "Hello World!")
	tx.checkPiecesCnt(t, 3)
}

func TestInsertEmptyIsNoop(t *testing.T) {
	tx := New()
	tx.InsertString(0, "")
	tx.checkContent("#0", t, "")
	tx.checkPiecesCnt(t, 0)

	tx.InsertString(0, "456")
	tx.InsertString(0, "123")
	before := tx.chain()
	narena := len(tx.pieces)

	for off := 0; off <= tx.Len(); off++ {
		tx.Insert(off, nil)
		tx.InsertString(off, "")
	}
	tx.Append(nil)

	tx.checkContent("#1", t, "123456")
	if diff := cmp.Diff(before, tx.chain(), spanCmp); diff != "" {
		t.Errorf("chain changed (-before +after):\n%s", diff)
	}
	if got, want := len(tx.pieces), narena; got != want {
		t.Errorf("arena grew to %d, want %d", got, want)
	}
}

func TestFindPiece(t *testing.T) {
	tx := New()
	tx.InsertString(0, "456") // piece 1
	tx.InsertString(0, "123") // piece 2

	cases := []struct {
		off   int
		start int
		piece Piece
	}{
		{0, 0, 2},
		{2, 0, 2},
		{3, 3, 1}, // boundary resolves to the right-hand piece
		{5, 3, 1},
		{6, 6, sentinel},
	}
	for _, c := range cases {
		start, p := tx.findPiece(c.off)
		if start != c.start || p != c.piece {
			t.Errorf("findPiece(%d) got (%d, %d), want (%d, %d)", c.off, start, p, c.start, c.piece)
		}
	}
}

func TestDeleteAll(t *testing.T) {
	tx := New()
	tx.Delete(0, tx.Len())
	tx.checkContent("#0", t, "")

	tx.InsertString(0, "123456")
	tx.Delete(0, 6)
	tx.checkContent("#1", t, "")
	tx.checkPiecesCnt(t, 0)

	tx.InsertString(0, "456")
	tx.InsertString(0, "123")
	tx.InsertString(3, "abc")
	tx.Delete(0, tx.Len())
	tx.checkContent("#2", t, "")
	if d := tx.data(sentinel); d.next != sentinel || d.prev != sentinel {
		t.Errorf("sentinel not linked to itself: prev %d next %d", d.prev, d.next)
	}
	if got := tx.Bytes(); len(got) != 0 {
		t.Errorf("Bytes got %q, want empty", got)
	}

	// The text keeps working after being emptied.
	tx.InsertString(0, "again")
	tx.checkContent("#3", t, "again")
}

func TestDeletePart(t *testing.T) {
	tx := New()
	tx.InsertString(0, "123456")
	tx.Delete(1, 5)
	tx.checkContent("#0", t, "16")
	tx.checkPiecesCnt(t, 2)

	tx = New()
	tx.InsertString(0, "456")
	tx.InsertString(0, "123")
	tx.Delete(1, 5)
	tx.checkContent("#1", t, "16")
	tx.checkPiecesCnt(t, 2)
}

func TestDeleteOnBoundaries(t *testing.T) {
	tx := New()
	tx.InsertString(0, "ccc")
	tx.InsertString(0, "bbb")
	tx.InsertString(0, "aaa")

	tx.Delete(3, 6)
	tx.checkContent("#0", t, "aaaccc")
	tx.checkPiecesCnt(t, 2)

	tx.Delete(0, 3)
	tx.checkContent("#1", t, "ccc")
	tx.checkPiecesCnt(t, 1)

	tx.Delete(1, 3)
	tx.checkContent("#2", t, "c")
	tx.checkPiecesCnt(t, 1)
}

func TestDeleteEmptyRangeIsNoop(t *testing.T) {
	tx := New()
	tx.InsertString(0, "hello world")
	tx.InsertString(5, ",")
	before := tx.chain()
	narena := len(tx.pieces)

	tx.Delete(3, 3)
	tx.Delete(7, 2)
	tx.Delete(0, 0)
	tx.Delete(tx.Len(), tx.Len())

	tx.checkContent("#0", t, "hello, world")
	if diff := cmp.Diff(before, tx.chain(), spanCmp); diff != "" {
		t.Errorf("chain changed (-before +after):\n%s", diff)
	}
	if got, want := len(tx.pieces), narena; got != want {
		t.Errorf("arena grew to %d, want %d", got, want)
	}
}

func newJokeText() *Text {
	tx := New()
	tx.InsertString(0, "and what is a dream?")
	tx.InsertString(9, "exactly ")
	tx.Delete(22, tx.Len())
	tx.InsertString(22, "joke?")
	return tx
}

func TestDelete(t *testing.T) {
	newJokeText().checkContent("base", t, "and what exactly is a joke?")

	cases := []struct {
		off, len int
		expected string
	}{
		{9, 8, "and what is a joke?"},
		{9, 13, "and what joke?"},
		{5, 6, "and wactly is a joke?"},
		{9, 14, "and what oke?"},
		{11, 3, "and what exly is a joke?"},
		{0, 27, ""},
		{26, 1, "and what exactly is a joke"},
	}
	for _, c := range cases {
		tx := newJokeText()
		tx.Delete(c.off, c.off+c.len)
		tx.checkContent(c.expected, t, c.expected)
	}
}

func TestUnlinkedPiecesAreRetained(t *testing.T) {
	tx := New()
	tx.InsertString(0, "123456") // piece 1
	tx.Delete(1, 5)
	tx.InsertString(1, "abc")

	if got, want := len(tx.pieces), 5; got != want {
		t.Errorf("arena holds %d pieces, want %d", got, want)
	}
	// Piece 1 is no longer visible but still refers to its bytes.
	if got, want := string(tx.buf.Get(tx.Span(1))), "123456"; got != want {
		t.Errorf("unlinked piece got %q, want %q", got, want)
	}
	tx.checkContent("#0", t, "1abc6")
}

func TestBinaryContent(t *testing.T) {
	tx := New()
	tx.Insert(0, []byte{0})
	tx.Append([]byte{1, 2, 0xff})
	tx.Insert(1, []byte{0, 0xfe})

	want := []byte{0, 0, 0xfe, 1, 2, 0xff}
	if got := tx.Bytes(); !bytes.Equal(got, want) {
		t.Errorf("Bytes got %v, want %v", got, want)
	}

	s, err := tx.TextString()
	if err == nil {
		t.Fatalf("TextString got %q, want a decode error", s)
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("TextString error %v is not a *DecodeError", err)
	}
	if got, want := de.Offset, 2; got != want {
		t.Errorf("DecodeError.Offset got %d, want %d", got, want)
	}
}

func TestTextString(t *testing.T) {
	tx := New()
	tx.InsertString(0, "ウクラ")
	tx.InsertString(3, "\x00 nul ")
	s, err := tx.TextString()
	if err != nil {
		t.Fatalf("TextString: %v", err)
	}
	if got, want := s, "ウ\x00 nul クラ"; got != want {
		t.Errorf("TextString got %q, want %q", got, want)
	}

	// Splitting a multi-byte rune across pieces is fine for the bytes but
	// not for the string view.
	tx.Delete(0, 1)
	if _, err := tx.TextString(); err == nil {
		t.Errorf("TextString of %q: want error", tx.String())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	tx := New()
	tx.InsertString(0, "hello")

	mustPanic(t, "insert negative", func() { tx.InsertString(-1, "x") })
	mustPanic(t, "insert past end", func() { tx.InsertString(6, "x") })
	mustPanic(t, "insert empty past end", func() { tx.InsertString(6, "") })
	mustPanic(t, "delete past end", func() { tx.Delete(2, 6) })
	mustPanic(t, "delete negative", func() { tx.Delete(-1, 2) })

	tx.checkContent("after panics", t, "hello")
}
