package piece

import (
	"fmt"
	"unicode/utf8"
)

// A Piece identifies an entry in a Text's piece arena. Pieces are never
// removed from the arena so a Piece stays valid for the life of its Text,
// even after it has been unlinked from the visible chain.
type Piece uint32

// sentinel is always stored at index 0 of the arena. Its span is empty.
const sentinel Piece = 0

type pieceData struct {
	span       Span
	prev, next Piece
}

// Text is a byte sequence stored as a piece table.
type Text struct {
	buf    *AppendOnlyBuffer
	pieces []pieceData
	len    int // cached sum of visible piece lengths
}

// New returns an empty Text.
func New() *Text {
	return &Text{
		buf: NewAppendOnlyBuffer(),
		pieces: []pieceData{{
			prev: sentinel,
			next: sentinel,
		}},
	}
}

// Len returns the length of t in bytes.
func (t *Text) Len() int {
	return t.len
}

func (t *Text) data(p Piece) *pieceData {
	return &t.pieces[p]
}

// Span returns the buffer span referenced by p.
func (t *Text) Span(p Piece) Span {
	return t.data(p).span
}

// link makes p2 follow p1.
func (t *Text) link(p1, p2 Piece) {
	t.pieces[p1].next = p2
	t.pieces[p2].prev = p1
}

func (t *Text) addPiece(s Span) Piece {
	t.pieces = append(t.pieces, pieceData{span: s, prev: sentinel, next: sentinel})
	return Piece(len(t.pieces) - 1)
}

// findPiece returns the piece containing off and the offset in t at which
// that piece starts. When off is exactly between two pieces the right one
// is returned. The sentinel is returned iff off == t.Len().
func (t *Text) findPiece(off int) (int, Piece) {
	if off == t.len {
		return off, sentinel
	}
	start, piece := 0, sentinel
	it := t.Pieces()
	for {
		s, p, ok := it.Next()
		if !ok || s > off {
			// The previous piece was the one we wanted.
			return start, piece
		}
		start, piece = s, p
	}
}

func (t *Text) checkOffset(op string, off int) {
	if off < 0 || off > t.len {
		panic(fmt.Sprintf("piece: %s offset %d out of range [0, %d]", op, off, t.len))
	}
}

// Insert inserts p at off. It panics unless 0 <= off <= t.Len().
func (t *Text) Insert(off int, p []byte) {
	t.checkOffset("Insert", off)
	if len(p) == 0 {
		return
	}
	start, piece := t.findPiece(off)
	d := *t.data(piece)
	if left, right, ok := d.span.Split(off - start); ok {
		l := t.addPiece(left)
		m := t.addPiece(t.buf.Append(p))
		r := t.addPiece(right)
		t.link(d.prev, l)
		t.link(l, m)
		t.link(m, r)
		t.link(r, d.next)
	} else {
		// off is the start of piece: link the new bytes in front of it.
		if start != off {
			panic(fmt.Sprintf("piece: Insert at %d resolved to piece starting at %d", off, start))
		}
		n := t.addPiece(t.buf.Append(p))
		t.link(d.prev, n)
		t.link(n, piece)
	}
	t.len += len(p)
	t.checkInvariants()
}

// InsertString is like Insert but takes a string.
func (t *Text) InsertString(off int, s string) {
	t.Insert(off, []byte(s))
}

// Append adds p at the end of t.
func (t *Text) Append(p []byte) {
	t.Insert(t.len, p)
}

func (t *Text) AppendString(s string) {
	t.Insert(t.len, []byte(s))
}

// Delete removes the bytes in [off1, off2). An empty or inverted range is
// a no-op. Otherwise it panics unless 0 <= off1 < off2 <= t.Len().
func (t *Text) Delete(off1, off2 int) {
	if off2 <= off1 {
		return
	}
	t.checkOffset("Delete", off1)
	t.checkOffset("Delete", off2)

	lstart, lpiece := t.findPiece(off1)
	rstart, rpiece := t.findPiece(off2)
	lspan, rspan := t.Span(lpiece), t.Span(rpiece)

	var left Piece
	if remainder, _, ok := lspan.Split(off1 - lstart); ok {
		left = t.addPiece(remainder)
		t.link(t.data(lpiece).prev, left)
	} else {
		// All of lpiece goes.
		left = t.data(lpiece).prev
	}

	var right Piece
	if _, remainder, ok := rspan.Split(off2 - rstart); ok {
		right = t.addPiece(remainder)
		t.link(right, t.data(rpiece).next)
	} else {
		// off2 starts rpiece so none of it is deleted.
		right = rpiece
	}

	t.len -= off2 - off1
	t.link(left, right)
	t.checkInvariants()
}

// NumPieces returns the number of pieces in the visible chain.
func (t *Text) NumPieces() int {
	n := 0
	for p := t.data(sentinel).next; p != sentinel; p = t.data(p).next {
		n++
	}
	return n
}

// Bytes returns a copy of the content of t.
func (t *Text) Bytes() []byte {
	b := make([]byte, 0, t.len)
	for p := t.data(sentinel).next; p != sentinel; p = t.data(p).next {
		b = append(b, t.buf.Get(t.data(p).span)...)
	}
	return b
}

// String returns the content of t without validating it as UTF-8.
func (t *Text) String() string {
	return string(t.Bytes())
}

// TextString returns the content of t as a string. It returns a
// *DecodeError if the content is not valid UTF-8.
func (t *Text) TextString() (string, error) {
	b := t.Bytes()
	if !utf8.Valid(b) {
		return "", newDecodeError(b)
	}
	return string(b), nil
}
