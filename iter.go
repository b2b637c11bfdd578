package piece

import "io"

// PieceIter walks the visible pieces of a Text in order. It is meant for
// debugging and tests. An iterator cannot be restarted; ask the Text for
// a new one instead.
type PieceIter struct {
	t    *Text
	next Piece
	off  int // start of next in the text
}

// Pieces returns an iterator over the visible pieces of t. The sentinel is
// never produced.
func (t *Text) Pieces() *PieceIter {
	return &PieceIter{t: t, next: t.data(sentinel).next}
}

// Next returns the next piece and the offset in the text at which it
// starts. ok is false once the chain is exhausted.
func (it *PieceIter) Next() (start int, p Piece, ok bool) {
	if it.next == sentinel {
		return 0, sentinel, false
	}
	p = it.next
	d := it.t.data(p)
	start = it.off
	it.off += d.span.Len()
	it.next = d.next
	return start, p, true
}

// ByteIter produces the bytes of a Text one at a time.
type ByteIter struct {
	pieces *PieceIter
	span   Span // span of the current piece
	off    int  // position within span
	done   bool
}

var _ io.ByteReader = (*ByteIter)(nil)

// ByteIter returns an iterator over the bytes of t. t must not be modified
// while the iterator is in use.
func (t *Text) ByteIter() *ByteIter {
	return &ByteIter{pieces: t.Pieces()}
}

// Next returns the next byte. ok is false at the end of the text.
func (it *ByteIter) Next() (byte, bool) {
	for !it.done {
		if it.off < it.span.Len() {
			c := it.pieces.t.buf.GetByte(it.span.off1 + it.off)
			it.off++
			return c, true
		}
		_, p, ok := it.pieces.Next()
		if !ok {
			it.done = true
			break
		}
		it.span = it.pieces.t.Span(p)
		it.off = 0
	}
	return 0, false
}

// ReadByte implements io.ByteReader.
func (it *ByteIter) ReadByte() (byte, error) {
	c, ok := it.Next()
	if !ok {
		return 0, io.EOF
	}
	return c, nil
}
