package piece

import "io"

// Enforce interface implementation.
var (
	_ io.ReaderAt = (*Text)(nil)
	_ io.WriterTo = (*Text)(nil)
	_ io.Writer   = (*Text)(nil)
	_ io.Reader   = (*Reader)(nil)
)

// ReadAt implements io.ReaderAt.
func (t *Text) ReadAt(p []byte, off int64) (n int, err error) {
	if off < 0 {
		return 0, ErrOffset
	}
	if off >= int64(t.len) {
		return 0, io.EOF
	}
	start, piece := t.findPiece(int(off))
	skip := int(off) - start
	for n < len(p) && piece != sentinel {
		d := t.data(piece)
		n += copy(p[n:], t.buf.Get(d.span)[skip:])
		skip = 0
		piece = d.next
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// WriteTo implements io.WriterTo. It writes each piece directly from the
// backing buffer.
func (t *Text) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for p := t.data(sentinel).next; p != sentinel; p = t.data(p).next {
		n, err := w.Write(t.buf.Get(t.data(p).span))
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Write implements io.Writer by appending p to t. It never fails.
func (t *Text) Write(p []byte) (int, error) {
	t.Append(p)
	return len(p), nil
}

// A Reader reads the content of a Text from the start. Edits made to the
// Text while reading are visible at offsets not yet read.
type Reader struct {
	t   *Text
	off int64
}

func (t *Text) NewReader() *Reader {
	return &Reader{t: t}
}

// Read implements io.Reader.
func (r *Reader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	n, err := r.t.ReadAt(p, r.off)
	r.off += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}
