package piece

import "fmt"

const initialBufferCap = 4096

// An AppendOnlyBuffer is the byte store behind a Text. Bytes are only ever
// added at the end. Nothing is overwritten or reclaimed so every Span it
// has returned stays valid for the lifetime of the buffer.
type AppendOnlyBuffer struct {
	buf []byte
}

// NewAppendOnlyBuffer returns an empty buffer.
func NewAppendOnlyBuffer() *AppendOnlyBuffer {
	return &AppendOnlyBuffer{buf: make([]byte, 0, initialBufferCap)}
}

// Append copies p to the end of the buffer and returns the span holding
// the copy.
func (b *AppendOnlyBuffer) Append(p []byte) Span {
	off1 := len(b.buf)
	b.buf = append(b.buf, p...)
	return NewSpan(off1, len(b.buf))
}

// Get returns the bytes of s. The slice aliases the buffer and must not be
// modified. Its capacity is clipped to s so appending to it copies.
func (b *AppendOnlyBuffer) Get(s Span) []byte {
	if s.off2 > len(b.buf) {
		panic(fmt.Sprintf("piece: span %v outside buffer of %d bytes", s, len(b.buf)))
	}
	return b.buf[s.off1:s.off2:s.off2]
}

// GetByte returns the byte at the absolute buffer offset off.
func (b *AppendOnlyBuffer) GetByte(off int) byte {
	if off < 0 || off >= len(b.buf) {
		panic(fmt.Sprintf("piece: buffer offset %d out of range [0, %d)", off, len(b.buf)))
	}
	return b.buf[off]
}

// Len returns the number of bytes appended so far.
func (b *AppendOnlyBuffer) Len() int {
	return len(b.buf)
}
