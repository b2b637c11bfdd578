package piece

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrOffset is returned by the io adapters for offsets before the start
// of a Text.
var ErrOffset = errors.New("piece: negative offset")

// A DecodeError reports content that is not valid UTF-8.
type DecodeError struct {
	Offset int // offset of the first byte that is not part of a valid encoding
}

func newDecodeError(b []byte) *DecodeError {
	off := 0
	for off < len(b) {
		r, sz := utf8.DecodeRune(b[off:])
		if r == utf8.RuneError && sz <= 1 {
			break
		}
		off += sz
	}
	return &DecodeError{Offset: off}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("piece: invalid UTF-8 at byte offset %d", e.Offset)
}
