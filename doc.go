// Package piece implements a mutable byte sequence using a piece table.
//
// The visible text is a chain of pieces. Each piece names a span of an
// append-only buffer; inserted bytes are appended to that buffer and then
// linked into the chain, so an edit touches a handful of pieces no matter
// how large the text is.
//
// Pieces live in an arena and are referred to by index. Index 0 is a
// sentinel with an empty span that anchors both ends of a circular doubly
// linked list:
//
//	+-+ --> +-------+ --> +-------+ --> +-+
//	|S|     | Hello |     | World |     |S|
//	+-+ <-- +-------+ <-- +-------+ <-- +-+
//
// Insertion strictly inside a piece replaces it with three new pieces:
//
//	+-+ --> +-------------+ --> +-+
//	|S|     | Hello World |     |S|
//	+-+ <-- +-------------+ <-- +-+
//	              ^ insert ", dear"
//
//	+-+ --> +-------+ --> +--------+ --> +-------+ --> +-+
//	|S|     | Hello |     | , dear |     | World |     |S|
//	+-+ <-- +-------+ <-- +--------+ <-- +-------+ <-- +-+
//
// Insertion on a piece boundary links one new piece in front of the piece
// starting at that offset. Deletion keeps at most one new remainder piece
// on each side of the range and links them across the gap.
//
// Pieces that leave the chain are never freed and bytes in the buffer are
// never moved or overwritten. The text is byte oriented and may hold
// arbitrary binary data; TextString reports content that is not UTF-8.
//
// A Text must not be used from more than one goroutine at a time without
// external locking.
package piece
