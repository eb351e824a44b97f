package rson

import "unicode/utf8"

// Cursor is the sole mutable state threaded through every combinator in
// this package: a byte slice plus a read position. Checkpoint/Restore are
// O(1) — a saved index — so backtracking (dict-vs-set, table-vs-list,
// grouping-vs-concatenation) costs nothing beyond the re-scan itself.
type Cursor struct {
	data  []byte
	pos   int
	opts  Options
	depth int
}

// NewCursor wraps data for parsing. The caller is responsible for any
// document-level concerns (BOM, trailing garbage); a Cursor itself just
// walks code points.
func NewCursor(data []byte, opts ...Option) *Cursor {
	c := &Cursor{data: data, opts: defaultOptions()}
	for _, o := range opts {
		o(&c.opts)
	}
	return c
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Data returns the full underlying buffer, for diagnostics that need to
// recompute line/col from a saved byte offset.
func (c *Cursor) Data() []byte { return c.data }

// Checkpoint returns an opaque marker that Restore can rewind to.
func (c *Cursor) Checkpoint() int { return c.pos }

// Restore rewinds the cursor to a previously taken Checkpoint.
func (c *Cursor) Restore(mark int) { c.pos = mark }

// AtEOF reports whether the cursor has consumed the entire buffer.
func (c *Cursor) AtEOF() bool { return c.pos >= len(c.data) }

// PeekByte returns the byte at the current position without consuming it,
// and false at EOF. Useful for single-byte structural tokens ({, }, [, ],
// :, ,) where a full rune decode would be wasted work.
func (c *Cursor) PeekByte() (byte, bool) {
	if c.pos >= len(c.data) {
		return 0, false
	}
	return c.data[c.pos], true
}

// PeekRune decodes, without consuming, the code point at the current
// position. ok is false at EOF.
func (c *Cursor) PeekRune() (r rune, size int, ok bool) {
	if c.pos >= len(c.data) {
		return 0, 0, false
	}
	r, size = utf8.DecodeRune(c.data[c.pos:])
	return r, size, true
}

// Advance moves the cursor forward n bytes. Callers must only pass sizes
// returned by Peek*; it does not itself decode.
func (c *Cursor) Advance(n int) { c.pos += n }

// AdvanceRune decodes and consumes one code point, returning it.
func (c *Cursor) AdvanceRune() (rune, bool) {
	r, size, ok := c.PeekRune()
	if !ok {
		return 0, false
	}
	c.pos += size
	return r, true
}

// HasPrefix reports whether the unconsumed input starts with s, without
// consuming anything.
func (c *Cursor) HasPrefix(s string) bool {
	rest := c.data[c.pos:]
	return len(rest) >= len(s) && string(rest[:len(s)]) == s
}
