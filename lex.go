package rson

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const bom = 0xFEFF // U+FEFF, the byte order mark

// skipBOM consumes a leading U+FEFF at byte offset 0. It must be called
// exactly once, before anything else touches the cursor. A BOM anywhere
// else in the input is not whitespace; Parse rejects it with an Encoding
// error (checkEncoding) before the grammar runs.
func skipBOM(c *Cursor) {
	if c.pos != 0 {
		return
	}
	if r, size, ok := c.PeekRune(); ok && r == bom {
		c.Advance(size)
	}
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\r', ' ':
		return true
	default:
		return false
	}
}

// skipWhitespace consumes runs of whitespace and '#'-to-end-of-line
// comments. RSON's whitespace set is exactly {\t \n \r space}; this is a
// hand loop rather than a regexp, since the rule is a narrow fixed
// character class with no backtracking or alternation worth compiling
// (see DESIGN.md).
func skipWhitespace(c *Cursor) {
	for {
		r, size, ok := c.PeekRune()
		if !ok {
			return
		}
		switch {
		case isSpace(r):
			c.Advance(size)
		case r == '#':
			for {
				r, size, ok := c.PeekRune()
				if !ok {
					return
				}
				c.Advance(size)
				if r == '\n' {
					break
				}
				if r == '\r' {
					if r2, size2, ok2 := c.PeekRune(); ok2 && r2 == '\n' {
						c.Advance(size2)
					}
					break
				}
			}
		default:
			return
		}
	}
}

func isIdentStartASCII(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isIdentContinueASCII(r rune) bool {
	return isIdentStartASCII(r) || '0' <= r && r <= '9'
}

func isIdentStartUnicode(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentContinueUnicode(r rune) bool {
	return isIdentStartUnicode(r) || unicode.IsDigit(r)
}

// scanIdentifier consumes an identifier (or one of the bare words
// true/false/null, which are lexically identifiers) starting at the
// cursor's current position. When normalizeUnicode is false (the default,
// the only mode that doesn't require an explicit opt-in, per the
// fail-closed guidance in SPEC_FULL.md §9) only ASCII letters/digits/
// underscore are accepted. When true, each code point is checked against
// unicode.IsLetter/IsDigit while scanning, and the scanned run is then
// NFC-normalized via golang.org/x/text/unicode/norm.
func scanIdentifier(c *Cursor, normalizeUnicode bool) (string, bool) {
	start := c.pos
	startFn, contFn := isIdentStartASCII, isIdentContinueASCII
	if normalizeUnicode {
		startFn, contFn = isIdentStartUnicode, isIdentContinueUnicode
	}
	r, size, ok := c.PeekRune()
	if !ok || !startFn(r) {
		return "", false
	}
	c.Advance(size)
	for {
		r, size, ok := c.PeekRune()
		if !ok || !contFn(r) {
			break
		}
		c.Advance(size)
	}
	raw := string(c.data[start:c.pos])
	if normalizeUnicode {
		raw = norm.NFC.String(raw)
	}
	return raw, true
}

// scanTagName consumes a tag name: an identifier, optionally followed by
// one or more "." ident segments. "." may not appear first, last, or
// doubled; any of those cases leaves the cursor after the base identifier
// and lets the grammar reject what follows on its own terms.
func scanTagName(c *Cursor, normalizeUnicode bool) (string, bool) {
	first, ok := scanIdentifier(c, normalizeUnicode)
	if !ok {
		return "", false
	}
	name := first
	for {
		mark := c.Checkpoint()
		r, size, ok := c.PeekRune()
		if !ok || r != '.' {
			break
		}
		c.Advance(size)
		seg, ok := scanIdentifier(c, normalizeUnicode)
		if !ok {
			c.Restore(mark)
			break
		}
		name += "." + seg
	}
	return name, true
}
