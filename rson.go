package rson

import "unicode/utf8"

// Parse consumes exactly one RSON document: optional BOM, whitespace, one
// object, whitespace, end of input. Trailing non-whitespace content fails
// with TrailingGarbage. Parse is the only function that checks document-
// level concerns; ParseValue (§6's embedding entry point) assumes those
// are already handled by its caller.
func Parse(data []byte, opts ...Option) (Value, error) {
	if err := checkEncoding(data); err != nil {
		return Value{}, err
	}
	c := NewCursor(data, opts...)
	skipBOM(c)
	skipWhitespace(c)
	v, err := ParseValue(c)
	if err != nil {
		return Value{}, err
	}
	skipWhitespace(c)
	if !c.AtEOF() {
		return Value{}, posError(data, c.pos, TrailingGarbage, KeyDocumentTrailingGarbage, "unexpected content after document")
	}
	return v, nil
}

// checkEncoding rejects input that is not valid UTF-8, and a BOM
// appearing anywhere other than byte offset 0 (§6, §7: "Encoding —
// input is not valid UTF-8, or a BOM appears after byte 0").
func checkEncoding(data []byte) error {
	if !utf8.Valid(data) {
		for i := 0; i < len(data); {
			r, size := utf8.DecodeRune(data[i:])
			if r == utf8.RuneError && size <= 1 {
				return posError(data, i, Encoding, KeyEncodingInvalidUTF8Byte, "invalid UTF-8 byte")
			}
			i += size
		}
		return posError(data, 0, Encoding, KeyEncodingInvalidUTF8, "invalid UTF-8 input")
	}
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == bom && i != 0 {
			return posError(data, i, Encoding, KeyEncodingBOMNotAtStart, "BOM may only appear at byte 0")
		}
		i += size
	}
	return nil
}
