package rson

// ParseValue consumes exactly one RSON object starting at the cursor's
// current position and returns the Value it denotes. It does not handle
// document-level concerns (BOM, trailing garbage) — see Parse for that;
// ParseValue is the embedding entry point named in §6.
//
// Dispatch follows §4.5's table: the first non-whitespace code point
// decides which of the shape parsers below runs. Table-vs-list and
// grouping-vs-concatenation ambiguities are resolved with the same
// checkpoint-then-peek shape: parse one value, peek one token ahead,
// commit or restore.
func ParseValue(c *Cursor) (Value, error) {
	skipWhitespace(c)
	if c.AtEOF() {
		return Value{}, posError(c.data, c.pos, UnexpectedEOF, KeyValueExpected, "expected a value")
	}
	r, _, _ := c.PeekRune()
	switch r {
	case '{':
		return parseRecord(c)
	case '[':
		return parseListOrTable(c)
	case '(':
		return parseGroupOrConcat(c)
	case '@':
		return parseTagged(c)
	case '"', '\'':
		return parseStringLiteral(c)
	}
	if (r == 'u' || r == 'U' || r == 'b' || r == 'B') && nextIsQuote(c) {
		return parseStringLiteral(c)
	}
	if r == '+' || r == '-' || '0' <= r && r <= '9' {
		return parseNumber(c)
	}
	if ident, ok := scanIdentifier(c, c.opts.NormalizeIdentifiers); ok {
		switch ident {
		case "true":
			return BoolValue(true), nil
		case "false":
			return BoolValue(false), nil
		case "null":
			return NullValue(), nil
		default:
			return Value{}, posError(c.data, c.pos-len(ident), UnexpectedByte, KeyValueBareWord, "bare word %q is not a value (only true, false, null are)", ident)
		}
	}
	return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyValueUnexpectedByte, "unexpected byte %q", r)
}

func nextIsQuote(c *Cursor) bool {
	r, _, ok := peekAt(c, runeLenAt(c, 0))
	return ok && (r == '"' || r == '\'')
}

func runeLenAt(c *Cursor, offset int) int {
	_, size, ok := peekAt(c, offset)
	if !ok {
		return 0
	}
	return size
}

// parseRecord handles "{". RSON braces are Record-only: a comma-separated
// sequence of string-key ":" value pairs, trailing comma allowed, empty
// "{}" permitted. (The older draft grammar's "dict if key:value else set"
// wording for "{" is superseded here by the must-parse/must-not-parse
// corpus in §8, which rejects a bare-value brace body like `{"a"}`
// outright — see DESIGN.md.)
func parseRecord(c *Cursor) (Value, error) {
	if err := c.pushDepth(); err != nil {
		return Value{}, err
	}
	defer c.popDepth()

	start := c.pos
	c.Advance(1) // '{'
	skipWhitespace(c)
	if b, ok := c.PeekByte(); ok && b == '}' {
		c.Advance(1)
		return NewRecord(nil)
	}

	var pairs []Pair
	finish := func() (Value, error) {
		rec, err := NewRecord(pairs)
		if err != nil {
			return Value{}, posError(c.data, start, DuplicateKey, KeyRecordDuplicateKey, "record: %s", err)
		}
		return rec, nil
	}
	for i := 0; ; i++ {
		if i > 0 {
			skipWhitespace(c)
			b, ok := c.PeekByte()
			if !ok {
				return Value{}, posError(c.data, start, UnexpectedEOF, KeyRecordUnterminated, "unterminated record")
			}
			if b == '}' {
				c.Advance(1)
				return finish()
			}
			if b != ',' {
				return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyRecordExpectedCommaOrBrace, "expected ',' or '}' in record")
			}
			c.Advance(1)
			skipWhitespace(c)
			if b, ok := c.PeekByte(); ok && b == '}' { // trailing comma
				c.Advance(1)
				return finish()
			}
		}
		keyByte, ok := c.PeekByte()
		if !ok || (keyByte != '"' && keyByte != '\'') {
			return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyRecordKeyNotString, "record keys must be strings")
		}
		keyStart := c.pos
		key, err := parseStringLiteral(c)
		if err != nil {
			return Value{}, err
		}
		if key.Kind() != KindString {
			return Value{}, posError(c.data, keyStart, UnexpectedByte, KeyRecordKeyIsBytestring, "record keys must be strings, not byte strings")
		}
		skipWhitespace(c)
		if b, ok := c.PeekByte(); !ok || b != ':' {
			return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyRecordExpectedColon, "expected ':' after record key")
		}
		c.Advance(1)
		skipWhitespace(c)
		val, err := ParseValue(c)
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: key, Value: val})
	}
}

// parseListOrTable handles "[". An empty "[]" is a List; otherwise the
// first entry is parsed as a value and peeked for a following ":" — if
// present, the whole bracket is committed to Table (ordered key:value
// pairs, duplicates allowed); otherwise List.
func parseListOrTable(c *Cursor) (Value, error) {
	if err := c.pushDepth(); err != nil {
		return Value{}, err
	}
	defer c.popDepth()

	start := c.pos
	c.Advance(1) // '['
	skipWhitespace(c)
	if b, ok := c.PeekByte(); ok && b == ']' {
		c.Advance(1)
		return ListValue(nil), nil
	}

	first, err := ParseValue(c)
	if err != nil {
		return Value{}, err
	}
	skipWhitespace(c)
	isTable := false
	var pairs []Pair
	var items []Value
	if b, ok := c.PeekByte(); ok && b == ':' {
		isTable = true
		c.Advance(1)
		skipWhitespace(c)
		v, err := ParseValue(c)
		if err != nil {
			return Value{}, err
		}
		pairs = append(pairs, Pair{Key: first, Value: v})
	} else {
		items = append(items, first)
	}
	c.trace("bracket", "table", isTable, "pos", start)

	for {
		skipWhitespace(c)
		b, ok := c.PeekByte()
		if !ok {
			return Value{}, posError(c.data, start, UnexpectedEOF, KeyBracketUnterminated, "unterminated bracket")
		}
		if b == ']' {
			c.Advance(1)
			if isTable {
				return NewTable(pairs), nil
			}
			return ListValue(items), nil
		}
		if b != ',' {
			return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyBracketExpectedCommaOrClose, "expected ',' or ']'")
		}
		c.Advance(1)
		skipWhitespace(c)
		if b, ok := c.PeekByte(); ok && b == ']' { // trailing comma
			c.Advance(1)
			if isTable {
				return NewTable(pairs), nil
			}
			return ListValue(items), nil
		}
		k, err := ParseValue(c)
		if err != nil {
			return Value{}, err
		}
		if isTable {
			skipWhitespace(c)
			if b, ok := c.PeekByte(); !ok || b != ':' {
				return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyTableExpectedColon, "expected ':' in table entry")
			}
			c.Advance(1)
			skipWhitespace(c)
			v, err := ParseValue(c)
			if err != nil {
				return Value{}, err
			}
			pairs = append(pairs, Pair{Key: k, Value: v})
		} else {
			items = append(items, k)
		}
	}
}

// parseGroupOrConcat handles "(". A body of two-or-more same-kind string
// literals separated only by whitespace concatenates into one string or
// byte-string; a single literal (or any other single value) is a plain
// grouping with no semantic effect beyond parenthesization.
func parseGroupOrConcat(c *Cursor) (Value, error) {
	if err := c.pushDepth(); err != nil {
		return Value{}, err
	}
	defer c.popDepth()

	start := c.pos
	c.Advance(1) // '('
	skipWhitespace(c)

	if isStringStart(c) {
		first, err := parseStringLiteral(c)
		if err != nil {
			return Value{}, err
		}
		kind := first.Kind()
		acc := first
		for {
			mark := c.Checkpoint()
			skipWhitespace(c)
			if !isStringStart(c) {
				c.Restore(mark)
				break
			}
			next, err := parseStringLiteral(c)
			if err != nil {
				return Value{}, err
			}
			if next.Kind() != kind {
				c.Restore(mark)
				break
			}
			acc = concatStrings(acc, next)
		}
		skipWhitespace(c)
		if b, ok := c.PeekByte(); !ok || b != ')' {
			return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyGroupExpectedCloseParen, "expected ')'")
		}
		c.Advance(1)
		return acc, nil
	}

	inner, err := ParseValue(c)
	if err != nil {
		return Value{}, err
	}
	skipWhitespace(c)
	if b, ok := c.PeekByte(); !ok || b != ')' {
		return Value{}, posError(c.data, start, UnexpectedByte, KeyGroupExpectedCloseParen, "expected ')'")
	}
	c.Advance(1)
	return inner, nil
}

func isStringStart(c *Cursor) bool {
	b, ok := c.PeekByte()
	if !ok {
		return false
	}
	if b == '"' || b == '\'' {
		return true
	}
	if b == 'u' || b == 'U' || b == 'b' || b == 'B' {
		return nextIsQuote(c)
	}
	return false
}

func concatStrings(a, b Value) Value {
	if a.Kind() == KindBytes {
		return BytesValue(append(append([]byte{}, a.Bytes()...), b.Bytes()...))
	}
	return StringValue(a.Str() + b.Str())
}

// parseTagged handles "@". Grammar: "@" tagname mandatory-whitespace
// object. Tags never nest: applying any tag directly to an already-tagged
// value is always a TagNest error, builtin or user tag alike.
func parseTagged(c *Cursor) (Value, error) {
	if err := c.pushDepth(); err != nil {
		return Value{}, err
	}
	defer c.popDepth()

	start := c.pos
	c.Advance(1) // '@'
	name, ok := scanTagName(c, c.opts.NormalizeIdentifiers)
	if !ok {
		return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyTagExpectedName, "expected a tag name after '@'")
	}
	wsStart := c.pos
	skipWhitespace(c)
	if c.pos == wsStart {
		return Value{}, posError(c.data, c.pos, UnexpectedByte, KeyTagRequiresWhitespace, "tag @%s requires whitespace before its value", name)
	}
	// Tags never nest, syntactically: "@a @b value" is rejected outright,
	// regardless of what @b would itself produce (§4.6). Checking the
	// next byte here, rather than the Kind of the parsed child, is what
	// catches nesting through a pass-through tag like @object, which
	// returns its argument's Kind unchanged and so would never look
	// "Tagged" after the fact.
	if b, ok := c.PeekByte(); ok && b == '@' {
		return Value{}, posError(c.data, c.pos, TagNest, KeyTagNested, "tag @%s applied directly to another tag", name)
	}
	c.trace("tag", "name", name, "pos", start)
	child, err := ParseValue(c)
	if err != nil {
		return Value{}, err
	}
	return applyTag(c, name, start, child)
}
