package rson

import (
	"strconv"
)

// parseNumber consumes a number literal at the cursor and returns the
// Value it denotes. The literal is captured lexically first (validated
// digit-by-digit against the chosen radix's digit set, with underscores
// stripped into a clean buffer) and converted exactly once via strconv,
// so over-range-digit detection and underscore-stripping stay cleanly
// separated from value conversion.
func parseNumber(c *Cursor) (Value, error) {
	start := c.pos
	neg := false
	if b, ok := c.PeekByte(); ok && (b == '+' || b == '-') {
		neg = b == '-'
		c.Advance(1)
	}

	radix := 10
	digits := "0123456789"
	if c.HasPrefix("0b") {
		radix, digits = 2, "01"
		c.Advance(2)
	} else if c.HasPrefix("0o") || c.HasPrefix("0c") {
		radix, digits = 8, "01234567"
		c.Advance(2)
	} else if c.HasPrefix("0x") {
		radix, digits = 16, "0123456789abcdefABCDEF"
		c.Advance(2)
	}

	mantissa, err := scanDigitRun(c, digits, start)
	if err != nil {
		return Value{}, err
	}
	if mantissa == "" {
		return Value{}, posError(c.data, c.pos, BadNumber, KeyNumberNoDigits, "number has no digits")
	}

	isFloat := false
	frac := ""
	if radix == 10 || radix == 16 {
		if b, ok := c.PeekByte(); ok && b == '.' {
			// Only consume the '.' as a fraction if at least one digit
			// follows; otherwise it belongs to whatever comes next (the
			// grammar never places a bare '.' after a number).
			mark := c.Checkpoint()
			c.Advance(1)
			f, err := scanDigitRun(c, digits, start)
			if err != nil {
				return Value{}, err
			}
			if f == "" {
				c.Restore(mark)
			} else {
				isFloat = true
				frac = f
			}
		}
	}

	expMarker := byte(0)
	if radix == 10 {
		expMarker = 'e'
	} else if radix == 16 {
		expMarker = 'p'
	}
	exp := ""
	expSign := ""
	if expMarker != 0 {
		if b, ok := c.PeekByte(); ok && (b == expMarker || b == expMarker-32) {
			mark := c.Checkpoint()
			c.Advance(1)
			if b2, ok := c.PeekByte(); ok && (b2 == '+' || b2 == '-') {
				expSign = string(b2)
				c.Advance(1)
			}
			e, err := scanDigitRun(c, "0123456789", start)
			if err != nil {
				return Value{}, err
			}
			if e == "" {
				c.Restore(mark)
			} else {
				exp = e
				isFloat = true
			}
		}
	}
	// Hex floats require a 'p' exponent to be recognised as a float at
	// all; a bare "0x1.8" with no exponent is not valid RSON (§4.3).
	if radix == 16 && frac != "" && exp == "" {
		return Value{}, posError(c.data, c.pos, BadNumber, KeyNumberHexFloatNoExp, "hex float requires a p/P exponent")
	}

	sign := ""
	if neg {
		sign = "-"
	}

	if !isFloat {
		if err := checkNoTrailingDigit(c); err != nil {
			return Value{}, err
		}
		if radix == 10 {
			text := sign + mantissa
			n, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return Value{}, wrapError(c.data, start, BadNumber, err, KeyNumberInvalidDecimal, "invalid decimal integer %q", text)
			}
			return IntValue(n), nil
		}
		n, err := strconv.ParseUint(mantissa, radix, 64)
		if err != nil {
			return Value{}, wrapError(c.data, start, BadNumber, err, KeyNumberInvalidRadixInt, "invalid integer in radix %d: %q", radix, mantissa)
		}
		v := int64(n)
		if neg {
			v = -v
		}
		return IntValue(v), nil
	}

	if err := checkNoTrailingDigit(c); err != nil {
		return Value{}, err
	}
	switch radix {
	case 10:
		text := sign + mantissa
		if frac != "" {
			text += "." + frac
		}
		if exp != "" {
			text += "e" + expSign + exp
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, wrapError(c.data, start, BadNumber, err, KeyNumberInvalidFloat, "invalid float %q", text)
		}
		return FloatValue(f), nil
	case 16:
		text := sign + "0x" + mantissa
		if frac != "" {
			text += "." + frac
		}
		text += "p" + expSign + exp
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, wrapError(c.data, start, BadNumber, err, KeyNumberInvalidHexFloat, "invalid hex float %q", text)
		}
		return FloatValue(f), nil
	default:
		return Value{}, posError(c.data, c.pos, BadNumber, KeyNumberRadixNoFloatForm, "radix %d has no float form", radix)
	}
}

// checkNoTrailingDigit rejects a character immediately following a number
// literal that looks like it was meant to extend it but couldn't — e.g. the
// '2' in "0b0123", which scanDigitRun stops on (it isn't in the binary
// alphabet) but which would silently become trailing garbage without this
// check. Maximal munch demands the whole alnum run belong to one token.
func checkNoTrailingDigit(c *Cursor) error {
	b, ok := c.PeekByte()
	if !ok {
		return nil
	}
	if b == '_' || ('0' <= b && b <= '9') || ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z') {
		return posError(c.data, c.pos, BadNumber, KeyNumberTrailingDigit, "invalid digit %q for this number's radix", b)
	}
	return nil
}

// scanDigitRun consumes digits drawn from alphabet (case sensitivity as
// given by the caller) interleaved with single underscore separators,
// returning the digits with underscores stripped. An underscore may not
// be the first character, the last character, doubled, or adjacent to a
// '.' or exponent marker — enforced here by simply never allowing one
// before the first digit or after the last, and by the caller only
// invoking this for a single contiguous digit group (so "adjacent to . or
// exponent" reduces to "not first/last within the group").
func scanDigitRun(c *Cursor, alphabet string, start int) (string, error) {
	var out []byte
	lastWasDigit := false
	for {
		b, ok := c.PeekByte()
		if !ok {
			break
		}
		if b == '_' {
			if !lastWasDigit {
				return "", posError(c.data, c.pos, BadNumber, KeyNumberMisplacedUnderscore, "misplaced '_' in number")
			}
			// Defer acceptance until we know a digit follows, so a
			// trailing underscore is rejected instead of silently eaten.
			mark := c.Checkpoint()
			c.Advance(1)
			b2, ok2 := c.PeekByte()
			if !ok2 || indexByte(alphabet, b2) < 0 {
				c.Restore(mark)
				break
			}
			lastWasDigit = false
			continue
		}
		if indexByte(alphabet, b) < 0 {
			break
		}
		out = append(out, b)
		lastWasDigit = true
		c.Advance(1)
	}
	return string(out), nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}
