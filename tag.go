package rson

import (
	"encoding/base64"
	"math"
	"strconv"
	"strings"
	"time"
)

// tagRule is one entry of the built-in tag dispatch table: one case per
// target Kind, one error per shape mismatch.
type tagRule func(c *Cursor, tagStart int, v Value) (Value, error)

var builtinTags map[string]tagRule

// reservedNoRule is the set of reserved names (type-name aliases plus
// bare taxonomy entries) that have no builtin behavior of their own:
// every application of one of these is a TagShape error, regardless of
// the value's shape, since there is no table entry they could match.
var reservedNoRule = map[string]bool{
	"integer":  true,
	"double":   true,
	"date":     true,
	"time":     true,
	"table":    true,
	"unknown":  true,
}

func init() {
	builtinTags = map[string]tagRule{
		"object": passThrough(func(Kind) bool { return true }),
		"bool":   passThrough(func(k Kind) bool { return k == KindBool }),
		"int":    passThrough(func(k Kind) bool { return k == KindInt }),
		"string": passThrough(func(k Kind) bool { return k == KindString }),
		"list":   passThrough(func(k Kind) bool { return k == KindList }),
		"record": passThrough(func(k Kind) bool { return k == KindRecord }),
		"float":  tagFloat,
		"duration":   tagDuration,
		"datetime":   tagDatetime,
		"base64":     tagBase64,
		"bytestring": tagBytestring,
		"set":        tagSet,
		"complex":    tagComplex,
		"dict":       tagDict,
	}
}

func passThrough(shapeOK func(Kind) bool) tagRule {
	return func(c *Cursor, tagStart int, v Value) (Value, error) {
		if !shapeOK(v.Kind()) {
			return Value{}, posError(c.data, tagStart, TagShape, KeyTagShapeMismatch, "tag does not accept a %s value", v.Kind())
		}
		return v, nil
	}
}

// applyTag resolves the builtin/reserved/user-tag taxonomy for name
// applied to v (the object immediately following the tag's mandatory
// whitespace). tagStart is the byte offset of the leading '@', used for
// diagnostics.
func applyTag(c *Cursor, name string, tagStart int, v Value) (Value, error) {
	if rule, ok := builtinTags[name]; ok {
		return rule(c, tagStart, v)
	}
	if reservedNoRule[name] {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagReservedNoRule, "@%s has no valid application", name)
	}
	// Not reserved: preserve as Tagged, or reject, at parser option.
	if !c.opts.PreserveUnknownTags {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagUnknown, "unknown tag @%s", name)
	}
	return NewTagged(name, v)
}

func tagFloat(c *Cursor, tagStart int, v Value) (Value, error) {
	switch v.Kind() {
	case KindInt, KindFloat:
		return v, nil
	case KindString:
		f, err := parseFloatLiteralString(v.Str())
		if err != nil {
			return Value{}, posError(c.data, tagStart, TagShape, KeyTagFloatParseError, "@float: %s", err)
		}
		return FloatValue(f), nil
	default:
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagFloatShapeMismatch, "@float does not accept a %s value", v.Kind())
	}
}

// parseFloatLiteralString implements the @float "..." transform: a C99
// hex-float string, NaN, +Infinity, -Infinity (any case), with no
// underscore separators permitted.
func parseFloatLiteralString(s string) (float64, error) {
	if strings.ContainsRune(s, '_') {
		return 0, errUnderscoreInFloatString
	}
	switch strings.ToLower(s) {
	case "nan":
		return math.NaN(), nil
	case "+infinity", "infinity":
		return math.Inf(1), nil
	case "-infinity":
		return math.Inf(-1), nil
	}
	return strconv.ParseFloat(s, 64)
}

var errUnderscoreInFloatString = &tagStringError{"underscore not permitted in @float string"}

type tagStringError struct{ msg string }

func (e *tagStringError) Error() string { return e.msg }

func tagDuration(c *Cursor, tagStart int, v Value) (Value, error) {
	var seconds float64
	switch v.Kind() {
	case KindInt:
		seconds = float64(v.Int())
	case KindFloat:
		seconds = v.Float()
	default:
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagDurationShapeMismatch, "@duration requires a number of seconds, got %s", v.Kind())
	}
	return DurationValue(time.Duration(seconds * float64(time.Second))), nil
}

func tagDatetime(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindString {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagDatetimeShapeMismatch, "@datetime requires a string, got %s", v.Kind())
	}
	t, err := time.Parse(time.RFC3339Nano, v.Str())
	if err != nil {
		return Value{}, wrapError(c.data, tagStart, TagShape, err, KeyTagDatetimeParseError, "@datetime: invalid RFC 3339 timestamp %q", v.Str())
	}
	return DateTimeValue(t), nil
}

func tagBase64(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindString {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagBase64ShapeMismatch, "@base64 requires a string, got %s", v.Kind())
	}
	b, err := base64.StdEncoding.DecodeString(v.Str())
	if err != nil {
		if b2, err2 := base64.RawStdEncoding.DecodeString(v.Str()); err2 == nil {
			return BytesValue(b2), nil
		}
		return Value{}, wrapError(c.data, tagStart, TagShape, err, KeyTagBase64DecodeError, "@base64: invalid base64 %q", v.Str())
	}
	return BytesValue(b), nil
}

func tagBytestring(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindString {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagBytestringShapeMismatch, "@bytestring requires a string, got %s", v.Kind())
	}
	out := make([]byte, 0, len(v.Str()))
	for _, r := range v.Str() {
		if r > 0xFF {
			return Value{}, posError(c.data, tagStart, TagShape, KeyTagBytestringOutOfRange, "@bytestring: code point U+%04X exceeds U+00FF", r)
		}
		out = append(out, byte(r))
	}
	return BytesValue(out), nil
}

func tagSet(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindList {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagSetShapeMismatch, "@set requires a list, got %s", v.Kind())
	}
	set, err := NewSet(v.Items())
	if err != nil {
		return Value{}, posError(c.data, tagStart, DuplicateKey, KeyTagSetDuplicate, "@set: %s", err)
	}
	return set, nil
}

func tagComplex(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindList || len(v.Items()) != 2 {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagComplexShapeMismatch, "@complex requires a 2-element list")
	}
	items := v.Items()
	re, ok1 := numeric(items[0])
	im, ok2 := numeric(items[1])
	if !ok1 || !ok2 {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagComplexTypeMismatch, "@complex requires two numbers")
	}
	return ComplexValue(re, im), nil
}

func tagDict(c *Cursor, tagStart int, v Value) (Value, error) {
	if v.Kind() != KindRecord {
		return Value{}, posError(c.data, tagStart, TagShape, KeyTagDictShapeMismatch, "@dict requires a record, got %s", v.Kind())
	}
	d, err := NewDict(v.Pairs())
	if err != nil {
		return Value{}, posError(c.data, tagStart, DictKeyType, KeyTagDictKeyTypeError, "@dict: %s", err)
	}
	return d, nil
}
