package rson

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind discriminates the reasons a parse can fail. Spellings are
// logical, not wire-visible; callers should switch on Kind, not on
// Error.Error()'s text.
type ErrorKind int

const (
	// Encoding means the input was not valid UTF-8, or a BOM appeared
	// somewhere other than byte 0.
	Encoding ErrorKind = iota
	// UnexpectedByte means no grammar production accepts the current byte.
	UnexpectedByte
	// UnexpectedEOF means the input ended inside a literal or container.
	UnexpectedEOF
	// BadEscape means an unknown or ill-formed string escape.
	BadEscape
	// BadNumber means an invalid digit for the chosen radix, a misplaced
	// underscore, an empty mantissa, or a malformed exponent.
	BadNumber
	// BadControlChar means a literal control character appeared unescaped
	// inside a single-quoted string.
	BadControlChar
	// DuplicateKey means a record, set, or dict contained a duplicate
	// under the §3 equality relation.
	DuplicateKey
	// DictKeyType means a @dict had mixed or non-comparable keys.
	DictKeyType
	// TagShape means a built-in tag was applied to a wrong-shape value.
	TagShape
	// TagNest means a tag was applied to an already-tagged value.
	TagNest
	// TrailingGarbage means non-whitespace content followed the root
	// object.
	TrailingGarbage
	// DepthLimit means nesting exceeded the configured maximum.
	DepthLimit
)

func (k ErrorKind) String() string {
	switch k {
	case Encoding:
		return "Encoding"
	case UnexpectedByte:
		return "UnexpectedByte"
	case UnexpectedEOF:
		return "UnexpectedEOF"
	case BadEscape:
		return "BadEscape"
	case BadNumber:
		return "BadNumber"
	case BadControlChar:
		return "BadControlChar"
	case DuplicateKey:
		return "DuplicateKey"
	case DictKeyType:
		return "DictKeyType"
	case TagShape:
		return "TagShape"
	case TagNest:
		return "TagNest"
	case TrailingGarbage:
		return "TrailingGarbage"
	case DepthLimit:
		return "DepthLimit"
	default:
		return "Unknown"
	}
}

// MessageKey is a stable, argument-free identifier for the specific
// reason behind an Error, one level more specific than Kind. Two failures
// that share a Kind but differ in the byte seen, the radix, or the tag
// name still share the same MessageKey — the runtime-specific part of
// the message lives in Detail, not here — so a caller building a
// localized message has something fixed to switch on.
type MessageKey string

const (
	KeyNumberNoDigits          MessageKey = "number.no_digits"
	KeyNumberHexFloatNoExp     MessageKey = "number.hex_float_requires_exponent"
	KeyNumberInvalidDecimal    MessageKey = "number.invalid_decimal"
	KeyNumberInvalidRadixInt   MessageKey = "number.invalid_radix_integer"
	KeyNumberInvalidFloat      MessageKey = "number.invalid_float"
	KeyNumberInvalidHexFloat   MessageKey = "number.invalid_hex_float"
	KeyNumberRadixNoFloatForm  MessageKey = "number.radix_has_no_float_form"
	KeyNumberTrailingDigit     MessageKey = "number.trailing_digit"
	KeyNumberMisplacedUnderscore MessageKey = "number.misplaced_underscore"

	KeyDepthExceeded MessageKey = "depth.exceeded"

	KeyStringExpectedLiteral    MessageKey = "string.expected_literal"
	KeyStringUnterminated       MessageKey = "string.unterminated"
	KeyStringControlChar        MessageKey = "string.control_char"
	KeyStringUnterminatedEscape MessageKey = "string.unterminated_escape"
	KeyStringUEscapeInBytes     MessageKey = "string.u_escape_in_bytestring"
	KeyStringSurrogateEscape    MessageKey = "string.surrogate_escape"
	KeyStringBigUEscapeInBytes  MessageKey = "string.big_u_escape_in_bytestring"
	KeyStringInvalidScalarValue MessageKey = "string.invalid_scalar_value"
	KeyStringUnknownEscape      MessageKey = "string.unknown_escape"
	KeyStringShortHexEscape     MessageKey = "string.short_hex_escape"
	KeyStringInvalidHexEscape   MessageKey = "string.invalid_hex_escape"

	KeyValueExpected       MessageKey = "value.expected"
	KeyValueBareWord       MessageKey = "value.bare_word"
	KeyValueUnexpectedByte MessageKey = "value.unexpected_byte"

	KeyRecordUnterminated        MessageKey = "record.unterminated"
	KeyRecordExpectedCommaOrBrace MessageKey = "record.expected_comma_or_brace"
	KeyRecordKeyNotString        MessageKey = "record.key_not_string"
	KeyRecordKeyIsBytestring     MessageKey = "record.key_is_bytestring"
	KeyRecordExpectedColon       MessageKey = "record.expected_colon"
	KeyRecordDuplicateKey        MessageKey = "record.duplicate_key"

	KeyBracketUnterminated          MessageKey = "bracket.unterminated"
	KeyBracketExpectedCommaOrClose  MessageKey = "bracket.expected_comma_or_close"
	KeyTableExpectedColon           MessageKey = "table.expected_colon"

	KeyGroupExpectedCloseParen MessageKey = "group.expected_close_paren"

	KeyTagExpectedName          MessageKey = "tag.expected_name"
	KeyTagRequiresWhitespace    MessageKey = "tag.requires_whitespace"
	KeyTagNested                MessageKey = "tag.nested"
	KeyTagShapeMismatch         MessageKey = "tag.shape_mismatch"
	KeyTagReservedNoRule        MessageKey = "tag.reserved_no_rule"
	KeyTagUnknown               MessageKey = "tag.unknown"
	KeyTagFloatParseError       MessageKey = "tag.float_parse_error"
	KeyTagFloatShapeMismatch    MessageKey = "tag.float_shape_mismatch"
	KeyTagDurationShapeMismatch MessageKey = "tag.duration_shape_mismatch"
	KeyTagDatetimeShapeMismatch MessageKey = "tag.datetime_shape_mismatch"
	KeyTagDatetimeParseError    MessageKey = "tag.datetime_parse_error"
	KeyTagBase64ShapeMismatch   MessageKey = "tag.base64_shape_mismatch"
	KeyTagBase64DecodeError     MessageKey = "tag.base64_decode_error"
	KeyTagBytestringShapeMismatch MessageKey = "tag.bytestring_shape_mismatch"
	KeyTagBytestringOutOfRange  MessageKey = "tag.bytestring_out_of_range"
	KeyTagSetShapeMismatch      MessageKey = "tag.set_shape_mismatch"
	KeyTagSetDuplicate          MessageKey = "tag.set_duplicate"
	KeyTagComplexShapeMismatch  MessageKey = "tag.complex_shape_mismatch"
	KeyTagComplexTypeMismatch   MessageKey = "tag.complex_type_mismatch"
	KeyTagDictShapeMismatch     MessageKey = "tag.dict_shape_mismatch"
	KeyTagDictKeyTypeError      MessageKey = "tag.dict_key_type_error"

	KeyDocumentTrailingGarbage MessageKey = "document.trailing_garbage"
	KeyEncodingInvalidUTF8Byte MessageKey = "encoding.invalid_utf8_byte"
	KeyEncodingInvalidUTF8     MessageKey = "encoding.invalid_utf8"
	KeyEncodingBOMNotAtStart   MessageKey = "encoding.bom_not_at_start"
)

// Error is the diagnostic returned by a failed parse: a kind, a position,
// a stable MessageKey for localisation, and a Detail string (the fully
// interpolated English rendering) for human consumption.
type Error struct {
	Kind       ErrorKind
	Byte       int
	Line, Col  int
	MessageKey MessageKey
	Detail     string
	cause      error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", e.Line, e.Col, e.Kind, e.Detail)
}

// Unwrap exposes the underlying cause, if any, so callers can
// errors.Is/As through a wrapped stdlib error (for example a
// strconv.NumError from a failed numeric conversion).
func (e *Error) Unwrap() error {
	return e.cause
}

func posError(data []byte, idx int, kind ErrorKind, key MessageKey, detail string, args ...any) error {
	line, col := 1, 1
	for _, b := range data[:min(idx, len(data))] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return errors.WithStack(&Error{
		Kind:       kind,
		Byte:       idx,
		Line:       line,
		Col:        col,
		MessageKey: key,
		Detail:     fmt.Sprintf(detail, args...),
	})
}

func wrapError(data []byte, idx int, kind ErrorKind, cause error, key MessageKey, detail string, args ...any) error {
	line, col := 1, 1
	for _, b := range data[:min(idx, len(data))] {
		if b == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return errors.WithStack(&Error{
		Kind:       kind,
		Byte:       idx,
		Line:       line,
		Col:        col,
		MessageKey: key,
		Detail:     fmt.Sprintf(detail, args...),
		cause:      cause,
	})
}
