package rson

import (
	"errors"
	"testing"
)

func TestErrorReportsLineAndColumn(t *testing.T) {
	t.Parallel()
	src := "[\n  1,\n  @@,\n]"
	_, err := Parse([]byte(src))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	var rerr *Error
	if !asError(err, &rerr) {
		t.Fatalf("error %v is not a *rson.Error", err)
	}
	if rerr.Line != 3 {
		t.Fatalf("got Line %d, want 3", rerr.Line)
	}
	if rerr.Col != 4 {
		t.Fatalf("got Col %d, want 4", rerr.Col)
	}
}

func TestErrorUnwrapsToStdlibCause(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("99999999999999999999999999"))
	if err == nil {
		t.Fatal("expected an overflow error")
	}
	var rerr *Error
	if !asError(err, &rerr) {
		t.Fatalf("error %v is not a *rson.Error", err)
	}
	if rerr.Unwrap() == nil {
		t.Fatal("expected wrapError to preserve the underlying strconv error via Unwrap")
	}
	if !errors.Is(err, rerr.Unwrap()) {
		t.Fatal("errors.Is should reach the wrapped stdlib cause through the chain")
	}
}

func TestErrorKindString(t *testing.T) {
	t.Parallel()
	if got := TagShape.String(); got != "TagShape" {
		t.Fatalf("TagShape.String() = %q, want %q", got, "TagShape")
	}
}

// TestMessageKeyStaysArgumentFree checks that two BadNumber failures whose
// offending byte differs still carry the same MessageKey: the byte value
// belongs in Detail, not in the key a caller would switch on to localise.
func TestMessageKeyStaysArgumentFree(t *testing.T) {
	t.Parallel()
	_, err1 := Parse([]byte("0b012"))
	_, err2 := Parse([]byte("0b019"))
	var rerr1, rerr2 *Error
	if !asError(err1, &rerr1) || !asError(err2, &rerr2) {
		t.Fatalf("expected both parses to fail with *rson.Error, got %v / %v", err1, err2)
	}
	if rerr1.MessageKey != rerr2.MessageKey {
		t.Fatalf("MessageKey varied with the offending byte: %q vs %q", rerr1.MessageKey, rerr2.MessageKey)
	}
	if rerr1.MessageKey != KeyNumberTrailingDigit {
		t.Fatalf("got MessageKey %q, want %q", rerr1.MessageKey, KeyNumberTrailingDigit)
	}
	if rerr1.Detail == rerr2.Detail {
		t.Fatalf("Detail should still carry the byte-specific text, got identical details %q", rerr1.Detail)
	}
}
