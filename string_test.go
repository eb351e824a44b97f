package rson

import "testing"

func TestStringDelimiters(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want string
	}{
		{`"double"`, "double"},
		{`'single'`, "single"},
		{`"""triple
double"""`, "triple\ndouble"},
		{`'''triple
single'''`, "triple\nsingle"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			v := mustParse(t, tc.src)
			if v.Kind() != KindString {
				t.Fatalf("Parse(%q): got Kind %v, want String", tc.src, v.Kind())
			}
			if v.Str() != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.src, v.Str(), tc.want)
			}
		})
	}
}

func TestByteStringPrefix(t *testing.T) {
	t.Parallel()
	v := mustParse(t, `b"\xff\x00a"`)
	if v.Kind() != KindBytes {
		t.Fatalf("got Kind %v, want Bytes", v.Kind())
	}
	want := []byte{0xff, 0x00, 'a'}
	if string(v.Bytes()) != string(want) {
		t.Fatalf("got %v, want %v", v.Bytes(), want)
	}
}

func TestUnicodePrefixIsAcceptedAndRedundant(t *testing.T) {
	t.Parallel()
	v := mustParse(t, `u"abc"`)
	if v.Kind() != KindString || v.Str() != "abc" {
		t.Fatalf("got %v %q, want String(abc)", v.Kind(), v.Str())
	}
}

func TestStringEscapeAlphabet(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want string
	}{
		{`"\n"`, "\n"},
		{`"\t"`, "\t"},
		{`"\r"`, "\r"},
		{`"\b"`, "\b"},
		{`"\f"`, "\f"},
		{`"\\"`, "\\"},
		{`"\/"`, "/"},
		{`"\""`, "\""},
		{`"\'"`, "'"},
		{`"\x41"`, "A"},
		{`"\` + `u0041"`, "A"},
		{`"\U00000041"`, "A"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			v := mustParse(t, tc.src)
			if v.Str() != tc.want {
				t.Fatalf("Parse(%q) = %q, want %q", tc.src, v.Str(), tc.want)
			}
		})
	}
}

func TestStringLineContinuation(t *testing.T) {
	t.Parallel()
	v := mustParse(t, "\"a\\\nb\"")
	if v.Str() != "ab" {
		t.Fatalf("got %q, want %q", v.Str(), "ab")
	}
}

func TestStringRejectsUnescapedControlChar(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("\"a\x01b\""))
	if err == nil {
		t.Fatal("expected an error for an unescaped control character")
	}
	var rerr *Error
	if !asError(err, &rerr) || rerr.Kind != BadControlChar {
		t.Fatalf("got %v, want a BadControlChar *rson.Error", err)
	}
}

func TestTripleQuotedAllowsRawNewlines(t *testing.T) {
	t.Parallel()
	v := mustParse(t, "\"\"\"a\nb\"\"\"")
	if v.Str() != "a\nb" {
		t.Fatalf("got %q, want %q", v.Str(), "a\nb")
	}
}

func TestStringRejectsSurrogateEscape(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte(`"\uD800"`))
	if err == nil {
		t.Fatal("expected an error for a lone surrogate escape")
	}
	var rerr *Error
	if !asError(err, &rerr) || rerr.Kind != BadEscape {
		t.Fatalf("got %v, want a BadEscape *rson.Error", err)
	}
}

func TestByteStringRejectsUnicodeEscapes(t *testing.T) {
	t.Parallel()
	for _, src := range []string{`b"\u0041"`, `b"\U00000041"`} {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse([]byte(src)); err == nil {
				t.Fatalf("Parse(%q): expected an error; byte strings reject \\u/\\U", src)
			}
		})
	}
}

func TestAdjacentStringConcatenationRequiresSameKind(t *testing.T) {
	t.Parallel()
	v := mustParse(t, `("a" "b" "c")`)
	if v.Str() != "abc" {
		t.Fatalf("got %q, want %q", v.Str(), "abc")
	}

	bv := mustParse(t, `(b"a" b"b")`)
	if string(bv.Bytes()) != "ab" {
		t.Fatalf("got %v, want %q as bytes", bv.Bytes(), "ab")
	}

	// A single literal in parens is just a grouping, not a concatenation.
	single := mustParse(t, `("solo")`)
	if single.Str() != "solo" {
		t.Fatalf("got %q, want %q", single.Str(), "solo")
	}
}

func TestGroupingOfNonStringValue(t *testing.T) {
	t.Parallel()
	v := mustParse(t, `(42)`)
	if v.Kind() != KindInt || v.Int() != 42 {
		t.Fatalf("got %v, want Int(42)", v)
	}
}
