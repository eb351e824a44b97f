package rson

import "testing"

func TestParseNumberIntegers(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want int64
	}{
		{"0", 0},
		{"42", 42},
		{"-42", -42},
		{"+7", 7},
		{"0b1010", 10},
		{"0o17", 15},
		{"0c17", 15},
		{"0x1f", 31},
		{"0x1F", 31},
		{"1_000_000", 1000000},
		{"0b1_0", 2},
		{"-0x10", -16},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			v := mustParse(t, tc.src)
			if v.Kind() != KindInt {
				t.Fatalf("Parse(%q): got Kind %v, want Int", tc.src, v.Kind())
			}
			if v.Int() != tc.want {
				t.Fatalf("Parse(%q) = %d, want %d", tc.src, v.Int(), tc.want)
			}
		})
	}
}

func TestParseNumberFloats(t *testing.T) {
	t.Parallel()
	tests := []struct {
		src  string
		want float64
	}{
		{"1.5", 1.5},
		{"1.5e2", 150},
		{"1.5E2", 150},
		{"1e10", 1e10},
		{"1e-10", 1e-10},
		{"0x1.8p3", 12},
		{"0x1p0", 1},
		{"-1.5", -1.5},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.src, func(t *testing.T) {
			t.Parallel()
			v := mustParse(t, tc.src)
			if v.Kind() != KindFloat {
				t.Fatalf("Parse(%q): got Kind %v, want Float", tc.src, v.Kind())
			}
			if v.Float() != tc.want {
				t.Fatalf("Parse(%q) = %v, want %v", tc.src, v.Float(), tc.want)
			}
		})
	}
}

func TestParseNumberRejectsHexFloatWithoutExponent(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("0x1.8"))
	if err == nil {
		t.Fatal("expected an error: hex float requires a p/P exponent")
	}
}

func TestParseNumberUnderscorePlacement(t *testing.T) {
	t.Parallel()
	bad := []string{"_1", "1_", "1__0", "1_.5", "0x_1"}
	for _, src := range bad {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			// "_1" is rejected as a bare identifier, not as a malformed
			// number (a leading '_' never reaches the number parser); the
			// rest are rejected inside scanDigitRun.
			if _, err := Parse([]byte(src)); err == nil {
				t.Fatalf("Parse(%q): expected an error", src)
			}
		})
	}
}

func TestParseNumberOverrangeDigitForRadix(t *testing.T) {
	t.Parallel()
	bad := []string{"0b0123", "0o999", "0xGHij", "0b2"}
	for _, src := range bad {
		src := src
		t.Run(src, func(t *testing.T) {
			t.Parallel()
			_, err := Parse([]byte(src))
			if err == nil {
				t.Fatalf("Parse(%q): expected a BadNumber error", src)
			}
			var rerr *Error
			if !asError(err, &rerr) || rerr.Kind != BadNumber {
				t.Fatalf("Parse(%q): got %v, want a BadNumber *rson.Error", src, err)
			}
		})
	}
}

func TestParseNumberInt64Overflow(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("99999999999999999999999999"))
	if err == nil {
		t.Fatal("expected an overflow error for a decimal integer literal beyond int64 range")
	}
}
