package rson

import (
	"bytes"
	"strings"
	"testing"
)

func TestDebugLoggerTracesTagResolution(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := NewDebugLogger(&buf)
	_, err := Parse([]byte(`@datetime "2020-01-01T00:00:00Z"`), WithLogger(logger))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !strings.Contains(buf.String(), "datetime") {
		t.Fatalf("expected debug trace to mention the tag name, got: %s", buf.String())
	}
}

func TestNilLoggerIsANoOp(t *testing.T) {
	t.Parallel()
	if _, err := Parse([]byte(`@datetime "2020-01-01T00:00:00Z"`)); err != nil {
		t.Fatalf("Parse with no logger configured: %v", err)
	}
}
