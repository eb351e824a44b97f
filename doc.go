// Package rson parses RSON (Restructured Object Notation), a superset of
// JSON meant to be read, not written, by JavaScript.
//
// RSON looks like JSON with a few extra powers:
//
//	# comments run to end of line
//	{
//	  "int":     0x1f,          # binary/octal/hex/decimal, with _ separators
//	  "float":   0x1.8p3,       # hex floats too
//	  "str":     'single or "double"',
//	  "triple":  """raw
//	  newlines allowed""",
//	  "bytes":   b"\xff\x00",
//	  "list":    [1, 2, 3,],    # trailing commas are fine
//	  "table":   ["a": 1, "b": 2], # an ordered, duplicate-tolerant k:v sequence
//	  "concat":  ("a" "b" "c"), # adjacent string literals concatenate
//	  "tagged":  @datetime "2017-11-22T23:32:07.100497Z",
//	}
//
// Sets, dicts, complex numbers, durations, and base64/byte-string
// literals all arrive via a handful of built-in tags (@set, @dict,
// @complex, @duration, @base64, @bytestring); anything else written as
// @name value either survives as a Tagged value or is rejected, depending
// on Options.PreserveUnknownTags.
//
// # Parsing
//
// Parse consumes one full document:
//
//	v, err := rson.Parse(data)
//
// ParseValue embeds a single RSON object into a larger grammar by taking
// a *Cursor positioned wherever the object begins.
//
// # Values
//
// Parse returns a Value: a closed, immutable sum type over RSON's
// variants (Null, Bool, Int, Float, String, Bytes, List, Record, Set,
// Dict, Table, Complex, DateTime, Duration, Tagged). Use Equal, not ==,
// to compare two Values — it implements the cross-variant numeric
// equality and NaN-poisoning rules RSON's record/set/dict key collision
// depends on.
//
// # What this package does not do
//
// It does not write RSON back out, does not decode RSON into arbitrary
// Go structs via reflection, does not emit binary-RSON, and does not
// decode base64 payloads beyond checking they are syntactically
// well-formed base64 (@base64 is the one exception: decoding a base64
// string into Bytes is exactly what that tag is for). Those are
// downstream collaborators, not this package's job.
package rson
