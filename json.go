package rson

import (
	"encoding/base64"
	"time"
)

// ToJSONValue implements §6's informative decorated-JSON projection: a
// Value tree maps to a tree of encoding/json-marshalable `any`, so a
// downstream JSON back-end (out of scope for this module, per §1) can
// call json.Marshal without walking RSON's richer type system itself.
// The projection is not bijective — a Bytes value and a String holding
// its base64 text project to the same JSON string — and this module does
// not attempt to invert it.
//
// The general "walk a closed value tree into a json.Marshal-friendly
// shape" technique is grounded on the pack's canonical-JSON encoders
// (see DESIGN.md); the concrete mapping itself is fixed by §6.
func (v Value) ToJSONValue() any {
	switch v.kind {
	case KindNull:
		return nil
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBytes:
		return base64.StdEncoding.EncodeToString(v.bytes)
	case KindList:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.ToJSONValue()
		}
		return out
	case KindRecord:
		return map[string]any{"record": recordPairsJSON(v.pairs)}
	case KindSet:
		out := make([]any, len(v.items))
		for i, it := range v.items {
			out[i] = it.ToJSONValue()
		}
		return map[string]any{"set": out}
	case KindDict:
		return map[string]any{"dict": recordPairsJSON(v.pairs)}
	case KindTable:
		return map[string]any{"table": recordPairsJSON(v.pairs)}
	case KindComplex:
		return map[string]any{"complex": []any{v.re, v.im}}
	case KindDateTime:
		return map[string]any{"datetime": v.t.UTC().Format(time.RFC3339Nano)}
	case KindDuration:
		return map[string]any{"duration": v.dur.Seconds()}
	case KindTagged:
		return map[string]any{v.tag: v.child.ToJSONValue()}
	default:
		return nil
	}
}

func recordPairsJSON(pairs []Pair) []any {
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = []any{p.Key.ToJSONValue(), p.Value.ToJSONValue()}
	}
	return out
}
