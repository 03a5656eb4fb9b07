// Package normalize provides canonical normalization and order-independent
// structural equality for the YAML/JSON-shaped values that make up topology
// configurations.
//
// Values are the usual decoded shapes: scalars, []any sequences, and
// map[string]any records. Normalization produces a form whose canonical
// serialization is independent of record key order, which is what the
// inheritance detection in the resolver relies on.
package normalize

import (
	"encoding/json"
	"fmt"
)

// Normalize returns a canonical form of v. Records have nil-valued keys
// dropped and their values normalized recursively; sequences keep their
// element order with each element normalized; scalars pass through unchanged.
//
// Dropping nil-valued record keys is deliberate: two records that differ only
// in a key whose value was never set serialize identically and therefore
// compare equal. Callers that need to distinguish "key present with no value"
// from "key absent" must do so before normalizing.
func Normalize(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[k] = Normalize(val)
		}
		return out
	case map[any]any:
		// Legacy YAML decoders produce interface-keyed maps; fold them into
		// string-keyed records so both shapes compare equal.
		out := make(map[string]any, len(t))
		for k, val := range t {
			if val == nil {
				continue
			}
			out[fmt.Sprint(k)] = Normalize(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = Normalize(e)
		}
		return out
	default:
		return v
	}
}

// Canonical serializes Normalize(v) to its canonical string form. JSON
// marshaling emits record keys in sorted order, so the result is stable
// across key orderings. Values that cannot be serialized (which do not occur
// for decoded topology data) fall back to their fmt representation so the
// function stays total.
func Canonical(v any) string {
	normalized := Normalize(v)
	b, err := json.Marshal(normalized)
	if err != nil {
		// fmt prints map keys sorted, so the fallback stays order-independent.
		return fmt.Sprintf("%#v", normalized)
	}
	return string(b)
}

// DeepEqual reports whether a and b are structurally equal under canonical
// normalization: record key order is irrelevant, sequence order is not.
func DeepEqual(a, b any) bool {
	return Canonical(a) == Canonical(b)
}
