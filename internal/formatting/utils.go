package formatting

import (
	"fmt"
	"sort"

	"topoctl/pkg/normalize"
)

// renderValue produces a single-line rendering of a property value: scalars
// via fmt, nested records and sequences via their canonical JSON form.
func renderValue(v any) string {
	switch v.(type) {
	case map[string]any, map[any]any, []any, []string:
		return normalize.Canonical(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

// sortedKeys returns the property names of a config in lexicographic order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// inSet reports membership of key in an ordered name list.
func inSet(key string, set []string) bool {
	for _, s := range set {
		if s == key {
			return true
		}
	}
	return false
}
