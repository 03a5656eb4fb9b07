package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// Category classifies a requested base name. The category decides which
// suffix algorithm Generate applies.
type Category int

const (
	// CategoryNode is a regular topology node (e.g. "srl1").
	CategoryNode Category = iota
	// CategoryDummy is a dummy node ("dummy", "dummy3").
	CategoryDummy
	// CategoryAdapter is a node-typed interface endpoint ("host:eth1").
	CategoryAdapter
	// CategorySpecial is a special network endpoint without an adapter part
	// ("macvlan", "vxlan-stitch", bare "host" or "mgmt-net").
	CategorySpecial
)

// String makes Category satisfy the fmt.Stringer interface.
func (c Category) String() string {
	switch c {
	case CategoryDummy:
		return "dummy"
	case CategoryAdapter:
		return "adapter"
	case CategorySpecial:
		return "special"
	default:
		return "node"
	}
}

var (
	dummyPattern   = regexp.MustCompile(`^dummy(\d*)$`)
	adapterPattern = regexp.MustCompile(`^([A-Za-z]+)(\d+)$`)
)

// specialEndpoints is the closed vocabulary of special network node names.
// Matching is done on the digit-stripped base, so "macvlan2" is special while
// "srl2" is a regular node. Their colon-prefixed forms ("macvlan:ens3") carry
// an adapter part and take the adapter path instead.
var specialEndpoints = map[string]struct{}{
	"host":         {},
	"mgmt-net":     {},
	"macvlan":      {},
	"vxlan":        {},
	"vxlan-stitch": {},
	"dummy":        {},
	"bridge":       {},
	"ovs-bridge":   {},
}

// Classify determines the allocation category for a base name. It never
// fails; anything unrecognized is a regular node.
func Classify(base string) Category {
	if dummyPattern.MatchString(base) {
		return CategoryDummy
	}
	if strings.Contains(base, ":") {
		return CategoryAdapter
	}
	root, _ := splitTrailingDigits(base)
	if _, ok := specialEndpoints[root]; ok {
		return CategorySpecial
	}
	return CategoryNode
}

// Generate produces a fresh identifier derived from base that does not occur
// in used. It never fails and always terminates: every algorithm increments
// an integer suffix, which is eventually unused. The used set is not
// mutated; callers insert the result themselves before the next call.
func Generate(base string, used *UsedIDSet) string {
	switch Classify(base) {
	case CategoryDummy:
		return nextDummy(base, used)
	case CategoryAdapter:
		return nextAdapter(base, used)
	case CategorySpecial:
		return nextSpecial(base, used)
	default:
		return nextNode(base, used)
	}
}

// nextDummy counts up from the requested number (default 1) until free:
// "dummy" -> dummy1, "dummy3" -> dummy3 if unused, else dummy4, ...
func nextDummy(base string, used *UsedIDSet) string {
	n := 1
	if m := dummyPattern.FindStringSubmatch(base); m[1] != "" {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			n = parsed
		}
	}
	for {
		candidate := "dummy" + strconv.Itoa(n)
		if !used.Has(candidate) {
			return candidate
		}
		n++
	}
}

// nextAdapter increments the numeric suffix of the interface part:
// host:eth1 -> host:eth2. When the interface part does not split into an
// alphabetic prefix and a numeric suffix, an incrementing counter is appended
// to the whole interface string instead (host:e1-0 -> host:e1-01, host:e1-02, ...).
func nextAdapter(base string, used *UsedIDSet) string {
	parts := strings.SplitN(base, ":", 2)
	nodeType, adapter := parts[0], parts[1]

	if m := adapterPattern.FindStringSubmatch(adapter); m != nil {
		prefix := m[1]
		n, err := strconv.Atoi(m[2])
		if err == nil {
			for {
				n++
				candidate := nodeType + ":" + prefix + strconv.Itoa(n)
				if !used.Has(candidate) {
					return candidate
				}
			}
		}
	}

	// Unparseable interface part: append an incrementing counter to the
	// whole string.
	for n := 1; ; n++ {
		candidate := nodeType + ":" + adapter + strconv.Itoa(n)
		if !used.Has(candidate) {
			return candidate
		}
	}
}

// nextSpecial strips trailing digits to find the alphabetic base, then
// increments the trailing number (default 0): macvlan -> macvlan1,
// vxlan2 -> vxlan3.
func nextSpecial(base string, used *UsedIDSet) string {
	root, digits := splitTrailingDigits(base)
	n := 0
	if digits != "" {
		if parsed, err := strconv.Atoi(digits); err == nil {
			n = parsed
		}
	}
	for {
		n++
		candidate := root + strconv.Itoa(n)
		if !used.Has(candidate) {
			return candidate
		}
	}
}

// nextNode allocates a regular node name from the global maximum suffix in
// use: the root is the base with trailing digits stripped, and the result is
// root + (max numeric suffix over every used ID with that root, plus one).
// Gaps in the sequence are never refilled; with {srl1, srl2, srl4} in use,
// requesting "srl1" yields srl5.
func nextNode(base string, used *UsedIDSet) string {
	root, _ := splitTrailingDigits(base)
	max := 0
	if used == nil {
		used = NewUsedIDSet()
	}
	for id := range used.ids {
		if !strings.HasPrefix(id, root) {
			continue
		}
		suffix := id[len(root):]
		// Only pure digit runs count; Atoi alone would accept signs.
		if rest, digits := splitTrailingDigits(suffix); rest != "" || digits == "" {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return root + strconv.Itoa(max+1)
}

// splitTrailingDigits splits s into its alphabetic-or-mixed root and the
// trailing digit run: "srl12" -> ("srl", "12"), "mgmt-net" -> ("mgmt-net", "").
func splitTrailingDigits(s string) (root, digits string) {
	i := len(s)
	for i > 0 && s[i-1] >= '0' && s[i-1] <= '9' {
		i--
	}
	return s[:i], s[i:]
}
