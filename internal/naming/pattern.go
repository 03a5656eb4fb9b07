package naming

import (
	"strconv"
	"strings"
)

// DefaultInterfacePattern is used for kinds without a configured pattern.
const DefaultInterfacePattern = "eth{n}"

// ExpandPattern substitutes the {n} placeholder in an interface naming
// pattern: ExpandPattern("Ethernet1/{n}", 3) -> "Ethernet1/3". Patterns
// without a placeholder get the number appended.
func ExpandPattern(pattern string, n int) string {
	if pattern == "" {
		pattern = DefaultInterfacePattern
	}
	num := strconv.Itoa(n)
	if strings.Contains(pattern, "{n}") {
		return strings.ReplaceAll(pattern, "{n}", num)
	}
	return pattern + num
}

// NextInterface returns the first interface name for node, following pattern,
// whose endpoint identifier ("node:iface") is not yet in used. The counter
// starts at 1 and the endpoint id, not the bare interface name, is checked
// against the set.
func NextInterface(node, pattern string, used *UsedIDSet) string {
	for n := 1; ; n++ {
		iface := ExpandPattern(pattern, n)
		if !used.Has(node + ":" + iface) {
			return iface
		}
	}
}
