package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		base string
		want Category
	}{
		{"srl1", CategoryNode},
		{"leaf", CategoryNode},
		{"router12", CategoryNode},
		{"dummy", CategoryDummy},
		{"dummy7", CategoryDummy},
		{"dummy-node", CategoryNode}, // not the bare dummy pattern
		{"host:eth1", CategoryAdapter},
		{"macvlan:ens3", CategoryAdapter},
		{"mgmt-net:eth0", CategoryAdapter},
		{"macvlan", CategorySpecial},
		{"macvlan2", CategorySpecial},
		{"vxlan", CategorySpecial},
		{"vxlan-stitch", CategorySpecial},
		{"host", CategorySpecial},
		{"mgmt-net", CategorySpecial},
		{"bridge", CategorySpecial},
		{"ovs-bridge3", CategorySpecial},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.base), "Classify(%q)", tt.base)
	}
}

func TestGenerate_RegularNodeUsesMaxSuffix(t *testing.T) {
	used := NewUsedIDSet("srl1", "srl2", "srl4")
	assert.Equal(t, "srl5", Generate("srl1", used))

	// Gaps are never refilled: srl3 stays free.
	used.Add("srl5")
	assert.Equal(t, "srl6", Generate("srl3", used))
}

func TestGenerate_RegularNodeFreshRoot(t *testing.T) {
	used := NewUsedIDSet("leaf1", "leaf2")
	assert.Equal(t, "spine1", Generate("spine", used))
	assert.Equal(t, "leaf3", Generate("leaf", used))
}

func TestGenerate_RegularNodeIgnoresNonNumericSuffixes(t *testing.T) {
	used := NewUsedIDSet("srl1", "srl-mgmt", "srlinux9")
	// "srlinux9" starts with root "srl" but its suffix "inux9" is not all
	// digits, so the max in use for root "srl" is 1.
	assert.Equal(t, "srl2", Generate("srl1", used))
}

func TestGenerate_RegularNodeIgnoresSignedSuffixes(t *testing.T) {
	// "srl+5" is not "srl" followed by a digit run even though Atoi would
	// happily parse "+5".
	used := NewUsedIDSet("srl1", "srl+5")
	assert.Equal(t, "srl2", Generate("srl", used))
}

func TestGenerate_AdapterIncrement(t *testing.T) {
	used := NewUsedIDSet("host:eth1")
	assert.Equal(t, "host:eth2", Generate("host:eth1", used))

	used.Add("host:eth2")
	used.Add("host:eth3")
	assert.Equal(t, "host:eth4", Generate("host:eth1", used))
}

func TestGenerate_AdapterFallbackCounter(t *testing.T) {
	used := NewUsedIDSet("host:e1-1a")
	// "e1-1a" has no trailing numeric suffix after an alphabetic prefix, so
	// the counter is appended to the whole interface string.
	assert.Equal(t, "host:e1-1a1", Generate("host:e1-1a", used))
	used.Add("host:e1-1a1")
	assert.Equal(t, "host:e1-1a2", Generate("host:e1-1a", used))
}

func TestGenerate_DummyNumbering(t *testing.T) {
	assert.Equal(t, "dummy1", Generate("dummy", NewUsedIDSet()))
	assert.Equal(t, "dummy2", Generate("dummy", NewUsedIDSet("dummy1")))
	assert.Equal(t, "dummy3", Generate("dummy3", NewUsedIDSet()))
	assert.Equal(t, "dummy4", Generate("dummy3", NewUsedIDSet("dummy3")))
}

func TestGenerate_SpecialEndpointNumbering(t *testing.T) {
	assert.Equal(t, "macvlan1", Generate("macvlan", NewUsedIDSet("macvlan")))
	assert.Equal(t, "macvlan3", Generate("macvlan", NewUsedIDSet("macvlan", "macvlan1", "macvlan2")))
	assert.Equal(t, "vxlan3", Generate("vxlan2", NewUsedIDSet()))
	assert.Equal(t, "mgmt-net1", Generate("mgmt-net", NewUsedIDSet("mgmt-net")))
}

func TestGenerate_BatchUniqueness(t *testing.T) {
	used := NewUsedIDSet("srl1", "host:eth1", "dummy1", "macvlan")
	seen := map[string]bool{}
	for _, base := range []string{"srl1", "srl1", "host:eth1", "host:eth1", "dummy", "dummy", "macvlan", "leaf", "leaf"} {
		id := Generate(base, used)
		assert.False(t, used.Has(id), "generated id %q already in use", id)
		assert.False(t, seen[id], "generated id %q issued twice", id)
		seen[id] = true
		used.Add(id)
	}
}

func TestGenerate_TotalOnOddInput(t *testing.T) {
	// Malformed or empty base names still produce identifiers.
	assert.NotEmpty(t, Generate("", NewUsedIDSet()))
	assert.Equal(t, "124", Generate("123", NewUsedIDSet("123")))
	assert.NotEmpty(t, Generate("a:b:c", NewUsedIDSet()))
}

func TestUsedIDSet(t *testing.T) {
	s := NewUsedIDSet("a", "b")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Has("a"))
	s.Remove("a")
	assert.False(t, s.Has("a"))
	s.Add("c")
	assert.ElementsMatch(t, []string{"b", "c"}, s.All())

	var nilSet *UsedIDSet
	assert.False(t, nilSet.Has("x"))
	assert.Equal(t, 0, nilSet.Len())
}

func TestExpandPattern(t *testing.T) {
	assert.Equal(t, "eth3", ExpandPattern("eth{n}", 3))
	assert.Equal(t, "Ethernet1/2", ExpandPattern("Ethernet1/{n}", 2))
	assert.Equal(t, "eth5", ExpandPattern("", 5))
	assert.Equal(t, "port7", ExpandPattern("port", 7))
}

func TestNextInterface(t *testing.T) {
	used := NewUsedIDSet("srl1:eth1", "srl1:eth2")
	assert.Equal(t, "eth3", NextInterface("srl1", "eth{n}", used))
	assert.Equal(t, "eth1", NextInterface("srl2", "eth{n}", used))
}
