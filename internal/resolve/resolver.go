package resolve

import (
	"reflect"
	"sort"

	"topoctl/pkg/normalize"
)

// NodeConfig maps property names to values. Values are scalars, []any
// sequences, or map[string]any records, as decoded from the topology
// document or collected from an editor session.
type NodeConfig = map[string]any

// Well-known property names that identify a node rather than configure it.
// They are never reported as inherited.
const (
	PropKind  = "kind"
	PropName  = "name"
	PropGroup = "group"
)

// TopologyConfig is the layered configuration of a topology document. All
// sections are optional; nil maps behave as empty.
type TopologyConfig struct {
	Defaults NodeConfig
	Kinds    map[string]NodeConfig
	Groups   map[string]NodeConfig
}

// Resolver resolves effective node configurations against one
// TopologyConfig. It is an explicitly constructed value so callers carry
// their context instead of reaching for document-level globals, and it is
// safe for concurrent use: all methods are read-only.
type Resolver struct {
	cfg TopologyConfig
}

// NewResolver creates a Resolver for the given topology configuration.
func NewResolver(cfg TopologyConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Resolve merges the layered configuration with the node's explicit values
// and returns the effective configuration. The input is not mutated.
func (r *Resolver) Resolve(node NodeConfig) NodeConfig {
	return mergeLayers(r.layersFor(kindOf(node), groupOf(node), node))
}

// Baseline returns the effective configuration a node with the given kind
// and group would have without any explicit node-level values.
func (r *Resolver) Baseline(kind, group string) NodeConfig {
	return mergeLayers(r.layersFor(kind, group, nil))
}

// Inherited returns the property names whose effective value comes from a
// layer other than the node itself, in lexicographic order. The kind, name
// and group properties are excluded regardless of equality.
func (r *Resolver) Inherited(node NodeConfig) []string {
	effective := r.Resolve(node)
	baseline := r.Baseline(kindOf(node), groupOf(node))
	return computeInherited(effective, node, baseline)
}

func (r *Resolver) layersFor(kind, group string, node NodeConfig) []NodeConfig {
	layers := []NodeConfig{r.cfg.Defaults}
	if kind != "" {
		layers = append(layers, r.cfg.Kinds[kind])
	}
	if group != "" {
		layers = append(layers, r.cfg.Groups[group])
	}
	if node != nil {
		layers = append(layers, node)
	}
	return layers
}

// mergeLayers shallow-merges the layers in increasing precedence. Only
// meaningfully-set values participate; a later layer's empty array does not
// erase an earlier layer's value, it is simply not there.
func mergeLayers(layers []NodeConfig) NodeConfig {
	merged := NodeConfig{}
	for _, layer := range layers {
		for key, value := range layer {
			if ShouldPersist(value) {
				merged[key] = value
			}
		}
	}
	return merged
}

// computeInherited implements the inheritance rule over an already-merged
// effective config, the node's explicit values, and the node-less baseline.
func computeInherited(effective, explicit, baseline NodeConfig) []string {
	var inherited []string
	for key := range effective {
		if key == PropKind || key == PropName || key == PropGroup {
			continue
		}
		hasExplicit := ShouldPersist(explicit[key])
		hasInherited := ShouldPersist(baseline[key])
		if hasInherited && (!hasExplicit || normalize.DeepEqual(explicit[key], baseline[key])) {
			inherited = append(inherited, key)
		}
	}
	sort.Strings(inherited)
	return inherited
}

// ShouldPersist reports whether a value is meaningfully set: nil, empty
// arrays and empty records are not; everything else is, including 0, false
// and the empty string.
func ShouldPersist(value any) bool {
	if value == nil {
		return false
	}
	switch rv := reflect.ValueOf(value); rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	}
	return true
}

func kindOf(node NodeConfig) string {
	s, _ := node[PropKind].(string)
	return s
}

func groupOf(node NodeConfig) string {
	s, _ := node[PropGroup].(string)
	return s
}
