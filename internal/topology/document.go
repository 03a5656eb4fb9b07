// Package topology loads, edits and persists containerlab topology
// documents. It owns the used-identifier set that the naming allocator reads
// and supplies the layered configuration the resolver merges.
package topology

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"topoctl/internal/naming"
	"topoctl/internal/resolve"
	"topoctl/pkg/logging"
)

// Document wraps a topology file with the bookkeeping the editing core
// needs: the element identifier set and the layered configuration view.
type Document struct {
	// ID identifies this in-memory session for log correlation; it is not
	// persisted.
	ID string

	path string
	file *File
}

// Load reads and parses a topology document. Both YAML (.clab.yml) and JSON
// topologies parse through the YAML decoder, JSON being a YAML subset.
// Missing sections come back as empty maps, never as errors.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read topology %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes topology content. The path is used for error messages and
// later saves only.
func Parse(data []byte, path string) (*Document, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse topology %s: %w", path, err)
	}
	ensureSections(&file)

	doc := &Document{
		ID:   uuid.New().String(),
		path: path,
		file: &file,
	}
	logging.Debug("Topology", "Loaded %s (session %s): %d nodes, %d links",
		path, doc.ID, len(file.Topology.Nodes), len(file.Topology.Links))
	return doc, nil
}

// New creates an empty document that will be saved to path.
func New(name, path string) *Document {
	file := &File{Name: name}
	ensureSections(file)
	return &Document{ID: uuid.New().String(), path: path, file: file}
}

func ensureSections(f *File) {
	if f.Topology.Defaults == nil {
		f.Topology.Defaults = map[string]any{}
	}
	if f.Topology.Kinds == nil {
		f.Topology.Kinds = map[string]map[string]any{}
	}
	if f.Topology.Groups == nil {
		f.Topology.Groups = map[string]map[string]any{}
	}
	if f.Topology.Nodes == nil {
		f.Topology.Nodes = map[string]map[string]any{}
	}
	// A node declared with an empty body ("srl1:") decodes to a nil map;
	// normalize so callers can assign into it.
	for name, body := range f.Topology.Nodes {
		if body == nil {
			f.Topology.Nodes[name] = map[string]any{}
		}
	}
}

// Path returns the file path the document was loaded from.
func (d *Document) Path() string { return d.path }

// File exposes the parsed topology for read access.
func (d *Document) File() *File { return d.file }

// TopologyConfig returns the layered configuration view for the resolver.
func (d *Document) TopologyConfig() resolve.TopologyConfig {
	return resolve.TopologyConfig{
		Defaults: d.file.Topology.Defaults,
		Kinds:    toNodeConfigs(d.file.Topology.Kinds),
		Groups:   toNodeConfigs(d.file.Topology.Groups),
	}
}

func toNodeConfigs(in map[string]map[string]any) map[string]resolve.NodeConfig {
	out := make(map[string]resolve.NodeConfig, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// UsedIDs builds the identifier set for the allocator: every node name plus
// every link endpoint identifier. The set is a fresh snapshot; callers that
// allocate in a batch keep one set and insert into it as they go.
func (d *Document) UsedIDs() *naming.UsedIDSet {
	used := naming.NewUsedIDSet()
	for name := range d.file.Topology.Nodes {
		used.Add(name)
	}
	for _, link := range d.file.Topology.Links {
		for _, ep := range link.Endpoints {
			used.Add(ep)
		}
	}
	return used
}

// Node returns a node's explicit property map.
func (d *Document) Node(name string) (map[string]any, bool) {
	n, ok := d.file.Topology.Nodes[name]
	return n, ok
}

// NodeNames returns all node names in unspecified order.
func (d *Document) NodeNames() []string {
	names := make([]string, 0, len(d.file.Topology.Nodes))
	for name := range d.file.Topology.Nodes {
		names = append(names, name)
	}
	return names
}

// AddNode inserts a node. The name must not collide with an existing
// element identifier; allocate it through the naming package first.
func (d *Document) AddNode(name string, cfg map[string]any) error {
	if name == "" {
		return fmt.Errorf("node name cannot be empty")
	}
	if d.UsedIDs().Has(name) {
		return fmt.Errorf("identifier %q is already in use", name)
	}
	if cfg == nil {
		cfg = map[string]any{}
	}
	d.file.Topology.Nodes[name] = cfg
	return nil
}

// SetNode replaces a node's explicit properties, creating the node if it
// does not exist.
func (d *Document) SetNode(name string, cfg map[string]any) {
	if cfg == nil {
		cfg = map[string]any{}
	}
	d.file.Topology.Nodes[name] = cfg
}

// RemoveNode deletes a node and every link touching one of its endpoints.
// It reports whether the node existed.
func (d *Document) RemoveNode(name string) bool {
	if _, ok := d.file.Topology.Nodes[name]; !ok {
		return false
	}
	delete(d.file.Topology.Nodes, name)

	kept := d.file.Topology.Links[:0]
	for _, link := range d.file.Topology.Links {
		if !linkTouches(link, name) {
			kept = append(kept, link)
		}
	}
	d.file.Topology.Links = kept
	return true
}

// AddLink appends a link between the given endpoints.
func (d *Document) AddLink(endpoints ...string) error {
	if len(endpoints) < 2 {
		return fmt.Errorf("a link needs at least two endpoints")
	}
	d.file.Topology.Links = append(d.file.Topology.Links, Link{Endpoints: endpoints})
	return nil
}

func linkTouches(link Link, node string) bool {
	for _, ep := range link.Endpoints {
		if ep == node || strings.HasPrefix(ep, node+":") {
			return true
		}
	}
	return false
}

// Marshal serializes the document to YAML.
func (d *Document) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(d.file)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize topology: %w", err)
	}
	return data, nil
}

// Save writes the document back to its path atomically (write to a temp
// file in the same directory, then rename). Each save gets a fresh revision
// ID for log correlation.
func (d *Document) Save() error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}

	dir := filepath.Dir(d.path)
	tmp, err := os.CreateTemp(dir, ".topoctl-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, d.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", d.path, err)
	}

	revision := uuid.New().String()
	logging.Info("Topology", "Saved %s (revision %s)", d.path, revision)
	return nil
}
