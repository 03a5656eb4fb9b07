package config

// Config is the top-level configuration structure for topoctl.
type Config struct {
	// DefaultKind is assigned to new nodes created without an explicit kind.
	DefaultKind string `yaml:"defaultKind,omitempty"`

	// DefaultImage is assigned to new nodes created without an explicit image.
	DefaultImage string `yaml:"defaultImage,omitempty"`

	// InterfacePatterns maps a node kind to its interface naming pattern,
	// e.g. "nokia_srlinux" -> "e1-{n}". Kinds without an entry use "eth{n}".
	InterfacePatterns map[string]string `yaml:"interfacePatterns,omitempty"`

	// LogLevel is the minimum log level (debug, info, warn, error).
	LogLevel string `yaml:"logLevel,omitempty"`
}

// CustomNode is a reusable node template. Its properties seed a new node's
// explicit values; they are node-level values, not an extra inheritance
// layer.
type CustomNode struct {
	Name             string         `yaml:"name"`
	Kind             string         `yaml:"kind,omitempty"`
	Image            string         `yaml:"image,omitempty"`
	InterfacePattern string         `yaml:"interfacePattern,omitempty"`
	Properties       map[string]any `yaml:"properties,omitempty"`
}
