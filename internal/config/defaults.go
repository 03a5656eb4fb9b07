package config

const (
	// DefaultKind is the node kind assigned when nothing else is configured.
	DefaultKind = "nokia_srlinux"

	// DefaultImage pairs with DefaultKind.
	DefaultImage = "ghcr.io/nokia/srlinux:latest"
)

// GetDefaultConfig returns the built-in default configuration.
func GetDefaultConfig() Config {
	return Config{
		DefaultKind:  DefaultKind,
		DefaultImage: DefaultImage,
		InterfacePatterns: map[string]string{
			"nokia_srlinux": "e1-{n}",
			"nokia_sros":    "eth{n}",
			"arista_ceos":   "eth{n}",
			"juniper_crpd":  "eth{n}",
			"cisco_xrd":     "Gi0-0-0-{n}",
			"linux":         "eth{n}",
			"generic_vm":    "eth{n}",
			"openbsd":       "vio{n}",
			"freebsd":       "vtnet{n}",
		},
		LogLevel: "info",
	}
}
