// Package config provides configuration management for topoctl.
//
// Configuration is loaded from a single directory, ~/.config/topoctl by
// default, overridable with the --config-path flag. The directory contains:
//   - config.yaml (main configuration file)
//   - nodes/ (custom node templates, one YAML file per template)
//
// The main configuration carries editor defaults: the kind assigned to new
// nodes, the default container image, and per-kind interface naming
// patterns. Custom node templates are reusable node definitions that seed a
// new node's explicit properties.
//
// A missing config.yaml is not an error; the built-in defaults apply. A
// malformed one is.
package config
