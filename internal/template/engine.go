// Package template renders user-supplied report templates over resolved
// node configurations.
package template

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Engine compiles and executes report templates. Templates use the standard
// text/template syntax with the sprig function library available.
type Engine struct {
	funcs template.FuncMap
}

// New creates a new template engine.
func New() *Engine {
	return &Engine{funcs: sprig.TxtFuncMap()}
}

// Render executes tpl against data and returns the output.
func (e *Engine) Render(tpl string, data any) (string, error) {
	parsed, err := template.New("report").Funcs(e.funcs).Option("missingkey=zero").Parse(tpl)
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var out strings.Builder
	if err := parsed.Execute(&out, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}
	return out.String(), nil
}

// NodeContext is the data a per-node template executes against.
type NodeContext struct {
	// Name is the node identifier.
	Name string
	// Effective is the merged configuration.
	Effective map[string]any
	// Inherited lists the property names attributable to non-node layers.
	Inherited []string
	// Explicit holds the node's own property values.
	Explicit map[string]any
}

// IsInherited reports whether a property's effective value was inherited,
// for use inside templates: {{ if .IsInherited "memory" }}...{{ end }}.
func (c NodeContext) IsInherited(key string) bool {
	for _, k := range c.Inherited {
		if k == key {
			return true
		}
	}
	return false
}
