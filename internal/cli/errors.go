// Package cli holds shared helpers for topoctl's command layer: typed
// errors that map to exit codes and progress display for long operations.
package cli

import "fmt"

// ValidationError indicates that one or more topology files failed
// validation. Commands surface it so the root command can map it to the
// validation exit code.
type ValidationError struct {
	// Path is the offending topology file.
	Path string
	// Problems lists the individual findings.
	Problems []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("%s: %s", e.Path, e.Problems[0])
	}
	return fmt.Sprintf("%s: %d problems found", e.Path, len(e.Problems))
}

// NodeNotFoundError indicates a node name that does not exist in the
// topology document.
type NodeNotFoundError struct {
	Node string
	Path string
}

// Error implements the error interface.
func (e *NodeNotFoundError) Error() string {
	return fmt.Sprintf("node %q not found in %s", e.Node, e.Path)
}
