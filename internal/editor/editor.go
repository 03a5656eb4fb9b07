// Package editor provides the interactive node editor REPL. It is the CLI
// stand-in for the original form-based node editor: explicit values are
// edited one property at a time, and the inherited markers are recomputed
// after every change.
package editor

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chzyer/readline"
	"gopkg.in/yaml.v3"

	"topoctl/internal/formatting"
	"topoctl/internal/resolve"
	"topoctl/internal/topology"
	"topoctl/pkg/logging"
)

// Editor is an interactive session over one node of a topology document.
type Editor struct {
	doc       *topology.Document
	node      string
	resolver  *resolve.Resolver
	formatter formatting.Formatter

	out   io.Writer
	dirty bool
}

// New creates an editor session for the named node. The node must exist in
// the document.
func New(doc *topology.Document, node string, out io.Writer) (*Editor, error) {
	if _, ok := doc.Node(node); !ok {
		return nil, fmt.Errorf("node %q not found in %s", node, doc.Path())
	}
	return &Editor{
		doc:       doc,
		node:      node,
		resolver:  resolve.NewResolver(doc.TopologyConfig()),
		formatter: formatting.NewTableFormatter(formatting.Options{}),
		out:       out,
	}, nil
}

// Run enters the readline loop until quit or EOF. Mutations stay in memory
// until an explicit save.
func (e *Editor) Run() error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          e.prompt(),
		AutoComplete:    e.completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return fmt.Errorf("failed to create readline instance: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(e.out, "Editing node %s. Type 'help' for commands, TAB to complete.\n", e.node)
	e.show()

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		quit, err := e.Dispatch(strings.TrimSpace(line))
		if err != nil {
			fmt.Fprintf(e.out, "error: %v\n", err)
		}
		if quit {
			break
		}
	}

	if e.dirty {
		fmt.Fprintln(e.out, "Discarding unsaved changes.")
	}
	return nil
}

// Dispatch executes one editor command line. It returns true when the
// session should end.
func (e *Editor) Dispatch(line string) (bool, error) {
	if line == "" {
		return false, nil
	}
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "show":
		e.show()
	case "set":
		if len(args) < 2 {
			return false, fmt.Errorf("usage: set <property> <value>")
		}
		return false, e.set(args[0], strings.Join(args[1:], " "))
	case "unset":
		if len(args) != 1 {
			return false, fmt.Errorf("usage: unset <property>")
		}
		return false, e.unset(args[0])
	case "save":
		if err := e.doc.Save(); err != nil {
			return false, err
		}
		e.dirty = false
		fmt.Fprintf(e.out, "Saved %s\n", e.doc.Path())
	case "quit", "exit":
		return true, nil
	case "help":
		e.help()
	default:
		return false, fmt.Errorf("unknown command %q (try 'help')", cmd)
	}
	return false, nil
}

// set parses the value as YAML so numbers, booleans and flow collections
// come out typed, then stores it as an explicit node property.
func (e *Editor) set(key, raw string) error {
	var value any
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return fmt.Errorf("could not parse value %q: %w", raw, err)
	}

	node, _ := e.doc.Node(e.node)
	node[key] = value
	e.doc.SetNode(e.node, node)
	e.dirty = true
	logging.Debug("Editor", "Set %s.%s = %v", e.node, key, value)
	e.show()
	return nil
}

func (e *Editor) unset(key string) error {
	node, _ := e.doc.Node(e.node)
	if _, ok := node[key]; !ok {
		return fmt.Errorf("property %q is not explicitly set", key)
	}
	delete(node, key)
	e.doc.SetNode(e.node, node)
	e.dirty = true
	e.show()
	return nil
}

func (e *Editor) show() {
	node, _ := e.doc.Node(e.node)
	report := formatting.ResolveReport{
		Node:      e.node,
		Effective: e.resolver.Resolve(node),
		Inherited: e.resolver.Inherited(node),
	}
	fmt.Fprint(e.out, e.formatter.FormatResolveReport(report))
}

func (e *Editor) help() {
	fmt.Fprint(e.out, `Commands:
  show               display the effective configuration
  set <prop> <val>   set an explicit property (value parsed as YAML)
  unset <prop>       remove an explicit property
  save               write the document back to disk
  quit               leave the editor
`)
}

func (e *Editor) prompt() string {
	return fmt.Sprintf("topoctl(%s)> ", e.node)
}

// completer offers the editor commands plus the known property names of the
// node's effective configuration.
func (e *Editor) completer() readline.AutoCompleter {
	node, _ := e.doc.Node(e.node)
	effective := e.resolver.Resolve(node)

	keys := make([]string, 0, len(effective))
	for k := range effective {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	props := make([]readline.PrefixCompleterInterface, len(keys))
	for i, k := range keys {
		props[i] = readline.PcItem(k)
	}

	return readline.NewPrefixCompleter(
		readline.PcItem("show"),
		readline.PcItem("set", props...),
		readline.PcItem("unset", props...),
		readline.PcItem("save"),
		readline.PcItem("quit"),
		readline.PcItem("help"),
	)
}
