package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"topoctl/pkg/logging"
)

const nodesDir = "nodes"

var templateNamePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

// Storage persists custom node templates as one YAML file per template
// under <configDir>/nodes/.
type Storage struct {
	mu         sync.RWMutex
	configPath string // custom config path; empty means ~/.config/topoctl
}

// NewStorage creates a Storage instance using the default configuration
// directory.
func NewStorage() *Storage {
	return &Storage{}
}

// NewStorageWithPath creates a Storage instance with a custom config path.
func NewStorageWithPath(configPath string) *Storage {
	return &Storage{configPath: configPath}
}

func (s *Storage) dir() (string, error) {
	base := s.configPath
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to determine home directory: %w", err)
		}
		base = filepath.Join(home, userConfigDir)
	}
	return filepath.Join(base, nodesDir), nil
}

// Save stores a custom node template. The template name becomes the file
// name, so it is validated against a conservative pattern.
func (s *Storage) Save(node CustomNode) error {
	if !templateNamePattern.MatchString(node.Name) {
		return fmt.Errorf("invalid template name %q", node.Name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	data, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to serialize template %s: %w", node.Name, err)
	}

	path := filepath.Join(dir, node.Name+".yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", path, err)
	}

	logging.Info("Storage", "Saved node template %s to %s", node.Name, path)
	return nil
}

// Load retrieves a custom node template by name.
func (s *Storage) Load(name string) (CustomNode, error) {
	if !templateNamePattern.MatchString(name) {
		return CustomNode{}, fmt.Errorf("invalid template name %q", name)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.dir()
	if err != nil {
		return CustomNode{}, err
	}

	path := filepath.Join(dir, name+".yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return CustomNode{}, fmt.Errorf("node template %q not found", name)
		}
		return CustomNode{}, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var node CustomNode
	if err := yaml.Unmarshal(data, &node); err != nil {
		return CustomNode{}, TemplateError{
			FilePath:  path,
			FileName:  filepath.Base(path),
			ErrorType: "parse",
			Message:   err.Error(),
		}
	}
	if node.Name == "" {
		node.Name = name
	}
	return node, nil
}

// Delete removes a custom node template.
func (s *Storage) Delete(name string) error {
	if !templateNamePattern.MatchString(name) {
		return fmt.Errorf("invalid template name %q", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.dir()
	if err != nil {
		return err
	}

	path := filepath.Join(dir, name+".yaml")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("node template %q not found", name)
		}
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}

	logging.Info("Storage", "Deleted node template %s", name)
	return nil
}

// LoadAll loads every stored template, collecting per-file errors instead of
// failing on the first broken one.
func (s *Storage) LoadAll() ([]CustomNode, *TemplateErrorCollection) {
	collection := &TemplateErrorCollection{}

	names, err := s.List()
	if err != nil {
		collection.Add(TemplateError{
			ErrorType: "io",
			Message:   err.Error(),
		})
		return nil, collection
	}

	var nodes []CustomNode
	for _, name := range names {
		node, err := s.Load(name)
		if err != nil {
			var templateErr TemplateError
			if !errors.As(err, &templateErr) {
				templateErr = TemplateError{
					FileName:  name + ".yaml",
					ErrorType: "io",
					Message:   err.Error(),
				}
			}
			collection.Add(templateErr)
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes, collection
}

// List returns the names of all stored templates, sorted.
func (s *Storage) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	dir, err := s.dir()
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(name, ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}
