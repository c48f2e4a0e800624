// Package gqlgen wires synthesized filter input types into a gqlgen
// project: it reads, updates and writes the subset of gqlgen.yml needed to
// publish an input type's schema file and bind it to a Go model.
package gqlgen

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/taobojlen/filterql"
)

// Config represents the subset of gqlgen.yml this package reads and
// updates. Unknown keys are not preserved; point it at a dedicated
// configuration file when the project config carries more.
type Config struct {
	// SchemaFilename is the path(s) to the GraphQL schema file(s).
	SchemaFilename StringList `yaml:"schema,omitempty"`

	// Models maps a GraphQL type name to its model configuration.
	Models map[string]TypeMapEntry `yaml:"models,omitempty"`
}

// TypeMapEntry is the configuration for a single GraphQL type.
type TypeMapEntry struct {
	// Model is the Go model(s) to bind to this GraphQL type.
	Model StringList `yaml:"model,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of
// strings.
type StringList []string

// UnmarshalYAML implements yaml.Unmarshaler for StringList.
func (s *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*s = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return err
		}
		*s = list
		return nil
	default:
		return fmt.Errorf("expected string or list, got %v", node.Kind)
	}
}

// MarshalYAML implements yaml.Marshaler for StringList.
func (s StringList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}
	return []string(s), nil
}

// LoadConfig loads a gqlgen.yml configuration file. A missing file yields
// an empty configuration.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{Models: make(map[string]TypeMapEntry)}, nil
		}
		return nil, fmt.Errorf("read gqlgen config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse gqlgen config: %w", err)
	}
	if cfg.Models == nil {
		cfg.Models = make(map[string]TypeMapEntry)
	}
	return &cfg, nil
}

// SaveConfig saves a gqlgen.yml configuration file, creating parent
// directories as needed.
func SaveConfig(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal gqlgen config: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0o644)
}

// AddSchemaPath adds a schema path to the configuration if not already
// present.
func (c *Config) AddSchemaPath(path string) {
	if !slices.Contains(c.SchemaFilename, path) {
		c.SchemaFilename = append(c.SchemaFilename, path)
	}
}

// SetModel sets the model binding for a GraphQL type.
func (c *Config) SetModel(typeName, modelPath string) {
	if c.Models == nil {
		c.Models = make(map[string]TypeMapEntry)
	}
	entry := c.Models[typeName]
	if !slices.Contains(entry.Model, modelPath) {
		entry.Model = append(entry.Model, modelPath)
	}
	c.Models[typeName] = entry
}

// BindInputType writes the input type's SDL to schemaPath, registers the
// schema file in the configuration and, when goModel is non-empty, binds
// the type name to that Go model.
func (c *Config) BindInputType(t *filterql.InputType, schemaPath, goModel string) error {
	if err := os.WriteFile(schemaPath, []byte(t.SDL()), 0o644); err != nil {
		return fmt.Errorf("write input type schema: %w", err)
	}
	c.AddSchemaPath(schemaPath)
	if goModel != "" {
		c.SetModel(t.Name(), goModel)
	}
	return nil
}
