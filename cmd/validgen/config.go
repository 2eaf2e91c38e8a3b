package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the validgen.yml configuration.
type FileConfig struct {
	// Schema is the path(s) to the SDL schema file(s).
	Schema StringList `yaml:"schema,omitempty"`

	// Target is the directory generated files are written to.
	Target string `yaml:"target,omitempty"`

	// Package is the import path of the generated package.
	Package string `yaml:"package,omitempty"`

	// ModelPackage is the import path of the native model package used in
	// declaration type annotations.
	ModelPackage string `yaml:"model_package,omitempty"`

	// Header overrides the generated-file header comment.
	Header string `yaml:"header,omitempty"`
}

// StringList is a YAML type that can be either a string or a list of strings.
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

// LoadConfig loads a validgen.yml configuration file. A missing file is
// not an error; flags can supply everything.
func LoadConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &FileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
