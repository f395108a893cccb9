package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadJSON loads a scene from a JSON reader.
func LoadJSON(r io.Reader) (*Scene, error) {
	var s Scene
	dec := json.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadYAML loads a scene from a YAML reader.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile loads and validates a scene from a .yaml, .yml or .json file.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var s *Scene
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		s, err = LoadYAML(f)
	case ".json":
		s, err = LoadJSON(f)
	default:
		return nil, fmt.Errorf("unsupported scene file extension %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode scene %s: %w", path, err)
	}

	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scene %s: %w", path, err)
	}
	return s, nil
}
