package params

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// yamlFile is the on-disk layout of a decoded parameter dump:
//
//	params:
//	  - id: 1
//	    type: i
//	    default_int: -1
type yamlFile struct {
	Params []yamlParam `yaml:"params"`
}

type yamlParam struct {
	ID            int    `yaml:"id"`
	Type          string `yaml:"type"`
	DefaultInt    int32  `yaml:"default_int,omitempty"`
	DefaultString string `yaml:"default_string,omitempty"`
	AutoDisable   *bool  `yaml:"auto_disable,omitempty"`
}

// YAMLStore reads decoded parameter records from a YAML document.
type YAMLStore struct {
	data []byte
	path string
}

// NewYAMLStore wraps YAML content; path is used only for error messages.
func NewYAMLStore(data []byte, path string) *YAMLStore {
	return &YAMLStore{data: data, path: path}
}

// OpenYAML reads a YAML parameter dump from disk.
func OpenYAML(path string) (*YAMLStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params %s: %w", path, err)
	}
	return NewYAMLStore(data, path), nil
}

func (s *YAMLStore) Records() ([]Record, error) {
	var f yamlFile
	if err := yaml.Unmarshal(s.data, &f); err != nil {
		return nil, fmt.Errorf("parsing params %s: %w", s.path, err)
	}
	out := make([]Record, 0, len(f.Params))
	for i, p := range f.Params {
		rec := Record{
			ID:            p.ID,
			DefaultInt:    p.DefaultInt,
			DefaultString: p.DefaultString,
			AutoDisable:   true,
		}
		if p.AutoDisable != nil {
			rec.AutoDisable = *p.AutoDisable
		}
		if p.Type != "" {
			r, size := utf8.DecodeRuneInString(p.Type)
			if size != len(p.Type) {
				return nil, fmt.Errorf("%s: params[%d]: type %q must be a single character", s.path, i, p.Type)
			}
			rec.StackType = r
		}
		out = append(out, rec)
	}
	return out, nil
}
