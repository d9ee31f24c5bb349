package entity

import (
	"fmt"
	"io/fs"
	"path"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Spec is the on-disk form of extension entity kinds: a YAML document listing
// the symbols a game adds beyond the built-in alphabet.
type Spec struct {
	Entities []EntitySpec `yaml:"entities"`
}

// EntitySpec is one entry of a Spec. Symbol must be a single character.
type EntitySpec struct {
	Symbol string `yaml:"symbol"`
	Name   string `yaml:"name"`
}

func (e EntitySpec) descriptor() (Descriptor, error) {
	if utf8.RuneCountInString(e.Symbol) != 1 {
		return Descriptor{}, fmt.Errorf("entity: spec symbol %q is not a single character", e.Symbol)
	}
	sym, _ := utf8.DecodeRuneInString(e.Symbol)
	return Descriptor{Symbol: sym, Name: e.Name}, nil
}

// LoadSpec parses a spec document.
func LoadSpec(data []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("entity: unmarshal spec: %w", err)
	}
	return &spec, nil
}

// RegisterSpec adds every entry of a spec to the registry.
func RegisterSpec(reg *Registry, spec *Spec) error {
	for _, e := range spec.Entities {
		d, err := e.descriptor()
		if err != nil {
			return err
		}
		if err := reg.Register(d); err != nil {
			return err
		}
	}
	return nil
}

// RegisterSpecs walks fsys, loading every .yaml/.yml spec and registering its
// entries. Files are visited in lexical order so duplicate-symbol errors are
// deterministic.
func RegisterSpecs(fsys fs.FS, reg *Registry) error {
	return fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSpecFile(p) {
			return nil
		}
		data, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("entity: read spec %s: %w", p, err)
		}
		spec, err := LoadSpec(data)
		if err != nil {
			return fmt.Errorf("entity: spec %s: %w", p, err)
		}
		if err := RegisterSpec(reg, spec); err != nil {
			return fmt.Errorf("entity: spec %s: %w", p, err)
		}
		return nil
	})
}

func isSpecFile(p string) bool {
	ext := strings.ToLower(path.Ext(p))
	return ext == ".yaml" || ext == ".yml"
}
