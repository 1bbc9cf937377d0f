// Package materials holds the named material library loaded from the materials asset and the
// display colour catalog the configurator offers.
package materials

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"frame-configurator/internal/scene"
)

// ErrUnknownMaterial is returned when a name matches neither a library material nor a catalog colour.
var ErrUnknownMaterial = errors.New("unknown material")

// Library maps trimmed material names to materials. It stores its own clones and hands out
// fresh clones, so no two parts ever share an instance.
type Library struct {
	byName map[string]*scene.Material
	order  []string
}

// NewLibrary returns an empty library.
func NewLibrary() *Library {
	return &Library{byName: make(map[string]*scene.Material)}
}

// Add stores a clone of m under its trimmed name. The first material with a given name wins;
// Add reports false for unnamed materials and duplicates.
func (l *Library) Add(m *scene.Material) bool {
	if m == nil {
		return false
	}
	name := strings.TrimSpace(m.Name)
	if name == "" {
		return false
	}
	if _, dup := l.byName[name]; dup {
		return false
	}
	c := m.Clone()
	c.Name = name
	l.byName[name] = c
	l.order = append(l.order, name)
	return true
}

// Lookup returns a fresh clone of the named material. name may be a library name or a
// catalog display name ("Cream" resolves to "Creme").
func (l *Library) Lookup(name string) (*scene.Material, error) {
	key := strings.TrimSpace(name)
	if m, ok := l.byName[key]; ok {
		return m.Clone(), nil
	}
	if s, ok := SwatchFor(key); ok {
		if m, ok := l.byName[s.Library]; ok {
			return m.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
}

// Names returns the library names in load order.
func (l *Library) Names() []string {
	out := make([]string, len(l.order))
	copy(out, l.order)
	return out
}

// Len is the number of distinct materials.
func (l *Library) Len() int {
	return len(l.byName)
}

// Option is a selectable colour derived from the loaded library.
type Option struct {
	Name string
	RAL  string
	Hex  string
}

// Options lists every library material as a selectable colour, sorted by name. The RAL code
// comes from the catalog when the material is listed there.
func (l *Library) Options() []Option {
	ral := make(map[string]string, len(Catalog))
	for _, s := range Catalog {
		ral[s.Library] = s.RAL
	}
	out := make([]Option, 0, len(l.byName))
	for name, m := range l.byName {
		code, ok := ral[name]
		if !ok {
			code = strings.ReplaceAll(name, " ", "")
		}
		out = append(out, Option{Name: name, RAL: code, Hex: m.Color})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type libraryFile struct {
	Materials []scene.Material `yaml:"materials"`
}

// Parse decodes a materials document.
func Parse(data []byte) (*Library, error) {
	var f libraryFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse materials: %w", err)
	}
	l := NewLibrary()
	for i := range f.Materials {
		l.Add(&f.Materials[i])
	}
	return l, nil
}

// Load reads the materials document at path.
func Load(path string) (*Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read materials: %w", err)
	}
	return Parse(data)
}

// Glass returns the fixed transmissive material given to every glass-zone part.
func Glass() *scene.Material {
	return &scene.Material{
		Name:         "Glass",
		Color:        "#ffffff",
		Roughness:    0.01,
		Opacity:      1,
		Transmission: 1,
		Transparent:  true,
	}
}
