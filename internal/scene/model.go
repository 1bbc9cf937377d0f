package scene

import (
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/zone"
)

// Model is the loaded assembly: the authored parts, the modular clones generated from them
// and the dimension annotations derived from the current geometry. Part order is preserved.
type Model struct {
	Name        string
	Parts       []*Part
	Annotations []Annotation
}

// NewModel returns an empty model.
func NewModel(name string) *Model {
	return &Model{Name: name}
}

// Empty reports whether the model has no parts (e.g. the asset failed to load).
func (m *Model) Empty() bool {
	return m == nil || len(m.Parts) == 0
}

// Add appends parts to the model.
func (m *Model) Add(parts ...*Part) {
	m.Parts = append(m.Parts, parts...)
}

// Find returns the authored part whose name equals name (case-insensitive), or nil.
func (m *Model) Find(name string) *Part {
	for _, p := range m.Parts {
		if !p.IsModularClone && strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// RemoveIf drops every part for which fn returns true and returns how many were removed.
func (m *Model) RemoveIf(fn func(*Part) bool) int {
	kept := m.Parts[:0]
	removed := 0
	for _, p := range m.Parts {
		if fn(p) {
			removed++
			continue
		}
		kept = append(kept, p)
	}
	// Clear the tail so removed parts can be collected.
	for i := len(kept); i < len(m.Parts); i++ {
		m.Parts[i] = nil
	}
	m.Parts = kept
	return removed
}

// Authored returns the parts that came from the asset (no modular clones).
func (m *Model) Authored() []*Part {
	return m.filter(func(p *Part) bool { return !p.IsModularClone })
}

// Clones returns the live modular clones.
func (m *Model) Clones() []*Part {
	return m.filter(func(p *Part) bool { return p.IsModularClone })
}

// InZone returns every part (authored and clones) tagged with zone k.
func (m *Model) InZone(k zone.Kind) []*Part {
	return m.filter(func(p *Part) bool { return p.Zone == k })
}

// Zones groups the authored parts by zone. Zones without parts are absent.
func (m *Model) Zones() map[zone.Kind][]*Part {
	out := make(map[zone.Kind][]*Part)
	for _, p := range m.Parts {
		if p.IsModularClone {
			continue
		}
		out[p.Zone] = append(out[p.Zone], p)
	}
	return out
}

func (m *Model) filter(keep func(*Part) bool) []*Part {
	var out []*Part
	for _, p := range m.Parts {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// Bounds returns the union of the world boxes of parts. ok is false when parts is empty.
func Bounds(parts []*Part) (box r3.Box, ok bool) {
	for _, p := range parts {
		if !ok {
			box, ok = p.WorldBox(), true
			continue
		}
		box = union(box, p.WorldBox())
	}
	return box, ok
}

// VisibleBounds is the box of everything currently drawn, clones included.
func (m *Model) VisibleBounds() (r3.Box, bool) {
	return Bounds(m.filter(func(p *Part) bool { return p.Visible }))
}

// AuthoredBounds is the box of every authored part regardless of visibility, so hiding a
// modular template does not change the measured extent.
func (m *Model) AuthoredBounds() (r3.Box, bool) {
	return Bounds(m.Authored())
}

// Center translates all parts so the box of the authored parts is centred on the origin.
// Must run before any baseline is captured.
func (m *Model) Center() {
	box, ok := m.AuthoredBounds()
	if !ok {
		return
	}
	c := Center(box)
	for _, p := range m.Parts {
		p.Position = r3.Sub(p.Position, c)
	}
}
