package scene

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/zone"
)

// Part is one renderable sub-mesh of the loaded model. Bounds are the mesh extents in local
// space; the world-space box is Position + Scale⊙Bounds (parts carry no rotation).
type Part struct {
	ID             uuid.UUID
	Name           string
	Zone           zone.Kind
	Bounds         r3.Box
	Scale          r3.Vec
	Position       r3.Vec
	Material       *Material
	Visible        bool
	IsModularClone bool
}

// NewPart returns a visible authored part with unit scale. The zone is classified from name.
func NewPart(name string, bounds r3.Box, position r3.Vec) *Part {
	return &Part{
		ID:       uuid.New(),
		Name:     name,
		Zone:     zone.Classify(name),
		Bounds:   canon(bounds),
		Scale:    r3.Vec{X: 1, Y: 1, Z: 1},
		Position: position,
		Visible:  true,
	}
}

// WorldBox returns the part's axis-aligned box in model space.
func (p *Part) WorldBox() r3.Box {
	return canon(r3.Box{
		Min: r3.Add(p.Position, MulElem(p.Scale, p.Bounds.Min)),
		Max: r3.Add(p.Position, MulElem(p.Scale, p.Bounds.Max)),
	})
}

// Clone deep-copies the part, including its material, and gives the copy a fresh ID.
func (p *Part) Clone() (*Part, error) {
	var c Part
	if err := copier.CopyWithOption(&c, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("clone part %q: %w", p.Name, err)
	}
	c.ID = uuid.New()
	// Clones never share a material instance with their source.
	c.Material = p.Material.Clone()
	return &c, nil
}

func (p *Part) String() string {
	return fmt.Sprintf("%s[%s]", p.Name, p.Zone)
}
