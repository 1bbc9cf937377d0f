package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/zone"
)

func unitBox() r3.Box {
	return r3.Box{Min: r3.Vec{X: -0.5, Y: -0.5, Z: -0.5}, Max: r3.Vec{X: 0.5, Y: 0.5, Z: 0.5}}
}

func TestPart_WorldBox(t *testing.T) {
	p := NewPart("left_frame", unitBox(), r3.Vec{X: 1, Y: 2, Z: 0})
	p.Scale = r3.Vec{X: 2, Y: 4, Z: 1}

	box := p.WorldBox()
	assert.Equal(t, r3.Vec{X: 0, Y: 0, Z: -0.5}, box.Min)
	assert.Equal(t, r3.Vec{X: 2, Y: 4, Z: 0.5}, box.Max)
	assert.Equal(t, zone.Frame, p.Zone)
}

func TestPart_WorldBox_NegativeScale(t *testing.T) {
	p := NewPart("glass", unitBox(), r3.Vec{})
	p.Scale = r3.Vec{X: -2, Y: 1, Z: 1}

	box := p.WorldBox()
	assert.Equal(t, -1.0, box.Min.X)
	assert.Equal(t, 1.0, box.Max.X)
}

func TestPart_CloneIsolatesMaterial(t *testing.T) {
	p := NewPart("outside_vert_module", unitBox(), r3.Vec{X: 3})
	p.Material = &Material{Name: "White", Color: "#f4f4f4"}

	c, err := p.Clone()
	require.NoError(t, err)

	assert.NotEqual(t, p.ID, c.ID)
	assert.Equal(t, p.Name, c.Name)
	assert.Equal(t, p.Position, c.Position)
	require.NotNil(t, c.Material)
	assert.NotSame(t, p.Material, c.Material)

	c.Material.Color = "#000000"
	assert.Equal(t, "#f4f4f4", p.Material.Color)
}

func TestMaterial_RGB(t *testing.T) {
	r, g, b := (&Material{Color: "#a75b1f"}).RGB()
	assert.Equal(t, []uint8{0xa7, 0x5b, 0x1f}, []uint8{r, g, b})

	r, g, b = (&Material{Color: "teal"}).RGB()
	assert.Equal(t, []uint8{128, 128, 128}, []uint8{r, g, b})
}

func TestModel_BoundsAndCenter(t *testing.T) {
	m := NewModel("w")
	m.Add(
		NewPart("left_frame", unitBox(), r3.Vec{X: 0, Y: 0}),
		NewPart("right_frame", unitBox(), r3.Vec{X: 4, Y: 0}),
	)
	box, ok := m.AuthoredBounds()
	require.True(t, ok)
	assert.Equal(t, r3.Vec{X: 5, Y: 1, Z: 1}, Size(box))

	m.Center()
	box, _ = m.AuthoredBounds()
	assert.InDelta(t, 0, Center(box).X, 1e-12)
	assert.InDelta(t, -2.0, m.Find("LEFT_FRAME").Position.X, 1e-12)
}

func TestModel_VisibleBoundsSkipsHidden(t *testing.T) {
	m := NewModel("w")
	far := NewPart("outside_module", unitBox(), r3.Vec{X: 100})
	far.Visible = false
	m.Add(NewPart("left_frame", unitBox(), r3.Vec{}), far)

	box, ok := m.VisibleBounds()
	require.True(t, ok)
	assert.Equal(t, 0.5, box.Max.X)

	box, _ = m.AuthoredBounds()
	assert.Equal(t, 100.5, box.Max.X)
}

func TestModel_RemoveIfAndFind(t *testing.T) {
	m := NewModel("w")
	clone := NewPart("left_frame", unitBox(), r3.Vec{})
	clone.IsModularClone = true
	m.Add(clone, NewPart("left_frame", unitBox(), r3.Vec{}), NewPart("glass", unitBox(), r3.Vec{}))

	assert.False(t, m.Find("left_frame").IsModularClone)
	assert.Len(t, m.Clones(), 1)

	n := m.RemoveIf(func(p *Part) bool { return p.IsModularClone })
	assert.Equal(t, 1, n)
	assert.Len(t, m.Parts, 2)
	assert.Len(t, m.Zones()[zone.Frame], 1)
	assert.Nil(t, m.Find("missing"))
	assert.True(t, NewModel("x").Empty())
}

func TestCamera_ViewDirection(t *testing.T) {
	c := NewCamera()
	d := c.ViewDirection()
	assert.InDelta(t, 1, r3.Norm(d), 1e-12)

	c.Position = c.Target
	assert.Equal(t, r3.Vec{Z: 1}, c.ViewDirection())
}
