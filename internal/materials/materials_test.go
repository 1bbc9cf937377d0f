package materials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frame-configurator/internal/scene"
)

const doc = `
materials:
  - name: " White "
    color: "#f4f4f4"
    roughness: 0.6
  - name: White
    color: "#000000"
  - name: Creme
    color: "#fdf4d3"
  - name: ""
    color: "#123456"
  - name: Houtnerf
    color: "#8b5a2b"
`

func TestParse_FirstTrimmedNameWins(t *testing.T) {
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t, []string{"White", "Creme", "Houtnerf"}, l.Names())
	assert.Equal(t, 3, l.Len())

	m, err := l.Lookup("White")
	require.NoError(t, err)
	assert.Equal(t, "#f4f4f4", m.Color)
	assert.Equal(t, 0.6, m.Roughness)
}

func TestLookup_ReturnsFreshClones(t *testing.T) {
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	a, err := l.Lookup("Creme")
	require.NoError(t, err)
	b, err := l.Lookup("Creme")
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	a.Color = "#ff0000"
	assert.Equal(t, "#fdf4d3", b.Color)

	c, _ := l.Lookup("Creme")
	assert.Equal(t, "#fdf4d3", c.Color, "library copy is untouched")
}

func TestLookup_DisplayNames(t *testing.T) {
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	m, err := l.Lookup("Cream")
	require.NoError(t, err)
	assert.Equal(t, "Creme", m.Name)

	_, err = l.Lookup("Anthracite")
	assert.ErrorIs(t, err, ErrUnknownMaterial, "catalog colour without a library material")

	_, err = l.Lookup("Plaid")
	assert.ErrorIs(t, err, ErrUnknownMaterial)
}

func TestAdd_StoresClone(t *testing.T) {
	l := NewLibrary()
	src := &scene.Material{Name: "Zwart", Color: "#0a0a0a"}
	require.True(t, l.Add(src))
	assert.False(t, l.Add(src))
	assert.False(t, l.Add(nil))

	src.Color = "#ffffff"
	m, err := l.Lookup("Black")
	require.NoError(t, err)
	assert.Equal(t, "#0a0a0a", m.Color)
}

func TestOptions(t *testing.T) {
	l, err := Parse([]byte(doc))
	require.NoError(t, err)

	opts := l.Options()
	require.Len(t, opts, 3)
	assert.Equal(t, Option{Name: "Creme", RAL: "9001", Hex: "#fdf4d3"}, opts[0])
	assert.Equal(t, "Houtnerf", opts[1].RAL, "unlisted names fall back to the squashed name")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "materials.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Parse([]byte("materials: ["))
	assert.Error(t, err)
}

func TestCatalog(t *testing.T) {
	assert.Len(t, Catalog, 15)

	s, ok := SwatchFor("golden oak")
	require.True(t, ok)
	assert.Equal(t, "8003", s.RAL)
	assert.Equal(t, "Golden Oak", s.Library)

	assert.Equal(t, "Ivory", DisplayName("Licht Ivoor"))
	assert.Equal(t, "Custom", DisplayName("Custom"))
}

func TestGlass(t *testing.T) {
	g := Glass()
	assert.True(t, g.Transparent)
	assert.Equal(t, 1.0, g.Transmission)
	assert.NotSame(t, g, Glass())
}
