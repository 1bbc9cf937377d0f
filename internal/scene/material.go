package scene

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Material is the surface description attached to a part. Every part owns its own instance so a
// zone can be recoloured without touching parts of other zones.
type Material struct {
	Name         string  `yaml:"name"`
	Color        string  `yaml:"color"` // #rrggbb
	Metalness    float64 `yaml:"metalness,omitempty"`
	Roughness    float64 `yaml:"roughness,omitempty"`
	Opacity      float64 `yaml:"opacity,omitempty"`
	Transmission float64 `yaml:"transmission,omitempty"`
	Transparent  bool    `yaml:"transparent,omitempty"`
}

// Clone returns a deep copy of m. A nil material clones to nil.
func (m *Material) Clone() *Material {
	if m == nil {
		return nil
	}
	var c Material
	if err := copier.CopyWithOption(&c, m, copier.Option{DeepCopy: true}); err != nil {
		// Material only holds value fields; fall back to a plain struct copy.
		c = *m
	}
	return &c
}

// RGB returns the material colour as 8-bit components. Malformed colours read as mid grey.
func (m *Material) RGB() (r, g, b uint8) {
	if m == nil {
		return 128, 128, 128
	}
	var v uint32
	if _, err := fmt.Sscanf(m.Color, "#%06x", &v); err != nil {
		return 128, 128, 128
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v)
}
