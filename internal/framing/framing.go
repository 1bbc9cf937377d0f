// Package framing positions the camera around the assembly and derives the two dimension
// annotations from the current geometry.
package framing

import (
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/scene"
)

// Config controls framing distance and dimension labels.
type Config struct {
	DistanceFactor float64 `yaml:"distance_factor"`
	Margin         float64 `yaml:"margin"`
	// Calibration converts model units to millimetres.
	Calibration float64 `yaml:"calibration"`
	// LabelOffset is how far outside the silhouette dimension lines are drawn, in model units.
	LabelOffset float64 `yaml:"label_offset"`
	HeightRef   string  `yaml:"height_ref"`
	WidthRef    string  `yaml:"width_ref"`
}

// DefaultConfig returns the values the reference assets were calibrated with.
func DefaultConfig() Config {
	return Config{
		DistanceFactor: 1.2,
		Margin:         0.5,
		Calibration:    1000,
		LabelOffset:    0.1,
		HeightRef:      "left_frame",
		WidthRef:       "bottom_frame",
	}
}

// Framer recomputes camera placement and annotations.
type Framer struct {
	cfg Config
	log *zap.Logger
}

// New returns a framer.
func New(cfg Config, log *zap.Logger) *Framer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Framer{cfg: cfg, log: log}
}

// Config returns the active settings.
func (f *Framer) Config() Config {
	return f.cfg
}

// ReframeCamera moves cam along its current view direction so the visible assembly fits,
// and retargets it at the assembly centre. It reports false and leaves cam alone when
// nothing is visible yet.
func (f *Framer) ReframeCamera(m *scene.Model, cam *scene.Camera) bool {
	if m.Empty() || cam == nil {
		return false
	}
	box, ok := m.VisibleBounds()
	if !ok {
		return false
	}
	center := scene.Center(box)
	distance := scene.MaxComponent(scene.Size(box))*f.cfg.DistanceFactor + f.cfg.Margin

	dir := cam.ViewDirection()
	cam.Position = r3.Add(center, r3.Scale(distance, dir))
	cam.Target = center
	return true
}

// Distance returns how far the camera sits from its target.
func Distance(cam *scene.Camera) float64 {
	return r3.Norm(r3.Sub(cam.Position, cam.Target))
}

// ComputeDimensionLabels replaces m.Annotations with a height and a width line measured on the
// two reference parts. A missing reference part drops its label with a warning.
func (f *Framer) ComputeDimensionLabels(m *scene.Model) {
	if m == nil {
		return
	}
	m.Annotations = m.Annotations[:0]
	silhouette, ok := m.VisibleBounds()
	if !ok {
		return
	}
	front := silhouette.Max.Z

	if ref := m.Find(f.cfg.HeightRef); ref != nil {
		rb := ref.WorldBox()
		x := silhouette.Min.X - f.cfg.LabelOffset
		m.Annotations = append(m.Annotations, f.annotation(scene.AnnotationHeight,
			r3.Vec{X: x, Y: rb.Min.Y, Z: front},
			r3.Vec{X: x, Y: rb.Max.Y, Z: front},
			rb.Max.Y-rb.Min.Y))
	} else {
		f.log.Warn("height reference part missing; no height label", zap.String("part", f.cfg.HeightRef))
	}

	if ref := m.Find(f.cfg.WidthRef); ref != nil {
		rb := ref.WorldBox()
		y := silhouette.Min.Y - f.cfg.LabelOffset
		m.Annotations = append(m.Annotations, f.annotation(scene.AnnotationWidth,
			r3.Vec{X: rb.Min.X, Y: y, Z: front},
			r3.Vec{X: rb.Max.X, Y: y, Z: front},
			rb.Max.X-rb.Min.X))
	} else {
		f.log.Warn("width reference part missing; no width label", zap.String("part", f.cfg.WidthRef))
	}
}

func (f *Framer) annotation(kind scene.AnnotationKind, from, to r3.Vec, extent float64) scene.Annotation {
	mm := ToMillimeters(extent, f.cfg.Calibration)
	return scene.Annotation{
		Kind:        kind,
		From:        from,
		To:          to,
		Label:       r3.Scale(0.5, r3.Add(from, to)),
		Millimeters: mm,
		Text:        fmt.Sprintf("%.0f mm", mm),
	}
}

// ToMillimeters converts a model-space length, rounded to the nearest millimetre.
func ToMillimeters(v, calibration float64) float64 {
	return math.Round(v * calibration)
}
