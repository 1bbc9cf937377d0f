// Package scenetest builds small window-frame assemblies for tests.
package scenetest

import (
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/scene"
)

// Box returns a box of the given size centred on the origin.
func Box(w, h, d float64) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: -w / 2, Y: -h / 2, Z: -d / 2},
		Max: r3.Vec{X: w / 2, Y: h / 2, Z: d / 2},
	}
}

// WindowFrame returns a 1×1×0.1 window: four 0.1-wide frame edges with the bottom-left corner
// at the origin, a glass pane, an inside sill, two modular templates and a handle.
//
//	left_frame    x 0.0..0.1  y 0..1
//	right_frame   x 0.9..1.0  y 0..1
//	top_frame     x 0..1      y 0.9..1.0
//	bottom_frame  x 0..1      y 0.0..0.1
func WindowFrame() *scene.Model {
	m := scene.NewModel("window_frame")
	m.Add(
		scene.NewPart("left_frame", Box(0.1, 1, 0.1), r3.Vec{X: 0.05, Y: 0.5}),
		scene.NewPart("right_frame", Box(0.1, 1, 0.1), r3.Vec{X: 0.95, Y: 0.5}),
		scene.NewPart("top_frame", Box(1, 0.1, 0.1), r3.Vec{X: 0.5, Y: 0.95}),
		scene.NewPart("bottom_frame", Box(1, 0.1, 0.1), r3.Vec{X: 0.5, Y: 0.05}),
		scene.NewPart("glass_pane", Box(0.8, 0.8, 0.01), r3.Vec{X: 0.5, Y: 0.5}),
		scene.NewPart("frame_inside_sill", Box(0.8, 0.02, 0.08), r3.Vec{X: 0.5, Y: 0.11}),
		scene.NewPart("outside_vert_module", Box(0.04, 0.8, 0.02), r3.Vec{X: 0.5, Y: 0.5, Z: 0.04}),
		scene.NewPart("outside_horiz_module", Box(0.8, 0.04, 0.02), r3.Vec{X: 0.5, Y: 0.5, Z: 0.04}),
		scene.NewPart("handle", Box(0.02, 0.1, 0.03), r3.Vec{X: 0.92, Y: 0.5, Z: 0.06}),
	)
	for _, p := range m.Parts {
		p.Material = &scene.Material{Name: "White", Color: "#f4f4f4"}
	}
	return m
}
