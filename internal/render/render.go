package render

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/scene"
)

const (
	gridSlices  = 20
	gridSpacing = 0.25
	labelSize   = 20
	// Boxes thinner than this are drawn at this size so flat parts stay visible.
	minExtent = 0.002
)

var (
	annotationColor = rl.NewColor(30, 30, 30, 255)
	wireColor       = rl.NewColor(60, 60, 60, 90)
	labelBgColor    = rl.NewColor(255, 255, 255, 220)
)

// Vector converts a model-space vector to raylib's float32 vector.
func Vector(v r3.Vec) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// Camera converts the framed camera to a raylib perspective camera.
func Camera(c *scene.Camera) rl.Camera3D {
	return rl.Camera3D{
		Position:   Vector(c.Position),
		Target:     Vector(c.Target),
		Up:         Vector(c.Up),
		Fovy:       float32(c.Fovy),
		Projection: rl.CameraPerspective,
	}
}

// Color returns the draw colour of a material. Transmissive materials get a matching alpha.
func Color(m *scene.Material) rl.Color {
	r, g, b := m.RGB()
	a := float32(1)
	if m != nil && m.Transparent {
		a = math32.Max(0.15, 1-0.85*float32(m.Transmission))
		if m.Opacity > 0 {
			a *= float32(m.Opacity)
		}
	}
	return rl.NewColor(r, g, b, uint8(math32.Round(a*255)))
}

// Renderer draws the assembly, its dimension lines and their labels.
type Renderer struct {
	Grid bool
}

// New returns a Renderer with the floor grid on or off.
func New(grid bool) *Renderer {
	return &Renderer{Grid: grid}
}

// Draw runs the 3D pass followed by the 2D label pass. Call between BeginDrawing and EndDrawing.
func (r *Renderer) Draw(m *scene.Model, cam *scene.Camera) {
	rc := Camera(cam)
	rl.BeginMode3D(rc)
	if r.Grid {
		rl.DrawGrid(gridSlices, gridSpacing)
	}
	if m != nil {
		drawParts(m)
		for _, a := range m.Annotations {
			drawAnnotation(a)
		}
	}
	rl.EndMode3D()

	if m != nil {
		for _, a := range m.Annotations {
			drawLabel(a, rc)
		}
	}
}

func drawParts(m *scene.Model) {
	// Opaque parts first so glass blends over them.
	var glass []*scene.Part
	for _, p := range m.Parts {
		if !p.Visible {
			continue
		}
		if p.Material != nil && p.Material.Transparent {
			glass = append(glass, p)
			continue
		}
		drawBox(p)
	}
	for _, p := range glass {
		drawBox(p)
	}
}

func drawBox(p *scene.Part) {
	box := p.WorldBox()
	size := Vector(scene.Size(box))
	size.X = math32.Max(size.X, minExtent)
	size.Y = math32.Max(size.Y, minExtent)
	size.Z = math32.Max(size.Z, minExtent)
	center := Vector(scene.Center(box))
	rl.DrawCubeV(center, size, Color(p.Material))
	rl.DrawCubeWiresV(center, size, wireColor)
}

func drawAnnotation(a scene.Annotation) {
	from, to := Vector(a.From), Vector(a.To)
	rl.DrawLine3D(from, to, annotationColor)

	// End ticks perpendicular to the line, in the XY plane.
	const tick = 0.03
	dx, dy := to.X-from.X, to.Y-from.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		return
	}
	nx, ny := -dy/l*tick, dx/l*tick
	for _, p := range []rl.Vector3{from, to} {
		rl.DrawLine3D(rl.NewVector3(p.X-nx, p.Y-ny, p.Z), rl.NewVector3(p.X+nx, p.Y+ny, p.Z), annotationColor)
	}
}

func drawLabel(a scene.Annotation, cam rl.Camera3D) {
	pos := rl.GetWorldToScreen(Vector(a.Label), cam)
	w := float32(rl.MeasureText(a.Text, labelSize))
	x := math32.Round(pos.X - w/2)
	y := math32.Round(pos.Y - labelSize/2)
	rl.DrawRectangle(int32(x)-4, int32(y)-2, int32(w)+8, labelSize+4, labelBgColor)
	rl.DrawText(a.Text, int32(x), int32(y), labelSize, annotationColor)
}
