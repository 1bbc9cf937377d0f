package scene

import "gonum.org/v1/gonum/spatial/r3"

// Camera is the viewpoint the assembly is framed for. Target doubles as the orbit-controls pivot.
type Camera struct {
	Position r3.Vec
	Target   r3.Vec
	Up       r3.Vec
	Fovy     float64
}

// NewCamera returns a perspective camera at (0,5,10) looking at the origin with a 50° field of view.
func NewCamera() *Camera {
	return &Camera{
		Position: r3.Vec{X: 0, Y: 5, Z: 10},
		Target:   r3.Vec{},
		Up:       r3.Vec{Y: 1},
		Fovy:     50,
	}
}

// ViewDirection returns the unit vector from the target towards the camera. A degenerate
// camera (position on the target) looks down -Z, i.e. the direction is +Z.
func (c *Camera) ViewDirection() r3.Vec {
	d := r3.Sub(c.Position, c.Target)
	if r3.Norm(d) == 0 {
		return r3.Vec{Z: 1}
	}
	return r3.Unit(d)
}

// AnnotationKind tells height labels from width labels.
type AnnotationKind int

const (
	AnnotationHeight AnnotationKind = iota
	AnnotationWidth
)

func (k AnnotationKind) String() string {
	if k == AnnotationWidth {
		return "width"
	}
	return "height"
}

// Annotation is a dimension line with its label, placed just outside the model silhouette.
type Annotation struct {
	Kind        AnnotationKind
	From, To    r3.Vec
	Label       r3.Vec // label anchor, midpoint of the line
	Millimeters float64
	Text        string
}
