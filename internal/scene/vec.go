package scene

import "gonum.org/v1/gonum/spatial/r3"

// Axis indexes the components of an r3.Vec. X is width, Y is height, Z is depth.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	default:
		return "z"
	}
}

// Component returns v's coordinate on axis a.
func Component(v r3.Vec, a Axis) float64 {
	switch a {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	default:
		return v.Z
	}
}

// WithComponent returns v with its coordinate on axis a replaced by f.
func WithComponent(v r3.Vec, a Axis, f float64) r3.Vec {
	switch a {
	case AxisX:
		v.X = f
	case AxisY:
		v.Y = f
	default:
		v.Z = f
	}
	return v
}

// MulElem is the component-wise product of a and b.
func MulElem(a, b r3.Vec) r3.Vec {
	return r3.Vec{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// MaxComponent returns the largest coordinate of v.
func MaxComponent(v r3.Vec) float64 {
	return max(v.X, v.Y, v.Z)
}

// canon orders the corners of b so Min <= Max on every axis (negative scales flip them).
func canon(b r3.Box) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: min(b.Min.X, b.Max.X), Y: min(b.Min.Y, b.Max.Y), Z: min(b.Min.Z, b.Max.Z)},
		Max: r3.Vec{X: max(b.Min.X, b.Max.X), Y: max(b.Min.Y, b.Max.Y), Z: max(b.Min.Z, b.Max.Z)},
	}
}

// union returns the smallest box containing a and b.
func union(a, b r3.Box) r3.Box {
	return r3.Box{
		Min: r3.Vec{X: min(a.Min.X, b.Min.X), Y: min(a.Min.Y, b.Min.Y), Z: min(a.Min.Z, b.Min.Z)},
		Max: r3.Vec{X: max(a.Max.X, b.Max.X), Y: max(a.Max.Y, b.Max.Y), Z: max(a.Max.Z, b.Max.Z)},
	}
}

// Size returns the extent of b along each axis.
func Size(b r3.Box) r3.Vec {
	return r3.Sub(b.Max, b.Min)
}

// Center returns the midpoint of b.
func Center(b r3.Box) r3.Vec {
	return r3.Scale(0.5, r3.Add(b.Min, b.Max))
}
