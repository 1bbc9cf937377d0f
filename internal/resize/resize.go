package resize

import (
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/baseline"
	"frame-configurator/internal/scene"
	"frame-configurator/internal/zone"
)

// Params are the global size multipliers; 1.0 is the baseline size on every axis.
type Params struct {
	Height    float64
	Width     float64
	Thickness float64
}

// DefaultParams returns the identity parameters.
func DefaultParams() Params {
	return Params{Height: 1, Width: 1, Thickness: 1}
}

// Tunables are the empirical corrections that close the seams naive scaling leaves between
// members. They are approximate; verify by tolerance, not exact equality.
type Tunables struct {
	// TopSeamCorrection is the fraction of the naive (Height-1)×span lift applied to top edges.
	TopSeamCorrection float64 `yaml:"top_seam_correction"`
	// SideSeamCorrection is the fraction of the (Width-1)×span shift applied to right edges.
	SideSeamCorrection float64 `yaml:"side_seam_correction"`
	// GlassGapCorrection multiplies the glazing's height growth so it tucks under the frame.
	GlassGapCorrection float64 `yaml:"glass_gap_correction"`
	// GlassDropCorrection lowers the glazing by this fraction of half its added height.
	GlassDropCorrection float64 `yaml:"glass_drop_correction"`
}

// DefaultTunables returns the corrections for exact-box members, where every frame edge and the
// glazing meet without overlap. Meshes with bevelled or overlapping joints need their own values.
func DefaultTunables() Tunables {
	return Tunables{
		TopSeamCorrection:   1.0,
		SideSeamCorrection:  1.0,
		GlassGapCorrection:  1.0,
		GlassDropCorrection: 0,
	}
}

// Extents is the baseline box of the whole assembly. Members are scaled about Anchor (the
// bottom-left-back corner) so the bottom and left edges stay put.
type Extents struct {
	Anchor r3.Vec
	Span   r3.Vec
}

// ExtentsOf returns the extents of box.
func ExtentsOf(box r3.Box) Extents {
	return Extents{Anchor: box.Min, Span: scene.Size(box)}
}

// Engine recomputes part transforms from their baselines. Each call resets a part to its
// baseline before applying the full computation, so calls are idempotent.
type Engine struct {
	store    *baseline.Store
	extents  Extents
	tunables Tunables
	log      *zap.Logger
}

// New returns an engine writing baselines into store. extents must be measured on the
// untouched assembly, before the first resize.
func New(store *baseline.Store, extents Extents, t Tunables, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{store: store, extents: extents, tunables: t, log: log}
}

// SetTunables replaces the corrections. The next resize picks them up.
func (e *Engine) SetTunables(t Tunables) {
	e.tunables = t
}

// Tunables returns the active corrections.
func (e *Engine) Tunables() Tunables {
	return e.tunables
}

// ResizeModel resizes every zone whose policy allows it, using the zone's strategy.
func (e *Engine) ResizeModel(m *scene.Model, p Params) {
	for k, parts := range m.Zones() {
		pol := zone.PolicyFor(k)
		if !pol.AllowResize {
			continue
		}
		e.ResizeZone(parts, p, pol.Strategy)
	}
}

// ResizeZone recomputes scale and position of parts from their baselines. Modular clones are
// skipped; they are regenerated from their templates after resizing. Degenerate params are
// not clamped here.
func (e *Engine) ResizeZone(parts []*scene.Part, p Params, s zone.Strategy) {
	for _, part := range parts {
		if part.IsModularClone {
			continue
		}
		snap := e.store.CaptureIfAbsent(part)
		part.Scale = snap.Scale
		part.Position = snap.Position

		switch s {
		case zone.StrategyFrame:
			e.frame(part, snap, p)
		case zone.StrategyUniform:
			e.uniform(part, snap, p)
		default:
			part.Scale.Z = snap.Scale.Z * p.Thickness
		}
	}
}

// about scales coordinate v about anchor a by f. Written as v + (f-1)(v-a) so f == 1
// returns v bit-for-bit.
func about(v, a, f float64) float64 {
	return v + (f-1)*(v-a)
}

func (e *Engine) frame(part *scene.Part, b baseline.Snapshot, p Params) {
	a, span := e.extents.Anchor, e.extents.Span
	part.Scale.Z = b.Scale.Z * p.Thickness

	role := RoleOf(part.Name)
	switch role {
	case RoleLeft:
		part.Scale.Y = b.Scale.Y * p.Height
		part.Position.Y = about(b.Position.Y, a.Y, p.Height)
	case RoleRight:
		part.Scale.Y = b.Scale.Y * p.Height
		part.Position.Y = about(b.Position.Y, a.Y, p.Height)
		part.Position.X = b.Position.X + (p.Width-1)*span.X*e.tunables.SideSeamCorrection
	case RoleTop:
		part.Scale.X = b.Scale.X * p.Width
		part.Position.X = about(b.Position.X, a.X, p.Width)
		part.Position.Y = b.Position.Y + (p.Height-1)*span.Y*e.tunables.TopSeamCorrection
	case RoleBottom:
		part.Scale.X = b.Scale.X * p.Width
		part.Position.X = about(b.Position.X, a.X, p.Width)
	case RoleMullion:
		part.Scale.Y = b.Scale.Y * p.Height
		part.Position.X = about(b.Position.X, a.X, p.Width)
		part.Position.Y = about(b.Position.Y, a.Y, p.Height)
	case RoleTransom:
		part.Scale.X = b.Scale.X * p.Width
		part.Position.X = about(b.Position.X, a.X, p.Width)
		part.Position.Y = about(b.Position.Y, a.Y, p.Height)
	default:
		e.log.Debug("frame part has no structural role; depth only", zap.String("part", part.Name))
	}
}

func (e *Engine) uniform(part *scene.Part, b baseline.Snapshot, p Params) {
	a := e.extents.Anchor
	t := e.tunables

	part.Scale = r3.Vec{
		X: b.Scale.X * p.Width,
		Y: b.Scale.Y * (1 + (p.Height-1)*t.GlassGapCorrection),
		Z: b.Scale.Z * p.Thickness,
	}
	height := b.Scale.Y * (part.Bounds.Max.Y - part.Bounds.Min.Y)
	part.Position.X = about(b.Position.X, a.X, p.Width)
	part.Position.Y = about(b.Position.Y, a.Y, p.Height) - t.GlassDropCorrection*(p.Height-1)*height/2
}
