package modular

import (
	"fmt"
	"math"

	"go.uber.org/zap"

	"frame-configurator/internal/scene"
)

// Rule decides how clones are laid out around the origin reference.
type Rule string

const (
	// RuleEdge walks from the origin reference in the positive direction: +1, +2, +3, ...
	RuleEdge Rule = "edge"
	// RuleCentered alternates around the origin reference: +1, -1, +2, -2, ...
	RuleCentered Rule = "centered"
)

// AxisConfig names the parts that drive stacking along one axis.
type AxisConfig struct {
	Template string `yaml:"template"` // authored segment that clones are copied from
	Origin   string `yaml:"origin"`   // edge part the walk starts from
	Rule     Rule   `yaml:"rule"`
}

// Config holds the stacking setup for both axes. Height stacks horizontal bars along Y,
// Width stacks vertical bars along X.
type Config struct {
	Height AxisConfig `yaml:"height"`
	Width  AxisConfig `yaml:"width"`
}

// DefaultConfig matches the part names of the reference window assets.
func DefaultConfig() Config {
	return Config{
		Height: AxisConfig{Template: "outside_horiz_module", Origin: "bottom_frame", Rule: RuleEdge},
		Width:  AxisConfig{Template: "outside_vert_module", Origin: "left_frame", Rule: RuleEdge},
	}
}

// Params drive one stacking pass. Module sizes are in model units. The per-edge offsets move
// the first (left) and last (right) clone of a row along the stacking axis.
type Params struct {
	EnabledHeight bool
	EnabledWidth  bool
	ModuleHeight  float64
	ModuleWidth   float64

	LeftVerticalOffset    float64
	RightVerticalOffset   float64
	LeftHorizontalOffset  float64
	RightHorizontalOffset float64
}

// Result reports how many clones each axis produced.
type Result struct {
	HeightClones int
	WidthClones  int
}

// Total is the number of live clones after the pass.
func (r Result) Total() int {
	return r.HeightClones + r.WidthClones
}

// countEpsilon absorbs floating-point error when the extent is an exact multiple of the module.
const countEpsilon = 1e-9

// Engine regenerates modular clones from scratch on every call.
type Engine struct {
	cfg Config
	log *zap.Logger
}

// New returns a stacking engine.
func New(cfg Config, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{cfg: cfg, log: log}
}

// Config returns the axis setup.
func (e *Engine) Config() Config {
	return e.cfg
}

// Apply removes every existing clone and rebuilds both axes independently. The extent of each
// axis is measured on the authored parts, which must already be resized. Templates are only
// hidden or shown; their transforms and baselines are never touched.
func (e *Engine) Apply(m *scene.Model, p Params) Result {
	m.RemoveIf(func(part *scene.Part) bool { return part.IsModularClone })

	var res Result
	box, ok := m.AuthoredBounds()
	if !ok {
		return res
	}
	size := scene.Size(box)

	res.HeightClones = e.stack(m, axisRun{
		name: "height", axis: scene.AxisY, cfg: e.cfg.Height,
		enabled: p.EnabledHeight, module: p.ModuleHeight, extent: size.Y, end: box.Max.Y,
		firstOffset: p.LeftHorizontalOffset, lastOffset: p.RightHorizontalOffset,
	})
	res.WidthClones = e.stack(m, axisRun{
		name: "width", axis: scene.AxisX, cfg: e.cfg.Width,
		enabled: p.EnabledWidth, module: p.ModuleWidth, extent: size.X, end: box.Max.X,
		firstOffset: p.LeftVerticalOffset, lastOffset: p.RightVerticalOffset,
	})
	return res
}

type axisRun struct {
	name        string
	axis        scene.Axis
	cfg         AxisConfig
	enabled     bool
	module      float64
	extent      float64
	end         float64 // far side of the authored bounds on axis
	firstOffset float64
	lastOffset  float64
}

func (e *Engine) stack(m *scene.Model, r axisRun) int {
	tmpl := m.Find(r.cfg.Template)
	if tmpl == nil {
		if r.enabled {
			e.log.Warn("modular template missing; skipping axis",
				zap.String("axis", r.name), zap.String("template", r.cfg.Template))
		}
		return 0
	}
	if !r.enabled {
		tmpl.Visible = true
		return 0
	}
	origin := m.Find(r.cfg.Origin)
	if origin == nil {
		e.log.Warn("modular origin reference missing; skipping axis",
			zap.String("axis", r.name), zap.String("origin", r.cfg.Origin))
		tmpl.Visible = true
		return 0
	}
	if r.module <= 0 {
		e.log.Warn("modular size must be positive; skipping axis",
			zap.String("axis", r.name), zap.Float64("module", r.module))
		tmpl.Visible = true
		return 0
	}

	tmpl.Visible = false
	count := int(math.Floor(r.extent/r.module + countEpsilon))
	start := e.start(origin, r, count)

	for k := 1; k <= count; k++ {
		c, err := tmpl.Clone()
		if err != nil {
			e.log.Error("clone modular template", zap.String("axis", r.name), zap.Error(err))
			return k - 1
		}
		c.Name = fmt.Sprintf("%s#%d", tmpl.Name, k)
		c.IsModularClone = true
		c.Visible = true

		pos := start + step(r.cfg.Rule, k)*r.module
		switch k {
		case 1:
			pos += r.firstOffset
		case count:
			pos += r.lastOffset
		}
		c.Position = scene.WithComponent(c.Position, r.axis, pos)
		m.Add(c)
	}
	e.log.Debug("modular axis stacked",
		zap.String("axis", r.name), zap.Int("clones", count), zap.Float64("extent", r.extent))
	return count
}

// start is the position step 0 maps to. Centered rows walk out from the origin's centre. Edge
// rows fill one module slot per clone from the origin's outer face, each clone mid-slot, with
// any leftover extent split evenly at both ends so the row stays inside the bounds.
func (e *Engine) start(origin *scene.Part, r axisRun, count int) float64 {
	if r.cfg.Rule == RuleCentered {
		return scene.Component(origin.Position, r.axis)
	}
	from := scene.Component(origin.WorldBox().Min, r.axis)
	slack := math.Max(r.end-from-float64(count)*r.module, 0)
	return from + slack/2 - r.module/2
}

// step returns the signed multiple of the module size for the k-th clone (k starts at 1).
func step(rule Rule, k int) float64 {
	if rule != RuleCentered {
		return float64(k)
	}
	mag := float64((k + 1) / 2)
	if k%2 == 0 {
		return -mag
	}
	return mag
}
