// Package viewer owns one live configurator scene: the loaded assembly, its camera, the engines
// that transform it and the control surface the UI drives.
package viewer

import (
	"context"
	"errors"
	"math"

	"go.uber.org/zap"

	"frame-configurator/internal/asset"
	"frame-configurator/internal/baseline"
	"frame-configurator/internal/config"
	"frame-configurator/internal/framing"
	"frame-configurator/internal/materials"
	"frame-configurator/internal/modular"
	"frame-configurator/internal/resize"
	"frame-configurator/internal/scene"
	"frame-configurator/internal/zone"
)

var (
	// ErrUnknownPreset is returned by ApplyPreset for a name missing from the config.
	ErrUnknownPreset = errors.New("unknown preset")
	// ErrUnknownZone is returned for a zone name the classifier does not produce.
	ErrUnknownZone = errors.New("unknown zone")
	// ErrColorLocked is returned when recolouring a zone whose policy forbids it.
	ErrColorLocked = errors.New("zone colour cannot be changed")
)

// AssetLoader produces an assembly and its material library.
type AssetLoader interface {
	Load(ctx context.Context, modelPath, materialsPath string) (asset.Result, error)
}

// Offsets are the per-edge modular offsets in millimetres.
type Offsets struct {
	LeftVertical    float64 `yaml:"left_vertical"`
	RightVertical   float64 `yaml:"right_vertical"`
	LeftHorizontal  float64 `yaml:"left_horizontal"`
	RightHorizontal float64 `yaml:"right_horizontal"`
}

// Viewer is the context every engine call goes through. It is not safe for concurrent use:
// all methods run on the render thread. Only asset loading happens in the background, and
// its results are picked up by Poll or Wait.
type Viewer struct {
	cfg    config.Config
	log    *zap.Logger
	loader AssetLoader

	model   *scene.Model
	camera  *scene.Camera
	library *materials.Library
	store   *baseline.Store
	resizer *resize.Engine
	stacker *modular.Engine
	framer  *framing.Framer

	ready      bool
	loading    bool
	loadErr    error
	guiVisible bool

	// baseline assembly size in millimetres, measured at load
	baseHeightMM float64
	baseWidthMM  float64

	size    resize.Params
	stack   modular.Params
	offsets Offsets
	mirrorV bool
	mirrorH bool
	preset  string
	// selected library material per zone
	zoneMaterials map[zone.Kind]string

	gen     uint64
	cancel  context.CancelFunc
	results chan loadResult
}

// New returns a viewer with an empty model. loader may be nil to read assets from disk.
func New(cfg config.Config, loader AssetLoader, log *zap.Logger) *Viewer {
	if log == nil {
		log = zap.NewNop()
	}
	if loader == nil {
		loader = asset.NewLoader(log.Named("asset"))
	}
	return &Viewer{
		cfg:        cfg,
		log:        log,
		loader:     loader,
		model:      scene.NewModel(""),
		camera:     scene.NewCamera(),
		library:    materials.NewLibrary(),
		store:      baseline.New(),
		stacker:    modular.New(cfg.Modular.Config, log.Named("modular")),
		framer:     framing.New(cfg.Framing, log.Named("framing")),
		guiVisible: cfg.View.ShowGUI,
		size:       resize.DefaultParams(),
		stack: modular.Params{
			ModuleHeight: cfg.Modular.ModuleHeightMM / cfg.Framing.Calibration,
			ModuleWidth:  cfg.Modular.ModuleWidthMM / cfg.Framing.Calibration,
		},
		zoneMaterials: make(map[zone.Kind]string),
		results:       make(chan loadResult, 1),
	}
}

// Model returns the live assembly. It is empty until a load completes.
func (v *Viewer) Model() *scene.Model { return v.model }

// Camera returns the framed camera.
func (v *Viewer) Camera() *scene.Camera { return v.camera }

// Library returns the material library of the loaded assembly.
func (v *Viewer) Library() *materials.Library { return v.library }

// Config returns the configuration the viewer was built with.
func (v *Viewer) Config() config.Config { return v.cfg }

// Ready reports whether a non-empty model is installed and mutators take effect.
func (v *Viewer) Ready() bool { return v.ready }

// Loading reports whether a load is in flight.
func (v *Viewer) Loading() bool { return v.loading }

// GUIVisible reports whether the on-screen controls should be drawn.
func (v *Viewer) GUIVisible() bool { return v.guiVisible }

// Params returns the current size multipliers.
func (v *Viewer) Params() resize.Params { return v.size }

// Modular returns the current stacking parameters in model units.
func (v *Viewer) Modular() modular.Params { return v.stack }

// Offsets returns the current per-edge offsets in millimetres.
func (v *Viewer) Offsets() Offsets { return v.offsets }

// HeightMM is the current assembly height in millimetres.
func (v *Viewer) HeightMM() float64 { return v.size.Height * v.baseHeightMM }

// WidthMM is the current assembly width in millimetres.
func (v *Viewer) WidthMM() float64 { return v.size.Width * v.baseWidthMM }

// Summary is the configuration a customer submits.
type Summary struct {
	Model            string  `yaml:"model"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	ModularLeftBar   float64 `yaml:"modularLeftBar"`
	ModularRightBar  float64 `yaml:"modularRightBar"`
	ModularLeftEdge  float64 `yaml:"modularLeftEdge"`
	ModularRightEdge float64 `yaml:"modularRightEdge"`
	FrameColor       string  `yaml:"frameColor"`
	InsideColor      string  `yaml:"insideColor"`
	ModularColor     string  `yaml:"modularColor"`
}

// Summary returns the current configuration. Colours use catalog display names.
func (v *Viewer) Summary() Summary {
	name := v.preset
	if name == "" {
		name = v.model.Name
	}
	return Summary{
		Model:            name,
		Width:            math.Round(v.WidthMM()),
		Height:           math.Round(v.HeightMM()),
		ModularLeftBar:   v.offsets.LeftVertical,
		ModularRightBar:  v.offsets.RightVertical,
		ModularLeftEdge:  v.offsets.LeftHorizontal,
		ModularRightEdge: v.offsets.RightHorizontal,
		FrameColor:       materials.DisplayName(v.zoneMaterials[zone.Frame]),
		InsideColor:      materials.DisplayName(v.zoneMaterials[zone.FrameInside]),
		ModularColor:     materials.DisplayName(v.zoneMaterials[zone.Outside]),
	}
}
