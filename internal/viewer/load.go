package viewer

import (
	"context"

	"go.uber.org/zap"

	"frame-configurator/internal/asset"
	"frame-configurator/internal/baseline"
	"frame-configurator/internal/materials"
	"frame-configurator/internal/resize"
	"frame-configurator/internal/scene"
	"frame-configurator/internal/zone"
)

type loadResult struct {
	gen uint64
	res asset.Result
	err error
}

// Load starts loading the assets named in the config. See LoadFiles.
func (v *Viewer) Load(ctx context.Context) uint64 {
	return v.LoadFiles(ctx, v.cfg.Assets.Model, v.cfg.Assets.Materials)
}

// LoadFiles starts loading an assembly in the background and returns its generation. Any load
// still in flight is cancelled and its result will be discarded. Mutators are no-ops until
// Poll or Wait installs the result.
func (v *Viewer) LoadFiles(ctx context.Context, modelPath, materialsPath string) uint64 {
	if v.cancel != nil {
		v.cancel()
	}
	v.gen++
	gen := v.gen
	ctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	v.loading = true
	v.ready = false
	v.log.Info("loading model", zap.Uint64("generation", gen), zap.String("model", modelPath))

	go func() {
		res, err := v.loader.Load(ctx, modelPath, materialsPath)
		select {
		case v.results <- loadResult{gen: gen, res: res, err: err}:
		case <-ctx.Done():
		}
	}()
	return gen
}

// Poll installs a finished load without blocking. It reports whether a model was installed.
func (v *Viewer) Poll() bool {
	installed := false
	for {
		select {
		case r := <-v.results:
			if v.receive(r) {
				installed = true
			}
		default:
			return installed
		}
	}
}

// Wait blocks until the latest load is installed or ctx is done. It returns the load error,
// if any; the viewer is usable (with an empty model) either way.
func (v *Viewer) Wait(ctx context.Context) error {
	for v.loading {
		select {
		case r := <-v.results:
			v.receive(r)
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return v.loadErr
}

// Close cancels any load in flight. Its result is discarded and Wait returns at once.
func (v *Viewer) Close() {
	if v.cancel != nil {
		v.cancel()
		v.cancel = nil
	}
	if v.loading {
		v.gen++
		v.loading = false
	}
}

func (v *Viewer) receive(r loadResult) bool {
	if r.gen != v.gen {
		v.log.Debug("discarding stale load", zap.Uint64("generation", r.gen), zap.Uint64("current", v.gen))
		return false
	}
	v.loading = false
	v.loadErr = r.err
	if r.err != nil {
		v.log.Error("model load failed; continuing with an empty scene", zap.Error(r.err))
		v.install(scene.NewModel(""), materials.NewLibrary())
		return true
	}
	v.install(r.res.Model, r.res.Library)
	return true
}

// install replaces the live assembly. Zones, baselines and extents are rebuilt from scratch.
func (v *Viewer) install(m *scene.Model, lib *materials.Library) {
	if lib == nil {
		lib = materials.NewLibrary()
	}
	m.Center()
	for _, p := range m.InZone(zone.Glass) {
		p.Material = materials.Glass()
	}

	v.model = m
	v.library = lib
	v.store = baseline.New()
	v.preset = ""
	v.ready = !m.Empty()

	box, ok := m.AuthoredBounds()
	if !ok {
		v.resizer = nil
		v.log.Warn("installed model has no parts")
		return
	}
	size := scene.Size(box)
	v.baseHeightMM = size.Y * v.cfg.Framing.Calibration
	v.baseWidthMM = size.X * v.cfg.Framing.Calibration
	v.resizer = resize.New(v.store, resize.ExtentsOf(box), v.cfg.Resize, v.log.Named("resize"))
	v.clampOffsets()

	v.log.Info("model installed",
		zap.String("model", m.Name),
		zap.Int("parts", len(m.Parts)),
		zap.Int("zones", len(m.Zones())),
		zap.Float64("height_mm", v.baseHeightMM),
		zap.Float64("width_mm", v.baseWidthMM))
	v.recompute()
}
