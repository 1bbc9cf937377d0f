package viewer

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"frame-configurator/internal/modular"
	"frame-configurator/internal/resize"
	"frame-configurator/internal/scene"
	"frame-configurator/internal/zone"
)

// guard reports whether mutators may run. Before a model is installed every mutator is a no-op.
func (v *Viewer) guard(op string) bool {
	if !v.ready {
		v.log.Debug("model not ready; ignoring", zap.String("op", op))
		return false
	}
	return true
}

// recompute runs the full pipeline: resize, restack, zone materials, reframe, labels.
func (v *Viewer) recompute() {
	if v.resizer == nil {
		return
	}
	v.resizer.ResizeModel(v.model, v.size)
	res := v.stacker.Apply(v.model, v.modularParams())
	v.applyZoneMaterials()
	v.framer.ReframeCamera(v.model, v.camera)
	v.framer.ComputeDimensionLabels(v.model)
	v.log.Debug("recomputed",
		zap.Float64("height", v.size.Height),
		zap.Float64("width", v.size.Width),
		zap.Int("clones", res.Total()))
}

// modularParams converts the millimetre offsets to model units.
func (v *Viewer) modularParams() modular.Params {
	p := v.stack
	cal := v.cfg.Framing.Calibration
	p.LeftVerticalOffset = v.offsets.LeftVertical / cal
	p.RightVerticalOffset = v.offsets.RightVertical / cal
	p.LeftHorizontalOffset = v.offsets.LeftHorizontal / cal
	p.RightHorizontalOffset = v.offsets.RightHorizontal / cal
	return p
}

// applyZoneMaterials gives every visible part of a recoloured zone its own clone of the
// selected material. Hidden templates keep what they had.
func (v *Viewer) applyZoneMaterials() {
	for k, name := range v.zoneMaterials {
		for _, p := range v.model.InZone(k) {
			if !p.Visible || (p.Material != nil && p.Material.Name == name) {
				continue
			}
			m, err := v.library.Lookup(name)
			if err != nil {
				v.log.Warn("zone material vanished from library", zap.Stringer("zone", k), zap.Error(err))
				break
			}
			p.Material = m
		}
	}
}

// SetHeight sets the height multiplier. The resulting height is clamped to the configured limits.
func (v *Viewer) SetHeight(h float64) {
	if !v.guard("set height") {
		return
	}
	v.SetHeightMM(h * v.baseHeightMM)
}

// SetWidth sets the width multiplier. The resulting width is clamped to the configured limits.
func (v *Viewer) SetWidth(w float64) {
	if !v.guard("set width") {
		return
	}
	v.SetWidthMM(w * v.baseWidthMM)
}

// SetHeightMM sets the assembly height in millimetres.
func (v *Viewer) SetHeightMM(mm float64) {
	if !v.guard("set height") {
		return
	}
	mm = v.cfg.Limits.ClampHeight(mm)
	v.size.Height = mm / v.baseHeightMM
	v.clampOffsets()
	v.recompute()
}

// SetWidthMM sets the assembly width in millimetres.
func (v *Viewer) SetWidthMM(mm float64) {
	if !v.guard("set width") {
		return
	}
	mm = v.cfg.Limits.ClampWidth(mm)
	v.size.Width = mm / v.baseWidthMM
	v.clampOffsets()
	v.recompute()
}

// SetThickness sets the depth multiplier. Non-positive values are ignored.
func (v *Viewer) SetThickness(t float64) {
	if !v.guard("set thickness") {
		return
	}
	if t <= 0 {
		v.log.Warn("thickness must be positive", zap.Float64("thickness", t))
		return
	}
	v.size.Thickness = t
	v.recompute()
}

// SetMaterialForZone recolours every visible part of the named zone, modular clones included.
// material may be a library name or a catalog display name.
func (v *Viewer) SetMaterialForZone(zoneName, material string) error {
	if !v.guard("set material") {
		return nil
	}
	k, ok := zone.Parse(zoneName)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZone, zoneName)
	}
	if !zone.PolicyFor(k).AllowColorChange {
		return fmt.Errorf("%w: %s", ErrColorLocked, k)
	}
	m, err := v.library.Lookup(material)
	if err != nil {
		return err
	}
	v.zoneMaterials[k] = m.Name
	v.log.Info("zone material set", zap.Stringer("zone", k), zap.String("material", m.Name))
	v.recompute()
	return nil
}

// SetModularEnabled switches stacking per axis.
func (v *Viewer) SetModularEnabled(widthOn, heightOn bool) {
	if !v.guard("set modular") {
		return
	}
	v.stack.EnabledWidth = widthOn
	v.stack.EnabledHeight = heightOn
	v.recompute()
}

// SetModularSizes sets the module width and height in millimetres.
func (v *Viewer) SetModularSizes(widthMM, heightMM float64) {
	if !v.guard("set module sizes") {
		return
	}
	cal := v.cfg.Framing.Calibration
	v.stack.ModuleWidth = widthMM / cal
	v.stack.ModuleHeight = heightMM / cal
	v.recompute()
}

// SetMirror links the offsets of opposite edges. A vertical mirror keeps the right vertical
// offset equal to minus the left one; a horizontal mirror keeps both horizontal offsets equal.
func (v *Viewer) SetMirror(vertical, horizontal bool) {
	v.mirrorV = vertical
	v.mirrorH = horizontal
}

// SetLeftVerticalOffset moves the first vertical bar, in millimetres.
func (v *Viewer) SetLeftVerticalOffset(mm float64) {
	if !v.guard("set offset") {
		return
	}
	v.offsets.LeftVertical = mm
	if v.mirrorV {
		v.offsets.RightVertical = -mm
	}
	v.clampOffsets()
	v.recompute()
}

// SetRightVerticalOffset moves the last vertical bar, in millimetres.
func (v *Viewer) SetRightVerticalOffset(mm float64) {
	if !v.guard("set offset") {
		return
	}
	v.offsets.RightVertical = mm
	if v.mirrorV {
		v.offsets.LeftVertical = -mm
	}
	v.clampOffsets()
	v.recompute()
}

// SetLeftHorizontalOffset moves the first horizontal bar, in millimetres.
func (v *Viewer) SetLeftHorizontalOffset(mm float64) {
	if !v.guard("set offset") {
		return
	}
	v.offsets.LeftHorizontal = mm
	if v.mirrorH {
		v.offsets.RightHorizontal = mm
	}
	v.clampOffsets()
	v.recompute()
}

// SetRightHorizontalOffset moves the last horizontal bar, in millimetres.
func (v *Viewer) SetRightHorizontalOffset(mm float64) {
	if !v.guard("set offset") {
		return
	}
	v.offsets.RightHorizontal = mm
	if v.mirrorH {
		v.offsets.LeftHorizontal = mm
	}
	v.clampOffsets()
	v.recompute()
}

func (v *Viewer) clampOffsets() {
	lim := OffsetLimitsFor(v.WidthMM(), v.HeightMM())
	v.offsets.LeftVertical = lim.LeftVertical.Clamp(v.offsets.LeftVertical)
	v.offsets.RightVertical = lim.RightVertical.Clamp(v.offsets.RightVertical)
	v.offsets.LeftHorizontal = lim.Horizontal.Clamp(v.offsets.LeftHorizontal)
	v.offsets.RightHorizontal = lim.Horizontal.Clamp(v.offsets.RightHorizontal)
}

// HideGUI hides the on-screen controls. It works whether or not a model is loaded.
func (v *Viewer) HideGUI() {
	v.guiVisible = false
}

// ShowGUI shows the on-screen controls again.
func (v *Viewer) ShowGUI() {
	v.guiVisible = true
}

// ApplyPreset switches to a named model variant: its authored parts listed for removal are
// dropped and the assembly is set to the preset size.
func (v *Viewer) ApplyPreset(name string) error {
	if !v.guard("apply preset") {
		return nil
	}
	p, ok := v.cfg.Preset(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	drop := make(map[string]bool, len(p.Remove))
	for _, n := range p.Remove {
		drop[strings.ToLower(n)] = true
	}
	removed := v.model.RemoveIf(func(part *scene.Part) bool {
		if part.IsModularClone || !drop[strings.ToLower(part.Name)] {
			return false
		}
		v.store.Forget(part)
		return true
	})
	v.preset = p.Name
	v.log.Info("preset applied", zap.String("preset", p.Name), zap.Int("removed", removed))

	v.size.Height = v.cfg.Limits.ClampHeight(p.HeightMM) / v.baseHeightMM
	v.size.Width = v.cfg.Limits.ClampWidth(p.WidthMM) / v.baseWidthMM
	v.clampOffsets()
	v.recompute()
	return nil
}

// ApplyTunables swaps the resize corrections, e.g. after a config reload.
func (v *Viewer) ApplyTunables(t resize.Tunables) {
	v.cfg.Resize = t
	if v.resizer == nil {
		return
	}
	v.resizer.SetTunables(t)
	v.recompute()
}
