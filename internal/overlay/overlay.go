package overlay

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"

	"frame-configurator/internal/viewer"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// Only refresh the FPS/Mem text every N frames to reduce allocations.
	updateInterval = 30
)

var panelColor = rl.NewColor(20, 20, 20, 180)

// Source is what the overlay reads each frame.
type Source interface {
	Ready() bool
	Loading() bool
	GUIVisible() bool
	Summary() viewer.Summary
}

// Overlay draws the FPS/Mem counters (top-right) and the configuration readout (top-left).
// The readout follows the viewer's GUI visibility; the counters follow ShowFPS and ShowMemAlloc.
type Overlay struct {
	ShowFPS      bool
	ShowMemAlloc bool
	src          Source
	font         rl.Font
	frameCount   uint32
	lastFpsText  string
	lastMemText  string
	lastMemStats runtime.MemStats
}

// New returns an Overlay reading from src with the counters hidden.
func New(src Source) *Overlay {
	return &Overlay{src: src}
}

// SetFont sets the font used for all overlay text.
func (o *Overlay) SetFont(font rl.Font) {
	o.font = font
}

// Lines returns the readout text for the current state.
func Lines(src Source) []string {
	switch {
	case src.Loading():
		return []string{"loading model..."}
	case !src.Ready():
		return []string{"no model loaded"}
	}
	s := src.Summary()
	return []string{
		s.Model,
		fmt.Sprintf("height %.0f mm  width %.0f mm", s.Height, s.Width),
		fmt.Sprintf("vertical bars %+.0f / %+.0f mm", s.ModularLeftBar, s.ModularRightBar),
		fmt.Sprintf("horizontal bars %+.0f / %+.0f mm", s.ModularLeftEdge, s.ModularRightEdge),
		"frame " + s.FrameColor + "  inside " + s.InsideColor,
		"ESC: terminal  (cmd help)",
	}
}

// Draw renders the overlay. Call after the 3D pass and the terminal.
func (o *Overlay) Draw() {
	if o.src.GUIVisible() {
		o.drawReadout()
	}
	o.drawCounters()
}

func (o *Overlay) drawReadout() {
	lines := Lines(o.src)
	w := float32(0)
	for _, l := range lines {
		if lw := o.measure(l); lw > w {
			w = lw
		}
	}
	h := int32(len(lines)*lineHeight + padding)
	rl.DrawRectangle(padding/2, padding/2, int32(w)+padding, h, panelColor)
	for i, l := range lines {
		o.text(l, padding, float32(padding+i*lineHeight), rl.RayWhite)
	}
}

func (o *Overlay) drawCounters() {
	o.frameCount++
	update := (o.frameCount % updateInterval) == 0
	if (o.ShowFPS && o.lastFpsText == "") || (o.ShowMemAlloc && o.lastMemText == "") {
		update = true
	}
	screenW := float32(rl.GetScreenWidth())
	y := float32(padding)

	if o.ShowFPS {
		if update {
			o.lastFpsText = fmt.Sprintf("FPS: %d", rl.GetFPS())
		}
		o.text(o.lastFpsText, screenW-o.measure(o.lastFpsText)-padding, y, rl.Green)
		y += lineHeight
	}
	if o.ShowMemAlloc {
		if update {
			runtime.ReadMemStats(&o.lastMemStats)
			mb := float64(o.lastMemStats.Alloc) / (1024 * 1024)
			o.lastMemText = fmt.Sprintf("Mem: %.2f MiB", mb)
		}
		o.text(o.lastMemText, screenW-o.measure(o.lastMemText)-padding, y, rl.Green)
	}
}

func (o *Overlay) measure(s string) float32 {
	if o.font.Texture.ID != 0 {
		return rl.MeasureTextEx(o.font, s, fontSize, 1).X
	}
	return float32(rl.MeasureText(s, fontSize))
}

func (o *Overlay) text(s string, x, y float32, c rl.Color) {
	if s == "" {
		return
	}
	if o.font.Texture.ID != 0 {
		rl.DrawTextEx(o.font, s, rl.NewVector2(x, y), fontSize, 1, c)
		return
	}
	rl.DrawText(s, int32(x), int32(y), fontSize, c)
}
