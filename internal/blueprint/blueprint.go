// Package blueprint draws a front elevation of the assembly with its dimension lines, as a PNG.
package blueprint

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/scene"
)

// ErrEmptyModel is returned when there is nothing visible to draw.
var ErrEmptyModel = errors.New("blueprint: model has no visible parts")

// Options control the drawing size and style.
type Options struct {
	Width, Height int     // canvas size in pixels
	Margin        float64 // free border around the drawing, pixels; dimension lines live here
	FontSize      float64
	Title         string // drawn in the top-left corner when set
}

// DefaultOptions is a 1200x900 sheet with room for the dimension lines.
func DefaultOptions() Options {
	return Options{Width: 1200, Height: 900, Margin: 110, FontSize: 18}
}

// View maps the XY plane of the model onto the canvas: x grows right, y grows down.
type View struct {
	Scale  float64
	Origin r3.Vec // model point drawn at (OffX, OffY)
	OffX   float64
	OffY   float64
}

// Fit returns the view that centres box on a w×h canvas with margin pixels kept free on every side.
func Fit(box r3.Box, w, h int, margin float64) View {
	size := scene.Size(box)
	aw, ah := float64(w)-2*margin, float64(h)-2*margin
	scale := math.Inf(1)
	if size.X > 0 {
		scale = aw / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, ah/size.Y)
	}
	if math.IsInf(scale, 1) || scale <= 0 {
		scale = 1
	}
	c := scene.Center(box)
	return View{Scale: scale, Origin: c, OffX: float64(w) / 2, OffY: float64(h) / 2}
}

// Point projects a model point to canvas pixels.
func (v View) Point(p r3.Vec) (x, y float64) {
	return v.OffX + (p.X-v.Origin.X)*v.Scale, v.OffY - (p.Y-v.Origin.Y)*v.Scale
}

// Render draws the visible parts of m and its annotations and writes the PNG to w.
func Render(m *scene.Model, w io.Writer, opt Options) error {
	box, ok := m.VisibleBounds()
	if !ok {
		return ErrEmptyModel
	}
	dc := gg.NewContext(opt.Width, opt.Height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("blueprint: load font: %w", err)
	}
	defer src.Close()
	dc.SetFont(src.Face(opt.FontSize))

	view := Fit(box, opt.Width, opt.Height, opt.Margin)
	if err := drawParts(dc, view, m); err != nil {
		return err
	}
	for _, a := range m.Annotations {
		if err := drawDimension(dc, view, a); err != nil {
			return err
		}
	}
	if opt.Title != "" {
		dc.SetRGB(0.1, 0.1, 0.1)
		dc.DrawStringAnchored(opt.Title, opt.Margin/4, opt.Margin/4, 0, 1)
	}
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("blueprint: encode: %w", err)
	}
	return nil
}

// SaveFile renders m to a PNG file at path.
func SaveFile(m *scene.Model, path string, opt Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Render(m, f, opt); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func drawParts(dc *gg.Context, view View, m *scene.Model) error {
	for _, p := range m.Parts {
		if !p.Visible {
			continue
		}
		b := p.WorldBox()
		x0, y0 := view.Point(r3.Vec{X: b.Min.X, Y: b.Max.Y})
		x1, y1 := view.Point(r3.Vec{X: b.Max.X, Y: b.Min.Y})

		r, g, bl := p.Material.RGB()
		alpha := 1.0
		if p.Material != nil && p.Material.Transparent {
			// Glass reads as a pale tint behind the frame lines.
			r, g, bl, alpha = 0xb8, 0xd8, 0xf0, 0.6
		}
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		dc.SetRGBA(float64(r)/255, float64(g)/255, float64(bl)/255, alpha)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("blueprint: fill %s: %w", p.Name, err)
		}
		dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
		dc.SetRGB(0.25, 0.25, 0.25)
		dc.SetLineWidth(1)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("blueprint: outline %s: %w", p.Name, err)
		}
	}
	return nil
}

func drawDimension(dc *gg.Context, view View, a scene.Annotation) error {
	const tick = 6.0
	x0, y0 := view.Point(a.From)
	x1, y1 := view.Point(a.To)

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(1.5)
	dc.DrawLine(x0, y0, x1, y1)
	if a.Kind == scene.AnnotationHeight {
		dc.DrawLine(x0-tick, y0, x0+tick, y0)
		dc.DrawLine(x1-tick, y1, x1+tick, y1)
	} else {
		dc.DrawLine(x0, y0-tick, x0, y0+tick)
		dc.DrawLine(x1, y1-tick, x1, y1+tick)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("blueprint: %s dimension: %w", a.Kind, err)
	}

	lx, ly := view.Point(a.Label)
	if a.Kind == scene.AnnotationHeight {
		dc.DrawStringAnchored(a.Text, lx-2*tick, ly, 1, 0.5)
	} else {
		dc.DrawStringAnchored(a.Text, lx, ly+2*tick, 0.5, 1)
	}
	return nil
}
