package commands

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"frame-configurator/internal/config"
	"frame-configurator/internal/viewer"
)

// recorder is a Surface that records every call as a string.
type recorder struct {
	calls []string
	err   error
}

func (r *recorder) add(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) SetHeight(h float64)              { r.add("SetHeight %g", h) }
func (r *recorder) SetWidth(w float64)               { r.add("SetWidth %g", w) }
func (r *recorder) SetHeightMM(mm float64)           { r.add("SetHeightMM %g", mm) }
func (r *recorder) SetWidthMM(mm float64)            { r.add("SetWidthMM %g", mm) }
func (r *recorder) SetThickness(t float64)           { r.add("SetThickness %g", t) }
func (r *recorder) SetModularEnabled(w, h bool)      { r.add("SetModularEnabled %t %t", w, h) }
func (r *recorder) SetModularSizes(w, h float64)     { r.add("SetModularSizes %g %g", w, h) }
func (r *recorder) SetMirror(v, h bool)              { r.add("SetMirror %t %t", v, h) }
func (r *recorder) SetLeftVerticalOffset(v float64)  { r.add("LV %g", v) }
func (r *recorder) SetRightVerticalOffset(v float64) { r.add("RV %g", v) }
func (r *recorder) SetLeftHorizontalOffset(v float64) {
	r.add("LH %g", v)
}
func (r *recorder) SetRightHorizontalOffset(v float64) {
	r.add("RH %g", v)
}
func (r *recorder) HideGUI()              { r.add("HideGUI") }
func (r *recorder) ShowGUI()              { r.add("ShowGUI") }
func (r *recorder) Config() config.Config { return config.Default() }
func (r *recorder) Summary() viewer.Summary {
	return viewer.Summary{Model: "window_frame", Width: 1200}
}
func (r *recorder) ApplyPreset(n string) error { r.add("ApplyPreset %s", n); return r.err }
func (r *recorder) SetMaterialForZone(z, m string) error {
	r.add("SetMaterialForZone %s|%s", z, m)
	return r.err
}
func (r *recorder) LoadFiles(_ context.Context, model, mats string) uint64 {
	r.add("LoadFiles %s %s", model, mats)
	return 7
}

func setup() (*Registry, *recorder, *[]string) {
	reg := NewRegistry()
	rec := &recorder{}
	var out []string
	Install(context.Background(), reg, rec, func(s string) { out = append(out, s) })
	return reg, rec, &out
}

func run(t *testing.T, reg *Registry, line string) error {
	t.Helper()
	args, ok := Parse(line)
	require.True(t, ok, line)
	return reg.Execute(args)
}

func TestParse(t *testing.T) {
	args, ok := Parse("cmd height 1500")
	assert.True(t, ok)
	assert.Equal(t, []string{"height", "1500"}, args)

	args, ok = Parse("cmd   ")
	assert.True(t, ok)
	assert.Nil(t, args)

	_, ok = Parse("Cmd height 1")
	assert.False(t, ok)
}

func TestExecute_DrivesSurface(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"cmd height 1500", "SetHeightMM 1500"},
		{"cmd height --scale 1.5", "SetHeight 1.5"},
		{"cmd width 2400", "SetWidthMM 2400"},
		{"cmd width --scale 2", "SetWidth 2"},
		{"cmd thickness 1.2", "SetThickness 1.2"},
		{"cmd color frame Golden Oak", "SetMaterialForZone frame|Golden Oak"},
		{"cmd modular --width", "SetModularEnabled true false"},
		{"cmd modular", "SetModularEnabled false false"},
		{"cmd module-size --width 250", "SetModularSizes 250 500"},
		{"cmd mirror --vertical", "SetMirror true false"},
		{"cmd offset --left-vertical -100", "LV -100"},
		{"cmd offset --right-horizontal=40", "RH 40"},
		{"cmd preset 2_3", "ApplyPreset 2_3"},
		{"cmd gui hide", "HideGUI"},
		{"cmd gui show", "ShowGUI"},
		{"cmd load", "LoadFiles assets/models/window_frame.yaml assets/materials.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			reg, rec, _ := setup()
			require.NoError(t, run(t, reg, tt.line))
			assert.Equal(t, []string{tt.want}, rec.calls)
		})
	}
}

func TestExecute_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	reg, rec, _ := setup()
	require.NoError(t, run(t, reg, "cmd height --scale 2"))
	require.NoError(t, run(t, reg, "cmd height 1800"))
	assert.Equal(t, []string{"SetHeight 2", "SetHeightMM 1800"}, rec.calls)
}

func TestExecute_OffsetSetsOnlyGivenEdges(t *testing.T) {
	reg, rec, _ := setup()
	require.NoError(t, run(t, reg, "cmd offset --left-vertical 10 --left-horizontal 20"))
	assert.Equal(t, []string{"LV 10", "LH 20"}, rec.calls)
}

func TestExecute_Errors(t *testing.T) {
	reg, rec, _ := setup()

	assert.ErrorContains(t, reg.Execute(nil), "missing subcommand")
	assert.ErrorContains(t, run(t, reg, "cmd launch"), "unknown command")
	assert.ErrorIs(t, run(t, reg, "cmd height"), errUsage)
	assert.Error(t, run(t, reg, "cmd height tall"))
	assert.Error(t, run(t, reg, "cmd height --bogus 1"))
	assert.ErrorIs(t, run(t, reg, "cmd offset"), errUsage)
	assert.ErrorIs(t, run(t, reg, "cmd gui maybe"), errUsage)
	assert.ErrorIs(t, run(t, reg, "cmd color frame"), errUsage)

	rec.err = viewer.ErrUnknownPreset
	assert.ErrorIs(t, run(t, reg, "cmd preset nope"), viewer.ErrUnknownPreset)
}

func TestSummaryAndHelpWriteOutput(t *testing.T) {
	reg, _, out := setup()

	require.NoError(t, run(t, reg, "cmd summary"))
	assert.Contains(t, *out, "model: window_frame")
	assert.Contains(t, *out, "width: 1200")

	*out = nil
	require.NoError(t, run(t, reg, "cmd help"))
	assert.Len(t, *out, len(reg.Names()))
	assert.Contains(t, *out, "cmd preset <name>")

	*out = nil
	require.NoError(t, run(t, reg, "cmd load --model other.yaml"))
	assert.Equal(t, []string{"loading other.yaml (generation 7)"}, *out)
}
