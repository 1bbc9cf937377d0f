package viewer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"gonum.org/v1/gonum/spatial/r3"

	"frame-configurator/internal/asset"
	"frame-configurator/internal/config"
	"frame-configurator/internal/materials"
	"frame-configurator/internal/resize"
	"frame-configurator/internal/scene"
	"frame-configurator/internal/scene/scenetest"
	"frame-configurator/internal/zone"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type loaderFunc func(ctx context.Context, modelPath, materialsPath string) (asset.Result, error)

func (f loaderFunc) Load(ctx context.Context, modelPath, materialsPath string) (asset.Result, error) {
	return f(ctx, modelPath, materialsPath)
}

const libraryDoc = `
materials:
  - name: White
    color: "#f4f4f4"
  - name: Creme
    color: "#fdf4d3"
  - name: Zwart
    color: "#0a0a0a"
`

func library(t *testing.T) *materials.Library {
	t.Helper()
	lib, err := materials.Parse([]byte(libraryDoc))
	require.NoError(t, err)
	return lib
}

func windowLoader(t *testing.T) AssetLoader {
	lib := library(t)
	return loaderFunc(func(context.Context, string, string) (asset.Result, error) {
		return asset.Result{Model: scenetest.WindowFrame(), Library: lib}, nil
	})
}

func newReady(t *testing.T, cfg config.Config) *Viewer {
	t.Helper()
	v := New(cfg, windowLoader(t), nil)
	t.Cleanup(v.Close)
	v.Load(context.Background())
	require.NoError(t, v.Wait(context.Background()))
	require.True(t, v.Ready())
	return v
}

type transform struct {
	Scale, Position r3.Vec
}

func transforms(m *scene.Model) map[string]transform {
	out := make(map[string]transform)
	for _, p := range m.Authored() {
		out[p.Name] = transform{Scale: p.Scale, Position: p.Position}
	}
	return out
}

func TestMutatorsBeforeLoadAreNoOps(t *testing.T) {
	v := New(config.Default(), windowLoader(t), nil)
	cam := *v.Camera()

	v.SetHeight(2)
	v.SetWidthMM(3000)
	v.SetModularEnabled(true, true)
	v.SetLeftVerticalOffset(50)
	assert.NoError(t, v.SetMaterialForZone("frame", "White"))
	assert.NoError(t, v.ApplyPreset("2_1"))

	assert.False(t, v.Ready())
	assert.True(t, v.Model().Empty())
	assert.Equal(t, resize.DefaultParams(), v.Params())
	assert.Equal(t, Offsets{}, v.Offsets())
	assert.Equal(t, cam, *v.Camera())

	v.HideGUI()
	assert.False(t, v.GUIVisible())
}

func TestLoad_InstallsCentredModel(t *testing.T) {
	v := newReady(t, config.Default())
	m := v.Model()

	assert.Len(t, m.Parts, 9)
	box, ok := m.AuthoredBounds()
	require.True(t, ok)
	c := scene.Center(box)
	assert.InDelta(t, 0, c.X, 1e-12)
	assert.InDelta(t, 0, c.Y, 1e-12)

	glass := m.Find("glass_pane")
	assert.True(t, glass.Material.Transparent)

	assert.InDelta(t, 0, v.Camera().Target.X, 1e-12)
	assert.Len(t, m.Annotations, 2)

	s := v.Summary()
	assert.Equal(t, "window_frame", s.Model)
	assert.Equal(t, 1000.0, s.Height)
	assert.Equal(t, 1000.0, s.Width)
}

func TestSetHeight_ReversibleThroughPipeline(t *testing.T) {
	v := newReady(t, config.Default())
	loaded := transforms(v.Model())

	v.SetHeightMM(2000)
	left := v.Model().Find("left_frame").WorldBox()
	assert.InDelta(t, 2.0, left.Max.Y-left.Min.Y, 1e-9)
	assert.Equal(t, "2000 mm", v.Model().Annotations[0].Text)
	assert.Equal(t, 2000.0, v.Summary().Height)

	v.SetHeightMM(1000)
	if diff := cmp.Diff(loaded, transforms(v.Model()), cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("height 2000 -> 1000 did not restore the loaded transforms (-want +got):\n%s", diff)
	}
}

func TestSetSize_ClampedToLimits(t *testing.T) {
	v := newReady(t, config.Default())

	v.SetHeightMM(5000)
	assert.InDelta(t, 3000, v.HeightMM(), 1e-9)

	v.SetHeight(0)
	assert.InDelta(t, 1000, v.HeightMM(), 1e-9)

	v.SetWidth(5)
	assert.InDelta(t, 4000, v.WidthMM(), 1e-9)
	assert.InDelta(t, 4.0, v.Params().Width, 1e-12)

	v.SetThickness(-1)
	assert.Equal(t, 1.0, v.Params().Thickness)
	v.SetThickness(1.5)
	assert.Equal(t, 1.5, v.Params().Thickness)
}

func TestSetMaterialForZone_Isolation(t *testing.T) {
	v := newReady(t, config.Default())
	m := v.Model()

	require.NoError(t, v.SetMaterialForZone("frame", "Black"))

	frames := m.InZone(zone.Frame)
	require.Len(t, frames, 4)
	seen := make(map[*scene.Material]bool)
	for _, p := range frames {
		assert.Equal(t, "#0a0a0a", p.Material.Color, p.Name)
		assert.False(t, seen[p.Material], "material shared by %s", p.Name)
		seen[p.Material] = true
	}
	assert.Equal(t, "#f4f4f4", m.Find("frame_inside_sill").Material.Color)
	assert.Equal(t, "#f4f4f4", m.Find("outside_vert_module").Material.Color)
	assert.Equal(t, "Black", v.Summary().FrameColor)

	require.NoError(t, v.SetMaterialForZone("frameInside", "Creme"))
	assert.Equal(t, "Cream", v.Summary().InsideColor)
	assert.Equal(t, "#0a0a0a", m.Find("left_frame").Material.Color)
}

func TestSetMaterialForZone_Errors(t *testing.T) {
	v := newReady(t, config.Default())

	assert.ErrorIs(t, v.SetMaterialForZone("roof", "White"), ErrUnknownZone)
	assert.ErrorIs(t, v.SetMaterialForZone("glass", "White"), ErrColorLocked)
	assert.ErrorIs(t, v.SetMaterialForZone("misc", "White"), ErrColorLocked)
	assert.ErrorIs(t, v.SetMaterialForZone("frame", "Plaid"), materials.ErrUnknownMaterial)
}

func TestModular_RecoloursClonesNotHiddenTemplate(t *testing.T) {
	v := newReady(t, config.Default())
	m := v.Model()

	v.SetModularSizes(250, 500)
	v.SetModularEnabled(true, false)
	require.Len(t, m.Clones(), 4)

	tmpl := m.Find("outside_vert_module")
	assert.False(t, tmpl.Visible)

	require.NoError(t, v.SetMaterialForZone("outside", "Cream"))
	for _, c := range m.Clones() {
		assert.Equal(t, "Creme", c.Material.Name)
	}
	assert.Equal(t, "White", tmpl.Material.Name)
	assert.Equal(t, "Creme", m.Find("outside_horiz_module").Material.Name)

	v.SetWidthMM(2000)
	assert.Len(t, m.Clones(), 8)
	for _, c := range m.Clones() {
		assert.Equal(t, "Creme", c.Material.Name, "regenerated clones keep the zone colour")
	}

	v.SetModularEnabled(false, false)
	assert.Empty(t, m.Clones())
	assert.True(t, tmpl.Visible)
	assert.Equal(t, "Creme", tmpl.Material.Name)
}

func TestModular_OffsetsReachClones(t *testing.T) {
	v := newReady(t, config.Default())
	v.SetModularSizes(250, 500)
	v.SetModularEnabled(true, false)

	v.SetLeftVerticalOffset(10)

	clones := v.Model().Clones()
	require.Len(t, clones, 4)
	left := v.Model().Find("left_frame").WorldBox().Min.X
	assert.InDelta(t, left+0.125+0.010, clones[0].Position.X, 1e-9)
	assert.InDelta(t, left+0.375, clones[1].Position.X, 1e-9)
}

func TestOffsets_ClampAndMirror(t *testing.T) {
	v := newReady(t, config.Default())
	v.SetMirror(true, true)

	v.SetLeftVerticalOffset(100)
	assert.Equal(t, Offsets{LeftVertical: 100, RightVertical: -100}, v.Offsets())

	v.SetLeftVerticalOffset(500)
	assert.Equal(t, 235.0, v.Offsets().LeftVertical)
	assert.Equal(t, -235.0, v.Offsets().RightVertical)

	v.SetRightHorizontalOffset(900)
	assert.Equal(t, 750.0, v.Offsets().LeftHorizontal)
	assert.Equal(t, 750.0, v.Offsets().RightHorizontal)

	v.SetWidthMM(2000)
	v.SetLeftVerticalOffset(1000)
	assert.Equal(t, 1000.0, v.Offsets().LeftVertical)
	assert.Equal(t, 765.0, v.Offsets().RightVertical, "-1000 clamped to the widened minimum")

	v.SetWidthMM(1000)
	assert.Equal(t, 235.0, v.Offsets().LeftVertical)
	assert.Equal(t, 150.0, v.Offsets().RightVertical)

	s := v.Summary()
	assert.Equal(t, 235.0, s.ModularLeftBar)
	assert.Equal(t, 750.0, s.ModularRightEdge)
}

func TestOffsetLimitsFor(t *testing.T) {
	lim := OffsetLimitsFor(1500, 1200)
	assert.Equal(t, Range{Min: -150, Max: 735}, lim.LeftVertical)
	assert.Equal(t, Range{Min: 265, Max: 1150}, lim.RightVertical)
	assert.Equal(t, Range{Min: 0, Max: 950}, lim.Horizontal)

	assert.Equal(t, OffsetLimitsFor(1000, 1000), OffsetLimitsFor(800, 900))
}

func TestApplyPreset(t *testing.T) {
	cfg := config.Default()
	cfg.Presets = append(cfg.Presets, config.Preset{Name: "slim", HeightMM: 1500, WidthMM: 1200, Remove: []string{"Handle"}})
	v := newReady(t, cfg)

	require.NoError(t, v.ApplyPreset("slim"))
	assert.Nil(t, v.Model().Find("handle"))
	assert.Len(t, v.Model().Parts, 8)
	assert.InDelta(t, 1500, v.HeightMM(), 1e-9)
	assert.Equal(t, "slim", v.Summary().Model)
	assert.Equal(t, 1200.0, v.Summary().Width)

	assert.ErrorIs(t, v.ApplyPreset("nope"), ErrUnknownPreset)
}

func TestApplyTunables(t *testing.T) {
	v := newReady(t, config.Default())
	v.SetHeightMM(2000)

	top := v.Model().Find("top_frame").WorldBox()
	left := v.Model().Find("left_frame").WorldBox()
	assert.InDelta(t, left.Max.Y, top.Max.Y, 1e-9)

	tun := resize.DefaultTunables()
	tun.TopSeamCorrection = 0.955
	v.ApplyTunables(tun)

	top = v.Model().Find("top_frame").WorldBox()
	assert.InDelta(t, left.Max.Y-0.045, top.Max.Y, 1e-9)
}

func TestLoadFailure_InstallsEmptyScene(t *testing.T) {
	boom := errors.New("corrupt asset")
	v := New(config.Default(), loaderFunc(func(context.Context, string, string) (asset.Result, error) {
		return asset.Result{}, boom
	}), nil)
	t.Cleanup(v.Close)
	cam := *v.Camera()

	v.Load(context.Background())
	assert.ErrorIs(t, v.Wait(context.Background()), boom)

	assert.False(t, v.Loading())
	assert.False(t, v.Ready())
	assert.True(t, v.Model().Empty())
	v.SetHeight(2)
	assert.Equal(t, cam, *v.Camera())
}

func TestStaleLoadIsDiscarded(t *testing.T) {
	lib := library(t)
	gates := map[string]chan struct{}{"first": make(chan struct{}), "second": make(chan struct{})}
	v := New(config.Default(), loaderFunc(func(_ context.Context, model, _ string) (asset.Result, error) {
		<-gates[model]
		m := scenetest.WindowFrame()
		m.Name = model
		return asset.Result{Model: m, Library: lib}, nil
	}), nil)
	t.Cleanup(v.Close)

	first := v.LoadFiles(context.Background(), "first", "")
	second := v.LoadFiles(context.Background(), "second", "")
	assert.Greater(t, second, first)

	close(gates["first"])
	close(gates["second"])
	require.NoError(t, v.Wait(context.Background()))

	assert.Equal(t, "second", v.Model().Name)
	assert.True(t, v.Ready())
	assert.False(t, v.Poll())
}

func TestPoll_InstallsWithoutBlocking(t *testing.T) {
	lib := library(t)
	gate := make(chan struct{})
	v := New(config.Default(), loaderFunc(func(context.Context, string, string) (asset.Result, error) {
		<-gate
		return asset.Result{Model: scenetest.WindowFrame(), Library: lib}, nil
	}), nil)
	t.Cleanup(v.Close)

	v.Load(context.Background())
	assert.False(t, v.Poll())
	assert.True(t, v.Loading())

	close(gate)
	deadline := time.Now().Add(5 * time.Second)
	for !v.Poll() {
		require.True(t, time.Now().Before(deadline), "load never arrived")
		time.Sleep(time.Millisecond)
	}
	assert.True(t, v.Ready())
}

func TestWait_RespectsContext(t *testing.T) {
	gate := make(chan struct{})
	v := New(config.Default(), loaderFunc(func(ctx context.Context, _, _ string) (asset.Result, error) {
		select {
		case <-gate:
		case <-ctx.Done():
		}
		return asset.Result{}, ctx.Err()
	}), nil)

	v.Load(context.Background())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, v.Wait(ctx), context.DeadlineExceeded)

	v.Close()
	close(gate)
}

func TestClose_ReleasesWait(t *testing.T) {
	v := New(config.Default(), loaderFunc(func(ctx context.Context, _, _ string) (asset.Result, error) {
		<-ctx.Done()
		return asset.Result{}, ctx.Err()
	}), nil)

	v.LoadFiles(context.Background(), "never", "")
	require.True(t, v.Loading())
	v.Close()
	assert.False(t, v.Loading())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	start := time.Now()
	assert.NoError(t, v.Wait(ctx))
	assert.Less(t, time.Since(start), time.Second)

	// The cancelled result, if it was delivered, is stale and never installed.
	time.Sleep(10 * time.Millisecond)
	assert.False(t, v.Poll())
	assert.False(t, v.Ready())
}

func TestGUIVisibility(t *testing.T) {
	v := newReady(t, config.Default())
	assert.True(t, v.GUIVisible())
	v.HideGUI()
	assert.False(t, v.GUIVisible())
	v.ShowGUI()
	assert.True(t, v.GUIVisible())
}
