package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const (
	modelPath     = "../../assets/models/window_frame.yaml"
	materialsPath = "../../assets/materials.yaml"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args,
		"--config", filepath.Join(t.TempDir(), "none.yaml"),
		"--log", "",
		"--model", modelPath,
		"--materials", materialsPath))
	require.NoError(t, rootCmd.Execute(), out.String())
	return out.String()
}

func TestInspect(t *testing.T) {
	out := execute(t, "inspect",
		"--width", "2000",
		"--color", "frame=Cream",
		"--modular-width",
		"--cmd", "offset --left-vertical 40")

	var r report
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))

	assert.Equal(t, "window_frame", r.Summary.Model)
	assert.Equal(t, 2000.0, r.Summary.Width)
	assert.Equal(t, 1000.0, r.Summary.Height)
	assert.Equal(t, "Cream", r.Summary.FrameColor)
	assert.Equal(t, 40.0, r.Summary.ModularLeftBar)
	assert.Equal(t, 4, r.Clones)

	require.Len(t, r.Labels, 2)
	assert.Equal(t, "1000 mm", r.Labels[0].Text)
	assert.Equal(t, "2000 mm", r.Labels[1].Text)
	assert.NotEqual(t, r.Camera.Position, r.Camera.Target)
}

func TestExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "front.png")
	out := execute(t, "export", "--preset", "2_1", "-o", path, "--px-width", "600", "--px-height", "450")
	assert.Contains(t, out, path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	c, err := png.DecodeConfig(f)
	require.NoError(t, err)
	assert.Equal(t, 600, c.Width)
	assert.Equal(t, 450, c.Height)
}
