package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"frame-configurator/internal/framing"
	"frame-configurator/internal/modular"
	"frame-configurator/internal/resize"
)

// DefaultPath is the config file path, relative to the process working directory.
const DefaultPath = "config/configurator.yaml"

// Assets locates the model description and material library.
type Assets struct {
	Model     string `yaml:"model"`
	Materials string `yaml:"materials"`
}

// Modular is the stacking setup plus the module sizes used when stacking is first enabled.
type Modular struct {
	modular.Config `yaml:",inline"`
	ModuleHeightMM float64 `yaml:"module_height_mm"`
	ModuleWidthMM  float64 `yaml:"module_width_mm"`
}

// Limits bound the user-facing dimensions, in millimetres.
type Limits struct {
	MinHeightMM float64 `yaml:"min_height_mm"`
	MaxHeightMM float64 `yaml:"max_height_mm"`
	MinWidthMM  float64 `yaml:"min_width_mm"`
	MaxWidthMM  float64 `yaml:"max_width_mm"`
}

// ClampHeight limits mm to the configured height range.
func (l Limits) ClampHeight(mm float64) float64 {
	return min(max(mm, l.MinHeightMM), l.MaxHeightMM)
}

// ClampWidth limits mm to the configured width range.
func (l Limits) ClampWidth(mm float64) float64 {
	return min(max(mm, l.MinWidthMM), l.MaxWidthMM)
}

// Preset is a named model variant: fixed dimensions and authored parts it does not have.
type Preset struct {
	Name     string   `yaml:"name"`
	HeightMM float64  `yaml:"height_mm"`
	WidthMM  float64  `yaml:"width_mm"`
	Remove   []string `yaml:"remove,omitempty"`
}

// View holds display preferences for the interactive window.
type View struct {
	ShowFPS      bool `yaml:"show_fps"`
	ShowMemAlloc bool `yaml:"show_memalloc"`
	GridVisible  bool `yaml:"grid_visible"`
	ShowGUI      bool `yaml:"show_gui"`
	// Font is a font family or file under assets/fonts for the terminal and readout.
	// Empty uses raylib's built-in font.
	Font string `yaml:"font,omitempty"`
}

// Config is the full configurator configuration. Persisted across runs.
type Config struct {
	Assets  Assets          `yaml:"assets"`
	Resize  resize.Tunables `yaml:"resize"`
	Modular Modular         `yaml:"modular"`
	Framing framing.Config  `yaml:"framing"`
	Limits  Limits          `yaml:"limits"`
	Presets []Preset        `yaml:"presets,omitempty"`
	View    View            `yaml:"view"`
}

// Preset returns the preset called name.
func (c Config) Preset(name string) (Preset, bool) {
	for _, p := range c.Presets {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Default returns the configuration the bundled assets were tuned for.
func Default() Config {
	return Config{
		Assets: Assets{
			Model:     "assets/models/window_frame.yaml",
			Materials: "assets/materials.yaml",
		},
		Resize: resize.DefaultTunables(),
		Modular: Modular{
			Config:         modular.DefaultConfig(),
			ModuleHeightMM: 500,
			ModuleWidthMM:  500,
		},
		Framing: framing.DefaultConfig(),
		Limits: Limits{
			MinHeightMM: 1000,
			MaxHeightMM: 3000,
			MinWidthMM:  1000,
			MaxWidthMM:  4000,
		},
		Presets: []Preset{
			{Name: "2_1", HeightMM: 1000, WidthMM: 1000,
				Remove: []string{"frame_top_mid3", "frame_bottom_mid3", "frame_top_mid2", "frame_bottom_mid2", "frame_horiz_beam4", "frame_horiz_beam3", "frame_horiz_beam2", "frame_horiz_beam1"}},
			{Name: "2_2", HeightMM: 1000, WidthMM: 1000,
				Remove: []string{"frame_top_mid3", "frame_bottom_mid3", "frame_top_mid2", "frame_bottom_mid2", "frame_top_mid1", "frame_horiz_beam4", "frame_horiz_beam3"}},
			{Name: "2_3", HeightMM: 1000, WidthMM: 1000,
				Remove: []string{"frame_top_mid3", "frame_bottom_mid3", "frame_top_mid2", "frame_bottom_mid2", "frame_horiz_beam4", "frame_horiz_beam3", "frame_horiz_beam2"}},
			{Name: "2_4", HeightMM: 1000, WidthMM: 1000,
				Remove: []string{"frame_top_mid3", "frame_bottom_mid3", "frame_top_mid2", "frame_bottom_mid2", "frame_horiz_beam4", "frame_horiz_beam3", "frame_horiz_beam1"}},
			{Name: "2_5", HeightMM: 1000, WidthMM: 1000,
				Remove: []string{"frame_top_mid3", "frame_bottom_mid3", "frame_top_mid2", "frame_bottom_mid2", "frame_horiz_beam4", "frame_horiz_beam3"}},
		},
		View: View{GridVisible: true, ShowGUI: true},
	}
}

// Load reads the config at path. A missing file yields Default() and no error; no file is
// created. Fields absent from the file keep their defaults. An invalid file yields Default()
// together with the parse error so the caller can report it.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, nil
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	return c, nil
}

// Save writes c to path, creating the parent directory if needed.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
