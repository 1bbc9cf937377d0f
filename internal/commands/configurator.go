package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"frame-configurator/internal/config"
	"frame-configurator/internal/viewer"
)

// Surface is the part of the viewer the terminal commands drive.
type Surface interface {
	SetHeight(h float64)
	SetWidth(w float64)
	SetHeightMM(mm float64)
	SetWidthMM(mm float64)
	SetThickness(t float64)
	SetMaterialForZone(zone, material string) error
	SetModularEnabled(widthOn, heightOn bool)
	SetModularSizes(widthMM, heightMM float64)
	SetMirror(vertical, horizontal bool)
	SetLeftVerticalOffset(mm float64)
	SetRightVerticalOffset(mm float64)
	SetLeftHorizontalOffset(mm float64)
	SetRightHorizontalOffset(mm float64)
	ApplyPreset(name string) error
	HideGUI()
	ShowGUI()
	Summary() viewer.Summary
	Config() config.Config
	LoadFiles(ctx context.Context, modelPath, materialsPath string) uint64
}

var errUsage = errors.New("usage")

func usageErr(usage string) error {
	return fmt.Errorf("%w: cmd %s", errUsage, usage)
}

func oneNumber(fs *pflag.FlagSet, usage string) (float64, error) {
	if fs.NArg() != 1 {
		return 0, usageErr(usage)
	}
	v, err := strconv.ParseFloat(fs.Arg(0), 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", usage, err)
	}
	return v, nil
}

// Install registers the configurator commands on reg. out receives command output (e.g. the
// terminal log). ctx bounds model loads started from the terminal.
func Install(ctx context.Context, reg *Registry, s Surface, out func(string)) {
	const (
		heightUsage = "height [--scale] <mm|multiplier>"
		widthUsage  = "width [--scale] <mm|multiplier>"
	)
	reg.Register("height", heightUsage, func(fs *pflag.FlagSet) func() error {
		scale := fs.Bool("scale", false, "value is a multiplier of the loaded height")
		return func() error {
			v, err := oneNumber(fs, heightUsage)
			if err != nil {
				return err
			}
			if *scale {
				s.SetHeight(v)
			} else {
				s.SetHeightMM(v)
			}
			return nil
		}
	})
	reg.Register("width", widthUsage, func(fs *pflag.FlagSet) func() error {
		scale := fs.Bool("scale", false, "value is a multiplier of the loaded width")
		return func() error {
			v, err := oneNumber(fs, widthUsage)
			if err != nil {
				return err
			}
			if *scale {
				s.SetWidth(v)
			} else {
				s.SetWidthMM(v)
			}
			return nil
		}
	})
	reg.Register("thickness", "thickness <multiplier>", func(fs *pflag.FlagSet) func() error {
		return func() error {
			v, err := oneNumber(fs, "thickness <multiplier>")
			if err != nil {
				return err
			}
			s.SetThickness(v)
			return nil
		}
	})
	reg.Register("color", "color <zone> <material>", func(fs *pflag.FlagSet) func() error {
		return func() error {
			if fs.NArg() < 2 {
				return usageErr("color <zone> <material>")
			}
			// Material names may contain spaces ("Golden Oak").
			return s.SetMaterialForZone(fs.Arg(0), strings.Join(fs.Args()[1:], " "))
		}
	})
	reg.Register("modular", "modular [--width] [--height]", func(fs *pflag.FlagSet) func() error {
		w := fs.Bool("width", false, "stack vertical bars along the width")
		h := fs.Bool("height", false, "stack horizontal bars along the height")
		return func() error {
			s.SetModularEnabled(*w, *h)
			return nil
		}
	})
	reg.Register("module-size", "module-size [--width mm] [--height mm]", func(fs *pflag.FlagSet) func() error {
		cfg := s.Config().Modular
		w := fs.Float64("width", cfg.ModuleWidthMM, "module width in mm")
		h := fs.Float64("height", cfg.ModuleHeightMM, "module height in mm")
		return func() error {
			s.SetModularSizes(*w, *h)
			return nil
		}
	})
	reg.Register("offset", "offset [--left-vertical mm] [--right-vertical mm] [--left-horizontal mm] [--right-horizontal mm]",
		func(fs *pflag.FlagSet) func() error {
			lv := fs.Float64("left-vertical", 0, "first vertical bar offset")
			rv := fs.Float64("right-vertical", 0, "last vertical bar offset")
			lh := fs.Float64("left-horizontal", 0, "first horizontal bar offset")
			rh := fs.Float64("right-horizontal", 0, "last horizontal bar offset")
			return func() error {
				set := 0
				if fs.Changed("left-vertical") {
					s.SetLeftVerticalOffset(*lv)
					set++
				}
				if fs.Changed("right-vertical") {
					s.SetRightVerticalOffset(*rv)
					set++
				}
				if fs.Changed("left-horizontal") {
					s.SetLeftHorizontalOffset(*lh)
					set++
				}
				if fs.Changed("right-horizontal") {
					s.SetRightHorizontalOffset(*rh)
					set++
				}
				if set == 0 {
					return usageErr("offset --left-vertical|--right-vertical|--left-horizontal|--right-horizontal <mm>")
				}
				return nil
			}
		})
	reg.Register("mirror", "mirror [--vertical] [--horizontal]", func(fs *pflag.FlagSet) func() error {
		v := fs.Bool("vertical", false, "mirror the vertical bar offsets")
		h := fs.Bool("horizontal", false, "mirror the horizontal bar offsets")
		return func() error {
			s.SetMirror(*v, *h)
			return nil
		}
	})
	reg.Register("preset", "preset <name>", func(fs *pflag.FlagSet) func() error {
		return func() error {
			if fs.NArg() != 1 {
				return usageErr("preset <name>")
			}
			return s.ApplyPreset(fs.Arg(0))
		}
	})
	reg.Register("gui", "gui hide|show", func(fs *pflag.FlagSet) func() error {
		return func() error {
			switch fs.Arg(0) {
			case "hide":
				s.HideGUI()
			case "show":
				s.ShowGUI()
			default:
				return usageErr("gui hide|show")
			}
			return nil
		}
	})
	reg.Register("load", "load [--model path] [--materials path]", func(fs *pflag.FlagSet) func() error {
		assets := s.Config().Assets
		model := fs.String("model", assets.Model, "model description")
		mats := fs.String("materials", assets.Materials, "material library")
		return func() error {
			gen := s.LoadFiles(ctx, *model, *mats)
			out(fmt.Sprintf("loading %s (generation %d)", *model, gen))
			return nil
		}
	})
	reg.Register("summary", "summary", func(fs *pflag.FlagSet) func() error {
		return func() error {
			data, err := yaml.Marshal(s.Summary())
			if err != nil {
				return err
			}
			for _, line := range strings.Split(strings.TrimRight(string(data), "\n"), "\n") {
				out(line)
			}
			return nil
		}
	})
	reg.Register("help", "help", func(fs *pflag.FlagSet) func() error {
		return func() error {
			for _, name := range reg.Names() {
				out("cmd " + reg.Usage(name))
			}
			return nil
		}
	})
}
