package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"frame-configurator/internal/commands"
	"frame-configurator/internal/viewer"
)

// setup is the configuration applied to a headless viewer before it is reported on.
type setup struct {
	model     string
	materials string
	preset    string
	heightMM  float64
	widthMM   float64
	modularW  bool
	modularH  bool
	colors    map[string]string
	script    []string
	timeout   time.Duration
}

func (s *setup) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.model, "model", "", "model description (default from config)")
	fs.StringVar(&s.materials, "materials", "", "material library (default from config)")
	fs.StringVar(&s.preset, "preset", "", "apply a named preset first")
	fs.Float64Var(&s.heightMM, "height", 0, "height in mm")
	fs.Float64Var(&s.widthMM, "width", 0, "width in mm")
	fs.BoolVar(&s.modularW, "modular-width", false, "stack vertical bars along the width")
	fs.BoolVar(&s.modularH, "modular-height", false, "stack horizontal bars along the height")
	fs.StringToStringVar(&s.colors, "color", nil, "zone=material, e.g. --color frame=Golden Oak")
	fs.StringArrayVar(&s.script, "cmd", nil, `terminal command run after the flags, e.g. --cmd "offset --left-vertical 40"`)
	fs.DurationVar(&s.timeout, "timeout", 30*time.Second, "asset load timeout")
}

// headless loads the assembly, waits for it and applies s.
func headless(ctx context.Context, s *setup) (*viewer.Viewer, error) {
	v := viewer.New(cfg, nil, log.Named("viewer"))

	model, mats := cfg.Assets.Model, cfg.Assets.Materials
	if s.model != "" {
		model = s.model
	}
	if s.materials != "" {
		mats = s.materials
	}
	loadCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	v.LoadFiles(loadCtx, model, mats)
	if err := v.Wait(loadCtx); err != nil {
		v.Close()
		return nil, fmt.Errorf("load %s: %w", model, err)
	}

	if s.preset != "" {
		if err := v.ApplyPreset(s.preset); err != nil {
			v.Close()
			return nil, err
		}
	}
	if s.heightMM > 0 {
		v.SetHeightMM(s.heightMM)
	}
	if s.widthMM > 0 {
		v.SetWidthMM(s.widthMM)
	}
	if s.modularW || s.modularH {
		v.SetModularEnabled(s.modularW, s.modularH)
	}
	for z, m := range s.colors {
		if err := v.SetMaterialForZone(z, m); err != nil {
			v.Close()
			return nil, err
		}
	}

	reg := commands.NewRegistry()
	commands.Install(ctx, reg, v, func(line string) { log.Info(line) })
	for _, line := range s.script {
		if !strings.HasPrefix(line, "cmd ") {
			line = "cmd " + line
		}
		args, _ := commands.Parse(line)
		if err := reg.Execute(args); err != nil {
			v.Close()
			return nil, fmt.Errorf("%q: %w", line, err)
		}
		log.Debug("script", zap.String("line", line))
	}
	return v, nil
}
