package main

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"frame-configurator/internal/commands"
	"frame-configurator/internal/config"
	"frame-configurator/internal/fonts"
	"frame-configurator/internal/graphics"
	"frame-configurator/internal/overlay"
	"frame-configurator/internal/render"
	"frame-configurator/internal/resize"
	"frame-configurator/internal/terminal"
	"frame-configurator/internal/viewer"
)

var fullscreen bool

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Open the interactive viewer (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runView(cmd.Context())
	},
}

func init() {
	viewCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "open fullscreen on the primary monitor")
}

func runView(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v := viewer.New(cfg, nil, log.Named("viewer"))
	defer v.Close()
	v.Load(ctx)

	reg := commands.NewRegistry()
	commands.Install(ctx, reg, v, func(line string) { log.Info(line) })
	term := terminal.New(log, reg)
	ov := overlay.New(v)
	ov.ShowFPS = cfg.View.ShowFPS
	ov.ShowMemAlloc = cfg.View.ShowMemAlloc
	rend := render.New(cfg.View.GridVisible)

	// Reloaded tunables are handed to the render thread; only the latest one matters.
	tunables := make(chan resize.Tunables, 1)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return config.Watch(gctx, configPath, log.Named("config"), func(c config.Config) {
			select {
			case <-tunables:
			default:
			}
			tunables <- c.Resize
		})
	})

	fontLoaded := false
	update := func() {
		// Fonts need the GL context, which exists from the first frame on.
		if !fontLoaded {
			fontLoaded = true
			if f, ok := loadFont(cfg.View.Font); ok {
				term.SetFont(f)
				ov.SetFont(f)
			}
		}
		select {
		case t := <-tunables:
			log.Info("resize tunables reloaded")
			v.ApplyTunables(t)
		default:
		}
		v.Poll()
		term.Update()
	}
	draw := func() {
		rend.Draw(v.Model(), v.Camera())
		term.Draw()
		ov.Draw()
	}

	win := graphics.DefaultWindow()
	win.Fullscreen = fullscreen
	graphics.Run(win, update, draw)

	cancel()
	if err := g.Wait(); err != nil {
		log.Warn("config watcher stopped", zap.Error(err))
	}
	return nil
}

func loadFont(family string) (rl.Font, bool) {
	if family == "" {
		return rl.Font{}, false
	}
	path, err := fonts.Find(fonts.BaseDirs(), family)
	if err != nil {
		log.Warn("font not found, using default", zap.String("font", family), zap.Error(err))
		return rl.Font{}, false
	}
	f := rl.LoadFont(path)
	if f.Texture.ID == 0 {
		log.Warn("font failed to load", zap.String("path", path))
		return rl.Font{}, false
	}
	return f, true
}
