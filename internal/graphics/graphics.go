package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the main window. Zero width or height means the size of the primary monitor.
type Window struct {
	Title      string
	Width      int32
	Height     int32
	Fullscreen bool
	TargetFPS  int32
}

// DefaultWindow is a resizable 1280x800 window at 60 FPS.
func DefaultWindow() Window {
	return Window{Title: "Frame configurator", Width: 1280, Height: 800, TargetFPS: 60}
}

// Run opens the window and runs the main loop. Each frame it calls update (input, async load
// results), then clears the screen and calls draw. ESC belongs to the terminal, so the window
// closes only through the window button.
func Run(w Window, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	if w.Fullscreen {
		flags |= rl.FlagFullscreenMode
	}
	rl.SetConfigFlags(flags)
	width, height := w.Width, w.Height
	if w.Fullscreen || width == 0 || height == 0 {
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.InitWindow(width, height, w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull)
	if w.TargetFPS > 0 {
		rl.SetTargetFPS(w.TargetFPS)
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)
		draw()
		rl.EndDrawing()
	}
}
