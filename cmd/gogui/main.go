package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/veandco/go-sdl2/sdl"

	"gogui/config"
)

func main() {
	configPath := flag.String("config", "", "TOML configuration file")
	verbose := flag.Bool("v", false, "log debug output")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*configPath, log); err != nil {
		fmt.Fprintln(os.Stderr, "gogui:", err)
		os.Exit(1)
	}
}

func run(configPath string, log *slog.Logger) error {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			return err
		}
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("init sdl: %w", err)
	}
	defer sdl.Quit()

	window, err := NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer window.Destroy()

	app, err := NewApp(cfg, log)
	if err != nil {
		return err
	}
	log.Info("started", "width", cfg.Window.Width, "height", cfg.Window.Height, "elements", len(cfg.Elements))
	mainloop(app, window, log)
	log.Info("quitting")
	return app.Close()
}

func mainloop(app *App, window *Window, log *slog.Logger) {
	ctrlDown := false
	for !app.runner.NeedsQuit() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				app.runner.SetNeedsQuit()
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					app.Resize(int(e.Data1), int(e.Data2))
				}
			case *sdl.MouseMotionEvent:
				app.MouseMove(float64(e.X), float64(e.Y))
			case *sdl.KeyboardEvent:
				sym := e.Keysym.Sym
				if sym == sdl.K_RCTRL || sym == sdl.K_LCTRL {
					ctrlDown = e.State == sdl.PRESSED
					continue
				}
				if e.State != sdl.PRESSED {
					continue
				}
				switch {
				case ctrlDown && (sym == sdl.K_PLUS || sym == sdl.K_EQUALS):
					app.Zoom(1)
				case ctrlDown && sym == sdl.K_MINUS:
					app.Zoom(-1)
				case ctrlDown && sym == sdl.K_0:
					app.Zoom(0)
				case ctrlDown && sym == sdl.K_q:
					app.runner.SetNeedsQuit()
				case sym == sdl.K_SPACE:
					app.ToggleAnimation()
				}
			}
		}

		app.Frame()
		damage := app.canvas.TakeDamage(app.surface)
		if err := window.Present(app.canvas.Image(app.surface), damage); err != nil {
			log.Error("present failed", "err", err)
		}
		sdl.Delay(16)
	}
}
