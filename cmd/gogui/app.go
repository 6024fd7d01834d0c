package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"

	"gogui/animate"
	col "gogui/color"
	"gogui/config"
	"gogui/display"
	"gogui/font"
	"gogui/gui"
	"gogui/rect"
	"gogui/task"
	"gogui/trace"
)

const zoomStep = 1.1

// App owns the GUI context of the demo and everything the SDL loop drives.
type App struct {
	gui.BaseHandler

	cfg     config.Config
	ctx     *gui.Context
	fonts   *font.Manager
	canvas  *display.Canvas
	runner  *task.Runner
	tracer  *trace.MeasureTime
	surface gui.SurfaceID
	ids     map[string]gui.ElementID
	log     *slog.Logger

	dirty     rect.Rect
	hover     map[gui.ElementID]color.RGBA
	zoom      float64
	baseDPI   [2]float64
	anim      *animate.LengthAnimation
	animating bool
	forward   bool
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	a := &App{
		cfg:     cfg,
		runner:  task.NewRunner(),
		hover:   map[gui.ElementID]color.RGBA{},
		zoom:    1,
		baseDPI: [2]float64{gui.DefaultDPI, gui.DefaultDPI},
		forward: true,
		log:     log,
	}

	fontOpts := []font.Option{font.WithLogger(log)}
	if cfg.Font.Family != "" {
		fontOpts = append(fontOpts, font.WithDefaultFamily(cfg.Font.Family))
	}
	if !cfg.Font.System {
		fontOpts = append(fontOpts, font.WithoutSystemFonts())
	}
	a.fonts = font.NewManager(fontOpts...)
	a.canvas = display.NewCanvas(log)
	if bg, err := col.Parse(cfg.Window.Background); err == nil {
		a.canvas.Background = bg
	}

	opts := []gui.Option{
		gui.WithFontProvider(a.fonts),
		gui.WithRenderer(a.canvas),
		gui.WithHandler(a),
		gui.WithLogger(log),
	}
	if cfg.DPI.BaseX > 0 && cfg.DPI.BaseY > 0 {
		opts = append(opts, gui.WithBaseDPI(cfg.DPI.BaseX, cfg.DPI.BaseY))
	}
	if cfg.Trace.Path != "" {
		tracer, err := trace.Create(cfg.Trace.Path, "gogui")
		if err != nil {
			return nil, err
		}
		a.tracer = tracer
		opts = append(opts, gui.WithTracer(tracer))
	}
	a.ctx = gui.New(opts...)

	w, h := cfg.Window.Width, cfg.Window.Height
	a.surface = a.ctx.CreateSurface(float64(w), float64(h))
	a.canvas.Resize(a.surface, w, h)
	a.baseDPI[0], a.baseDPI[1] = a.ctx.SurfaceDPI(a.surface)
	if cfg.DPI.X > 0 && cfg.DPI.Y > 0 {
		a.baseDPI = [2]float64{cfg.DPI.X, cfg.DPI.Y}
		a.ctx.SetSurfaceDPI(a.surface, cfg.DPI.X, cfg.DPI.Y)
	}

	ids, err := a.styledConfig().Build(a.ctx, a.surface)
	if err != nil {
		log.Warn("some element styles were not applied", "err", err)
	}
	a.ids = ids

	if an := cfg.Animation; an.Element != "" {
		a.animating = true
		a.restartAnimation()
	}
	a.invalidateAll()
	return a, nil
}

// styledConfig prefixes every element style with the configured font, so
// an element's own font declarations still win.
func (a *App) styledConfig() *config.Config {
	cfg := a.cfg
	prefix := "font-size: " + a.cfg.Font.Size + ";"
	if a.cfg.Font.Size == "" {
		prefix = ""
	}
	if a.cfg.Font.Family != "" {
		prefix += fmt.Sprintf(" font-family: %q;", a.cfg.Font.Family)
	}
	cfg.Elements = slices.Clone(a.cfg.Elements)
	for i := range cfg.Elements {
		cfg.Elements[i].Style = prefix + " " + cfg.Elements[i].Style
	}
	return &cfg
}

func (a *App) Close() error {
	if a.tracer == nil {
		return nil
	}
	return a.tracer.Finish()
}

func (a *App) OnRepaint(s gui.SurfaceID, area rect.Rect) {
	if s != a.surface {
		return
	}
	a.dirty = a.dirty.Union(area)
	a.runner.ScheduleOnce(s, task.NewTask(a.paint))
}

func (a *App) paint(...any) {
	area := a.dirty
	a.dirty = rect.NewRectEmpty()
	a.ctx.PaintSurface(a.surface, area, nil)
}

// OnMouseEnter lightens elements that show text.
func (a *App) OnMouseEnter(el gui.ElementID) {
	if a.ctx.Text(el) == "" {
		return
	}
	bg := a.ctx.Style(el).BackgroundColor
	a.hover[el] = bg
	a.ctx.SetBackgroundColor(el, lighten(bg))
}

func (a *App) OnMouseLeave(el gui.ElementID) {
	bg, ok := a.hover[el]
	if !ok {
		return
	}
	delete(a.hover, el)
	if a.ctx.IsElement(el) {
		a.ctx.SetBackgroundColor(el, bg)
	}
}

func (a *App) OnSize(el gui.ElementID, width, height float64) {
	a.log.Debug("resized", "element", el, "width", width, "height", height)
}

func lighten(c color.RGBA) color.RGBA {
	if c.A == 0 {
		return color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0x20}
	}
	up := func(v uint8) uint8 { return v + (c.A-v)/3 }
	return color.RGBA{R: up(c.R), G: up(c.G), B: up(c.B), A: c.A}
}

func (a *App) invalidateAll() {
	w, h := a.ctx.SurfaceSize(a.surface)
	a.ctx.InvalidateRect(a.surface, rect.NewRect(0, 0, w, h))
}

func (a *App) MouseMove(x, y float64) {
	a.ctx.OnMouseMove(a.surface, x, y)
}

func (a *App) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.canvas.Resize(a.surface, width, height)
	a.ctx.SetSurfaceSize(a.surface, float64(width), float64(height))
	a.invalidateAll()
}

// Zoom scales the surface DPI by zoomStep per step. Zero resets it.
func (a *App) Zoom(steps int) {
	if steps == 0 {
		a.zoom = 1
	} else {
		for range max(steps, -steps) {
			if steps > 0 {
				a.zoom *= zoomStep
			} else {
				a.zoom /= zoomStep
			}
		}
	}
	a.ctx.SetSurfaceDPI(a.surface, a.baseDPI[0]*a.zoom, a.baseDPI[1]*a.zoom)
}

func (a *App) ToggleAnimation() {
	a.animating = !a.animating && a.anim != nil
}

func (a *App) restartAnimation() {
	an := a.cfg.Animation
	id, ok := a.ids[an.Element]
	if !ok {
		return
	}
	from, _ := gui.ParseLength(an.From)
	to, _ := gui.ParseLength(an.To)
	if !a.forward {
		from, to = to, from
	}
	a.anim = animate.NewLengthAnimation(from, to, an.Frames, func(l gui.Length) {
		a.ctx.SetWidth(id, l)
	})
}

// Frame advances animations and runs the repaints they cause.
func (a *App) Frame() int {
	if a.animating && a.anim != nil && !a.anim.Step() {
		a.forward = !a.forward
		a.restartAnimation()
	}
	return a.runner.RunPending()
}
