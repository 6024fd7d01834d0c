package display

import (
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/fogleman/gg"

	"gogui/gui"
)

// Canvas rasterises finished display lists onto one gg context per surface.
type Canvas struct {
	*Recorder
	targets map[gui.SurfaceID]*gg.Context
	damage  map[gui.SurfaceID]image.Rectangle
	log     *slog.Logger
}

func NewCanvas(log *slog.Logger) *Canvas {
	if log == nil {
		log = slog.Default()
	}
	c := &Canvas{
		Recorder: NewRecorder(),
		targets:  map[gui.SurfaceID]*gg.Context{},
		damage:   map[gui.SurfaceID]image.Rectangle{},
		log:      log,
	}
	return c
}

// Resize (re)creates the raster target of surface, filled with the
// background.
func (c *Canvas) Resize(surface gui.SurfaceID, width, height int) {
	target := gg.NewContext(width, height)
	target.SetColor(c.Background)
	target.Clear()
	c.targets[surface] = target
	c.damage[surface] = target.Image().Bounds()
}

// Remove drops the raster target of surface.
func (c *Canvas) Remove(surface gui.SurfaceID) {
	delete(c.targets, surface)
	delete(c.damage, surface)
}

func (c *Canvas) EndPaint(surface gui.SurfaceID, token any) {
	c.Recorder.EndPaint(surface, token)
	if list := c.List(surface); list != nil {
		c.Raster(list)
	}
}

// Raster executes list on its surface's target. Lists for surfaces without
// a target are dropped.
func (c *Canvas) Raster(list *DisplayList) {
	target, ok := c.targets[list.Surface]
	if !ok {
		c.log.Debug("no raster target", "surface", list.Surface)
		return
	}
	start := time.Now()
	target.Push()
	for _, cmd := range list.Commands {
		cmd.Execute(target)
	}
	target.ResetClip()
	target.Pop()

	bounds := list.Bounds()
	if !bounds.IsEmpty() {
		area := bounds.RoundOutToInt().Intersect(target.Image().Bounds())
		c.damage[list.Surface] = c.damage[list.Surface].Union(area)
	}
	c.log.Debug("raster", "surface", list.Surface, "commands", len(list.Commands), "took", time.Since(start))
}

// Image returns the raster of surface, or nil.
func (c *Canvas) Image(surface gui.SurfaceID) *image.RGBA {
	target, ok := c.targets[surface]
	if !ok {
		return nil
	}
	img, _ := target.Image().(*image.RGBA)
	return img
}

// TakeDamage returns and resets the pixels changed since the last call.
func (c *Canvas) TakeDamage(surface gui.SurfaceID) image.Rectangle {
	d := c.damage[surface]
	c.damage[surface] = image.Rectangle{}
	return d
}

// At samples the raster of surface, for tests and debugging.
func (c *Canvas) At(surface gui.SurfaceID, x, y int) color.Color {
	img := c.Image(surface)
	if img == nil {
		return color.Transparent
	}
	return img.At(x, y)
}
