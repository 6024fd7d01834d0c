package main

import (
	"image"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gogui/config"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.Default()
	cfg.Font.System = false
	app, err := NewApp(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestAppPaintsInitialFrame(t *testing.T) {
	app := newTestApp(t)
	app.ToggleAnimation()
	assert.Positive(t, app.Frame())
	assert.Equal(t, image.Rect(0, 0, 800, 600), app.canvas.TakeDamage(app.surface))
	require.NotNil(t, app.canvas.List(app.surface))
	assert.Zero(t, app.Frame(), "nothing left to paint")
}

func TestAppHoverHighlight(t *testing.T) {
	app := newTestApp(t)
	app.ToggleAnimation()
	app.Frame()

	open := app.ids["open"]
	before := app.ctx.Style(open).BackgroundColor
	r := app.ctx.Rect(open)
	app.MouseMove(r.Left+1, r.Top+1)
	require.Equal(t, open, app.ctx.Hovered(app.surface))
	assert.NotEqual(t, before, app.ctx.Style(open).BackgroundColor)
	assert.Positive(t, app.Frame())

	app.MouseMove(r.Right+200, r.Bottom+200)
	assert.Equal(t, before, app.ctx.Style(open).BackgroundColor)
}

func TestAppAnimatesSidebar(t *testing.T) {
	app := newTestApp(t)
	sidebar := app.ids["sidebar"]
	app.Frame()
	first := app.ctx.Width(sidebar)
	for range 10 {
		app.Frame()
	}
	assert.Greater(t, app.ctx.Width(sidebar), first)

	app.ToggleAnimation()
	frozen := app.ctx.Width(sidebar)
	app.Frame()
	assert.Equal(t, frozen, app.ctx.Width(sidebar))
}

func TestAppZoomAndResize(t *testing.T) {
	app := newTestApp(t)
	app.ToggleAnimation()
	app.Zoom(2)
	x, y := app.ctx.SurfaceDPI(app.surface)
	assert.InDelta(t, 96*1.21, x, 1e-9)
	assert.InDelta(t, 96*1.21, y, 1e-9)
	app.Zoom(0)
	x, _ = app.ctx.SurfaceDPI(app.surface)
	assert.Equal(t, 96., x)

	app.Resize(400, 300)
	assert.Equal(t, 400., app.ctx.Width(app.ids["window"]))
	app.Frame()
	assert.Equal(t, image.Rect(0, 0, 400, 300), app.canvas.Image(app.surface).Bounds())
}

func TestAppWritesTrace(t *testing.T) {
	cfg := config.Default()
	cfg.Font.System = false
	cfg.Trace.Path = filepath.Join(t.TempDir(), "gogui.trace")
	app, err := NewApp(cfg, slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	app.Frame()
	assert.NoError(t, app.Close())
	assert.FileExists(t, cfg.Trace.Path)
}
