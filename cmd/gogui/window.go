package main

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Window presents a canvas raster in an SDL window.
type Window struct {
	sdlWindow *sdl.Window
	redMask   uint32
	greenMask uint32
	blueMask  uint32
	alphaMask uint32
}

func NewWindow(title string, width, height int) (*Window, error) {
	window, err := sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	w := &Window{sdlWindow: window}
	if sdl.BYTEORDER == sdl.BIG_ENDIAN {
		w.redMask = 0xff000000
		w.greenMask = 0x00ff0000
		w.blueMask = 0x0000ff00
		w.alphaMask = 0x000000ff
	} else {
		w.redMask = 0x000000ff
		w.greenMask = 0x0000ff00
		w.blueMask = 0x00ff0000
		w.alphaMask = 0xff000000
	}
	return w, nil
}

// Present copies area of img into the window.
func (w *Window) Present(img *image.RGBA, area image.Rectangle) error {
	if img == nil {
		return nil
	}
	if area = area.Intersect(img.Bounds()); area.Empty() {
		return nil
	}
	size := img.Bounds().Size()
	surface, err := sdl.CreateRGBSurfaceFrom(
		unsafe.Pointer(&img.Pix[0]),
		int32(size.X), int32(size.Y), 32, img.Stride,
		w.redMask, w.greenMask, w.blueMask, w.alphaMask,
	)
	if err != nil {
		return fmt.Errorf("create rgb surface: %w", err)
	}
	defer surface.Free()

	windowSurface, err := w.sdlWindow.GetSurface()
	if err != nil {
		return fmt.Errorf("get window surface: %w", err)
	}
	rect := &sdl.Rect{X: int32(area.Min.X), Y: int32(area.Min.Y), W: int32(area.Dx()), H: int32(area.Dy())}
	if err := surface.Blit(rect, windowSurface, rect); err != nil {
		return fmt.Errorf("blit: %w", err)
	}
	return w.sdlWindow.UpdateSurface()
}

func (w *Window) Destroy() error {
	if w.sdlWindow == nil {
		return errors.New("window already destroyed")
	}
	err := w.sdlWindow.Destroy()
	w.sdlWindow = nil
	return err
}
