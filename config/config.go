package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"gogui/color"
	"gogui/gui"
)

const (
	DefaultWidth  = 800
	DefaultHeight = 600
)

type Config struct {
	Window    Window    `toml:"window"`
	DPI       DPI       `toml:"dpi"`
	Font      Font      `toml:"font"`
	Trace     Trace     `toml:"trace"`
	Elements  []Element `toml:"elements"`
	Animation Animation `toml:"animation"`
}

type Window struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// DPI zero values leave the engine defaults in place.
type DPI struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	BaseX float64 `toml:"base_x"`
	BaseY float64 `toml:"base_y"`
}

type Font struct {
	Family string `toml:"family"`
	Size   string `toml:"size"`
	// System enables system font discovery. Without it only the embedded
	// faces are used.
	System bool `toml:"system"`
}

type Trace struct {
	// Path of the Chrome trace file. Empty disables tracing.
	Path string `toml:"path"`
}

// Element is one node of the demo tree. Parent names an element declared
// earlier; an empty parent makes a surface root.
type Element struct {
	Name   string `toml:"name"`
	Parent string `toml:"parent"`
	Text   string `toml:"text"`
	Style  string `toml:"style"`
}

// Animation tweens the width of one element back and forth.
type Animation struct {
	Element string `toml:"element"`
	From    string `toml:"from"`
	To      string `toml:"to"`
	Frames  int    `toml:"frames"`
}

func Default() Config {
	return Config{
		Window: Window{
			Title:      "gogui",
			Width:      DefaultWidth,
			Height:     DefaultHeight,
			Background: "white",
		},
		Font: Font{Size: "16px", System: true},
		Elements: []Element{
			{Name: "window", Style: "width: 100%; height: 100%; flex-children: height; background-color: #eeeeee"},
			{Name: "toolbar", Parent: "window", Style: "width: 100%; child-axis: horizontal; padding: 4px; background-color: #333366"},
			{Name: "open", Parent: "toolbar", Text: "Open", Style: "padding: 4px 8px; margin-right: 4px; background-color: #555588; color: white"},
			{Name: "save", Parent: "toolbar", Text: "Save", Style: "padding: 4px 8px; background-color: #555588; color: white"},
			{Name: "content", Parent: "window", Style: "width: 100%; height: 100%; child-axis: horizontal; flex-children: width"},
			{Name: "sidebar", Parent: "content", Text: "Sidebar", Style: "width: 25%; height: 100%; padding: 8px; background-color: #ccccdd"},
			{Name: "main", Parent: "content", Text: "Hello from gogui\nMove the mouse around.", Style: "width: 75%; height: 100%; padding: 8px; border-width: 1px; border-color: #999999"},
		},
		Animation: Animation{Element: "sidebar", From: "10%", To: "25%", Frames: 60},
	}
}

// Load reads the TOML file at path on top of Default.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML on top of Default. Unknown keys are errors. Elements
// in the document replace the default tree instead of extending it.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	defaults := cfg.Elements
	cfg.Elements = nil
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.Elements == nil {
		cfg.Elements = defaults
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if _, err := color.Parse(c.Window.Background); err != nil {
		errs = append(errs, fmt.Errorf("window background: %w", err))
	}
	if c.DPI.X < 0 || c.DPI.Y < 0 || c.DPI.BaseX < 0 || c.DPI.BaseY < 0 {
		errs = append(errs, errors.New("dpi must not be negative"))
	}
	if _, err := c.FontSize(); err != nil {
		errs = append(errs, fmt.Errorf("font size: %w", err))
	}

	seen := map[string]bool{}
	for i, el := range c.Elements {
		switch {
		case el.Name == "":
			errs = append(errs, fmt.Errorf("element %d has no name", i))
		case seen[el.Name]:
			errs = append(errs, fmt.Errorf("element %q declared twice", el.Name))
		}
		if el.Parent != "" && !seen[el.Parent] {
			errs = append(errs, fmt.Errorf("element %q: parent %q not declared before it", el.Name, el.Parent))
		}
		seen[el.Name] = true
	}

	if a := c.Animation; a.Element != "" {
		if !seen[a.Element] {
			errs = append(errs, fmt.Errorf("animation: unknown element %q", a.Element))
		}
		from, err1 := gui.ParseLength(a.From)
		to, err2 := gui.ParseLength(a.To)
		if err := errors.Join(err1, err2); err != nil {
			errs = append(errs, fmt.Errorf("animation: %w", err))
		} else if from.Unit != to.Unit {
			errs = append(errs, fmt.Errorf("animation: %s and %s use different units", from, to))
		}
	}
	return errors.Join(errs...)
}

func (c *Config) FontSize() (gui.Length, error) {
	if c.Font.Size == "" {
		return gui.Px(16), nil
	}
	return gui.ParseLength(c.Font.Size)
}

// Build creates the configured elements under surface s and returns them
// by name. Style errors are collected; the elements are still created.
func (c *Config) Build(ctx *gui.Context, s gui.SurfaceID) (map[string]gui.ElementID, error) {
	ids := make(map[string]gui.ElementID, len(c.Elements))
	var errs []error
	ctx.BeginBatch()
	defer ctx.EndBatch()
	for _, el := range c.Elements {
		id := ctx.CreateElement()
		ids[el.Name] = id
		if p, ok := ids[el.Parent]; ok && el.Parent != "" {
			ctx.AppendChild(p, id)
		} else {
			ctx.AttachToSurface(id, s)
		}
		if el.Text != "" {
			ctx.SetText(id, el.Text)
		}
		if err := ctx.ApplyDeclarations(id, el.Style); err != nil {
			errs = append(errs, fmt.Errorf("element %q: %w", el.Name, err))
		}
	}
	return ids, errors.Join(errs...)
}
