package font

import (
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/adrg/sysfont"
	"github.com/fogleman/gg"
	fnt "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"gogui/gui"
)

// DefaultSize is used when a description carries no usable size.
const DefaultSize = 16.

// Face is a font face loaded at a fixed pixel size. It implements gui.Font.
type Face struct {
	face       fnt.Face
	Label      string
	Pixels     float64
	lineHeight float64
}

// newFace sizes lines to the face's line spacing, grown if needed so that
// ascenders and descenders of one line stay inside it.
func newFace(face fnt.Face, label string, pixels float64) *Face {
	height := max(Linespace(face), math.Ceil(Ascent(face)+Descent(face)))
	return &Face{face: face, Label: label, Pixels: pixels, lineHeight: height}
}

func (f *Face) LineHeight() float64 {
	return f.lineHeight
}

// Source returns the underlying x/image face.
func (f *Face) Source() fnt.Face {
	return f.face
}

func (f *Face) String() string {
	return fmt.Sprintf("%s %gpx", f.Label, f.Pixels)
}

type faceKey struct {
	family string
	weight gui.FontWeight
	slant  gui.FontSlant
	pixels float64
}

// Manager resolves font descriptions to faces. It implements
// gui.FontProvider and is not safe for concurrent use.
type Manager struct {
	families      []string
	defaultFamily string
	system        bool
	finder        *sysfont.Finder
	faces         map[faceKey]*Face
	log           *slog.Logger
}

type Option func(*Manager)

// WithDefaultFamily sets the family used by descriptions without one.
func WithDefaultFamily(name string) Option {
	return func(m *Manager) {
		m.defaultFamily = name
	}
}

// WithoutSystemFonts restricts the manager to the embedded Go fonts.
func WithoutSystemFonts() Option {
	return func(m *Manager) {
		m.system = false
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(m *Manager) {
		m.log = log
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		defaultFamily: "sans",
		system:        true,
		faces:         map[faceKey]*Face{},
		log:           slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// EncodeFamily returns the identifier for name, registering it on first
// use. The empty name is the default family.
func (m *Manager) EncodeFamily(name string) gui.FontFamily {
	if name == "" {
		return 0
	}
	for i, f := range m.families {
		if strings.EqualFold(f, name) {
			return gui.FontFamily(i + 1)
		}
	}
	m.families = append(m.families, name)
	return gui.FontFamily(len(m.families))
}

func (m *Manager) DecodeFamily(family gui.FontFamily) string {
	if family == 0 || int(family) > len(m.families) {
		return ""
	}
	return m.families[family-1]
}

// PixelSize converts a font size to pixels. Points are 1/72 inch at dpiY,
// pixels are taken as is.
func PixelSize(size gui.Length, dpiY float64) float64 {
	switch size.Unit {
	case gui.UnitPixels:
		return size.Value
	case gui.UnitPoints:
		return size.Value * dpiY / 72
	}
	return DefaultSize
}

// AcquireFont returns a face for desc, loading it on first use. Sizes that
// round to zero pixels have no face.
func (m *Manager) AcquireFont(desc gui.FontDesc, dpiX, dpiY float64) gui.Font {
	pixels := math.Round(PixelSize(desc.Size, dpiY)*4) / 4
	if pixels <= 0 {
		return nil
	}
	family := m.DecodeFamily(desc.Family)
	if family == "" {
		family = m.defaultFamily
	}
	key := faceKey{family: family, weight: desc.Weight, slant: desc.Slant, pixels: pixels}
	if face, ok := m.faces[key]; ok {
		return face
	}

	face := m.load(key)
	m.faces[key] = face
	return face
}

func (m *Manager) load(key faceKey) *Face {
	if m.system {
		if m.finder == nil {
			m.finder = sysfont.NewFinder(nil)
		}
		query := strings.TrimSpace(key.family + " " + styleQuery(key.weight, key.slant))
		if match := m.finder.Match(query); match != nil {
			face, err := LoadFace(match.Filename, key.pixels)
			if err == nil {
				face.Label = match.Name
				m.log.Debug("loaded font", "query", query, "font", face)
				return face
			}
			m.log.Warn("system font unusable, using embedded face", "query", query, "file", match.Filename, "err", err)
		} else {
			m.log.Warn("no system font matches, using embedded face", "query", query)
		}
	}
	return embeddedFace(key, m.log)
}

func styleQuery(w gui.FontWeight, s gui.FontSlant) string {
	var parts []string
	if w == gui.FontWeightBold {
		parts = append(parts, "bold")
	}
	if s == gui.FontSlantItalic {
		parts = append(parts, "italic")
	}
	return strings.Join(parts, " ")
}

// LoadFace loads the font file at path at the given pixel size.
func LoadFace(path string, pixels float64) (*Face, error) {
	// gg sizes faces in points at 72 DPI, which makes points equal pixels.
	face, err := gg.LoadFontFace(path, pixels)
	if err != nil {
		return nil, fmt.Errorf("load font %q: %w", path, err)
	}
	return newFace(face, path, pixels), nil
}

func embeddedFace(key faceKey, log *slog.Logger) *Face {
	data, label := goregular.TTF, "Go Regular"
	switch {
	case key.weight == gui.FontWeightBold && key.slant == gui.FontSlantItalic:
		data, label = gobolditalic.TTF, "Go Bold Italic"
	case key.weight == gui.FontWeightBold:
		data, label = gobold.TTF, "Go Bold"
	case key.slant == gui.FontSlantItalic:
		data, label = goitalic.TTF, "Go Italic"
	}
	parsed, err := opentype.Parse(data)
	if err == nil {
		var face fnt.Face
		face, err = opentype.NewFace(parsed, &opentype.FaceOptions{
			Size:    key.pixels,
			DPI:     72,
			Hinting: fnt.HintingFull,
		})
		if err == nil {
			return newFace(face, label, key.pixels)
		}
	}
	log.Warn("embedded font failed, using fixed face", "font", label, "err", err)
	return newFace(basicfont.Face7x13, "basic 7x13", 13)
}

// Measure returns the advance of text rounded up to whole pixels.
func Measure(face fnt.Face, text string) float64 {
	return math.Ceil(float64(fnt.MeasureString(face, text)) / 64.0)
}

// Linespace is the distance between consecutive baselines.
func Linespace(face fnt.Face) float64 {
	return math.Ceil(float64(face.Metrics().Height) / 64.0)
}

func Ascent(face fnt.Face) float64 {
	return float64(face.Metrics().Ascent) / 64.0
}

func Descent(face fnt.Face) float64 {
	return float64(face.Metrics().Descent) / 64.0
}
