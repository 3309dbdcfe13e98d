package yuletide

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
)

// Fonts holds the overlay's typeface sources and caches faces per size.
// Go Regular is always present; an optional extra source (typically a CJK
// font) is chained after it so glyphs missing from Go Regular resolve.
type Fonts struct {
	base  *text.GoTextFaceSource
	extra *text.GoTextFaceSource
	faces map[float64]text.Face

	// Glyph tables for coverage checks, in chain order.
	cmaps []*sfnt.Font
	buf   sfnt.Buffer
}

// LoadFonts parses Go Regular and, if cfg.Path is set, the extra font file.
// A bad extra font is an error; the caller decides whether to fall back.
func LoadFonts(cfg FontConfig) (*Fonts, error) {
	base, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("parse go regular: %w", err)
	}
	baseGlyphs, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse go regular glyphs: %w", err)
	}
	f := &Fonts{
		base:  base,
		faces: make(map[float64]text.Face),
		cmaps: []*sfnt.Font{baseGlyphs},
	}
	if cfg.Path == "" {
		return f, nil
	}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		return f, fmt.Errorf("read font: %w", err)
	}
	extra, err := text.NewGoTextFaceSource(bytes.NewReader(data))
	if err != nil {
		return f, fmt.Errorf("parse font %s: %w", cfg.Path, err)
	}
	f.extra = extra
	// Without a glyph table the extra face is trusted to cover everything.
	if glyphs, err := sfnt.Parse(data); err == nil {
		f.cmaps = append(f.cmaps, glyphs)
	} else {
		f.cmaps = nil
	}
	return f, nil
}

// Covers reports whether every visible rune of s has a glyph in one of the
// loaded fonts.
func (f *Fonts) Covers(s string) bool {
	if f.cmaps == nil {
		return true
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			continue
		}
		if !f.hasGlyph(r) {
			return false
		}
	}
	return true
}

func (f *Fonts) hasGlyph(r rune) bool {
	for _, font := range f.cmaps {
		idx, err := font.GlyphIndex(&f.buf, r)
		if err == nil && idx != 0 {
			return true
		}
	}
	return false
}

// English card labels used when the configured ones cannot be rendered.
const (
	fallbackHeading  = "Merry Christmas"
	fallbackSubtitle = "MERRY CHRISTMAS"
	fallbackClose    = "Close"
)

// renderableCard replaces card labels the fonts cannot draw with English
// ones, logging each substitution.
func renderableCard(card CardConfig, fonts *Fonts) CardConfig {
	if fonts == nil {
		return card
	}
	labels := []struct {
		name     string
		label    *string
		fallback string
	}{
		{"heading", &card.Heading, fallbackHeading},
		{"subtitle", &card.Subtitle, fallbackSubtitle},
		{"close", &card.Close, fallbackClose},
	}
	for _, l := range labels {
		if fonts.Covers(*l.label) {
			continue
		}
		log.Printf("[yuletide] font: no glyphs for card %s %q; using %q", l.name, *l.label, l.fallback)
		*l.label = l.fallback
	}
	return card
}

// Face returns a face at the given pixel size.
func (f *Fonts) Face(size float64) text.Face {
	if face, ok := f.faces[size]; ok {
		return face
	}
	var face text.Face = &text.GoTextFace{Source: f.base, Size: size}
	if f.extra != nil {
		multi, err := text.NewMultiFace(face, &text.GoTextFace{Source: f.extra, Size: size})
		if err == nil {
			face = multi
		}
	}
	f.faces[size] = face
	return face
}

// lineHeight returns the vertical distance between baselines for face.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// measureText returns the width and height of s rendered with face.
func measureText(s string, face text.Face) (float64, float64) {
	return text.Measure(s, face, lineHeight(face))
}

// textStyle bundles the per-call text drawing parameters.
type textStyle struct {
	face  text.Face
	color Color
	alpha float64
	align text.Align
}

// drawText draws s with its top edge at y. x is the left edge, center or
// right edge depending on style.align.
func drawText(dst *ebiten.Image, s string, x, y float64, style textStyle) {
	if style.alpha <= 0 || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.Scale(
		float32(style.color.R),
		float32(style.color.G),
		float32(style.color.B),
		float32(style.color.A),
	)
	op.ColorScale.ScaleAlpha(float32(clamp01(style.alpha)))
	op.LineSpacing = lineHeight(style.face)
	op.PrimaryAlign = style.align
	text.Draw(dst, s, style.face, op)
}

// trackedWidth returns the width of s with spacing extra pixels between
// consecutive glyphs.
func trackedWidth(s string, face text.Face, spacing float64) float64 {
	w := 0.0
	n := 0
	for _, r := range s {
		w += text.Advance(string(r), face)
		n++
	}
	if n > 1 {
		w += spacing * float64(n-1)
	}
	return w
}

// drawTracked draws s one glyph at a time with spacing extra pixels between
// glyphs. Alignment applies to the whole tracked run.
func drawTracked(dst *ebiten.Image, s string, x, y, spacing float64, style textStyle) {
	if style.alpha <= 0 || s == "" {
		return
	}
	switch style.align {
	case text.AlignCenter:
		x -= trackedWidth(s, style.face, spacing) / 2
	case text.AlignEnd:
		x -= trackedWidth(s, style.face, spacing)
	}
	glyph := style
	glyph.align = text.AlignStart
	for _, r := range s {
		g := string(r)
		drawText(dst, g, x, y, glyph)
		x += text.Advance(g, style.face) + spacing
	}
}
