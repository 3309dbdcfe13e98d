package yuletide

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the named color table every visual component reads from.
type Palette struct {
	Background    Color
	Leaves        []Color
	OrnamentRed   Color
	OrnamentGold  Color
	Trunk         Color
	Star          Color
	Spiral        Color
	SpiralGlow    Color
	Snow          Color
	Title         Color
	Accent        Color
	LoadingTree   Color
	LoadingTrunk  Color
	LoadingStar   Color
	Text          Color
	CardSurface   Color
	CardHeading   Color
	CardSubtitle  Color
	OverlayShadow Color
}

// ParseHex parses a "#rrggbb" string into an opaque Color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is like ParseHex but panics on malformed input. Intended for
// static tables.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// DefaultPalette returns the stock winter-night palette.
func DefaultPalette() Palette {
	return Palette{
		Background: MustHex("#02040a"),
		Leaves: []Color{
			MustHex("#1a472a"), // deep forest
			MustHex("#2d5a27"), // pine
			MustHex("#4ade80"), // glowing green
			MustHex("#ffffff"), // snow sparkle
		},
		OrnamentRed:   MustHex("#ff1111"),
		OrnamentGold:  MustHex("#ffdd00"),
		Trunk:         MustHex("#3d2b1f"),
		Star:          MustHex("#ffcc00"),
		Spiral:        MustHex("#ffff33"),
		SpiralGlow:    MustHex("#ffffff"),
		Snow:          MustHex("#ffffff"),
		Title:         MustHex("#ffd700"),
		Accent:        MustHex("#e11d48"),
		LoadingTree:   MustHex("#22c55e"),
		LoadingTrunk:  MustHex("#2d1b0f"),
		LoadingStar:   MustHex("#fef08a"),
		Text:          MustHex("#ffffff"),
		CardSurface:   MustHex("#ffffff"),
		CardHeading:   MustHex("#1f2937"),
		CardSubtitle:  MustHex("#9ca3af"),
		OverlayShadow: MustHex("#000000"),
	}
}
