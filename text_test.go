package yuletide

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

func TestLoadFonts_Default(t *testing.T) {
	f, err := LoadFonts(FontConfig{Size: 16})
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	if f.Face(16) != f.Face(16) {
		t.Error("Face not cached per size")
	}
	if f.Face(16) == f.Face(24) {
		t.Error("different sizes share a face")
	}
}

func TestLoadFonts_BadExtra(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(path, []byte("nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFonts(FontConfig{Path: path, Size: 16})
	if err == nil {
		t.Fatal("expected error for a corrupt font")
	}
	if f == nil || f.Face(12) == nil {
		t.Error("base fonts unusable after extra font failure")
	}
}

func TestTrackedWidth(t *testing.T) {
	f, _ := LoadFonts(FontConfig{Size: 16})
	face := f.Face(10)
	plain := trackedWidth("HINT", face, 0)
	sum := 0.0
	for _, r := range "HINT" {
		sum += text.Advance(string(r), face)
	}
	if !approxEqual(plain, sum, 1e-9) {
		t.Errorf("untracked width %v, want %v", plain, sum)
	}
	if got := trackedWidth("HINT", face, 6); !approxEqual(got, plain+18, 1e-9) {
		t.Errorf("tracked width %v, want %v", got, plain+18)
	}
	if got := trackedWidth("", face, 6); got != 0 {
		t.Errorf("empty width %v", got)
	}
	if got := trackedWidth("•", face, 6); !approxEqual(got, text.Advance("•", face), 1e-9) {
		t.Errorf("single glyph got spacing: %v", got)
	}
}

func TestMeasureText(t *testing.T) {
	f, _ := LoadFonts(FontConfig{Size: 16})
	face := f.Face(16)
	w, h := measureText("Merry Christmas", face)
	if w <= 0 || h <= 0 {
		t.Errorf("measure = %v x %v", w, h)
	}
	w2, _ := measureText("Merry Christmas!", face)
	if w2 <= w {
		t.Errorf("longer string measured narrower: %v <= %v", w2, w)
	}
}

func TestFonts_Covers(t *testing.T) {
	f, err := LoadFonts(FontConfig{Size: 16})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		s    string
		want bool
	}{
		{"", true},
		{"Merry Christmas", true},
		{"MERRY CHRISTMAS\n", true},
		{"Close", true},
		{"圣诞快乐", false},
		{"收起", false},
		{"Merry 圣诞", false},
	}
	for _, tt := range tests {
		if got := f.Covers(tt.s); got != tt.want {
			t.Errorf("Covers(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestFonts_CoversWithExtraFont(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mono.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	f, err := LoadFonts(FontConfig{Path: path, Size: 16})
	if err != nil {
		t.Fatalf("LoadFonts: %v", err)
	}
	if len(f.cmaps) != 2 {
		t.Fatalf("glyph tables = %d, want 2", len(f.cmaps))
	}
	if !f.Covers("Merry Christmas") || f.Covers("圣诞快乐") {
		t.Error("extra Latin font changed coverage")
	}
}

func TestRenderableCard(t *testing.T) {
	f, err := LoadFonts(FontConfig{Size: 16})
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		in   CardConfig
		want CardConfig
	}{
		{
			name: "default labels",
			in:   DefaultConfig().Card,
			want: CardConfig{Heading: "Merry Christmas", Subtitle: "MERRY CHRISTMAS", Close: "Close"},
		},
		{
			name: "latin labels kept",
			in:   CardConfig{Heading: "Joyeux Noël", Subtitle: "HAPPY HOLIDAYS", Close: "Done"},
			want: CardConfig{Heading: "Joyeux Noël", Subtitle: "HAPPY HOLIDAYS", Close: "Done"},
		},
		{
			name: "subtitle only",
			in:   CardConfig{Heading: "Hi", Subtitle: "快乐", Close: "OK"},
			want: CardConfig{Heading: "Hi", Subtitle: "MERRY CHRISTMAS", Close: "OK"},
		},
	}
	for _, tt := range tests {
		got := renderableCard(tt.in, f)
		if got.Heading != tt.want.Heading || got.Subtitle != tt.want.Subtitle || got.Close != tt.want.Close {
			t.Errorf("%s: labels = %q %q %q, want %q %q %q", tt.name,
				got.Heading, got.Subtitle, got.Close,
				tt.want.Heading, tt.want.Subtitle, tt.want.Close)
		}
		if got.ImagePath != tt.in.ImagePath || got.MaxWidth != tt.in.MaxWidth {
			t.Errorf("%s: non-label fields changed", tt.name)
		}
	}
	if got := renderableCard(DefaultConfig().Card, nil); got.Heading != DefaultConfig().Card.Heading {
		t.Error("nil fonts rewrote labels")
	}
}
