package yuletide

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestFalloff(t *testing.T) {
	tests := []struct {
		name string
		fn   falloffFunc
		d    float64
		want float64
	}{
		{"tree center", treeFalloff, 0, 1},
		{"tree quarter", treeFalloff, 0.25, 0.25},
		{"tree edge", treeFalloff, 0.5, 0},
		{"tree outside", treeFalloff, 0.8, 0},
		{"snow center", snowFalloff, 0, 1},
		{"snow quarter", snowFalloff, 0.25, 0.5},
		{"snow edge", snowFalloff, 0.5, 0},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.d); !approxEqual(got, tt.want, 1e-12) {
			t.Errorf("%s: f(%v) = %v, want %v", tt.name, tt.d, got, tt.want)
		}
	}
}

func TestFalloffPixels(t *testing.T) {
	const size = 8
	pix := falloffPixels(size, snowFalloff)
	if len(pix) != size*size*4 {
		t.Fatalf("len = %d", len(pix))
	}
	at := func(x, y int) []byte {
		i := (y*size + x) * 4
		return pix[i : i+4]
	}
	if c := at(0, 0); c[3] != 0 {
		t.Errorf("corner alpha = %d, want 0", c[3])
	}
	center := at(size/2, size/2)
	if center[3] < 200 {
		t.Errorf("center alpha = %d, want bright", center[3])
	}
	for i := 0; i < len(pix); i += 4 {
		if pix[i] != pix[i+3] || pix[i+1] != pix[i+3] || pix[i+2] != pix[i+3] {
			t.Fatalf("pixel %d not premultiplied white: %v", i/4, pix[i:i+4])
		}
	}
	// Symmetric about the center.
	if at(1, 2)[3] != at(size-2, size-3)[3] {
		t.Error("falloff not symmetric")
	}
}

func TestDrawPoints_Culling(t *testing.T) {
	cfg := DefaultConfig().Render
	r := NewRenderer(cfg)
	cam := testCamera()
	target := ebiten.NewImage(800, 600)

	frames := []ParticleFrame{
		{Position: Vec3{}, Color: ColorWhite, Size: 3, Opacity: 1},
		{Position: Vec3{X: 1}, Color: ColorWhite, Size: 3, Opacity: 0},
		{Position: Vec3{Z: 40}, Color: ColorWhite, Size: 3, Opacity: 1},
		{Position: Vec3{X: 1000}, Color: ColorWhite, Size: 3, Opacity: 1},
	}
	r.resetStats()
	drawn := r.DrawField(target, cam, frames, Vec3{})
	if drawn != 1 {
		t.Errorf("drawn = %d, want 1", drawn)
	}
	if r.stats.points != 1 || r.stats.culled != 2 {
		t.Errorf("stats = %+v, want 1 point 2 culled", r.stats)
	}
	if r.stats.drawCalls != 1 || r.stats.triangles != 2 {
		t.Errorf("stats = %+v, want 1 call 2 triangles", r.stats)
	}
}

func TestDrawPoints_NothingVisible(t *testing.T) {
	r := NewRenderer(DefaultConfig().Render)
	target := ebiten.NewImage(64, 64)
	r.resetStats()
	if n := r.DrawSnow(target, testCamera(), nil); n != 0 {
		t.Errorf("drawn = %d", n)
	}
	if r.stats.drawCalls != 0 {
		t.Error("empty batch issued a draw call")
	}
}

func TestDrawStar_HiddenAtZeroScale(t *testing.T) {
	r := NewRenderer(DefaultConfig().Render)
	target := ebiten.NewImage(64, 64)
	pal := DefaultPalette()
	outline := StarOutline(DefaultStarConfig())
	r.resetStats()
	r.DrawStar(target, testCamera(), outline, Vec3{Y: 5.8}, 0, 1.4, pal.Star, DefaultLighting(pal))
	if r.stats.drawCalls != 0 {
		t.Errorf("zero-scale star drew %d calls", r.stats.drawCalls)
	}
	r.DrawStar(target, testCamera(), outline, Vec3{Y: 5.8}, 1, 1.4, pal.Star, DefaultLighting(pal))
	if r.stats.drawCalls != 2 {
		t.Errorf("star drew %d calls, want halo and body", r.stats.drawCalls)
	}
	if want := len(outline) + 2; r.stats.triangles != want {
		t.Errorf("triangles = %d, want %d", r.stats.triangles, want)
	}
}
