package yuletide

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestSanitizeLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "unlabeled"},
		{"   ", "unlabeled"},
		{"card-open", "card-open"},
		{"after drag", "after_drag"},
		{"../../etc", ".._.._etc"},
		{"圣诞", "__"},
		{"v1.2", "v1.2"},
	}
	for _, tt := range tests {
		if got := sanitizeLabel(tt.in); got != tt.want {
			t.Errorf("sanitizeLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnpremultiply(t *testing.T) {
	pixels := []byte{
		128, 64, 0, 128, // half-transparent orange
		255, 255, 255, 255, // opaque white
		0, 0, 0, 0, // clear
		200, 10, 10, 100, // over-bright channel clamps
	}
	img := unpremultiply(pixels, 2, 2)
	want := [][4]uint8{
		{255, 127, 0, 128},
		{255, 255, 255, 255},
		{0, 0, 0, 0},
		{255, 25, 25, 100},
	}
	for i, w := range want {
		got := img.Pix[i*4 : i*4+4]
		if got[0] != w[0] || got[1] != w[1] || got[2] != w[2] || got[3] != w[3] {
			t.Errorf("pixel %d = %v, want %v", i, got, w)
		}
	}
}

func TestWritePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shot.png")
	img := unpremultiply([]byte{255, 0, 0, 255, 0, 0, 128, 128}, 2, 1)
	if err := writePNG(path, img); err != nil {
		t.Fatalf("writePNG: %v", err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := decoded.Bounds(); b.Dx() != 2 || b.Dy() != 1 {
		t.Errorf("bounds = %v", b)
	}

	if err := writePNG(filepath.Join(t.TempDir(), "missing", "x.png"), img); err == nil {
		t.Error("expected error for a missing directory")
	}
}
