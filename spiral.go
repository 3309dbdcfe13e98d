package yuletide

import "math"

// SpiralConfig describes the helical light string wound around the tree.
type SpiralConfig struct {
	Segments   int     `yaml:"segments"`
	Loops      float64 `yaml:"loops"`
	TopHeight  float64 `yaml:"topHeight"`
	Radius     float64 `yaml:"radius"`
	ConeHeight float64 `yaml:"coneHeight"`
	BaseY      float64 `yaml:"baseY"`
	// Width is the on-screen ribbon width in pixels.
	Width float64 `yaml:"width"`
	// GlowScale widens the glow line horizontally (x/z) around the main line.
	GlowScale float64 `yaml:"glowScale"`
}

// DefaultSpiralConfig returns the stock six-loop spiral.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{
		Segments:   1200,
		Loops:      6,
		TopHeight:  8.8,
		Radius:     4.0,
		ConeHeight: 9.5,
		BaseY:      -3.3,
		Width:      1.5,
		GlowScale:  1.008,
	}
}

// SpiralPath is an ordered, immutable helix. Point i always comes after
// point i-1 along the path, which is what lets growth reveal a prefix.
type SpiralPath struct {
	points []Vec3
}

// GenerateSpiral returns Segments+1 points descending from TopHeight to 0
// while winding Loops times around the Y axis.
func GenerateSpiral(cfg SpiralConfig) *SpiralPath {
	n := cfg.Segments
	if n < 1 {
		n = 1
	}
	pts := make([]Vec3, n+1)
	for i := 0; i <= n; i++ {
		t := float64(i) / float64(n)
		angle := t * 2 * math.Pi * cfg.Loops
		h := (1 - t) * cfg.TopHeight
		r := cfg.Radius * (1 - h/cfg.ConeHeight)
		pts[i] = Vec3{X: math.Cos(angle) * r, Y: h + cfg.BaseY, Z: math.Sin(angle) * r}
	}
	return &SpiralPath{points: pts}
}

// Len returns the number of points on the path.
func (p *SpiralPath) Len() int { return len(p.points) }

// At returns the i-th point.
func (p *SpiralPath) At(i int) Vec3 { return p.points[i] }

// Prefix returns the first n points. n is clamped to [0, Len]. The returned
// slice aliases the path and must not be modified.
func (p *SpiralPath) Prefix(n int) []Vec3 {
	if n < 0 {
		n = 0
	}
	if n > len(p.points) {
		n = len(p.points)
	}
	return p.points[:n:n]
}
