package yuletide

import "math"

// StarConfig places the topper above the spiral.
type StarConfig struct {
	Points      int     `yaml:"points"`
	InnerRadius float64 `yaml:"innerRadius"`
	OuterRadius float64 `yaml:"outerRadius"`
	Y           float64 `yaml:"y"`
	// Glow is the radius of the soft halo drawn behind the star, in
	// world units at full scale.
	Glow float64 `yaml:"glow"`
}

// DefaultStarConfig returns the stock five-point topper.
func DefaultStarConfig() StarConfig {
	return StarConfig{
		Points:      5,
		InnerRadius: 0.18,
		OuterRadius: 0.45,
		Y:           5.8,
		Glow:        1.4,
	}
}

// StarOutline returns the 2*Points outline vertices of a star in its own
// plane (Y up), alternating outer and inner radius, with the first tip at
// angle -π/2.
func StarOutline(cfg StarConfig) []Vec2 {
	n := cfg.Points
	if n < 2 {
		n = 2
	}
	out := make([]Vec2, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := cfg.InnerRadius
		if i%2 == 0 {
			r = cfg.OuterRadius
		}
		angle := float64(i)/float64(n)*math.Pi - math.Pi/2
		out = append(out, Vec2{X: math.Cos(angle) * r, Y: math.Sin(angle) * r})
	}
	return out
}
