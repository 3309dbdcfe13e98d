package yuletide

import "math"

// SnowConfig controls the falling-snow atmosphere field.
type SnowConfig struct {
	Count int `yaml:"count"`
	// Band is the side of the cube flakes are spawned in; vertical motion
	// wraps modulo Band.
	Band float64 `yaml:"band"`
	Size Range   `yaml:"size"`
	Seed Range   `yaml:"seed"`

	FallBase   float64 `yaml:"fallBase"`   // minimum fall speed, units/s
	FallSpread float64 `yaml:"fallSpread"` // extra speed scaled by fract(seed*0.1)
	Drift      float64 `yaml:"drift"`      // horizontal sway amplitude
	Opacity    float64 `yaml:"opacity"`
}

// DefaultSnowConfig returns the stock snowfall.
func DefaultSnowConfig() SnowConfig {
	return SnowConfig{
		Count:      6000,
		Band:       60,
		Size:       Range{Min: 1.5, Max: 4},
		Seed:       Range{Min: 0, Max: 100},
		FallBase:   1.5,
		FallSpread: 2,
		Drift:      1.2,
		Opacity:    0.9,
	}
}

// Flake is one generated snow particle.
type Flake struct {
	Origin Vec3
	Size   float64
	Seed   float64
}

// SnowField is the immutable set of flakes. Per-frame positions are derived
// by EvaluateSnow.
type SnowField struct {
	cfg    SnowConfig
	flakes []Flake
}

// GenerateSnow builds the snow field. rng may be nil to use ambient randomness.
func GenerateSnow(cfg SnowConfig, rng Float64Source) *SnowField {
	rng = sourceOrAmbient(rng)
	s := &SnowField{cfg: cfg, flakes: make([]Flake, cfg.Count)}
	for i := range s.flakes {
		s.flakes[i] = Flake{
			Origin: Vec3{
				X: (rng.Float64() - 0.5) * cfg.Band,
				Y: (rng.Float64() - 0.5) * cfg.Band,
				Z: (rng.Float64() - 0.5) * cfg.Band,
			},
			Size: cfg.Size.Random(rng),
			Seed: cfg.Seed.Random(rng),
		}
	}
	return s
}

// Len returns the flake count.
func (s *SnowField) Len() int { return len(s.flakes) }

// At returns the i-th flake.
func (s *SnowField) At(i int) Flake { return s.flakes[i] }

// Config returns the configuration the field was generated with.
func (s *SnowField) Config() SnowConfig { return s.cfg }

// FallSpeed returns the per-flake fall speed for a seed.
func (c SnowConfig) FallSpeed(seed float64) float64 {
	return c.FallBase + fract(seed*0.1)*c.FallSpread
}

// FlakeAt computes one flake's rendered position and size scale at elapsed
// time t (seconds).
func (c SnowConfig) FlakeAt(f Flake, t float64) (Vec3, float64) {
	half := c.Band / 2
	p := f.Origin
	p.Y -= t * c.FallSpeed(f.Seed)
	p.Y = floorMod(p.Y+half, c.Band) - half
	p.X += math.Sin(t*0.4+f.Seed) * c.Drift
	p.Z += math.Cos(t*0.2+f.Seed) * c.Drift
	return p, twinkle(t, f.Seed, 0.4, 0.6)
}

// fract returns the fractional part of x, always in [0, 1).
func fract(x float64) float64 {
	return x - math.Floor(x)
}

// floorMod is the floor-based modulo: the result has the sign of m.
func floorMod(x, m float64) float64 {
	return x - m*math.Floor(x/m)
}

// twinkle returns sin(1.5t+seed)*amp+base.
func twinkle(t, seed, amp, base float64) float64 {
	return math.Sin(t*1.5+seed)*amp + base
}
