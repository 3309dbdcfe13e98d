package yuletide

import (
	"math"
	"math/rand/v2"
)

// Population identifies one of the three particle groups composing the tree.
type Population uint8

const (
	PopulationLeaves    Population = iota // conical foliage volume
	PopulationOrnaments                   // thin shell on the cone surface
	PopulationTrunk                       // cylinder under the cone
)

// String returns the population name.
func (p Population) String() string {
	switch p {
	case PopulationLeaves:
		return "leaves"
	case PopulationOrnaments:
		return "ornaments"
	case PopulationTrunk:
		return "trunk"
	default:
		return "unknown"
	}
}

// Span is a half-open index range [Start, End) into a combined buffer.
type Span struct {
	Start, End int
}

// Len returns the number of indices covered by the span.
func (s Span) Len() int { return s.End - s.Start }

// Particle holds the generated, immutable attributes of one tree particle.
// Motion is derived from Initial and Final each frame; neither is ever
// rewritten after generation.
type Particle struct {
	Final   Vec3  // resting position in the tree shape
	Initial Vec3  // scattered origin the convergence starts from
	Color   Color // opaque base color
	Size    float64
	Seed    float64 // per-particle phase for twinkle
}

// FieldConfig controls population sizes and the tree silhouette.
type FieldConfig struct {
	LeafCount     int `yaml:"leafCount"`
	OrnamentCount int `yaml:"ornamentCount"`
	TrunkCount    int `yaml:"trunkCount"`

	// ConeRadius is the cone radius at height 0; ConeHeight is where the
	// radius reaches zero.
	ConeRadius float64 `yaml:"coneRadius"`
	ConeHeight float64 `yaml:"coneHeight"`
	// LeafHeight and OrnamentHeight bound the sampled heights.
	LeafHeight     float64 `yaml:"leafHeight"`
	OrnamentHeight float64 `yaml:"ornamentHeight"`
	// BaseY shifts sampled heights into scene space.
	BaseY float64 `yaml:"baseY"`
	// LeafBias is the power-law exponent on the radial offset (<1 pushes
	// samples outward, away from a dense core).
	LeafBias       float64 `yaml:"leafBias"`
	OrnamentJitter float64 `yaml:"ornamentJitter"`

	TrunkRadius float64 `yaml:"trunkRadius"`
	TrunkY      Range   `yaml:"trunkY"`

	LeafSize     Range   `yaml:"leafSize"`
	OrnamentSize Range   `yaml:"ornamentSize"`
	TrunkSize    float64 `yaml:"trunkSize"`

	// ScatterExtent is the half side of the cube initial positions are
	// drawn from.
	ScatterExtent float64 `yaml:"scatterExtent"`
	SeedRange     Range   `yaml:"seedRange"`
}

// DefaultFieldConfig returns the stock tree field.
func DefaultFieldConfig() FieldConfig {
	return FieldConfig{
		LeafCount:      15000,
		OrnamentCount:  800,
		TrunkCount:     1500,
		ConeRadius:     3.8,
		ConeHeight:     9.5,
		LeafHeight:     9,
		OrnamentHeight: 8.5,
		BaseY:          -3.5,
		LeafBias:       0.7,
		OrnamentJitter: 0.3,
		TrunkRadius:    0.5,
		TrunkY:         Range{Min: -5.5, Max: -2.5},
		LeafSize:       Range{Min: 2, Max: 5},
		OrnamentSize:   Range{Min: 8, Max: 13},
		TrunkSize:      3,
		ScatterExtent:  80,
		SeedRange:      Range{Min: 0, Max: 100},
	}
}

// Total returns the size of the combined buffer.
func (c FieldConfig) Total() int {
	return c.LeafCount + c.OrnamentCount + c.TrunkCount
}

// RadiusAt returns the cone radius at the given sampled height.
func (c FieldConfig) RadiusAt(height float64) float64 {
	return c.ConeRadius * (1 - height/c.ConeHeight)
}

// Field is the combined, read-only particle buffer for the three populations.
type Field struct {
	particles []Particle
	spans     [3]Span
}

// Len returns the total particle count.
func (f *Field) Len() int { return len(f.particles) }

// At returns the i-th particle of the combined buffer.
func (f *Field) At(i int) Particle { return f.particles[i] }

// Span returns the index range occupied by a population.
func (f *Field) Span(p Population) Span { return f.spans[p] }

// Population returns the population owning index i.
func (f *Field) Population(i int) Population {
	switch {
	case i < f.spans[PopulationLeaves].End:
		return PopulationLeaves
	case i < f.spans[PopulationOrnaments].End:
		return PopulationOrnaments
	default:
		return PopulationTrunk
	}
}

// Float64Source is the subset of *rand.Rand the generators draw from.
type Float64Source interface {
	Float64() float64
}

// ambientRand draws from the package-level math/rand/v2 source.
type ambientRand struct{}

func (ambientRand) Float64() float64 { return rand.Float64() }

func sourceOrAmbient(rng Float64Source) Float64Source {
	if rng == nil {
		return ambientRand{}
	}
	return rng
}

// Random returns a random float64 in [Min, Max).
func (r Range) Random(rng Float64Source) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + sourceOrAmbient(rng).Float64()*(r.Max-r.Min)
}

// GenerateField builds the combined tree buffer. rng may be nil to use
// ambient randomness. The returned Field is never modified afterwards.
func GenerateField(cfg FieldConfig, pal Palette, rng Float64Source) *Field {
	rng = sourceOrAmbient(rng)
	f := &Field{particles: make([]Particle, 0, cfg.Total())}

	start := 0
	for i := 0; i < cfg.LeafCount; i++ {
		f.particles = append(f.particles, leafParticle(cfg, pal, rng))
	}
	f.spans[PopulationLeaves] = Span{start, len(f.particles)}

	start = len(f.particles)
	for i := 0; i < cfg.OrnamentCount; i++ {
		f.particles = append(f.particles, ornamentParticle(cfg, pal, rng))
	}
	f.spans[PopulationOrnaments] = Span{start, len(f.particles)}

	start = len(f.particles)
	for i := 0; i < cfg.TrunkCount; i++ {
		f.particles = append(f.particles, trunkParticle(cfg, pal, rng))
	}
	f.spans[PopulationTrunk] = Span{start, len(f.particles)}

	for i := range f.particles {
		p := &f.particles[i]
		p.Initial = scatter(cfg.ScatterExtent, rng)
		p.Seed = cfg.SeedRange.Random(rng)
	}
	return f
}

func leafParticle(cfg FieldConfig, pal Palette, rng Float64Source) Particle {
	h := rng.Float64() * cfg.LeafHeight
	angle := rng.Float64() * 2 * math.Pi
	r := math.Pow(rng.Float64(), cfg.LeafBias) * cfg.RadiusAt(h)

	var c Color
	if n := len(pal.Leaves); n > 0 {
		c = pal.Leaves[int(rng.Float64()*float64(n))%n]
	}
	return Particle{
		Final: Vec3{X: math.Cos(angle) * r, Y: h + cfg.BaseY, Z: math.Sin(angle) * r},
		Color: c,
		Size:  cfg.LeafSize.Random(rng),
	}
}

func ornamentParticle(cfg FieldConfig, pal Palette, rng Float64Source) Particle {
	h := rng.Float64() * cfg.OrnamentHeight
	radius := cfg.RadiusAt(h)
	angle := rng.Float64() * 2 * math.Pi

	// x and z take independent jitter, so the ring is a thin noisy shell
	// rather than a perfect circle.
	x := math.Cos(angle) * (radius + (rng.Float64()-0.5)*cfg.OrnamentJitter)
	z := math.Sin(angle) * (radius + (rng.Float64()-0.5)*cfg.OrnamentJitter)

	c := pal.OrnamentGold
	if rng.Float64() > 0.5 {
		c = pal.OrnamentRed
	}
	return Particle{
		Final: Vec3{X: x, Y: h + cfg.BaseY, Z: z},
		Color: c,
		Size:  cfg.OrnamentSize.Random(rng),
	}
}

func trunkParticle(cfg FieldConfig, pal Palette, rng Float64Source) Particle {
	angle := rng.Float64() * 2 * math.Pi
	r := math.Sqrt(rng.Float64()) * cfg.TrunkRadius
	return Particle{
		Final: Vec3{X: math.Cos(angle) * r, Y: cfg.TrunkY.Random(rng), Z: math.Sin(angle) * r},
		Color: pal.Trunk,
		Size:  cfg.TrunkSize,
	}
}

// scatter returns a point uniform in the cube [-extent, extent)^3.
func scatter(extent float64, rng Float64Source) Vec3 {
	return Vec3{
		X: (rng.Float64() - 0.5) * extent * 2,
		Y: (rng.Float64() - 0.5) * extent * 2,
		Z: (rng.Float64() - 0.5) * extent * 2,
	}
}
