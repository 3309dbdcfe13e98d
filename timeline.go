package yuletide

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Timeline holds the fixed phase durations of the intro choreography. All
// progress values are pure functions of elapsed seconds since the scene was
// mounted, so pausing and resuming the clock reproduces the same frame.
type Timeline struct {
	// ConvergeDuration is how long particles take to fly from their
	// scattered origins into the tree.
	ConvergeDuration float64 `yaml:"convergeDuration"`
	// GrowthStart is when the spiral starts growing and the star pops in.
	GrowthStart float64 `yaml:"growthStart"`
	// LineGrowthDuration is how long the spiral takes to reach full length.
	LineGrowthDuration float64 `yaml:"lineGrowthDuration"`
	// StarPopRate multiplies time since GrowthStart into star scale, so the
	// star is fully grown after 1/StarPopRate seconds.
	StarPopRate float64 `yaml:"starPopRate"`

	// SwayAmplitude and SwaySpeed shape the idle sway after convergence.
	SwayAmplitude float64 `yaml:"swayAmplitude"`
	SwaySpeed     float64 `yaml:"swaySpeed"`
	// TwinkleAmplitude is the relative point-size modulation after
	// convergence.
	TwinkleAmplitude float64 `yaml:"twinkleAmplitude"`
	// SpinTurns is how many full turns the scattered origin is rotated by
	// at the start of convergence.
	SpinTurns float64 `yaml:"spinTurns"`
}

// DefaultTimeline returns the stock intro timing.
func DefaultTimeline() Timeline {
	return Timeline{
		ConvergeDuration:   0.5,
		GrowthStart:        0.5,
		LineGrowthDuration: 0.8,
		StarPopRate:        6,
		SwayAmplitude:      0.05,
		SwaySpeed:          0.4,
		TwinkleAmplitude:   0.15,
		SpinTurns:          2,
	}
}

// ConvergenceProgress returns clamp(t/ConvergeDuration, 0, 1).
func (tl Timeline) ConvergenceProgress(t float64) float64 {
	if tl.ConvergeDuration <= 0 {
		return 1
	}
	return clamp01(t / tl.ConvergeDuration)
}

// EasedConvergence returns the quintic ease-out of ConvergenceProgress:
// 1-(1-p)^5. It is exactly 0 at p=0 and exactly 1 at p=1.
func (tl Timeline) EasedConvergence(t float64) float64 {
	return easeOutQuint(tl.ConvergenceProgress(t))
}

// Converged reports whether convergence has completed at time t.
func (tl Timeline) Converged(t float64) bool {
	return tl.ConvergenceProgress(t) >= 1
}

// SpinAngle returns the xz rotation applied to a scattered origin. It decays
// from SpinTurns full turns to zero as the eased progress reaches 1.
func (tl Timeline) SpinAngle(eased float64) float64 {
	return (1 - eased) * tl.SpinTurns * 2 * math.Pi
}

// GrowthProgress returns clamp((t-GrowthStart)/LineGrowthDuration, 0, 1).
func (tl Timeline) GrowthProgress(t float64) float64 {
	if t < tl.GrowthStart {
		return 0
	}
	// Pinned so floor(n*p) reaches n exactly at the end time.
	if tl.LineGrowthDuration <= 0 || t >= tl.GrowthStart+tl.LineGrowthDuration {
		return 1
	}
	return clamp01((t - tl.GrowthStart) / tl.LineGrowthDuration)
}

// VisibleSpiralPoints returns floor(pathLen*growth): how many leading
// points of a path of pathLen points are drawn at time t.
func (tl Timeline) VisibleSpiralPoints(t float64, pathLen int) int {
	n := int(math.Floor(float64(pathLen) * tl.GrowthProgress(t)))
	if n > pathLen {
		n = pathLen
	}
	return n
}

// SpiralVisible reports whether the spiral is shown at all at time t.
func (tl Timeline) SpiralVisible(t float64) bool {
	return t >= tl.GrowthStart
}

// StarScale returns clamp((t-GrowthStart)*StarPopRate, 0, 1). It is exactly
// 1 from GrowthStart+1/StarPopRate on.
func (tl Timeline) StarScale(t float64) float64 {
	if t < tl.GrowthStart {
		return 0
	}
	if tl.StarPopRate <= 0 || t >= tl.GrowthStart+1/tl.StarPopRate {
		return 1
	}
	return clamp01((t - tl.GrowthStart) * tl.StarPopRate)
}

// StarVisible reports whether the star is shown at time t. Before
// GrowthStart the star is hidden outright rather than drawn at zero alpha.
func (tl Timeline) StarVisible(t float64) bool {
	return t >= tl.GrowthStart
}

// IntroDuration returns when the last intro phase ends.
func (tl Timeline) IntroDuration() float64 {
	return math.Max(tl.ConvergeDuration, tl.GrowthStart+tl.LineGrowthDuration)
}

// easeOutQuint evaluates gween's OutQuint over a unit range, pinning the
// endpoints so float32 rounding can never overshoot.
func easeOutQuint(p float64) float64 {
	switch {
	case p <= 0:
		return 0
	case p >= 1:
		return 1
	}
	return float64(ease.OutQuint(float32(p), 0, 1, 1))
}
