package yuletide

import "math"

// ParticleFrame is what the renderer consumes for one particle on one frame.
type ParticleFrame struct {
	Position Vec3
	Color    Color
	Size     float64
	Opacity  float64
}

// ParticleAt evaluates one tree particle at elapsed time t.
//
// Position is the lerp between the spun scattered origin and the final
// tree position by the eased progress; opacity follows the linear,
// un-eased progress. Once convergence is complete, sway and twinkle are
// layered on using the particle's own final coordinates and seed so no two
// particles move in lockstep.
func (tl Timeline) ParticleAt(p Particle, t float64) ParticleFrame {
	progress := tl.ConvergenceProgress(t)
	eased := easeOutQuint(progress)

	angle := tl.SpinAngle(eased)
	cos, sin := math.Cos(angle), math.Sin(angle)
	start := Vec3{
		X: cos*p.Initial.X + sin*p.Initial.Z,
		Y: p.Initial.Y,
		Z: -sin*p.Initial.X + cos*p.Initial.Z,
	}

	pos := Vec3{
		X: lerp(start.X, p.Final.X, eased),
		Y: lerp(start.Y, p.Final.Y, eased),
		Z: lerp(start.Z, p.Final.Z, eased),
	}
	size := p.Size

	if progress >= 1 {
		pos.X += math.Sin(t*tl.SwaySpeed+p.Final.Y*0.8) * tl.SwayAmplitude
		pos.Z += math.Cos(t*tl.SwaySpeed+p.Final.X*0.8) * tl.SwayAmplitude
		size *= twinkle(t, p.Seed, tl.TwinkleAmplitude, 1)
	}

	return ParticleFrame{
		Position: pos,
		Color:    p.Color,
		Size:     size,
		Opacity:  progress,
	}
}

// EvaluateField writes the frame state of every particle in f into dst,
// growing it if needed, and returns the filled slice.
func (tl Timeline) EvaluateField(f *Field, t float64, dst []ParticleFrame) []ParticleFrame {
	dst = growFrames(dst, f.Len())
	for i := range f.particles {
		dst[i] = tl.ParticleAt(f.particles[i], t)
	}
	return dst
}

// EvaluateSnow writes the frame state of every flake in s into dst, growing
// it if needed, and returns the filled slice.
func EvaluateSnow(s *SnowField, col Color, t float64, dst []ParticleFrame) []ParticleFrame {
	dst = growFrames(dst, s.Len())
	for i := range s.flakes {
		pos, scale := s.cfg.FlakeAt(s.flakes[i], t)
		dst[i] = ParticleFrame{
			Position: pos,
			Color:    col,
			Size:     s.flakes[i].Size * scale,
			Opacity:  s.cfg.Opacity,
		}
	}
	return dst
}

// growFrames returns dst resliced to n, reallocating only when capacity is short.
func growFrames(dst []ParticleFrame, n int) []ParticleFrame {
	if cap(dst) < n {
		return make([]ParticleFrame, n)
	}
	return dst[:n]
}
