package yuletide

import "math"

// PointLight is an omnidirectional light with no falloff.
type PointLight struct {
	Position  Vec3
	Color     Color
	Intensity float64
}

// Lighting is the scene's light rig. The particle clouds are emissive and
// ignore it; only solid geometry (the star) is shaded.
type Lighting struct {
	Ambient      float64
	AmbientColor Color
	Points       []PointLight
}

// DefaultLighting returns an ambient fill plus a white key light and an
// accent-colored rim light.
func DefaultLighting(pal Palette) Lighting {
	return Lighting{
		Ambient:      0.5,
		AmbientColor: ColorWhite,
		Points: []PointLight{
			{Position: Vec3{X: 10, Y: 10, Z: 10}, Color: ColorWhite, Intensity: 1.5},
			{Position: Vec3{X: -10, Y: 5, Z: -10}, Color: pal.Accent, Intensity: 1},
		},
	}
}

// Shade returns base lit at pos with surface normal n (need not be unit
// length), plus emissive self-illumination. Channels saturate at 1.
func (l Lighting) Shade(base Color, emissive float64, pos, n Vec3) Color {
	nl := n.Len()
	if nl > 0 {
		n = n.Scale(1 / nl)
	}
	r := emissive + l.Ambient*l.AmbientColor.R
	g := emissive + l.Ambient*l.AmbientColor.G
	b := emissive + l.Ambient*l.AmbientColor.B
	for _, pl := range l.Points {
		d := pl.Position.Sub(pos)
		dl := d.Len()
		if dl == 0 {
			continue
		}
		lambert := math.Max(0, (n.X*d.X+n.Y*d.Y+n.Z*d.Z)/dl) * pl.Intensity
		r += lambert * pl.Color.R
		g += lambert * pl.Color.G
		b += lambert * pl.Color.B
	}
	return Color{
		R: clamp01(base.R * r),
		G: clamp01(base.G * g),
		B: clamp01(base.B * b),
		A: base.A,
	}
}
