package yuletide

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// DrawSpiral draws the visible prefix of the spiral as two additive
// ribbons: the main line and a fainter glow line widened in x/z by
// cfg.GlowScale.
func (r *Renderer) DrawSpiral(target *ebiten.Image, cam *Camera, visible []Vec3, offset Vec3, cfg SpiralConfig, pal Palette) {
	if len(visible) < 2 {
		return
	}
	r.resetBatch()
	r.appendPath(cam, visible, offset, 1, cfg.Width, pal.Spiral, 1)
	r.appendPath(cam, visible, offset, cfg.GlowScale, cfg.Width, pal.SpiralGlow, 0.5)
	r.flush(target, r.white, BlendAdd)
}

// appendPath projects a world-space polyline (x/z scaled by scaleXZ about
// the group origin, then translated by offset) and extrudes each run of
// visible points into a ribbon. Points behind the camera split the path.
func (r *Renderer) appendPath(cam *Camera, pts []Vec3, offset Vec3, scaleXZ, width float64, col Color, alpha float64) {
	run := r.screenPath[:0]
	for _, p := range pts {
		world := Vec3{X: p.X * scaleXZ, Y: p.Y, Z: p.Z * scaleXZ}.Add(offset)
		sc, _, ok := cam.Project(world)
		if !ok {
			r.appendRibbon(run, width, col, alpha)
			run = run[:0]
			continue
		}
		run = append(run, sc)
	}
	r.appendRibbon(run, width, col, alpha)
	r.screenPath = run
}

// appendRibbon extrudes a screen-space polyline into a triangle strip of the
// given width. Interior joins use the averaged segment normal scaled to
// keep the width at the miter, clamped to 2x to avoid spikes.
func (r *Renderer) appendRibbon(points []Vec2, width float64, col Color, alpha float64) {
	n := len(points)
	if n < 2 {
		return
	}
	halfW := width / 2
	base := uint32(len(r.verts))

	for i := 0; i < n; i++ {
		var nx, ny float64
		if i == 0 {
			nx, ny = perpendicular(points[0], points[1])
		} else if i == n-1 {
			nx, ny = perpendicular(points[n-2], points[n-1])
		} else {
			nx0, ny0 := perpendicular(points[i-1], points[i])
			nx1, ny1 := perpendicular(points[i], points[i+1])
			nx, ny = nx0+nx1, ny0+ny1
			ln := math.Sqrt(nx*nx + ny*ny)
			if ln > 1e-10 {
				nx /= ln
				ny /= ln
			} else {
				nx, ny = nx0, ny0
			}
			dot := nx0*nx + ny0*ny
			if dot > 0.1 {
				scale := math.Min(1/dot, 2)
				nx *= scale
				ny *= scale
			}
		}
		r.appendVertex(Vec2{X: points[i].X + nx*halfW, Y: points[i].Y + ny*halfW}, col, alpha)
		r.appendVertex(Vec2{X: points[i].X - nx*halfW, Y: points[i].Y - ny*halfW}, col, alpha)
	}

	// Two triangles per segment.
	for i := 0; i < n-1; i++ {
		v := base + uint32(i*2)
		r.inds = append(r.inds,
			v, v+1, v+2,
			v+1, v+3, v+2,
		)
	}
}

// perpendicular returns the unit left-perpendicular of the segment from a to b.
func perpendicular(a, b Vec2) (float64, float64) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	ln := math.Sqrt(dx*dx + dy*dy)
	if ln < 1e-10 {
		return 0, -1
	}
	return -dy / ln, dx / ln
}
