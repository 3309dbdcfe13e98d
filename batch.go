package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whiteSrc is the texel center sampled from the solid white image.
const whiteSrc = 1.5

// resetBatch empties the vertex and index buffers, keeping capacity.
func (r *Renderer) resetBatch() {
	r.verts = r.verts[:0]
	r.inds = r.inds[:0]
}

// appendPointQuad appends 4 vertices and 6 indices for a square sprite of
// half-extent half centered on c, mapping the full spriteSize texture.
func (r *Renderer) appendPointQuad(c Vec2, half float64, col Color, alpha float64, spriteSize float32) {
	// Premultiplied RGBA.
	ca := float32(clamp01(alpha))
	cr := float32(col.R) * ca
	cg := float32(col.G) * ca
	cb := float32(col.B) * ca

	x0 := float32(c.X - half)
	y0 := float32(c.Y - half)
	x1 := float32(c.X + half)
	y1 := float32(c.Y + half)

	base := uint32(len(r.verts))

	// TL, TR, BL, BR
	r.verts = append(r.verts,
		ebiten.Vertex{DstX: x0, DstY: y0, SrcX: 0, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y0, SrcX: spriteSize, SrcY: 0, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x0, DstY: y1, SrcX: 0, SrcY: spriteSize, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
		ebiten.Vertex{DstX: x1, DstY: y1, SrcX: spriteSize, SrcY: spriteSize, ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca},
	)

	// Two triangles: TL-TR-BL, TR-BR-BL
	r.inds = append(r.inds,
		base+0, base+1, base+2,
		base+1, base+3, base+2,
	)
}

// appendVertex appends one solid-color vertex sampling the white image.
func (r *Renderer) appendVertex(p Vec2, col Color, alpha float64) {
	ca := float32(clamp01(alpha * col.A))
	r.verts = append(r.verts, ebiten.Vertex{
		DstX:   float32(p.X),
		DstY:   float32(p.Y),
		SrcX:   whiteSrc,
		SrcY:   whiteSrc,
		ColorR: float32(col.R) * ca,
		ColorG: float32(col.G) * ca,
		ColorB: float32(col.B) * ca,
		ColorA: ca,
	})
}

// flush submits the accumulated vertices as a single DrawTriangles32 call.
func (r *Renderer) flush(target *ebiten.Image, src *ebiten.Image, blend BlendMode) {
	if len(r.inds) == 0 {
		r.resetBatch()
		return
	}

	var triOp ebiten.DrawTrianglesOptions
	triOp.Blend = blend.EbitenBlend()
	triOp.ColorScaleMode = ebiten.ColorScaleModePremultipliedAlpha

	target.DrawTriangles32(r.verts, r.inds, src, &triOp)

	r.stats.triangles += len(r.inds) / 3
	r.stats.drawCalls++
	r.resetBatch()
}

// FillPolygon draws a convex polygon in screen space as a triangle fan.
func (r *Renderer) FillPolygon(target *ebiten.Image, pts []Vec2, col Color, alpha float64) {
	if len(pts) < 3 || alpha <= 0 {
		return
	}
	r.resetBatch()
	for _, p := range pts {
		r.appendVertex(p, col, alpha)
	}
	r.appendFan(len(pts))
	r.flush(target, r.white, BlendNormal)
}

// drawTexturedPolygon draws a convex polygon whose vertex i samples src at
// uv[i], tinted by alpha only.
func (r *Renderer) drawTexturedPolygon(target, src *ebiten.Image, pts, uv []Vec2, alpha float64) {
	if len(pts) < 3 || len(uv) != len(pts) || alpha <= 0 {
		return
	}
	r.resetBatch()
	a := float32(clamp01(alpha))
	for i, p := range pts {
		r.verts = append(r.verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   float32(uv[i].X),
			SrcY:   float32(uv[i].Y),
			ColorR: a, ColorG: a, ColorB: a, ColorA: a,
		})
	}
	r.appendFan(len(pts))
	r.flush(target, src, BlendNormal)
}

// drawGlow draws one soft round sprite of radius half centered on c.
func (r *Renderer) drawGlow(target *ebiten.Image, c Vec2, half float64, col Color, alpha float64, blend BlendMode) {
	if half <= 0 || alpha <= 0 {
		return
	}
	r.resetBatch()
	r.appendPointQuad(c, half, col, alpha, float32(r.snowSprite.Bounds().Dx()))
	r.flush(target, r.snowSprite, blend)
}

// appendFan indexes the last n vertices as a fan around the first of them.
func (r *Renderer) appendFan(n int) {
	base := uint32(len(r.verts) - n)
	for i := 1; i < n-1; i++ {
		r.inds = append(r.inds, base, base+uint32(i), base+uint32(i+1))
	}
}
