package yuletide

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// falloffFunc maps a distance from a point sprite's center (0 at the
// center, 0.5 at the edge) to an alpha multiplier.
type falloffFunc func(d float64) float64

// treeFalloff is the tight glow used for the tree: (1-2d)².
func treeFalloff(d float64) float64 {
	if d >= 0.5 {
		return 0
	}
	f := 1 - 2*d
	return f * f
}

// snowFalloff is the softer linear disc used for snow: 1-2d.
func snowFalloff(d float64) float64 {
	if d >= 0.5 {
		return 0
	}
	return 1 - 2*d
}

// falloffPixels bakes fn into premultiplied white RGBA pixels of a size×size
// square, sampling at pixel centers.
func falloffPixels(size int, fn falloffFunc) []byte {
	pix := make([]byte, size*size*4)
	inv := 1 / float64(size)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := (float64(x)+0.5)*inv - 0.5
			dy := (float64(y)+0.5)*inv - 0.5
			a := clamp01(fn(math.Sqrt(dx*dx + dy*dy)))
			v := uint8(a*255 + 0.5)
			i := (y*size + x) * 4
			pix[i+0] = v
			pix[i+1] = v
			pix[i+2] = v
			pix[i+3] = v
		}
	}
	return pix
}

func newFalloffImage(size int, fn falloffFunc) *ebiten.Image {
	img := ebiten.NewImage(size, size)
	img.WritePixels(falloffPixels(size, fn))
	return img
}

// renderStats holds per-frame counters, reported in debug mode.
type renderStats struct {
	points    int
	culled    int
	triangles int
	drawCalls int
}

// Renderer projects evaluated particle frames, the spiral and the star
// through a Camera and submits them as batched triangles.
type Renderer struct {
	cfg RenderConfig

	treeSprite *ebiten.Image
	snowSprite *ebiten.Image
	white      *ebiten.Image

	verts []ebiten.Vertex
	inds  []uint32

	screenPath []Vec2
	stats      renderStats
}

// NewRenderer bakes the sprite textures. It must be called after
// Ebitengine can create images.
func NewRenderer(cfg RenderConfig) *Renderer {
	size := cfg.SpriteTextureSize
	if size < 4 {
		size = 4
	}
	white := ebiten.NewImage(3, 3)
	white.Fill(ColorWhite.RGBA())
	return &Renderer{
		cfg:        cfg,
		treeSprite: newFalloffImage(size, treeFalloff),
		snowSprite: newFalloffImage(size, snowFalloff),
		white:      white,
		verts:      make([]ebiten.Vertex, 0, 4096),
		inds:       make([]uint32, 0, 6144),
	}
}

// resetStats clears the per-frame counters.
func (r *Renderer) resetStats() { r.stats = renderStats{} }

// DrawField draws the tree particles with additive blending, lifted by
// offset (the tree group's translation).
func (r *Renderer) DrawField(target *ebiten.Image, cam *Camera, frames []ParticleFrame, offset Vec3) int {
	return r.drawPoints(target, cam, frames, offset, r.cfg.TreePointScale, r.treeSprite, BlendAdd)
}

// DrawSnow draws the snow field with normal alpha blending.
func (r *Renderer) DrawSnow(target *ebiten.Image, cam *Camera, frames []ParticleFrame) int {
	return r.drawPoints(target, cam, frames, Vec3{}, r.cfg.SnowPointScale, r.snowSprite, BlendNormal)
}

// drawPoints projects each frame and emits a screen-aligned quad whose
// diameter is size·scale/depth, skipping points behind the camera, off
// screen, or fully transparent. Returns the number of quads drawn.
func (r *Renderer) drawPoints(target *ebiten.Image, cam *Camera, frames []ParticleFrame, offset Vec3, scale float64, sprite *ebiten.Image, blend BlendMode) int {
	r.resetBatch()
	vp := cam.Viewport
	spriteSize := float32(sprite.Bounds().Dx())
	drawn := 0
	for i := range frames {
		f := &frames[i]
		alpha := f.Opacity * f.Color.A
		if alpha <= 0 || f.Size <= 0 {
			continue
		}
		sc, depth, ok := cam.Project(f.Position.Add(offset))
		if !ok {
			r.stats.culled++
			continue
		}
		size := f.Size * scale / depth
		if r.cfg.MaxPointSize > 0 && size > r.cfg.MaxPointSize {
			size = r.cfg.MaxPointSize
		}
		half := size / 2
		if sc.X+half < vp.X || sc.X-half > vp.X+vp.Width ||
			sc.Y+half < vp.Y || sc.Y-half > vp.Y+vp.Height {
			r.stats.culled++
			continue
		}
		r.appendPointQuad(sc, half, f.Color, alpha, spriteSize)
		drawn++
	}
	r.stats.points += drawn
	r.flush(target, sprite, blend)
	return drawn
}

// DrawStar draws the topper: a flat star polygon in the XY plane at center,
// scaled by scale, shaded by lights, with an additive halo behind it.
// Nothing is drawn when scale is zero.
func (r *Renderer) DrawStar(target *ebiten.Image, cam *Camera, outline []Vec2, center Vec3, scale, glow float64, base Color, lights Lighting) {
	if scale <= 0 || len(outline) < 3 {
		return
	}
	hub, depth, ok := cam.Project(center)
	if !ok {
		return
	}

	// Halo first so the star body sits on top.
	r.resetBatch()
	halo := glow * scale * cam.PixelsPerUnit(depth)
	if halo > 0 {
		r.appendPointQuad(hub, halo, base, 0.6, float32(r.treeSprite.Bounds().Dx()))
		r.flush(target, r.treeSprite, BlendAdd)
	}

	normal := Vec3{Z: 1}
	if cam.Position.Z-center.Z < 0 {
		normal.Z = -1
	}
	col := lights.Shade(base, 1, center, normal)

	// The outline is concave, so fan from the projected center.
	r.resetBatch()
	r.appendVertex(hub, col, 1)
	for _, p := range outline {
		world := Vec3{X: center.X + p.X*scale, Y: center.Y + p.Y*scale, Z: center.Z}
		sc, _, ok := cam.Project(world)
		if !ok {
			r.resetBatch()
			return
		}
		r.appendVertex(sc, col, 1)
	}
	n := uint32(len(outline))
	for i := uint32(0); i < n; i++ {
		r.inds = append(r.inds, 0, 1+i, 1+(i+1)%n)
	}
	r.flush(target, r.white, BlendNormal)
}
