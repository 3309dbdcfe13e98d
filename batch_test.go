package yuletide

import "testing"

func TestAppendPointQuad(t *testing.T) {
	r := &Renderer{}
	col := Color{R: 1, G: 0.5, B: 0, A: 1}
	r.appendPointQuad(Vec2{X: 10, Y: 20}, 2, col, 0.5, 64)
	r.appendPointQuad(Vec2{X: 0, Y: 0}, 1, col, 1, 64)

	if len(r.verts) != 8 || len(r.inds) != 12 {
		t.Fatalf("verts %d inds %d", len(r.verts), len(r.inds))
	}
	v := r.verts[0]
	if v.DstX != 8 || v.DstY != 18 || v.SrcX != 0 || v.SrcY != 0 {
		t.Errorf("top-left = %+v", v)
	}
	if br := r.verts[3]; br.DstX != 12 || br.DstY != 22 || br.SrcX != 64 || br.SrcY != 64 {
		t.Errorf("bottom-right = %+v", br)
	}
	if v.ColorA != 0.5 || v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 {
		t.Errorf("color not premultiplied: %+v", v)
	}
	for i, idx := range r.inds[6:] {
		if idx < 4 || idx > 7 {
			t.Errorf("second quad index %d = %d, want offset into its own vertices", i, idx)
		}
	}
}

func TestAppendVertex_AlphaFromColor(t *testing.T) {
	r := &Renderer{}
	r.appendVertex(Vec2{X: 1, Y: 2}, Color{R: 1, G: 1, B: 1, A: 0.5}, 0.5)
	v := r.verts[0]
	if v.ColorA != 0.25 || v.ColorR != 0.25 {
		t.Errorf("vertex = %+v, want alpha 0.25", v)
	}
	if v.SrcX != whiteSrc || v.SrcY != whiteSrc {
		t.Error("solid vertex does not sample the white texel")
	}
}

func TestAppendFan(t *testing.T) {
	r := &Renderer{}
	r.appendVertex(Vec2{}, ColorWhite, 1) // unrelated leading vertex
	for i := 0; i < 5; i++ {
		r.appendVertex(Vec2{X: float64(i)}, ColorWhite, 1)
	}
	r.appendFan(5)
	want := []uint32{1, 2, 3, 1, 3, 4, 1, 4, 5}
	if len(r.inds) != len(want) {
		t.Fatalf("inds = %v", r.inds)
	}
	for i := range want {
		if r.inds[i] != want[i] {
			t.Fatalf("inds = %v, want %v", r.inds, want)
		}
	}
}

func TestResetBatchKeepsCapacity(t *testing.T) {
	r := &Renderer{}
	r.appendPointQuad(Vec2{}, 1, ColorWhite, 1, 4)
	c := cap(r.verts)
	r.resetBatch()
	if len(r.verts) != 0 || len(r.inds) != 0 || cap(r.verts) != c {
		t.Error("resetBatch did not truncate in place")
	}
}
