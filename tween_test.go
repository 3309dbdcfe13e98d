package yuletide

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestTweenGroup_SetsFromImmediately(t *testing.T) {
	a, b := 5.0, 5.0
	NewTweenGroup(1, ease.Linear,
		TweenField{Ptr: &a, From: 0, To: 10},
		TweenField{Ptr: &b, From: -10, To: 0},
	)
	if a != 0 || b != -10 {
		t.Errorf("initial values a=%v b=%v", a, b)
	}
}

func TestTweenGroup_Update(t *testing.T) {
	var v float64
	g := NewTweenGroup(1, ease.Linear, TweenField{Ptr: &v, From: 0, To: 10})
	g.Update(0.5)
	if !approxEqual(v, 5, 1e-4) {
		t.Errorf("half way = %v, want 5", v)
	}
	if g.Done {
		t.Error("done too early")
	}
	g.Update(0.6)
	if !g.Done || !approxEqual(v, 10, 1e-4) {
		t.Errorf("after end: v=%v done=%v", v, g.Done)
	}
}

func TestTweenGroup_Finish(t *testing.T) {
	var v float64
	g := NewTweenGroup(2, ease.OutCubic, TweenField{Ptr: &v, From: 1, To: 0.5})
	g.Finish()
	if !g.Done || !approxEqual(v, 0.5, 1e-6) {
		t.Errorf("Finish: v=%v done=%v", v, g.Done)
	}
}

func TestTweenGroup_NilSafe(t *testing.T) {
	var g *TweenGroup
	g.Update(1)
	g.Finish()
}

func TestTweenGroup_FieldLimit(t *testing.T) {
	vals := make([]float64, 6)
	fields := make([]TweenField, 6)
	for i := range vals {
		fields[i] = TweenField{Ptr: &vals[i], From: 1, To: 2}
	}
	g := NewTweenGroup(1, ease.Linear, fields...)
	if g.count != maxTweenFields {
		t.Errorf("count = %d, want %d", g.count, maxTweenFields)
	}
	if vals[5] != 0 {
		t.Error("field beyond the limit was written")
	}
}

func TestTweenGroup_Empty(t *testing.T) {
	g := NewTweenGroup(1, ease.Linear)
	if !g.Done {
		t.Error("empty group should be done")
	}
}
