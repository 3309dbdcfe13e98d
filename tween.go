package yuletide

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// maxTweenFields is how many values a TweenGroup can drive at once.
const maxTweenFields = 4

// TweenField binds one float64 to a start and end value.
type TweenField struct {
	Ptr      *float64
	From, To float64
}

// TweenGroup animates up to 4 float64 fields simultaneously with a shared
// duration and easing. Call Update(dt) each frame; values are written
// through the field pointers.
//
// There is no global animation manager: owners call Update themselves.
type TweenGroup struct {
	tweens [maxTweenFields]*gween.Tween
	fields [maxTweenFields]*float64
	count  int
	dur    float32
	Done   bool
}

// NewTweenGroup creates a group that moves every field from From to To over
// duration seconds. Fields are set to their From values immediately. Extra
// fields beyond 4 are ignored.
func NewTweenGroup(duration float32, fn ease.TweenFunc, fields ...TweenField) *TweenGroup {
	g := &TweenGroup{dur: duration}
	for _, f := range fields {
		if g.count == maxTweenFields || f.Ptr == nil {
			continue
		}
		g.tweens[g.count] = gween.New(float32(f.From), float32(f.To), duration, fn)
		g.fields[g.count] = f.Ptr
		*f.Ptr = f.From
		g.count++
	}
	g.Done = g.count == 0
	return g
}

// Update advances all tweens by dt seconds and writes values to the fields.
func (g *TweenGroup) Update(dt float32) {
	if g == nil || g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Finish jumps every field to its end value.
func (g *TweenGroup) Finish() {
	if g == nil || g.Done {
		return
	}
	for i := 0; i < g.count; i++ {
		val, _ := g.tweens[i].Set(g.dur)
		*g.fields[i] = float64(val)
	}
	g.Done = true
}
