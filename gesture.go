package yuletide

import "math"

// Gesture is the classification of a completed pointer press.
type Gesture uint8

const (
	GestureTap  Gesture = iota // released close to where it went down
	GestureDrag                // moved far enough to count as a rotate drag
)

// String returns the gesture name.
func (g Gesture) String() string {
	if g == GestureTap {
		return "tap"
	}
	return "drag"
}

// ClassifyRelease separates a tap from a drag sharing the same surface. The
// release is a tap when the displacement on each axis is strictly below
// threshold pixels.
func ClassifyRelease(down, up Vec2, threshold float64) Gesture {
	if math.Abs(up.X-down.X) < threshold && math.Abs(up.Y-down.Y) < threshold {
		return GestureTap
	}
	return GestureDrag
}

// HitShape defines a hit-testable region in screen coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// HitRoundRect is a rectangle with rounded corners of the given radius.
type HitRoundRect struct {
	X, Y, Width, Height, Radius float64
}

// Contains reports whether (x, y) lies inside the rounded rectangle.
func (r HitRoundRect) Contains(x, y float64) bool {
	if !(HitRect{r.X, r.Y, r.Width, r.Height}).Contains(x, y) {
		return false
	}
	rad := math.Min(r.Radius, math.Min(r.Width, r.Height)/2)
	// Clamp to the inner rectangle; outside it only the corner circles count.
	cx := clamp(x, r.X+rad, r.X+r.Width-rad)
	cy := clamp(y, r.Y+rad, r.Y+r.Height-rad)
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= rad*rad
}
