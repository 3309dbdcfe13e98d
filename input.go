package yuletide

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// pointerState tracks the single logical pointer driven by the mouse or the
// primary touch.
type pointerState struct {
	down         bool
	startX       float64
	startY       float64
	lastX        float64
	lastY        float64
	touch        bool
	touchID      ebiten.TouchID
	prevTouchIDs []ebiten.TouchID
}

// releaseTarget is what consumed a completed press.
type releaseTarget uint8

const (
	releaseIgnored releaseTarget = iota
	releaseMute
	releaseCardClose
	releaseCardBody
	releaseBackdrop
	releaseOpenCard
)

// String returns the target name, used in debug output.
func (t releaseTarget) String() string {
	switch t {
	case releaseMute:
		return "mute"
	case releaseCardClose:
		return "card-close"
	case releaseCardBody:
		return "card-body"
	case releaseBackdrop:
		return "backdrop"
	case releaseOpenCard:
		return "open-card"
	default:
		return "ignored"
	}
}

// dispatchRelease routes a press that went down at down and came up at up
// to the overlay widget stacked on top, falling back to the shell's
// tap-to-open rule. Widgets take a press only when it both starts and ends
// inside them.
func dispatchRelease(shell *Shell, l overlayLayout, down, up Vec2) releaseTarget {
	if shell.Loading() {
		return releaseIgnored
	}
	inside := func(h HitShape) bool {
		return h.Contains(down.X, down.Y) && h.Contains(up.X, up.Y)
	}

	if inside(l.Mute) {
		// A rejected play is logged by the shell and leaves it muted.
		_ = shell.ToggleMute()
		return releaseMute
	}

	if shell.CardOpen() {
		switch {
		case inside(l.Close):
			shell.CloseCard()
			return releaseCardClose
		case l.Card.Contains(down.X, down.Y) || l.Card.Contains(up.X, up.Y):
			return releaseCardBody
		default:
			shell.CloseCard()
			return releaseBackdrop
		}
	}

	onMute := l.Mute.Contains(up.X, up.Y)
	if shell.HandleRelease(down, up, onMute) {
		return releaseOpenCard
	}
	return releaseIgnored
}

// processInput reads one frame of pointer input. An injected event, when
// queued, replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	if s.processTouchPointer() {
		return
	}
	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.processPointer(float64(mx), float64(my), pressed)
}

// processTouchPointer follows the first touch that went down and ignores
// the rest. Returns true while a touch owns the pointer.
func (s *Scene) processTouchPointer() bool {
	ps := &s.pointer
	ids := ebiten.AppendTouchIDs(ps.prevTouchIDs[:0])
	ps.prevTouchIDs = ids

	if ps.down && ps.touch {
		for _, id := range ids {
			if id == ps.touchID {
				x, y := ebiten.TouchPosition(id)
				s.processPointer(float64(x), float64(y), true)
				return true
			}
		}
		// The tracked touch lifted; release where it was last seen.
		s.processPointer(ps.lastX, ps.lastY, false)
		ps.touch = false
		return true
	}
	if !ps.down && len(ids) > 0 {
		ps.touch = true
		ps.touchID = ids[0]
		x, y := ebiten.TouchPosition(ids[0])
		s.processPointer(float64(x), float64(y), true)
		return true
	}
	return false
}

// processPointer runs the press/move/release state machine for the logical
// pointer at screen position (x, y).
func (s *Scene) processPointer(x, y float64, pressed bool) {
	ps := &s.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.startX, ps.startY = x, y
		ps.lastX, ps.lastY = x, y

	case pressed && ps.down:
		if dx := x - ps.lastX; dx != 0 && !s.shell.CardOpen() {
			s.orbit.Rotate(dx)
		}
		ps.lastX, ps.lastY = x, y

	case !pressed && ps.down:
		ps.down = false
		down := Vec2{X: ps.startX, Y: ps.startY}
		up := Vec2{X: x, Y: y}
		target := dispatchRelease(s.shell, s.overlay.HitLayout(), down, up)
		if s.debug {
			debugLogf("input: release (%.0f,%.0f)->(%.0f,%.0f) %s", down.X, down.Y, up.X, up.Y, target)
		}
		ps.lastX, ps.lastY = x, y

	default:
		ps.lastX, ps.lastY = x, y
	}
}
