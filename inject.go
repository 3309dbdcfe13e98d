package yuletide

// syntheticPointerEvent is one queued pointer sample in screen coordinates,
// the same space real mouse and touch input arrive in.
type syntheticPointerEvent struct {
	x, y    float64
	pressed bool
}

// InjectPress queues a pointer press at (x, y). The event is consumed on
// the next frame's input pass.
func (s *Scene) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectMove queues a move to (x, y) with the pointer held down. Use it
// between InjectPress and InjectRelease to rotate the orbit.
func (s *Scene) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y, pressed: true})
}

// InjectRelease queues a pointer release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticPointerEvent{x: x, y: y})
}

// InjectTap queues a press followed by a release at the same point.
// Consumes two frames.
func (s *Scene) InjectTap(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at (fromX, fromY), frames-2 linearly
// interpolated moves, and a release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		s.InjectMove(lerp(fromX, toX, t), lerp(fromY, toY, t))
	}
	s.InjectRelease(toX, toY)
}

// PendingInjections returns how many synthetic events are still queued.
func (s *Scene) PendingInjections() int { return len(s.injectQueue) }

// processInjectedInput pops one queued event and feeds it through the
// pointer state machine. Returns true if an event was consumed, in which
// case real input is skipped this frame.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	s.processPointer(evt.x, evt.y, evt.pressed)
	return true
}
