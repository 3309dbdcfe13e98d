package yuletide

import (
	"sort"
	"time"
)

// Task is a deferred one-shot callback owned by a Scheduler.
type Task struct {
	id       uint64
	due      time.Duration
	fn       func()
	canceled bool
	fired    bool
}

// Cancel prevents the task from firing. It reports whether the task was
// still pending.
func (t *Task) Cancel() bool {
	if t == nil || t.canceled || t.fired {
		return false
	}
	t.canceled = true
	return true
}

// Pending reports whether the task has neither fired nor been cancelled.
func (t *Task) Pending() bool {
	return t != nil && !t.canceled && !t.fired
}

// Due returns the scheduler time the task fires at.
func (t *Task) Due() time.Duration { return t.due }

// Scheduler runs deferred tasks against a clock advanced by the frame loop.
// It never spawns goroutines: tasks fire synchronously inside Advance, in
// due order, so callbacks can touch scene state without locking.
type Scheduler struct {
	now    time.Duration
	tasks  []*Task
	nextID uint64
	closed bool
}

// NewScheduler returns a scheduler whose clock starts at zero.
func NewScheduler() *Scheduler {
	return &Scheduler{}
}

// Now returns the time accumulated by Advance.
func (s *Scheduler) Now() time.Duration { return s.now }

// After schedules fn to run once the clock has advanced by d from now.
// After on a closed scheduler returns an already-cancelled task.
func (s *Scheduler) After(d time.Duration, fn func()) *Task {
	s.nextID++
	t := &Task{id: s.nextID, due: s.now + d, fn: fn}
	if s.closed {
		t.canceled = true
		return t
	}
	s.tasks = append(s.tasks, t)
	return t
}

// Advance moves the clock forward by dt and fires every task that has come
// due, earliest first. Tasks scheduled by a callback with a due time inside
// the window fire in the same call. Returns the number of tasks fired.
func (s *Scheduler) Advance(dt time.Duration) int {
	if s.closed {
		return 0
	}
	if dt > 0 {
		s.now += dt
	}
	fired := 0
	for {
		next := s.nextDue()
		if next == nil {
			break
		}
		next.fired = true
		next.fn()
		fired++
		if s.closed {
			break
		}
	}
	s.compact()
	return fired
}

// nextDue returns the earliest pending task due at or before now.
func (s *Scheduler) nextDue() *Task {
	var best *Task
	for _, t := range s.tasks {
		if !t.Pending() || t.due > s.now {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// compact drops fired and cancelled tasks, keeping due order stable.
func (s *Scheduler) compact() {
	live := s.tasks[:0]
	for _, t := range s.tasks {
		if t.Pending() {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = live
	sort.SliceStable(s.tasks, func(i, j int) bool { return s.tasks[i].due < s.tasks[j].due })
}

// Pending returns the number of tasks still waiting to fire.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if t.Pending() {
			n++
		}
	}
	return n
}

// Close cancels every pending task. Later After calls return cancelled tasks.
func (s *Scheduler) Close() {
	for _, t := range s.tasks {
		t.Cancel()
	}
	s.tasks = s.tasks[:0]
	s.closed = true
}
