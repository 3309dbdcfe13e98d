package yuletide

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// testStep is a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Ms     int     `json:"ms,omitempty"`

	// expect
	Phase string `json:"phase,omitempty"`
	Card  string `json:"card,omitempty"`
	Audio string `json:"audio,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// scriptTarget is what a TestRunner drives. *Scene implements it.
type scriptTarget interface {
	InjectTap(x, y float64)
	InjectDrag(fromX, fromY, toX, toY float64, frames int)
	Screenshot(label string)
	PendingInjections() int
	Shell() *Shell
}

// TestRunner sequences injected input, waits, state assertions and
// screenshots across frames for automated runs. Attach to a Scene via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "wait", "tap", "drag", "screenshot", "expect":
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// Done reports whether every step has executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the failed expectations in the order they occurred.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// Err joins the recorded failures into one error, or returns nil.
func (r *TestRunner) Err() error {
	if len(r.failures) == 0 {
		return nil
	}
	errs := make([]error, len(r.failures))
	for i, f := range r.failures {
		errs[i] = errors.New(f)
	}
	return fmt.Errorf("test script: %w", errors.Join(errs...))
}

// msToFrames converts a wait in milliseconds to whole ticks, rounding up.
func msToFrames(ms, tps int) int {
	if ms <= 0 || tps <= 0 {
		return 0
	}
	return int(math.Ceil(float64(ms) * float64(tps) / 1000))
}

// step advances the runner by one frame. Called from Scene.Update before
// input is processed.
func (r *TestRunner) step(t scriptTarget) {
	if r.done {
		return
	}
	// Let queued injections drain before advancing.
	if t.PendingInjections() > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		t.Screenshot(st.Label)
	case "tap":
		t.InjectTap(st.X, st.Y)
	case "drag":
		t.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		frames := st.Frames
		if st.Ms > 0 {
			frames = msToFrames(st.Ms, ebiten.TPS())
		}
		if frames > 0 {
			r.waitCount = frames - 1 // this frame counts as one
		}
	case "expect":
		r.expect(r.cursor-1, st, t.Shell())
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && t.PendingInjections() == 0 {
		r.done = true
	}
}

// expect compares the named shell fields and records a failure for each
// mismatch. Empty fields are not checked.
func (r *TestRunner) expect(index int, st testStep, shell *Shell) {
	check := func(field, want, got string) {
		if want != "" && want != got {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d (%s): %s = %q, want %q", index, st.Label, field, got, want))
		}
	}
	check("phase", st.Phase, shell.Phase().String())
	check("card", st.Card, shell.Card().String())
	check("audio", st.Audio, shell.Audio().String())
}
