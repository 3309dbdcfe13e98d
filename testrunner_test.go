package yuletide

import (
	"strings"
	"testing"
)

// fakeTarget records what a TestRunner asks of it. Each queued injection
// drains on the next step call, like one frame of input.
type fakeTarget struct {
	shell       *Shell
	taps        [][2]float64
	drags       int
	screenshots []string
	pending     int
}

func (f *fakeTarget) InjectTap(x, y float64) {
	f.taps = append(f.taps, [2]float64{x, y})
	f.pending += 2
}

func (f *fakeTarget) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	f.drags++
	f.pending += frames
}

func (f *fakeTarget) Screenshot(label string) { f.screenshots = append(f.screenshots, label) }
func (f *fakeTarget) PendingInjections() int  { return f.pending }
func (f *fakeTarget) Shell() *Shell           { return f.shell }

// frame stands in for one Scene.Update: the runner steps, then input drains.
func (f *fakeTarget) frame(r *TestRunner) {
	r.step(f)
	if f.pending > 0 {
		f.pending--
	}
}

func runToEnd(t *testing.T, r *TestRunner, f *fakeTarget) int {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if r.Done() {
			return i
		}
		f.frame(r)
	}
	t.Fatal("runner never finished")
	return 0
}

func TestLoadTestScript(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"tap","x":10,"y":20},{"action":"screenshot","label":"a"}]}`))
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(r.steps) != 2 {
		t.Errorf("steps = %d", len(r.steps))
	}
}

func TestLoadTestScript_Errors(t *testing.T) {
	tests := []struct {
		name, json, want string
	}{
		{"invalid json", `{"steps":`, "parse test script"},
		{"no steps", `{"steps":[]}`, "no steps"},
		{"unknown action", `{"steps":[{"action":"wiggle"}]}`, `"wiggle"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.json))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestMsToFrames(t *testing.T) {
	tests := []struct {
		ms, tps, want int
	}{
		{0, 60, 0},
		{-5, 60, 0},
		{1000, 60, 60},
		{2000, 60, 120},
		{2100, 60, 126},
		{10, 60, 1},
		{17, 60, 2},
		{100, 0, 0},
	}
	for _, tt := range tests {
		if got := msToFrames(tt.ms, tt.tps); got != tt.want {
			t.Errorf("msToFrames(%d,%d) = %d, want %d", tt.ms, tt.tps, got, tt.want)
		}
	}
}

func TestRunner_Sequencing(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"screenshot","label":"first"},
		{"action":"tap","x":1,"y":2},
		{"action":"screenshot","label":"after-tap"},
		{"action":"wait","frames":10},
		{"action":"drag","fromX":0,"fromY":0,"toX":100,"toY":0,"frames":5},
		{"action":"screenshot","label":"last"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{shell: interactiveShell(nil)}
	frames := runToEnd(t, r, f)

	if len(f.taps) != 1 || f.taps[0] != [2]float64{1, 2} {
		t.Errorf("taps = %v", f.taps)
	}
	if f.drags != 1 {
		t.Errorf("drags = %d", f.drags)
	}
	want := []string{"first", "after-tap", "last"}
	if strings.Join(f.screenshots, ",") != strings.Join(want, ",") {
		t.Errorf("screenshots = %v, want %v", f.screenshots, want)
	}
	// The wait alone holds the runner for 10 frames.
	if frames < 10+2+5 {
		t.Errorf("finished after %d frames, too soon", frames)
	}
	if err := r.Err(); err != nil {
		t.Errorf("Err = %v", err)
	}
}

func TestRunner_WaitFrames(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":3},{"action":"screenshot","label":"x"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{shell: interactiveShell(nil)}
	for i := 0; i < 3; i++ {
		f.frame(r)
		if len(f.screenshots) != 0 {
			t.Fatalf("screenshot taken on frame %d, during the wait", i)
		}
	}
	f.frame(r)
	if len(f.screenshots) != 1 {
		t.Error("screenshot not taken right after the wait")
	}
	if !r.Done() {
		t.Error("runner not done after its last step")
	}
}

func TestRunner_ExpectFailures(t *testing.T) {
	r, err := LoadTestScript([]byte(`{"steps":[
		{"action":"expect","label":"ok","phase":"interactive","card":"closed","audio":"muted"},
		{"action":"expect","label":"bad","phase":"loading","card":"open"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	f := &fakeTarget{shell: interactiveShell(nil)}
	runToEnd(t, r, f)

	if got := len(r.Failures()); got != 2 {
		t.Fatalf("failures = %v, want 2", r.Failures())
	}
	if !strings.Contains(r.Failures()[0], `phase = "interactive", want "loading"`) {
		t.Errorf("failure[0] = %q", r.Failures()[0])
	}
	err = r.Err()
	if err == nil || !strings.Contains(err.Error(), "step 1 (bad)") {
		t.Errorf("Err = %v", err)
	}
}
