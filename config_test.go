package yuletide

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestParseConfig_PartialOverride(t *testing.T) {
	data := []byte(`
window:
  width: 390
shell:
  loadingDelay: 1s
  interactDelay: 2500ms
field:
  leafCount: 100
card:
  heading: Hello
`)
	cfg, err := ParseConfig(data)
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	def := DefaultConfig()
	if cfg.Window.Width != 390 || cfg.Window.Height != def.Window.Height {
		t.Errorf("window = %+v", cfg.Window)
	}
	if cfg.Shell.LoadingDelay != time.Second || cfg.Shell.InteractDelay != 2500*time.Millisecond {
		t.Errorf("shell delays = %v, %v", cfg.Shell.LoadingDelay, cfg.Shell.InteractDelay)
	}
	if cfg.Shell.TapThreshold != def.Shell.TapThreshold {
		t.Errorf("tap threshold lost its default: %v", cfg.Shell.TapThreshold)
	}
	if cfg.Field.LeafCount != 100 || cfg.Field.OrnamentCount != def.Field.OrnamentCount {
		t.Errorf("field counts = %d, %d", cfg.Field.LeafCount, cfg.Field.OrnamentCount)
	}
	if cfg.Card.Heading != "Hello" || cfg.Card.Subtitle != def.Card.Subtitle {
		t.Errorf("card = %+v", cfg.Card)
	}
}

func TestParseConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"zero window", "window: {width: 0}", "window"},
		{"delays reversed", "shell: {loadingDelay: 3s, interactDelay: 1s}", "interactDelay"},
		{"bad fov", "camera: {fov: 200}", "camera.fov"},
		{"inverted range", "field: {leafSize: {min: 5, max: 2}}", "field.leafSize"},
		{"loud", "audio: {volume: 2}", "audio.volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("err = %v, want ErrInvalidConfig", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %q, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestValidate_JoinsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.Width = 0
	cfg.Font.Size = 0
	cfg.Star.Points = 1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	msg := err.Error()
	for _, want := range []string{"window", "font.size", "star.points"} {
		if !strings.Contains(msg, want) {
			t.Errorf("joined error missing %q: %s", want, msg)
		}
	}
}

func TestParseConfig_Malformed(t *testing.T) {
	_, err := ParseConfig([]byte("window: [unterminated"))
	if err == nil || errors.Is(err, ErrInvalidConfig) {
		t.Errorf("err = %v, want a YAML error", err)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "yuletide.yaml")
	if err := os.WriteFile(path, []byte("debug: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if !cfg.Debug {
		t.Error("debug not loaded")
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}
}

func TestExampleConfigParses(t *testing.T) {
	data, err := os.ReadFile("yuletide.example.yaml")
	if err != nil {
		t.Skipf("example config not found: %v", err)
	}
	if _, err := ParseConfig(data); err != nil {
		t.Errorf("example config: %v", err)
	}
}
