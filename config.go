package yuletide

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every error Validate returns.
var ErrInvalidConfig = errors.New("yuletide: invalid config")

// WindowConfig controls the desktop window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	ShowFPS   bool   `yaml:"showFPS"`
}

// RenderConfig holds renderer constants that are not part of any generator.
type RenderConfig struct {
	// GroupOffsetY lifts the whole tree group (field, spiral, star).
	GroupOffsetY float64 `yaml:"groupOffsetY"`
	// TreePointScale and SnowPointScale convert a particle size into screen
	// pixels at unit depth.
	TreePointScale float64 `yaml:"treePointScale"`
	SnowPointScale float64 `yaml:"snowPointScale"`
	// MaxPointSize caps a projected sprite's diameter in pixels.
	MaxPointSize float64 `yaml:"maxPointSize"`
	// SpriteTextureSize is the edge of the baked falloff textures.
	SpriteTextureSize int `yaml:"spriteTextureSize"`
}

// AudioConfig names the background track.
type AudioConfig struct {
	Path       string  `yaml:"path"`
	Volume     float64 `yaml:"volume"`
	SampleRate int     `yaml:"sampleRate"`
}

// CardConfig is the greeting card content.
type CardConfig struct {
	ImagePath string  `yaml:"imagePath"`
	Heading   string  `yaml:"heading"`
	Subtitle  string  `yaml:"subtitle"`
	Close     string  `yaml:"close"`
	MaxWidth  float64 `yaml:"maxWidth"`
}

// FontConfig selects the overlay typeface. Path is optional; when set the
// face is chained in front of Go Regular so CJK glyphs resolve.
type FontConfig struct {
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

// Config is the full runtime configuration.
type Config struct {
	Window   WindowConfig `yaml:"window"`
	Timeline Timeline     `yaml:"timeline"`
	Shell    ShellConfig  `yaml:"shell"`
	Field    FieldConfig  `yaml:"field"`
	Snow     SnowConfig   `yaml:"snow"`
	Spiral   SpiralConfig `yaml:"spiral"`
	Star     StarConfig   `yaml:"star"`
	Camera   CameraConfig `yaml:"camera"`
	Render   RenderConfig `yaml:"render"`
	Audio    AudioConfig  `yaml:"audio"`
	Card     CardConfig   `yaml:"card"`
	Font     FontConfig   `yaml:"font"`

	Debug         bool   `yaml:"debug"`
	ScreenshotDir string `yaml:"screenshotDir"`
}

// DefaultConfig returns the stock configuration.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:     "Merry Christmas",
			Width:     480,
			Height:    800,
			Resizable: true,
		},
		Timeline: DefaultTimeline(),
		Shell:    DefaultShellConfig(),
		Field:    DefaultFieldConfig(),
		Snow:     DefaultSnowConfig(),
		Spiral:   DefaultSpiralConfig(),
		Star:     DefaultStarConfig(),
		Camera:   DefaultCameraConfig(),
		Render: RenderConfig{
			GroupOffsetY:      -0.6,
			TreePointScale:    38,
			SnowPointScale:    45,
			MaxPointSize:      64,
			SpriteTextureSize: 64,
		},
		Audio: AudioConfig{
			Path:       "assets/bgm.mp3",
			Volume:     0.4,
			SampleRate: 44100,
		},
		Card: CardConfig{
			ImagePath: "assets/card.jpg",
			Heading:   "圣诞快乐",
			Subtitle:  "MERRY CHRISTMAS",
			Close:     "收起",
			MaxWidth:  280,
		},
		Font:          FontConfig{Size: 16},
		ScreenshotDir: "screenshots",
	}
}

// LoadConfig reads a YAML file over DefaultConfig and validates the result.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML over DefaultConfig, so keys that are absent keep
// their defaults, and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the scene cannot run with.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	checkRange := func(name string, r Range) {
		check(r.Min <= r.Max, "%s: min %g > max %g", name, r.Min, r.Max)
	}

	check(c.Window.Width > 0 && c.Window.Height > 0,
		"window: size %dx%d", c.Window.Width, c.Window.Height)

	check(c.Timeline.ConvergeDuration > 0, "timeline.convergeDuration must be positive")
	check(c.Timeline.LineGrowthDuration > 0, "timeline.lineGrowthDuration must be positive")
	check(c.Timeline.StarPopRate > 0, "timeline.starPopRate must be positive")
	check(c.Timeline.GrowthStart >= 0, "timeline.growthStart must not be negative")

	check(c.Shell.LoadingDelay > 0, "shell.loadingDelay must be positive")
	check(c.Shell.InteractDelay >= c.Shell.LoadingDelay,
		"shell.interactDelay %v precedes loadingDelay %v", c.Shell.InteractDelay, c.Shell.LoadingDelay)
	check(c.Shell.TapThreshold > 0, "shell.tapThreshold must be positive")

	check(c.Field.LeafCount >= 0 && c.Field.OrnamentCount >= 0 && c.Field.TrunkCount >= 0,
		"field: negative particle count")
	check(c.Field.Total() > 0, "field: no particles")
	check(c.Field.ConeHeight > 0, "field.coneHeight must be positive")
	checkRange("field.trunkY", c.Field.TrunkY)
	checkRange("field.leafSize", c.Field.LeafSize)
	checkRange("field.ornamentSize", c.Field.OrnamentSize)
	checkRange("field.seedRange", c.Field.SeedRange)

	check(c.Snow.Count >= 0, "snow.count must not be negative")
	check(c.Snow.Band > 0, "snow.band must be positive")
	checkRange("snow.size", c.Snow.Size)
	checkRange("snow.seed", c.Snow.Seed)

	check(c.Spiral.Segments > 0, "spiral.segments must be positive")
	check(c.Spiral.ConeHeight > 0, "spiral.coneHeight must be positive")

	check(c.Star.Points >= 2, "star.points must be at least 2")

	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov %g out of range", c.Camera.FOV)
	check(c.Camera.Near > 0 && c.Camera.Far > c.Camera.Near,
		"camera: near %g far %g", c.Camera.Near, c.Camera.Far)

	check(c.Render.SpriteTextureSize >= 4, "render.spriteTextureSize must be at least 4")

	check(c.Audio.Volume >= 0 && c.Audio.Volume <= 1, "audio.volume %g out of [0,1]", c.Audio.Volume)
	check(c.Audio.SampleRate > 0, "audio.sampleRate must be positive")

	check(c.Font.Size > 0, "font.size must be positive")
	check(c.Card.MaxWidth > 0, "card.maxWidth must be positive")

	return errors.Join(errs...)
}
