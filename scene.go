package yuletide

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene is the top-level ebiten.Game. It owns the clock, the shell state
// machine, the camera rig, the generated particle buffers, the renderer and
// the overlay.
type Scene struct {
	cfg      Config
	pal      Palette
	timeline Timeline
	rng      Float64Source

	sched *Scheduler
	shell *Shell
	music *Music

	cam    *Camera
	orbit  *OrbitControl
	lights Lighting

	// Built once on Loading → IntroLocked.
	field       *Field
	snow        *SnowField
	spiral      *SpiralPath
	starOutline []Vec2
	treeClock   float64
	treeStart   int64

	fieldFrames []ParticleFrame
	snowFrames  []ParticleFrame

	gfx     *Renderer
	overlay *Overlay
	fonts   *Fonts
	photo   *ImagePreload
	fps     *fpsWidget

	// Input state
	pointer     pointerState
	injectQueue []syntheticPointerEvent

	// Scripted runs
	testRunner      *TestRunner
	screenshotQueue []string
	screenshotDir   string

	debug  bool
	frame  int64
	stats  debugStats
	width  int
	height int
	closed bool
}

// NewScene builds a scene from cfg and mounts its shell. Missing audio or
// card image files are logged and tolerated; an invalid config is not.
func NewScene(cfg Config) (*Scene, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	fonts, err := LoadFonts(cfg.Font)
	if fonts == nil {
		return nil, fmt.Errorf("new scene: %w", err)
	}
	if err != nil {
		log.Printf("[yuletide] font: %v; using Go Regular only", err)
	}
	cfg.Card = renderableCard(cfg.Card, fonts)

	pal := DefaultPalette()
	s := &Scene{
		cfg:           cfg,
		pal:           pal,
		timeline:      cfg.Timeline,
		sched:         NewScheduler(),
		lights:        DefaultLighting(pal),
		fonts:         fonts,
		music:         LoadMusic(cfg.Audio),
		photo:         PreloadImage(cfg.Card.ImagePath),
		gfx:           NewRenderer(cfg.Render),
		screenshotDir: cfg.ScreenshotDir,
		width:         cfg.Window.Width,
		height:        cfg.Window.Height,
	}

	vp := Rect{Width: float64(s.width), Height: float64(s.height)}
	s.cam = NewCamera(cfg.Camera, vp)
	s.orbit = NewOrbitControl(s.cam, cfg.Camera)

	s.overlay = NewOverlay(pal, cfg.Card, fonts, s.gfx, s.photo)
	s.overlay.SetSize(vp.Width, vp.Height)

	s.shell = NewShell(cfg.Shell, s.sched, s.music)
	s.shell.OnTransition(s.onTransition)
	s.shell.OnTransition(s.overlay.OnTransition)

	if cfg.Window.ShowFPS || cfg.Debug {
		s.fps = newFPSWidget()
	}
	s.SetDebugMode(cfg.Debug)

	s.shell.Mount()
	return s, nil
}

// Config returns the configuration the scene was built from.
func (s *Scene) Config() Config { return s.cfg }

// Shell returns the UI state machine.
func (s *Scene) Shell() *Shell { return s.shell }

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera { return s.cam }

// Orbit returns the camera's orbit control.
func (s *Scene) Orbit() *OrbitControl { return s.orbit }

// Field returns the tree particle field, or nil while loading.
func (s *Scene) Field() *Field { return s.field }

// TreeTime returns seconds elapsed since the tree was mounted.
func (s *Scene) TreeTime() float64 { return s.treeClock }

// SetRand sets the random source used when the tree is generated. Must be
// called before the shell leaves PhaseLoading; nil restores ambient
// randomness.
func (s *Scene) SetRand(rng Float64Source) { s.rng = rng }

// SetEventSink forwards every shell transition to sink.
func (s *Scene) SetEventSink(sink EventSink) { s.shell.SetEventSink(sink) }

// SetTestRunner attaches a script. Its step runs from Update before input
// each frame; once it is done the game loop terminates.
func (s *Scene) SetTestRunner(runner *TestRunner) { s.testRunner = runner }

// SetScreenshotDir changes where Screenshot writes PNG files.
func (s *Scene) SetScreenshotDir(dir string) { s.screenshotDir = dir }

// SetDebugMode enables or disables per-frame stats on stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	if enabled && s.fps == nil {
		s.fps = newFPSWidget()
	}
}

// onTransition reacts to shell phase changes.
func (s *Scene) onTransition(ev ShellEvent) {
	if s.debug {
		debugLogf("shell: %s phase=%s card=%s audio=%s at %v",
			ev.Type, ev.Phase, ev.Card, ev.Audio, ev.At)
	}
	if ev.Type != EventPhaseChanged {
		return
	}
	switch ev.Phase {
	case PhaseIntroLocked:
		s.mountTree()
	case PhaseInteractive:
		s.orbit.Enabled = true
		s.orbit.AutoRotate = true
	}
}

// mountTree generates the particle buffers, spiral and star outline.
func (s *Scene) mountTree() {
	if s.field != nil {
		return
	}
	s.field = GenerateField(s.cfg.Field, s.pal, s.rng)
	s.snow = GenerateSnow(s.cfg.Snow, s.rng)
	s.spiral = GenerateSpiral(s.cfg.Spiral)
	s.starOutline = StarOutline(s.cfg.Star)
	s.treeStart = s.frame
	s.treeClock = 0
}

// Update advances the scene by one tick.
func (s *Scene) Update() error {
	if s.closed {
		return ebiten.Termination
	}
	if s.testRunner != nil && s.testRunner.Done() {
		return ebiten.Termination
	}

	tps := ebiten.TPS()
	dt := 1 / float64(tps)
	s.frame++
	// Derive scheduler and tree time from tick counts so delays land on
	// exact frames instead of drifting with float accumulation.
	now := time.Duration(s.frame) * time.Second / time.Duration(tps)
	s.sched.Advance(now - s.sched.Now())
	if s.field != nil {
		s.treeClock = float64(s.frame-s.treeStart) / float64(tps)
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.orbit.Update(dt)
	s.overlay.Update(dt)
	if s.fps != nil {
		s.fps.update(dt)
	}
	return nil
}

// Draw renders the frame: background, snow, tree, spiral, star, overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	s.gfx.resetStats()
	s.stats = debugStats{}

	if !s.shell.Loading() && s.field != nil {
		s.drawTree(screen)
	}

	start := time.Now()
	s.overlay.Draw(screen, s.shell)
	if s.fps != nil {
		s.fps.draw(screen)
	}
	s.stats.overlayTime = time.Since(start)
	s.stats.render = s.gfx.stats

	s.debugLog(s.stats)
	s.flushScreenshots(screen)
}

func (s *Scene) drawTree(screen *ebiten.Image) {
	screen.Fill(s.pal.Background.RGBA())
	t := s.treeClock
	tl := s.timeline

	start := time.Now()
	s.fieldFrames = tl.EvaluateField(s.field, t, s.fieldFrames)
	s.snowFrames = EvaluateSnow(s.snow, s.pal.Snow, t, s.snowFrames)
	s.stats.evaluateTime = time.Since(start)

	start = time.Now()
	offset := Vec3{Y: s.cfg.Render.GroupOffsetY}
	s.gfx.DrawSnow(screen, s.cam, s.snowFrames)
	s.gfx.DrawField(screen, s.cam, s.fieldFrames, offset)
	if tl.SpiralVisible(t) {
		visible := s.spiral.Prefix(tl.VisibleSpiralPoints(t, s.spiral.Len()))
		s.gfx.DrawSpiral(screen, s.cam, visible, offset, s.cfg.Spiral, s.pal)
	}
	if tl.StarVisible(t) {
		center := Vec3{Y: s.cfg.Star.Y}.Add(offset)
		s.gfx.DrawStar(screen, s.cam, s.starOutline, center, tl.StarScale(t), s.cfg.Star.Glow, s.pal.Star, s.lights)
	}
	s.stats.drawTime = time.Since(start)
}

// Layout tracks the outside size so the camera and overlay follow window
// resizes.
func (s *Scene) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		s.cam.SetViewport(Rect{Width: float64(outsideWidth), Height: float64(outsideHeight)})
	}
	s.overlay.SetSize(float64(s.width), float64(s.height))
	return s.width, s.height
}

// Close cancels pending timers, stops audio and ends the game loop on the
// next Update.
func (s *Scene) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.shell.Close()
	s.sched.Close()
	return s.music.Close()
}
