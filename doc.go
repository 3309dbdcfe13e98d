// Package yuletide renders an animated, interactive Christmas tree built
// from particles, on [Ebitengine].
//
// A scene runs a fixed choreography. A loading screen is shown first. The
// particles then fly in from a scattered cloud and converge into a cone of
// foliage, ornaments and trunk. A glowing spiral then winds down the tree
// while a star pops in on top. Once the intro ends, the camera can be
// dragged around the tree and slowly auto-rotates. Tapping the scene opens
// a greeting card, and a toggle in the corner plays background music.
//
// # Quick start
//
//	cfg, err := yuletide.LoadConfig("yuletide.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene, err := yuletide.NewScene(cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := yuletide.Run(scene); err != nil {
//		log.Fatal(err)
//	}
//
// [Scene] implements [ebiten.Game], so it can also be handed to
// ebiten.RunGame or mobile.SetGame directly.
//
// # Timeline
//
// Every animated value is a pure function of elapsed time. [Timeline]
// derives convergence, spiral growth and star scale from the seconds since
// the tree was mounted. [Timeline.EvaluateField] and [EvaluateSnow] turn the
// immutable [Field] and [SnowField] into per-frame [ParticleFrame] slices,
// reusing the caller's buffers.
//
// # Shell
//
// [Shell] is the UI state machine. Its phase moves from [PhaseLoading] to
// [PhaseIntroLocked] to [PhaseInteractive] on two timers armed at mount. It
// also tracks whether the greeting card is open and whether audio is
// playing. Timers run on a frame-driven [Scheduler], so tests can step time
// exactly without a window.
//
// # Scripted runs
//
// Synthetic pointer input ([Scene.InjectTap], [Scene.InjectDrag]) and JSON
// test scripts ([LoadTestScript]) drive the scene without a user. Scripts
// can wait, tap, drag, assert shell state and capture screenshots.
//
// # ECS integration
//
// The yuletide/ecs sub-module publishes every [ShellEvent] to a [Donburi]
// world.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package yuletide
