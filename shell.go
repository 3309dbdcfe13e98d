package yuletide

import (
	"errors"
	"fmt"
	"log"
	"time"
)

// Phase is the intro progression of the shell.
type Phase uint8

const (
	PhaseLoading     Phase = iota // loading screen; no scene graph exists yet
	PhaseIntroLocked              // scene visible, rotation inert
	PhaseInteractive              // drag rotation and auto-rotation enabled
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseIntroLocked:
		return "intro-locked"
	case PhaseInteractive:
		return "interactive"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// CardState is whether the greeting card modal is showing.
type CardState uint8

const (
	CardClosed CardState = iota
	CardOpen
)

// String returns the card state name.
func (c CardState) String() string {
	if c == CardOpen {
		return "open"
	}
	return "closed"
}

// AudioState is whether the background track is playing.
type AudioState uint8

const (
	AudioMuted AudioState = iota
	AudioPlaying
)

// String returns the audio state name.
func (a AudioState) String() string {
	if a == AudioPlaying {
		return "playing"
	}
	return "muted"
}

// ShellEventType identifies a shell transition.
type ShellEventType uint8

const (
	EventPhaseChanged  ShellEventType = iota // Phase moved forward
	EventCardOpened                          // card modal shown
	EventCardClosed                          // card modal dismissed
	EventAudioStarted                        // track started playing
	EventAudioPaused                         // track paused
	EventAudioRejected                       // host refused playback; state stays muted
)

// String returns the event type name.
func (t ShellEventType) String() string {
	switch t {
	case EventPhaseChanged:
		return "phase-changed"
	case EventCardOpened:
		return "card-opened"
	case EventCardClosed:
		return "card-closed"
	case EventAudioStarted:
		return "audio-started"
	case EventAudioPaused:
		return "audio-paused"
	case EventAudioRejected:
		return "audio-rejected"
	default:
		return fmt.Sprintf("event(%d)", uint8(t))
	}
}

// ShellEvent describes one transition, with the full state after it.
type ShellEvent struct {
	Type      ShellEventType
	Phase     Phase
	PrevPhase Phase
	Card      CardState
	Audio     AudioState
	At        time.Duration
}

// EventSink receives shell transitions. See the ecs sub-package for a
// Donburi-backed implementation.
type EventSink interface {
	EmitEvent(event ShellEvent)
}

// MusicPlayer is the audio collaborator the shell toggles.
type MusicPlayer interface {
	Play() error
	Pause()
}

// ErrNoAudio is returned by ToggleMute when the shell has no player.
var ErrNoAudio = errors.New("yuletide: no audio player")

// ShellConfig holds the shell's timing and gesture constants.
type ShellConfig struct {
	// LoadingDelay is the fixed dwell on the loading screen, measured from
	// mount. It does not wait for assets.
	LoadingDelay time.Duration `yaml:"loadingDelay"`
	// InteractDelay is when rotation unlocks, measured from mount.
	InteractDelay time.Duration `yaml:"interactDelay"`
	// TapThreshold is the per-axis pixel displacement below which a
	// release counts as a tap rather than a drag.
	TapThreshold float64 `yaml:"tapThreshold"`
}

// DefaultShellConfig returns the stock shell timing.
func DefaultShellConfig() ShellConfig {
	return ShellConfig{
		LoadingDelay:  2000 * time.Millisecond,
		InteractDelay: 3600 * time.Millisecond,
		TapThreshold:  5,
	}
}

// Shell is the UI state machine: Loading → IntroLocked → Interactive,
// combined with an independent card state and audio state. All changes go
// through guarded transition methods; illegal combinations such as an open
// card while loading cannot be reached.
type Shell struct {
	cfg   ShellConfig
	sched *Scheduler
	music MusicPlayer
	sink  EventSink

	phase Phase
	card  CardState
	audio AudioState

	loadTask   *Task
	unlockTask *Task
	mounted    bool
	closed     bool

	listeners []func(ShellEvent)
}

// NewShell creates a shell in PhaseLoading. Timers are not armed until Mount.
// music may be nil.
func NewShell(cfg ShellConfig, sched *Scheduler, music MusicPlayer) *Shell {
	return &Shell{cfg: cfg, sched: sched, music: music}
}

// Config returns the shell's configuration.
func (s *Shell) Config() ShellConfig { return s.cfg }

// SetEventSink sets the optional transition sink.
func (s *Shell) SetEventSink(sink EventSink) { s.sink = sink }

// OnTransition registers fn to be called after every transition.
func (s *Shell) OnTransition(fn func(ShellEvent)) {
	s.listeners = append(s.listeners, fn)
}

// Mount arms the two one-shot timers relative to the scheduler's current
// time. Calling Mount twice is a no-op.
func (s *Shell) Mount() {
	if s.mounted || s.closed {
		return
	}
	s.mounted = true
	s.loadTask = s.sched.After(s.cfg.LoadingDelay, func() {
		s.advanceTo(PhaseIntroLocked)
	})
	s.unlockTask = s.sched.After(s.cfg.InteractDelay, func() {
		s.advanceTo(PhaseInteractive)
	})
}

// Close cancels the pending timers so no callback fires after teardown
// and pauses the track, leaving the shell muted.
func (s *Shell) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.loadTask.Cancel()
	s.unlockTask.Cancel()
	if s.music != nil && s.audio == AudioPlaying {
		s.music.Pause()
		s.audio = AudioMuted
		s.emit(ShellEvent{Type: EventAudioPaused})
	}
}

// Phase returns the current intro phase.
func (s *Shell) Phase() Phase { return s.phase }

// Card returns the current card state.
func (s *Shell) Card() CardState { return s.card }

// Audio returns the current audio state.
func (s *Shell) Audio() AudioState { return s.audio }

// Muted reports whether the track is not playing.
func (s *Shell) Muted() bool { return s.audio == AudioMuted }

// Loading reports whether the loading screen is up.
func (s *Shell) Loading() bool { return s.phase == PhaseLoading }

// CanInteract reports whether orbit rotation is unlocked.
func (s *Shell) CanInteract() bool { return s.phase == PhaseInteractive }

// CardOpen reports whether the card modal is showing.
func (s *Shell) CardOpen() bool { return s.card == CardOpen }

// advanceTo walks phases forward one at a time so every intermediate
// transition is observed, even if timers were configured out of order.
func (s *Shell) advanceTo(target Phase) {
	for s.phase < target {
		prev := s.phase
		s.phase++
		s.emit(ShellEvent{Type: EventPhaseChanged, PrevPhase: prev})
	}
}

// OpenCard shows the card. It is refused while loading or when the card is
// already open.
func (s *Shell) OpenCard() bool {
	if s.phase == PhaseLoading || s.card == CardOpen {
		return false
	}
	s.card = CardOpen
	s.emit(ShellEvent{Type: EventCardOpened})
	return true
}

// CloseCard dismisses the card. Returns false if it was not open.
func (s *Shell) CloseCard() bool {
	if s.card != CardOpen {
		return false
	}
	s.card = CardClosed
	s.emit(ShellEvent{Type: EventCardClosed})
	return true
}

// HandleRelease applies the tap-to-open rule for a pointer gesture that
// went down at down and up at up. onMute reports whether the release
// landed on the mute toggle. Returns true if the card opened.
func (s *Shell) HandleRelease(down, up Vec2, onMute bool) bool {
	if s.phase == PhaseLoading || s.card == CardOpen || onMute {
		return false
	}
	if ClassifyRelease(down, up, s.cfg.TapThreshold) != GestureTap {
		return false
	}
	return s.OpenCard()
}

// ToggleMute starts or pauses the track. If the host refuses playback the
// error is logged, the shell stays muted, and the error is returned.
func (s *Shell) ToggleMute() error {
	if s.music == nil {
		return ErrNoAudio
	}
	if s.audio == AudioPlaying {
		s.music.Pause()
		s.audio = AudioMuted
		s.emit(ShellEvent{Type: EventAudioPaused})
		return nil
	}
	if err := s.music.Play(); err != nil {
		log.Printf("[yuletide] audio: play rejected: %v", err)
		s.emit(ShellEvent{Type: EventAudioRejected})
		return fmt.Errorf("toggle mute: %w", err)
	}
	s.audio = AudioPlaying
	s.emit(ShellEvent{Type: EventAudioStarted})
	return nil
}

// emit fills in the current state and notifies listeners and the sink.
func (s *Shell) emit(ev ShellEvent) {
	ev.Phase = s.phase
	if ev.Type != EventPhaseChanged {
		ev.PrevPhase = s.phase
	}
	ev.Card = s.card
	ev.Audio = s.audio
	if s.sched != nil {
		ev.At = s.sched.Now()
	}
	for _, fn := range s.listeners {
		fn(ev)
	}
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}
