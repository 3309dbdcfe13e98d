package yuletide

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
)

// Music is the looping background track. A Music whose track failed to
// load is still usable: Play reports the load error and Pause is a no-op.
type Music struct {
	player *audio.Player
	err    error
}

// audioContext returns the process-wide Ebitengine audio context, creating
// it at sampleRate on first use.
func audioContext(sampleRate int) *audio.Context {
	if ctx := audio.CurrentContext(); ctx != nil {
		return ctx
	}
	return audio.NewContext(sampleRate)
}

// LoadMusic reads an MP3 file and prepares an infinite-loop player at the
// configured volume. Loading is best-effort: failures are logged and
// carried by the returned Music.
func LoadMusic(cfg AudioConfig) *Music {
	if cfg.Path == "" {
		return &Music{err: ErrNoAudio}
	}
	data, err := os.ReadFile(cfg.Path)
	if err != nil {
		log.Printf("[yuletide] audio: %v", err)
		return &Music{err: fmt.Errorf("read %s: %w", cfg.Path, err)}
	}
	m, err := newMusic(audioContext(cfg.SampleRate), data, cfg.Volume)
	if err != nil {
		log.Printf("[yuletide] audio: %s: %v", cfg.Path, err)
		return &Music{err: err}
	}
	return m
}

// newMusic decodes MP3 data into a looping player on ctx.
func newMusic(ctx *audio.Context, data []byte, volume float64) (*Music, error) {
	stream, err := mp3.DecodeWithSampleRate(ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode mp3: %w", err)
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	player.SetVolume(volume)
	return &Music{player: player}, nil
}

// Err returns the load error, if any.
func (m *Music) Err() error { return m.err }

// Play starts or resumes the track.
func (m *Music) Play() error {
	if m.player == nil {
		if m.err == nil {
			return ErrNoAudio
		}
		return fmt.Errorf("play: %w", m.err)
	}
	m.player.Play()
	return nil
}

// Pause stops the track, keeping its position.
func (m *Music) Pause() {
	if m.player != nil {
		m.player.Pause()
	}
}

// Playing reports whether the track is audible.
func (m *Music) Playing() bool {
	return m.player != nil && m.player.IsPlaying()
}

// Close releases the player.
func (m *Music) Close() error {
	if m.player == nil {
		return nil
	}
	err := m.player.Close()
	m.player = nil
	return err
}
