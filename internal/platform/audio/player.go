// Package audio plays short synthesized cues for game events. Tones are
// generated on the fly with a small oscillator rather than shipped as
// samples. Audio is strictly fire-and-forget: any failure here is logged
// and never reaches the simulation.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/okhoma/snakepit/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// tone describes one synthesized cue.
type tone struct {
	freq     float64
	duration time.Duration
	wave     WaveType
}

// cueTones maps game cues to their tones.
var cueTones = map[core.Cue]tone{
	core.CueStart:     {freq: 440, duration: 120 * time.Millisecond, wave: WaveSquare},
	core.CuePickup:    {freq: 880, duration: 60 * time.Millisecond, wave: WaveSquare},
	core.CuePowerUp:   {freq: 660, duration: 150 * time.Millisecond, wave: WaveSine},
	core.CueCollision: {freq: 110, duration: 250 * time.Millisecond, wave: WaveSaw},
}

// Player synthesizes and plays audio cues through the system speaker.
// The zero value is unusable; call NewPlayer.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	failed      bool
}

// NewPlayer creates a player. The speaker is initialized lazily on the
// first Play call so that headless environments pay nothing.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Play queues the tone for the given cue. Unknown cues and audio
// failures are ignored; a failed speaker is not retried.
func (p *Player) Play(cue core.Cue) {
	t, ok := cueTones[cue]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.failed {
		return
	}
	if !p.initialized {
		if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
			log.Warn("audio unavailable, cues disabled", "err", err)
			p.failed = true
			return
		}
		speaker.Play(p.mixer)
		p.initialized = true
	}

	osc := NewOscillator(t.freq, t.duration, t.wave, sampleRate)
	env := NewEnvelope(osc, t.duration, 5*time.Millisecond, 20*time.Millisecond, sampleRate)

	speaker.Lock()
	p.mixer.Add(env)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself has no close operation.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		speaker.Lock()
		p.mixer.Clear()
		speaker.Unlock()
	}
}
