// Package audio plays short synthesized tones for game cues.
package audio

import (
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/mirror-lane/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// note is one tone in a cue.
type note struct {
	freq float64
	dur  time.Duration
}

// cueNotes lists the tones played for each cue.
var cueNotes = map[core.Cue][]note{
	core.CueCorrect: {{freq: 880, dur: 70 * time.Millisecond}, {freq: 1318.51, dur: 110 * time.Millisecond}},
	core.CueWrong:   {{freq: 196, dur: 90 * time.Millisecond}, {freq: 146.83, dur: 160 * time.Millisecond}},
}

// CueStreamer builds the streamer for a cue at the given rate and volume
// (1 is full scale). It returns nil for CueNone or an unknown cue.
func CueStreamer(c core.Cue, rate beep.SampleRate, volume float64) (beep.Streamer, error) {
	notes, ok := cueNotes[c]
	if !ok {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(n.dur), tone))
	}
	return withVolume(beep.Seq(parts...), volume), nil
}

// withVolume scales a stream linearly; zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Player plays cue tones on the system speaker. A Player that failed to
// initialize stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	logger      *log.Logger
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer(volume float64, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the tones for a cue. It is a no-op before Init.
func (p *Player) Play(c core.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s, err := CueStreamer(c, sampleRate, p.volume)
	if err != nil {
		p.logger.Warn("cue synthesis failed", "cue", c, "err", err)
		return
	}
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and clears queued tones.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
