// Package audio synthesizes the short one-shot cues presentation code asks
// for by name. There are no sound assets; every cue is a few sine notes.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a cue: Notes played back to back, each lasting Note.
type Tone struct {
	Notes  []float64
	Note   time.Duration
	Volume float64
}

var DefaultCues = map[string]Tone{
	"walk":             {Notes: []float64{180}, Note: 40 * time.Millisecond, Volume: 0.2},
	"jump":             {Notes: []float64{440, 660}, Note: 50 * time.Millisecond, Volume: 0.4},
	"attack":           {Notes: []float64{330}, Note: 70 * time.Millisecond, Volume: 0.5},
	"shoot":            {Notes: []float64{880, 660}, Note: 40 * time.Millisecond, Volume: 0.4},
	"hurt":             {Notes: []float64{220, 160}, Note: 80 * time.Millisecond, Volume: 0.5},
	"die":              {Notes: []float64{300, 200, 120}, Note: 120 * time.Millisecond, Volume: 0.5},
	"door_open":        {Notes: []float64{200, 260}, Note: 150 * time.Millisecond, Volume: 0.3},
	"door_close":       {Notes: []float64{260, 200}, Note: 150 * time.Millisecond, Volume: 0.3},
	"key_press":        {Notes: []float64{1200}, Note: 25 * time.Millisecond, Volume: 0.25},
	"password_correct": {Notes: []float64{660, 880, 1320}, Note: 90 * time.Millisecond, Volume: 0.4},
	"password_wrong":   {Notes: []float64{140, 110}, Note: 140 * time.Millisecond, Volume: 0.5},
}

// CuePlayer mixes cues into a single speaker stream. Until Initialize
// succeeds Play is a no-op, so headless runs and tests never touch audio
// hardware.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cues        map[string]Tone
	initialized bool
}

func NewCuePlayer(cues map[string]Tone) *CuePlayer {
	if cues == nil {
		cues = DefaultCues
	}
	return &CuePlayer{mixer: &beep.Mixer{}, cues: cues}
}

func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts the named cue. Unknown names are ignored.
func (p *CuePlayer) Play(name string) bool {
	s, ok := p.Streamer(name)
	if !ok {
		return false
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return false
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	return true
}

// Streamer builds a fresh streamer for the named cue.
func (p *CuePlayer) Streamer(name string) (beep.Streamer, bool) {
	tone, ok := p.cues[name]
	if !ok || len(tone.Notes) == 0 {
		return nil, false
	}

	notes := make([]beep.Streamer, 0, len(tone.Notes))
	for _, freq := range tone.Notes {
		sine, err := generators.SineTone(sampleRate, freq)
		if err != nil {
			continue
		}
		notes = append(notes, beep.Take(sampleRate.N(tone.Note), sine))
	}
	if len(notes) == 0 {
		return nil, false
	}
	return newVolume(beep.Seq(notes...), tone.Volume), true
}

func (p *CuePlayer) Close() {
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

func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
