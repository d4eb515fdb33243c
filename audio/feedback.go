// Package audio provides speaker-backed interaction sounds for hologram
// panels.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(48000)

	clickFreq     = 1200.0
	clickDuration = 60 * time.Millisecond
	clickVolume   = 0.3

	// Hover reuses the click at double pitch, much quieter.
	hoverPitch  = 2.0
	hoverVolume = 0.1
)

// Feedback plays hover and click blips through the system speaker.
// It satisfies hologram.Feedback.
type Feedback struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewFeedback creates a Feedback. Call Initialize before the first sound.
func NewFeedback() *Feedback {
	return &Feedback{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (f *Feedback) Initialize() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(f.mixer)
	f.initialized = true
	return nil
}

// Cleanup stops all queued sounds.
func (f *Feedback) Cleanup() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized {
		return
	}
	speaker.Lock()
	f.mixer.Clear()
	speaker.Unlock()
	f.initialized = false
}

// SetMuted silences subsequent sounds.
func (f *Feedback) SetMuted(m bool) {
	f.mu.Lock()
	f.muted = m
	f.mu.Unlock()
}

// Hover plays the high, quiet blip used when the pointer enters a
// clickable control.
func (f *Feedback) Hover() {
	f.play(Blip(sampleRate, clickFreq*hoverPitch, clickDuration, hoverVolume))
}

// Click plays the click blip.
func (f *Feedback) Click() {
	f.play(Blip(sampleRate, clickFreq, clickDuration, clickVolume))
}

func (f *Feedback) play(s beep.Streamer) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.initialized || f.muted {
		return
	}
	speaker.Lock()
	f.mixer.Add(s)
	speaker.Unlock()
}

// Blip returns a sine tone of the given length with an exponential decay,
// scaled to volume (0..1).
func Blip(sr beep.SampleRate, freq float64, d time.Duration, volume float64) beep.Streamer {
	tone := beep.Take(sr.N(d), &toneGenerator{sr: sr, freq: freq, length: sr.N(d)})
	if volume <= 0 {
		return &effects.Volume{Streamer: tone, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(volume)}
}

// toneGenerator is an endless decaying sine; Take bounds it.
type toneGenerator struct {
	sr     beep.SampleRate
	freq   float64
	phase  float64
	pos    int
	length int
}

func (g *toneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		env := 1.0
		if g.length > 0 {
			env = math.Exp(-5 * float64(g.pos) / float64(g.length))
		}
		v := env * math.Sin(2*math.Pi*g.phase)
		samples[i][0] = v
		samples[i][1] = v

		g.phase += g.freq / float64(g.sr)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *toneGenerator) Err() error { return nil }
