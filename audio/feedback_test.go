package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// TestToneGeneratorRange verifies samples stay in [-1, 1] and decay.
func TestToneGeneratorRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	g := &toneGenerator{sr: rate, freq: 440, length: rate.N(50 * time.Millisecond)}

	samples := make([][2]float64, 512)
	n, ok := g.Stream(samples)
	if !ok || n != 512 {
		t.Fatalf("Stream = (%d, %t), want (512, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("sample %d: channels differ", i)
		}
	}
	if g.Err() != nil {
		t.Errorf("Err = %v", g.Err())
	}
}

func TestToneGeneratorDecays(t *testing.T) {
	rate := beep.SampleRate(44100)
	length := rate.N(100 * time.Millisecond)
	g := &toneGenerator{sr: rate, freq: 441, length: length}

	samples := make([][2]float64, length)
	g.Stream(samples)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range samples[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	head, tail := peak(0, length/10), peak(length-length/10, length)
	if tail >= head {
		t.Errorf("tail peak %f >= head peak %f, want decay", tail, head)
	}
}

// TestBlipLength verifies Blip ends after its duration.
func TestBlipLength(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 20 * time.Millisecond
	s := Blip(rate, 1000, d, 0.5)

	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			break
		}
		if total > rate.N(d)*2 {
			t.Fatal("blip did not terminate")
		}
	}
	if total != rate.N(d) {
		t.Errorf("streamed %d samples, want %d", total, rate.N(d))
	}
}

func TestBlipVolumeScales(t *testing.T) {
	rate := beep.SampleRate(48000)
	loud := Blip(rate, 1000, 10*time.Millisecond, 1)
	quiet := Blip(rate, 1000, 10*time.Millisecond, 0.25)

	a := make([][2]float64, 64)
	b := make([][2]float64, 64)
	loud.Stream(a)
	quiet.Stream(b)
	for i := range a {
		if math.Abs(b[i][0]-a[i][0]*0.25) > 1e-9 {
			t.Fatalf("sample %d: quiet %f, want %f", i, b[i][0], a[i][0]*0.25)
		}
	}
}

func TestBlipSilentAtZeroVolume(t *testing.T) {
	s := Blip(beep.SampleRate(48000), 1000, 10*time.Millisecond, 0)
	buf := make([][2]float64, 64)
	s.Stream(buf)
	for i, v := range buf {
		if v[0] != 0 || v[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, v)
		}
	}
}

// TestFeedbackUninitialized verifies sounds are no-ops before Initialize.
func TestFeedbackUninitialized(t *testing.T) {
	f := NewFeedback()
	f.Hover()
	f.Click()
	if f.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers, want 0", f.mixer.Len())
	}
}
