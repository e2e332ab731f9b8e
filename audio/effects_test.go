package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n == 0 {
			return out
		}
	}
}

// TestOscillatorLength verifies the oscillator stops after its duration
func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100, 100*time.Millisecond, WaveSine, rate)

	samples := drain(osc)
	if len(samples) != 100 {
		t.Errorf("Expected 100 samples, got %d", len(samples))
	}
}

// TestOscillatorRange verifies every wave stays within [-1, 1]
func TestOscillatorRange(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []WaveType{WaveSine, WaveSquare} {
		for i, s := range drain(NewOscillator(440, 50*time.Millisecond, wave, rate)) {
			if math.Abs(s[0]) > 1.0+1e-9 || s[0] != s[1] {
				t.Fatalf("wave %d sample %d out of range: %v", wave, i, s)
			}
		}
	}
}

// TestEnvelopeShape verifies attack starts silent and release ends near silent
func TestEnvelopeShape(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate) // constant +1
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 20*time.Millisecond, rate)

	samples := drain(env)
	if len(samples) != 100 {
		t.Fatalf("Expected 100 samples, got %d", len(samples))
	}
	if samples[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full sustain, got %f", samples[50][0])
	}
	if last := samples[99][0]; last <= 0 || last > 0.1 {
		t.Errorf("Expected release tail near zero, got %f", last)
	}
}

// TestZeroVolumeSilent verifies zero volume produces no output
func TestZeroVolumeSilent(t *testing.T) {
	for _, s := range drain(CreateSegmentCue(0, beep.SampleRate(8000))) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("Expected silence, got %v", s)
		}
	}
}

// TestSegmentCueIsSquare verifies the segment blip only takes the two square levels at sustain
func TestSegmentCueIsSquare(t *testing.T) {
	rate := beep.SampleRate(8000)
	samples := drain(CreateSegmentCue(1, rate))

	// past the 5ms attack and before the 60ms release
	for i := rate.N(10 * time.Millisecond); i < rate.N(25*time.Millisecond); i++ {
		if v := math.Abs(samples[i][0]); math.Abs(v-1) > 1e-9 {
			t.Fatalf("sample %d = %f, want ±1", i, samples[i][0])
		}
	}
}

// TestCueDurations verifies the cues have the expected lengths
func TestCueDurations(t *testing.T) {
	rate := beep.SampleRate(8000)

	if got := len(drain(CreateSegmentCue(1, rate))); got != rate.N(90*time.Millisecond) {
		t.Errorf("segment cue length = %d", got)
	}
	want := rate.N(200*time.Millisecond) + rate.N(400*time.Millisecond)
	if got := len(drain(CreateFinishCue(1, rate))); got != want {
		t.Errorf("finish cue length = %d, want %d", got, want)
	}
}
