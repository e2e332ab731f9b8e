package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/pathrunner/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope creates an attack/release envelope; the remainder of duration sustains at full level
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

// gain returns the envelope level at sample position pos
func (e *envelope) gain(pos int) float64 {
	if pos < e.attackSamples {
		return float64(pos) / float64(e.attackSamples)
	}
	releaseStart := e.totalSamples - e.releaseSamples
	if e.releaseSamples > 0 && pos >= releaseStart {
		return math.Max(0, float64(e.totalSamples-pos)/float64(e.releaseSamples))
	}
	return 1.0
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in a linear volume; math.Log2(0) is -Inf so zero maps to silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateSegmentCue generates a short square-wave blip for the runner entering the next segment
func CreateSegmentCue(volume float64, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(constants.SegmentCueFreq, constants.SegmentCueDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, constants.SegmentCueDuration, constants.SegmentCueAttack, constants.SegmentCueRelease, rate)
	return newVolume(shaped, volume)
}

// CreateFinishCue generates a two-note rising chime for playback completion
func CreateFinishCue(volume float64, rate beep.SampleRate) beep.Streamer {
	half := constants.FinishCueDuration / 2

	low := NewOscillator(constants.FinishCueFreqLow, half, WaveSine, rate)
	lowShaped := NewEnvelope(low, half, constants.FinishCueAttack, half/2, rate)

	high := NewOscillator(constants.FinishCueFreqHigh, constants.FinishCueDuration, WaveSine, rate)
	highShaped := NewEnvelope(high, constants.FinishCueDuration, constants.FinishCueAttack, constants.FinishCueRelease, rate)

	return newVolume(beep.Seq(lowShaped, highShaped), volume)
}
