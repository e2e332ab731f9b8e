package constants

import "time"

// Cue timing
const (
	// SegmentCueDuration is the blip played when the runner enters the next segment
	SegmentCueDuration = 90 * time.Millisecond
	SegmentCueAttack   = 5 * time.Millisecond
	SegmentCueRelease  = 60 * time.Millisecond

	// FinishCueDuration is the two-note chime played when playback completes
	FinishCueDuration = 400 * time.Millisecond
	FinishCueAttack   = 5 * time.Millisecond
	FinishCueRelease  = 300 * time.Millisecond

	// CueBufferDuration is the speaker buffer size
	CueBufferDuration = 100 * time.Millisecond
)

// Cue pitches in Hz
const (
	SegmentCueFreq    = 660.0
	FinishCueFreqLow  = 784.0
	FinishCueFreqHigh = 1046.5
)

// CueSampleRate is the speaker sample rate
const CueSampleRate = 44100
