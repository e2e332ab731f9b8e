// Package audio plays short synthesized cues for traversal events.
package audio

import (
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/motion"
)

const sampleRate = beep.SampleRate(constants.CueSampleRate)

// CuePlayer turns traversal events into audio cues
// Every operation is safe before Initialize and after Cleanup; cues are dropped
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	muted       bool
	initialized bool
}

var _ motion.Listener = (*CuePlayer)(nil)

// NewCuePlayer creates a player with the given master volume in [0, 1]
func NewCuePlayer(volume float64) *CuePlayer {
	return &CuePlayer{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup drops any queued cues and detaches from the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// ToggleMute flips the mute state and returns the new value
func (p *CuePlayer) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = !p.muted
	return p.muted
}

// Muted reports whether cues are suppressed
func (p *CuePlayer) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// PlaySegmentCue plays the segment-advance blip
func (p *CuePlayer) PlaySegmentCue() {
	p.enqueue(func() beep.Streamer { return CreateSegmentCue(p.volume, sampleRate) })
}

// PlayFinishCue plays the playback-finished chime
func (p *CuePlayer) PlayFinishCue() {
	p.enqueue(func() beep.Streamer { return CreateFinishCue(p.volume, sampleRate) })
}

func (p *CuePlayer) enqueue(build func() beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted || p.volume <= 0 {
		return
	}

	speaker.Lock()
	p.mixer.Add(build())
	speaker.Unlock()
}

// OnTraversalEvent maps segment advances and playback completion to cues
func (p *CuePlayer) OnTraversalEvent(ev motion.Event) {
	switch ev.Type {
	case motion.EventSegmentAdvanced:
		p.PlaySegmentCue()
	case motion.EventPlaybackFinished:
		p.PlayFinishCue()
	}
}
