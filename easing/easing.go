// Package easing implements the progress remapping curve applied before arc-length inversion.
//
// A Profile is a tangent-controlled cubic Hermite spline through keyframes on [0,1].
// Presets only rewrite keyframe tangents; keyframe times and values are never moved.
package easing

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Preset selects a tangent configuration
type Preset uint8

const (
	Linear Preset = iota
	EaseIn
	EaseOut
)

var presetNames = [...]string{
	Linear:  "linear",
	EaseIn:  "ease-in",
	EaseOut: "ease-out",
}

func (p Preset) String() string {
	if int(p) < len(presetNames) {
		return presetNames[p]
	}
	return fmt.Sprintf("preset(%d)", p)
}

// ParsePreset accepts a preset name or its index ("0", "1", "2")
func ParsePreset(s string) (Preset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "linear", "0":
		return Linear, nil
	case "ease-in", "easein", "ease_in", "1":
		return EaseIn, nil
	case "ease-out", "easeout", "ease_out", "2":
		return EaseOut, nil
	}
	return Linear, fmt.Errorf("unknown easing preset %q", s)
}

// PresetFromIndex maps the UI dropdown index to a preset
func PresetFromIndex(i int) (Preset, bool) {
	if i < 0 || i >= len(presetNames) {
		return Linear, false
	}
	return Preset(i), true
}

// Keyframe is a point on the curve with the slopes entering and leaving it
type Keyframe struct {
	Time       float64
	Value      float64
	InTangent  float64
	OutTangent float64
}

// Profile is a monotone remapping over [0,1]
type Profile struct {
	keys   []Keyframe
	preset Preset
}

// New returns the default (0,0)→(1,1) curve with linear tangents
func New() *Profile {
	p := &Profile{
		keys: []Keyframe{
			{Time: 0, Value: 0},
			{Time: 1, Value: 1},
		},
	}
	p.Apply(Linear)
	return p
}

// NewWithKeys builds a profile from at least two keyframes, sorted by time
func NewWithKeys(keys []Keyframe) (*Profile, error) {
	if len(keys) < 2 {
		return nil, fmt.Errorf("easing profile needs at least 2 keyframes, got %d", len(keys))
	}
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Time == sorted[i-1].Time {
			return nil, fmt.Errorf("duplicate keyframe time %v", sorted[i].Time)
		}
	}
	return &Profile{keys: sorted}, nil
}

// Apply rewrites tangents in place for the preset
// Presets compose: EaseOut after EaseIn keeps the steepened in-tangents
func (p *Profile) Apply(preset Preset) {
	for i := range p.keys {
		k := &p.keys[i]
		switch preset {
		case Linear:
			k.InTangent = constants.LinearTangent
			k.OutTangent = constants.LinearTangent
		case EaseIn:
			k.InTangent = constants.EaseInTangent
		case EaseOut:
			k.OutTangent = constants.EaseOutTangent
		}
	}
	p.preset = preset
}

// Preset returns the most recently applied preset
func (p *Profile) Preset() Preset {
	return p.preset
}

// Keys returns a copy of the keyframes
func (p *Profile) Keys() []Keyframe {
	out := make([]Keyframe, len(p.keys))
	copy(out, p.keys)
	return out
}

// Evaluate remaps normalized progress x
// Outside the keyframe domain the end values hold; the result is clamped to [0,1]
func (p *Profile) Evaluate(x float64) float64 {
	first, last := p.keys[0], p.keys[len(p.keys)-1]
	if x <= first.Time {
		return vmath.Clamp01(first.Value)
	}
	if x >= last.Time {
		return vmath.Clamp01(last.Value)
	}

	// First key strictly after x
	i := sort.Search(len(p.keys), func(i int) bool { return p.keys[i].Time > x })
	k0, k1 := p.keys[i-1], p.keys[i]

	return vmath.Clamp01(hermite(k0, k1, x))
}

// hermite evaluates the cubic between k0 and k1 with tangents scaled to the key span
func hermite(k0, k1 Keyframe, x float64) float64 {
	dt := k1.Time - k0.Time
	s := (x - k0.Time) / dt

	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	m0 := k0.OutTangent * dt
	m1 := k1.InTangent * dt

	return h00*k0.Value + h10*m0 + h01*k1.Value + h11*m1
}
