package curve

import (
	"github.com/lixenwraith/pathrunner/vmath"
)

// Key identifies the segment and path revision a table was built from
type Key struct {
	Segment  int
	Revision uint64
}

// ArcLengthTable maps arc-length fractions to Bézier parameters for one segment
// Cumulative lengths are sampled at resolution uniform parameter steps
// The zero value is invalid until Build is called
type ArcLengthTable struct {
	lengths    []float64
	total      float64
	resolution int
	key        Key
	valid      bool
}

// Build samples seg and records cumulative chord lengths
// A resolution below 1 is treated as 1
func (a *ArcLengthTable) Build(seg Segment, resolution int, key Key) {
	if resolution < 1 {
		resolution = 1
	}

	if cap(a.lengths) >= resolution+1 {
		a.lengths = a.lengths[:resolution+1]
	} else {
		a.lengths = make([]float64, resolution+1)
	}

	a.lengths[0] = 0
	total := 0.0
	if seg.Degenerate() {
		// Bernstein weights do not sum to exactly 1, so sampling would accumulate rounding noise
		for i := 1; i <= resolution; i++ {
			a.lengths[i] = 0
		}
	} else {
		prev := seg.P0
		for i := 1; i <= resolution; i++ {
			curr := seg.Eval(float64(i) / float64(resolution))
			total += vmath.V3FDist(prev, curr)
			a.lengths[i] = total
			prev = curr
		}
	}

	a.total = total
	a.resolution = resolution
	a.key = key
	a.valid = true
}

// Invert returns the parameter t whose arc length is fraction of the total
// Fractions are clamped to [0, 1]; a segment whose four points coincide yields 0
func (a *ArcLengthTable) Invert(fraction float64) float64 {
	if !a.valid || a.total == 0 {
		return 0
	}

	target := vmath.Clamp01(fraction) * a.total
	step := 1 / float64(a.resolution)

	for i := 1; i < len(a.lengths); i++ {
		if a.lengths[i] < target {
			continue
		}
		t1 := float64(i-1) * step
		t2 := float64(i) * step

		l1, l2 := a.lengths[i-1], a.lengths[i]
		span := l2 - l1
		if span == 0 {
			return t1
		}
		return vmath.LerpF(t1, t2, (target-l1)/span)
	}

	return 1
}

// Valid reports whether Build has been called since the last Invalidate
func (a *ArcLengthTable) Valid() bool {
	return a.valid
}

// Matches reports whether the table is valid for key
func (a *ArcLengthTable) Matches(key Key) bool {
	return a.valid && a.key == key
}

// Invalidate marks the table stale
func (a *ArcLengthTable) Invalidate() {
	a.valid = false
}

// Key returns the segment/revision the table was built for
func (a *ArcLengthTable) Key() Key {
	return a.key
}

// TotalLength returns the approximate arc length of the segment
func (a *ArcLengthTable) TotalLength() float64 {
	return a.total
}

// Resolution returns the number of sampled steps
func (a *ArcLengthTable) Resolution() int {
	return a.resolution
}

// Lengths returns a copy of the cumulative length sequence
func (a *ArcLengthTable) Lengths() []float64 {
	out := make([]float64, len(a.lengths))
	copy(out, a.lengths)
	return out
}
