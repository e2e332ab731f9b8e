// Package curve holds the cubic Bézier segment view and its arc-length table.
package curve

import (
	"github.com/lixenwraith/pathrunner/vmath"
)

// Segment is one cubic Bézier span: two anchors (P0, P3) and two controls (P1, P2)
type Segment struct {
	P0, P1, P2, P3 vmath.Vec3F
}

// Eval returns the point at parameter t
func (s Segment) Eval(t float64) vmath.Vec3F {
	return vmath.CubicBezier(s.P0, s.P1, s.P2, s.P3, t)
}

// Points returns the four defining points in order
func (s Segment) Points() [4]vmath.Vec3F {
	return [4]vmath.Vec3F{s.P0, s.P1, s.P2, s.P3}
}

// Degenerate reports whether all four points coincide
func (s Segment) Degenerate() bool {
	return s.P0 == s.P1 && s.P1 == s.P2 && s.P2 == s.P3
}

// Sample returns resolution+1 points at uniform parameter steps, endpoints included
func Sample(s Segment, resolution int) []vmath.Vec3F {
	if resolution < 1 {
		resolution = 1
	}
	pts := make([]vmath.Vec3F, resolution+1)
	for i := 0; i <= resolution; i++ {
		pts[i] = s.Eval(float64(i) / float64(resolution))
	}
	return pts
}
