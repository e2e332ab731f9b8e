package constants

import "time"

// Path construction
const (
	// ControlLerpNear places the first synthesized control point along previous→new anchor
	ControlLerpNear = 0.3

	// ControlLerpFar places the second synthesized control point along previous→new anchor
	ControlLerpFar = 0.7

	// PointsPerSegment is the number of points that define one cubic segment
	PointsPerSegment = 4

	// SegmentStride is the number of points appended per extension (2 controls + 1 anchor)
	SegmentStride = 3
)

// Traversal
const (
	// DefaultCurveResolution is the arc-length sampling density per segment
	DefaultCurveResolution = 20

	// DefaultSegmentDuration is the time to traverse one segment
	DefaultSegmentDuration = 5 * time.Second

	// LookAheadDistance is the parameter offset of the facing sample, clamped to t=1
	LookAheadDistance = 0.01
)

// Easing preset tangents
const (
	LinearTangent  = 1.0
	EaseInTangent  = 2.0
	EaseOutTangent = 0.0
)
