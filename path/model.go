// Package path stores the ordered anchor/control point sequence of a piecewise cubic Bézier.
//
// Points are a flat sequence: anchor, control, control, anchor, ... Segment k is the four
// points starting at offset 3k, and consecutive segments share their boundary anchor.
package path

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/curve"
	"github.com/lixenwraith/pathrunner/vmath"
)

// ErrInvalidSegment is returned for segment requests the point sequence cannot satisfy
var ErrInvalidSegment = errors.New("invalid segment access")

// Role distinguishes user-placed anchors from synthesized control points
type Role uint8

const (
	RoleAnchor Role = iota
	RoleControl
)

func (r Role) String() string {
	switch r {
	case RoleAnchor:
		return "anchor"
	case RoleControl:
		return "control"
	}
	return fmt.Sprintf("role(%d)", r)
}

// ObjectID is the handle of a visual object owned by the scene collaborator
type ObjectID uint64

// NoObject is the zero handle: no visual, or the ground plane in raycast hits
const NoObject ObjectID = 0

// Visuals creates and destroys the scene objects that represent points
type Visuals interface {
	Instantiate(role Role, parent ObjectID, at vmath.Vec3F) ObjectID
	Move(id ObjectID, at vmath.Vec3F)
	Destroy(id ObjectID)
}

// Point is one entry of the sequence
// Owner is the index of the anchor this point is parented to; anchors own themselves
type Point struct {
	Role     Role
	Position vmath.Vec3F
	Owner    int
	Object   ObjectID
}

// Model is the ordered point sequence
// Len is always 0 or 1 mod 3
type Model struct {
	points   []Point
	visuals  Visuals
	revision uint64
}

// NewModel creates an empty path; visuals may be nil
func NewModel(visuals Visuals) *Model {
	return &Model{visuals: visuals}
}

// AddAnchor appends an anchor, preceded by two synthesized control points when extending
// Control points sit at 0.3 and 0.7 along last→new anchor, each parented to its nearer anchor
func (m *Model) AddAnchor(pos vmath.Vec3F) int {
	if len(m.points) > 0 {
		lastIdx := len(m.points) - 1
		last := m.points[lastIdx]
		newIdx := lastIdx + constants.SegmentStride

		c1 := vmath.V3FLerp(last.Position, pos, constants.ControlLerpNear)
		c2 := vmath.V3FLerp(last.Position, pos, constants.ControlLerpFar)

		m.points = append(m.points,
			Point{Role: RoleControl, Position: c1, Owner: lastIdx},
			Point{Role: RoleControl, Position: c2, Owner: newIdx},
		)
	}

	idx := len(m.points)
	m.points = append(m.points, Point{Role: RoleAnchor, Position: pos, Owner: idx})

	// Anchor visual first so the trailing control can parent to it
	m.instantiate(idx, NoObject)
	if idx > 0 {
		m.instantiate(idx-2, m.points[idx-3].Object)
		m.instantiate(idx-1, m.points[idx].Object)
	}

	m.revision++
	return idx
}

func (m *Model) instantiate(i int, parent ObjectID) {
	if m.visuals == nil {
		return
	}
	p := &m.points[i]
	p.Object = m.visuals.Instantiate(p.Role, parent, p.Position)
}

// AnchorIndex returns the index of the anchor that ends segment
func AnchorIndex(segment int) int {
	return constants.SegmentStride * (segment + 1)
}

// SegmentAt returns the segment ending at anchorIndex
// anchorIndex must be a positive multiple of 3 within the sequence
func (m *Model) SegmentAt(anchorIndex int) (curve.Segment, error) {
	n := len(m.points)
	switch {
	case n < constants.PointsPerSegment:
		return curve.Segment{}, fmt.Errorf("%w: %d points, need %d", ErrInvalidSegment, n, constants.PointsPerSegment)
	case anchorIndex < constants.SegmentStride || anchorIndex%constants.SegmentStride != 0:
		return curve.Segment{}, fmt.Errorf("%w: anchor index %d not on stride %d", ErrInvalidSegment, anchorIndex, constants.SegmentStride)
	case anchorIndex >= n:
		return curve.Segment{}, fmt.Errorf("%w: anchor index %d beyond %d points", ErrInvalidSegment, anchorIndex, n)
	}

	return curve.Segment{
		P0: m.points[anchorIndex-3].Position,
		P1: m.points[anchorIndex-2].Position,
		P2: m.points[anchorIndex-1].Position,
		P3: m.points[anchorIndex].Position,
	}, nil
}

// Segment returns segment k (0-based)
func (m *Model) Segment(k int) (curve.Segment, error) {
	return m.SegmentAt(AnchorIndex(k))
}

// SegmentCount returns the number of complete segments
func (m *Model) SegmentCount() int {
	if len(m.points) < constants.PointsPerSegment {
		return 0
	}
	return (len(m.points) - 1) / constants.SegmentStride
}

// Segments returns every complete segment in order
func (m *Model) Segments() []curve.Segment {
	count := m.SegmentCount()
	segs := make([]curve.Segment, 0, count)
	for k := 0; k < count; k++ {
		seg, _ := m.Segment(k)
		segs = append(segs, seg)
	}
	return segs
}

// Playable reports whether at least one segment exists
func (m *Model) Playable() bool {
	return len(m.points) >= constants.PointsPerSegment
}

// Len returns the number of points
func (m *Model) Len() int {
	return len(m.points)
}

// Point returns the point at index i
func (m *Model) Point(i int) Point {
	return m.points[i]
}

// Points returns a copy of the sequence
func (m *Model) Points() []Point {
	out := make([]Point, len(m.points))
	copy(out, m.points)
	return out
}

// Positions returns the ordered point positions
func (m *Model) Positions() []vmath.Vec3F {
	out := make([]vmath.Vec3F, len(m.points))
	for i, p := range m.points {
		out[i] = p.Position
	}
	return out
}

// IndexOfObject finds the point represented by a visual object
func (m *Model) IndexOfObject(id ObjectID) (int, bool) {
	if id == NoObject {
		return -1, false
	}
	for i, p := range m.points {
		if p.Object == id {
			return i, true
		}
	}
	return -1, false
}

// Move repositions point i and its visual
// Moving an anchor carries the control points parented to it by the same offset
func (m *Model) Move(i int, pos vmath.Vec3F) {
	if i < 0 || i >= len(m.points) {
		return
	}
	p := m.points[i]
	if p.Position == pos {
		return
	}

	if p.Role == RoleAnchor {
		delta := vmath.V3FSub(pos, p.Position)
		for _, c := range []int{i - 1, i + 1} {
			if c >= 0 && c < len(m.points) && m.points[c].Role == RoleControl && m.points[c].Owner == i {
				m.setPosition(c, vmath.V3FAdd(m.points[c].Position, delta))
			}
		}
	}
	m.setPosition(i, pos)
	m.revision++
}

func (m *Model) setPosition(i int, pos vmath.Vec3F) {
	p := &m.points[i]
	p.Position = pos
	if m.visuals != nil && p.Object != NoObject {
		m.visuals.Move(p.Object, pos)
	}
}

// Clear destroys all visuals and empties the sequence
func (m *Model) Clear() {
	if m.visuals != nil {
		for _, p := range m.points {
			if p.Object != NoObject {
				m.visuals.Destroy(p.Object)
			}
		}
	}
	m.points = m.points[:0]
	m.revision++
}

// Revision increments on every geometric change
func (m *Model) Revision() uint64 {
	return m.revision
}
