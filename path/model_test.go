package path

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lixenwraith/pathrunner/vmath"
)

// recordingVisuals is an in-memory Visuals that logs every call
type recordingVisuals struct {
	next      ObjectID
	parents   map[ObjectID]ObjectID
	roles     map[ObjectID]Role
	positions map[ObjectID]vmath.Vec3F
	destroyed []ObjectID
}

func newRecordingVisuals() *recordingVisuals {
	return &recordingVisuals{
		parents:   make(map[ObjectID]ObjectID),
		roles:     make(map[ObjectID]Role),
		positions: make(map[ObjectID]vmath.Vec3F),
	}
}

func (v *recordingVisuals) Instantiate(role Role, parent ObjectID, at vmath.Vec3F) ObjectID {
	v.next++
	v.parents[v.next] = parent
	v.roles[v.next] = role
	v.positions[v.next] = at
	return v.next
}

func (v *recordingVisuals) Move(id ObjectID, at vmath.Vec3F) {
	v.positions[id] = at
}

func (v *recordingVisuals) Destroy(id ObjectID) {
	v.destroyed = append(v.destroyed, id)
	delete(v.positions, id)
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func TestAddAnchorSynthesizesControls(t *testing.T) {
	m := NewModel(nil)
	m.AddAnchor(vmath.V3F(0, 0, 0))
	m.AddAnchor(vmath.V3F(4, 0, 0))
	m.AddAnchor(vmath.V3F(8, 0, 0))

	if m.Len() != 7 {
		t.Fatalf("Expected 7 points, got %d", m.Len())
	}

	want := []vmath.Vec3F{
		vmath.V3F(0, 0, 0),
		vmath.V3F(1.2, 0, 0),
		vmath.V3F(2.8, 0, 0),
		vmath.V3F(4, 0, 0),
		vmath.V3F(5.2, 0, 0),
		vmath.V3F(6.8, 0, 0),
		vmath.V3F(8, 0, 0),
	}
	if diff := cmp.Diff(want, m.Positions(), approx); diff != "" {
		t.Errorf("positions mismatch (-want +got):\n%s", diff)
	}

	roles := []Role{RoleAnchor, RoleControl, RoleControl, RoleAnchor, RoleControl, RoleControl, RoleAnchor}
	owners := []int{0, 0, 3, 3, 3, 6, 6}
	for i, p := range m.Points() {
		if p.Role != roles[i] {
			t.Errorf("Point %d: expected %s, got %s", i, roles[i], p.Role)
		}
		if p.Owner != owners[i] {
			t.Errorf("Point %d: expected owner %d, got %d", i, owners[i], p.Owner)
		}
	}
}

func TestLengthInvariant(t *testing.T) {
	m := NewModel(nil)
	if m.Len() != 0 || m.Playable() || m.SegmentCount() != 0 {
		t.Fatal("New model must be empty")
	}
	for i := 0; i < 6; i++ {
		m.AddAnchor(vmath.V3F(float64(i), 0, float64(i*i)))
		if m.Len()%3 != 1 {
			t.Fatalf("After %d anchors: length %d not 1 mod 3", i+1, m.Len())
		}
		if m.SegmentCount() != i {
			t.Errorf("After %d anchors: expected %d segments, got %d", i+1, i, m.SegmentCount())
		}
	}
	if !m.Playable() {
		t.Error("Expected playable path")
	}
}

func TestSegmentAt(t *testing.T) {
	m := NewModel(nil)
	for _, x := range []float64{0, 4, 8} {
		m.AddAnchor(vmath.V3F(x, 0, 0))
	}

	seg, err := m.SegmentAt(6)
	if err != nil {
		t.Fatalf("SegmentAt(6) failed: %v", err)
	}
	if seg.P0 != vmath.V3F(4, 0, 0) || seg.P3 != vmath.V3F(8, 0, 0) {
		t.Errorf("Expected second segment 4→8, got %+v", seg)
	}

	first, err := m.Segment(0)
	if err != nil {
		t.Fatalf("Segment(0) failed: %v", err)
	}
	if first.P3 != seg.P0 {
		t.Error("Consecutive segments must share the boundary anchor")
	}

	if segs := m.Segments(); len(segs) != 2 || segs[1] != seg {
		t.Errorf("Segments mismatch: %+v", segs)
	}
}

func TestSegmentAtInvalid(t *testing.T) {
	m := NewModel(nil)
	m.AddAnchor(vmath.V3F(0, 0, 0))

	if _, err := m.SegmentAt(3); !errors.Is(err, ErrInvalidSegment) {
		t.Errorf("Expected ErrInvalidSegment with 1 point, got %v", err)
	}

	m.AddAnchor(vmath.V3F(1, 0, 0))
	m.AddAnchor(vmath.V3F(2, 0, 0))

	for _, idx := range []int{-3, 0, 1, 4, 5, 9, 12} {
		if _, err := m.SegmentAt(idx); !errors.Is(err, ErrInvalidSegment) {
			t.Errorf("SegmentAt(%d): expected ErrInvalidSegment, got %v", idx, err)
		}
	}
}

func TestAnchorIndex(t *testing.T) {
	for k, want := range []int{3, 6, 9, 12} {
		if got := AnchorIndex(k); got != want {
			t.Errorf("AnchorIndex(%d): expected %d, got %d", k, want, got)
		}
	}
}

func TestVisualsLifecycle(t *testing.T) {
	v := newRecordingVisuals()
	m := NewModel(v)
	m.AddAnchor(vmath.V3F(0, 0, 0))
	m.AddAnchor(vmath.V3F(10, 0, 0))

	pts := m.Points()
	for i, p := range pts {
		if p.Object == NoObject {
			t.Fatalf("Point %d has no visual", i)
		}
		if v.roles[p.Object] != p.Role {
			t.Errorf("Point %d: visual role %s, want %s", i, v.roles[p.Object], p.Role)
		}
	}

	// Controls are parented to their nearer anchor, anchors to the root
	if v.parents[pts[0].Object] != NoObject || v.parents[pts[3].Object] != NoObject {
		t.Error("Anchors must be parented to the root")
	}
	if v.parents[pts[1].Object] != pts[0].Object {
		t.Error("First control must be parented to the previous anchor")
	}
	if v.parents[pts[2].Object] != pts[3].Object {
		t.Error("Second control must be parented to the new anchor")
	}

	idx, ok := m.IndexOfObject(pts[2].Object)
	if !ok || idx != 2 {
		t.Errorf("IndexOfObject: expected 2, got %d %v", idx, ok)
	}
	if _, ok := m.IndexOfObject(NoObject); ok {
		t.Error("NoObject must not resolve to a point")
	}

	m.Clear()
	if m.Len() != 0 {
		t.Errorf("Expected empty path after Clear, got %d", m.Len())
	}
	if len(v.destroyed) != 4 {
		t.Errorf("Expected 4 destroyed visuals, got %d", len(v.destroyed))
	}
	if len(v.positions) != 0 {
		t.Errorf("Visuals left behind: %v", v.positions)
	}
}

func TestMoveAndRevision(t *testing.T) {
	v := newRecordingVisuals()
	m := NewModel(v)
	m.AddAnchor(vmath.V3F(0, 0, 0))
	m.AddAnchor(vmath.V3F(3, 0, 0))

	rev := m.Revision()
	target := vmath.V3F(1, 0, 5)
	m.Move(1, target)

	if m.Point(1).Position != target {
		t.Errorf("Expected moved position %v, got %v", target, m.Point(1).Position)
	}
	if v.positions[m.Point(1).Object] != target {
		t.Error("Visual not moved with point")
	}
	if m.Revision() == rev {
		t.Error("Move must bump the revision")
	}

	// A moved anchor carries its own control point, not the neighbour's
	far := m.Point(2).Position
	m.Move(0, vmath.V3F(-2, 0, 0))
	if m.Point(1).Position != vmath.V3F(-1, 0, 5) {
		t.Errorf("Expected owned control to follow the anchor, got %v", m.Point(1).Position)
	}
	if v.positions[m.Point(1).Object] != m.Point(1).Position {
		t.Error("Owned control visual not moved")
	}
	if m.Point(2).Position != far {
		t.Errorf("Control owned by the other anchor must stay, got %v", m.Point(2).Position)
	}

	rev = m.Revision()
	m.Move(1, m.Point(1).Position)
	m.Move(99, target)
	if m.Revision() != rev {
		t.Error("No-op moves must not bump the revision")
	}
}
