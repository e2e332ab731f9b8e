package scene

import (
	"math"
	"sort"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/modes"
	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Object is a visual representing one path point
type Object struct {
	ID       path.ObjectID
	Role     path.Role
	Parent   path.ObjectID
	Position vmath.Vec3F
}

// Scene owns visual objects and answers raycasts against them
// It implements path.Visuals and modes.Raycaster
type Scene struct {
	camera  *Camera
	objects map[path.ObjectID]*Object
	nextID  path.ObjectID
}

var (
	_ path.Visuals    = (*Scene)(nil)
	_ modes.Raycaster = (*Scene)(nil)
)

// New creates an empty scene viewed through camera
func New(camera *Camera) *Scene {
	return &Scene{
		camera:  camera,
		objects: make(map[path.ObjectID]*Object),
	}
}

// Camera returns the scene camera
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Instantiate creates a visual and returns its handle
func (s *Scene) Instantiate(role path.Role, parent path.ObjectID, at vmath.Vec3F) path.ObjectID {
	s.nextID++
	s.objects[s.nextID] = &Object{ID: s.nextID, Role: role, Parent: parent, Position: at}
	return s.nextID
}

// Move repositions a visual; unknown handles are ignored
func (s *Scene) Move(id path.ObjectID, at vmath.Vec3F) {
	if obj, ok := s.objects[id]; ok {
		obj.Position = at
	}
}

// Destroy removes a visual and every visual parented under it
// Destroying an already removed handle is a no-op
func (s *Scene) Destroy(id path.ObjectID) {
	if _, ok := s.objects[id]; !ok {
		return
	}
	delete(s.objects, id)
	for childID, obj := range s.objects {
		if obj.Parent == id {
			s.Destroy(childID)
		}
	}
}

// Len returns the number of live visuals
func (s *Scene) Len() int {
	return len(s.objects)
}

// Object returns a copy of the visual with handle id
func (s *Scene) Object(id path.ObjectID) (Object, bool) {
	obj, ok := s.objects[id]
	if !ok {
		return Object{}, false
	}
	return *obj, true
}

// Objects returns all visuals ordered by handle
func (s *Scene) Objects() []Object {
	out := make([]Object, 0, len(s.objects))
	for _, obj := range s.objects {
		out = append(out, *obj)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// RayCastToGroundPlane intersects the pointer ray with the ground
// The nearest visual within the pick radius is reported as the hit object
func (s *Scene) RayCastToGroundPlane(x, y int) (modes.Hit, bool) {
	if !s.camera.InViewport(x, y) {
		return modes.Hit{}, false
	}
	hit := modes.Hit{Position: s.camera.ScreenToWorld(x, y)}

	cx, cy := float64(x)+0.5, float64(y)+0.5
	best := math.Inf(1)
	for _, obj := range s.Objects() {
		ox, oy := s.camera.WorldToCell(obj.Position)
		// Rows are twice as tall as columns are wide
		dx, dy := ox-cx, (oy-cy)*2
		d := math.Hypot(dx, dy)
		if d <= constants.PickRadiusCells && d < best {
			best = d
			hit.Object = obj.ID
		}
	}
	return hit, true
}

// IsPointerOverUI reports whether the pointer is on the header or status rows
func (s *Scene) IsPointerOverUI(x, y int) bool {
	return !s.camera.InViewport(x, y)
}
