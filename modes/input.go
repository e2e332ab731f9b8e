package modes

import (
	"time"

	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Hit is a pointer ray intersection with the ground plane
// Object is the point visual under the pointer, or path.NoObject for bare ground
type Hit struct {
	Position vmath.Vec3F
	Object   path.ObjectID
}

// Raycaster resolves screen coordinates against the scene
type Raycaster interface {
	RayCastToGroundPlane(x, y int) (Hit, bool)
	IsPointerOverUI(x, y int) bool
}

// FrameInput is everything the controller consumes in one tick
type FrameInput struct {
	PointerX, PointerY int

	PrimaryDown bool
	PrimaryHeld bool
	PrimaryUp   bool

	PlayKey bool

	DeltaTime time.Duration
}
