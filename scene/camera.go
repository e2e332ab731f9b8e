// Package scene is the in-process collaborator that owns point visuals and resolves pointer rays.
//
// The view is a top-down orthographic camera over the Y=0 ground plane: screen columns map to
// world X and screen rows map to world -Z, so "up" on screen is +Z.
package scene

import (
	"math"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/vmath"
)

// Camera projects between terminal cells and the ground plane
type Camera struct {
	// Scale is columns per world unit; rows use Scale/2 to offset the cell aspect ratio
	Scale float64

	// Screen size and the rows reserved for UI
	Width, Height  int
	Header, Status int

	// Center is the world point under the middle of the viewport
	Center vmath.Vec3F
}

// NewCamera creates a camera centered on the world origin
func NewCamera(width, height int, scale float64) *Camera {
	if scale <= 0 {
		scale = constants.DefaultViewScale
	}
	return &Camera{
		Scale:  scale,
		Width:  width,
		Height: height,
		Header: constants.HeaderRows,
		Status: constants.StatusRows,
	}
}

// Resize updates the screen dimensions
func (c *Camera) Resize(width, height int) {
	c.Width = width
	c.Height = height
}

func (c *Camera) rowScale() float64 {
	return c.Scale / 2
}

// viewport center in fractional cell coordinates
func (c *Camera) origin() (float64, float64) {
	top := float64(c.Header)
	bottom := float64(c.Height - c.Status)
	return float64(c.Width) / 2, (top + bottom) / 2
}

// ScreenToWorld returns the ground point under the center of cell (x, y)
func (c *Camera) ScreenToWorld(x, y int) vmath.Vec3F {
	ox, oy := c.origin()
	return vmath.Vec3F{
		X: c.Center.X + (float64(x)+0.5-ox)/c.Scale,
		Y: 0,
		Z: c.Center.Z - (float64(y)+0.5-oy)/c.rowScale(),
	}
}

// WorldToCell returns fractional cell coordinates of p projected onto the ground
func (c *Camera) WorldToCell(p vmath.Vec3F) (float64, float64) {
	ox, oy := c.origin()
	return ox + (p.X-c.Center.X)*c.Scale, oy - (p.Z-c.Center.Z)*c.rowScale()
}

// WorldToScreen returns the cell containing p
func (c *Camera) WorldToScreen(p vmath.Vec3F) (int, int) {
	fx, fy := c.WorldToCell(p)
	return int(math.Floor(fx)), int(math.Floor(fy))
}

// InViewport reports whether cell (x, y) is in the scene area
func (c *Camera) InViewport(x, y int) bool {
	return x >= 0 && x < c.Width && y >= c.Header && y < c.Height-c.Status
}
