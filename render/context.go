package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathrunner/modes"
	"github.com/lixenwraith/pathrunner/scene"
)

// Theme holds configurable gizmo styling
type Theme struct {
	// SphereRadius is the runner marker radius in world units
	SphereRadius float64
	// MarkerColor colours the runner marker
	MarkerColor tcell.Color
	// SampleColor colours gizmo samples along each segment
	SampleColor tcell.Color
}

// DefaultTheme matches the stock gizmo colours
func DefaultTheme() Theme {
	return Theme{
		SphereRadius: 1,
		MarkerColor:  tcell.ColorRed,
		SampleColor:  tcell.ColorFuchsia,
	}
}

// Context is the read-only input of one frame
type Context struct {
	Frame  modes.Snapshot
	Camera *scene.Camera
	Theme  Theme

	// Muted mirrors the audio toggle for the status bar
	Muted bool
}
