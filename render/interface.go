// Package render draws the editor view onto a tcell screen.
//
// Renderers only read a frame Context; they never touch controller or traversal state.
package render

import "github.com/gdamore/tcell/v2"

// LayerRenderer draws one layer of the frame
type LayerRenderer interface {
	Render(ctx Context, screen tcell.Screen)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}
