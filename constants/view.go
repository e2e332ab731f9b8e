package constants

import "time"

// Frame timing
const (
	// FrameUpdateInterval is the default tick interval of the editor loop
	FrameUpdateInterval = 16 * time.Millisecond

	// MaxFrameDelta caps a single tick's elapsed time after a stall
	MaxFrameDelta = 250 * time.Millisecond

	// EventQueueSize buffers terminal events between ticks
	EventQueueSize = 256
)

// View layout
const (
	// DefaultViewScale is terminal columns per world unit; rows use half
	DefaultViewScale = 2.0

	// HeaderRows is the title row at the top of the screen
	HeaderRows = 1

	// StatusRows is the status bar at the bottom of the screen
	StatusRows = 2

	// PickRadiusCells is how far from a point a click still selects it
	PickRadiusCells = 1.5

	// PanStepCells is how far one arrow press scrolls the view
	PanStepCells = 4
)

// Gizmo glyphs
const (
	GlyphAnchor     = '◆'
	GlyphControl    = '○'
	GlyphSample     = '·'
	GlyphHandle     = '∙'
	GlyphMarker     = '█'
	GlyphGrid       = '.'
	GridSpacingUnit = 5
)

// DefaultSphereRadius is the runner marker radius in world units
const DefaultSphereRadius = 1.0
