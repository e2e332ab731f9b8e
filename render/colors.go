package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathrunner/modes"
)

// RGB color definitions for the editor view
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background
	RgbGrid       = tcell.NewRGBColor(60, 62, 80) // Dim slate
	RgbHandle     = tcell.NewRGBColor(110, 110, 130)

	RgbAnchor       = tcell.NewRGBColor(255, 255, 255) // White
	RgbControl      = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbActiveAnchor = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbActiveCtrl   = tcell.NewRGBColor(255, 200, 90)

	RgbStatusBar = tcell.NewRGBColor(255, 255, 255)
	RgbHeaderBg  = tcell.NewRGBColor(40, 42, 58)
	RgbMutedFg   = tcell.NewRGBColor(180, 180, 180)

	// Mode badge backgrounds
	RgbModeSpawnBg = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbModeEditBg  = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModePlayBg  = tcell.NewRGBColor(255, 165, 0)   // Orange
)

func baseStyle() tcell.Style {
	return tcell.StyleDefault.Background(RgbBackground)
}

func modeBadgeColor(m modes.Mode) tcell.Color {
	switch m {
	case modes.ModeEdit:
		return RgbModeEditBg
	case modes.ModePlay:
		return RgbModePlayBg
	default:
		return RgbModeSpawnBg
	}
}

// ParseColor resolves a colour name or #rrggbb value, falling back on unknown input
func ParseColor(name string, fallback tcell.Color) tcell.Color {
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
