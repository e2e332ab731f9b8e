package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/pathrunner/constants"
	"github.com/lixenwraith/pathrunner/modes"
	"github.com/lixenwraith/pathrunner/path"
	"github.com/lixenwraith/pathrunner/scene"
	"github.com/lixenwraith/pathrunner/vmath"
)

// plot draws r at world point p if it lands in the scene area
func plot(screen tcell.Screen, cam *scene.Camera, p vmath.Vec3F, r rune, style tcell.Style) {
	x, y := cam.WorldToScreen(p)
	if cam.InViewport(x, y) {
		screen.SetContent(x, y, r, nil, style)
	}
}

// GridRenderer fills the scene area and marks the ground grid
type GridRenderer struct {
	Hidden bool
}

func (r *GridRenderer) IsVisible() bool { return !r.Hidden }

func (r *GridRenderer) Render(ctx Context, screen tcell.Screen) {
	cam := ctx.Camera
	bg := baseStyle()
	dot := bg.Foreground(RgbGrid)
	step := float64(constants.GridSpacingUnit)

	for y := cam.Header; y < cam.Height-cam.Status; y++ {
		for x := 0; x < cam.Width; x++ {
			w := cam.ScreenToWorld(x, y)
			if onGrid(w.X, step, 0.5/cam.Scale) && onGrid(w.Z, step, 1/cam.Scale) {
				screen.SetContent(x, y, constants.GlyphGrid, nil, dot)
			} else {
				screen.SetContent(x, y, ' ', nil, bg)
			}
		}
	}
}

// onGrid reports whether v is within half a cell of a grid line
func onGrid(v, step, halfCell float64) bool {
	m := math.Mod(v, step)
	if m < 0 {
		m += step
	}
	return m < halfCell || step-m <= halfCell
}

// HandleRenderer draws the P0-P1 and P3-P2 tangent handles of every segment
type HandleRenderer struct{}

func (r *HandleRenderer) Render(ctx Context, screen tcell.Screen) {
	pts := ctx.Frame.Points
	style := baseStyle().Foreground(RgbHandle)
	for i := 0; i+constants.SegmentStride < len(pts); i += constants.SegmentStride {
		drawLine(screen, ctx.Camera, pts[i].Position, pts[i+1].Position, style)
		drawLine(screen, ctx.Camera, pts[i+3].Position, pts[i+2].Position, style)
	}
}

func drawLine(screen tcell.Screen, cam *scene.Camera, a, b vmath.Vec3F, style tcell.Style) {
	x1, y1 := cam.WorldToCell(a)
	x2, y2 := cam.WorldToCell(b)
	line := vmath.NewCellLine(x1, y1, x2, y2)
	for line.Next() {
		x, y := line.Pos()
		if cam.InViewport(x, y) {
			screen.SetContent(x, y, constants.GlyphHandle, nil, style)
		}
	}
}

// CurveRenderer draws the sample gizmos along each segment
type CurveRenderer struct{}

func (r *CurveRenderer) Render(ctx Context, screen tcell.Screen) {
	style := baseStyle().Foreground(ctx.Theme.SampleColor)
	for _, samples := range ctx.Frame.Samples {
		for _, p := range samples {
			plot(screen, ctx.Camera, p, constants.GlyphSample, style)
		}
	}
}

// PointRenderer draws anchors and control points, highlighting the active segment
type PointRenderer struct{}

func (r *PointRenderer) Render(ctx Context, screen tcell.Screen) {
	f := ctx.Frame
	activeLo, activeHi := -1, -1
	if f.HasActive {
		activeLo = f.ActiveSegment * constants.SegmentStride
		activeHi = activeLo + constants.SegmentStride
	}

	bg := baseStyle()
	for i, p := range f.Points {
		active := i >= activeLo && i <= activeHi
		glyph, color := constants.GlyphControl, RgbControl
		if p.Role == path.RoleAnchor {
			glyph, color = constants.GlyphAnchor, RgbAnchor
			if active {
				color = RgbActiveAnchor
			}
		} else if active {
			color = RgbActiveCtrl
		}
		plot(screen, ctx.Camera, p.Position, glyph, bg.Foreground(color))
	}
}

// RunnerRenderer draws the traversing marker with a heading arrow
type RunnerRenderer struct{}

func (r *RunnerRenderer) Render(ctx Context, screen tcell.Screen) {
	f := ctx.Frame
	if !playing(f) {
		return
	}
	cam := ctx.Camera
	style := baseStyle().Foreground(ctx.Theme.MarkerColor)

	center := f.Runner.Position
	radius := ctx.Theme.SphereRadius
	cx, cy := cam.WorldToScreen(center)

	// Cells whose centers lie inside the sphere footprint; always at least the center cell
	rx := int(math.Ceil(radius*cam.Scale)) + 1
	ry := int(math.Ceil(radius*cam.Scale/2)) + 1
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			if !cam.InViewport(x, y) {
				continue
			}
			if vmath.V3FDist(cam.ScreenToWorld(x, y), center) <= radius {
				screen.SetContent(x, y, constants.GlyphMarker, nil, style)
			}
		}
	}
	if cam.InViewport(cx, cy) {
		screen.SetContent(cx, cy, constants.GlyphMarker, nil, style)
	}

	// Heading arrow one cell beyond the footprint
	yaw := f.Runner.Yaw()
	tip := vmath.V3FAdd(center, vmath.Vec3F{
		X: math.Sin(yaw) * (radius + 1/cam.Scale),
		Z: math.Cos(yaw) * (radius + 2/cam.Scale),
	})
	plot(screen, cam, tip, arrowGlyph(yaw), style)
}

// playing reports whether the runner is live; a run left behind by a mode switch stays hidden
func playing(f modes.Snapshot) bool {
	return f.Running && f.Mode == modes.ModePlay
}

// arrowGlyph picks the nearest of eight compass arrows; yaw 0 faces +Z which is screen up
func arrowGlyph(yaw float64) rune {
	arrows := [8]rune{'↑', '↗', '→', '↘', '↓', '↙', '←', '↖'}
	octant := int(math.Round(yaw/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return arrows[octant]
}

// StatusRenderer draws the header and the status rows
type StatusRenderer struct{}

func (r *StatusRenderer) Render(ctx Context, screen tcell.Screen) {
	cam := ctx.Camera
	f := ctx.Frame

	header := tcell.StyleDefault.Background(RgbHeaderBg).Foreground(RgbStatusBar)
	for y := 0; y < cam.Header; y++ {
		fillRow(screen, y, cam.Width, header)
	}
	if cam.Header > 0 {
		drawText(screen, 1, 0, cam.Width, "pathrunner", header.Bold(true))
	}

	top := cam.Height - cam.Status
	status := tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
	for y := top; y < cam.Height; y++ {
		fillRow(screen, y, cam.Width, status)
	}
	if cam.Status == 0 {
		return
	}

	badge := " " + f.Mode.String() + " "
	badgeStyle := tcell.StyleDefault.Background(modeBadgeColor(f.Mode)).Foreground(tcell.ColorBlack).Bold(true)
	x := drawText(screen, 0, top, cam.Width, badge, badgeStyle)

	info := fmt.Sprintf(" easing:%s  segments:%d", f.Easing, f.SegmentCount)
	if playing(f) {
		info += fmt.Sprintf("  seg %d/%d  %3.0f%%", f.ActiveSegment+1, f.SegmentCount, math.Min(f.Progress, 1)*100)
	}
	if ctx.Muted {
		info += "  [muted]"
	}
	drawText(screen, x, top, cam.Width, info, status)

	if cam.Status > 1 {
		help := "s:spawn e:edit p:play r:reset 1-3:easing space:run arrows:pan c:center m:mute q:quit"
		drawText(screen, 0, top+1, cam.Width, help, status.Foreground(RgbMutedFg))
	}
}

func fillRow(screen tcell.Screen, y, width int, style tcell.Style) {
	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}

// drawText writes s from column x, clipped at width; returns the column after the last rune
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	for _, r := range s {
		if x >= width {
			break
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	return x
}
