package vmath

import (
	"math"
)

// CellLine is a zero-allocation iterator over every terminal cell touched by a segment
// Supercover DDA in Q32.32 so corner-crossing segments never skip a cell
type CellLine struct {
	currX, currY     int
	targetX, targetY int
	stepX, stepY     int

	tMaxX, tMaxY     int64
	tDeltaX, tDeltaY int64

	started bool
	done    bool
}

// NewCellLine walks from cell-space point (x1, y1) to (x2, y2)
// Cell (i, j) covers [i, i+1) x [j, j+1)
func NewCellLine(x1, y1, x2, y2 float64) CellLine {
	fx1, fy1 := FromFloat(x1), FromFloat(y1)
	fx2, fy2 := FromFloat(x2), FromFloat(y2)

	l := CellLine{
		currX: ToInt(fx1), currY: ToInt(fy1),
		targetX: ToInt(fx2), targetY: ToInt(fy2),
		stepX: 1, stepY: 1,
	}

	dx := fx2 - fx1
	dy := fy2 - fy1
	if dx < 0 {
		l.stepX = -1
		dx = -dx
	}
	if dy < 0 {
		l.stepY = -1
		dy = -dy
	}

	if dx == 0 {
		l.tMaxX = math.MaxInt64
	} else {
		l.tDeltaX = Div(Scale, dx)
		if l.stepX > 0 {
			l.tMaxX = Mul(Scale-(fx1&Mask), l.tDeltaX)
		} else {
			l.tMaxX = Mul(fx1&Mask, l.tDeltaX)
		}
	}

	if dy == 0 {
		l.tMaxY = math.MaxInt64
	} else {
		l.tDeltaY = Div(Scale, dy)
		if l.stepY > 0 {
			l.tMaxY = Mul(Scale-(fy1&Mask), l.tDeltaY)
		} else {
			l.tMaxY = Mul(fy1&Mask, l.tDeltaY)
		}
	}

	return l
}

// Next advances to the next cell, false once the target cell has been yielded
func (l *CellLine) Next() bool {
	if l.done {
		return false
	}
	if !l.started {
		l.started = true
		return true
	}

	if l.currX == l.targetX && l.currY == l.targetY {
		l.done = true
		return false
	}

	switch {
	case l.tMaxX < l.tMaxY:
		if l.currX != l.targetX {
			l.stepAlongX()
		} else {
			l.stepAlongY()
		}
	case l.tMaxX > l.tMaxY:
		if l.currY != l.targetY {
			l.stepAlongY()
		} else {
			l.stepAlongX()
		}
	default:
		if l.currX != l.targetX {
			l.stepAlongX()
		}
		if l.currY != l.targetY {
			l.stepAlongY()
		}
	}

	return true
}

func (l *CellLine) stepAlongX() {
	l.currX += l.stepX
	l.tMaxX += l.tDeltaX
}

func (l *CellLine) stepAlongY() {
	l.currY += l.stepY
	l.tMaxY += l.tDeltaY
}

// Pos returns the current cell
func (l *CellLine) Pos() (int, int) {
	return l.currX, l.currY
}
