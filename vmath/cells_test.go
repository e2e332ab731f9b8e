package vmath

import (
	"testing"
)

func collectCells(x1, y1, x2, y2 float64) [][2]int {
	var cells [][2]int
	l := NewCellLine(x1, y1, x2, y2)
	for l.Next() {
		x, y := l.Pos()
		cells = append(cells, [2]int{x, y})
	}
	return cells
}

func TestCellLineHorizontal(t *testing.T) {
	cells := collectCells(0.5, 2.5, 4.5, 2.5)
	if len(cells) != 5 {
		t.Fatalf("Expected 5 cells, got %d: %v", len(cells), cells)
	}
	for i, c := range cells {
		if c[0] != i || c[1] != 2 {
			t.Errorf("Cell %d: expected (%d,2), got %v", i, i, c)
		}
	}
}

func TestCellLineSingleCell(t *testing.T) {
	cells := collectCells(3.2, 1.1, 3.8, 1.9)
	if len(cells) != 1 || cells[0] != [2]int{3, 1} {
		t.Errorf("Expected only (3,1), got %v", cells)
	}
}

func TestCellLineReachesTarget(t *testing.T) {
	tests := []struct {
		name           string
		x1, y1, x2, y2 float64
	}{
		{"Diagonal", 0.5, 0.5, 6.5, 3.5},
		{"Reverse", 9.5, 7.5, 1.5, 0.5},
		{"Vertical", 2.5, 8.5, 2.5, 0.5},
		{"Negative", -3.5, -1.5, 2.5, 1.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells := collectCells(tt.x1, tt.y1, tt.x2, tt.y2)
			last := cells[len(cells)-1]
			want := [2]int{int(floor(tt.x2)), int(floor(tt.y2))}
			if last != want {
				t.Errorf("Expected to end at %v, got %v", want, last)
			}
			// Supercover: consecutive cells are 4- or 8-connected
			for i := 1; i < len(cells); i++ {
				dx := cells[i][0] - cells[i-1][0]
				dy := cells[i][1] - cells[i-1][1]
				if dx < -1 || dx > 1 || dy < -1 || dy > 1 {
					t.Errorf("Gap between %v and %v", cells[i-1], cells[i])
				}
			}
		})
	}
}

func floor(f float64) float64 {
	i := float64(int(f))
	if f < i {
		return i - 1
	}
	return i
}
