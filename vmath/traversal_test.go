package vmath

import "testing"

type pt struct{ x, y int }

func collect(x1, y1, x2, y2 int) []pt {
	var out []pt
	Line(x1, y1, x2, y2, func(x, y int) bool {
		out = append(out, pt{x, y})
		return true
	})
	return out
}

func TestLineStraight(t *testing.T) {
	tests := []struct {
		name     string
		x1, y1   int
		x2, y2   int
		expected []pt
	}{
		{"Single point", 3, 3, 3, 3, []pt{{3, 3}}},
		{"Horizontal", 0, 0, 3, 0, []pt{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{"Horizontal reversed", 3, 0, 0, 0, []pt{{3, 0}, {2, 0}, {1, 0}, {0, 0}}},
		{"Vertical", 1, 0, 1, 3, []pt{{1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{"Diagonal", 0, 0, 2, 2, []pt{{0, 0}, {1, 1}, {2, 2}}},
		{"Negative quadrant", 0, 0, -2, -2, []pt{{0, 0}, {-1, -1}, {-2, -2}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if len(got) != len(tt.expected) {
				t.Fatalf("Expected %v, got %v", tt.expected, got)
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Fatalf("Expected %v, got %v", tt.expected, got)
				}
			}
		})
	}
}

func TestLineContiguous(t *testing.T) {
	tests := []struct {
		name   string
		x1, y1 int
		x2, y2 int
	}{
		{"Shallow", 0, 0, 7, 2},
		{"Steep", 0, 0, 2, 9},
		{"Backwards shallow", 5, 3, -4, 1},
		{"Long diagonal-ish", -3, 8, 11, -2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(tt.x1, tt.y1, tt.x2, tt.y2)
			if got[0] != (pt{tt.x1, tt.y1}) {
				t.Errorf("Expected start %d,%d first, got %v", tt.x1, tt.y1, got[0])
			}
			if got[len(got)-1] != (pt{tt.x2, tt.y2}) {
				t.Errorf("Expected end %d,%d last, got %v", tt.x2, tt.y2, got[len(got)-1])
			}

			seen := make(map[pt]bool)
			for i, p := range got {
				if seen[p] {
					t.Errorf("Cell %v visited twice", p)
				}
				seen[p] = true

				if i == 0 {
					continue
				}
				dx := abs(p.x - got[i-1].x)
				dy := abs(p.y - got[i-1].y)
				if dx > 1 || dy > 1 || dx+dy == 0 {
					t.Errorf("Non-contiguous step %v -> %v", got[i-1], p)
				}
			}
		})
	}
}

func TestLineEarlyStop(t *testing.T) {
	count := 0
	Line(0, 0, 9, 0, func(x, y int) bool {
		count++
		return count < 3
	})
	if count != 3 {
		t.Errorf("Expected traversal to stop after 3 visits, got %d", count)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
