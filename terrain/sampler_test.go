package terrain

import (
	"math"
	"testing"
)

const spacing = 10.0

func testGrid() *HeightGrid {
	// Small grid with enough height variation for sampling assertions.
	field := NewFractalNoise(4, 0.5)
	return Generate(field, 8, 8, 0.6, 50, spacing)
}

func TestHeightAtCellCenter(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	cells := [][2]int{{0, 0}, {3, 2}, {7, 7}, {1, 6}}
	for _, c := range cells {
		x, y := c[0], c[1]
		got := s.HeightAt(float64(x)*spacing, float64(y)*spacing)
		if got != grid.At(x, y) {
			t.Errorf("HeightAt(%d*spacing, %d*spacing) = %v, want stored %v", x, y, got, grid.At(x, y))
		}
	}
}

func TestHeightAtFloorsWithinCell(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	// Anywhere inside cell (2,4) maps to that cell's sample.
	for _, frac := range []float64{0.01, 0.5, 0.99} {
		got := s.HeightAt((2+frac)*spacing, (4+frac)*spacing)
		if got != grid.At(2, 4) {
			t.Errorf("HeightAt inside cell (2,4) at frac %v = %v, want %v", frac, got, grid.At(2, 4))
		}
	}
}

func TestInterpolatedHeightAtCorners(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	cells := [][2]int{{0, 0}, {2, 3}, {6, 6}}
	for _, c := range cells {
		x, y := c[0], c[1]
		got := s.InterpolatedHeightAt(float64(x)*spacing, float64(y)*spacing)
		if math.Abs(got-grid.At(x, y)) > 1e-12 {
			t.Errorf("bilinear at corner (%d,%d) = %v, want %v", x, y, got, grid.At(x, y))
		}
	}
}

func TestInterpolatedHeightAtMidpoint(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	// Midpoint of two horizontally adjacent cells is their exact average.
	a, b := grid.At(2, 3), grid.At(3, 3)
	got := s.InterpolatedHeightAt(2.5*spacing, 3*spacing)
	if want := (a + b) / 2; math.Abs(got-want) > 1e-12 {
		t.Errorf("bilinear at horizontal midpoint = %v, want (a+b)/2 = %v", got, want)
	}

	// And vertically.
	a, b = grid.At(4, 1), grid.At(4, 2)
	got = s.InterpolatedHeightAt(4*spacing, 1.5*spacing)
	if want := (a + b) / 2; math.Abs(got-want) > 1e-12 {
		t.Errorf("bilinear at vertical midpoint = %v, want (a+b)/2 = %v", got, want)
	}
}

func TestInterpolatedHeightAtConvergesToCorner(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	// The blend is linear in the fractional offset, so the deviation from
	// the corner value is bounded by eps times the neighbor differences
	// (at most the full elevation range per axis).
	corner := grid.At(3, 3)
	for _, eps := range []float64{1e-3, 1e-6, 1e-9} {
		got := s.InterpolatedHeightAt((3+eps)*spacing, (3+eps)*spacing)
		if bound := eps * 250; math.Abs(got-corner) > bound {
			t.Errorf("bilinear at offset %v = %v, corner %v, deviation beyond %v",
				eps, got, corner, bound)
		}
	}
}

func TestQueriesClampToEdges(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	tests := []struct {
		name   string
		wx, wz float64
		cx, cy int
	}{
		{"both negative", -35, -3, 0, 0},
		{"x beyond extent", 1e6, 3 * spacing, 7, 3},
		{"z beyond extent", 2 * spacing, 900, 2, 7},
		{"far corner", 1e6, 1e6, 7, 7},
	}

	for _, tt := range tests {
		want := grid.At(tt.cx, tt.cy)
		if got := s.HeightAt(tt.wx, tt.wz); got != want {
			t.Errorf("%s: HeightAt(%v, %v) = %v, want edge cell %v", tt.name, tt.wx, tt.wz, got, want)
		}
		if got := s.InterpolatedHeightAt(tt.wx, tt.wz); math.Abs(got-want) > 1e-12 {
			t.Errorf("%s: InterpolatedHeightAt(%v, %v) = %v, want edge cell %v", tt.name, tt.wx, tt.wz, got, want)
		}
	}
}

func TestQueryDispatchesByMode(t *testing.T) {
	grid := testGrid()
	s := NewSampler(grid)

	wx, wz := 2.3*spacing, 5.7*spacing
	if got, want := s.Query(wx, wz, Nearest), s.HeightAt(wx, wz); got != want {
		t.Errorf("Query Nearest = %v, want %v", got, want)
	}
	if got, want := s.Query(wx, wz, Bilinear), s.InterpolatedHeightAt(wx, wz); got != want {
		t.Errorf("Query Bilinear = %v, want %v", got, want)
	}
}
