package terrain

import (
	"math"
	"testing"
)

func TestGenerateDimensionsAndRange(t *testing.T) {
	tests := []struct {
		name           string
		width, height  int
		scale          float64
		elevationRange float64
	}{
		{"square", 64, 64, 0.15, 50},
		{"wide", 128, 32, 0.3, 50},
		{"tall", 16, 96, 0.05, 20},
	}

	field := NewFractalNoise(DefaultOctaves, DefaultPersistence)
	for _, tt := range tests {
		grid := Generate(field, tt.width, tt.height, tt.scale, tt.elevationRange, 10)

		if grid.Width != tt.width || grid.Height != tt.height {
			t.Errorf("%s: dimensions %dx%d, want %dx%d",
				tt.name, grid.Width, grid.Height, tt.width, tt.height)
		}

		half := tt.elevationRange / 2
		for y := 0; y < grid.Height; y++ {
			for x := 0; x < grid.Width; x++ {
				e := grid.At(x, y)
				if e < -half || e > half {
					t.Fatalf("%s: elevation at (%d,%d) = %v, outside [%v, %v]",
						tt.name, x, y, e, -half, half)
				}
			}
		}
	}
}

func TestGenerateRemapsNoise(t *testing.T) {
	field := NewFractalNoise(DefaultOctaves, DefaultPersistence)
	scale, elevationRange := 0.15, 50.0
	grid := Generate(field, 32, 32, scale, elevationRange, 10)

	cells := [][2]int{{0, 0}, {7, 3}, {31, 31}, {15, 20}}
	for _, c := range cells {
		x, y := c[0], c[1]
		want := (field.Eval(float64(x)*scale, float64(y)*scale) - 0.5) * elevationRange
		if got := grid.At(x, y); math.Abs(got-want) > 1e-12 {
			t.Errorf("At(%d,%d) = %v, want %v", x, y, got, want)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	field := NewFractalNoise(DefaultOctaves, DefaultPersistence)
	a := Generate(field, 24, 24, 0.15, 50, 10)
	b := Generate(field, 24, 24, 0.15, 50, 10)

	for y := 0; y < 24; y++ {
		for x := 0; x < 24; x++ {
			if a.At(x, y) != b.At(x, y) {
				t.Fatalf("grids diverge at (%d,%d): %v != %v", x, y, a.At(x, y), b.At(x, y))
			}
		}
	}
}
