package terrain

import "math"

// Mode selects between the two height-query flavors.
type Mode int

const (
	// Nearest returns the containing cell's stored elevation. Cheap and
	// allocation-free; the physics step uses it every tick.
	Nearest Mode = iota
	// Bilinear blends the four surrounding cells. Smoother, used where a
	// continuous height matters (look-at targets, orientation).
	Bilinear
)

// Sampler answers world-space height queries against an immutable
// HeightGrid. Coordinates outside the terrain extent clamp to the nearest
// edge cell rather than failing.
type Sampler struct {
	grid *HeightGrid
}

func NewSampler(grid *HeightGrid) Sampler {
	return Sampler{grid: grid}
}

// HeightAt is the nearest-cell query: floor the world coordinate down to a
// cell index, clamp, and return that cell's elevation.
func (s Sampler) HeightAt(worldX, worldZ float64) float64 {
	g := s.grid
	gx := clampIndex(int(math.Floor(worldX/g.Spacing)), g.Width-1)
	gz := clampIndex(int(math.Floor(worldZ/g.Spacing)), g.Height-1)
	return g.At(gx, gz)
}

// InterpolatedHeightAt is the bilinear query: blend the four cells around
// the fractional cell position, each clamped to bounds independently, first
// along x then along z.
func (s Sampler) InterpolatedHeightAt(worldX, worldZ float64) float64 {
	g := s.grid
	cx := worldX / g.Spacing
	cz := worldZ / g.Spacing

	x0 := int(math.Floor(cx))
	z0 := int(math.Floor(cz))
	tx := cx - float64(x0)
	tz := cz - float64(z0)

	x0c := clampIndex(x0, g.Width-1)
	x1c := clampIndex(x0+1, g.Width-1)
	z0c := clampIndex(z0, g.Height-1)
	z1c := clampIndex(z0+1, g.Height-1)

	h00 := g.At(x0c, z0c)
	h10 := g.At(x1c, z0c)
	h01 := g.At(x0c, z1c)
	h11 := g.At(x1c, z1c)

	hx0 := lerp(h00, h10, tx)
	hx1 := lerp(h01, h11, tx)
	return lerp(hx0, hx1, tz)
}

// Query dispatches to the mode's underlying lookup.
func (s Sampler) Query(worldX, worldZ float64, mode Mode) float64 {
	if mode == Bilinear {
		return s.InterpolatedHeightAt(worldX, worldZ)
	}
	return s.HeightAt(worldX, worldZ)
}

func clampIndex(i, max int) int {
	if i < 0 {
		return 0
	}
	if i > max {
		return max
	}
	return i
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
