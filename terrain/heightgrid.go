package terrain

// HeightGrid is a fixed-size grid of world elevations sampled from a noise
// field, generated once at startup. It is never mutated afterwards, which
// is what lets the sampler, the spawn scan, the mesh builder and the
// telemetry server all share it by reference without locking. A different
// terrain means building a new grid, not editing this one.
type HeightGrid struct {
	Width, Height int
	// Spacing is the world-space distance between adjacent cells. Every
	// world-to-cell conversion (sampling, spawn placement, mesh building)
	// reads it from here so queries and rendered geometry cannot drift
	// apart.
	Spacing float64

	elevations []float64
}

// Generate evaluates field at (x*scale, y*scale) for every cell and remaps
// the [0, 1] noise value to a world elevation centered on zero:
// (noise - 0.5) * elevationRange. Dimensions must be positive.
func Generate(field Field, width, height int, scale, elevationRange, spacing float64) *HeightGrid {
	g := &HeightGrid{
		Width:      width,
		Height:     height,
		Spacing:    spacing,
		elevations: make([]float64, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			n := field.Eval(float64(x)*scale, float64(y)*scale)
			g.elevations[y*width+x] = (n - 0.5) * elevationRange
		}
	}
	return g
}

// At returns the stored elevation at cell (x, y). Callers pass in-range
// indices; world-coordinate access goes through Sampler, which clamps.
func (g *HeightGrid) At(x, y int) float64 {
	return g.elevations[y*g.Width+x]
}
