package terrain

import "github.com/aquilax/go-perlin"

// PerlinField adapts seeded Perlin noise to the Field interface. Unlike
// FractalNoise its shape depends on the seed, so terrain generated with it
// is only qualitatively reproducible across parameter changes.
type PerlinField struct {
	noise *perlin.Perlin
}

// NewPerlinField creates a Perlin-backed field with 3 octaves baked into
// the generator itself.
func NewPerlinField(seed int64) *PerlinField {
	return &PerlinField{noise: perlin.NewPerlin(2, 2, 3, seed)}
}

// Eval remaps Noise2D's roughly [-1, 1] output into [0, 1], clamping the
// rare excursions outside the nominal range.
func (p *PerlinField) Eval(x, y float64) float64 {
	n := 0.5 + 0.5*p.noise.Noise2D(x, y)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
