package terrain

import opensimplex "github.com/ojrac/opensimplex-go"

// SimplexField adapts seeded OpenSimplex noise to the Field interface.
type SimplexField struct {
	noise opensimplex.Noise
}

// NewSimplexField creates an OpenSimplex-backed field. The normalized
// variant already outputs in [0, 1].
func NewSimplexField(seed int64) *SimplexField {
	return &SimplexField{noise: opensimplex.NewNormalized(seed)}
}

func (s *SimplexField) Eval(x, y float64) float64 {
	return s.noise.Eval2(x, y)
}
