package terrain

import "math"

// Field is a deterministic scalar noise field over continuous 2D
// coordinates. Eval returns a value in [0, 1].
type Field interface {
	Eval(x, y float64) float64
}

// Default fractal parameters. Low base frequency gives big smooth hills;
// the high base amplitude only matters relative to persistence since the
// result is renormalized.
const (
	DefaultOctaves       = 6
	DefaultPersistence   = 0.7
	DefaultBaseFrequency = 0.5
	DefaultBaseAmplitude = 64.0
)

// FractalNoise sums octaves of a smooth periodic sin*cos basis. It is not
// gradient noise: no hashing, no randomness, just a deterministic field
// whose shape is stable across platforms and runs.
type FractalNoise struct {
	Octaves       int
	Persistence   float64
	BaseFrequency float64
	BaseAmplitude float64
}

// NewFractalNoise returns a fractal field with the default base frequency
// and amplitude.
func NewFractalNoise(octaves int, persistence float64) FractalNoise {
	return FractalNoise{
		Octaves:       octaves,
		Persistence:   persistence,
		BaseFrequency: DefaultBaseFrequency,
		BaseAmplitude: DefaultBaseAmplitude,
	}
}

// Eval returns the normalized octave sum at (x, y). Each octave doubles the
// frequency and decays the amplitude by Persistence; dividing by the total
// amplitude keeps the result in [0, 1] for any octave count.
func (f FractalNoise) Eval(x, y float64) float64 {
	total := 0.0
	maxValue := 0.0
	frequency := f.BaseFrequency
	amplitude := f.BaseAmplitude

	for i := 0; i < f.Octaves; i++ {
		total += amplitude * (0.5*math.Sin(x*frequency)*math.Cos(y*frequency) + 0.5)
		maxValue += amplitude
		amplitude *= f.Persistence
		frequency *= 2.0
	}
	return total / maxValue
}
