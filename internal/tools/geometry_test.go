package tools

import (
	"image"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectangleFrom_Example(t *testing.T) {
	r := RectangleFrom(image.Pt(5, 5), image.Pt(2, 8))
	assert.Equal(t, Rect{Left: 2, Top: 5, Width: 3, Height: 3}, r)
	assert.Equal(t, image.Rect(2, 5, 5, 8), r.Image())
}

func TestRectangleFrom_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	for i := 0; i < 1000; i++ {
		a := image.Pt(rng.IntN(2000)-1000, rng.IntN(2000)-1000)
		b := image.Pt(rng.IntN(2000)-1000, rng.IntN(2000)-1000)

		r := RectangleFrom(a, b)
		assert.Equal(t, r, RectangleFrom(b, a))
		assert.GreaterOrEqual(t, r.Width, 0)
		assert.GreaterOrEqual(t, r.Height, 0)
	}
}

func TestRandomPointInRadius_StaysInDisk(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for _, r := range []float64{0.5, 1, 12.5, 50} {
		for i := 0; i < 5000; i++ {
			x, y := RandomPointInRadius(rng, r)
			assert.LessOrEqual(t, x*x+y*y, r*r+1e-9)
		}
	}
}

type countingRand struct {
	rng   *rand.Rand
	draws int
}

func (c *countingRand) Float64() float64 {
	c.draws++
	return c.rng.Float64()
}

func TestRandomPointInRadius_AcceptanceRate(t *testing.T) {
	src := &countingRand{rng: rand.New(rand.NewPCG(11, 13))}
	const samples = 200000
	for i := 0; i < samples; i++ {
		RandomPointInRadius(src, 3)
	}

	candidates := float64(src.draws) / 2
	assert.InDelta(t, math.Pi/4, samples/candidates, 0.01)
}

func TestRandomPointInRadius_RejectsOutsideCandidates(t *testing.T) {
	// (1, 1) maps to the square's corner and must be rejected; (0.75, 0.5)
	// maps to (0.5, 0).
	seq := &sequence{values: []float64{1 - 1e-12, 1 - 1e-12, 0.75, 0.5}}
	x, y := RandomPointInRadius(seq, 10)

	assert.InDelta(t, 5, x, 1e-9)
	assert.InDelta(t, 0, y, 1e-9)
	assert.Equal(t, 4, seq.i)
}

type sequence struct {
	values []float64
	i      int
}

func (s *sequence) Float64() float64 {
	v := s.values[s.i]
	s.i++
	return v
}
