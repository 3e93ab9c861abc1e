// Package inputgen produces demonstration inputs for the rbfeval command.
// Generators own their random state; nothing here touches global state.
package inputgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/LynnColeArt/rbfnet"
)

// Generator produces an n×d point matrix and n weights.
type Generator interface {
	Generate(n, d int) (rbfnet.Points, []float64, error)
	Name() string
}

// Uniform draws every coordinate and weight from [0, 1) using its own
// seeded PCG stream. Two generators with the same seed produce the same
// inputs.
type Uniform struct {
	seed uint64
	rng  *rand.Rand
}

// NewUniform creates a uniform generator for seed
func NewUniform(seed uint64) *Uniform {
	return &Uniform{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Name implements Generator
func (u *Uniform) Name() string { return "uniform" }

// Generate implements Generator. Points are drawn first, row by row, then
// the weights.
func (u *Uniform) Generate(n, d int) (rbfnet.Points, []float64, error) {
	if err := checkShape(n, d); err != nil {
		return rbfnet.Points{}, nil, err
	}
	data := make([]float64, n*d)
	for i := range data {
		data[i] = u.rng.Float64()
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = u.rng.Float64()
	}
	pts, err := rbfnet.NewPoints(n, d, data)
	return pts, weights, err
}

// Constant sets every coordinate and weight to Value. With Value 1 every
// point coincides and each output equals n.
type Constant struct {
	Value float64
}

// Name implements Generator
func (c Constant) Name() string {
	if c.Value == 1 {
		return "ones"
	}
	return fmt.Sprintf("constant(%g)", c.Value)
}

// Generate implements Generator
func (c Constant) Generate(n, d int) (rbfnet.Points, []float64, error) {
	if err := checkShape(n, d); err != nil {
		return rbfnet.Points{}, nil, err
	}
	data := make([]float64, n*d)
	for i := range data {
		data[i] = c.Value
	}
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = c.Value
	}
	pts, err := rbfnet.NewPoints(n, d, data)
	return pts, weights, err
}

// ByName returns the generator registered under name
func ByName(name string, seed uint64) (Generator, error) {
	switch name {
	case "uniform":
		return NewUniform(seed), nil
	case "ones":
		return Constant{Value: 1}, nil
	default:
		return nil, fmt.Errorf("unknown input generator %q (want uniform or ones)", name)
	}
}

func checkShape(n, d int) error {
	if n < 0 {
		return fmt.Errorf("point count must be non-negative, got %d", n)
	}
	if d < 1 {
		return fmt.Errorf("dimension must be at least 1, got %d", d)
	}
	return nil
}
