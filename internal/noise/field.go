// Package noise generates 2-D coherent noise fields used as the basis for
// terrain variation. A Field is a pure function of its seed, backend and
// sampling parameters: the same inputs always produce the same grid.
package noise

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Backend selects the coherent-noise algorithm behind a Field.
type Backend int

const (
	// BackendPerlin is the default terrain backend.
	BackendPerlin Backend = iota
	// BackendSimplex is used for fields that must decorrelate from a
	// Perlin field sharing the same seed (humidity, temperature).
	BackendSimplex
)

// Params controls multi-octave sampling.
type Params struct {
	Scale       float64 // larger = smoother
	Octaves     int
	Persistence float64 // amplitude decay per octave
	Lacunarity  float64 // frequency growth per octave
	OffsetX     float64
	OffsetY     float64
}

// DefaultParams mirrors the generator defaults used across the map layers.
func DefaultParams() Params {
	return Params{
		Scale:       100.0,
		Octaves:     6,
		Persistence: 0.5,
		Lacunarity:  2.0,
	}
}

const minScale = 1e-4

// Field samples coherent noise deterministically for one seed.
type Field struct {
	seed    int64
	backend Backend
	perlin  *perlin.Perlin
	simplex opensimplex.Noise
}

// NewField returns a Perlin-backed field.
func NewField(seed int64) *Field {
	return &Field{
		seed:    seed,
		backend: BackendPerlin,
		// alpha=2, beta=2, n=3 give terrain-like noise.
		perlin: perlin.NewPerlin(2, 2, 3, seed),
	}
}

// NewSimplexField returns an OpenSimplex-backed field.
func NewSimplexField(seed int64) *Field {
	return &Field{
		seed:    seed,
		backend: BackendSimplex,
		simplex: opensimplex.New(seed),
	}
}

// Seed reports the seed the field was built with.
func (f *Field) Seed() int64 { return f.seed }

func (f *Field) sample(x, y float64) float64 {
	if f.backend == BackendSimplex {
		return f.simplex.Eval2(x, y)
	}
	return f.perlin.Noise2D(x, y)
}

// Generate produces a raw multi-octave noise grid, roughly in [-1, 1].
// Each octave's frequency is scaled by Lacunarity and its amplitude
// decayed by Persistence; the sum is renormalized by total amplitude.
func (f *Field) Generate(width, height int, p Params) [][]float64 {
	if p.Scale <= 0 {
		p.Scale = minScale
	}
	if p.Octaves < 1 {
		p.Octaves = 1
	}
	if p.Persistence <= 0 {
		p.Persistence = 0.5
	}
	if p.Lacunarity <= 0 {
		p.Lacunarity = 2.0
	}

	grid := newGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			nx := (float64(x) + p.OffsetX) / p.Scale
			ny := (float64(y) + p.OffsetY) / p.Scale

			total := 0.0
			amplitude := 1.0
			frequency := 1.0
			weight := 0.0
			for o := 0; o < p.Octaves; o++ {
				total += f.sample(nx*frequency, ny*frequency) * amplitude
				weight += amplitude
				amplitude *= p.Persistence
				frequency *= p.Lacunarity
			}
			grid[y][x] = total / weight
		}
	}
	return grid
}

// GenerateNormalized rescales a raw grid into [0, 1] using the observed
// min/max. A flat grid (min == max) degenerates to all zeros.
func (f *Field) GenerateNormalized(width, height int, p Params) [][]float64 {
	grid := f.Generate(width, height, p)
	Normalize(grid)
	return grid
}

// GenerateIsland multiplies a normalized grid by a radial falloff so the
// landmass fades toward the map edges.
func (f *Field) GenerateIsland(width, height int, p Params, islandFactor float64) [][]float64 {
	grid := f.GenerateNormalized(width, height, p)
	cx := float64(width) / 2
	cy := float64(height) / 2
	for y := range grid {
		for x := range grid[y] {
			dx := (float64(x) - cx) / (float64(width) / 2)
			dy := (float64(y) - cy) / (float64(height) / 2)
			dist := math.Sqrt(dx*dx + dy*dy)
			gradient := math.Max(0, 1-math.Pow(dist, islandFactor))
			grid[y][x] *= gradient
		}
	}
	return grid
}

// Normalize rescales grid values into [0, 1] in place using the observed
// min/max, zeroing the grid when the range is degenerate.
func Normalize(grid [][]float64) {
	minVal := math.Inf(1)
	maxVal := math.Inf(-1)
	for y := range grid {
		for x := range grid[y] {
			v := grid[y][x]
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
	}
	span := maxVal - minVal
	for y := range grid {
		for x := range grid[y] {
			if span > 0 {
				grid[y][x] = (grid[y][x] - minVal) / span
			} else {
				grid[y][x] = 0
			}
		}
	}
}

// Redistribute raises every value to exponent. Exponents above 1 accentuate
// peaks, below 1 accentuate flats.
func Redistribute(grid [][]float64, exponent float64) {
	for y := range grid {
		for x := range grid[y] {
			grid[y][x] = math.Pow(grid[y][x], exponent)
		}
	}
}

// Combine blends several equally sized grids with the given weights. The
// weights should sum to 1.0; the result is clamped to [0, 1] regardless.
func Combine(grids [][][]float64, weights []float64) ([][]float64, error) {
	if len(grids) == 0 {
		return nil, fmt.Errorf("combine: need at least one grid")
	}
	if len(grids) != len(weights) {
		return nil, fmt.Errorf("combine: %d grids but %d weights", len(grids), len(weights))
	}
	height := len(grids[0])
	width := 0
	if height > 0 {
		width = len(grids[0][0])
	}
	out := newGrid(width, height)
	for i, grid := range grids {
		if len(grid) != height || (height > 0 && len(grid[0]) != width) {
			return nil, fmt.Errorf("combine: grid %d size mismatch", i)
		}
		for y := range grid {
			for x := range grid[y] {
				out[y][x] += grid[y][x] * weights[i]
			}
		}
	}
	for y := range out {
		for x := range out[y] {
			out[y][x] = math.Min(1, math.Max(0, out[y][x]))
		}
	}
	return out, nil
}

func newGrid(width, height int) [][]float64 {
	grid := make([][]float64, height)
	for y := range grid {
		grid[y] = make([]float64, width)
	}
	return grid
}
