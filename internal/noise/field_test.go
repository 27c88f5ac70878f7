package noise

import (
	"math"
	"testing"
)

func TestGenerateNormalizedStaysInRange(t *testing.T) {
	field := NewField(42)
	grid := field.GenerateNormalized(32, 24, DefaultParams())

	if len(grid) != 24 || len(grid[0]) != 32 {
		t.Fatalf("expected 32x24 grid, got %dx%d", len(grid[0]), len(grid))
	}
	for y := range grid {
		for x := range grid[y] {
			v := grid[y][x]
			if v < 0 || v > 1 {
				t.Fatalf("normalized value out of range at (%d,%d): %f", x, y, v)
			}
		}
	}
}

func TestGenerateIsDeterministicPerSeed(t *testing.T) {
	a := NewField(7).GenerateNormalized(16, 16, DefaultParams())
	b := NewField(7).GenerateNormalized(16, 16, DefaultParams())
	c := NewField(8).GenerateNormalized(16, 16, DefaultParams())

	diffSeedDiffers := false
	for y := range a {
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				t.Fatalf("same seed produced different values at (%d,%d)", x, y)
			}
			if a[y][x] != c[y][x] {
				diffSeedDiffers = true
			}
		}
	}
	if !diffSeedDiffers {
		t.Fatalf("different seeds produced identical grids")
	}
}

func TestSimplexBackendDecorrelatesFromPerlin(t *testing.T) {
	p := NewField(11).GenerateNormalized(16, 16, DefaultParams())
	s := NewSimplexField(11).GenerateNormalized(16, 16, DefaultParams())

	same := 0
	for y := range p {
		for x := range p[y] {
			if p[y][x] == s[y][x] {
				same++
			}
		}
	}
	if same > 16 {
		t.Fatalf("perlin and simplex fields share %d of 256 samples; expected independent layers", same)
	}
}

func TestGenerateClampsNonPositiveScale(t *testing.T) {
	params := DefaultParams()
	params.Scale = 0

	grid := NewField(3).GenerateNormalized(8, 8, params)
	for y := range grid {
		for x := range grid[y] {
			if math.IsNaN(grid[y][x]) || math.IsInf(grid[y][x], 0) {
				t.Fatalf("zero scale produced non-finite value at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateIslandFadesTowardEdges(t *testing.T) {
	params := DefaultParams()
	grid := NewField(99).GenerateIsland(33, 33, params, 1.5)

	corners := []float64{grid[0][0], grid[0][32], grid[32][0], grid[32][32]}
	for i, v := range corners {
		if v != 0 {
			t.Fatalf("corner %d not fully faded: %f", i, v)
		}
	}
}

func TestRedistributeAccentuatesPeaks(t *testing.T) {
	grid := [][]float64{{0.2, 0.5, 0.9}}
	Redistribute(grid, 1.8)

	want := []float64{math.Pow(0.2, 1.8), math.Pow(0.5, 1.8), math.Pow(0.9, 1.8)}
	for i, w := range want {
		if math.Abs(grid[0][i]-w) > 1e-12 {
			t.Fatalf("redistribute value %d: got %f want %f", i, grid[0][i], w)
		}
	}
}

func TestNormalizeDegenerateGridIsZero(t *testing.T) {
	grid := [][]float64{{0.4, 0.4}, {0.4, 0.4}}
	Normalize(grid)
	for y := range grid {
		for x := range grid[y] {
			if grid[y][x] != 0 {
				t.Fatalf("flat grid should normalize to zero, got %f", grid[y][x])
			}
		}
	}
}

func TestCombineWeightsAndClamps(t *testing.T) {
	a := [][]float64{{1.0, 0.0}}
	b := [][]float64{{1.0, 0.5}}

	out, err := Combine([][][]float64{a, b}, []float64{0.5, 0.5})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if out[0][0] != 1.0 || out[0][1] != 0.25 {
		t.Fatalf("unexpected combined values: %v", out[0])
	}

	if _, err := Combine([][][]float64{a}, []float64{0.5, 0.5}); err == nil {
		t.Fatalf("expected weight count mismatch error")
	}
	if _, err := Combine(nil, nil); err == nil {
		t.Fatalf("expected empty input error")
	}
}
