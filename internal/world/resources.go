package world

import (
	"fmt"
	"math"

	"github.com/appengine-ltd/terraforge/internal/mathx"
)

// depositRange bounds the quantity of a successful mineral deposit roll.
func depositRange(kind ResourceKind) (float64, float64) {
	switch kind {
	case ResourceMinerals:
		return 10, 60
	case ResourceGold:
		return 5, 30
	case ResourceSilver:
		return 5, 35
	case ResourceIron:
		return 15, 70
	case ResourceCopper:
		return 15, 65
	case ResourceUranium:
		return 2, 20
	case ResourceCoal:
		return 20, 80
	case ResourceOil:
		return 10, 60
	case ResourceGas:
		return 10, 50
	case ResourceGems:
		return 2, 25
	default:
		return 0, 0
	}
}

var mineralKinds = []ResourceKind{
	ResourceMinerals,
	ResourceGold,
	ResourceSilver,
	ResourceIron,
	ResourceCopper,
	ResourceUranium,
	ResourceCoal,
	ResourceOil,
	ResourceGas,
	ResourceGems,
}

// ResourceGenerator places resource deposits according to each tile's
// biome catalog entry. Every tile draws from its own seeded substream, so
// tiles may be processed in any order without changing the output.
type ResourceGenerator struct {
	seed int64
}

// NewResourceGenerator derives the resource stream from the master seed.
func NewResourceGenerator(seed int64) *ResourceGenerator {
	return &ResourceGenerator{seed: seed}
}

// Generate rolls one Bernoulli trial per tile per mineral kind at the
// biome's configured chance, assigning a uniform quantity within the
// kind's deposit range on success. Wood and water come straight from the
// biome abundance coefficients: wood is never trial-based, and water only
// ever rises (rivers and oceans already carry 100).
func (rg *ResourceGenerator) Generate(grid *Grid) {
	grid.EachRef(func(t *Tile) {
		def := Definition(t.Biome)
		rng := mathx.SeededRNG(mathx.SeedFromLabel(rg.seed, fmt.Sprintf("resources:%d:%d", t.X, t.Y)))

		for _, kind := range mineralKinds {
			chance := def.DepositChance(kind)
			if chance <= 0 {
				continue
			}
			roll := rng.Float64()
			if roll >= chance {
				continue
			}
			lo, hi := depositRange(kind)
			t.Resources[kind] = lo + rng.Float64()*(hi-lo)
		}

		if !t.IsWater {
			t.Resources[ResourceWood] = def.WoodAbundance * 100
		}
		t.Resources[ResourceWater] = math.Max(t.Resources[ResourceWater], def.WaterAbundance*50)
	})
}
