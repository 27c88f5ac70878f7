// Package world holds the tile grid at the center of planet generation:
// the Tile record, the Grid container and its query surface, terrain and
// river construction, and biome/resource classification.
package world

import "math"

// WaterLevel is the altitude below which a tile is water.
const WaterLevel = 0.35

// ResourceKind enumerates every resource a tile can carry. The set is
// closed: Tile stores quantities in a fixed-size array indexed by kind.
type ResourceKind uint8

const (
	ResourceMinerals ResourceKind = iota
	ResourceGold
	ResourceSilver
	ResourceIron
	ResourceCopper
	ResourceUranium
	ResourceWood
	ResourceWater
	ResourceFertility
	ResourceOil
	ResourceCoal
	ResourceGas
	ResourceGems

	numResourceKinds
)

// ResourceKinds lists every kind in declaration order.
func ResourceKinds() []ResourceKind {
	kinds := make([]ResourceKind, 0, numResourceKinds)
	for k := ResourceKind(0); k < numResourceKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func (k ResourceKind) String() string {
	switch k {
	case ResourceMinerals:
		return "minerals"
	case ResourceGold:
		return "gold"
	case ResourceSilver:
		return "silver"
	case ResourceIron:
		return "iron"
	case ResourceCopper:
		return "copper"
	case ResourceUranium:
		return "uranium"
	case ResourceWood:
		return "wood"
	case ResourceWater:
		return "water"
	case ResourceFertility:
		return "fertility"
	case ResourceOil:
		return "oil"
	case ResourceCoal:
		return "coal"
	case ResourceGas:
		return "gas"
	case ResourceGems:
		return "gems"
	default:
		return "unknown"
	}
}

// ResourceSet holds one quantity in [0, 100] per resource kind.
type ResourceSet [numResourceKinds]float64

// NoPlate marks a tile not yet assigned to a tectonic plate.
const NoPlate = -1

// Tile is one grid cell. Altitude, humidity and temperature are
// normalized to [0, 1]; hostility and fertility to [0, 10].
type Tile struct {
	X, Y int

	Altitude    float64
	Humidity    float64
	Temperature float64

	Biome     BiomeType
	Resources ResourceSet

	IsWater   bool
	IsRiver   bool
	RiverFlow float64

	PlateID         int
	IsPlateBoundary bool

	Hostility      float64
	FertilityIndex float64
}

// NewTile builds a tile from its generated maps and derives water status
// and the hostility/fertility indices.
func NewTile(x, y int, altitude, humidity, temperature float64) Tile {
	t := Tile{
		X:           x,
		Y:           y,
		Altitude:    altitude,
		Humidity:    humidity,
		Temperature: temperature,
		PlateID:     NoPlate,
	}
	t.UpdateWaterStatus(WaterLevel)
	t.CalculateHostility()
	t.CalculateFertility()
	return t
}

// UpdateWaterStatus derives the water flag from altitude. Water tiles
// carry maximum water and no wood; land tiles carry water in proportion
// to humidity.
func (t *Tile) UpdateWaterStatus(waterLevel float64) {
	t.IsWater = t.Altitude < waterLevel
	if t.IsWater {
		t.Resources[ResourceWater] = 100.0
		t.Resources[ResourceWood] = 0.0
	} else {
		t.Resources[ResourceWater] = t.Humidity * 50.0
	}
}

// CalculateHostility scores how inhospitable the tile is, 0 to 10.
// Water is near-uninhabitable; on land, temperature extremes, high
// altitude and aridity each add up to a few points.
func (t *Tile) CalculateHostility() float64 {
	hostility := 0.0
	if t.IsWater {
		hostility += 8.0
	} else {
		if t.Temperature < 0.2 {
			hostility += (0.2 - t.Temperature) * 20 // up to +4
		} else if t.Temperature > 0.8 {
			hostility += (t.Temperature - 0.8) * 20 // up to +4
		}
		if t.Altitude > 0.7 {
			hostility += (t.Altitude - 0.7) * 10 // up to +3
		}
		if t.Humidity < 0.3 {
			hostility += (0.3 - t.Humidity) * 10 // up to +3
		}
	}
	t.Hostility = math.Min(10.0, hostility)
	return t.Hostility
}

// CalculateFertility scores agricultural suitability, 0 to 10, from
// moderate humidity/temperature bands, low-to-mid altitude and rivers.
// The fertility resource mirrors the index on a 0-100 scale.
func (t *Tile) CalculateFertility() float64 {
	if t.IsWater {
		t.FertilityIndex = 0.0
		t.Resources[ResourceFertility] = 0.0
		return 0.0
	}

	fertility := 0.0
	switch {
	case t.Humidity >= 0.4 && t.Humidity <= 0.7:
		fertility += 3.0
	case t.Humidity >= 0.3 && t.Humidity <= 0.8:
		fertility += 2.0
	case t.Humidity > 0.2:
		fertility += 1.0
	}
	switch {
	case t.Temperature >= 0.4 && t.Temperature <= 0.7:
		fertility += 3.0
	case t.Temperature >= 0.3 && t.Temperature <= 0.8:
		fertility += 2.0
	case t.Temperature > 0.2:
		fertility += 1.0
	}
	switch {
	case t.Altitude >= 0.35 && t.Altitude <= 0.6:
		fertility += 3.0
	case t.Altitude >= 0.3 && t.Altitude <= 0.7:
		fertility += 1.5
	}
	if t.IsRiver {
		fertility += 1.0
	}

	t.FertilityIndex = math.Min(10.0, fertility)
	t.Resources[ResourceFertility] = t.FertilityIndex * 10
	return t.FertilityIndex
}
