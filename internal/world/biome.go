package world

import (
	"image/color"
	"strings"

	"github.com/agnivade/levenshtein"
)

// BiomeType is the closed set of biome labels a tile can carry.
type BiomeType uint8

const (
	BiomeNone BiomeType = iota

	// Aquatic
	BiomeOceanDeep
	BiomeOceanShallow
	BiomeCoastal

	// Glacial
	BiomeGlacier
	BiomeTundra
	BiomeTaiga

	// Temperate
	BiomeGrassland
	BiomeTemperateForest
	BiomeTemperateRainforest

	// Hot and dry
	BiomeDesertHot
	BiomeDesertCold
	BiomeSavanna

	// Tropical
	BiomeTropicalRainforest
	BiomeTropicalSeasonalForest
	BiomeJungle

	// Mountain
	BiomeMountainLow
	BiomeMountainHigh
	BiomeMountainPeak

	// Special
	BiomeSwamp
	BiomeMangrove
	BiomeShrubland
	BiomeSteppe

	numBiomes
)

// BiomeTypes lists every concrete biome (excluding BiomeNone).
func BiomeTypes() []BiomeType {
	types := make([]BiomeType, 0, numBiomes-1)
	for b := BiomeNone + 1; b < numBiomes; b++ {
		types = append(types, b)
	}
	return types
}

func (b BiomeType) String() string {
	switch b {
	case BiomeOceanDeep:
		return "ocean_deep"
	case BiomeOceanShallow:
		return "ocean_shallow"
	case BiomeCoastal:
		return "coastal"
	case BiomeGlacier:
		return "glacier"
	case BiomeTundra:
		return "tundra"
	case BiomeTaiga:
		return "taiga"
	case BiomeGrassland:
		return "grassland"
	case BiomeTemperateForest:
		return "temperate_forest"
	case BiomeTemperateRainforest:
		return "temperate_rainforest"
	case BiomeDesertHot:
		return "desert_hot"
	case BiomeDesertCold:
		return "desert_cold"
	case BiomeSavanna:
		return "savanna"
	case BiomeTropicalRainforest:
		return "tropical_rainforest"
	case BiomeTropicalSeasonalForest:
		return "tropical_seasonal_forest"
	case BiomeJungle:
		return "jungle"
	case BiomeMountainLow:
		return "mountain_low"
	case BiomeMountainHigh:
		return "mountain_high"
	case BiomeMountainPeak:
		return "mountain_peak"
	case BiomeSwamp:
		return "swamp"
	case BiomeMangrove:
		return "mangrove"
	case BiomeShrubland:
		return "shrubland"
	case BiomeSteppe:
		return "steppe"
	default:
		return "none"
	}
}

// Range is an informational (min, max) envelope for a biome condition.
// The classifier uses the explicit rule cascade, not range membership.
type Range struct {
	Min, Max float64
}

// BiomeDefinition is the static catalog entry for one biome. The catalog
// is immutable; it is loaded once and never mutated.
type BiomeDefinition struct {
	Name        string
	Description string
	Color       color.RGBA

	AltitudeRange    Range
	TemperatureRange Range
	HumidityRange    Range

	// Direct abundance coefficients (0-1).
	WoodAbundance  float64
	WaterAbundance float64
	Fertility      float64

	// Per-deposit Bernoulli chances (0-1).
	MineralsChance float64
	GoldChance     float64
	SilverChance   float64
	IronChance     float64
	CopperChance   float64
	UraniumChance  float64
	CoalChance     float64
	OilChance      float64
	GasChance      float64
	GemsChance     float64

	// Baseline weights (0-1).
	Hostility    float64
	Biodiversity float64
}

// DepositChance reports the Bernoulli chance for a mineral kind. Wood,
// water and fertility are abundance-driven, never trial-based.
func (d BiomeDefinition) DepositChance(kind ResourceKind) float64 {
	switch kind {
	case ResourceMinerals:
		return d.MineralsChance
	case ResourceGold:
		return d.GoldChance
	case ResourceSilver:
		return d.SilverChance
	case ResourceIron:
		return d.IronChance
	case ResourceCopper:
		return d.CopperChance
	case ResourceUranium:
		return d.UraniumChance
	case ResourceCoal:
		return d.CoalChance
	case ResourceOil:
		return d.OilChance
	case ResourceGas:
		return d.GasChance
	case ResourceGems:
		return d.GemsChance
	case ResourceWood, ResourceWater, ResourceFertility:
		return 0
	default:
		return 0
	}
}

var biomeCatalog = map[BiomeType]BiomeDefinition{
	BiomeOceanDeep: {
		Name: "Deep Ocean", Description: "Deep water far from shore",
		Color:         color.RGBA{R: 0, G: 50, B: 150, A: 255},
		AltitudeRange: Range{0.0, 0.25}, TemperatureRange: Range{0.0, 1.0}, HumidityRange: Range{0.0, 1.0},
		WaterAbundance: 1.0, Fertility: 0.1, Hostility: 0.4, Biodiversity: 0.6,
		OilChance: 0.05, GasChance: 0.04,
	},
	BiomeOceanShallow: {
		Name: "Shallow Ocean", Description: "Shallow coastal water",
		Color:         color.RGBA{R: 50, G: 100, B: 200, A: 255},
		AltitudeRange: Range{0.25, 0.35}, TemperatureRange: Range{0.0, 1.0}, HumidityRange: Range{0.0, 1.0},
		WaterAbundance: 1.0, Fertility: 0.3, Hostility: 0.2, Biodiversity: 0.8,
		OilChance: 0.03,
	},
	BiomeCoastal: {
		Name: "Coast", Description: "Beaches and cliffs along the shore",
		Color:         color.RGBA{R: 194, G: 178, B: 128, A: 255},
		AltitudeRange: Range{0.35, 0.42}, TemperatureRange: Range{0.0, 1.0}, HumidityRange: Range{0.4, 1.0},
		WaterAbundance: 0.8, Fertility: 0.6, Hostility: 0.2, Biodiversity: 0.7,
		IronChance: 0.03, MineralsChance: 0.03,
	},
	BiomeGlacier: {
		Name: "Glacier", Description: "Permanent ice and extreme cold",
		Color:         color.RGBA{R: 240, G: 250, B: 255, A: 255},
		AltitudeRange: Range{0.0, 1.0}, TemperatureRange: Range{0.0, 0.15}, HumidityRange: Range{0.0, 1.0},
		WaterAbundance: 0.9, Fertility: 0.0, Hostility: 0.95, Biodiversity: 0.05,
		UraniumChance: 0.01,
	},
	BiomeTundra: {
		Name: "Tundra", Description: "Cold plains with sparse vegetation",
		Color:         color.RGBA{R: 180, G: 200, B: 180, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.1, 0.25}, HumidityRange: Range{0.2, 0.7},
		WoodAbundance: 0.1, WaterAbundance: 0.5, Fertility: 0.2, Hostility: 0.75, Biodiversity: 0.2,
		OilChance: 0.04, GasChance: 0.06,
	},
	BiomeTaiga: {
		Name: "Taiga", Description: "Conifer forest in a cold climate",
		Color:         color.RGBA{R: 60, G: 100, B: 60, A: 255},
		AltitudeRange: Range{0.35, 0.70}, TemperatureRange: Range{0.2, 0.40}, HumidityRange: Range{0.4, 0.8},
		WoodAbundance: 0.8, WaterAbundance: 0.6, Fertility: 0.4, Hostility: 0.5, Biodiversity: 0.5,
		IronChance: 0.08, CoalChance: 0.06, MineralsChance: 0.04,
	},
	BiomeGrassland: {
		Name: "Grassland", Description: "Temperate open plains",
		Color:         color.RGBA{R: 120, G: 180, B: 80, A: 255},
		AltitudeRange: Range{0.35, 0.60}, TemperatureRange: Range{0.4, 0.7}, HumidityRange: Range{0.3, 0.6},
		WoodAbundance: 0.2, WaterAbundance: 0.5, Fertility: 0.85, Hostility: 0.2, Biodiversity: 0.6,
		IronChance: 0.06, CopperChance: 0.06, MineralsChance: 0.04,
	},
	BiomeTemperateForest: {
		Name: "Temperate Forest", Description: "Deciduous forest in a mild climate",
		Color:         color.RGBA{R: 34, G: 139, B: 34, A: 255},
		AltitudeRange: Range{0.35, 0.70}, TemperatureRange: Range{0.4, 0.7}, HumidityRange: Range{0.5, 0.8},
		WoodAbundance: 0.9, WaterAbundance: 0.7, Fertility: 0.75, Hostility: 0.3, Biodiversity: 0.8,
		IronChance: 0.05, CoalChance: 0.08, MineralsChance: 0.04,
	},
	BiomeTemperateRainforest: {
		Name: "Temperate Rainforest", Description: "Dense forest under constant rain",
		Color:         color.RGBA{R: 20, G: 100, B: 50, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.45, 0.65}, HumidityRange: Range{0.8, 1.0},
		WoodAbundance: 0.95, WaterAbundance: 0.95, Fertility: 0.8, Hostility: 0.4, Biodiversity: 0.9,
	},
	BiomeDesertHot: {
		Name: "Hot Desert", Description: "Sand and extreme heat",
		Color:         color.RGBA{R: 237, G: 201, B: 175, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.75, 1.0}, HumidityRange: Range{0.0, 0.2},
		WoodAbundance: 0.0, WaterAbundance: 0.1, Fertility: 0.1, Hostility: 0.85, Biodiversity: 0.2,
		GoldChance: 0.03, UraniumChance: 0.015, OilChance: 0.08,
	},
	BiomeDesertCold: {
		Name: "Cold Desert", Description: "High-altitude desert with low temperatures",
		Color:         color.RGBA{R: 200, G: 180, B: 150, A: 255},
		AltitudeRange: Range{0.50, 0.75}, TemperatureRange: Range{0.2, 0.4}, HumidityRange: Range{0.0, 0.2},
		WoodAbundance: 0.0, WaterAbundance: 0.15, Fertility: 0.1, Hostility: 0.8, Biodiversity: 0.15,
		CopperChance: 0.08,
	},
	BiomeSavanna: {
		Name: "Savanna", Description: "Tropical grassland with scattered trees",
		Color:         color.RGBA{R: 167, G: 157, B: 100, A: 255},
		AltitudeRange: Range{0.35, 0.60}, TemperatureRange: Range{0.65, 0.85}, HumidityRange: Range{0.3, 0.6},
		WoodAbundance: 0.4, WaterAbundance: 0.4, Fertility: 0.6, Hostility: 0.5, Biodiversity: 0.85,
		IronChance: 0.05,
	},
	BiomeTropicalRainforest: {
		Name: "Tropical Rainforest", Description: "Dense, humid tropical forest",
		Color:         color.RGBA{R: 0, G: 128, B: 0, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.75, 0.95}, HumidityRange: Range{0.8, 1.0},
		WoodAbundance: 0.99, WaterAbundance: 0.95, Fertility: 0.7, Hostility: 0.6, Biodiversity: 0.99,
		GemsChance: 0.03,
	},
	BiomeTropicalSeasonalForest: {
		Name: "Tropical Seasonal Forest", Description: "Tropical forest with a dry season",
		Color:         color.RGBA{R: 107, G: 142, B: 35, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.70, 0.90}, HumidityRange: Range{0.5, 0.8},
		WoodAbundance: 0.85, WaterAbundance: 0.7, Fertility: 0.75, Hostility: 0.5, Biodiversity: 0.85,
	},
	BiomeJungle: {
		Name: "Jungle", Description: "Extremely dense tropical vegetation",
		Color:         color.RGBA{R: 0, G: 100, B: 0, A: 255},
		AltitudeRange: Range{0.40, 0.60}, TemperatureRange: Range{0.80, 1.0}, HumidityRange: Range{0.85, 1.0},
		WoodAbundance: 0.95, WaterAbundance: 0.98, Fertility: 0.65, Hostility: 0.75, Biodiversity: 0.95,
		GoldChance: 0.02,
	},
	BiomeMountainLow: {
		Name: "Low Mountain", Description: "Vegetated mountain slopes",
		Color:         color.RGBA{R: 139, G: 137, B: 137, A: 255},
		AltitudeRange: Range{0.65, 0.75}, TemperatureRange: Range{0.3, 0.7}, HumidityRange: Range{0.3, 0.8},
		WoodAbundance: 0.6, WaterAbundance: 0.5, Fertility: 0.4, Hostility: 0.6, Biodiversity: 0.5,
		IronChance: 0.12, CopperChance: 0.10, CoalChance: 0.10, MineralsChance: 0.08,
	},
	BiomeMountainHigh: {
		Name: "High Mountain", Description: "High slopes with sparse vegetation",
		Color:         color.RGBA{R: 105, G: 105, B: 105, A: 255},
		AltitudeRange: Range{0.75, 0.85}, TemperatureRange: Range{0.1, 0.5}, HumidityRange: Range{0.2, 0.7},
		WoodAbundance: 0.3, WaterAbundance: 0.4, Fertility: 0.2, Hostility: 0.75, Biodiversity: 0.3,
		GoldChance: 0.05, SilverChance: 0.06, IronChance: 0.15, CopperChance: 0.12, GemsChance: 0.04, MineralsChance: 0.1,
	},
	BiomeMountainPeak: {
		Name: "Mountain Peak", Description: "Snowbound rocky summit",
		Color:         color.RGBA{R: 255, G: 250, B: 250, A: 255},
		AltitudeRange: Range{0.85, 1.0}, TemperatureRange: Range{0.0, 0.3}, HumidityRange: Range{0.0, 0.6},
		WoodAbundance: 0.0, WaterAbundance: 0.3, Fertility: 0.0, Hostility: 0.95, Biodiversity: 0.05,
		GoldChance: 0.08, SilverChance: 0.10, UraniumChance: 0.03, GemsChance: 0.06, MineralsChance: 0.12,
	},
	BiomeSwamp: {
		Name: "Swamp", Description: "Waterlogged marshland",
		Color:         color.RGBA{R: 76, G: 83, B: 32, A: 255},
		AltitudeRange: Range{0.35, 0.45}, TemperatureRange: Range{0.5, 0.8}, HumidityRange: Range{0.85, 1.0},
		WoodAbundance: 0.5, WaterAbundance: 0.95, Fertility: 0.5, Hostility: 0.7, Biodiversity: 0.75,
		CoalChance: 0.15, OilChance: 0.08,
	},
	BiomeMangrove: {
		Name: "Mangrove", Description: "Tropical coastal forest",
		Color:         color.RGBA{R: 85, G: 107, B: 47, A: 255},
		AltitudeRange: Range{0.35, 0.42}, TemperatureRange: Range{0.7, 0.95}, HumidityRange: Range{0.85, 1.0},
		WoodAbundance: 0.7, WaterAbundance: 0.9, Fertility: 0.6, Hostility: 0.5, Biodiversity: 0.9,
	},
	BiomeShrubland: {
		Name: "Shrubland", Description: "Shrubs and low vegetation",
		Color:         color.RGBA{R: 153, G: 153, B: 102, A: 255},
		AltitudeRange: Range{0.40, 0.65}, TemperatureRange: Range{0.5, 0.8}, HumidityRange: Range{0.25, 0.5},
		WoodAbundance: 0.3, WaterAbundance: 0.3, Fertility: 0.45, Hostility: 0.4, Biodiversity: 0.5,
	},
	BiomeSteppe: {
		Name: "Steppe", Description: "Semi-arid grassland",
		Color:         color.RGBA{R: 140, G: 130, B: 90, A: 255},
		AltitudeRange: Range{0.35, 0.65}, TemperatureRange: Range{0.45, 0.75}, HumidityRange: Range{0.2, 0.4},
		WoodAbundance: 0.15, WaterAbundance: 0.3, Fertility: 0.55, Hostility: 0.4, Biodiversity: 0.5,
		CoalChance: 0.05,
	},
}

// Definition returns the catalog entry for a biome. BiomeNone returns a
// zero definition.
func Definition(b BiomeType) BiomeDefinition {
	return biomeCatalog[b]
}

// Classify maps tile conditions to a biome with a priority cascade:
// water, coast, mountains, cold, arid, then temperature/humidity bands.
// The first matching rule wins and shrubland is the deliberate fallback,
// so every tile always classifies.
func Classify(altitude, temperature, humidity float64) BiomeType {
	// 1. Water
	if altitude < WaterLevel {
		if altitude < 0.25 {
			return BiomeOceanDeep
		}
		return BiomeOceanShallow
	}

	// 2. Coast
	if altitude < 0.42 && humidity > 0.7 {
		if temperature > 0.7 {
			return BiomeMangrove
		}
		return BiomeCoastal
	}

	// 3. Mountains
	switch {
	case altitude >= 0.85:
		return BiomeMountainPeak
	case altitude >= 0.75:
		return BiomeMountainHigh
	case altitude >= 0.65:
		return BiomeMountainLow
	}

	// 4. Glacial
	switch {
	case temperature < 0.15:
		return BiomeGlacier
	case temperature < 0.25:
		return BiomeTundra
	case temperature < 0.40:
		return BiomeTaiga
	}

	// 5. Arid
	if humidity < 0.2 {
		switch {
		case temperature > 0.75:
			return BiomeDesertHot
		case temperature < 0.4:
			return BiomeDesertCold
		default:
			return BiomeSteppe
		}
	}

	// 6. Tropical
	if temperature > 0.75 {
		switch {
		case humidity > 0.85:
			if altitude > 0.45 {
				return BiomeJungle
			}
			return BiomeTropicalRainforest
		case humidity > 0.5:
			return BiomeTropicalSeasonalForest
		default:
			return BiomeSavanna
		}
	}

	// 7. Temperate
	if temperature >= 0.4 && temperature <= 0.75 {
		switch {
		case humidity > 0.85:
			return BiomeSwamp
		case humidity > 0.8:
			return BiomeTemperateRainforest
		case humidity > 0.5:
			return BiomeTemperateForest
		case humidity > 0.3:
			return BiomeGrassland
		default:
			return BiomeShrubland
		}
	}

	// 8. Fallback
	return BiomeShrubland
}

// ClassifyGrid assigns a biome to every tile in place.
func ClassifyGrid(grid *Grid) {
	grid.EachRef(func(t *Tile) {
		t.Biome = Classify(t.Altitude, t.Temperature, t.Humidity)
	})
}

// BiomeByName resolves a biome from a human-typed name, accepting the
// identifier or display name and falling back to the closest match by
// edit distance. Reports false when nothing is near enough.
func BiomeByName(name string) (BiomeType, bool) {
	norm := normalizeName(name)
	if norm == "" {
		return BiomeNone, false
	}

	best := BiomeNone
	bestDist := -1
	for _, b := range BiomeTypes() {
		for _, candidate := range []string{b.String(), normalizeName(Definition(b).Name)} {
			if candidate == norm {
				return b, true
			}
			dist := levenshtein.ComputeDistance(norm, candidate)
			if bestDist < 0 || dist < bestDist {
				best = b
				bestDist = dist
			}
		}
	}
	// Reject matches further than a third of the query length.
	if bestDist >= 0 && bestDist*3 <= len(norm) {
		return best, true
	}
	return BiomeNone, false
}

func normalizeName(raw string) string {
	name := strings.ToLower(strings.TrimSpace(raw))
	name = strings.ReplaceAll(name, "-", "_")
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
