package world

import (
	"math"

	"github.com/appengine-ltd/terraforge/internal/noise"
)

// TerrainBuilder turns coherent-noise fields into the normalized
// altitude, humidity and temperature maps a grid is built from.
//
// Altitude uses the Perlin backend; humidity and temperature use the
// OpenSimplex backend with their own offsets so the three layers do not
// correlate despite sharing one master seed.
type TerrainBuilder struct {
	Width  int
	Height int
	Seed   int64

	// Latitude temperature bounds, normalized.
	EquatorTemp float64
	PoleTemp    float64
}

// NewTerrainBuilder returns a builder with the default latitude bounds.
func NewTerrainBuilder(width, height int, seed int64) *TerrainBuilder {
	return &TerrainBuilder{
		Width:       width,
		Height:      height,
		Seed:        seed,
		EquatorTemp: 0.9,
		PoleTemp:    0.1,
	}
}

// AltitudeMap generates normalized altitude with a redistribution curve
// (exponent 1.8) exaggerating relief. Island mode applies the radial
// falloff so land fades toward the edges.
func (tb *TerrainBuilder) AltitudeMap(islandMode bool) [][]float64 {
	field := noise.NewField(tb.Seed)
	params := noise.DefaultParams()
	params.Scale = 150.0
	params.Octaves = 6

	var altitude [][]float64
	if islandMode {
		altitude = field.GenerateIsland(tb.Width, tb.Height, params, 1.5)
	} else {
		altitude = field.GenerateNormalized(tb.Width, tb.Height, params)
	}
	noise.Redistribute(altitude, 1.8)
	return altitude
}

// HumidityMap generates normalized humidity, dried out over high ground
// and saturated over water.
func (tb *TerrainBuilder) HumidityMap(altitude [][]float64) [][]float64 {
	field := noise.NewSimplexField(tb.Seed)
	params := noise.DefaultParams()
	params.Scale = 200.0
	params.Octaves = 4
	params.OffsetX = 1000 // decorrelate from altitude

	humidity := field.GenerateNormalized(tb.Width, tb.Height, params)
	for y := 0; y < tb.Height; y++ {
		for x := 0; x < tb.Width; x++ {
			alt := altitude[y][x]
			if alt > 0.7 {
				humidity[y][x] *= 1.0 - (alt-0.7)*1.5
			}
			if alt < WaterLevel {
				humidity[y][x] = 1.0
			}
			humidity[y][x] = clampUnit(humidity[y][x])
		}
	}
	return humidity
}

// TemperatureMap blends a latitude gradient (warmest at the vertical
// center) 80/20 with local noise, then cools high ground.
func (tb *TerrainBuilder) TemperatureMap(altitude [][]float64) [][]float64 {
	field := noise.NewSimplexField(tb.Seed)
	params := noise.DefaultParams()
	params.Scale = 300.0
	params.Octaves = 3
	params.OffsetX = 2000

	variation := field.GenerateNormalized(tb.Width, tb.Height, params)

	temperature := make([][]float64, tb.Height)
	half := float64(tb.Height) / 2
	for y := 0; y < tb.Height; y++ {
		temperature[y] = make([]float64, tb.Width)
		distanceToEquator := math.Abs(float64(y)-half) / half
		baseTemp := tb.PoleTemp + (tb.EquatorTemp-tb.PoleTemp)*(1-distanceToEquator)
		for x := 0; x < tb.Width; x++ {
			temp := baseTemp*0.8 + variation[y][x]*0.2
			if alt := altitude[y][x]; alt > 0.5 {
				temp -= (alt - 0.5) * 0.4
			}
			temperature[y][x] = clampUnit(temp)
		}
	}
	return temperature
}

// BuildGrid assembles the tile grid from the three generated maps.
func BuildGrid(width, height int, altitude, humidity, temperature [][]float64) (*Grid, error) {
	grid, err := NewGrid(width, height)
	if err != nil {
		return nil, err
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			*grid.TileRef(x, y) = NewTile(x, y, altitude[y][x], humidity[y][x], temperature[y][x])
		}
	}
	return grid, nil
}

func clampUnit(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}
