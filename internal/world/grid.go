package world

import "fmt"

// Grid owns the canonical tile arena. Tiles are stored in a flat slice in
// row-major order; other components mutate tiles through TileRef/EachRef
// rather than holding copies.
type Grid struct {
	Width  int
	Height int
	tiles  []Tile
}

// NewGrid allocates an empty grid. Width and height must be positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("grid dimensions must be positive, got %dx%d", width, height)
	}
	return &Grid{
		Width:  width,
		Height: height,
		tiles:  make([]Tile, width*height),
	}, nil
}

func (g *Grid) index(x, y int) (int, bool) {
	if g == nil || x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return 0, false
	}
	return y*g.Width + x, true
}

// Tile returns a copy of the tile at (x, y). Out-of-range coordinates
// report false rather than faulting.
func (g *Grid) Tile(x, y int) (Tile, bool) {
	idx, ok := g.index(x, y)
	if !ok {
		return Tile{}, false
	}
	return g.tiles[idx], true
}

// TileRef returns a mutable reference to the tile at (x, y), or nil when
// out of range. Generation stages use it for in-place mutation.
func (g *Grid) TileRef(x, y int) *Tile {
	idx, ok := g.index(x, y)
	if !ok {
		return nil
	}
	return &g.tiles[idx]
}

// EachRef visits every tile in row-major order with a mutable reference.
func (g *Grid) EachRef(fn func(*Tile)) {
	for i := range g.tiles {
		fn(&g.tiles[i])
	}
}

// Neighbors returns copies of the tiles within radius of (x, y),
// excluding the center and anything out of range.
func (g *Grid) Neighbors(x, y, radius int) []Tile {
	if radius < 1 {
		radius = 1
	}
	neighbors := make([]Tile, 0, (2*radius+1)*(2*radius+1)-1)
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if tile, ok := g.Tile(x+dx, y+dy); ok {
				neighbors = append(neighbors, tile)
			}
		}
	}
	return neighbors
}

// Criteria filters FindTiles. Nil fields are unconstrained.
type Criteria struct {
	MinFertility *float64
	MaxHostility *float64
	Water        *bool
	MinAltitude  *float64
	MaxAltitude  *float64
}

// FindTiles returns copies of every tile matching all set criteria.
func (g *Grid) FindTiles(c Criteria) []Tile {
	var results []Tile
	for i := range g.tiles {
		t := &g.tiles[i]
		if c.MinFertility != nil && t.FertilityIndex < *c.MinFertility {
			continue
		}
		if c.MaxHostility != nil && t.Hostility > *c.MaxHostility {
			continue
		}
		if c.Water != nil && t.IsWater != *c.Water {
			continue
		}
		if c.MinAltitude != nil && t.Altitude < *c.MinAltitude {
			continue
		}
		if c.MaxAltitude != nil && t.Altitude > *c.MaxAltitude {
			continue
		}
		results = append(results, *t)
	}
	return results
}

// Stats aggregates grid-wide counts and averages. Percentages over a
// possibly-zero land count fall back to 0 instead of dividing by zero.
type Stats struct {
	TotalTiles  int
	WaterTiles  int
	LandTiles   int
	RiverTiles  int
	FertileLand int // land with fertility index > 6
	HostileLand int // land with hostility > 7

	WaterPercentage   float64
	LandPercentage    float64
	FertilePercentage float64
	HostilePercentage float64

	AvgAltitude    float64
	AvgTemperature float64
	AvgHumidity    float64
}

// Statistics computes the aggregate view of the grid.
func (g *Grid) Statistics() Stats {
	stats := Stats{TotalTiles: len(g.tiles)}
	var sumAlt, sumTemp, sumHum float64
	for i := range g.tiles {
		t := &g.tiles[i]
		if t.IsWater {
			stats.WaterTiles++
		}
		if t.IsRiver {
			stats.RiverTiles++
		}
		if !t.IsWater && t.FertilityIndex > 6 {
			stats.FertileLand++
		}
		if !t.IsWater && t.Hostility > 7 {
			stats.HostileLand++
		}
		sumAlt += t.Altitude
		sumTemp += t.Temperature
		sumHum += t.Humidity
	}
	stats.LandTiles = stats.TotalTiles - stats.WaterTiles

	total := float64(stats.TotalTiles)
	stats.WaterPercentage = float64(stats.WaterTiles) / total * 100
	stats.LandPercentage = 100 - stats.WaterPercentage
	if stats.LandTiles > 0 {
		stats.FertilePercentage = float64(stats.FertileLand) / float64(stats.LandTiles) * 100
		stats.HostilePercentage = float64(stats.HostileLand) / float64(stats.LandTiles) * 100
	}
	stats.AvgAltitude = sumAlt / total
	stats.AvgTemperature = sumTemp / total
	stats.AvgHumidity = sumHum / total
	return stats
}
