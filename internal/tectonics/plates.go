// Package tectonics partitions the world grid into tectonic plates,
// classifies the boundaries between them and simulates the geological
// events those boundaries produce.
package tectonics

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/appengine-ltd/terraforge/internal/mathx"
	"github.com/appengine-ltd/terraforge/internal/world"
)

// PlateType distinguishes dense oceanic plates from lighter continental
// ones.
type PlateType uint8

const (
	PlateOceanic PlateType = iota
	PlateContinental
)

func (t PlateType) String() string {
	if t == PlateContinental {
		return "continental"
	}
	return "oceanic"
}

// TectonicPlate owns an exact set of grid coordinates. Velocity is in
// cm/year; age in millions of years.
type TectonicPlate struct {
	ID        int
	Type      PlateType
	VelocityX float64
	VelocityY float64
	Age       int
	Tiles     map[[2]int]bool
}

// Speed is the plate's total velocity magnitude.
func (p *TectonicPlate) Speed() float64 {
	return math.Hypot(p.VelocityX, p.VelocityY)
}

// Direction is the velocity heading in radians.
func (p *TectonicPlate) Direction() float64 {
	return math.Atan2(p.VelocityY, p.VelocityX)
}

// Engine runs the two-phase plate setup (partition, boundary detection)
// and the repeatable geological-event simulation. The horizontal axis is
// toroidal: distance and adjacency wrap on X, never on Y.
type Engine struct {
	width  int
	height int
	seed   int64

	plates     map[int]*TectonicPlate
	boundaries []*PlateBoundary
	events     []GeologicalEvent
	plateMap   []int // tile index -> plate id
	geoRNG     *rand.Rand
}

// NewEngine prepares an engine for a grid of the given dimensions.
func NewEngine(width, height int, seed int64) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("tectonics dimensions must be positive, got %dx%d", width, height)
	}
	return &Engine{
		width:  width,
		height: height,
		seed:   seed,
		plates: make(map[int]*TectonicPlate),
	}, nil
}

// GeneratePlates partitions every grid cell to the nearest of numPlates
// random seed points, with toroidal distance on X and plain Euclidean on
// Y, then assigns each plate a random type (70% oceanic), a velocity
// drawn uniformly from [2,10] cm/year at a random heading, and an age in
// [50,200].
func (e *Engine) GeneratePlates(numPlates int) error {
	if numPlates < 1 {
		return fmt.Errorf("plate count must be at least 1, got %d", numPlates)
	}

	rng := mathx.SeededRNG(mathx.SeedFromLabel(e.seed, "plates"))

	type seedPoint struct{ x, y, id int }
	seeds := make([]seedPoint, numPlates)
	for i := range seeds {
		seeds[i] = seedPoint{x: rng.IntN(e.width), y: rng.IntN(e.height), id: i}
	}

	e.plateMap = make([]int, e.width*e.height)
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			closest := 0
			minDist := math.Inf(1)
			for _, s := range seeds {
				dx := math.Abs(float64(x - s.x))
				dx = math.Min(dx, float64(e.width)-dx)
				dy := float64(y - s.y)
				dist := math.Sqrt(dx*dx + dy*dy)
				if dist < minDist {
					minDist = dist
					closest = s.id
				}
			}
			e.plateMap[y*e.width+x] = closest
		}
	}

	e.plates = make(map[int]*TectonicPlate, numPlates)
	for i := 0; i < numPlates; i++ {
		plateType := PlateContinental
		if rng.Float64() < 0.7 {
			plateType = PlateOceanic
		}
		speed := 2.0 + rng.Float64()*8.0
		direction := rng.Float64() * 2 * math.Pi

		e.plates[i] = &TectonicPlate{
			ID:        i,
			Type:      plateType,
			VelocityX: speed * math.Cos(direction),
			VelocityY: speed * math.Sin(direction),
			Age:       50 + rng.IntN(151),
			Tiles:     make(map[[2]int]bool),
		}
	}
	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			e.plates[e.plateMap[y*e.width+x]].Tiles[[2]int{x, y}] = true
		}
	}
	return nil
}

// PlateAt returns the plate owning (x, y), or false out of range or
// before partitioning.
func (e *Engine) PlateAt(x, y int) (*TectonicPlate, bool) {
	if e.plateMap == nil || x < 0 || y < 0 || x >= e.width || y >= e.height {
		return nil, false
	}
	return e.plates[e.plateMap[y*e.width+x]], true
}

// Plates returns the plates ordered by id.
func (e *Engine) Plates() []*TectonicPlate {
	plates := make([]*TectonicPlate, 0, len(e.plates))
	for i := 0; i < len(e.plates); i++ {
		plates = append(plates, e.plates[i])
	}
	return plates
}

// Apply stamps plate ownership and boundary membership onto the grid's
// tiles.
func (e *Engine) Apply(grid *world.Grid) {
	if e.plateMap == nil {
		return
	}
	grid.EachRef(func(t *world.Tile) {
		t.PlateID = e.plateMap[t.Y*e.width+t.X]
		t.IsPlateBoundary = false
	})
	for _, boundary := range e.boundaries {
		for _, pos := range boundary.Tiles {
			if tile := grid.TileRef(pos[0], pos[1]); tile != nil {
				tile.IsPlateBoundary = true
			}
		}
	}
}

// Stats summarizes the plate system.
type Stats struct {
	TotalPlates     int
	OceanicPlates   int
	ContinentalPlts int
	TotalBoundaries int
	Divergent       int
	Convergent      int
	Transform       int
	TotalEvents     int
	AvgPlateSpeed   float64
}

// Statistics aggregates plate, boundary and event counts.
func (e *Engine) Statistics() Stats {
	stats := Stats{
		TotalPlates:     len(e.plates),
		TotalBoundaries: len(e.boundaries),
		TotalEvents:     len(e.events),
	}
	var speedSum float64
	for _, p := range e.plates {
		speedSum += p.Speed()
		if p.Type == PlateOceanic {
			stats.OceanicPlates++
		} else {
			stats.ContinentalPlts++
		}
	}
	if len(e.plates) > 0 {
		stats.AvgPlateSpeed = speedSum / float64(len(e.plates))
	}
	for _, b := range e.boundaries {
		switch b.Type {
		case BoundaryDivergent:
			stats.Divergent++
		case BoundaryConvergent:
			stats.Convergent++
		case BoundaryTransform:
			stats.Transform++
		}
	}
	return stats
}
