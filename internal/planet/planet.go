// Package planet wires the generation stages into one deterministic
// pipeline and exposes the combined read surface over the result.
package planet

import (
	"fmt"
	"math/rand/v2"

	"github.com/appengine-ltd/terraforge/internal/climate"
	"github.com/appengine-ltd/terraforge/internal/tectonics"
	"github.com/appengine-ltd/terraforge/internal/world"
)

// Options configures a generation run. A zero Seed draws a random one
// and records it, so every run can be reproduced from its summary.
type Options struct {
	Width         int
	Height        int
	Seed          int64
	IslandMode    bool
	NumRivers     int
	RiverMinLen   int
	NumPlates     int
	TectonicYears int
}

// DefaultOptions matches a mid-size continental world.
func DefaultOptions() Options {
	return Options{
		Width:         100,
		Height:        100,
		NumRivers:     5,
		RiverMinLen:   5,
		NumPlates:     6,
		TectonicYears: 10,
	}
}

// Validate rejects option sets the pipeline cannot run.
func (o Options) Validate() error {
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("world dimensions must be positive, got %dx%d", o.Width, o.Height)
	}
	if o.NumRivers < 0 {
		return fmt.Errorf("river count must not be negative, got %d", o.NumRivers)
	}
	if o.NumPlates < 1 {
		return fmt.Errorf("plate count must be at least 1, got %d", o.NumPlates)
	}
	if o.TectonicYears < 0 {
		return fmt.Errorf("tectonic years must not be negative, got %d", o.TectonicYears)
	}
	return nil
}

// Planet is a fully generated world: the tile grid plus the engines that
// built it, kept for queries and further simulation.
type Planet struct {
	opts Options
	seed int64

	grid      *world.Grid
	tectonics *tectonics.Engine
	climate   *climate.Engine
	rivers    int
}

// Generate runs the full pipeline: terrain maps, grid assembly, plate
// partition and boundary detection, per-year geological events, river
// carving, biome classification and resource placement. The same options
// always produce the same planet.
func Generate(opts Options) (*Planet, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	seed := opts.Seed
	if seed == 0 {
		seed = rand.Int64()
	}

	builder := world.NewTerrainBuilder(opts.Width, opts.Height, seed)
	altitude := builder.AltitudeMap(opts.IslandMode)
	humidity := builder.HumidityMap(altitude)
	temperature := builder.TemperatureMap(altitude)

	grid, err := world.BuildGrid(opts.Width, opts.Height, altitude, humidity, temperature)
	if err != nil {
		return nil, err
	}

	tect, err := tectonics.NewEngine(opts.Width, opts.Height, seed)
	if err != nil {
		return nil, err
	}
	if err := tect.GeneratePlates(opts.NumPlates); err != nil {
		return nil, err
	}
	tect.DetectBoundaries()
	for year := 1; year <= opts.TectonicYears; year++ {
		tect.Simulate(year, grid)
	}
	tect.Apply(grid)

	// Geological uplift may have pushed tiles across the water line.
	grid.EachRef(func(t *world.Tile) {
		t.UpdateWaterStatus(world.WaterLevel)
	})
	syncAltitude(grid, altitude)

	minLen := opts.RiverMinLen
	if minLen <= 0 {
		minLen = 5
	}
	rivers := world.NewHydrologyEngine(seed).CarveRivers(grid, altitude, opts.NumRivers, minLen)

	world.ClassifyGrid(grid)
	grid.EachRef(func(t *world.Tile) {
		t.CalculateHostility()
		t.CalculateFertility()
	})
	world.NewResourceGenerator(seed).Generate(grid)

	clim, err := climate.NewEngine(opts.Width, opts.Height)
	if err != nil {
		return nil, err
	}
	clim.ComputeWeather(grid)
	clim.SimulateWaterCycle(grid)

	return &Planet{
		opts:      opts,
		seed:      seed,
		grid:      grid,
		tectonics: tect,
		climate:   clim,
		rivers:    rivers,
	}, nil
}

// syncAltitude writes event-modified tile altitudes back into the working
// altitude map so river walks see the uplifted relief.
func syncAltitude(grid *world.Grid, altitude [][]float64) {
	grid.EachRef(func(t *world.Tile) {
		altitude[t.Y][t.X] = t.Altitude
	})
}

// Seed reports the seed the planet was generated from, including a
// drawn one when the options left it zero.
func (p *Planet) Seed() int64 { return p.seed }

// Options reports the options used for generation.
func (p *Planet) Options() Options { return p.opts }

// Grid exposes the tile grid.
func (p *Planet) Grid() *world.Grid { return p.grid }

// Tectonics exposes the plate engine for boundary and event queries.
func (p *Planet) Tectonics() *tectonics.Engine { return p.tectonics }

// Climate exposes the climate engine attached at generation time.
func (p *Planet) Climate() *climate.Engine { return p.climate }

// Rivers reports how many rivers were committed.
func (p *Planet) Rivers() int { return p.rivers }

// PlateAt returns the plate owning a tile.
func (p *Planet) PlateAt(x, y int) (*tectonics.TectonicPlate, bool) {
	return p.tectonics.PlateAt(x, y)
}

// ClimateAt returns the Koppen class of a tile.
func (p *Planet) ClimateAt(x, y int) climate.Classification {
	return p.climate.Classify(x, y)
}

// AdvanceSeason steps the climate cursor one month and rederives the
// weather and water-cycle maps.
func (p *Planet) AdvanceSeason() {
	p.climate.AdvanceSeason()
	p.climate.ComputeWeather(p.grid)
	p.climate.SimulateWaterCycle(p.grid)
}

// Summary aggregates the per-engine statistics for display.
type Summary struct {
	Seed    int64
	World   world.Stats
	Plates  tectonics.Stats
	Climate climate.Stats
	Rivers  int
}

// Summarize collects the statistics of every engine.
func (p *Planet) Summarize() Summary {
	return Summary{
		Seed:    p.seed,
		World:   p.grid.Statistics(),
		Plates:  p.tectonics.Statistics(),
		Climate: p.climate.Statistics(),
		Rivers:  p.rivers,
	}
}
