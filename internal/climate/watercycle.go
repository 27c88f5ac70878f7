package climate

import (
	"sync"

	"github.com/appengine-ltd/terraforge/internal/world"
)

// WaterCycleState tracks the monthly water budget of one tile, all in
// mm/month. Runoff and infiltration split precipitation on land; water
// tiles absorb everything.
type WaterCycleState struct {
	Evaporation   float64
	Condensation  float64
	Precipitation float64
	Infiltration  float64
	Runoff        float64
}

// SimulateWaterCycle rederives the water-cycle map for every tile from
// the current weather map, replacing any previous state. ComputeWeather
// must run first; stale or missing weather yields zero patterns.
func (e *Engine) SimulateWaterCycle(grid *world.Grid) map[[2]int]WaterCycleState {
	rows := make([][]WaterCycleState, e.height)

	var wg sync.WaitGroup
	for y := 0; y < e.height; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			row := make([]WaterCycleState, e.width)
			for x := 0; x < e.width; x++ {
				tile, ok := grid.Tile(x, y)
				if !ok {
					continue
				}
				weather, ok := e.weather[[2]int{x, y}]
				if !ok {
					continue
				}
				row[x] = tileWaterCycle(tile, weather)
			}
			rows[y] = row
		}(y)
	}
	wg.Wait()

	e.waterCycles = make(map[[2]int]WaterCycleState, e.width*e.height)
	for y, row := range rows {
		for x := range row {
			e.waterCycles[[2]int{x, y}] = row[x]
		}
	}
	return e.waterCycles
}

// WaterCycle returns the last computed state for a tile.
func (e *Engine) WaterCycle(x, y int) (WaterCycleState, bool) {
	s, ok := e.waterCycles[[2]int{x, y}]
	return s, ok
}

func tileWaterCycle(tile world.Tile, weather WeatherPattern) WaterCycleState {
	var state WaterCycleState

	// Open water evaporates at 150 mm baseline, land at 50 scaled by
	// how much moisture it holds. Freezing drops the baseline; the
	// temperature multiplier still applies, so deep cold can push the
	// budget negative (sublimation deficit).
	if tile.IsWater {
		rate := 150.0
		if weather.Temperature <= 0 {
			rate = 30.0
		}
		state.Evaporation = rate * (1 + weather.Temperature/30)
	} else {
		rate := 50.0
		if weather.Temperature <= 0 {
			rate = 10.0
		}
		state.Evaporation = rate * tile.Humidity * (1 + weather.Temperature/40)
	}

	state.Condensation = state.Evaporation * weather.CloudCover
	state.Precipitation = weather.Precipitation

	if !tile.IsWater {
		infiltrationRate := 0.6
		if tile.Altitude >= 0.5 {
			infiltrationRate = 0.3
		}
		state.Infiltration = state.Precipitation * infiltrationRate
		state.Runoff = state.Precipitation - state.Infiltration
	}
	return state
}
