package climate

import (
	"sync"

	"github.com/appengine-ltd/terraforge/internal/world"
)

// WindDirection is a compass heading.
type WindDirection string

const (
	WindN  WindDirection = "N"
	WindNE WindDirection = "NE"
	WindE  WindDirection = "E"
	WindSE WindDirection = "SE"
	WindS  WindDirection = "S"
	WindSW WindDirection = "SW"
	WindW  WindDirection = "W"
	WindNW WindDirection = "NW"
)

// WeatherPattern is the derived weather at one tile for the current
// season. Temperature is in Celsius, precipitation in mm/month, wind in
// km/h, cloud cover a fraction in [0, 1].
type WeatherPattern struct {
	X, Y          int
	Temperature   float64
	Precipitation float64
	WindSpeed     float64
	WindDirection WindDirection
	CloudCover    float64
	Humidity      float64
}

// ComputeWeather rederives the weather map for every tile from the grid
// and the current season, replacing any previous map. Rows are computed
// in parallel; the result is identical regardless of scheduling because
// each tile's weather is a pure function of its own inputs.
func (e *Engine) ComputeWeather(grid *world.Grid) map[[2]int]WeatherPattern {
	rows := make([][]WeatherPattern, e.height)

	var wg sync.WaitGroup
	for y := 0; y < e.height; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			row := make([]WeatherPattern, e.width)
			for x := 0; x < e.width; x++ {
				tile, ok := grid.Tile(x, y)
				if !ok {
					continue
				}
				row[x] = e.tileWeather(tile)
			}
			rows[y] = row
		}(y)
	}
	wg.Wait()

	e.weather = make(map[[2]int]WeatherPattern, e.width*e.height)
	for y, row := range rows {
		for x := range row {
			e.weather[[2]int{x, y}] = row[x]
		}
	}
	return e.weather
}

// Weather returns the last computed pattern for a tile.
func (e *Engine) Weather(x, y int) (WeatherPattern, bool) {
	w, ok := e.weather[[2]int{x, y}]
	return w, ok
}

func (e *Engine) tileWeather(tile world.Tile) WeatherPattern {
	latitude := e.latitudeFraction(tile.Y)

	temperature := e.baseTemperature(latitude, tile.Altitude)
	precipitation := e.precipitation(tile, temperature)
	windSpeed, windDir := e.wind(latitude, tile.Altitude)

	cloudCover := tile.Humidity*0.7 + precipitation/200
	if cloudCover > 1 {
		cloudCover = 1
	}

	return WeatherPattern{
		X:             tile.X,
		Y:             tile.Y,
		Temperature:   temperature,
		Precipitation: precipitation,
		WindSpeed:     windSpeed,
		WindDirection: windDir,
		CloudCover:    cloudCover,
		Humidity:      tile.Humidity,
	}
}

// baseTemperature is 30C at the equator dropping 70C toward the poles,
// lapsed by 6.5C per km of elevation (altitude 1.0 spans 5 km), then
// shifted by the season: a full +-15C latitude-scaled swing in summer
// and winter, 30% of it in spring and autumn.
func (e *Engine) baseTemperature(latitude, altitude float64) float64 {
	temperature := 30 - latitude*70
	temperature -= altitude * 5 * 6.5

	variation := latitude * 15
	switch e.season {
	case SeasonSummer:
		temperature += variation
	case SeasonWinter:
		temperature -= variation
	case SeasonSpring:
		temperature += variation * 0.3
	case SeasonAutumn:
		temperature -= variation * 0.3
	}
	return temperature
}

func (e *Engine) precipitation(tile world.Tile, temperature float64) float64 {
	if tile.IsWater {
		return 50
	}

	precipitation := tile.Humidity * 200

	// Warm air holds more moisture; freezing air sheds little.
	if temperature > 0 {
		precipitation *= 1 + (temperature/30)*0.5
	} else {
		precipitation *= 0.3
	}

	// Orographic lift.
	precipitation *= 1 + tile.Altitude*0.8

	switch e.season {
	case SeasonSpring, SeasonAutumn:
		precipitation *= 1.2
	case SeasonWinter:
		precipitation *= 0.8
	}

	if precipitation < 0 {
		precipitation = 0
	}
	if precipitation > 500 {
		precipitation = 500
	}
	return precipitation
}

// wind derives prevailing speed and direction from the atmospheric cell
// covering the tile's latitude. Trade winds blow northeast near the
// equator flipping southwest toward the cell edge, westerlies cross the
// Ferrel band, polar easterlies the rest. Altitude strengthens all of
// them.
func (e *Engine) wind(latitude, altitude float64) (float64, WindDirection) {
	cell := e.cellFor(latitude)

	var speed float64
	var dir WindDirection
	switch cell.Type {
	case CellHadley:
		speed = 20
		if latitude < 0.17 {
			dir = WindNE
		} else {
			dir = WindSW
		}
	case CellFerrel:
		speed = 30
		dir = WindW
	default:
		speed = 25
		dir = WindE
	}

	speed *= 1 + altitude*0.5
	return speed, dir
}
