// Package climate derives per-tile weather and a water-cycle budget from
// a finished world grid plus a season cursor. Both maps are ephemeral:
// every recompute overwrites them wholesale, they never merge.
package climate

import "fmt"

// Season is the current quarter of the year.
type Season string

const (
	SeasonSpring Season = "spring"
	SeasonSummer Season = "summer"
	SeasonAutumn Season = "autumn"
	SeasonWinter Season = "winter"
)

// CellType names the three latitude-banded atmospheric circulation cells.
type CellType string

const (
	CellHadley CellType = "hadley"
	CellFerrel CellType = "ferrel"
	CellPolar  CellType = "polar"
)

// AtmosphericCell covers a band of latitude fractions measured from the
// equator at the vertical center of the map (0) to the poles (1).
type AtmosphericCell struct {
	Type        CellType
	LatitudeMin float64
	LatitudeMax float64
	Rotation    int // 1 clockwise, -1 counter-clockwise
}

// Engine holds the season cursor and the last computed weather and
// water-cycle maps.
type Engine struct {
	width  int
	height int

	month  int
	season Season
	cells  []AtmosphericCell

	weather     map[[2]int]WeatherPattern
	waterCycles map[[2]int]WaterCycleState
}

// NewEngine starts a climate engine in March (spring).
func NewEngine(width, height int) (*Engine, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("climate dimensions must be positive, got %dx%d", width, height)
	}
	return &Engine{
		width:  width,
		height: height,
		month:  3,
		season: SeasonSpring,
		cells: []AtmosphericCell{
			{Type: CellPolar, LatitudeMin: 0.67, LatitudeMax: 1.0, Rotation: 1},
			{Type: CellFerrel, LatitudeMin: 0.33, LatitudeMax: 0.67, Rotation: -1},
			{Type: CellHadley, LatitudeMin: 0.0, LatitudeMax: 0.33, Rotation: 1},
		},
		weather:     make(map[[2]int]WeatherPattern),
		waterCycles: make(map[[2]int]WaterCycleState),
	}, nil
}

// Month reports the current month, 1-12.
func (e *Engine) Month() int { return e.month }

// Season reports the current season.
func (e *Engine) Season() Season { return e.season }

// SetMonth jumps the cursor to a specific month. Out-of-range values
// wrap into 1-12.
func (e *Engine) SetMonth(month int) {
	e.month = ((month-1)%12+12)%12 + 1
	e.season = seasonForMonth(e.month)
}

// AdvanceSeason steps the month cursor and rederives the season.
func (e *Engine) AdvanceSeason() {
	e.month = e.month%12 + 1
	e.season = seasonForMonth(e.month)
}

func seasonForMonth(month int) Season {
	switch {
	case month >= 3 && month <= 5:
		return SeasonSpring
	case month >= 6 && month <= 8:
		return SeasonSummer
	case month >= 9 && month <= 11:
		return SeasonAutumn
	default:
		return SeasonWinter
	}
}

// latitudeFraction measures distance from the equator at the vertical
// center: 0 at the equator, 1 at the top and bottom edges.
func (e *Engine) latitudeFraction(y int) float64 {
	half := float64(e.height) / 2
	diff := float64(y) - half
	if diff < 0 {
		diff = -diff
	}
	if half == 0 {
		return 0
	}
	frac := diff / half
	if frac > 1 {
		frac = 1
	}
	return frac
}

func (e *Engine) cellFor(latitude float64) AtmosphericCell {
	for _, cell := range e.cells {
		if latitude >= cell.LatitudeMin && latitude < cell.LatitudeMax {
			return cell
		}
	}
	return e.cells[0]
}
