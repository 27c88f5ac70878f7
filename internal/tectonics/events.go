package tectonics

import (
	"fmt"
	"math"

	"github.com/appengine-ltd/terraforge/internal/mathx"
	"github.com/appengine-ltd/terraforge/internal/world"
)

// EventType labels a geological event.
type EventType string

const (
	EventEarthquake       EventType = "earthquake"
	EventVolcano          EventType = "volcano"
	EventMountainBuilding EventType = "mountain_building"
)

// GeologicalEvent is one entry in the append-only event log. Magnitude
// follows the Richter scale for earthquakes.
type GeologicalEvent struct {
	Type        EventType
	X, Y        int
	Year        int
	Magnitude   float64
	Description string
}

// Events returns the full append-only event log.
func (e *Engine) Events() []GeologicalEvent {
	return e.events
}

// Simulate runs one simulated year of geological activity. Each boundary
// fires with probability equal to its activity level; a random boundary
// tile then hosts an event whose kind depends on the boundary type and
// the colliding plates' types. Volcanoes and mountain building raise the
// tile's altitude in place (capped at 1.0). Every event is appended to
// the persistent log and returned.
func (e *Engine) Simulate(year int, grid *world.Grid) []GeologicalEvent {
	if e.geoRNG == nil {
		e.geoRNG = mathx.SeededRNG(mathx.SeedFromLabel(e.seed, "geology"))
	}
	rng := e.geoRNG

	var events []GeologicalEvent
	for _, boundary := range e.boundaries {
		if rng.Float64() > boundary.ActivityLevel {
			continue
		}
		if len(boundary.Tiles) == 0 {
			continue
		}
		pos := boundary.Tiles[rng.IntN(len(boundary.Tiles))]
		x, y := pos[0], pos[1]

		var event GeologicalEvent
		switch boundary.Type {
		case BoundaryConvergent:
			plate1 := e.plates[boundary.Plate1ID]
			plate2 := e.plates[boundary.Plate2ID]
			switch {
			case plate1.Type == PlateOceanic && plate2.Type == PlateOceanic:
				// Oceanic subduction: trench and island-arc volcanoes.
				eventType := EventEarthquake
				if rng.Float64() < 0.3 {
					eventType = EventVolcano
				}
				magnitude := 5.0 + rng.Float64()*3.5
				if eventType == EventVolcano {
					raiseAltitude(grid, x, y, 0.15)
					event = GeologicalEvent{Type: EventVolcano, Magnitude: magnitude, Description: "Submarine volcanic eruption"}
				} else {
					event = GeologicalEvent{Type: EventEarthquake, Magnitude: magnitude, Description: fmt.Sprintf("Earthquake of magnitude %.1f", magnitude)}
				}
			case plate1.Type == PlateContinental && plate2.Type == PlateContinental:
				// Continental collision builds mountains.
				magnitude := 4.0 + rng.Float64()*3.0
				raiseAltitude(grid, x, y, 0.10)
				event = GeologicalEvent{Type: EventMountainBuilding, Magnitude: magnitude, Description: "Mountain building from continental collision"}
			default:
				// Mixed subduction: volcanic arcs and deep quakes.
				eventType := EventEarthquake
				if rng.Float64() < 0.4 {
					eventType = EventVolcano
				}
				magnitude := 6.0 + rng.Float64()*3.0
				if eventType == EventVolcano {
					raiseAltitude(grid, x, y, 0.12)
					event = GeologicalEvent{Type: EventVolcano, Magnitude: magnitude, Description: "Volcanic eruption in subduction zone"}
				} else {
					event = GeologicalEvent{Type: EventEarthquake, Magnitude: magnitude, Description: fmt.Sprintf("Subduction earthquake, magnitude %.1f", magnitude)}
				}
			}
		case BoundaryDivergent:
			eventType := EventEarthquake
			if rng.Float64() >= 0.7 {
				eventType = EventVolcano
			}
			magnitude := 4.0 + rng.Float64()*2.5
			if eventType == EventVolcano {
				raiseAltitude(grid, x, y, 0.08)
				event = GeologicalEvent{Type: EventVolcano, Magnitude: magnitude, Description: "Volcanic activity at an oceanic ridge"}
			} else {
				event = GeologicalEvent{Type: EventEarthquake, Magnitude: magnitude, Description: fmt.Sprintf("Rift earthquake, magnitude %.1f", magnitude)}
			}
		default: // transform
			magnitude := 5.0 + rng.Float64()*3.0
			event = GeologicalEvent{Type: EventEarthquake, Magnitude: magnitude, Description: fmt.Sprintf("Transform fault earthquake, magnitude %.1f", magnitude)}
		}

		event.X = x
		event.Y = y
		event.Year = year
		events = append(events, event)
		e.events = append(e.events, event)
	}
	return events
}

func raiseAltitude(grid *world.Grid, x, y int, delta float64) {
	if grid == nil {
		return
	}
	if tile := grid.TileRef(x, y); tile != nil {
		tile.Altitude = math.Min(1.0, tile.Altitude+delta)
	}
}
