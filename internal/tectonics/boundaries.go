package tectonics

import (
	"math"
	"sort"
)

// BoundaryType classifies the relative motion at a plate boundary.
type BoundaryType uint8

const (
	BoundaryDivergent BoundaryType = iota
	BoundaryConvergent
	BoundaryTransform
)

func (t BoundaryType) String() string {
	switch t {
	case BoundaryDivergent:
		return "divergent"
	case BoundaryConvergent:
		return "convergent"
	case BoundaryTransform:
		return "transform"
	default:
		return "unknown"
	}
}

// PlateBoundary records the unordered plate pair, the tiles along the
// seam, and an activity level in [0, 1].
type PlateBoundary struct {
	Plate1ID      int
	Plate2ID      int
	Type          BoundaryType
	Tiles         [][2]int
	ActivityLevel float64
}

// DetectBoundaries scans every cell's 4-neighbors (X wraps toroidally, Y
// does not) and records a boundary tile wherever the neighbor belongs to
// a different plate. Boundaries are keyed by the unordered plate pair and
// classified from the plates' relative velocities.
func (e *Engine) DetectBoundaries() {
	if e.plateMap == nil {
		return
	}

	type pairKey struct{ a, b int }
	tilesByPair := make(map[pairKey]map[[2]int]bool)

	for y := 0; y < e.height; y++ {
		for x := 0; x < e.width; x++ {
			plateID := e.plateMap[y*e.width+x]
			for _, off := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
				nx := ((x + off[0]) % e.width + e.width) % e.width
				ny := y + off[1]
				if ny < 0 || ny >= e.height {
					continue
				}
				neighborID := e.plateMap[ny*e.width+nx]
				if neighborID == plateID {
					continue
				}
				key := pairKey{a: plateID, b: neighborID}
				if key.a > key.b {
					key.a, key.b = key.b, key.a
				}
				if tilesByPair[key] == nil {
					tilesByPair[key] = make(map[[2]int]bool)
				}
				tilesByPair[key][[2]int{x, y}] = true
			}
		}
	}

	keys := make([]pairKey, 0, len(tilesByPair))
	for key := range tilesByPair {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	e.boundaries = e.boundaries[:0]
	for _, key := range keys {
		plate1 := e.plates[key.a]
		plate2 := e.plates[key.b]
		boundaryType := classifyBoundary(plate1, plate2)

		tiles := make([][2]int, 0, len(tilesByPair[key]))
		for pos := range tilesByPair[key] {
			tiles = append(tiles, pos)
		}
		sort.Slice(tiles, func(i, j int) bool {
			if tiles[i][1] != tiles[j][1] {
				return tiles[i][1] < tiles[j][1]
			}
			return tiles[i][0] < tiles[j][0]
		})

		e.boundaries = append(e.boundaries, &PlateBoundary{
			Plate1ID:      key.a,
			Plate2ID:      key.b,
			Type:          boundaryType,
			Tiles:         tiles,
			ActivityLevel: boundaryActivity(plate1, plate2, boundaryType),
		})
	}
}

// Boundaries returns the detected boundaries in stable pair order.
func (e *Engine) Boundaries() []*PlateBoundary {
	return e.boundaries
}

// classifyBoundary resolves heading differences within pi/6 of parallel
// or anti-parallel by relative speed (transform under 3 cm/year, then
// divergent before pi/2, convergent after). Anything nearer
// perpendicular is transform regardless of speed; a crude shear
// approximation, kept so worlds stay stable across versions.
func classifyBoundary(plate1, plate2 *TectonicPlate) BoundaryType {
	relSpeed := relativeSpeed(plate1, plate2)
	angleDiff := math.Abs(plate1.Direction() - plate2.Direction())

	if angleDiff < math.Pi/6 || angleDiff > 5*math.Pi/6 {
		if relSpeed < 3.0 {
			return BoundaryTransform
		}
		if angleDiff < math.Pi/2 {
			return BoundaryDivergent
		}
		return BoundaryConvergent
	}
	return BoundaryTransform
}

func boundaryActivity(plate1, plate2 *TectonicPlate, boundaryType BoundaryType) float64 {
	base := 0.7
	switch boundaryType {
	case BoundaryConvergent:
		base = 0.8
	case BoundaryDivergent:
		base = 0.6
	}
	return math.Min(1.0, base*relativeSpeed(plate1, plate2)/10.0)
}

func relativeSpeed(plate1, plate2 *TectonicPlate) float64 {
	return math.Hypot(plate1.VelocityX-plate2.VelocityX, plate1.VelocityY-plate2.VelocityY)
}
