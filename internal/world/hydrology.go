package world

import (
	"math/rand/v2"

	"github.com/appengine-ltd/terraforge/internal/mathx"
)

const (
	riverSourceAltitude = 0.6
	riverStepCap        = 500
)

// HydrologyEngine carves rivers into an already-built grid by walking
// steepest-descent paths from high ground.
type HydrologyEngine struct {
	rng *rand.Rand
}

// NewHydrologyEngine derives the river random stream from the master seed.
func NewHydrologyEngine(seed int64) *HydrologyEngine {
	return &HydrologyEngine{rng: mathx.SeededRNG(mathx.SeedFromLabel(seed, "rivers"))}
}

// CarveRivers attempts up to 3x numRivers walks and commits the first
// numRivers paths of at least minLength. A walk starts at a random tile
// with altitude >= 0.6 and greedily steps to its lowest unvisited
// 8-neighbor, aborting silently on a cycle, a dead end or the step cap,
// and stopping when it reaches water. Committed tiles get the river flag,
// full flow and a full water resource; the path's length counts the water
// tile it drains into, but only land tiles are marked. Returns the number
// of rivers committed.
func (h *HydrologyEngine) CarveRivers(grid *Grid, altitude [][]float64, numRivers, minLength int) int {
	if grid == nil || numRivers <= 0 {
		return 0
	}

	carved := 0
	for attempt := 0; attempt < numRivers*3 && carved < numRivers; attempt++ {
		x := h.rng.IntN(grid.Width)
		y := h.rng.IntN(grid.Height)
		if altitude[y][x] < riverSourceAltitude {
			continue
		}

		path := h.walkDownhill(grid, altitude, x, y)
		if len(path) < minLength {
			continue
		}

		for _, p := range path {
			tile := grid.TileRef(p[0], p[1])
			if tile.IsWater {
				continue
			}
			tile.IsRiver = true
			tile.RiverFlow = 1.0
			tile.Resources[ResourceWater] = 100.0
			tile.CalculateFertility()
		}
		carved++
	}
	return carved
}

func (h *HydrologyEngine) walkDownhill(grid *Grid, altitude [][]float64, x, y int) [][2]int {
	visited := make(map[[2]int]bool)
	var path [][2]int

	for step := 0; step < riverStepCap; step++ {
		pos := [2]int{x, y}
		if visited[pos] {
			break // cycle
		}
		visited[pos] = true
		path = append(path, pos)

		tile, _ := grid.Tile(x, y)
		if tile.IsWater {
			break
		}

		nextX, nextY, found := x, y, false
		lowest := 0.0
		for _, off := range [8][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}} {
			nx, ny := x+off[0], y+off[1]
			if nx < 0 || ny < 0 || nx >= grid.Width || ny >= grid.Height {
				continue
			}
			if visited[[2]int{nx, ny}] {
				continue
			}
			if !found || altitude[ny][nx] < lowest {
				nextX, nextY, lowest = nx, ny, altitude[ny][nx]
				found = true
			}
		}
		if !found {
			break // dead end
		}
		x, y = nextX, nextY
	}
	return path
}
