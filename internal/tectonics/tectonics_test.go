package tectonics

import (
	"math"
	"testing"

	"github.com/appengine-ltd/terraforge/internal/world"
)

func TestGeneratePlatesPartitionsEveryTile(t *testing.T) {
	engine, err := NewEngine(20, 20, 42)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.GeneratePlates(4); err != nil {
		t.Fatalf("GeneratePlates: %v", err)
	}

	plates := engine.Plates()
	if len(plates) != 4 {
		t.Fatalf("expected 4 plates, got %d", len(plates))
	}

	total := 0
	for _, p := range plates {
		total += len(p.Tiles)
		if p.Speed() < 2.0 || p.Speed() > 10.0 {
			t.Fatalf("plate %d speed %.2f outside [2, 10]", p.ID, p.Speed())
		}
		if p.Age < 50 || p.Age > 200 {
			t.Fatalf("plate %d age %d outside [50, 200]", p.ID, p.Age)
		}
	}
	if total != 400 {
		t.Fatalf("plates own %d tiles, expected exactly 400", total)
	}

	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			plate, ok := engine.PlateAt(x, y)
			if !ok || plate == nil {
				t.Fatalf("tile (%d,%d) unowned", x, y)
			}
			if !plate.Tiles[[2]int{x, y}] {
				t.Fatalf("plate %d does not list its tile (%d,%d)", plate.ID, x, y)
			}
		}
	}
}

func TestGeneratePlatesDeterministic(t *testing.T) {
	build := func() []int {
		engine, err := NewEngine(16, 16, 7)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		if err := engine.GeneratePlates(5); err != nil {
			t.Fatalf("GeneratePlates: %v", err)
		}
		owners := make([]int, 0, 256)
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				plate, _ := engine.PlateAt(x, y)
				owners = append(owners, plate.ID)
			}
		}
		return owners
	}

	first := build()
	second := build()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("ownership differs at index %d: %d vs %d", i, first[i], second[i])
		}
	}
}

func TestGeneratePlatesRejectsBadCount(t *testing.T) {
	engine, err := NewEngine(8, 8, 1)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.GeneratePlates(0); err == nil {
		t.Fatalf("expected error for zero plates")
	}
}

func TestDetectBoundariesSeparateOwners(t *testing.T) {
	engine, err := NewEngine(24, 24, 99)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.GeneratePlates(6); err != nil {
		t.Fatalf("GeneratePlates: %v", err)
	}
	engine.DetectBoundaries()

	boundaries := engine.Boundaries()
	if len(boundaries) == 0 {
		t.Fatalf("6 plates on a 24x24 grid must touch somewhere")
	}
	for _, b := range boundaries {
		if b.Plate1ID >= b.Plate2ID {
			t.Fatalf("boundary pair not ordered: %d >= %d", b.Plate1ID, b.Plate2ID)
		}
		if b.ActivityLevel < 0 || b.ActivityLevel > 1 {
			t.Fatalf("boundary %d-%d activity %.2f outside [0, 1]", b.Plate1ID, b.Plate2ID, b.ActivityLevel)
		}
		if len(b.Tiles) == 0 {
			t.Fatalf("boundary %d-%d has no tiles", b.Plate1ID, b.Plate2ID)
		}
		for _, pos := range b.Tiles {
			owner, _ := engine.PlateAt(pos[0], pos[1])
			if owner.ID != b.Plate1ID && owner.ID != b.Plate2ID {
				t.Fatalf("boundary %d-%d claims tile (%d,%d) owned by plate %d",
					b.Plate1ID, b.Plate2ID, pos[0], pos[1], owner.ID)
			}
		}
	}
}

func TestToroidalSeamDetected(t *testing.T) {
	engine, err := NewEngine(10, 4, 1)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	// Hand-build two vertical strips; the east and west edges touch
	// across the wrap.
	engine.plateMap = make([]int, 40)
	for y := 0; y < 4; y++ {
		for x := 0; x < 10; x++ {
			id := 0
			if x >= 5 {
				id = 1
			}
			engine.plateMap[y*10+x] = id
		}
	}
	engine.plates = map[int]*TectonicPlate{
		0: {ID: 0, Type: PlateOceanic, VelocityX: 5, Tiles: map[[2]int]bool{}},
		1: {ID: 1, Type: PlateContinental, VelocityX: -5, Tiles: map[[2]int]bool{}},
	}
	engine.DetectBoundaries()

	boundaries := engine.Boundaries()
	if len(boundaries) != 1 {
		t.Fatalf("expected one boundary pair, got %d", len(boundaries))
	}
	seam := false
	for _, pos := range boundaries[0].Tiles {
		if pos[0] == 0 || pos[0] == 9 {
			seam = true
		}
	}
	if !seam {
		t.Fatalf("wrap seam at x=0/x=9 not detected")
	}
}

func TestClassifyBoundaryThresholds(t *testing.T) {
	plate := func(speed, direction float64) *TectonicPlate {
		return &TectonicPlate{
			VelocityX: speed * math.Cos(direction),
			VelocityY: speed * math.Sin(direction),
		}
	}

	// Near-parallel, slow: transform.
	if got := classifyBoundary(plate(5, 0), plate(4, 0.1)); got != BoundaryTransform {
		t.Fatalf("slow parallel: expected transform, got %s", got)
	}
	// Near-parallel, fast: divergent.
	if got := classifyBoundary(plate(9, 0), plate(9, 0.45)); got != BoundaryDivergent {
		t.Fatalf("fast parallel: expected divergent, got %s", got)
	}
	// Anti-parallel, fast: convergent.
	if got := classifyBoundary(plate(9, 0), plate(9, math.Pi*0.95)); got != BoundaryConvergent {
		t.Fatalf("fast anti-parallel: expected convergent, got %s", got)
	}
	// Perpendicular headings are transform regardless of speed.
	if got := classifyBoundary(plate(9, 0), plate(9, math.Pi/2)); got != BoundaryTransform {
		t.Fatalf("perpendicular: expected transform, got %s", got)
	}
}

func TestSimulateContinentalCollisionBuildsMountains(t *testing.T) {
	engine, err := NewEngine(8, 8, 11)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	engine.plates = map[int]*TectonicPlate{
		0: {ID: 0, Type: PlateContinental, VelocityX: 9},
		1: {ID: 1, Type: PlateContinental, VelocityX: -9},
	}
	engine.boundaries = []*PlateBoundary{{
		Plate1ID:      0,
		Plate2ID:      1,
		Type:          BoundaryConvergent,
		Tiles:         [][2]int{{4, 4}},
		ActivityLevel: 1.0,
	}}

	grid, err := world.NewGrid(8, 8)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	*grid.TileRef(4, 4) = world.NewTile(4, 4, 0.5, 0.5, 0.5)

	for year := 1; year <= 10; year++ {
		events := engine.Simulate(year, grid)
		// Activity 1.0 fires every year.
		if len(events) != 1 {
			t.Fatalf("year %d: expected 1 event, got %d", year, len(events))
		}
		if events[0].Type != EventMountainBuilding {
			t.Fatalf("year %d: continental collision produced %s", year, events[0].Type)
		}
		if events[0].Year != year {
			t.Fatalf("year %d: event stamped %d", year, events[0].Year)
		}
	}

	tile, _ := grid.Tile(4, 4)
	if tile.Altitude != 1.0 {
		t.Fatalf("10 uplifts of 0.10 from 0.5 should cap at 1.0, got %.2f", tile.Altitude)
	}
	if len(engine.Events()) != 10 {
		t.Fatalf("event log should hold 10 entries, got %d", len(engine.Events()))
	}
}

func TestSimulateDeterministicLog(t *testing.T) {
	run := func() []GeologicalEvent {
		engine, err := NewEngine(24, 24, 5)
		if err != nil {
			t.Fatalf("NewEngine: %v", err)
		}
		if err := engine.GeneratePlates(6); err != nil {
			t.Fatalf("GeneratePlates: %v", err)
		}
		engine.DetectBoundaries()
		for year := 1; year <= 20; year++ {
			engine.Simulate(year, nil)
		}
		return engine.Events()
	}

	first := run()
	second := run()
	if len(first) != len(second) {
		t.Fatalf("event counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("event %d differs between identical runs", i)
		}
	}
}

func TestApplyStampsGrid(t *testing.T) {
	engine, err := NewEngine(12, 12, 3)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.GeneratePlates(3); err != nil {
		t.Fatalf("GeneratePlates: %v", err)
	}
	engine.DetectBoundaries()

	grid, err := world.NewGrid(12, 12)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	engine.Apply(grid)

	boundaryTiles := 0
	grid.EachRef(func(tile *world.Tile) {
		if tile.PlateID == world.NoPlate {
			t.Fatalf("tile (%d,%d) has no plate id", tile.X, tile.Y)
		}
		plate, _ := engine.PlateAt(tile.X, tile.Y)
		if plate.ID != tile.PlateID {
			t.Fatalf("tile (%d,%d) stamped plate %d, engine says %d", tile.X, tile.Y, tile.PlateID, plate.ID)
		}
		if tile.IsPlateBoundary {
			boundaryTiles++
		}
	})
	if boundaryTiles == 0 {
		t.Fatalf("3 plates on 12x12 should mark boundary tiles")
	}
}

func TestStatisticsCounts(t *testing.T) {
	engine, err := NewEngine(20, 20, 8)
	if err != nil {
		t.Fatalf("NewEngine: %v", err)
	}
	if err := engine.GeneratePlates(5); err != nil {
		t.Fatalf("GeneratePlates: %v", err)
	}
	engine.DetectBoundaries()

	stats := engine.Statistics()
	if stats.TotalPlates != 5 {
		t.Fatalf("expected 5 plates, got %d", stats.TotalPlates)
	}
	if stats.OceanicPlates+stats.ContinentalPlts != 5 {
		t.Fatalf("plate type counts do not sum: %d + %d", stats.OceanicPlates, stats.ContinentalPlts)
	}
	if stats.Divergent+stats.Convergent+stats.Transform != stats.TotalBoundaries {
		t.Fatalf("boundary type counts do not sum to %d", stats.TotalBoundaries)
	}
	if stats.AvgPlateSpeed < 2.0 || stats.AvgPlateSpeed > 10.0 {
		t.Fatalf("average plate speed %.2f outside [2, 10]", stats.AvgPlateSpeed)
	}
}
