package planet

import (
	"testing"

	"github.com/appengine-ltd/terraforge/internal/world"
)

func TestGenerateDeterministicForSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 10
	opts.Height = 10
	opts.Seed = 12345

	first, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	second, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			a, _ := first.Grid().Tile(x, y)
			b, _ := second.Grid().Tile(x, y)
			if a != b {
				t.Fatalf("tile (%d,%d) differs between identical runs", x, y)
			}
		}
	}

	firstEvents := first.Tectonics().Events()
	secondEvents := second.Tectonics().Events()
	if len(firstEvents) != len(secondEvents) {
		t.Fatalf("event logs differ: %d vs %d", len(firstEvents), len(secondEvents))
	}
	for i := range firstEvents {
		if firstEvents[i] != secondEvents[i] {
			t.Fatalf("event %d differs between identical runs", i)
		}
	}
}

func TestGeneratePartitionsEveryTile(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 20
	opts.Height = 20
	opts.Seed = 777
	opts.NumPlates = 4

	p, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	plates := p.Tectonics().Plates()
	if len(plates) != 4 {
		t.Fatalf("expected 4 plates, got %d", len(plates))
	}
	total := 0
	for _, plate := range plates {
		total += len(plate.Tiles)
	}
	if total != 400 {
		t.Fatalf("plates own %d tiles, expected exactly 400", total)
	}

	p.Grid().EachRef(func(tile *world.Tile) {
		if tile.PlateID == world.NoPlate {
			t.Fatalf("tile (%d,%d) unassigned after generation", tile.X, tile.Y)
		}
		if tile.Biome == world.BiomeNone {
			t.Fatalf("tile (%d,%d) unclassified after generation", tile.X, tile.Y)
		}
	})
}

func TestGenerateRecordsDrawnSeed(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 8
	opts.Height = 8

	p, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Seed() == 0 {
		t.Fatalf("zero seed should be replaced with a drawn one")
	}

	// Replaying the recorded seed reproduces the planet.
	opts.Seed = p.Seed()
	replay, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			a, _ := p.Grid().Tile(x, y)
			b, _ := replay.Grid().Tile(x, y)
			if a != b {
				t.Fatalf("replay of recorded seed differs at (%d,%d)", x, y)
			}
		}
	}
}

func TestGenerateValidatesOptions(t *testing.T) {
	cases := []Options{
		{Width: 0, Height: 10, NumPlates: 4},
		{Width: 10, Height: -1, NumPlates: 4},
		{Width: 10, Height: 10, NumPlates: 0},
		{Width: 10, Height: 10, NumPlates: 4, NumRivers: -1},
		{Width: 10, Height: 10, NumPlates: 4, TectonicYears: -5},
	}
	for i, opts := range cases {
		if _, err := Generate(opts); err == nil {
			t.Fatalf("case %d: expected validation error", i)
		}
	}
}

func TestAdvanceSeasonRecomputesWeather(t *testing.T) {
	opts := DefaultOptions()
	opts.Width = 12
	opts.Height = 12
	opts.Seed = 9

	p, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	before, ok := p.Climate().Weather(6, 0)
	if !ok {
		t.Fatalf("no weather after generation")
	}

	// Three advances move spring into summer at the poles.
	for i := 0; i < 3; i++ {
		p.AdvanceSeason()
	}
	after, ok := p.Climate().Weather(6, 0)
	if !ok {
		t.Fatalf("no weather after season advance")
	}
	if after.Temperature <= before.Temperature {
		t.Fatalf("polar summer %.1fC should beat spring %.1fC", after.Temperature, before.Temperature)
	}

	summary := p.Summarize()
	if summary.Seed != 9 || summary.World.TotalTiles != 144 {
		t.Fatalf("summary inconsistent: seed %d, tiles %d", summary.Seed, summary.World.TotalTiles)
	}
}
