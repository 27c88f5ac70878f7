package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/appengine-ltd/terraforge/internal/planet"
	"github.com/appengine-ltd/terraforge/internal/render"
	"github.com/appengine-ltd/terraforge/internal/tectonics"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var (
		showVersion bool
		width       int
		height      int
		seed        int64
		island      bool
		rivers      int
		plates      int
		years       int
		month       int
		out         string
		layerName   string
		ascii       bool
		pixelSize   int
	)

	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.IntVar(&width, "width", 100, "world width in tiles")
	flag.IntVar(&height, "height", 100, "world height in tiles")
	flag.Int64Var(&seed, "seed", 0, "master seed (0 draws a random one)")
	flag.BoolVar(&island, "island", false, "sink terrain toward the map edges")
	flag.IntVar(&rivers, "rivers", 5, "rivers to carve")
	flag.IntVar(&plates, "plates", 6, "tectonic plates")
	flag.IntVar(&years, "years", 10, "years of geological events to simulate")
	flag.IntVar(&month, "month", 3, "starting month, 1-12")
	flag.StringVar(&out, "out", "", "write a PNG of the world to this path")
	flag.StringVar(&layerName, "layer", "biomes", "layer to render: biomes, altitude, temperature, humidity, plates, resources")
	flag.BoolVar(&ascii, "ascii", false, "print a terminal map")
	flag.IntVar(&pixelSize, "pixel-size", 4, "pixels per tile in PNG export")
	flag.Parse()

	if showVersion {
		fmt.Printf("Terraforge %s (%s) %s\n", version, commit, date)
		return
	}

	if err := run(width, height, seed, island, rivers, plates, years, month, out, layerName, ascii, pixelSize); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(width, height int, seed int64, island bool, rivers, plates, years, month int, out, layerName string, ascii bool, pixelSize int) error {
	layer, err := render.ResolveLayer(layerName)
	if err != nil {
		return err
	}

	opts := planet.Options{
		Width:         width,
		Height:        height,
		Seed:          seed,
		IslandMode:    island,
		NumRivers:     rivers,
		NumPlates:     plates,
		TectonicYears: years,
	}
	p, err := planet.Generate(opts)
	if err != nil {
		return err
	}
	p.Climate().SetMonth(month)
	p.Climate().ComputeWeather(p.Grid())
	p.Climate().SimulateWaterCycle(p.Grid())

	printSummary(p)

	if ascii {
		fmt.Println(render.ASCIIMap(p.Grid(), layer, 120))
	}
	if out != "" {
		if err := render.ExportPNG(out, p.Grid(), layer, pixelSize); err != nil {
			return err
		}
		fmt.Printf("wrote %s layer to %s\n", layer, out)
	}
	return nil
}

func printSummary(p *planet.Planet) {
	s := p.Summarize()

	fmt.Printf("seed %d: %dx%d world\n", s.Seed, p.Grid().Width, p.Grid().Height)
	fmt.Printf("  land %.1f%%  water %.1f%%  rivers carved %d\n",
		s.World.LandPercentage, s.World.WaterPercentage, s.Rivers)
	fmt.Printf("  fertile land %.1f%%  hostile land %.1f%%\n",
		s.World.FertilePercentage, s.World.HostilePercentage)
	fmt.Printf("  plates %d (%d oceanic, %d continental), boundaries %d, events %d\n",
		s.Plates.TotalPlates, s.Plates.OceanicPlates, s.Plates.ContinentalPlts,
		s.Plates.TotalBoundaries, s.Plates.TotalEvents)
	fmt.Printf("  season %s (month %d), avg temp %.1fC, avg precip %.0f mm\n",
		s.Climate.Season, s.Climate.Month, s.Climate.AvgTemperature, s.Climate.AvgPrecipitation)

	for _, event := range p.Tectonics().Events() {
		if event.Type != tectonics.EventEarthquake {
			fmt.Printf("  year %d: %s at (%d,%d)\n", event.Year, event.Description, event.X, event.Y)
		}
	}
}
