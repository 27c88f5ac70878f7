// Package render turns a generated planet into images and terminal maps.
package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/appengine-ltd/terraforge/internal/world"
)

// Layer selects which per-tile property a map displays.
type Layer uint8

const (
	LayerBiomes Layer = iota
	LayerAltitude
	LayerTemperature
	LayerHumidity
	LayerPlates
	LayerResources
	numLayers
)

func (l Layer) String() string {
	switch l {
	case LayerBiomes:
		return "biomes"
	case LayerAltitude:
		return "altitude"
	case LayerTemperature:
		return "temperature"
	case LayerHumidity:
		return "humidity"
	case LayerPlates:
		return "plates"
	case LayerResources:
		return "resources"
	default:
		return "unknown"
	}
}

// Layers lists every renderable layer.
func Layers() []Layer {
	layers := make([]Layer, 0, numLayers)
	for l := Layer(0); l < numLayers; l++ {
		layers = append(layers, l)
	}
	return layers
}

// ResolveLayer matches a human-typed layer name, falling back to the
// closest name by edit distance. Errors when nothing is near enough.
func ResolveLayer(name string) (Layer, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	if norm == "" {
		return LayerBiomes, fmt.Errorf("empty layer name")
	}

	best := LayerBiomes
	bestDist := -1
	for _, l := range Layers() {
		if l.String() == norm {
			return l, nil
		}
		dist := levenshtein.ComputeDistance(norm, l.String())
		if bestDist < 0 || dist < bestDist {
			best = l
			bestDist = dist
		}
	}
	if bestDist*3 <= len(norm) {
		return best, nil
	}
	return LayerBiomes, fmt.Errorf("unknown layer %q", name)
}

// plate colors cycle through a fixed palette.
var platePalette = []color.RGBA{
	{R: 204, G: 68, B: 68, A: 255},
	{R: 68, G: 136, B: 204, A: 255},
	{R: 68, G: 170, B: 85, A: 255},
	{R: 204, G: 170, B: 68, A: 255},
	{R: 153, G: 85, B: 187, A: 255},
	{R: 68, G: 187, B: 187, A: 255},
	{R: 204, G: 119, B: 51, A: 255},
	{R: 136, G: 136, B: 136, A: 255},
}

// TileColor maps one tile to a display color for the given layer.
func TileColor(tile world.Tile, layer Layer) color.RGBA {
	switch layer {
	case LayerAltitude:
		return grayscale(tile.Altitude)
	case LayerTemperature:
		return heat(tile.Temperature)
	case LayerHumidity:
		return moisture(tile.Humidity)
	case LayerPlates:
		if tile.PlateID == world.NoPlate {
			return color.RGBA{R: 32, G: 32, B: 32, A: 255}
		}
		c := platePalette[tile.PlateID%len(platePalette)]
		if tile.IsPlateBoundary {
			return color.RGBA{R: 255, G: 255, B: 255, A: 255}
		}
		return c
	case LayerResources:
		return resourceColor(tile)
	default:
		if tile.IsRiver {
			return color.RGBA{R: 64, G: 120, B: 228, A: 255}
		}
		return world.Definition(tile.Biome).Color
	}
}

func grayscale(v float64) color.RGBA {
	g := uint8(clamp01(v) * 255)
	return color.RGBA{R: g, G: g, B: g, A: 255}
}

// heat fades blue through white to red.
func heat(v float64) color.RGBA {
	v = clamp01(v)
	if v < 0.5 {
		t := v * 2
		return color.RGBA{R: uint8(t * 255), G: uint8(t * 255), B: 255, A: 255}
	}
	t := (v - 0.5) * 2
	return color.RGBA{R: 255, G: uint8((1 - t) * 255), B: uint8((1 - t) * 255), A: 255}
}

func moisture(v float64) color.RGBA {
	v = clamp01(v)
	return color.RGBA{R: uint8((1 - v) * 200), G: uint8(120 + v*60), B: uint8(150 + v*105), A: 255}
}

// resourceColor brightens with total mineral wealth.
func resourceColor(tile world.Tile) color.RGBA {
	if tile.IsWater {
		return color.RGBA{R: 20, G: 40, B: 80, A: 255}
	}
	total := 0.0
	for _, kind := range []world.ResourceKind{
		world.ResourceMinerals, world.ResourceGold, world.ResourceSilver,
		world.ResourceIron, world.ResourceCopper, world.ResourceUranium,
		world.ResourceCoal, world.ResourceOil, world.ResourceGas, world.ResourceGems,
	} {
		total += tile.Resources[kind]
	}
	v := clamp01(total / 200)
	return color.RGBA{R: uint8(60 + v*195), G: uint8(50 + v*150), B: 40, A: 255}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
