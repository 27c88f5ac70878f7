package render

import (
	"fmt"

	"github.com/fogleman/gg"

	"github.com/appengine-ltd/terraforge/internal/world"
)

// ExportPNG draws the grid at pixelSize pixels per tile and writes a PNG.
func ExportPNG(path string, grid *world.Grid, layer Layer, pixelSize int) error {
	if grid == nil {
		return fmt.Errorf("nil grid")
	}
	if pixelSize < 1 {
		pixelSize = 1
	}

	dc := gg.NewContext(grid.Width*pixelSize, grid.Height*pixelSize)
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			tile, _ := grid.Tile(x, y)
			c := TileColor(tile, layer)
			dc.SetRGB255(int(c.R), int(c.G), int(c.B))
			dc.DrawRectangle(float64(x*pixelSize), float64(y*pixelSize), float64(pixelSize), float64(pixelSize))
			dc.Fill()
		}
	}
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
