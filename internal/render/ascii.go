package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/appengine-ltd/terraforge/internal/world"
)

// glyphFor picks a terrain character for the biome layer.
func glyphFor(tile world.Tile) string {
	switch {
	case tile.IsRiver:
		return "~"
	case tile.IsWater:
		return "≈"
	case tile.Altitude >= 0.85:
		return "▲"
	case tile.Altitude >= 0.65:
		return "^"
	default:
		return "·"
	}
}

// ASCIIMap renders the grid as colored terminal rows, sampling columns
// and rows down to maxWidth when the grid is wider.
func ASCIIMap(grid *world.Grid, layer Layer, maxWidth int) string {
	if grid == nil {
		return ""
	}
	if maxWidth < 1 || maxWidth > grid.Width {
		maxWidth = grid.Width
	}
	step := grid.Width / maxWidth
	if step < 1 {
		step = 1
	}

	var sb strings.Builder
	for y := 0; y < grid.Height; y += step {
		for x := 0; x < grid.Width; x += step {
			tile, _ := grid.Tile(x, y)
			c := TileColor(tile, layer)
			style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))

			glyph := "█"
			if layer == LayerBiomes {
				glyph = glyphFor(tile)
			}
			sb.WriteString(style.Render(glyph))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// Legend lists each biome's glyph color and display name for the
// terminal map footer.
func Legend() string {
	var sb strings.Builder
	for _, b := range world.BiomeTypes() {
		def := world.Definition(b)
		c := def.Color
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)))
		sb.WriteString(style.Render("■"))
		sb.WriteString(" " + def.Name + "  ")
	}
	return sb.String()
}
