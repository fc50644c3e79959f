package flood

import (
	"fmt"
	"image/color"
	"strings"

	"floodcross/internal/core"
)

// Theme selects the colour scheme used to draw the grid.
type Theme uint8

const (
	ThemeLight Theme = iota
	ThemeDark
)

func (t Theme) String() string {
	if t == ThemeDark {
		return "dark"
	}
	return "light"
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme accepts "light" or "dark", case-insensitively.
func ParseTheme(s string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return ThemeLight, nil
	case "dark":
		return ThemeDark, nil
	}
	return ThemeLight, fmt.Errorf("flood: unknown theme %q", s)
}

var (
	lightPalette = []color.RGBA{
		uint8(core.Land):  {R: 126, G: 190, B: 92, A: 255},
		uint8(core.Water): {R: 64, G: 142, B: 222, A: 255},
	}
	darkPalette = []color.RGBA{
		uint8(core.Land):  {R: 62, G: 118, B: 58, A: 255},
		uint8(core.Water): {R: 28, G: 70, B: 150, A: 255},
	}
)

// Palette maps display values from Engine.Cells to colours.
func Palette(t Theme) []color.RGBA {
	if t == ThemeDark {
		return darkPalette
	}
	return lightPalette
}

// Background is the colour drawn between cells and behind the HUD.
func Background(t Theme) color.RGBA {
	if t == ThemeDark {
		return color.RGBA{R: 22, G: 24, B: 30, A: 255}
	}
	return color.RGBA{R: 240, G: 240, B: 235, A: 255}
}

// Foreground is the text colour for the theme.
func Foreground(t Theme) color.RGBA {
	if t == ThemeDark {
		return color.RGBA{R: 220, G: 220, B: 230, A: 255}
	}
	return color.RGBA{R: 30, G: 30, B: 36, A: 255}
}

// RouteColor is used to draw the crossing route overlay.
func RouteColor(t Theme) color.RGBA {
	if t == ThemeDark {
		return color.RGBA{R: 250, G: 200, B: 80, A: 255}
	}
	return color.RGBA{R: 200, G: 60, B: 40, A: 255}
}

// Format renders g as text: '.' for land, '~' for water and '*' for land
// cells on route.
func Format(g *core.Grid, route []core.Coordinate) string {
	onRoute := make(map[core.Coordinate]bool, len(route))
	for _, c := range route {
		onRoute[c] = true
	}
	var b strings.Builder
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			pos := core.Coordinate{Row: r, Col: c}
			switch {
			case g.At(pos) == core.Water:
				b.WriteByte('~')
			case onRoute[pos]:
				b.WriteByte('*')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
