//go:build ebiten

package ui

import (
	"image/color"

	"floodcross/internal/core"
	"floodcross/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type routeProvider interface {
	Route() []core.Coordinate
}

// Overlay draws the current crossing route on top of the grid.
type Overlay struct {
	sim       routeProvider
	showRoute bool
	color     color.Color
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim routeProvider) *Overlay {
	return &Overlay{sim: sim, color: color.RGBA{R: 200, G: 60, B: 40, A: 255}}
}

// SetColor changes the route colour.
func (o *Overlay) SetColor(c color.Color) { o.color = c }

// Visible reports whether the route is drawn.
func (o *Overlay) Visible() bool { return o.showRoute }

// Update toggles the route with the P key.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		o.showRoute = !o.showRoute
	}
}

// Draw strokes the route through the centres of its cells.
func (o *Overlay) Draw(screen *ebiten.Image, l render.Layout, originX, originY float64) {
	if !o.showRoute || o.sim == nil {
		return
	}
	route := o.sim.Route()
	if len(route) == 0 {
		return
	}
	width := float32(l.CellPx) / 5
	if width < 2 {
		width = 2
	}
	px, py := l.CellCenter(route[0].Row, route[0].Col)
	vector.DrawFilledCircle(screen, float32(originX+px), float32(originY+py), width, o.color, true)
	for _, c := range route[1:] {
		x, y := l.CellCenter(c.Row, c.Col)
		vector.StrokeLine(screen,
			float32(originX+px), float32(originY+py),
			float32(originX+x), float32(originY+y),
			width, o.color, true)
		px, py = x, y
	}
	vector.DrawFilledCircle(screen, float32(originX+px), float32(originY+py), width, o.color, true)
}
