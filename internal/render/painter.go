//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps one RGBA image of the grid and refreshes it from cell data.
type GridPainter struct {
	layout Layout
	img    *ebiten.Image
	buf    []byte
}

// NewGridPainter allocates a painter for the given layout.
func NewGridPainter(l Layout) *GridPainter {
	w, h := l.ImageSize()
	return &GridPainter{layout: l, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Layout returns the geometry the painter draws with.
func (gp *GridPainter) Layout() Layout { return gp.layout }

// Blit uploads cells into the painter image and draws it at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, cells []uint8, palette []color.RGBA, bg color.RGBA, x, y float64) {
	if len(cells) != gp.layout.Rows*gp.layout.Cols {
		return
	}
	fillCellsRGBA(gp.buf, cells, gp.layout, palette, bg)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.layout.ImageSize() }
