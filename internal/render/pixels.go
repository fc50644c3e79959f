package render

import "image/color"

// Layout places cells of cellPx pixels on a grid with gapPx pixels of
// background around and between them.
type Layout struct {
	Rows, Cols int
	CellPx     int
	GapPx      int
}

// Pitch is the distance between the origins of neighbouring cells.
func (l Layout) Pitch() int { return l.CellPx + l.GapPx }

// ImageSize returns the pixel dimensions of the whole grid image.
func (l Layout) ImageSize() (w, h int) {
	return l.Cols*l.Pitch() + l.GapPx, l.Rows*l.Pitch() + l.GapPx
}

// CellOrigin returns the top-left pixel of cell (row, col).
func (l Layout) CellOrigin(row, col int) (x, y int) {
	return l.GapPx + col*l.Pitch(), l.GapPx + row*l.Pitch()
}

// CellCenter returns the centre of cell (row, col) in pixels.
func (l Layout) CellCenter(row, col int) (x, y float64) {
	ox, oy := l.CellOrigin(row, col)
	half := float64(l.CellPx) / 2
	return float64(ox) + half, float64(oy) + half
}

// fillCellsRGBA paints cells into buf using palette, with bg in the gaps.
// Cell values past the end of the palette use its last entry. buf must hold
// 4*w*h bytes for the layout's ImageSize.
func fillCellsRGBA(buf []byte, cells []uint8, l Layout, palette []color.RGBA, bg color.RGBA) {
	w, h := l.ImageSize()
	for i := 0; i < w*h; i++ {
		putRGBA(buf, i, bg)
	}
	if len(palette) == 0 {
		return
	}
	last := len(palette) - 1
	for idx, c := range cells {
		if idx >= l.Rows*l.Cols {
			break
		}
		v := int(c)
		if v > last {
			v = last
		}
		col := palette[v]
		ox, oy := l.CellOrigin(idx/l.Cols, idx%l.Cols)
		for y := oy; y < oy+l.CellPx; y++ {
			for x := ox; x < ox+l.CellPx; x++ {
				putRGBA(buf, y*w+x, col)
			}
		}
	}
}

func putRGBA(buf []byte, pixel int, c color.RGBA) {
	base := pixel * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}
