package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutGeometry(t *testing.T) {
	l := Layout{Rows: 2, Cols: 3, CellPx: 30, GapPx: 2}
	w, h := l.ImageSize()
	assert.Equal(t, 3*32+2, w)
	assert.Equal(t, 2*32+2, h)

	x, y := l.CellOrigin(1, 2)
	assert.Equal(t, 2+2*32, x)
	assert.Equal(t, 2+32, y)

	cx, cy := l.CellCenter(0, 0)
	assert.Equal(t, 17.0, cx)
	assert.Equal(t, 17.0, cy)
}

func TestFillCellsRGBA(t *testing.T) {
	land := color.RGBA{R: 10, G: 200, B: 10, A: 255}
	water := color.RGBA{R: 10, G: 10, B: 200, A: 255}
	bg := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	l := Layout{Rows: 1, Cols: 2, CellPx: 2, GapPx: 1}
	w, h := l.ImageSize()
	require.Equal(t, 7, w)
	require.Equal(t, 4, h)

	buf := make([]byte, 4*w*h)
	fillCellsRGBA(buf, []uint8{0, 5}, l, []color.RGBA{land, water}, bg)

	at := func(x, y int) color.RGBA {
		i := (y*w + x) * 4
		return color.RGBA{R: buf[i], G: buf[i+1], B: buf[i+2], A: buf[i+3]}
	}
	assert.Equal(t, bg, at(0, 0))
	assert.Equal(t, land, at(1, 1))
	assert.Equal(t, land, at(2, 2))
	assert.Equal(t, bg, at(3, 1), "gap between cells")
	assert.Equal(t, water, at(4, 1), "values past the palette use its last colour")
	assert.Equal(t, water, at(5, 2))
	assert.Equal(t, bg, at(6, 3))
}

func TestFillCellsRGBAEmptyPalette(t *testing.T) {
	bg := color.RGBA{R: 9, A: 255}
	l := Layout{Rows: 1, Cols: 1, CellPx: 1, GapPx: 0}
	buf := make([]byte, 4)
	fillCellsRGBA(buf, []uint8{1}, l, nil, bg)
	assert.Equal(t, []byte{9, 0, 0, 255}, buf)
}
