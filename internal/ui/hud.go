//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"floodcross/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding   = 12
	lineHeight     = 18
	headerBaseline = 14
	controlHeight  = 24
	buttonSize     = 18
	buttonGap      = 6
	actionHeight   = 22
	actionWidth    = 110
)

// HUD renders the status and control panel to the right of the grid.
type HUD struct {
	width  int
	source core.ParameterSource

	panel      *ebiten.Image
	lastHeight int

	status   Status
	controls []hudControlState
	actions  []hudAction
	offsetX  int

	fg, bg color.Color
}

type hudControlState struct {
	control core.ParameterControl
	value   string
	intVal  int
	boolVal bool

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

type hudAction struct {
	action Action
	label  string
	rect   image.Rectangle
}

// NewHUD constructs a HUD panel of the given width editing source.
func NewHUD(source core.ParameterSource, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{width: width, source: source, fg: color.White, bg: color.Black}
	for _, ctrl := range source.ParameterControls() {
		h.controls = append(h.controls, hudControlState{control: ctrl, value: "--"})
	}
	for _, l := range actionLabels {
		h.actions = append(h.actions, hudAction{action: l.action, label: l.label})
	}
	h.layout()
	return h
}

// SetColors changes the text and background colours.
func (h *HUD) SetColors(fg, bg color.Color) {
	h.fg, h.bg = fg, bg
}

// Update refreshes the panel state and handles clicks. panelOffsetX is the
// screen x of the panel's left edge.
func (h *HUD) Update(status Status, panelOffsetX int) Action {
	if h == nil {
		return ActionNone
	}
	h.status = status
	h.offsetX = panelOffsetX
	h.refreshControlValues()
	return h.handleInput()
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(h.bg)
	h.drawStatus()
	h.drawControls()
	h.drawActions()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) layout() {
	top := panelPadding + (StatusLines+1)*lineHeight
	for i := range h.controls {
		state := &h.controls[i]
		state.top = top
		right := h.width - panelPadding
		state.plusRect = image.Rect(right-buttonSize, top, right, top+buttonSize)
		state.minusRect = image.Rect(right-2*buttonSize-buttonGap, top, right-buttonSize-buttonGap, top+buttonSize)
		top += controlHeight
	}
	top += lineHeight
	for i := range h.actions {
		col := i % 2
		row := i / 2
		x := panelPadding + col*(actionWidth+buttonGap)
		y := top + row*(actionHeight+buttonGap)
		h.actions[i].rect = image.Rect(x, y, x+actionWidth, y+actionHeight)
	}
}

func (h *HUD) refreshControlValues() {
	snap := h.source.Parameters()
	for i := range h.controls {
		state := &h.controls[i]
		param, ok := snap.Lookup(state.control.Key)
		if !ok {
			state.value = "--"
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			v, err := strconv.Atoi(param.Value)
			if err != nil {
				state.value = "--"
				continue
			}
			state.intVal = v
			state.value = strconv.Itoa(v)
		case core.ParamTypeBool:
			v, err := strconv.ParseBool(param.Value)
			if err != nil {
				state.value = "--"
				continue
			}
			state.boolVal = v
			state.value = "off"
			if v {
				state.value = "on"
			}
		}
	}
}

func (h *HUD) handleInput() Action {
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return ActionNone
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.offsetX {
		return ActionNone
	}
	p := image.Pt(mx-h.offsetX, my)
	for i := range h.controls {
		state := &h.controls[i]
		switch {
		case p.In(state.minusRect):
			h.adjust(state, -1)
			return ActionNone
		case p.In(state.plusRect):
			h.adjust(state, 1)
			return ActionNone
		}
	}
	for _, a := range h.actions {
		if p.In(a.rect) {
			return a.action
		}
	}
	return ActionNone
}

func (h *HUD) adjust(state *hudControlState, direction int) {
	switch state.control.Type {
	case core.ParamTypeInt:
		step := state.control.Step
		if step <= 0 {
			step = 1
		}
		target := state.control.Clamp(state.intVal + direction*step)
		if target != state.intVal && h.source.SetIntParameter(state.control.Key, target) {
			state.intVal = target
			state.value = strconv.Itoa(target)
		}
	case core.ParamTypeBool:
		want := direction > 0
		if want != state.boolVal && h.source.SetBoolParameter(state.control.Key, want) {
			state.boolVal = want
		}
	}
}

func (h *HUD) drawStatus() {
	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	for _, line := range h.status.Lines() {
		text.Draw(h.panel, line, face, panelPadding, y, h.fg)
		y += lineHeight
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	for i := range h.controls {
		state := &h.controls[i]
		baseline := state.top + headerBaseline
		text.Draw(h.panel, state.control.Label, face, panelPadding, baseline, h.fg)
		bounds := text.BoundString(face, state.value)
		valueX := state.minusRect.Min.X - buttonGap - bounds.Dx()
		text.Draw(h.panel, state.value, face, valueX, baseline, h.fg)
		h.drawButton(state.minusRect, "-")
		h.drawButton(state.plusRect, "+")
	}
	if h.status.Pending {
		y := h.controls[len(h.controls)-1].top + controlHeight + headerBaseline
		text.Draw(h.panel, "Apply to rebuild the grid", face, panelPadding, y, h.fg)
	}
}

func (h *HUD) drawActions() {
	for _, a := range h.actions {
		h.drawButton(a.rect, a.label)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	x, y := float32(rect.Min.X), float32(rect.Min.Y)
	w, ht := float32(rect.Dx()), float32(rect.Dy())
	vector.StrokeRect(h.panel, x, y, w, ht, 1, h.fg, false)
	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	tx := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	ty := rect.Min.Y + (rect.Dy()+bounds.Dy())/2 - 1
	text.Draw(h.panel, label, face, tx, ty, h.fg)
}
