//go:build ebiten

package app

import (
	"github.com/gologme/log"

	"floodcross/internal/core"
	"floodcross/internal/render"
	"floodcross/internal/sims/flood"
	"floodcross/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 260

// Game adapts a flood engine to the ebiten.Game interface. Everything runs on
// the ebiten update goroutine, so the engine needs no locking here.
type Game struct {
	eng      *flood.Engine
	controls *Controls
	painter  *render.GridPainter
	hud      *ui.HUD
	overlay  *ui.Overlay
	pacer    *core.FixedStep

	theme    flood.Theme
	cellPx   int
	autoplay bool

	log *log.Logger
}

// New constructs a Game for the provided engine.
func New(eng *flood.Engine, cfg *Config, logger *log.Logger) *Game {
	theme, err := flood.ParseTheme(cfg.Theme)
	if err != nil {
		logger.Warnln("Unknown theme", cfg.Theme, "- using light")
	}
	g := &Game{
		eng:      eng,
		controls: NewControls(eng.Config(), cfg.Interval()),
		overlay:  ui.NewOverlay(eng),
		theme:    theme,
		cellPx:   cfg.CellPx,
		log:      logger,
	}
	if g.cellPx <= 0 {
		g.cellPx = 30
	}
	g.pacer = core.NewFixedStep(g.controls.Interval())
	g.hud = ui.NewHUD(g.controls, hudWidth)
	g.applyTheme()
	g.resizePainter()
	return g
}

// WindowSize returns the window size that fits the largest grid and the HUD.
func (g *Game) WindowSize() (int, int) {
	return g.Layout(0, 0)
}

func (g *Game) gridArea() int {
	l := render.Layout{Rows: flood.MaxDimension, Cols: flood.MaxDimension, CellPx: g.cellPx, GapPx: 2}
	w, _ := l.ImageSize()
	return w
}

func (g *Game) resizePainter() {
	size := g.eng.Size()
	g.painter = render.NewGridPainter(render.Layout{Rows: size.Rows, Cols: size.Cols, CellPx: g.cellPx, GapPx: 2})
}

func (g *Game) applyTheme() {
	g.hud.SetColors(flood.Foreground(g.theme), flood.Background(g.theme))
	g.overlay.SetColor(flood.RouteColor(g.theme))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	action := ui.ActionNone
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		action = ui.ActionNextDay
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		action = ui.ActionReset
	case inpututil.IsKeyJustPressed(ebiten.KeyA), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		action = ui.ActionPlay
		if g.autoplay {
			action = ui.ActionPause
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		action = ui.ActionApply
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		action = ui.ActionTheme
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		g.controls.SetBoolParameter("random", !g.controls.Random)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.controls.SetIntParameter("interval_ms", g.controls.IntervalMs-100)
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.controls.SetIntParameter("interval_ms", g.controls.IntervalMs+100)
	}

	p := g.eng.Progress()
	status := ui.Status{
		Day:              p.Day,
		LastCrossableDay: p.LastCrossableDay,
		Text:             p.Status(),
		Autoplay:         g.autoplay,
		IntervalMs:       g.controls.IntervalMs,
		Pending:          g.controls.Pending(g.eng.Config()),
		RouteShown:       g.overlay.Visible(),
		Run:              g.eng.Parameters(),
	}
	if clicked := g.hud.Update(status, g.gridArea()); clicked != ui.ActionNone {
		action = clicked
	}
	g.overlay.Update()
	g.perform(action)

	if g.pacer.Interval() != g.controls.Interval() {
		g.pacer.SetInterval(g.controls.Interval())
	}
	if g.autoplay && g.pacer.ShouldStep() {
		if g.eng.Step().Complete {
			g.autoplay = false
			g.log.Infoln("Autoplay stopped: every cell is flooded")
		}
	}
	return nil
}

func (g *Game) perform(action ui.Action) {
	switch action {
	case ui.ActionNextDay:
		if g.eng.Step().Complete {
			g.autoplay = false
		}
	case ui.ActionReset:
		g.eng.ResetProgress()
	case ui.ActionPlay:
		if !g.eng.Progress().Complete {
			g.autoplay = true
			g.pacer.Reset()
		}
	case ui.ActionPause:
		g.autoplay = false
	case ui.ActionApply:
		g.apply()
	case ui.ActionTheme:
		g.theme = g.theme.Toggle()
		g.applyTheme()
	}
}

// apply rebuilds the grid from the pending controls. Autoplay is cancelled
// first so no tick lands on the new grid.
func (g *Game) apply() {
	g.autoplay = false
	g.pacer.Reset()
	next := g.controls.Config(g.eng.Config())
	if err := next.Validate(); err != nil {
		g.log.Warnln("Not rebuilding:", err)
		return
	}
	g.eng.Rebuild(next.Rows, next.Cols, next.Randomize)
	g.resizePainter()
}

// Draw renders the grid, route overlay and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	bg := flood.Background(g.theme)
	screen.Fill(bg)
	area := g.gridArea()
	w, h := g.painter.Size()
	x := float64(area-w) / 2
	y := float64(area-h) / 2
	g.painter.Blit(screen, g.eng.Cells(), flood.Palette(g.theme), bg, x, y)
	g.overlay.Draw(screen, g.painter.Layout(), x, y)
	g.hud.Draw(screen, area)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	area := g.gridArea()
	return area + hudWidth, area
}
