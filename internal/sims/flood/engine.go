// Package flood simulates a grid that floods one cell per day and tracks the
// last day on which a land path still joined the top edge to the bottom edge.
package flood

import (
	"io"

	"github.com/gologme/log"

	"floodcross/internal/core"
	pcore "floodcross/pkg/core"
)

// Progress is the observable state of a run.
type Progress struct {
	// Day counts flooded cells and indexes the next schedule entry.
	Day int
	// LastCrossableDay is the latest Day on which the grid was crossable,
	// 0 if none yet.
	LastCrossableDay int
	// Total is the schedule length.
	Total int
	// Crossable reports whether the current grid is crossable.
	Crossable bool
	// Complete is set once every scheduled cell has been flooded.
	Complete bool
}

// Status returns a short human readable description of the run.
func (p Progress) Status() string {
	switch {
	case p.Day == 0:
		return "All land"
	case p.Complete:
		return "All water"
	default:
		return "Simulation running..."
	}
}

// Engine owns a grid, its flood schedule and the run progress. It is not safe
// for concurrent use; callers serialize Step, Rebuild and ResetProgress.
type Engine struct {
	cfg Config

	grid     *core.Grid
	schedule Schedule
	display  []uint8

	day           int
	lastCrossable int
	crossable     bool

	route    []core.Coordinate
	routeDay int

	src Source
	log *log.Logger
}

var _ core.Sim = (*Engine)(nil)

// Option customizes an Engine at construction.
type Option func(*Engine)

// WithSource injects the random source used for randomized schedules.
func WithSource(src Source) Option {
	return func(e *Engine) {
		if src != nil {
			e.src = src
		}
	}
}

// WithLogger routes engine logging to l.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// New returns an engine with a sequential schedule over rows×cols.
func New(rows, cols int, opts ...Option) *Engine {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig returns an engine built from cfg. cfg is not validated.
func NewWithConfig(cfg Config, opts ...Option) *Engine {
	e := &Engine{
		cfg: cfg,
		log: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.src == nil {
		e.src = pcore.NewRNG(cfg.Seed)
	}
	e.Rebuild(cfg.Rows, cfg.Cols, cfg.Randomize)
	return e
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "flood" }

// Size reports the grid dimensions.
func (e *Engine) Size() core.Size { return e.grid.Size() }

// Config returns the configuration of the current grid.
func (e *Engine) Config() Config { return e.cfg }

// Cells exposes the display buffer, one byte per cell (0 land, 1 water).
func (e *Engine) Cells() []uint8 { return e.display }

// Grid returns a copy of the current grid.
func (e *Engine) Grid() *core.Grid { return e.grid.Clone() }

// Schedule returns a copy of the flood schedule.
func (e *Engine) Schedule() Schedule {
	return append(Schedule(nil), e.schedule...)
}

// Progress reports the current run state.
func (e *Engine) Progress() Progress {
	total := len(e.schedule)
	return Progress{
		Day:              e.day,
		LastCrossableDay: e.lastCrossable,
		Total:            total,
		Crossable:        e.crossable,
		Complete:         e.day >= total,
	}
}

// Rebuild discards the grid and schedule and builds new ones. Dimensions are
// taken as given; callers reject invalid input first.
func (e *Engine) Rebuild(rows, cols int, randomize bool) {
	e.grid, e.schedule = Build(rows, cols, randomize, e.src)
	e.cfg.Rows, e.cfg.Cols, e.cfg.Randomize = e.grid.Rows, e.grid.Cols, randomize
	e.display = make([]uint8, e.grid.Rows*e.grid.Cols)
	e.restart()
	e.log.Infof("Rebuilt %dx%d grid (random=%v, %d days)", e.grid.Rows, e.grid.Cols, randomize, len(e.schedule))
}

// ResetProgress turns every cell back into land and rewinds to day 0. The
// schedule is kept.
func (e *Engine) ResetProgress() {
	e.grid.Clear()
	e.restart()
	e.log.Debugln("Progress reset")
}

func (e *Engine) restart() {
	for i := range e.display {
		e.display[i] = uint8(core.Land)
	}
	e.day = 0
	e.lastCrossable = 0
	e.crossable = IsCrossable(e.grid)
	e.route = nil
	e.routeDay = -1
}

// Step floods the next scheduled cell and re-checks connectivity. Once the
// schedule is exhausted Step changes nothing and reports Complete.
func (e *Engine) Step() Progress {
	if e.day >= len(e.schedule) {
		return e.Progress()
	}
	c := e.schedule[e.day]
	e.grid.Set(c, core.Water)
	e.display[e.grid.Index(c.Row, c.Col)] = uint8(core.Water)
	e.day++

	e.crossable = IsCrossable(e.grid)
	if e.crossable {
		e.lastCrossable = e.day
	}
	e.log.Debugf("Day %d: flooded (%d,%d), crossable=%v", e.day, c.Row, c.Col, e.crossable)

	p := e.Progress()
	if p.Complete {
		e.log.Infof("Flooded all %d cells; last crossable day %d", p.Total, p.LastCrossableDay)
	}
	return p
}

// Run steps until the schedule is exhausted and returns the final progress.
func (e *Engine) Run() Progress {
	p := e.Progress()
	for !p.Complete {
		p = e.Step()
	}
	return p
}

// Route returns a shortest crossing route for the current grid, or nil when
// the grid is not crossable.
func (e *Engine) Route() []core.Coordinate {
	if e.routeDay != e.day {
		e.route, _ = CrossingRoute(e.grid)
		e.routeDay = e.day
	}
	return e.route
}
