package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gologme/log"

	"floodcross/internal/core"
	"floodcross/internal/logging"
	"floodcross/internal/sims/flood"
)

// Session owns an engine and its autoplay loop. Step, Rebuild and
// ResetProgress run in mutual exclusion, and Rebuild always stops autoplay
// before it touches the grid.
type Session struct {
	mu  sync.Mutex
	eng *flood.Engine

	auto   *Autoplay
	ctx    context.Context
	onStep func(flood.Progress)

	log *log.Logger
}

// NewSession validates cfg and builds the first grid.
func NewSession(cfg flood.Config, interval time.Duration, logger *log.Logger) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("driver: %w", err)
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Session{
		eng:  flood.NewWithConfig(cfg, flood.WithLogger(logger)),
		auto: NewAutoplay(ClampInterval(interval), logger),
		ctx:  context.Background(),
		log:  logger,
	}, nil
}

// Step floods the next cell.
func (s *Session) Step() flood.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Step()
}

// ResetProgress rewinds the run to day 0 keeping the schedule. A running
// autoplay keeps going from day 0.
func (s *Session) ResetProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.ResetProgress()
}

// Rebuild validates cfg, stops autoplay and replaces the grid and schedule.
// On a validation error nothing changes and autoplay keeps running.
func (s *Session) Rebuild(cfg flood.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("driver: %w", err)
	}
	s.auto.Stop()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.eng.Rebuild(cfg.Rows, cfg.Cols, cfg.Randomize)
	return nil
}

// Play starts autoplay. onStep is called after every automatic step.
func (s *Session) Play(ctx context.Context, onStep func(flood.Progress)) {
	if ctx == nil {
		ctx = context.Background()
	}
	s.mu.Lock()
	s.ctx, s.onStep = ctx, onStep
	s.mu.Unlock()
	s.auto.Start(ctx, s, onStep)
}

// Pause stops autoplay and waits for the loop to exit.
func (s *Session) Pause() { s.auto.Stop() }

// Playing reports whether autoplay is running.
func (s *Session) Playing() bool { return s.auto.Running() }

// Done is closed when the current autoplay loop exits.
func (s *Session) Done() <-chan struct{} { return s.auto.Done() }

// Interval reports the autoplay period.
func (s *Session) Interval() time.Duration { return s.auto.Interval() }

// SetInterval clamps and applies a new autoplay period, restarting a running
// loop so the change takes effect immediately.
func (s *Session) SetInterval(d time.Duration) time.Duration {
	d = ClampInterval(d)
	running := s.auto.Running()
	if running {
		s.auto.Stop()
	}
	s.auto.SetInterval(d)
	if running {
		s.mu.Lock()
		ctx, onStep := s.ctx, s.onStep
		s.mu.Unlock()
		s.auto.Start(ctx, s, onStep)
	}
	s.log.Debugf("Autoplay interval set to %v", d)
	return d
}

// Progress reports the current run state.
func (s *Session) Progress() flood.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Progress()
}

// Snapshot returns a copy of the grid together with the matching progress.
func (s *Session) Snapshot() (*core.Grid, flood.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Grid(), s.eng.Progress()
}

// Route returns a copy of the current crossing route.
func (s *Session) Route() []core.Coordinate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Coordinate(nil), s.eng.Route()...)
}

// Config returns the configuration of the current grid.
func (s *Session) Config() flood.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Config()
}

// Schedule returns a copy of the flood schedule.
func (s *Session) Schedule() flood.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.eng.Schedule()
}
