// Package driver steps a flood simulation on a timer and serializes every
// mutation of it.
package driver

import (
	"context"
	"sync"
	"time"

	"github.com/gologme/log"

	"floodcross/internal/logging"
	"floodcross/internal/sims/flood"
)

const (
	MinInterval  = 200 * time.Millisecond
	MaxInterval  = 2000 * time.Millisecond
	IntervalStep = 100 * time.Millisecond
)

// ClampInterval bounds d to [MinInterval, MaxInterval] and rounds it to the
// nearest IntervalStep.
func ClampInterval(d time.Duration) time.Duration {
	if d < MinInterval {
		return MinInterval
	}
	if d > MaxInterval {
		return MaxInterval
	}
	return d.Round(IntervalStep)
}

// Stepper advances a simulation by one day.
type Stepper interface {
	Step() flood.Progress
}

// Autoplay calls a Stepper on a fixed period from its own goroutine.
type Autoplay struct {
	mu       sync.Mutex
	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
	log      *log.Logger
}

// NewAutoplay returns a stopped Autoplay. interval is used as given.
func NewAutoplay(interval time.Duration, logger *log.Logger) *Autoplay {
	if interval <= 0 {
		interval = time.Second
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Autoplay{interval: interval, log: logger}
}

// Interval reports the period used by the next Start.
func (a *Autoplay) Interval() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.interval
}

// SetInterval changes the period used by the next Start.
func (a *Autoplay) SetInterval(d time.Duration) {
	if d <= 0 {
		return
	}
	a.mu.Lock()
	a.interval = d
	a.mu.Unlock()
}

// Start stops any running loop, then steps s once per interval until ctx is
// done, Stop is called or a step reports completion. onStep, when set, runs
// on the loop goroutine after every step and must not call Stop.
func (a *Autoplay) Start(ctx context.Context, s Stepper, onStep func(flood.Progress)) {
	a.Stop()

	a.mu.Lock()
	defer a.mu.Unlock()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	a.cancel, a.done = cancel, done
	a.log.Debugf("Autoplay started every %v", a.interval)
	go a.run(ctx, a.interval, s, onStep, done)
}

func (a *Autoplay) run(ctx context.Context, interval time.Duration, s Stepper, onStep func(flood.Progress), done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			p := s.Step()
			if onStep != nil {
				onStep(p)
			}
			if p.Complete {
				a.log.Debugln("Autoplay finished: schedule exhausted")
				return
			}
		}
	}
}

// Stop cancels the running loop and waits for it to exit. After Stop returns
// no further step is taken.
func (a *Autoplay) Stop() {
	a.mu.Lock()
	cancel, done := a.cancel, a.done
	a.cancel, a.done = nil, nil
	a.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	a.log.Debugln("Autoplay stopped")
}

// Running reports whether a loop is active.
func (a *Autoplay) Running() bool {
	a.mu.Lock()
	done := a.done
	a.mu.Unlock()
	if done == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// Done returns a channel closed when the current loop exits. With no loop it
// returns an already closed channel.
func (a *Autoplay) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return a.done
}
