package flood

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	pcore "floodcross/pkg/core"
)

const (
	// MinDimension is the smallest rows/cols value accepted from callers.
	MinDimension = 2
	// MaxDimension is the largest rows/cols value accepted from callers.
	MaxDimension = 20
)

// ErrInvalidDimension reports rows or cols outside [MinDimension, MaxDimension]
// or a value that is not an integer at all.
var ErrInvalidDimension = errors.New("flood: invalid grid dimension")

// Config selects the grid a simulation is built with.
type Config struct {
	Rows      int
	Cols      int
	Randomize bool

	// Seed drives randomized schedules. Builds made from the same seed and
	// the same sequence of rebuilds produce the same schedules.
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{Rows: 3, Cols: 3, Randomize: false, Seed: 42}
}

// Validate checks the dimensions callers are allowed to rebuild with.
func (c Config) Validate() error {
	if err := checkDimension("rows", c.Rows); err != nil {
		return err
	}
	return checkDimension("cols", c.Cols)
}

func checkDimension(name string, v int) error {
	if v < MinDimension || v > MaxDimension {
		return fmt.Errorf("%s=%d outside [%d, %d]: %w", name, v, MinDimension, MaxDimension, ErrInvalidDimension)
	}
	return nil
}

// ParseDimension converts user input into a rows/cols value.
func ParseDimension(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", s, ErrInvalidDimension)
	}
	if err := checkDimension("dimension", v); err != nil {
		return 0, err
	}
	return v, nil
}

// WithTimeSeed replaces a zero Seed with one taken from the clock.
func (c Config) WithTimeSeed() Config {
	if c.Seed == 0 {
		c.Seed = pcore.TimeSeed()
	}
	return c
}
