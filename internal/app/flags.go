package app

import (
	"flag"
	"time"

	"floodcross/internal/settings"
	"floodcross/internal/sims/flood"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Rows       int
	Cols       int
	Random     bool
	Seed       int64
	IntervalMs int
	Theme      string
	CellPx     int
	LogLevel   string
	Settings   string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	d := settings.Defaults()
	return &Config{
		Rows:       d.Rows,
		Cols:       d.Cols,
		Random:     d.Randomize,
		Seed:       d.Seed,
		IntervalMs: d.IntervalMs,
		Theme:      d.Theme,
		CellPx:     30,
		LogLevel:   d.LogLevel,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (2-20)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (2-20)")
	fs.BoolVar(&c.Random, "random", c.Random, "flood cells in a random order")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random flood schedules (0 picks one from the clock)")
	fs.IntVar(&c.IntervalMs, "interval", c.IntervalMs, "autoplay interval in milliseconds (200-2000)")
	fs.StringVar(&c.Theme, "theme", c.Theme, "colour theme: light or dark")
	fs.IntVar(&c.CellPx, "cell", c.CellPx, "cell size in pixels")
	fs.StringVar(&c.LogLevel, "loglevel", c.LogLevel, "loglevel to enable (error, warn, info, debug, trace)")
	fs.StringVar(&c.Settings, "config", c.Settings, "optional HJSON settings file")
}

// ApplySettings copies values from a settings file. Flags the user set
// explicitly on fs keep their command-line values.
func (c *Config) ApplySettings(f settings.File, fs *flag.FlagSet) {
	explicit := map[string]bool{}
	if fs != nil {
		fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })
	}
	if !explicit["rows"] {
		c.Rows = f.Rows
	}
	if !explicit["cols"] {
		c.Cols = f.Cols
	}
	if !explicit["random"] {
		c.Random = f.Randomize
	}
	if !explicit["seed"] {
		c.Seed = f.Seed
	}
	if !explicit["interval"] {
		c.IntervalMs = f.IntervalMs
	}
	if !explicit["theme"] {
		c.Theme = f.Theme
	}
	if !explicit["loglevel"] {
		c.LogLevel = f.LogLevel
	}
}

// FloodConfig returns the simulation configuration.
func (c *Config) FloodConfig() flood.Config {
	return flood.Config{Rows: c.Rows, Cols: c.Cols, Randomize: c.Random, Seed: c.Seed}
}

// Interval returns the autoplay period.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}
