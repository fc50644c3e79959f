package app

import (
	"strconv"
	"time"

	"floodcross/internal/core"
	"floodcross/internal/driver"
	"floodcross/internal/sims/flood"
)

// Controls holds the values edited on the HUD. Grid edits stay pending until
// they are applied with a rebuild; the interval applies at once.
type Controls struct {
	Rows       int
	Cols       int
	Random     bool
	IntervalMs int
}

// NewControls seeds the controls from the running grid and interval.
func NewControls(cfg flood.Config, interval time.Duration) *Controls {
	return &Controls{
		Rows:       cfg.Rows,
		Cols:       cfg.Cols,
		Random:     cfg.Randomize,
		IntervalMs: int(driver.ClampInterval(interval) / time.Millisecond),
	}
}

// Interval returns the autoplay period.
func (c *Controls) Interval() time.Duration {
	return time.Duration(c.IntervalMs) * time.Millisecond
}

// Pending reports whether the grid edits differ from cfg.
func (c *Controls) Pending(cfg flood.Config) bool {
	return c.Rows != cfg.Rows || c.Cols != cfg.Cols || c.Random != cfg.Randomize
}

// Config returns the configuration a rebuild would use.
func (c *Controls) Config(base flood.Config) flood.Config {
	base.Rows, base.Cols, base.Randomize = c.Rows, c.Cols, c.Random
	return base
}

// ParameterControls lists the HUD controls.
func (c *Controls) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Step: 1, Min: flood.MinDimension, Max: flood.MaxDimension},
		{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Step: 1, Min: flood.MinDimension, Max: flood.MaxDimension},
		{
			Key: "interval_ms", Label: "Speed (ms)", Type: core.ParamTypeInt,
			Step: int(driver.IntervalStep / time.Millisecond),
			Min:  int(driver.MinInterval / time.Millisecond),
			Max:  int(driver.MaxInterval / time.Millisecond),
		},
		{Key: "random", Label: "Random flooding", Type: core.ParamTypeBool},
	}
}

// Parameters reports the current control values.
func (c *Controls) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "Controls",
		Params: []core.Parameter{
			{Key: "rows", Label: "Rows", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Rows)},
			{Key: "cols", Label: "Cols", Type: core.ParamTypeInt, Value: strconv.Itoa(c.Cols)},
			{Key: "interval_ms", Label: "Speed (ms)", Type: core.ParamTypeInt, Value: strconv.Itoa(c.IntervalMs)},
			{Key: "random", Label: "Random flooding", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.Random)},
		},
	}}}
}

// SetIntParameter updates an integer control, clamping to its bounds.
func (c *Controls) SetIntParameter(key string, value int) bool {
	ctrl, ok := c.control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "rows":
		c.Rows = value
	case "cols":
		c.Cols = value
	case "interval_ms":
		c.IntervalMs = int(driver.ClampInterval(time.Duration(value)*time.Millisecond) / time.Millisecond)
	}
	return true
}

// SetBoolParameter updates a boolean control.
func (c *Controls) SetBoolParameter(key string, value bool) bool {
	if key != "random" {
		return false
	}
	c.Random = value
	return true
}

func (c *Controls) control(key string) (core.ParameterControl, bool) {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key == key {
			return ctrl, true
		}
	}
	return core.ParameterControl{}, false
}
