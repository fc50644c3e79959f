package ui

import (
	"fmt"
	"strconv"

	"floodcross/internal/core"
)

// StatusLines is the number of lines Status.Lines can produce.
const StatusLines = 8

// Status is the run summary shown at the top of the HUD.
type Status struct {
	Day              int
	LastCrossableDay int
	Text             string
	Autoplay         bool
	IntervalMs       int
	Pending          bool
	RouteShown       bool

	// Run holds the engine's parameter snapshot; its "Progress" group is
	// listed below the headline counters.
	Run core.ParameterSnapshot
}

// Lines formats the status block, one entry per HUD line.
func (s Status) Lines() []string {
	lines := []string{
		"Last Day Where You Can Still Cross",
		fmt.Sprintf("Day %d: %s", s.Day, s.Text),
		fmt.Sprintf("Last Day You Can Cross: %d", s.LastCrossableDay),
	}
	if s.Autoplay {
		lines = append(lines, fmt.Sprintf("Autoplay: every %d ms", s.IntervalMs))
	} else {
		lines = append(lines, "Autoplay: paused")
	}
	for _, group := range s.Run.Groups {
		if group.Name != "Progress" {
			continue
		}
		for _, p := range group.Params {
			// Already in the headline.
			if p.Key == "day" || p.Key == "last_crossable_day" {
				continue
			}
			lines = append(lines, p.Label+": "+paramText(p))
		}
	}
	if s.RouteShown {
		lines = append(lines, "Route: shown (P)")
	} else {
		lines = append(lines, "Route: hidden (P)")
	}
	if len(lines) > StatusLines {
		lines = lines[:StatusLines]
	}
	return lines
}

func paramText(p core.Parameter) string {
	if p.Type == core.ParamTypeBool {
		if v, err := strconv.ParseBool(p.Value); err == nil {
			if v {
				return "yes"
			}
			return "no"
		}
	}
	return p.Value
}

// Action is a command triggered from a HUD button.
type Action int

const (
	ActionNone Action = iota
	ActionNextDay
	ActionReset
	ActionPlay
	ActionPause
	ActionApply
	ActionTheme
)

var actionLabels = []struct {
	action Action
	label  string
}{
	{ActionNextDay, "Next Day"},
	{ActionReset, "Reset"},
	{ActionPlay, "Auto Play"},
	{ActionPause, "Pause"},
	{ActionApply, "Apply Grid Size"},
	{ActionTheme, "Theme"},
}

func (a Action) String() string {
	for _, l := range actionLabels {
		if l.action == a {
			return l.label
		}
	}
	return "none"
}
