package flood

import (
	"strconv"

	"floodcross/internal/core"
)

// Parameters reports the grid settings and run counters.
func (e *Engine) Parameters() core.ParameterSnapshot {
	p := e.Progress()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("rows", "Rows", e.cfg.Rows),
				intParam("cols", "Cols", e.cfg.Cols),
				boolParam("random", "Random flooding", e.cfg.Randomize),
			},
		},
		{
			Name: "Progress",
			Params: []core.Parameter{
				intParam("day", "Day", p.Day),
				intParam("total", "Days", p.Total),
				intParam("last_crossable_day", "Last day you can cross", p.LastCrossableDay),
				boolParam("crossable", "Crossable", p.Crossable),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeBool, Value: strconv.FormatBool(value)}
}
