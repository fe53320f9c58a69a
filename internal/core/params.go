package core

import (
	"math"

	gridcore "life-slots/pkg/core"
)

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeDuration denotes parameters expressed in milliseconds.
	ParamTypeDuration ParamType = "ms"
)

// Keys of the controls exposed by the simulator.
const (
	KeyRows     = "rows"
	KeyCols     = "cols"
	KeyInterval = "interval_ms"
)

// Default values used on reset and when no configuration overrides them.
const (
	DefaultRows       = 30
	DefaultCols       = 50
	DefaultIntervalMS = 300
)

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Values are clamped into [Min, Max] and snapped to Step.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step int
	Min  int
	Max  int
}

// Controls returns the configuration surface shared by every front end.
func Controls() []ParameterControl {
	return []ParameterControl{
		RowsControl(),
		ColsControl(),
		IntervalControl(),
	}
}

// RowsControl bounds the number of grid rows.
func RowsControl() ParameterControl {
	return ParameterControl{Key: KeyRows, Label: "Rows", Type: ParamTypeInt, Step: 1, Min: 0, Max: gridcore.MaxDimension}
}

// ColsControl bounds the number of grid columns.
func ColsControl() ParameterControl {
	return ParameterControl{Key: KeyCols, Label: "Columns", Type: ParamTypeInt, Step: 1, Min: 0, Max: gridcore.MaxDimension}
}

// IntervalControl bounds the delay between turns.
func IntervalControl() ParameterControl {
	return ParameterControl{Key: KeyInterval, Label: "Turn interval", Type: ParamTypeDuration, Step: 100, Min: 100, Max: 1000}
}

// Clamp forces v into the control's range and onto its step grid.
func (c ParameterControl) Clamp(v int) int {
	if v < c.Min {
		v = c.Min
	}
	if v > c.Max {
		v = c.Max
	}
	if c.Step > 1 {
		steps := math.Round(float64(v-c.Min) / float64(c.Step))
		v = c.Min + int(steps)*c.Step
		if v > c.Max {
			v -= c.Step
		}
	}
	return v
}

// Nudge moves v by delta steps and clamps the result.
func (c ParameterControl) Nudge(v, delta int) int {
	step := c.Step
	if step <= 0 {
		step = 1
	}
	return c.Clamp(v + delta*step)
}
