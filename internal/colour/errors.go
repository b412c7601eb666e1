package colour

import "fmt"

// ParseError reports input text that does not match the requested
// colour form. Reason names the offending token or shape.
type ParseError struct {
	Input  string
	Format string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as %s: %s", e.Input, e.Format, e.Reason)
}

// RangeError reports a numeric component outside its legal interval.
// Out-of-range input is rejected, never clamped.
type RangeError struct {
	Component string
	Value     float64
	Min, Max  float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s must be %g-%g, got %g", e.Component, e.Min, e.Max, e.Value)
}

// UnachievableError reports a contrast target that no colour can
// reach against the given background. Best is the highest ratio
// actually reachable.
type UnachievableError struct {
	Target float64
	Best   float64
}

func (e *UnachievableError) Error() string {
	return fmt.Sprintf("contrast ratio %.2f:1 is not achievable (best possible is %.2f:1)", e.Target, e.Best)
}
