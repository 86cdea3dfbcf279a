// Package postprocessor derives humanitarian indicators from impact-function
// outputs. Each calculator follows a setup/process/clear lifecycle and feeds
// named integer indicators into a shared result accumulator.
package postprocessor

import (
	"github.com/rotisserie/eris"
)

// Params carries the scalar inputs a postprocessor reads during Setup.
type Params map[string]float64

// Result is one named indicator value with optional descriptive metadata.
type Result struct {
	Name     string
	Value    int
	Metadata map[string]string
}

// Postprocessor is the lifecycle contract every indicator calculator
// implements. Setup without a preceding Clear and Process without a
// preceding Setup fail with a LifecycleError.
type Postprocessor interface {
	Name() string
	Setup(params Params) error
	Process() error
	Clear()
	Results() []Result
}

// LifecycleError reports a setup/process/clear call made out of order.
type LifecycleError struct {
	Reason string
}

func (e *LifecycleError) Error() string { return "postprocessor: " + e.Reason }

// Accumulator collects results for a calculator. Calculators compose it by
// delegation rather than inheritance.
type Accumulator struct {
	results []Result
}

// AppendResult records one indicator. meta may be nil.
func (a *Accumulator) AppendResult(name string, value int, meta map[string]string) {
	a.results = append(a.results, Result{Name: name, Value: value, Metadata: meta})
}

// Results returns the accumulated indicators in append order.
func (a *Accumulator) Results() []Result { return a.results }

// Clear drops all accumulated indicators.
func (a *Accumulator) Clear() { a.results = nil }

// ratio validates and returns a params entry that must lie in [0, 1].
func ratio(params Params, key string) (float64, error) {
	v, ok := params[key]
	if !ok {
		return 0, eris.Errorf("postprocessor: missing parameter %q", key)
	}
	if v < 0 || v > 1 {
		return 0, eris.Errorf("postprocessor: parameter %q must be in [0,1], got %v", key, v)
	}
	return v, nil
}

// population validates and returns the population_total params entry.
func population(params Params) (float64, error) {
	v, ok := params["population_total"]
	if !ok {
		return 0, eris.New("postprocessor: missing parameter \"population_total\"")
	}
	if v < 0 {
		return 0, eris.Errorf("postprocessor: population_total must be non-negative, got %v", v)
	}
	return v, nil
}
