package postprocessor

import "math"

// Default national age-structure ratios used when a scenario supplies none.
const (
	DefaultYouthRatio   = 0.263
	DefaultAdultRatio   = 0.659
	DefaultElderlyRatio = 0.078
)

// Age derives youth/adult/elderly counts from a population total and the
// three age-bracket ratios. Same lifecycle as the gender calculator.
type Age struct {
	acc *Accumulator
	tr  Translator

	populationTotal *float64
	youthRatio      *float64
	adultRatio      *float64
	elderlyRatio    *float64
}

// NewAge creates an uninitialized age calculator.
func NewAge(tr Translator) *Age {
	if tr == nil {
		tr = Identity
	}
	return &Age{acc: &Accumulator{}, tr: tr}
}

var _ Postprocessor = (*Age)(nil)

// Name returns the calculator name.
func (a *Age) Name() string { return "age" }

// Setup stores population_total and the youth/adult/elderly ratios.
func (a *Age) Setup(params Params) error {
	if a.populationTotal != nil {
		return &LifecycleError{Reason: "clear needs to be called before setup"}
	}
	pop, err := population(params)
	if err != nil {
		return err
	}
	youth, err := ratio(params, "youth_ratio")
	if err != nil {
		return err
	}
	adult, err := ratio(params, "adult_ratio")
	if err != nil {
		return err
	}
	elderly, err := ratio(params, "elderly_ratio")
	if err != nil {
		return err
	}
	a.populationTotal = &pop
	a.youthRatio = &youth
	a.adultRatio = &adult
	a.elderlyRatio = &elderly
	return nil
}

// Process appends the three bracket counts, each rounded once.
func (a *Age) Process() error {
	if a.populationTotal == nil {
		return &LifecycleError{Reason: "setup needs to be called before process"}
	}
	a.bracket("Youth", *a.youthRatio)
	a.bracket("Adult", *a.adultRatio)
	a.bracket("Elderly", *a.elderlyRatio)
	return nil
}

// Clear resets the scalars and drops accumulated results.
func (a *Age) Clear() {
	a.populationTotal = nil
	a.youthRatio = nil
	a.adultRatio = nil
	a.elderlyRatio = nil
	a.acc.Clear()
}

// Results returns the accumulated indicators.
func (a *Age) Results() []Result { return a.acc.Results() }

func (a *Age) bracket(name string, r float64) {
	a.acc.AppendResult(a.tr(name), int(math.Round(*a.populationTotal*r)), nil)
}
