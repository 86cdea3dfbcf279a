package postprocessor

import "math"

// Weekly allocation constants for the female sub-population.
const (
	hygienePacksPerFemale = 0.7937   // packs per female per week
	lactatingRiceKgPerDay = 0.033782 // additional rice for lactating women
	pregnantRiceKgPerDay  = 0.01281  // additional rice for pregnant women
	riceDoseMultiplier    = 2
)

// Gender derives gender-specific indicators (affected females, hygiene packs,
// additional rice needs) from a population total and a female ratio.
type Gender struct {
	acc *Accumulator
	tr  Translator

	populationTotal *float64
	femaleRatio     *float64
}

// NewGender creates an uninitialized gender calculator. A nil translator
// leaves indicator names in English.
func NewGender(tr Translator) *Gender {
	if tr == nil {
		tr = Identity
	}
	return &Gender{acc: &Accumulator{}, tr: tr}
}

var _ Postprocessor = (*Gender)(nil)

// Name returns the calculator name.
func (g *Gender) Name() string { return "gender" }

// Setup stores population_total and female_ratio. It fails with a
// LifecycleError unless the calculator is cleared.
func (g *Gender) Setup(params Params) error {
	if g.populationTotal != nil || g.femaleRatio != nil {
		return &LifecycleError{Reason: "clear needs to be called before setup"}
	}
	pop, err := population(params)
	if err != nil {
		return err
	}
	fr, err := ratio(params, "female_ratio")
	if err != nil {
		return err
	}
	g.populationTotal = &pop
	g.femaleRatio = &fr
	return nil
}

// Process computes the four indicators in fixed order, rounding each once at
// the end of its formula.
func (g *Gender) Process() error {
	if g.populationTotal == nil || g.femaleRatio == nil {
		return &LifecycleError{Reason: "setup needs to be called before process"}
	}
	g.calculateTotal()
	g.calculateFemales()
	g.calculateWeeklyHygienePacks()
	g.calculateWeeklyIncreasedCalories()
	return nil
}

// Clear resets the scalars and drops accumulated results, returning the
// calculator to its uninitialized state.
func (g *Gender) Clear() {
	g.populationTotal = nil
	g.femaleRatio = nil
	g.acc.Clear()
}

// Results returns the accumulated indicators.
func (g *Gender) Results() []Result { return g.acc.Results() }

func (g *Gender) calculateTotal() {
	g.acc.AppendResult(g.tr("Total"), int(math.Round(*g.populationTotal)), nil)
}

func (g *Gender) calculateFemales() {
	result := *g.populationTotal * *g.femaleRatio
	g.acc.AppendResult(g.tr("Female population"), int(math.Round(result)), nil)
}

func (g *Gender) calculateWeeklyHygienePacks() {
	meta := map[string]string{"description": "Females hygiene packs for weekly use"}
	result := *g.populationTotal * *g.femaleRatio * hygienePacksPerFemale
	g.acc.AppendResult(g.tr("Weekly hygiene packs"), int(math.Round(result)), meta)
}

func (g *Gender) calculateWeeklyIncreasedCalories() {
	meta := map[string]string{
		"description": "Additional rice kg per week for pregnant and lactating women",
	}
	lactKg := *g.populationTotal * *g.femaleRatio * riceDoseMultiplier * lactatingRiceKgPerDay
	pregKg := *g.populationTotal * *g.femaleRatio * riceDoseMultiplier * pregnantRiceKgPerDay
	g.acc.AppendResult(
		g.tr("Additional weekly rice kg for pregnant and lactating women"),
		int(math.Round(lactKg+pregKg)),
		meta,
	)
}
