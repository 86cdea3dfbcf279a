package postprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenderIndicators(t *testing.T) {
	g := NewGender(nil)
	require.NoError(t, g.Setup(Params{"population_total": 1000, "female_ratio": 0.5}))
	require.NoError(t, g.Process())

	results := g.Results()
	require.Len(t, results, 4)

	assert.Equal(t, "Total", results[0].Name)
	assert.Equal(t, 1000, results[0].Value)

	assert.Equal(t, "Female population", results[1].Name)
	assert.Equal(t, 500, results[1].Value)

	assert.Equal(t, "Weekly hygiene packs", results[2].Name)
	assert.Equal(t, 397, results[2].Value)
	assert.Equal(t, "Females hygiene packs for weekly use", results[2].Metadata["description"])

	assert.Equal(t, "Additional weekly rice kg for pregnant and lactating women", results[3].Name)
	assert.Equal(t, 47, results[3].Value)
	assert.NotEmpty(t, results[3].Metadata["description"])
}

func TestGenderRoundsOncePerIndicator(t *testing.T) {
	// population 960, ratio 0.5: lactating 32.43072, pregnant 12.2976.
	// Summed as reals then rounded once: 44.72832 -> 45. Rounding the two
	// amounts first would give 32 + 12 = 44.
	g := NewGender(nil)
	require.NoError(t, g.Setup(Params{"population_total": 960, "female_ratio": 0.5}))
	require.NoError(t, g.Process())

	results := g.Results()
	require.Len(t, results, 4)
	assert.Equal(t, 45, results[3].Value)
}

func TestGenderLifecycle(t *testing.T) {
	g := NewGender(nil)

	// process before setup
	err := g.Process()
	require.Error(t, err)
	var lcErr *LifecycleError
	assert.ErrorAs(t, err, &lcErr)

	// setup twice without clear
	require.NoError(t, g.Setup(Params{"population_total": 10, "female_ratio": 0.5}))
	err = g.Setup(Params{"population_total": 10, "female_ratio": 0.5})
	require.Error(t, err)
	assert.ErrorAs(t, err, &lcErr)

	// clear makes the calculator reusable and drops prior results
	require.NoError(t, g.Process())
	assert.NotEmpty(t, g.Results())
	g.Clear()
	assert.Empty(t, g.Results())
	require.NoError(t, g.Setup(Params{"population_total": 20, "female_ratio": 0.25}))
	require.NoError(t, g.Process())
	assert.Equal(t, 20, g.Results()[0].Value)
	assert.Equal(t, 5, g.Results()[1].Value)
}

func TestGenderParamValidation(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{name: "missing population", params: Params{"female_ratio": 0.5}},
		{name: "missing ratio", params: Params{"population_total": 100}},
		{name: "negative population", params: Params{"population_total": -1, "female_ratio": 0.5}},
		{name: "ratio above one", params: Params{"population_total": 100, "female_ratio": 1.5}},
		{name: "ratio below zero", params: Params{"population_total": 100, "female_ratio": -0.1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGender(nil)
			assert.Error(t, g.Setup(tt.params))
		})
	}
}

func TestGenderZeroPopulation(t *testing.T) {
	g := NewGender(nil)
	require.NoError(t, g.Setup(Params{"population_total": 0, "female_ratio": 1}))
	require.NoError(t, g.Process())
	for _, r := range g.Results() {
		assert.Equal(t, 0, r.Value)
	}
}

func TestGenderTranslatedNames(t *testing.T) {
	g := NewGender(NewTranslator("id"))
	require.NoError(t, g.Setup(Params{"population_total": 100, "female_ratio": 0.5}))
	require.NoError(t, g.Process())

	results := g.Results()
	assert.Equal(t, "Jumlah", results[0].Name)
	assert.Equal(t, "Jumlah penduduk perempuan", results[1].Name)
}

func TestNewTranslatorFallsBack(t *testing.T) {
	tr := NewTranslator("not a locale !!")
	assert.Equal(t, "Total", tr("Total"))

	en := NewTranslator("en")
	assert.Equal(t, "Total", en("Total"))
	assert.Equal(t, "Untranslated name", en("Untranslated name"))
}
