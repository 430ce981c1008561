package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultInputs(t *testing.T) {
	in := DefaultInputs()
	assert.Equal(t, 200.0, in.Cement)
	assert.Equal(t, 200.0, in.Water)
	assert.Equal(t, 7, in.Age)
	assert.Equal(t, 950.0, in.CoarseAggregate)
	assert.Equal(t, 750.0, in.FineAggregate)
	require.NoError(t, Validate(in))
}

func TestWithHiddenDefaultsOverridesAggregates(t *testing.T) {
	in := MixInputs{CoarseAggregate: 1, FineAggregate: 2}.WithHiddenDefaults()
	assert.Equal(t, CoarseAggregateKg, in.CoarseAggregate)
	assert.Equal(t, FineAggregateKg, in.FineAggregate)
}

func TestLookupAliases(t *testing.T) {
	in := MixInputs{
		Cement:           1,
		Slag:             2,
		FlyAsh:           3,
		Superplasticizer: 4,
		Water:            5,
		CoarseAggregate:  6,
		FineAggregate:    7,
		Age:              28,
	}

	tests := map[string]float64{
		"Cement":           1,
		"Ciment":           1,
		"laitier":          2,
		"Cendres":          3,
		"fly_ash":          3,
		"Superplastifiant": 4,
		"Eau":              5,
		"Aggregat_Gros":    6,
		"FineAggregate":    7,
		"Jours":            28,
		" age ":            28,
	}
	for name, want := range tests {
		got, ok := in.Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := in.Lookup("Sand")
	assert.False(t, ok)
}

func TestSet(t *testing.T) {
	var in MixInputs
	require.NoError(t, in.Set("Ciment", 300))
	require.NoError(t, in.Set("Jours", 28))
	assert.Equal(t, 300.0, in.Cement)
	assert.Equal(t, 28, in.Age)

	err := in.Set("Jours", 2.5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whole number")

	err = in.Set("Gravel", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown mix field")
}

func TestNewFormSpec(t *testing.T) {
	form := NewFormSpec(0, 0)
	require.Len(t, form.Fields, 5)
	for _, f := range form.Fields {
		assert.Equal(t, 200.0, f.Default)
		assert.Equal(t, 10.0, f.Step)
		assert.Equal(t, 0.0, f.Min)
		assert.Equal(t, "kg/m³", f.Unit)
	}
	assert.Equal(t, []int{1, 3, 7, 14, 28, 56, 90}, form.AgeOptions)
	assert.Equal(t, 7, form.DefaultAge)
	assert.Equal(t, 950.0, form.Hidden[FeatureCoarseAggregate])

	custom := NewFormSpec(150, 5)
	assert.Equal(t, 150.0, custom.Fields[0].Default)
	assert.Equal(t, 150.0, custom.Defaults().Water)
	assert.Equal(t, 950.0, custom.Defaults().CoarseAggregate)
}

func TestValidate(t *testing.T) {
	require.NoError(t, Validate(MixInputs{Age: 1}))

	err := Validate(MixInputs{Cement: -1, Water: -5, Age: 8})
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "cement")
	assert.Contains(t, verr.Fields, "water")
	assert.Contains(t, verr.Fields, "age")
	assert.NotContains(t, verr.Fields, "slag")
	assert.Contains(t, err.Error(), "age: must be one of")
}
