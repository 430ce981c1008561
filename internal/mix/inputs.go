// Package mix holds the concrete mix quantities collected from a user and
// the water/binder ratio derived from them.
package mix

import (
	"fmt"
	"strings"
)

// Form defaults. Dosages are in kg/m³, age in days.
const (
	DefaultDosage = 200.0
	DosageStep    = 10.0
	DosageMin     = 0.0
	DefaultAge    = 7

	// Aggregates are not editable; every collector pins them to these values.
	CoarseAggregateKg = 950.0
	FineAggregateKg   = 750.0
)

// AgeOptions lists the curing ages, in days, a user can pick from.
var AgeOptions = []int{1, 3, 7, 14, 28, 56, 90}

// Canonical feature names.
const (
	FeatureCement           = "Cement"
	FeatureSlag             = "Slag"
	FeatureFlyAsh           = "FlyAsh"
	FeatureSuperplasticizer = "Superplasticizer"
	FeatureWater            = "Water"
	FeatureCoarseAggregate  = "CoarseAggregate"
	FeatureFineAggregate    = "FineAggregate"
	FeatureAge              = "Age"
)

// aliases maps lower-cased spellings to canonical feature names. The French
// names are the vocabulary the production artifacts were trained with.
var aliases = map[string]string{
	"cement":           FeatureCement,
	"ciment":           FeatureCement,
	"slag":             FeatureSlag,
	"laitier":          FeatureSlag,
	"flyash":           FeatureFlyAsh,
	"fly_ash":          FeatureFlyAsh,
	"cendres":          FeatureFlyAsh,
	"superplasticizer": FeatureSuperplasticizer,
	"superplastifiant": FeatureSuperplasticizer,
	"water":            FeatureWater,
	"eau":              FeatureWater,
	"coarseaggregate":  FeatureCoarseAggregate,
	"coarse_aggregate": FeatureCoarseAggregate,
	"aggregat_gros":    FeatureCoarseAggregate,
	"fineaggregate":    FeatureFineAggregate,
	"fine_aggregate":   FeatureFineAggregate,
	"aggregat_fin":     FeatureFineAggregate,
	"age":              FeatureAge,
	"curingage":        FeatureAge,
	"curing_age":       FeatureAge,
	"jours":            FeatureAge,
}

// CanonicalName resolves a feature or column name to its canonical form.
func CanonicalName(name string) (string, bool) {
	canon, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	return canon, ok
}

// MixInputs is one concrete mix. Every quantity must be non-negative.
type MixInputs struct {
	Cement           float64 `json:"cement" yaml:"cement" validate:"gte=0"`
	Slag             float64 `json:"slag" yaml:"slag" validate:"gte=0"`
	FlyAsh           float64 `json:"flyAsh" yaml:"fly_ash" validate:"gte=0"`
	Superplasticizer float64 `json:"superplasticizer" yaml:"superplasticizer" validate:"gte=0"`
	Water            float64 `json:"water" yaml:"water" validate:"gte=0"`
	CoarseAggregate  float64 `json:"coarseAggregate" yaml:"coarse_aggregate" validate:"gte=0"`
	FineAggregate    float64 `json:"fineAggregate" yaml:"fine_aggregate" validate:"gte=0"`
	Age              int     `json:"age" yaml:"age" validate:"curing_age"`
}

// DefaultInputs returns the mix a fresh form starts with.
func DefaultInputs() MixInputs {
	return MixInputs{
		Cement:           DefaultDosage,
		Slag:             DefaultDosage,
		FlyAsh:           DefaultDosage,
		Superplasticizer: DefaultDosage,
		Water:            DefaultDosage,
		CoarseAggregate:  CoarseAggregateKg,
		FineAggregate:    FineAggregateKg,
		Age:              DefaultAge,
	}
}

// WithHiddenDefaults returns a copy with the aggregates pinned to their
// fixed values.
func (m MixInputs) WithHiddenDefaults() MixInputs {
	m.CoarseAggregate = CoarseAggregateKg
	m.FineAggregate = FineAggregateKg
	return m
}

// Binder is the sum of cement, slag and fly ash.
func (m MixInputs) Binder() float64 {
	return m.Cement + m.Slag + m.FlyAsh
}

// Lookup returns the value for a feature name, accepting any known alias.
func (m MixInputs) Lookup(name string) (float64, bool) {
	canon, ok := CanonicalName(name)
	if !ok {
		return 0, false
	}
	switch canon {
	case FeatureCement:
		return m.Cement, true
	case FeatureSlag:
		return m.Slag, true
	case FeatureFlyAsh:
		return m.FlyAsh, true
	case FeatureSuperplasticizer:
		return m.Superplasticizer, true
	case FeatureWater:
		return m.Water, true
	case FeatureCoarseAggregate:
		return m.CoarseAggregate, true
	case FeatureFineAggregate:
		return m.FineAggregate, true
	case FeatureAge:
		return float64(m.Age), true
	}
	return 0, false
}

// Set assigns a value by feature name. Age must be a whole number of days.
func (m *MixInputs) Set(name string, v float64) error {
	canon, ok := CanonicalName(name)
	if !ok {
		return fmt.Errorf("unknown mix field %q", name)
	}
	switch canon {
	case FeatureCement:
		m.Cement = v
	case FeatureSlag:
		m.Slag = v
	case FeatureFlyAsh:
		m.FlyAsh = v
	case FeatureSuperplasticizer:
		m.Superplasticizer = v
	case FeatureWater:
		m.Water = v
	case FeatureCoarseAggregate:
		m.CoarseAggregate = v
	case FeatureFineAggregate:
		m.FineAggregate = v
	case FeatureAge:
		if v != float64(int(v)) {
			return fmt.Errorf("age must be a whole number of days, got %v", v)
		}
		m.Age = int(v)
	}
	return nil
}

// IsAgeOption reports whether days is one of AgeOptions.
func IsAgeOption(days int) bool {
	for _, a := range AgeOptions {
		if a == days {
			return true
		}
	}
	return false
}
