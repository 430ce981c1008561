package mix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluateRatio(t *testing.T) {
	tests := []struct {
		name       string
		in         MixInputs
		wantStatus RatioStatus
		wantRatio  float64
		computed   bool
	}{
		{
			name:       "lower bound is within norms",
			in:         MixInputs{Cement: 500, Water: 200},
			wantStatus: RatioWithinNorms,
			wantRatio:  0.4,
			computed:   true,
		},
		{
			name:       "upper bound is within norms",
			in:         MixInputs{Cement: 300, Water: 180},
			wantStatus: RatioWithinNorms,
			wantRatio:  0.6,
			computed:   true,
		},
		{
			name:       "binder is summed across cement slag and fly ash",
			in:         MixInputs{Cement: 200, Slag: 100, FlyAsh: 100, Water: 200},
			wantStatus: RatioWithinNorms,
			wantRatio:  0.5,
			computed:   true,
		},
		{
			name:       "too wet",
			in:         MixInputs{Cement: 200, Water: 200},
			wantStatus: RatioOutsideOptimal,
			wantRatio:  1.0,
			computed:   true,
		},
		{
			name:       "too dry",
			in:         MixInputs{Cement: 400, Water: 100},
			wantStatus: RatioOutsideOptimal,
			wantRatio:  0.25,
			computed:   true,
		},
		{
			name:       "no water",
			in:         MixInputs{Cement: 400},
			wantStatus: RatioOutsideOptimal,
			wantRatio:  0,
			computed:   true,
		},
		{
			name:       "zero binder",
			in:         MixInputs{Water: 180, Superplasticizer: 5},
			wantStatus: RatioInsufficientBinder,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateRatio(tt.in)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.computed, got.Computed)
			assert.InDelta(t, tt.wantRatio, got.Ratio, 1e-12)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestEvaluateRatioMatchesFormula(t *testing.T) {
	for cement := 0.0; cement <= 400; cement += 50 {
		for slag := 0.0; slag <= 200; slag += 50 {
			for ash := 0.0; ash <= 200; ash += 50 {
				for water := 0.0; water <= 300; water += 30 {
					in := MixInputs{Cement: cement, Slag: slag, FlyAsh: ash, Water: water}
					got := EvaluateRatio(in)

					binder := cement + slag + ash
					if binder == 0 {
						require.False(t, got.Computed)
						require.Equal(t, RatioInsufficientBinder, got.Status)
						continue
					}
					ratio := water / binder
					require.True(t, got.Computed)
					require.Equal(t, ratio, got.Ratio)
					within := ratio >= 0.4 && ratio <= 0.6
					require.Equal(t, within, got.Status == RatioWithinNorms, "ratio %v", ratio)
				}
			}
		}
	}
}

func TestEvaluateRatioGaugeIsCapped(t *testing.T) {
	got := EvaluateRatio(MixInputs{Cement: 100, Water: 250})
	assert.InDelta(t, 2.5, got.Ratio, 1e-12)
	assert.Equal(t, 1.0, got.Gauge)

	got = EvaluateRatio(MixInputs{Cement: 400, Water: 200})
	assert.InDelta(t, 0.5, got.Gauge, 1e-12)
}

func TestEvaluateRatioEndToEndScenario(t *testing.T) {
	in := MixInputs{
		Cement:           300,
		Superplasticizer: 5,
		Water:            180,
		Age:              28,
	}.WithHiddenDefaults()

	got := EvaluateRatio(in)
	assert.Equal(t, 300.0, got.Binder)
	assert.InDelta(t, 0.6, got.Ratio, 1e-12)
	assert.Equal(t, RatioWithinNorms, got.Status)
}
