package mix

import "math"

// Durability band for the water/binder ratio, inclusive on both ends.
const (
	RatioLowerBound = 0.4
	RatioUpperBound = 0.6
)

// RatioStatus classifies a water/binder ratio.
type RatioStatus string

const (
	RatioInsufficientBinder RatioStatus = "insufficient_binder"
	RatioWithinNorms        RatioStatus = "within_norms"
	RatioOutsideOptimal     RatioStatus = "outside_optimal"
)

// RatioEvaluation is the live readout shown next to the form.
type RatioEvaluation struct {
	Binder   float64     `json:"binder"`
	Ratio    float64     `json:"ratio"`
	Computed bool        `json:"computed"`
	Status   RatioStatus `json:"status"`
	Message  string      `json:"message"`
	// Gauge is the ratio capped at 1.0 for progress-bar display.
	Gauge float64 `json:"gauge"`
}

// EvaluateRatio computes water / (cement + slag + fly ash) and classifies it
// against the durability band. With no binder the ratio is not computed.
func EvaluateRatio(in MixInputs) RatioEvaluation {
	binder := in.Binder()
	if binder <= 0 {
		return RatioEvaluation{
			Binder:  binder,
			Status:  RatioInsufficientBinder,
			Message: "Insufficient binder data: enter cement, slag or fly ash to compute the ratio.",
		}
	}

	ratio := in.Water / binder
	eval := RatioEvaluation{
		Binder:   binder,
		Ratio:    ratio,
		Computed: true,
		Gauge:    math.Min(ratio, 1.0),
	}
	if ratio >= RatioLowerBound && ratio <= RatioUpperBound {
		eval.Status = RatioWithinNorms
		eval.Message = "Ratio within durability norms."
	} else {
		eval.Status = RatioOutsideOptimal
		eval.Message = "Ratio outside the optimal zone (risk of porosity or cracking)."
	}
	return eval
}
