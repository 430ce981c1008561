// Package prediction runs a validated mix through the loaded model and
// classifies the result.
package prediction

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/model"
	"github.com/spboyer/mixlab/internal/reporting"
)

// Result is the outcome of one prediction. Identical inputs against the same
// artifacts always produce an identical Result.
type Result struct {
	Strength    float64                       `json:"strength"`
	Tier        reporting.Tier                `json:"tier"`
	Explanation []reporting.FeatureImportance `json:"explanation,omitempty"`
	Ratio       mix.RatioEvaluation           `json:"ratio"`
}

// Report converts the result for the terminal renderer.
func (r *Result) Report() reporting.Report {
	return reporting.Report{
		Strength:    r.Strength,
		Tier:        r.Tier,
		Explanation: r.Explanation,
		Ratio:       r.Ratio,
	}
}

// Invoker runs predictions against one immutable set of artifacts.
type Invoker struct {
	artifacts *model.Artifacts
}

func NewInvoker(a *model.Artifacts) *Invoker {
	return &Invoker{artifacts: a}
}

// Features returns the model's feature ordering.
func (inv *Invoker) Features() []string {
	return inv.artifacts.Features()
}

// Predict validates the inputs, encodes them in the model's feature order,
// normalizes, predicts and classifies. Any failure aborts the whole call; no
// partial Result is returned. The estimate is not range-checked.
func (inv *Invoker) Predict(in mix.MixInputs) (*Result, error) {
	if err := mix.Validate(in); err != nil {
		return nil, err
	}

	x, err := model.BuildFeatureVector(in, inv.artifacts.Features())
	if err != nil {
		return nil, err
	}
	x, err = inv.artifacts.Transform(x)
	if err != nil {
		return nil, fmt.Errorf("normalizing features: %w", err)
	}
	strength, err := inv.artifacts.Predict(x)
	if err != nil {
		return nil, fmt.Errorf("predicting strength: %w", err)
	}

	explanation, err := reporting.RankImportances(inv.artifacts.Features(), inv.artifacts.Importances())
	if err != nil {
		// The estimate stands on its own; only the chart is dropped.
		slog.Warn("skipping explanation", "error", err)
		explanation = nil
	}

	tier := reporting.ClassifyStrength(strength)
	slog.Debug("prediction complete", "strength", strength, "tier", tier)
	return &Result{
		Strength:    strength,
		Tier:        tier,
		Explanation: explanation,
		Ratio:       mix.EvaluateRatio(in),
	}, nil
}

// IsInputError reports whether err was caused by the caller's inputs rather
// than by the model.
func IsInputError(err error) bool {
	var verr *mix.ValidationError
	return errors.As(err, &verr)
}
