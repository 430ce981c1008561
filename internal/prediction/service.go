package prediction

import (
	"context"
	"errors"
	"fmt"

	"github.com/spboyer/mixlab/internal/artifacts"
	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/model"
)

// ErrModelUnavailable is returned by Service.Predict when the artifacts
// failed to load. It wraps the load error.
var ErrModelUnavailable = errors.New("model unavailable")

// Service is what the CLI and the web API talk to. It holds either a ready
// Invoker or the error that prevented loading one; the ratio readout works
// in both cases.
type Service struct {
	invoker *Invoker
	loadErr error
}

// NewService wraps loaded artifacts, or the error returned while loading
// them. Exactly one of a and loadErr should be set.
func NewService(a *model.Artifacts, loadErr error) *Service {
	if loadErr == nil && a == nil {
		loadErr = errors.New("no model artifacts provided")
	}
	if loadErr != nil {
		return &Service{loadErr: loadErr}
	}
	return &Service{invoker: NewInvoker(a)}
}

// LoadService loads artifacts from src. It never fails; a load error is kept
// and surfaced through Ready and Predict.
func LoadService(ctx context.Context, src artifacts.Source, names artifacts.Names) *Service {
	a, err := artifacts.Load(ctx, src, names)
	return NewService(a, err)
}

// Ready returns the blocking load error, or nil once a model is available.
func (s *Service) Ready() error {
	return s.loadErr
}

// Ratio evaluates the water/binder ratio. It does not need a model.
func (s *Service) Ratio(in mix.MixInputs) mix.RatioEvaluation {
	return mix.EvaluateRatio(in)
}

// Predict runs a prediction, or fails with ErrModelUnavailable.
func (s *Service) Predict(in mix.MixInputs) (*Result, error) {
	if s.loadErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrModelUnavailable, s.loadErr)
	}
	return s.invoker.Predict(in)
}

// Features returns the loaded feature ordering, or nil without a model.
func (s *Service) Features() []string {
	if s.invoker == nil {
		return nil
	}
	return s.invoker.Features()
}
