// Package model defines the capabilities an externally trained strength
// model must expose, plus the backends that implement them.
package model

import (
	"errors"
	"fmt"
)

//go:generate go tool mockgen -source=model.go -destination=mock_model.go -package=model

// ErrSchemaMismatch is returned when inputs, features and model dimensions
// disagree.
var ErrSchemaMismatch = errors.New("feature schema mismatch")

// FeatureVector is a mix encoded in the model's fixed feature ordering.
type FeatureVector []float64

// Transformer normalizes a feature vector before prediction.
type Transformer interface {
	Transform(x FeatureVector) (FeatureVector, error)
}

// Predictor turns a normalized feature vector into a strength estimate.
type Predictor interface {
	Predict(x FeatureVector) (float64, error)
}

// ImportanceReporter is implemented by predictors that expose one
// importance weight per feature.
type ImportanceReporter interface {
	FeatureImportances() []float64
}

// Dimensioned is implemented by backends that know how many features they
// expect.
type Dimensioned interface {
	NumFeatures() int
}

// Artifacts is the loaded model bundle. It is read-only once built and safe
// to share between requests.
type Artifacts struct {
	predictor   Predictor
	transformer Transformer
	features    []string
}

// NewArtifacts bundles a predictor, its transformer and the feature
// ordering they were trained with. A nil transformer means identity.
func NewArtifacts(p Predictor, t Transformer, features []string) (*Artifacts, error) {
	if p == nil {
		return nil, errors.New("artifacts: predictor is required")
	}
	if len(features) == 0 {
		return nil, errors.New("artifacts: feature list is empty")
	}
	if t == nil {
		t = IdentityTransformer{}
	}
	if err := checkDimension("predictor", p, len(features)); err != nil {
		return nil, err
	}
	if err := checkDimension("transformer", t, len(features)); err != nil {
		return nil, err
	}

	f := make([]string, len(features))
	copy(f, features)
	return &Artifacts{predictor: p, transformer: t, features: f}, nil
}

// Features returns a copy of the feature ordering.
func (a *Artifacts) Features() []string {
	f := make([]string, len(a.features))
	copy(f, a.features)
	return f
}

// Transform applies the bundled transformer.
func (a *Artifacts) Transform(x FeatureVector) (FeatureVector, error) {
	return a.transformer.Transform(x)
}

// Predict applies the bundled predictor.
func (a *Artifacts) Predict(x FeatureVector) (float64, error) {
	return a.predictor.Predict(x)
}

// Importances returns the predictor's importance weights, or nil when it
// exposes none.
func (a *Artifacts) Importances() []float64 {
	r, ok := a.predictor.(ImportanceReporter)
	if !ok {
		return nil
	}
	w := r.FeatureImportances()
	if len(w) == 0 {
		return nil
	}
	out := make([]float64, len(w))
	copy(out, w)
	return out
}

func checkDimension(component string, v any, want int) error {
	d, ok := v.(Dimensioned)
	if !ok {
		return nil
	}
	if got := d.NumFeatures(); got != want {
		return &SchemaMismatchError{
			Component: component,
			Expected:  want,
			Got:       got,
		}
	}
	return nil
}

func vectorLength(component string, x FeatureVector, want int) error {
	if len(x) != want {
		return &SchemaMismatchError{Component: component, Expected: want, Got: len(x)}
	}
	return nil
}

// SchemaMismatchError describes how a feature vector or feature list failed
// to match the model schema.
type SchemaMismatchError struct {
	// Missing lists feature names the inputs cannot supply.
	Missing []string
	// Duplicate lists feature names that appear more than once.
	Duplicate []string

	// Component, Expected and Got describe a dimension mismatch.
	Component string
	Expected  int
	Got       int
}

func (e *SchemaMismatchError) Error() string {
	switch {
	case len(e.Missing) > 0 && len(e.Duplicate) > 0:
		return fmt.Sprintf("%v: missing features %v, duplicate features %v", ErrSchemaMismatch, e.Missing, e.Duplicate)
	case len(e.Missing) > 0:
		return fmt.Sprintf("%v: missing features %v", ErrSchemaMismatch, e.Missing)
	case len(e.Duplicate) > 0:
		return fmt.Sprintf("%v: duplicate features %v", ErrSchemaMismatch, e.Duplicate)
	default:
		return fmt.Sprintf("%v: %s expects %d features, got %d", ErrSchemaMismatch, e.Component, e.Expected, e.Got)
	}
}

func (e *SchemaMismatchError) Unwrap() error { return ErrSchemaMismatch }
