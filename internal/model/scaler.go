package model

import (
	"errors"
	"fmt"
)

// ScalerArgs holds the parameters of a standard scaler document.
type ScalerArgs struct {
	Mean  []float64 `mapstructure:"mean"`
	Scale []float64 `mapstructure:"scale"`
}

// StandardScaler maps x to (x - mean) / scale per feature. A zero scale is
// treated as 1, matching how constant features are fitted.
type StandardScaler struct {
	mean  []float64
	scale []float64
}

func NewStandardScaler(args ScalerArgs) (*StandardScaler, error) {
	if len(args.Mean) == 0 {
		return nil, errors.New("standard scaler has no mean")
	}
	if len(args.Scale) != len(args.Mean) {
		return nil, fmt.Errorf("standard scaler has %d scales for %d means", len(args.Scale), len(args.Mean))
	}
	scale := make([]float64, len(args.Scale))
	for i, s := range args.Scale {
		if s == 0 {
			s = 1
		}
		scale[i] = s
	}
	return &StandardScaler{
		mean:  append([]float64(nil), args.Mean...),
		scale: scale,
	}, nil
}

func (s *StandardScaler) NumFeatures() int { return len(s.mean) }

func (s *StandardScaler) Transform(x FeatureVector) (FeatureVector, error) {
	if err := vectorLength("standard scaler", x, len(s.mean)); err != nil {
		return nil, err
	}
	out := make(FeatureVector, len(x))
	for i, v := range x {
		out[i] = (v - s.mean[i]) / s.scale[i]
	}
	return out, nil
}

// IdentityTransformer returns a copy of its input.
type IdentityTransformer struct{}

func (IdentityTransformer) Transform(x FeatureVector) (FeatureVector, error) {
	return append(FeatureVector(nil), x...), nil
}
