package model

import (
	"errors"
	"fmt"
)

// LinearArgs holds the parameters of a linear regressor document.
type LinearArgs struct {
	Coefficients []float64 `mapstructure:"coefficients"`
	Intercept    float64   `mapstructure:"intercept"`
	Importances  []float64 `mapstructure:"importances"`
}

// LinearRegressor predicts intercept + coefficients·x.
type LinearRegressor struct {
	coef        []float64
	intercept   float64
	importances []float64
}

// NewLinearRegressor validates args and builds the regressor.
func NewLinearRegressor(args LinearArgs) (*LinearRegressor, error) {
	if len(args.Coefficients) == 0 {
		return nil, errors.New("linear model has no coefficients")
	}
	if len(args.Importances) > 0 && len(args.Importances) != len(args.Coefficients) {
		return nil, fmt.Errorf("linear model has %d importances for %d coefficients",
			len(args.Importances), len(args.Coefficients))
	}
	return &LinearRegressor{
		coef:        append([]float64(nil), args.Coefficients...),
		intercept:   args.Intercept,
		importances: append([]float64(nil), args.Importances...),
	}, nil
}

func (l *LinearRegressor) NumFeatures() int { return len(l.coef) }

func (l *LinearRegressor) Predict(x FeatureVector) (float64, error) {
	if err := vectorLength("linear model", x, len(l.coef)); err != nil {
		return 0, err
	}
	y := l.intercept
	for i, c := range l.coef {
		y += c * x[i]
	}
	return y, nil
}

func (l *LinearRegressor) FeatureImportances() []float64 {
	if len(l.importances) == 0 {
		return nil
	}
	return append([]float64(nil), l.importances...)
}
