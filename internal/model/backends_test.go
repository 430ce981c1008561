package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinearRegressor(t *testing.T) {
	l, err := NewLinearRegressor(LinearArgs{
		Coefficients: []float64{0.1, 0.5},
		Intercept:    2,
		Importances:  []float64{0.7, 0.3},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, l.NumFeatures())

	y, err := l.Predict(FeatureVector{300, 10})
	require.NoError(t, err)
	assert.InDelta(t, 37.0, y, 1e-9)

	_, err = l.Predict(FeatureVector{1})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	assert.Equal(t, []float64{0.7, 0.3}, l.FeatureImportances())
}

func TestLinearRegressorValidation(t *testing.T) {
	_, err := NewLinearRegressor(LinearArgs{})
	require.Error(t, err)

	_, err = NewLinearRegressor(LinearArgs{Coefficients: []float64{1, 2}, Importances: []float64{1}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 importances for 2 coefficients")
}

func TestLinearRegressorWithoutImportances(t *testing.T) {
	l, err := NewLinearRegressor(LinearArgs{Coefficients: []float64{1}})
	require.NoError(t, err)
	assert.Nil(t, l.FeatureImportances())
}

// stump splits on feature 0 at 10: left leaf 5, right leaf 15.
func stump(left, right float64) Tree {
	return Tree{Nodes: []TreeNode{
		{Feature: 0, Threshold: 10, Left: 1, Right: 2},
		{Left: -1, Right: -1, Value: left},
		{Left: -1, Right: -1, Value: right},
	}}
}

func TestForestRegressor(t *testing.T) {
	f, err := NewForestRegressor(ForestArgs{
		NumFeatures: 2,
		Trees:       []Tree{stump(5, 15), stump(25, 35)},
		Importances: []float64{1, 0},
	})
	require.NoError(t, err)

	y, err := f.Predict(FeatureVector{10, 0})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, y, 1e-9, "threshold is inclusive on the left")

	y, err = f.Predict(FeatureVector{10.5, 0})
	require.NoError(t, err)
	assert.InDelta(t, 25.0, y, 1e-9)

	_, err = f.Predict(FeatureVector{1, 2, 3})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.Equal(t, []float64{1, 0}, f.FeatureImportances())
}

func TestForestRegressorRejectsBadTrees(t *testing.T) {
	tests := []struct {
		name string
		args ForestArgs
		want string
	}{
		{"no features", ForestArgs{Trees: []Tree{stump(1, 2)}}, "n_features"},
		{"no trees", ForestArgs{NumFeatures: 1}, "no trees"},
		{"empty tree", ForestArgs{NumFeatures: 1, Trees: []Tree{{}}}, "no nodes"},
		{
			"feature out of range",
			ForestArgs{NumFeatures: 1, Trees: []Tree{{Nodes: []TreeNode{
				{Feature: 3, Left: 1, Right: 2}, {Left: -1, Right: -1}, {Left: -1, Right: -1},
			}}}},
			"out of range",
		},
		{
			"cycle",
			ForestArgs{NumFeatures: 1, Trees: []Tree{{Nodes: []TreeNode{
				{Feature: 0, Left: 0, Right: 1}, {Left: -1, Right: -1},
			}}}},
			"invalid child",
		},
		{"importance count", ForestArgs{NumFeatures: 2, Trees: []Tree{stump(1, 2)}, Importances: []float64{1}}, "importances"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewForestRegressor(tt.args)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStandardScaler(t *testing.T) {
	s, err := NewStandardScaler(ScalerArgs{Mean: []float64{10, 5}, Scale: []float64{2, 0}})
	require.NoError(t, err)

	out, err := s.Transform(FeatureVector{14, 7})
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{2, 2}, out, "zero scale behaves as 1")

	_, err = s.Transform(FeatureVector{1})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	_, err = NewStandardScaler(ScalerArgs{Mean: []float64{1}, Scale: []float64{1, 2}})
	require.Error(t, err)
}

func TestIdentityTransformerCopies(t *testing.T) {
	in := FeatureVector{1, 2}
	out, err := IdentityTransformer{}.Transform(in)
	require.NoError(t, err)
	out[0] = 99
	assert.Equal(t, 1.0, in[0])
}

func TestDecodePredictor(t *testing.T) {
	p, err := DecodePredictor(Document{Kind: KindLinear, Params: map[string]any{
		"coefficients": []any{0.1, 0.2},
		"intercept":    1.5,
	}})
	require.NoError(t, err)
	y, err := p.Predict(FeatureVector{10, 10})
	require.NoError(t, err)
	assert.InDelta(t, 4.5, y, 1e-9)

	p, err = DecodePredictor(Document{Kind: KindForest, Params: map[string]any{
		"n_features": 1.0,
		"trees": []any{
			map[string]any{"nodes": []any{
				map[string]any{"feature": 0.0, "threshold": 10.0, "left": 1.0, "right": 2.0},
				map[string]any{"left": -1.0, "right": -1.0, "value": 5.0},
				map[string]any{"left": -1.0, "right": -1.0, "value": 15.0},
			}},
		},
	}})
	require.NoError(t, err)
	y, err = p.Predict(FeatureVector{11})
	require.NoError(t, err)
	assert.InDelta(t, 15.0, y, 1e-9)

	_, err = DecodePredictor(Document{Kind: KindLinear, Params: map[string]any{
		"coefficients": []any{1.0},
		"bias":         2.0,
	}})
	require.Error(t, err, "unknown params are rejected")

	_, err = DecodePredictor(Document{Kind: "svm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported predictor kind "svm"`)
}

func TestDecodeTransformer(t *testing.T) {
	tr, err := DecodeTransformer(Document{Kind: KindStandardScaler, Params: map[string]any{
		"mean":  []any{1.0},
		"scale": []any{2.0},
	}})
	require.NoError(t, err)
	out, err := tr.Transform(FeatureVector{5})
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{2}, out)

	tr, err = DecodeTransformer(Document{Kind: KindIdentity})
	require.NoError(t, err)
	assert.IsType(t, IdentityTransformer{}, tr)

	_, err = DecodeTransformer(Document{Kind: "minmax"})
	require.Error(t, err)
}
