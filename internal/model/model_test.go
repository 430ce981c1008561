package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportingPredictor struct {
	*MockPredictor
	*MockImportanceReporter
}

func TestNewArtifactsDefaultsToIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockPredictor(ctrl)

	a, err := NewArtifacts(p, nil, []string{"Cement"})
	require.NoError(t, err)

	out, err := a.Transform(FeatureVector{3})
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{3}, out)
	assert.Nil(t, a.Importances())
}

func TestNewArtifactsChecksDimensions(t *testing.T) {
	l, err := NewLinearRegressor(LinearArgs{Coefficients: []float64{1, 2, 3}})
	require.NoError(t, err)

	_, err = NewArtifacts(l, nil, []string{"Cement", "Water"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
	assert.Contains(t, err.Error(), "predictor expects 2 features, got 3")

	s, err := NewStandardScaler(ScalerArgs{Mean: []float64{0}, Scale: []float64{1}})
	require.NoError(t, err)
	_, err = NewArtifacts(l, s, []string{"Cement", "Water", "Age"})
	assert.True(t, errors.Is(err, ErrSchemaMismatch))
}

func TestNewArtifactsRequiresPredictorAndFeatures(t *testing.T) {
	_, err := NewArtifacts(nil, nil, []string{"Cement"})
	require.Error(t, err)

	ctrl := gomock.NewController(t)
	_, err = NewArtifacts(NewMockPredictor(ctrl), nil, nil)
	require.Error(t, err)
}

func TestArtifactsCopiesState(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := reportingPredictor{NewMockPredictor(ctrl), NewMockImportanceReporter(ctrl)}
	p.MockImportanceReporter.EXPECT().FeatureImportances().Return([]float64{0.4, 0.6}).Times(2)

	features := []string{"Cement", "Water"}
	a, err := NewArtifacts(p, nil, features)
	require.NoError(t, err)

	features[0] = "Slag"
	assert.Equal(t, []string{"Cement", "Water"}, a.Features())

	got := a.Features()
	got[1] = "Eau"
	assert.Equal(t, []string{"Cement", "Water"}, a.Features())

	w := a.Importances()
	w[0] = 99
	assert.Equal(t, []float64{0.4, 0.6}, a.Importances())
}

func TestArtifactsDelegatesPredict(t *testing.T) {
	ctrl := gomock.NewController(t)
	p := NewMockPredictor(ctrl)
	tr := NewMockTransformer(ctrl)

	tr.EXPECT().Transform(FeatureVector{300}).Return(FeatureVector{1.5}, nil)
	p.EXPECT().Predict(FeatureVector{1.5}).Return(42.0, nil)

	a, err := NewArtifacts(p, tr, []string{"Cement"})
	require.NoError(t, err)

	x, err := a.Transform(FeatureVector{300})
	require.NoError(t, err)
	y, err := a.Predict(x)
	require.NoError(t, err)
	assert.Equal(t, 42.0, y)
}
