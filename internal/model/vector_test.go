package model

import (
	"errors"
	"testing"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioInputs() mix.MixInputs {
	return mix.MixInputs{
		Cement:           300,
		Superplasticizer: 5,
		Water:            180,
		Age:              28,
	}.WithHiddenDefaults()
}

func TestBuildFeatureVectorFollowsOrdering(t *testing.T) {
	features := []string{"Age", "Water", "Cement", "FineAggregate", "CoarseAggregate", "Slag", "FlyAsh", "Superplasticizer"}

	vec, err := BuildFeatureVector(scenarioInputs(), features)
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{28, 180, 300, 750, 950, 0, 0, 5}, vec)
}

func TestBuildFeatureVectorAcceptsFrenchVocabulary(t *testing.T) {
	features := []string{"Ciment", "Laitier", "Cendres", "Superplastifiant", "Eau", "Aggregat_Gros", "Aggregat_Fin", "Jours"}

	vec, err := BuildFeatureVector(scenarioInputs(), features)
	require.NoError(t, err)
	assert.Equal(t, FeatureVector{300, 0, 0, 5, 180, 950, 750, 28}, vec)
}

func TestBuildFeatureVectorMissingFeature(t *testing.T) {
	_, err := BuildFeatureVector(scenarioInputs(), []string{"Cement", "Silica", "Water", "Limestone"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaMismatch))

	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"Silica", "Limestone"}, mismatch.Missing)
	assert.Contains(t, err.Error(), "missing features [Silica Limestone]")
}

func TestBuildFeatureVectorDuplicateFeature(t *testing.T) {
	_, err := BuildFeatureVector(scenarioInputs(), []string{"Cement", "Water", "Ciment"})
	var mismatch *SchemaMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, []string{"Ciment"}, mismatch.Duplicate)
	assert.Empty(t, mismatch.Missing)
}

func TestUnresolvedFeatures(t *testing.T) {
	assert.Nil(t, UnresolvedFeatures([]string{"Cement", "Jours"}))
	assert.Equal(t, []string{"Silica"}, UnresolvedFeatures([]string{"Cement", "Silica"}))
}
