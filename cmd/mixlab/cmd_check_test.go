package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/mixlab/internal/artifacts"
)

func TestCheckCommand_Ready(t *testing.T) {
	newProject(t)

	out, err := runMixlab(t, "", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Feature")
	assert.Contains(t, out, "Superplasticizer")
	assert.Contains(t, out, "0.330")
	assert.Contains(t, out, "✅ Model ready.")
}

func TestCheckCommand_UnresolvedFeature(t *testing.T) {
	dir := newProject(t)
	features := `["Ciment", "Laitier", "Cendres", "Eau", "Superplastifiant", "Gravier", "Aggregat_fin", "Jours"]`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models_prod", "features.json"), []byte(features), 0o644))

	out, err := runMixlab(t, "", "check")
	require.Error(t, err)
	assert.Equal(t, ExitError, exitCode(err))
	assert.Contains(t, out, "✗ unresolved")
	assert.Contains(t, err.Error(), "Gravier")
}

func TestCheckCommand_JSONReportsLoadErrorKind(t *testing.T) {
	dir := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "models_prod", "scaler.json"), []byte("{not json"), 0o644))

	out, err := runMixlab(t, "", "check", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitError, exitCode(err))

	var report checkJSONReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.Ready)
	assert.Equal(t, artifacts.KindCorrupt, report.ErrorKind)
	assert.Equal(t, artifacts.ArtifactScaler, report.Artifact)
	assert.Empty(t, report.Features)
}
