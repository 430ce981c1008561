package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spboyer/mixlab/internal/scaffold"
)

// referenceMix predicts 22.45 MPa (Standard) with the demo artifacts.
var referenceMix = []string{
	"--cement", "300", "--slag", "0", "--fly-ash", "0",
	"--superplasticizer", "5", "--water", "180", "--age", "28",
}

// newProject scaffolds a demo project and makes it the working directory.
func newProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := scaffold.Write(dir, "models_prod", false)
	require.NoError(t, err)
	t.Chdir(dir)
	return dir
}

func runMixlab(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
