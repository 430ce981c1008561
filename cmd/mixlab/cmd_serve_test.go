package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/mixlab/internal/webserver"
)

func TestServeCommand_Flags(t *testing.T) {
	cmd := newServeCommand()

	port := cmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "8501", port.DefValue)
	assert.Equal(t, webserver.DefaultPort, 8501)

	noBrowser := cmd.Flags().Lookup("no-browser")
	require.NotNil(t, noBrowser)
	assert.Equal(t, "false", noBrowser.DefValue)

	assert.NotNil(t, cmd.Flags().Lookup("cors-origin"))
}

func TestRootCommand_Subcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	for _, want := range []string{"predict", "ratio", "check", "serve", "init"} {
		assert.Contains(t, names, want)
	}
	assert.NotNil(t, root.PersistentFlags().Lookup("debug"))
	assert.NotNil(t, root.PersistentFlags().Lookup("artifacts"))
}
