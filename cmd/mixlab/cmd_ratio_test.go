package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spboyer/mixlab/internal/mix"
)

func TestRatioCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "within norms",
			args: []string{"--cement", "300", "--slag", "0", "--fly-ash", "0", "--water", "150"},
			want: "Water/binder ratio: 0.50  [ok] Ratio within durability norms.",
		},
		{
			name: "too wet",
			args: []string{"--cement", "200", "--slag", "0", "--fly-ash", "0", "--water", "180"},
			want: "Water/binder ratio: 0.90  [warn] Ratio outside the optimal zone (risk of porosity or cracking).",
		},
		{
			name: "no binder",
			args: []string{"--cement", "0", "--slag", "0", "--fly-ash", "0"},
			want: "Water/binder ratio: n/a  [info] Insufficient binder data: enter cement, slag or fly ash to compute the ratio.",
		},
		{
			name: "form defaults",
			args: nil,
			want: "Water/binder ratio: 0.33  [warn]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runMixlab(t, "", append([]string{"ratio"}, tt.args...)...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestRatioCommand_NeedsNoModel(t *testing.T) {
	t.Chdir(t.TempDir())

	out, err := runMixlab(t, "", "ratio", "--format", "json", "--cement", "250", "--slag", "50", "--fly-ash", "0", "--water", "165")
	require.NoError(t, err)

	var eval mix.RatioEvaluation
	require.NoError(t, json.Unmarshal([]byte(out), &eval))
	assert.True(t, eval.Computed)
	assert.InDelta(t, 300, eval.Binder, 1e-9)
	assert.InDelta(t, 0.55, eval.Ratio, 1e-9)
	assert.Equal(t, mix.RatioWithinNorms, eval.Status)
}
