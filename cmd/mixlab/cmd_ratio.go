package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/reporting"
)

func newRatioCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "ratio",
		Short: "Evaluate the water/binder ratio of a mix",
		Long: `Evaluate the water/binder ratio of a mix against the 0.40-0.60 durability band.

The binder is cement + slag + fly ash. No model is needed.`,
		Args: cobra.NoArgs,
	}
	flags := addMixFlags(cmd.Flags())
	cmd.Flags().StringVar(&format, "format", "text", "Output format: text | json")
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadProject(cmd)
		if err != nil {
			return err
		}
		in, err := flags.inputs(cmd.Flags(), formSpec(cfg))
		if err != nil {
			return err
		}
		eval := mix.EvaluateRatio(in)

		w := cmd.OutOrStdout()
		switch format {
		case "json":
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(eval)
		case "text":
			fmt.Fprintln(w, reporting.FormatRatio(eval, isTerminal(w)))
			return nil
		default:
			return fmt.Errorf("unknown format %q (want text or json)", format)
		}
	}
	return cmd
}
