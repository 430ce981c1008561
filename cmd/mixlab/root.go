package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/webapi"
)

var version = "dev"

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mixlab",
		Short: "mixlab - concrete compressive strength predictor",
		Long: `mixlab estimates the compressive strength of a concrete mix from its
dosages and curing age using a pre-trained regression model.

It shows the water/binder ratio against the 0.40-0.60 durability band,
classifies the estimate into a performance tier and explains which
features weigh most on the model.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	debugLogging := cmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	cmd.PersistentFlags().String("artifacts", "", "Directory holding model, scaler and feature artifacts (overrides .mixlab.yaml)")
	cmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if *debugLogging {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		}
	}

	// Add subcommands
	cmd.AddCommand(newPredictCommand())
	cmd.AddCommand(newRatioCommand())
	cmd.AddCommand(newCheckCommand())
	cmd.AddCommand(newServeCommand())
	cmd.AddCommand(newInitCommand())

	return cmd
}

func execute() error {
	if version != "dev" {
		webapi.Version = version
	}
	rootCmd := newRootCommand()
	return rootCmd.Execute()
}
