package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/projectconfig"
	"github.com/spboyer/mixlab/internal/scaffold"
)

func newInitCommand() *cobra.Command {
	var (
		artifactsDir string
		force        bool
	)
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a .mixlab.yaml and demo model artifacts",
		Long: `Create a starter project: a .mixlab.yaml and a small demo model, scaler
and feature list so predict, check and serve work immediately.

Replace the demo artifacts with your trained ones before relying on the numbers.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			abs, err := filepath.Abs(root)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(abs, 0o755); err != nil {
				return fmt.Errorf("creating %s: %w", abs, err)
			}

			written, err := scaffold.Write(abs, artifactsDir, force)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, p := range written {
				rel, err := filepath.Rel(abs, p)
				if err != nil {
					rel = p
				}
				fmt.Fprintf(w, "  created %s\n", rel)
			}
			fmt.Fprintf(w, "\nProject ready in %s. Try:\n  mixlab predict --cement 300 --water 180 --age 28\n", abs)
			return nil
		},
	}
	cmd.Flags().StringVar(&artifactsDir, "artifacts-dir", projectconfig.DefaultArtifactsDir, "Directory for the model artifacts, relative to the project")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	return cmd
}
