package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/artifacts"
	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/model"
	"github.com/spboyer/mixlab/internal/prediction"
)

func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check that the model artifacts load and agree",
		Long: `Check that the model, scaler and feature list load, agree on the number of
features, and that every feature maps to a field the mix form collects.

Finishes with a prediction on the default form mix.`,
		Args: cobra.NoArgs,
		RunE: runCheck,
	}
	cmd.Flags().String("format", "text", "Output format: text | json")
	return cmd
}

type featureJSON struct {
	Index      int      `json:"index"`
	Name       string   `json:"name"`
	Field      string   `json:"field,omitempty"`
	Importance *float64 `json:"importance,omitempty"`
}

type checkJSONReport struct {
	Source     string              `json:"source"`
	Ready      bool                `json:"ready"`
	Error      string              `json:"error,omitempty"`
	ErrorKind  artifacts.ErrorKind `json:"errorKind,omitempty"`
	Artifact   string              `json:"artifact,omitempty"`
	Features   []featureJSON       `json:"features,omitempty"`
	Unresolved []string            `json:"unresolved,omitempty"`
	Smoke      *prediction.Result  `json:"smoke,omitempty"`
	SmokeInput *mix.MixInputs      `json:"smokeInput,omitempty"`
}

func runCheck(cmd *cobra.Command, _ []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", format)
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	src, err := artifactSource(cfg)
	if err != nil {
		return err
	}

	report := checkJSONReport{Source: src.String()}
	a, loadErr := artifacts.Load(cmd.Context(), src, artifactNames(cfg))
	if loadErr != nil {
		report.Error = loadErr.Error()
		var le *artifacts.LoadError
		if errors.As(loadErr, &le) {
			report.ErrorKind = le.Kind
			report.Artifact = le.Artifact
		}
	} else {
		report.Features = describeFeatures(a)
		report.Unresolved = model.UnresolvedFeatures(a.Features())
		if len(report.Unresolved) == 0 {
			in := formSpec(cfg).Defaults().WithHiddenDefaults()
			res, err := prediction.NewInvoker(a).Predict(in)
			if err != nil {
				loadErr = fmt.Errorf("smoke prediction: %w", err)
				report.Error = loadErr.Error()
			} else {
				report.Smoke = res
				report.SmokeInput = &in
			}
		} else {
			loadErr = fmt.Errorf("%w: features %s are not collected by the form",
				model.ErrSchemaMismatch, strings.Join(report.Unresolved, ", "))
			report.Error = loadErr.Error()
		}
	}
	report.Ready = loadErr == nil

	w := cmd.OutOrStdout()
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}
	} else {
		writeCheckText(w, report)
	}
	return loadErr
}

func describeFeatures(a *model.Artifacts) []featureJSON {
	names := a.Features()
	weights := a.Importances()
	out := make([]featureJSON, len(names))
	for i, name := range names {
		out[i] = featureJSON{Index: i, Name: name}
		if field, ok := mix.CanonicalName(name); ok {
			out[i].Field = field
		}
		if len(weights) == len(names) {
			w := weights[i]
			out[i].Importance = &w
		}
	}
	return out
}

func writeCheckText(w io.Writer, r checkJSONReport) {
	fmt.Fprintf(w, "Artifacts: %s\n\n", r.Source)
	if len(r.Features) > 0 {
		nameWidth := len("Feature")
		for _, f := range r.Features {
			nameWidth = max(nameWidth, len(f.Name))
		}
		fmt.Fprintf(w, "  %3s  %s  %s  %s\n", "#", padRight("Feature", nameWidth), padRight("Field", 18), "Importance")
		fmt.Fprintf(w, "  %s\n", strings.Repeat("─", 3+2+nameWidth+2+18+2+len("Importance")))
		for _, f := range r.Features {
			field := f.Field
			if field == "" {
				field = "✗ unresolved"
			}
			importance := "-"
			if f.Importance != nil {
				importance = fmt.Sprintf("%.3f", *f.Importance)
			}
			fmt.Fprintf(w, "  %3d  %s  %s  %s\n", f.Index, padRight(f.Name, nameWidth), padRight(field, 18), importance)
		}
		fmt.Fprintln(w)
	}

	if r.Ready {
		fmt.Fprintf(w, "✅ Model ready. Default mix predicts %.2f MPa (%s).\n", r.Smoke.Strength, r.Smoke.Tier.Label())
		return
	}
	if r.ErrorKind != "" {
		fmt.Fprintf(w, "❌ %s artifact failed to load (%s)\n", r.Artifact, r.ErrorKind)
	} else {
		fmt.Fprintln(w, "❌ Model not usable")
	}
	fmt.Fprintf(w, "   %s\n", r.Error)
}
