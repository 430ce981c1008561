package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/spboyer/mixlab/internal/dataset"
	"github.com/spboyer/mixlab/internal/mix"
	"github.com/spboyer/mixlab/internal/prediction"
	"github.com/spboyer/mixlab/internal/projectconfig"
	"github.com/spboyer/mixlab/internal/reporting"
	"github.com/spboyer/mixlab/internal/session"
	"github.com/spboyer/mixlab/internal/statistics"
	"github.com/spboyer/mixlab/internal/wizard"
)

type predictOptions struct {
	mix         *mixFlags
	format      string
	interactive bool
	csvPath     string
	rows        string
	sessionLog  bool
	notes       bool
}

func newPredictCommand() *cobra.Command {
	opts := &predictOptions{}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the compressive strength of a mix",
		Long: `Predict the compressive strength (MPa) of a concrete mix.

The mix comes from one of three places:
  - dosage flags (--cement, --slag, --fly-ash, --superplasticizer, --water, --age)
  - an interactive form (--interactive)
  - a CSV file with one mix per row (--csv), optionally limited with --rows

Coarse and fine aggregates are fixed at 950 and 750 kg/m³.

Exit codes:
  0  every prediction succeeded
  1  a mix was rejected or the model failed on it
  2  configuration or model artifacts could not be loaded`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPredict(cmd, opts)
		},
	}
	opts.mix = addMixFlags(cmd.Flags())
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text | json")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "Enter the mix in an interactive form")
	cmd.Flags().StringVar(&opts.csvPath, "csv", "", "Predict every mix in a CSV file")
	cmd.Flags().StringVar(&opts.rows, "rows", "", "Row range for --csv, e.g. 1-20 or 5")
	cmd.Flags().BoolVar(&opts.sessionLog, "session-log", false, "Record interactive edits and predictions as NDJSON")
	cmd.Flags().BoolVar(&opts.notes, "notes", true, "Print the interpretation note after the explanation")
	cmd.MarkFlagsMutuallyExclusive("interactive", "csv")
	return cmd
}

func runPredict(cmd *cobra.Command, opts *predictOptions) error {
	if opts.format != "text" && opts.format != "json" {
		return fmt.Errorf("unknown format %q (want text or json)", opts.format)
	}
	if opts.rows != "" && opts.csvPath == "" {
		return errors.New("--rows requires --csv")
	}

	cfg, err := loadProject(cmd)
	if err != nil {
		return err
	}
	form := formSpec(cfg)

	// Validate everything the user typed before paying for the model load.
	var single mix.MixInputs
	if opts.csvPath == "" && !opts.interactive {
		single, err = opts.mix.inputs(cmd.Flags(), form)
		if err != nil {
			return err
		}
	}

	svc, err := loadService(cmd, cfg)
	if err != nil {
		return err
	}
	if err := svc.Ready(); err != nil {
		return err
	}

	switch {
	case opts.csvPath != "":
		return runBatch(cmd, svc, opts)
	case opts.interactive:
		return runInteractive(cmd, svc, cfg, form, opts)
	}

	res, err := svc.Predict(single)
	if err != nil {
		return &PredictionFailureError{Message: fmt.Sprintf("prediction failed: %v", err), Err: err}
	}
	return writeResult(cmd.OutOrStdout(), single, res, opts)
}

type predictionJSON struct {
	Inputs mix.MixInputs `json:"inputs"`
	*prediction.Result
}

func writeResult(w io.Writer, in mix.MixInputs, res *prediction.Result, opts *predictOptions) error {
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(predictionJSON{Inputs: in, Result: res})
	}
	return reporting.FormatReport(w, res.Report(), reporting.ReportOptions{
		Color: isTerminal(w),
		Notes: opts.notes,
	})
}

// runInteractive drives a session: each pass through the form is an Edit,
// each confirmation a Trigger. Declining the form ends the session.
func runInteractive(cmd *cobra.Command, svc *prediction.Service, cfg *projectconfig.ProjectConfig, form mix.FormSpec, opts *predictOptions) error {
	var sessionOpts []session.Option
	if opts.sessionLog || (cfg.Session.Log != nil && *cfg.Session.Log) {
		logger, err := session.NewJSONLogger(session.DefaultLogPath(cfg.SessionLogPath()))
		if err != nil {
			return err
		}
		defer func() {
			if err := logger.Close(); err != nil {
				slog.Warn("closing session log", "error", err)
			}
		}()
		slog.Debug("recording session", "path", logger.Path())
		sessionOpts = append(sessionOpts, session.WithLogger(logger))
	}

	out := cmd.OutOrStdout()
	s := session.New(svc, form.Defaults(), sessionOpts...)
	for {
		in, err := wizard.RunMixWizard(cmd.InOrStdin(), out, form, s.View().Inputs)
		if errors.Is(err, wizard.ErrCancelled) {
			return nil
		}
		if err != nil {
			return err
		}

		view := s.Edit(in)
		fmt.Fprintln(out, reporting.FormatRatio(view.Ratio, isTerminal(out)))

		res, err := s.Trigger()
		if err != nil {
			// The session stays Idle; let the user fix the mix.
			fmt.Fprintf(out, "✗ %v\n\n", err)
			continue
		}
		if err := writeResult(out, in, res, opts); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
}

type batchRow struct {
	Line     int                 `json:"line"`
	Label    string              `json:"label"`
	Inputs   mix.MixInputs       `json:"inputs"`
	Strength float64             `json:"strength,omitempty"`
	Tier     string              `json:"tier,omitempty"`
	Ratio    mix.RatioEvaluation `json:"ratio"`
	Error    string              `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, svc *prediction.Service, opts *predictOptions) error {
	table, err := dataset.LoadCSV(opts.csvPath)
	if err != nil {
		return err
	}
	rows := table.Rows
	if opts.rows != "" {
		start, end, err := parseRowRange(opts.rows)
		if err != nil {
			return err
		}
		if rows, err = table.Range(start, end); err != nil {
			return err
		}
	}
	samples, err := dataset.Mixes(table.Headers, rows)
	if err != nil {
		return err
	}

	results := make([]batchRow, 0, len(samples))
	failed := 0
	for _, sample := range samples {
		r := batchRow{Line: sample.Line, Label: sample.Label, Inputs: sample.Inputs}
		res, err := svc.Predict(sample.Inputs)
		if err != nil {
			failed++
			r.Ratio = mix.EvaluateRatio(sample.Inputs)
			r.Error = err.Error()
		} else {
			r.Strength = res.Strength
			r.Tier = res.Tier.String()
			r.Ratio = res.Ratio
		}
		results = append(results, r)
	}

	w := cmd.OutOrStdout()
	if opts.format == "json" {
		enc := json.NewEncoder(w)
		for _, r := range results {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	} else {
		writeBatchTable(w, results)
		writeBatchSummary(w, results)
	}

	if failed > 0 {
		return &PredictionFailureError{Message: fmt.Sprintf("%d of %d mixes failed", failed, len(results))}
	}
	return nil
}

func writeBatchTable(w io.Writer, results []batchRow) {
	labelWidth := len("Mix")
	for _, r := range results {
		labelWidth = max(labelWidth, runewidth.StringWidth(r.Label))
	}

	fmt.Fprintf(w, "%s  %5s  %6s  %-14s  %s\n", padRight("Mix", labelWidth), "Row", "W/B", "Strength (MPa)", "Tier")
	fmt.Fprintln(w, strings.Repeat("─", labelWidth+2+5+2+6+2+14+2+len("UltraHighPerformance")))
	for _, r := range results {
		ratio := "n/a"
		if r.Ratio.Computed {
			ratio = fmt.Sprintf("%.2f", r.Ratio.Ratio)
		}
		if r.Error != "" {
			fmt.Fprintf(w, "%s  %5d  %6s  %-14s  ✗ %s\n", padRight(r.Label, labelWidth), r.Line, ratio, "-", r.Error)
			continue
		}
		fmt.Fprintf(w, "%s  %5d  %6s  %-14.2f  %s\n", padRight(r.Label, labelWidth), r.Line, ratio, r.Strength, r.Tier)
	}
}

func writeBatchSummary(w io.Writer, results []batchRow) {
	var strengths []float64
	for _, r := range results {
		if r.Error == "" {
			strengths = append(strengths, r.Strength)
		}
	}
	if len(strengths) == 0 {
		return
	}
	s := statistics.Summarize(strengths)
	fmt.Fprintf(w, "\n%d mixes predicted: mean %.2f MPa (%.0f%% CI %.2f to %.2f), min %.2f, max %.2f\n",
		s.Count, s.Mean, s.CI.Level*100, s.CI.Lower, s.CI.Upper, s.Min, s.Max)
	for tier := reporting.TierLow; tier <= reporting.TierUltraHigh; tier++ {
		if n := s.Tiers[tier.String()]; n > 0 {
			fmt.Fprintf(w, "  %s %d\n", padRight(tier.Label(), 24), n)
		}
	}
}

// parseRowRange accepts "N" or "N-M" (1-based, inclusive).
func parseRowRange(s string) (int, int, error) {
	first, last, isRange := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --rows %q: %w", s, err)
	}
	if !isRange {
		return start, start, nil
	}
	end, err := strconv.Atoi(strings.TrimSpace(last))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --rows %q: %w", s, err)
	}
	return start, end, nil
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
