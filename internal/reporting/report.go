package reporting

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/spboyer/mixlab/internal/mix"
)

// Report is everything the terminal renderer needs about one prediction.
type Report struct {
	Strength    float64
	Tier        Tier
	Explanation []FeatureImportance
	Ratio       mix.RatioEvaluation
}

// ReportOptions controls terminal rendering.
type ReportOptions struct {
	// BarWidth is the width in cells of the longest importance bar.
	BarWidth int
	// Color enables lipgloss styling of the tier and ratio badge.
	Color bool
	// Notes appends the interpretation note after the chart.
	Notes bool
}

const defaultBarWidth = 30

var printer = message.NewPrinter(language.English)

var tierColors = map[Tier]lipgloss.Color{
	TierLow:       lipgloss.Color("#8a8a8a"),
	TierStandard:  lipgloss.Color("#3fb950"),
	TierRobust:    lipgloss.Color("#58a6ff"),
	TierUltraHigh: lipgloss.Color("#d4a72c"),
}

// FormatRatio renders the water/binder readout on a single line.
func FormatRatio(eval mix.RatioEvaluation, color bool) string {
	if !eval.Computed {
		return "Water/binder ratio: n/a  " + badge(eval, color)
	}
	return printer.Sprintf("Water/binder ratio: %.2f  %s", eval.Ratio, badge(eval, color))
}

func badge(eval mix.RatioEvaluation, color bool) string {
	var (
		label string
		fg    lipgloss.Color
	)
	switch eval.Status {
	case mix.RatioWithinNorms:
		label, fg = "[ok] "+eval.Message, "#3fb950"
	case mix.RatioOutsideOptimal:
		label, fg = "[warn] "+eval.Message, "#d29922"
	default:
		label, fg = "[info] "+eval.Message, "#58a6ff"
	}
	if !color {
		return label
	}
	return lipgloss.NewStyle().Foreground(fg).Render(label)
}

// FormatStrength renders the estimate with its tier label.
func FormatStrength(strength float64, tier Tier, color bool) string {
	label := tier.Label()
	if color {
		label = lipgloss.NewStyle().Bold(true).Foreground(tierColors[tier]).Render(label)
	}
	return printer.Sprintf("Estimated strength: %.2f MPa (%s)", strength, label)
}

// FormatReport writes the full terminal report for one prediction.
func FormatReport(w io.Writer, r Report, opts ReportOptions) error {
	var b strings.Builder
	b.WriteString(FormatRatio(r.Ratio, opts.Color))
	b.WriteString("\n")
	b.WriteString(FormatStrength(r.Strength, r.Tier, opts.Color))
	b.WriteString("\n")

	if len(r.Explanation) > 0 {
		b.WriteString("\nWhy this result?\n")
		writeBars(&b, r.Explanation, opts.BarWidth)
		if opts.Notes {
			b.WriteString("\n")
			b.WriteString(InterpretationText())
			b.WriteString("\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func writeBars(b *strings.Builder, ranked []FeatureImportance, width int) {
	if width <= 0 {
		width = defaultBarWidth
	}

	nameWidth := 0
	maxWeight := 0.0
	for _, fi := range ranked {
		nameWidth = max(nameWidth, runewidth.StringWidth(fi.Feature))
		maxWeight = max(maxWeight, fi.Importance)
	}

	for _, fi := range ranked {
		n := 0
		if maxWeight > 0 && fi.Importance > 0 {
			n = int(fi.Importance/maxWeight*float64(width) + 0.5)
		}
		fmt.Fprintf(b, "  %s %s %s\n",
			padRight(fi.Feature, nameWidth),
			padRight(strings.Repeat("█", n), width),
			printer.Sprintf("%.3f", fi.Importance))
	}
}

// padRight pads s with spaces to the given display width.
func padRight(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
