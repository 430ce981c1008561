// Package wizard collects a concrete mix interactively in the terminal.
package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/spboyer/mixlab/internal/mix"
)

// ErrCancelled is returned when the user declines to run the prediction.
var ErrCancelled = errors.New("prediction cancelled")

// RunMixWizard asks for the five dosages and the curing age, pre-filled from
// initial, then asks for confirmation. Hidden aggregate constants are applied
// to the returned inputs.
func RunMixWizard(in io.Reader, out io.Writer, form mix.FormSpec, initial mix.MixInputs) (mix.MixInputs, error) {
	fields := form.Fields
	raw := make([]string, len(fields))
	for i, f := range fields {
		v, _ := initial.Lookup(f.Name)
		raw[i] = formatDosage(v)
	}
	age := initial.Age
	if !mix.IsAgeOption(age) {
		age = form.DefaultAge
	}
	confirmed := true

	inputs := make([]huh.Field, 0, len(fields)+2)
	for i, f := range fields {
		inputs = append(inputs, huh.NewInput().
			Title(fmt.Sprintf("%s (%s)", f.Label, f.Unit)).
			Description(fmt.Sprintf("Step %s, minimum %s", formatDosage(f.Step), formatDosage(f.Min))).
			Value(&raw[i]).
			Validate(func(s string) error {
				_, err := parseDosage(s)
				return err
			}))
	}

	ageOptions := make([]huh.Option[int], len(form.AgeOptions))
	for i, d := range form.AgeOptions {
		ageOptions[i] = huh.NewOption(fmt.Sprintf("%d days", d), d)
	}
	inputs = append(inputs,
		huh.NewSelect[int]().
			Title("Curing age").
			Options(ageOptions...).
			Value(&age),
		huh.NewConfirm().
			Title("Run prediction?").
			Affirmative("Run prediction").
			Negative("Cancel").
			Value(&confirmed),
	)

	f := huh.NewForm(huh.NewGroup(inputs...)).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if file, ok := in.(*os.File); !ok || !term.IsTerminal(int(file.Fd())) {
		f = f.WithAccessible(true)
	}

	if err := f.Run(); err != nil {
		return mix.MixInputs{}, fmt.Errorf("wizard failed: %w", err)
	}
	if !confirmed {
		return mix.MixInputs{}, ErrCancelled
	}

	result := mix.MixInputs{Age: age}
	for i, fld := range fields {
		v, err := parseDosage(raw[i])
		if err != nil {
			return mix.MixInputs{}, fmt.Errorf("%s: %w", fld.Label, err)
		}
		if err := result.Set(fld.Name, v); err != nil {
			return mix.MixInputs{}, err
		}
	}
	return result.WithHiddenDefaults(), nil
}

// parseDosage accepts a non-negative number, with either '.' or ',' as the
// decimal separator.
func parseDosage(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, errors.New("a dosage is required")
	}
	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", s)
	}
	if v < 0 {
		return 0, errors.New("dosage must be zero or more")
	}
	return v, nil
}

func formatDosage(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
