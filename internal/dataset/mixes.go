package dataset

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spboyer/mixlab/internal/mix"
)

// labelColumns name the optional column used to identify a row in output.
var labelColumns = []string{"name", "label", "id", "mix"}

// Sample is one mix read from a batch file.
type Sample struct {
	Line   int
	Label  string
	Inputs mix.MixInputs
}

// LoadMixes reads every row of a CSV batch file. See Mixes.
func LoadMixes(path string) ([]Sample, error) {
	t, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	return Mixes(t.Headers, t.Rows)
}

// Mixes converts rows to mixes. Columns are matched through the mix field
// names and their aliases, case-insensitively; unknown columns (such as a
// measured strength) are ignored. Missing or empty dosages are 0, a missing
// age is the form default, and the aggregate constants always apply.
func Mixes(headers []string, rows []Row) ([]Sample, error) {
	columns := make(map[string]string)
	label := ""
	for _, h := range headers {
		if name, ok := mix.CanonicalName(h); ok {
			if prev, dup := columns[name]; dup {
				return nil, fmt.Errorf("csv: columns %q and %q both map to %s", prev, h, name)
			}
			columns[name] = h
			continue
		}
		for _, l := range labelColumns {
			if label == "" && strings.EqualFold(h, l) {
				label = h
			}
		}
	}
	if len(columns) == 0 {
		return nil, errors.New("csv: no mix columns found in header")
	}

	samples := make([]Sample, 0, len(rows))
	var errs []error
	for _, row := range rows {
		in := mix.MixInputs{Age: mix.DefaultAge}
		for name, header := range columns {
			raw := row.Values[header]
			if raw == "" {
				continue
			}
			v, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("row %d: %s: %q is not a number", row.Line, header, raw))
				continue
			}
			if err := in.Set(name, v); err != nil {
				errs = append(errs, fmt.Errorf("row %d: %w", row.Line, err))
			}
		}

		s := Sample{Line: row.Line, Inputs: in.WithHiddenDefaults()}
		if label != "" {
			s.Label = row.Values[label]
		}
		if s.Label == "" {
			s.Label = fmt.Sprintf("row %d", row.Line)
		}
		samples = append(samples, s)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return samples, nil
}
