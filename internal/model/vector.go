package model

import "github.com/spboyer/mixlab/internal/mix"

// BuildFeatureVector projects in onto the feature ordering. A feature the
// inputs cannot supply, or one listed twice, fails the whole vector.
func BuildFeatureVector(in mix.MixInputs, features []string) (FeatureVector, error) {
	var (
		missing   []string
		duplicate []string
		seen      = make(map[string]bool, len(features))
		vec       = make(FeatureVector, 0, len(features))
	)

	for _, name := range features {
		v, ok := in.Lookup(name)
		if !ok {
			missing = append(missing, name)
			continue
		}
		canon, _ := mix.CanonicalName(name)
		if seen[canon] {
			duplicate = append(duplicate, name)
			continue
		}
		seen[canon] = true
		vec = append(vec, v)
	}

	if len(missing) > 0 || len(duplicate) > 0 {
		return nil, &SchemaMismatchError{Missing: missing, Duplicate: duplicate}
	}
	return vec, nil
}

// UnresolvedFeatures returns feature names no mix field answers to.
func UnresolvedFeatures(features []string) []string {
	var out []string
	for _, name := range features {
		if _, ok := mix.CanonicalName(name); !ok {
			out = append(out, name)
		}
	}
	return out
}
