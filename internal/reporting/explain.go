package reporting

import (
	"fmt"
	"sort"

	"github.com/spboyer/mixlab/internal/model"
)

// FeatureImportance is one bar of the explanation chart.
type FeatureImportance struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// RankImportances pairs feature names with the model's global importance
// weights and sorts them ascending, so the most influential feature is drawn
// last (top of a horizontal bar chart). Equal weights keep artifact order.
// It returns nil when the model exposes no weights.
func RankImportances(names []string, weights []float64) ([]FeatureImportance, error) {
	if weights == nil {
		return nil, nil
	}
	if len(names) != len(weights) {
		return nil, fmt.Errorf("%w: %d importance weights for %d features",
			model.ErrSchemaMismatch, len(weights), len(names))
	}

	ranked := make([]FeatureImportance, len(names))
	for i, name := range names {
		ranked[i] = FeatureImportance{Feature: name, Importance: weights[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance < ranked[j].Importance
	})
	return ranked, nil
}
