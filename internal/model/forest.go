package model

import (
	"errors"
	"fmt"
)

// TreeNode is one node of a binary regression tree. A node with both
// children negative is a leaf. Samples go left when x[Feature] <= Threshold.
type TreeNode struct {
	Feature   int     `mapstructure:"feature"`
	Threshold float64 `mapstructure:"threshold"`
	Left      int     `mapstructure:"left"`
	Right     int     `mapstructure:"right"`
	Value     float64 `mapstructure:"value"`
}

func (n TreeNode) leaf() bool { return n.Left < 0 && n.Right < 0 }

// Tree is a flattened regression tree rooted at node 0.
type Tree struct {
	Nodes []TreeNode `mapstructure:"nodes"`
}

// ForestArgs holds the parameters of a forest regressor document.
type ForestArgs struct {
	NumFeatures int       `mapstructure:"n_features"`
	Trees       []Tree    `mapstructure:"trees"`
	Importances []float64 `mapstructure:"importances"`
}

// ForestRegressor averages the outputs of its trees.
type ForestRegressor struct {
	nFeatures   int
	trees       []Tree
	importances []float64
}

// NewForestRegressor validates the tree structure and builds the ensemble.
// Children must come after their parent so evaluation always terminates.
func NewForestRegressor(args ForestArgs) (*ForestRegressor, error) {
	if args.NumFeatures <= 0 {
		return nil, errors.New("forest model must declare n_features > 0")
	}
	if len(args.Trees) == 0 {
		return nil, errors.New("forest model has no trees")
	}
	if len(args.Importances) > 0 && len(args.Importances) != args.NumFeatures {
		return nil, fmt.Errorf("forest model has %d importances for %d features",
			len(args.Importances), args.NumFeatures)
	}

	for ti, tree := range args.Trees {
		if len(tree.Nodes) == 0 {
			return nil, fmt.Errorf("tree %d has no nodes", ti)
		}
		for ni, n := range tree.Nodes {
			if n.leaf() {
				continue
			}
			if n.Feature < 0 || n.Feature >= args.NumFeatures {
				return nil, fmt.Errorf("tree %d node %d: feature index %d out of range [0,%d)",
					ti, ni, n.Feature, args.NumFeatures)
			}
			for _, child := range []int{n.Left, n.Right} {
				if child <= ni || child >= len(tree.Nodes) {
					return nil, fmt.Errorf("tree %d node %d: invalid child index %d", ti, ni, child)
				}
			}
		}
	}

	return &ForestRegressor{
		nFeatures:   args.NumFeatures,
		trees:       args.Trees,
		importances: append([]float64(nil), args.Importances...),
	}, nil
}

func (f *ForestRegressor) NumFeatures() int { return f.nFeatures }

func (f *ForestRegressor) Predict(x FeatureVector) (float64, error) {
	if err := vectorLength("forest model", x, f.nFeatures); err != nil {
		return 0, err
	}
	sum := 0.0
	for _, tree := range f.trees {
		sum += tree.eval(x)
	}
	return sum / float64(len(f.trees)), nil
}

func (t Tree) eval(x FeatureVector) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.leaf() {
			return n.Value
		}
		if x[n.Feature] <= n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

func (f *ForestRegressor) FeatureImportances() []float64 {
	if len(f.importances) == 0 {
		return nil
	}
	return append([]float64(nil), f.importances...)
}
