// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package train

import (
	"fmt"
	"sort"
)

// KNNClassifier is a k-nearest-neighbors classifier over scaled
// features. Fitting just stores the training set; prediction is an
// exact scan, which is fine at questionnaire-dataset sizes.
type KNNClassifier struct {
	K        int
	Features [][]float64
	Classes  []int
}

func NewKNNClassifier(k int) *KNNClassifier {
	return &KNNClassifier{K: k}
}

// Fit stores the training samples.
func (c *KNNClassifier) Fit(X [][]float64, y []int) error {
	if len(X) != len(y) {
		return fmt.Errorf("feature/label length mismatch: %d vs %d", len(X), len(y))
	}
	if len(X) == 0 {
		return fmt.Errorf("cannot fit on an empty dataset")
	}
	c.Features = X
	c.Classes = y
	return nil
}

// Predict returns the majority class among the k nearest neighbors.
// Vote ties go to the lowest class ID so predictions are
// deterministic.
func (c *KNNClassifier) Predict(x []float64) int {
	type neighbor struct {
		dist  float64
		class int
	}

	neighbors := make([]neighbor, len(c.Features))
	for i, row := range c.Features {
		var d float64
		for j, v := range row {
			diff := v - x[j]
			d += diff * diff
		}
		neighbors[i] = neighbor{dist: d, class: c.Classes[i]}
	}

	sort.Slice(neighbors, func(i, j int) bool {
		if neighbors[i].dist != neighbors[j].dist {
			return neighbors[i].dist < neighbors[j].dist
		}
		return neighbors[i].class < neighbors[j].class
	})

	k := c.K
	if k > len(neighbors) {
		k = len(neighbors)
	}

	votes := make(map[int]int)
	for _, n := range neighbors[:k] {
		votes[n.class]++
	}

	best, bestVotes := -1, -1
	for class, count := range votes {
		if count > bestVotes || (count == bestVotes && class < best) {
			best, bestVotes = class, count
		}
	}
	return best
}

// PredictBatch predicts a class for every row.
func (c *KNNClassifier) PredictBatch(X [][]float64) []int {
	out := make([]int, len(X))
	for i, x := range X {
		out[i] = c.Predict(x)
	}
	return out
}
