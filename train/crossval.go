// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package train

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
)

// StratifiedKFold splits sample indices into folds with roughly equal
// class proportions. Indices are shuffled per class before dealing
// them round-robin, so every sample lands in exactly one fold.
func StratifiedKFold(y []int, folds int, rng *rand.Rand) [][]int {
	byClass := make(map[int][]int)
	for i, class := range y {
		byClass[class] = append(byClass[class], i)
	}

	classes := make([]int, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	out := make([][]int, folds)
	for _, class := range classes {
		idxs := byClass[class]
		rng.Shuffle(len(idxs), func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})
		for n, idx := range idxs {
			fold := n % folds
			out[fold] = append(out[fold], idx)
		}
	}
	return out
}

// CrossValidate runs stratified k-fold cross-validation with a fresh
// k-NN model per fold and returns the out-of-fold predictions.
func CrossValidate(X [][]float64, y []int, folds, k int, rng *rand.Rand) ([]int, error) {
	if folds < 2 {
		return nil, fmt.Errorf("need at least 2 folds, got %d", folds)
	}

	predictions := make([]int, len(y))
	for _, holdout := range StratifiedKFold(y, folds, rng) {
		held := make(map[int]bool, len(holdout))
		for _, idx := range holdout {
			held[idx] = true
		}

		var trainX [][]float64
		var trainY []int
		for i := range X {
			if !held[i] {
				trainX = append(trainX, X[i])
				trainY = append(trainY, y[i])
			}
		}

		model := NewKNNClassifier(k)
		if err := model.Fit(trainX, trainY); err != nil {
			return nil, fmt.Errorf("fold fit failed: %w", err)
		}
		for _, idx := range holdout {
			predictions[idx] = model.Predict(X[idx])
		}
	}
	return predictions, nil
}

// Accuracy is the fraction of matching predictions.
func Accuracy(y, pred []int) float64 {
	if len(y) == 0 {
		return 0
	}
	correct := 0
	for i := range y {
		if y[i] == pred[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(y))
}

// ClassificationReport formats per-class precision, recall, and
// support for the true/predicted class IDs.
func ClassificationReport(y, pred []int, classes []string) string {
	truePos := make([]int, len(classes))
	falsePos := make([]int, len(classes))
	support := make([]int, len(classes))

	for i := range y {
		support[y[i]]++
		if y[i] == pred[i] {
			truePos[pred[i]]++
		} else {
			falsePos[pred[i]]++
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-8s %10s %10s %10s\n", "class", "precision", "recall", "support")
	for id, name := range classes {
		precision := 0.0
		if truePos[id]+falsePos[id] > 0 {
			precision = float64(truePos[id]) / float64(truePos[id]+falsePos[id])
		}
		recall := 0.0
		if support[id] > 0 {
			recall = float64(truePos[id]) / float64(support[id])
		}
		fmt.Fprintf(&b, "%-8s %10.2f %10.2f %10d\n", name, precision, recall, support[id])
	}
	return b.String()
}
