// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package train

import (
	"math/rand"
	"sort"
)

// Oversample balances classes by randomly duplicating minority-class
// samples until every class matches the majority count. The returned
// slices share rows with the input; rows are never mutated.
func Oversample(X [][]float64, y []int, rng *rand.Rand) ([][]float64, []int) {
	byClass := make(map[int][]int)
	for i, class := range y {
		byClass[class] = append(byClass[class], i)
	}

	maxCount := 0
	for _, idxs := range byClass {
		if len(idxs) > maxCount {
			maxCount = len(idxs)
		}
	}

	outX := make([][]float64, 0, maxCount*len(byClass))
	outY := make([]int, 0, maxCount*len(byClass))

	// Keep the original rows, then top up each class
	outX = append(outX, X...)
	outY = append(outY, y...)

	// Sorted class order keeps the output reproducible for a given seed
	classes := make([]int, 0, len(byClass))
	for class := range byClass {
		classes = append(classes, class)
	}
	sort.Ints(classes)

	for _, class := range classes {
		idxs := byClass[class]
		for n := len(idxs); n < maxCount; n++ {
			pick := idxs[rng.Intn(len(idxs))]
			outX = append(outX, X[pick])
			outY = append(outY, class)
		}
	}

	return outX, outY
}
