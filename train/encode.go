// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package train

import (
	"fmt"
	"sort"
)

// LabelEncoder maps string labels to dense integer class IDs, sorted
// alphabetically like sklearn's encoder.
type LabelEncoder struct {
	Classes []string
}

// Fit learns the sorted set of distinct labels.
func (e *LabelEncoder) Fit(labels []string) {
	seen := make(map[string]bool)
	e.Classes = e.Classes[:0]
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			e.Classes = append(e.Classes, l)
		}
	}
	sort.Strings(e.Classes)
}

// Transform converts labels to class IDs.
func (e *LabelEncoder) Transform(labels []string) ([]int, error) {
	ids := make([]int, len(labels))
	for i, l := range labels {
		idx := sort.SearchStrings(e.Classes, l)
		if idx >= len(e.Classes) || e.Classes[idx] != l {
			return nil, fmt.Errorf("unknown label %q", l)
		}
		ids[i] = idx
	}
	return ids, nil
}

// InverseTransform converts class IDs back to labels.
func (e *LabelEncoder) InverseTransform(ids []int) ([]string, error) {
	labels := make([]string, len(ids))
	for i, id := range ids {
		if id < 0 || id >= len(e.Classes) {
			return nil, fmt.Errorf("class ID %d out of range", id)
		}
		labels[i] = e.Classes[id]
	}
	return labels, nil
}
