// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package train

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// NumFeatures is the Q1..Q16 answer column count.
const NumFeatures = 16

// Dataset is the labeled training data: one row of 16 answers per
// sample with its MBTI label.
type Dataset struct {
	Features [][]float64
	Labels   []string
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	return len(d.Features)
}

// LoadCSV reads a labeled dataset from a CSV file with columns Q1..Q16
// and MBTI. Header names are normalized by stripping whitespace. Rows
// with missing or non-numeric answers or a blank label are dropped;
// labels are uppercased.
func LoadCSV(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Column lookup by normalized name ("Q 1 " -> "Q1")
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.ReplaceAll(strings.TrimSpace(name), " ", "")] = i
	}

	qCols := make([]int, NumFeatures)
	for i := 0; i < NumFeatures; i++ {
		name := fmt.Sprintf("Q%d", i+1)
		idx, ok := cols[name]
		if !ok {
			return nil, fmt.Errorf("dataset is missing column %s", name)
		}
		qCols[i] = idx
	}
	labelCol, ok := cols["MBTI"]
	if !ok {
		return nil, fmt.Errorf("dataset is missing column MBTI")
	}

	ds := &Dataset{}
	for {
		record, err := r.Read()
		if err != nil {
			break
		}

		row := make([]float64, NumFeatures)
		valid := true
		for i, idx := range qCols {
			if idx >= len(record) {
				valid = false
				break
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(record[idx]), 64)
			if err != nil {
				valid = false
				break
			}
			row[i] = v
		}

		label := ""
		if labelCol < len(record) {
			label = strings.ToUpper(strings.TrimSpace(record[labelCol]))
		}
		if !valid || label == "" {
			continue
		}

		ds.Features = append(ds.Features, row)
		ds.Labels = append(ds.Labels, label)
	}

	if ds.Len() == 0 {
		return nil, fmt.Errorf("dataset %s contains no usable rows", path)
	}
	return ds, nil
}
