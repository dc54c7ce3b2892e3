// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// answerMax is the top of the per-question answer scale [0, answerMax].
const answerMax = 5

var (
	// ErrAnswerCount marks submissions that are not exactly NumQuestions long.
	ErrAnswerCount = errors.New("wrong number of answers")
	// ErrAnswerRange marks answers outside the [0, 5] scale.
	ErrAnswerRange = errors.New("answer out of range")
)

// Score computes the four-letter type label and per-pole percentage
// scores for a full answer set.
//
// Each dimension's first pole (I, N, T, J) is scored as the group sum
// expressed as a percentage of the maximum group sum, rounded to one
// decimal. The opposing pole gets 100 minus the rounded value, so
// scores[x] + scores[complement(x)] == 100.0 for every pair. The label
// takes the first pole's letter on ties.
func Score(answers []float64) (string, map[string]float64, error) {
	if len(answers) != NumQuestions {
		return "", nil, fmt.Errorf("incomplete answers (%d/%d): %w", len(answers), NumQuestions, ErrAnswerCount)
	}
	for i, v := range answers {
		if v < 0 || v > answerMax || math.IsNaN(v) {
			return "", nil, fmt.Errorf("answer %d is %v, outside [0, %d]: %w", i+1, v, answerMax, ErrAnswerRange)
		}
	}

	scores := make(map[string]float64, 8)
	var label strings.Builder

	for _, dim := range Dimensions {
		var sum float64
		for _, idx := range dim.Indices {
			sum += answers[idx]
		}
		maxSum := float64(answerMax * len(dim.Indices))
		raw := round1(sum / maxSum * 100)

		// Complement comes from the rounded value; the pair sums to
		// exactly 100 even when rounding moved the raw score.
		scores[dim.First] = raw
		scores[dim.Second] = 100 - raw

		if scores[dim.First] >= scores[dim.Second] {
			label.WriteString(dim.First)
		} else {
			label.WriteString(dim.Second)
		}
	}

	return label.String(), scores, nil
}

// Predict is the scoring entry point for the API. It delegates to the
// rule-based Score; the offline-trained classifier artifacts are not
// consulted.
// TODO: load cmd/train artifacts here once an inference path exists.
func Predict(answers []float64) (string, map[string]float64, error) {
	return Score(answers)
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
