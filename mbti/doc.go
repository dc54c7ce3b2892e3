// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package mbti holds the questionnaire catalog, the scoring engine, and
the career/learning-style lookup tables. Everything here is pure data
and computation; no I/O.

# Questionnaire

Questions is a fixed, ordered list of 16 statements. Each index belongs
to exactly one of four bipolar dimensions (I/E, N/S, T/F, J/P); the
four index groups are disjoint and cover all 16 positions.

# Scoring

	label, scores, err := mbti.Score(answers)

Answers are 16 values on a 0-5 scale. Submissions with the wrong count
fail with ErrAnswerCount; out-of-range values fail with ErrAnswerRange.
Per dimension, the first pole (I, N, T, J) scores the group sum as a
percentage of the maximum, rounded to one decimal; the second pole gets
the complement of the rounded value, so each pair sums to exactly 100.
Because the complement is not rounded independently, the two displayed
values can differ from their unrounded counterparts by up to 0.1.

The label concatenates one letter per dimension in I/E, N/S, T/F, J/P
order; ties select the first pole.

Predict is the serving-path entry point and currently delegates to
Score.

# Lookups

LearningStyle and Careers map a label to static suggestions, seeded for
INTJ, ENFP, ISTJ, and ENTP with a generic fallback for everything else.
*/
package mbti
