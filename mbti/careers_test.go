// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

import "testing"

func TestLearningStyle(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"INTJ", "Independent, structured, and goal-oriented learning."},
		{"ENFP", "Creative, interactive, and exploratory learning."},
		{"ISTJ", "Clear instructions, checklists, and practice."},
		{"ENTP", "Debate, experimentation, and open-ended projects."},
		{"ISFP", "Balanced, multimodal learning."},
		{"ESFP", "Balanced, multimodal learning."},
		{"", "Balanced, multimodal learning."},
	}

	for _, tt := range tests {
		if got := LearningStyle(tt.label); got != tt.want {
			t.Errorf("LearningStyle(%q) = %q, want %q", tt.label, got, tt.want)
		}
	}
}

func TestCareers_Seeded(t *testing.T) {
	got := Careers("INTJ")
	want := []string{"Data Scientist", "Software Engineer", "Research Analyst", "Product Manager"}

	if len(got) != len(want) {
		t.Fatalf("Careers(INTJ) returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Careers(INTJ)[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCareers_Fallback(t *testing.T) {
	for _, label := range []string{"ISFP", "XXXX", ""} {
		got := Careers(label)
		if len(got) != 3 {
			t.Fatalf("Careers(%q) returned %d entries, want the 3-item fallback", label, len(got))
		}
		want := []string{"Analyst", "Engineer", "Consultant"}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Careers(%q)[%d] = %q, want %q", label, i, got[i], want[i])
			}
		}
	}
}
