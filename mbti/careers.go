// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

// Four seeded type labels; everything else falls back to the generic
// entries below.
var learningStyles = map[string]string{
	"INTJ": "Independent, structured, and goal-oriented learning.",
	"ENFP": "Creative, interactive, and exploratory learning.",
	"ISTJ": "Clear instructions, checklists, and practice.",
	"ENTP": "Debate, experimentation, and open-ended projects.",
}

var careerSuggestions = map[string][]string{
	"INTJ": {"Data Scientist", "Software Engineer", "Research Analyst", "Product Manager"},
	"ENFP": {"Marketing Specialist", "Teacher", "Entrepreneur", "Public Relations"},
	"ISTJ": {"Accountant", "Operations Manager", "Quality Engineer", "Civil Engineer"},
	"ENTP": {"Consultant", "Startup Founder", "UX Researcher", "Innovation Lead"},
}

const fallbackLearningStyle = "Balanced, multimodal learning."

var fallbackCareers = []string{"Analyst", "Engineer", "Consultant"}

// LearningStyle returns the learning-style description for a type
// label, or a generic fallback for unseeded labels.
func LearningStyle(label string) string {
	if style, ok := learningStyles[label]; ok {
		return style
	}
	return fallbackLearningStyle
}

// Careers returns career suggestions for a type label, or a generic
// fallback list for unseeded labels.
func Careers(label string) []string {
	if careers, ok := careerSuggestions[label]; ok {
		return careers
	}
	return fallbackCareers
}
