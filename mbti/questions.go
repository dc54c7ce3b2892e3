// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package mbti

// NumQuestions is the fixed questionnaire length.
const NumQuestions = 16

// Questions is the ordered questionnaire. Index i belongs to exactly
// one dimension group (see Dimensions); the assignment is positional:
// i%4 == 0 → I/E, 1 → N/S, 2 → T/F, 3 → J/P.
var Questions = []string{
	"I prefer spending time with a group rather than alone.",
	"I enjoy discussing abstract theories more than practical details.",
	"I make decisions based on logic rather than emotions.",
	"I like having a structured plan rather than being spontaneous.",
	"I recharge my energy by being around people.",
	"I focus on possibilities and the 'big picture' more than facts.",
	"I value fairness and rules over harmony in decision making.",
	"I prefer a to-do list and deadlines rather than going with the flow.",
	"I find it easy to talk to strangers.",
	"I often think about future possibilities rather than present realities.",
	"I prioritize efficiency over people's feelings.",
	"I feel more comfortable when my schedule is organized.",
	"I prefer group activities over solitary ones.",
	"I trust my imagination more than my senses.",
	"I believe rules and systems are more important than empathy.",
	"I prefer making plans to improvising.",
}

// Dimension is one bipolar personality axis. First is the pole scored
// directly from the group sum; Second receives the complement. Ties go
// to First.
type Dimension struct {
	First   string
	Second  string
	Indices [4]int
}

// Dimensions in label order. The four index sets are disjoint and cover
// all 16 question indices.
var Dimensions = [4]Dimension{
	{First: "I", Second: "E", Indices: [4]int{0, 4, 8, 12}},
	{First: "N", Second: "S", Indices: [4]int{1, 5, 9, 13}},
	{First: "T", Second: "F", Indices: [4]int{2, 6, 10, 14}},
	{First: "J", Second: "P", Indices: [4]int{3, 7, 11, 15}},
}
