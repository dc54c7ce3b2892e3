package models

// Request types

type SubmitAnswersRequest struct {
	Answers []float64 `json:"answers"`
}

// Response types

type QuestionsResponse struct {
	Count     int      `json:"count"`
	Questions []string `json:"questions"`
}

type ResultResponse struct {
	OK     bool               `json:"ok"`
	Type   string             `json:"type"`
	Scores map[string]float64 `json:"scores"`
}

type CareerResponse struct {
	OK       bool     `json:"ok"`
	Type     string   `json:"type"`
	Learning string   `json:"learning"`
	Careers  []string `json:"careers"`
}

// ErrorResponse is the failure shape for every API endpoint.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// Page data

// AuthPage feeds the register and login templates; Error is the inline
// message ("User already exists!", "Invalid credentials") or empty.
type AuthPage struct {
	Error string
}

type QuestionsPage struct {
	Questions []string
}

type ResultPage struct {
	Type   string
	Scores map[string]float64
}

type CareerPage struct {
	Type     string
	Learning string
	Careers  []string
}
