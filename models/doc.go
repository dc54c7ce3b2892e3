// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and page types for the quiz
server.

# Request Types

Types for parsing incoming JSON:

  - SubmitAnswersRequest: answers ([]float64, 16 expected)

# Response Types

Types for JSON responses:

  - QuestionsResponse: count, questions
  - ResultResponse: ok, type, scores
  - CareerResponse: ok, type, learning, careers
  - ErrorResponse: ok (always false), error

Every API failure uses ErrorResponse so clients can branch on "ok"
alone.

# Page Data

Types handed to the HTML templates:

  - AuthPage: inline error for register/login forms
  - QuestionsPage: questionnaire statements
  - ResultPage: type label and per-letter scores
  - CareerPage: label with learning style and career list
*/
package models
