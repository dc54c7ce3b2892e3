// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the quiz server.

# Handler Types

Each handler is a struct with injected dependencies:

  - PageHandler: HTML pages and the form-based auth flow
  - APIHandler: JSON quiz endpoints

Handlers are created via constructor functions:

	pages := handlers.NewPageHandler(users, sessions)
	api := handlers.NewAPIHandler(sessions)

# Auth Flow

	GET/POST /register → RegisterForm / Register (duplicate → inline error, HTTP 200)
	GET/POST /login    → LoginForm / Login (failure → "Invalid credentials", HTTP 200)
	GET /logout        → Logout (clears the whole session)

Registration and login trim surrounding whitespace from both fields.
Auth failures never leak whether the username exists.

# Quiz Flow

	GET /questions            → questionnaire page
	GET /api/questions        → {count, questions}
	POST /api/submit_answers  → scores the 16 answers, stores the result
	                            in the session, returns {ok, type, scores}
	GET /result, /api/result  → stored result (page redirects to
	                            /questions when there is none; the API
	                            returns 400 "No result yet")
	GET /career, /api/career  → learning style and careers for the
	                            session's type (API defaults to INTJ)

Submissions that are not exactly 16 answers fail with HTTP 400 and
{ok:false, error}; scoring errors are forwarded verbatim in the same
shape.
*/
package handlers
