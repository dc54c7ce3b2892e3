// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines the HTTP route table.

# Routes

Public:

	GET  /            Landing page
	GET  /get_started Informational page
	GET  /register    Registration form
	POST /register    Create account
	GET  /login       Login form
	POST /login       Authenticate
	GET  /health      Liveness check

Gated behind a logged-in session (anonymous requests are redirected to
/login):

	GET  /logout
	GET  /home
	GET  /questions
	GET  /result
	GET  /career
	GET  /api/questions
	POST /api/submit_answers
	GET  /api/result
	GET  /api/career

Routes use Go 1.22+ method patterns; "GET /{$}" keeps the landing page
from swallowing unknown paths. Every route is wrapped in the logging
middleware.
*/
package router
