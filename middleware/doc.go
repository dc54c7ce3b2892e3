// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides request logging, JSON helpers, and the
login gate.

# Logging

WithLogging logs method, path, remote address, and duration for every
wrapped handler via slog.

# Login Gate

RequireLogin short-circuits anonymous requests to the login page:

	mux.HandleFunc("GET /home", middleware.WithLogging(
		middleware.RequireLogin(sessions, pages.Home)))

The gate redirects (302) rather than returning 401/403 — both the HTML
pages and the JSON API endpoints behave this way. A session only counts
once a user has logged in; a fresh anonymous session is still gated.

# JSON Helpers

JSONResponse and ErrorResponse write responses; ErrorResponse always
uses the {ok:false, error} shape. ParseJSONBody decodes request bodies.
*/
package middleware
