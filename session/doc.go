// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session provides in-memory, signed-cookie browser sessions.

# State

Each session holds the authenticated username and, once the quiz has
been submitted, the computed type label and per-dimension scores:

	sess := sessions.Start(w, r)
	sess.User = "alice"

State lives in a process-held map keyed by session ID; restarting the
server logs everyone out. The cookie carries only the ID plus an HMAC
signature (see the auth package), so clients cannot mint or swap IDs.

# Lifecycle

  - Start: get-or-create, sets the cookie on first contact
  - Get: read-only lookup; nil for anonymous or tampered cookies
  - Clear: logout — drops all state and expires the cookie

Handlers mutate the returned *Session directly. Requests within one
browser session are assumed sequential; the manager's lock only guards
the session map itself.
*/
package session
