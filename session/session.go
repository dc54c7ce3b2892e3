// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"net/http"
	"sync"

	"github.com/Vinthiya3014/MBTI-project/auth"
)

// CookieName is the browser cookie carrying the signed session ID.
const CookieName = "quiz_session"

// Session holds the server-side state for one browser session. User is
// empty until login; MBTIType/MBTIScores are nil until a quiz result is
// stored.
type Session struct {
	User       string
	MBTIType   string
	MBTIScores map[string]float64
}

// Authenticated reports whether the session has a logged-in user.
func (s *Session) Authenticated() bool {
	return s != nil && s.User != ""
}

// HasResult reports whether a quiz result has been stored.
func (s *Session) HasResult() bool {
	return s != nil && s.MBTIType != ""
}

// Manager maps signed session cookies to in-memory session state.
// Sessions live only as long as the process; there is no persistence.
type Manager struct {
	secret string

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(secret string) *Manager {
	return &Manager{
		secret:   secret,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for the request's cookie, or nil if the
// cookie is absent, malformed, tampered with, or unknown.
func (m *Manager) Get(r *http.Request) *Session {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return nil
	}
	id, err := auth.DecodeCookie(cookie.Value, m.secret)
	if err != nil {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.sessions[id]
}

// Start returns the request's session, creating one and setting the
// cookie if the client has none.
func (m *Manager) Start(w http.ResponseWriter, r *http.Request) *Session {
	if sess := m.Get(r); sess != nil {
		return sess
	}

	id := auth.NewSessionID()
	sess := &Session{}

	m.mu.Lock()
	m.sessions[id] = sess
	m.mu.Unlock()

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    auth.EncodeCookie(id, m.secret),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return sess
}

// Clear drops the session state and expires the cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if id, err := auth.DecodeCookie(cookie.Value, m.secret); err == nil {
			m.mu.Lock()
			delete(m.sessions, id)
			m.mu.Unlock()
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
