// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/Vinthiya3014/MBTI-project/db"
	"github.com/Vinthiya3014/MBTI-project/session"
	"github.com/Vinthiya3014/MBTI-project/store"
)

// TestSecret signs session cookies in tests.
const TestSecret = "test-secret"

// SetupTestDB creates a fresh in-memory sqlite database with the schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// NewSessionManager returns a session manager with the test secret
func NewSessionManager() *session.Manager {
	return session.NewManager(TestSecret)
}

// SeedUser registers an account directly through the store
func SeedUser(t *testing.T, users store.UserStore, username, password string) {
	t.Helper()

	if err := users.Create(context.Background(), username, password); err != nil {
		t.Fatalf("Failed to seed user %s: %v", username, err)
	}
}

// LoginSession creates an authenticated session and returns the cookies
// a logged-in browser would carry.
func LoginSession(t *testing.T, sessions *session.Manager, username string) []*http.Cookie {
	t.Helper()

	w := httptest.NewRecorder()
	sess := sessions.Start(w, httptest.NewRequest("GET", "/", nil))
	sess.User = username

	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("Start did not set a session cookie")
	}
	return cookies
}

// MakeJSONRequest creates an HTTP test request with a JSON body
func MakeJSONRequest(t *testing.T, method, path string, body interface{}, cookies []*http.Cookie) *http.Request {
	t.Helper()

	var req *http.Request
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to marshal request body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// MakeFormRequest creates an HTTP test request with a form-encoded body
func MakeFormRequest(t *testing.T, method, path string, form url.Values, cookies []*http.Cookie) *http.Request {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}
