// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Vinthiya3014/MBTI-project/store"
	"github.com/Vinthiya3014/MBTI-project/testutil"
)

func TestRouter_PublicRoutes(t *testing.T) {
	mux := NewRouter(store.NewMemoryUserStore(), testutil.NewSessionManager())

	tests := []struct {
		method         string
		path           string
		expectedStatus int
	}{
		{"GET", "/health", http.StatusOK},
		{"GET", "/", http.StatusOK},
		{"GET", "/get_started", http.StatusOK},
		{"GET", "/register", http.StatusOK},
		{"GET", "/login", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d, got %d", tt.expectedStatus, w.Code)
			}
		})
	}
}

func TestRouter_GatedRoutesRedirectAnonymous(t *testing.T) {
	mux := NewRouter(store.NewMemoryUserStore(), testutil.NewSessionManager())

	gated := []struct {
		method string
		path   string
	}{
		{"GET", "/logout"},
		{"GET", "/home"},
		{"GET", "/questions"},
		{"GET", "/result"},
		{"GET", "/career"},
		{"GET", "/api/questions"},
		{"POST", "/api/submit_answers"},
		{"GET", "/api/result"},
		{"GET", "/api/career"},
	}

	for _, tt := range gated {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusFound {
				t.Fatalf("expected 302 for anonymous request, got %d", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Errorf("expected redirect to /login, got %q", loc)
			}
		})
	}
}

func TestRouter_GatedRoutesServeAuthenticated(t *testing.T) {
	sessions := testutil.NewSessionManager()
	mux := NewRouter(store.NewMemoryUserStore(), sessions)
	cookies := testutil.LoginSession(t, sessions, "alice")

	for _, path := range []string{"/home", "/questions", "/api/questions", "/api/career"} {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest("GET", path, nil)
			for _, c := range cookies {
				req.AddCookie(c)
			}
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Errorf("expected 200 for authenticated request, got %d", w.Code)
			}
		})
	}
}

func TestRouter_UnknownPathIs404(t *testing.T) {
	mux := NewRouter(store.NewMemoryUserStore(), testutil.NewSessionManager())

	req := httptest.NewRequest("GET", "/no-such-page", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
