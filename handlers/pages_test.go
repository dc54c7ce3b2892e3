// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/Vinthiya3014/MBTI-project/store"
	"github.com/Vinthiya3014/MBTI-project/testutil"
)

func authForm(username, password string) url.Values {
	return url.Values{
		"username": {username},
		"password": {password},
	}
}

func TestRegister(t *testing.T) {
	users := store.NewMemoryUserStore()
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(users, sessions)

	tests := []struct {
		name           string
		form           url.Values
		expectedStatus int
		expectedBody   string
		expectRedirect string
	}{
		{
			name:           "valid registration",
			form:           authForm("alice", "password123"),
			expectedStatus: http.StatusFound,
			expectRedirect: "/login",
		},
		{
			name:           "surrounding whitespace is trimmed",
			form:           authForm("  bob  ", "  pw  "),
			expectedStatus: http.StatusFound,
			expectRedirect: "/login",
		},
		{
			name:           "duplicate username",
			form:           authForm("alice", "other-password"),
			expectedStatus: http.StatusOK,
			expectedBody:   "User already exists!",
		},
		{
			name:           "missing username",
			form:           authForm("", "password123"),
			expectedStatus: http.StatusOK,
			expectedBody:   "Username and password are required",
		},
		{
			name:           "missing password",
			form:           authForm("carol", ""),
			expectedStatus: http.StatusOK,
			expectedBody:   "Username and password are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest(t, "POST", "/register", tt.form, nil)
			w := httptest.NewRecorder()
			handler.Register(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q", tt.expectedBody)
			}
			if tt.expectRedirect != "" {
				if loc := w.Header().Get("Location"); loc != tt.expectRedirect {
					t.Errorf("expected redirect to %s, got %q", tt.expectRedirect, loc)
				}
			}
		})
	}

	// Trimmed registration stored the trimmed username
	exists, err := users.Exists(context.Background(), "bob")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected trimmed username to be stored")
	}
}

func TestRegister_DuplicateKeepsSingleAccount(t *testing.T) {
	users := store.NewMemoryUserStore()
	handler := NewPageHandler(users, testutil.NewSessionManager())

	w := httptest.NewRecorder()
	handler.Register(w, testutil.MakeFormRequest(t, "POST", "/register", authForm("dave", "first"), nil))
	if w.Code != http.StatusFound {
		t.Fatalf("first registration failed: %d", w.Code)
	}

	w = httptest.NewRecorder()
	handler.Register(w, testutil.MakeFormRequest(t, "POST", "/register", authForm("dave", "second"), nil))
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "User already exists!") {
		t.Fatalf("expected duplicate-error page, got %d", w.Code)
	}

	// The original password still works; the second attempt changed nothing
	ok, err := users.Verify(context.Background(), "dave", "first")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Error("original credentials should survive a duplicate registration")
	}
}

func TestLogin(t *testing.T) {
	users := store.NewMemoryUserStore()
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(users, sessions)
	testutil.SeedUser(t, users, "alice", "password123")

	tests := []struct {
		name           string
		form           url.Values
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "valid credentials",
			form:           authForm("alice", "password123"),
			expectedStatus: http.StatusFound,
		},
		{
			name:           "wrong password",
			form:           authForm("alice", "wrong"),
			expectedStatus: http.StatusOK,
			expectedBody:   "Invalid credentials",
		},
		{
			name:           "unknown user",
			form:           authForm("mallory", "password123"),
			expectedStatus: http.StatusOK,
			expectedBody:   "Invalid credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeFormRequest(t, "POST", "/login", tt.form, nil)
			w := httptest.NewRecorder()
			handler.Login(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if tt.expectedBody != "" && !strings.Contains(w.Body.String(), tt.expectedBody) {
				t.Errorf("expected body to contain %q", tt.expectedBody)
			}
		})
	}
}

func TestLogin_EstablishesSession(t *testing.T) {
	users := store.NewMemoryUserStore()
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(users, sessions)
	testutil.SeedUser(t, users, "alice", "password123")

	w := httptest.NewRecorder()
	handler.Login(w, testutil.MakeFormRequest(t, "POST", "/login", authForm("alice", "password123"), nil))

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/home" {
		t.Errorf("expected redirect to /home, got %q", loc)
	}

	// The cookie maps to an authenticated session
	req := httptest.NewRequest("GET", "/home", nil)
	for _, c := range w.Result().Cookies() {
		req.AddCookie(c)
	}
	sess := sessions.Get(req)
	if !sess.Authenticated() || sess.User != "alice" {
		t.Errorf("expected authenticated session for alice, got %+v", sess)
	}
}

func TestLogout_ClearsSession(t *testing.T) {
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(store.NewMemoryUserStore(), sessions)

	cookies := testutil.LoginSession(t, sessions, "alice")

	w := httptest.NewRecorder()
	handler.Logout(w, testutil.MakeJSONRequest(t, "GET", "/logout", nil, cookies))

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("expected redirect to /login, got %q", loc)
	}

	req := testutil.MakeJSONRequest(t, "GET", "/home", nil, cookies)
	if sessions.Get(req) != nil {
		t.Error("expected session to be cleared after logout")
	}
}

func TestResultPage_RedirectsWithoutResult(t *testing.T) {
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(store.NewMemoryUserStore(), sessions)

	cookies := testutil.LoginSession(t, sessions, "alice")

	w := httptest.NewRecorder()
	handler.Result(w, testutil.MakeJSONRequest(t, "GET", "/result", nil, cookies))

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/questions" {
		t.Errorf("expected redirect to /questions, got %q", loc)
	}
}

func TestResultPage_RendersStoredResult(t *testing.T) {
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(store.NewMemoryUserStore(), sessions)

	cookies := testutil.LoginSession(t, sessions, "alice")
	req := testutil.MakeJSONRequest(t, "GET", "/result", nil, cookies)
	sess := sessions.Get(req)
	sess.MBTIType = "INTJ"
	sess.MBTIScores = map[string]float64{
		"I": 100, "E": 0, "N": 100, "S": 0,
		"T": 100, "F": 0, "J": 100, "P": 0,
	}

	w := httptest.NewRecorder()
	handler.Result(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "INTJ") {
		t.Error("expected result page to show the type label")
	}
}

func TestCareerPage_RedirectsWithoutResult(t *testing.T) {
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(store.NewMemoryUserStore(), sessions)

	cookies := testutil.LoginSession(t, sessions, "alice")

	w := httptest.NewRecorder()
	handler.Career(w, testutil.MakeJSONRequest(t, "GET", "/career", nil, cookies))

	if w.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/questions" {
		t.Errorf("expected redirect to /questions, got %q", loc)
	}
}

func TestQuestionsPage_ListsAllQuestions(t *testing.T) {
	sessions := testutil.NewSessionManager()
	handler := NewPageHandler(store.NewMemoryUserStore(), sessions)

	w := httptest.NewRecorder()
	handler.Questions(w, httptest.NewRequest("GET", "/questions", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	for _, q := range []string{
		"I prefer spending time with a group rather than alone.",
		"I prefer making plans to improvising.",
	} {
		if !strings.Contains(body, q) {
			t.Errorf("expected questionnaire page to contain %q", q)
		}
	}
}
