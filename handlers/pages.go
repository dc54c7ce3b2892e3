// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Vinthiya3014/MBTI-project/mbti"
	"github.com/Vinthiya3014/MBTI-project/models"
	"github.com/Vinthiya3014/MBTI-project/session"
	"github.com/Vinthiya3014/MBTI-project/store"
	"github.com/Vinthiya3014/MBTI-project/templates"
)

type PageHandler struct {
	users    store.UserStore
	sessions *session.Manager
}

func NewPageHandler(users store.UserStore, sessions *session.Manager) *PageHandler {
	return &PageHandler{users: users, sessions: sessions}
}

// Landing handles GET /
func (h *PageHandler) Landing(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "home.html", nil)
}

// GetStarted handles GET /get_started
func (h *PageHandler) GetStarted(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "get_started.html", nil)
}

// RegisterForm handles GET /register
func (h *PageHandler) RegisterForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "register.html", models.AuthPage{})
}

// Register handles POST /register
func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))

	if username == "" || password == "" {
		templates.Render(w, "register.html", models.AuthPage{Error: "Username and password are required"})
		return
	}

	err := h.users.Create(r.Context(), username, password)
	if errors.Is(err, store.ErrDuplicateUser) {
		templates.Render(w, "register.html", models.AuthPage{Error: "User already exists!"})
		return
	}
	if err != nil {
		slog.Error("failed to create user", "error", err, "username", username)
		templates.Render(w, "register.html", models.AuthPage{Error: "Registration failed, try again"})
		return
	}

	slog.Info("user registered", "username", username)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LoginForm handles GET /login
func (h *PageHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "login.html", models.AuthPage{})
}

// Login handles POST /login
func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))

	ok, err := h.users.Verify(r.Context(), username, password)
	if err != nil {
		slog.Error("failed to verify credentials", "error", err, "username", username)
		templates.Render(w, "login.html", models.AuthPage{Error: "Login failed, try again"})
		return
	}

	// Unknown user and wrong password get the same message
	if !ok {
		templates.Render(w, "login.html", models.AuthPage{Error: "Invalid credentials"})
		return
	}

	sess := h.sessions.Start(w, r)
	sess.User = username

	slog.Info("user logged in", "username", username)
	http.Redirect(w, r, "/home", http.StatusFound)
}

// Logout handles GET /logout. Clears the whole session, including any
// stored quiz result.
func (h *PageHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sessions.Clear(w, r)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// Home handles GET /home
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "home.html", nil)
}

// Questions handles GET /questions
func (h *PageHandler) Questions(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, "questions.html", models.QuestionsPage{Questions: mbti.Questions})
}

// Result handles GET /result
func (h *PageHandler) Result(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if !sess.HasResult() {
		http.Redirect(w, r, "/questions", http.StatusFound)
		return
	}
	templates.Render(w, "result.html", models.ResultPage{
		Type:   sess.MBTIType,
		Scores: sess.MBTIScores,
	})
}

// Career handles GET /career
func (h *PageHandler) Career(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if !sess.HasResult() {
		http.Redirect(w, r, "/questions", http.StatusFound)
		return
	}
	templates.Render(w, "career.html", models.CareerPage{
		Type:     sess.MBTIType,
		Learning: mbti.LearningStyle(sess.MBTIType),
		Careers:  mbti.Careers(sess.MBTIType),
	})
}
