// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/Vinthiya3014/MBTI-project/handlers"
	"github.com/Vinthiya3014/MBTI-project/middleware"
	"github.com/Vinthiya3014/MBTI-project/session"
	"github.com/Vinthiya3014/MBTI-project/store"
)

func NewRouter(users store.UserStore, sessions *session.Manager) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	pages := handlers.NewPageHandler(users, sessions)
	api := handlers.NewAPIHandler(sessions)

	// gated wraps a handler with logging and the login redirect
	gated := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.RequireLogin(sessions, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Public pages
	mux.HandleFunc("GET /{$}", middleware.WithLogging(pages.Landing))
	mux.HandleFunc("GET /get_started", middleware.WithLogging(pages.GetStarted))
	mux.HandleFunc("GET /register", middleware.WithLogging(pages.RegisterForm))
	mux.HandleFunc("POST /register", middleware.WithLogging(pages.Register))
	mux.HandleFunc("GET /login", middleware.WithLogging(pages.LoginForm))
	mux.HandleFunc("POST /login", middleware.WithLogging(pages.Login))

	// Gated pages
	mux.HandleFunc("GET /logout", gated(pages.Logout))
	mux.HandleFunc("GET /home", gated(pages.Home))
	mux.HandleFunc("GET /questions", gated(pages.Questions))
	mux.HandleFunc("GET /result", gated(pages.Result))
	mux.HandleFunc("GET /career", gated(pages.Career))

	// Gated quiz API
	mux.HandleFunc("GET /api/questions", gated(api.Questions))
	mux.HandleFunc("POST /api/submit_answers", gated(api.SubmitAnswers))
	mux.HandleFunc("GET /api/result", gated(api.Result))
	mux.HandleFunc("GET /api/career", gated(api.Career))

	return mux
}
