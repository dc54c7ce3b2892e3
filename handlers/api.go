// Copyright (c) 2025 Vinthiya.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Vinthiya3014/MBTI-project/mbti"
	"github.com/Vinthiya3014/MBTI-project/middleware"
	"github.com/Vinthiya3014/MBTI-project/models"
	"github.com/Vinthiya3014/MBTI-project/session"
)

type APIHandler struct {
	sessions *session.Manager
}

func NewAPIHandler(sessions *session.Manager) *APIHandler {
	return &APIHandler{sessions: sessions}
}

// Questions handles GET /api/questions
func (h *APIHandler) Questions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.QuestionsResponse{
		Count:     mbti.NumQuestions,
		Questions: mbti.Questions,
	})
}

// SubmitAnswers handles POST /api/submit_answers
func (h *APIHandler) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if !sess.Authenticated() {
		// The login gate already covers this route; a vanished session
		// mid-flight gets the same redirect.
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	var req models.SubmitAnswersRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Incomplete or missing answers")
		return
	}
	if len(req.Answers) != mbti.NumQuestions {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Incomplete or missing answers")
		return
	}

	// Scoring error text is forwarded verbatim
	label, scores, err := mbti.Predict(req.Answers)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.MBTIType = label
	sess.MBTIScores = scores

	slog.Info("answers scored", "user", sess.User, "type", label)

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		OK:     true,
		Type:   label,
		Scores: scores,
	})
}

// Result handles GET /api/result
func (h *APIHandler) Result(w http.ResponseWriter, r *http.Request) {
	sess := h.sessions.Get(r)
	if !sess.HasResult() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "No result yet")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultResponse{
		OK:     true,
		Type:   sess.MBTIType,
		Scores: sess.MBTIScores,
	})
}

// Career handles GET /api/career. Without a stored result it falls
// back to INTJ rather than failing.
func (h *APIHandler) Career(w http.ResponseWriter, r *http.Request) {
	label := "INTJ"
	if sess := h.sessions.Get(r); sess.HasResult() {
		label = sess.MBTIType
	}

	middleware.JSONResponse(w, http.StatusOK, models.CareerResponse{
		OK:       true,
		Type:     label,
		Learning: mbti.LearningStyle(label),
		Careers:  mbti.Careers(label),
	})
}
