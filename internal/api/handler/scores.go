package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/scorekeep/scorekeep/internal/api/middleware"
	"github.com/scorekeep/scorekeep/internal/api/request"
	"github.com/scorekeep/scorekeep/internal/api/response"
	"github.com/scorekeep/scorekeep/internal/model"
	"github.com/scorekeep/scorekeep/internal/services/scores"
)

// ScoresHandler handles the high-score endpoints
type ScoresHandler struct {
	scoreService *scores.Service
}

// NewScoresHandler creates a new scores handler
func NewScoresHandler(scoreService *scores.Service) *ScoresHandler {
	return &ScoresHandler{
		scoreService: scoreService,
	}
}

// Submit handles POST /high-scores
func (h *ScoresHandler) Submit(w http.ResponseWriter, r *http.Request) {
	handle := middleware.MustGetHandle(r.Context())

	var req request.SubmitScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Score == nil {
		WriteError(w, NewInvalidRequestError("score is required"))
		return
	}

	// An omitted userHandle defaults to the token's handle; a
	// mismatching one is rejected
	if req.UserHandle != "" && model.Handle(req.UserHandle) != handle {
		WriteError(w, NewForbiddenError("userHandle does not match the authenticated handle"))
		return
	}

	stored, err := h.scoreService.Submit(r.Context(), &model.Score{
		Level:     req.Level,
		Handle:    handle,
		Score:     *req.Score,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SubmitScore{
		Message:  "High score posted successfully",
		NewScore: response.ScoreFromModel(stored),
	})
}

// List handles GET /high-scores
func (h *ScoresHandler) List(w http.ResponseWriter, r *http.Request) {
	level := r.URL.Query().Get("level")

	page := 1
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			WriteError(w, NewInvalidRequestError("page must be a positive integer"))
			return
		}
		page = parsed
	}

	records, err := h.scoreService.List(r.Context(), level, page)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoresFromModel(records))
}

// Get handles GET /high-scores/{id}
func (h *ScoresHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := scoreID(w, r)
	if !ok {
		return
	}

	record, err := h.scoreService.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ScoreFromModel(record))
}

// Delete handles DELETE /high-scores/{id}
func (h *ScoresHandler) Delete(w http.ResponseWriter, r *http.Request) {
	handle := middleware.MustGetHandle(r.Context())

	id, ok := scoreID(w, r)
	if !ok {
		return
	}

	if err := h.scoreService.Delete(r.Context(), id, handle); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Message{Message: "High score deleted"})
}

// scoreID parses the {id} path variable. A non-numeric id cannot name
// any record, so it answers 404 rather than 400
func scoreID(w http.ResponseWriter, r *http.Request) (model.ScoreID, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		WriteError(w, model.ErrScoreNotFound)
		return 0, false
	}
	return model.ScoreID(id), true
}
