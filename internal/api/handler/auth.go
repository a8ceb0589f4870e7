package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scorekeep/scorekeep/internal/api/request"
	"github.com/scorekeep/scorekeep/internal/api/response"
	"github.com/scorekeep/scorekeep/internal/services/identity"
	"github.com/scorekeep/scorekeep/internal/services/token"
)

// AuthHandler handles signup and login
type AuthHandler struct {
	identityService *identity.Service
	tokenService    *token.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(identityService *identity.Service, tokenService *token.Service) *AuthHandler {
	return &AuthHandler{
		identityService: identityService,
		tokenService:    tokenService,
	}
}

// Signup handles POST /signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if _, err := h.identityService.Register(r.Context(), req.UserHandle, req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.Message{Message: "User registered successfully"})
}

// Login handles POST /login. The body is decoded strictly: fields
// beyond userHandle and password fail the request
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	var req request.LoginRequest
	if err := dec.Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.UserHandle == "" {
		WriteError(w, NewInvalidRequestError("userHandle is required"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	user, err := h.identityService.Verify(r.Context(), req.UserHandle, req.Password)
	if err != nil {
		WriteError(w, err)
		return
	}

	signed, err := h.tokenService.Issue(user.Handle)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.Login{Token: signed})
}
