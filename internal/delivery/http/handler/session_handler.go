package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"facility-booking/internal/delivery/dto"
	"facility-booking/internal/delivery/http/middleware"
	"facility-booking/internal/usecase"
	"facility-booking/pkg/response"
	"facility-booking/pkg/validator"
)

type SessionHandler struct {
	sessionUsecase usecase.SessionUsecase
	validator      *validator.CustomValidator
}

func NewSessionHandler(sessionUsecase usecase.SessionUsecase, validator *validator.CustomValidator) *SessionHandler {
	return &SessionHandler{
		sessionUsecase: sessionUsecase,
		validator:      validator,
	}
}

// CreateSession receives the user the host app signed in
func (h *SessionHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	token, err := h.sessionUsecase.CreateSession(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to start session")
		return
	}

	response.Success(w, http.StatusCreated, "Session started", token)
}

func (h *SessionHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	if err := h.sessionUsecase.EndSession(r.Context(), viewer, tokenID); err != nil {
		if errors.Is(err, usecase.ErrNoSession) {
			response.Unauthorized(w, "No active session")
			return
		}
		response.InternalServerError(w, "Failed to end session")
		return
	}

	response.Success(w, http.StatusOK, "Session ended", nil)
}

// GetCurrentViewer returns the signed-in user, or null data for guests
func (h *SessionHandler) GetCurrentViewer(w http.ResponseWriter, r *http.Request) {
	viewer, _ := middleware.GetViewerFromContext(r.Context())

	current := h.sessionUsecase.CurrentViewer(r.Context(), viewer)
	if current == nil {
		response.Success(w, http.StatusOK, "Viewing as a guest", nil)
		return
	}

	response.Success(w, http.StatusOK, "Current user retrieved successfully", current)
}
