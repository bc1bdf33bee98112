package handler

import (
	"net/http"

	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/handler/dto"
)

// handleCreateSession starts a new calculator wizard.
// @Summary Start a calculator session
// @Description Creates a wizard session waiting for the call type.
// @Tags sessions
// @Produce json
// @Success 201 {object} dto.SessionResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions [post]
func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.sessions.Create(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, dto.ToSessionResponse(v))
}

// handleGetSession returns a session with freshly computed results.
// @Summary Get a calculator session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id} [get]
func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	v, err := h.sessions.Get(r.Context(), sessionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSessionResponse(v))
}

// handleDeleteSession ends a session.
// @Summary End a calculator session
// @Tags sessions
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id} [delete]
func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	if err := h.sessions.Delete(r.Context(), sessionID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleSelectMode picks the call direction.
// @Summary Select call type
// @Description Only valid while selecting the call type. Installs the mode's default parameters.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectModeRequest true "Call type"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id}/mode [post]
func (h *Handler) handleSelectMode(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectModeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	v, err := h.sessions.SelectMode(r.Context(), sessionID, domain.Mode(req.Mode))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSessionResponse(v))
}

// handleSelectIndustry records the industry and opens the calculator.
// @Summary Select industry
// @Description Only valid after the call type is chosen.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SelectIndustryRequest true "Industry"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id}/industry [post]
func (h *Handler) handleSelectIndustry(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SelectIndustryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	v, err := h.sessions.SelectIndustry(r.Context(), sessionID, domain.Industry(req.Industry))
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSessionResponse(v))
}

// handleSetParameters updates calculator inputs and recomputes the results.
// @Summary Set calculator parameters
// @Description Values are clamped to each parameter's range and snapped to its step.
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.SetParametersRequest true "Parameter values by name"
// @Success 200 {object} dto.SessionResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id}/parameters [patch]
func (h *Handler) handleSetParameters(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	var req dto.SetParametersRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	updates, err := dto.ToParamUpdates(req.Parameters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	v, err := h.sessions.SetParameters(r.Context(), sessionID, updates)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSessionResponse(v))
}

// handleStartOver resets the wizard.
// @Summary Start over
// @Description Clears call type, industry and parameters from any step.
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /sessions/{id}/start-over [post]
func (h *Handler) handleStartOver(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := extractSessionID(w, r)
	if !ok {
		return
	}

	v, err := h.sessions.StartOver(r.Context(), sessionID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.ToSessionResponse(v))
}
