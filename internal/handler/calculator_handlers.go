package handler

import (
	"net/http"

	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/handler/dto"
	"github.com/mtlprog/roicalc/internal/service"
)

// handleCalculate runs a one-off calculation without a session.
// @Summary Calculate ROI
// @Description Omitted parameters keep their defaults. Values are clamped to their ranges.
// @Tags calculator
// @Accept json
// @Produce json
// @Param request body dto.CalculateRequest true "Mode and parameter values"
// @Success 200 {object} dto.CalculateResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /calculate [post]
func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	var req dto.CalculateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	updates, err := dto.ToParamUpdates(req.Parameters)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	params, result, err := service.Calculate(domain.Mode(req.Mode), updates)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.CalculateResponse{
		Mode:       string(params.Mode()),
		Parameters: params,
		Results:    dto.ToResultResponse(result),
	})
}

// handleListParameters returns the input catalogue for a mode.
// @Summary List calculator parameters
// @Tags calculator
// @Produce json
// @Param mode query string true "inbound or outbound"
// @Success 200 {object} dto.ParametersResponse
// @Failure 422 {object} dto.ErrorResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /parameters [get]
func (h *Handler) handleListParameters(w http.ResponseWriter, r *http.Request) {
	mode := domain.Mode(r.URL.Query().Get("mode"))
	if !mode.IsValid() {
		respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "mode must be 'inbound' or 'outbound'")
		return
	}

	respondJSON(w, http.StatusOK, dto.ToParametersResponse(mode))
}

// handleListIndustries returns the selectable industries.
// @Summary List industries
// @Tags calculator
// @Produce json
// @Success 200 {object} dto.IndustriesResponse
// @Failure 429 {object} dto.ErrorResponse
// @Router /industries [get]
func (h *Handler) handleListIndustries(w http.ResponseWriter, r *http.Request) {
	resp := dto.IndustriesResponse{
		Industries: make([]dto.IndustryResponse, len(domain.Industries)),
	}
	for i, industry := range domain.Industries {
		resp.Industries[i] = dto.IndustryResponse{ID: string(industry), Label: industry.Label()}
	}

	respondJSON(w, http.StatusOK, resp)
}
