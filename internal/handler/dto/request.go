package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mtlprog/roicalc/internal/domain"
)

// SelectModeRequest represents the request body for POST /sessions/:id/mode.
type SelectModeRequest struct {
	Mode string `json:"mode" example:"inbound"`
}

// SelectIndustryRequest represents the request body for POST /sessions/:id/industry.
type SelectIndustryRequest struct {
	Industry string `json:"industry" example:"health"`
}

// SetParametersRequest represents the request body for PATCH /sessions/:id/parameters.
// Values are numbers, except hasReceptionStaff which is a boolean.
type SetParametersRequest struct {
	Parameters map[string]json.RawMessage `json:"parameters" swaggertype:"object"`
}

// CalculateRequest represents the request body for POST /calculate.
// Parameters omitted from the request keep their defaults.
type CalculateRequest struct {
	Mode       string                     `json:"mode" example:"outbound"`
	Parameters map[string]json.RawMessage `json:"parameters,omitempty" swaggertype:"object"`
}

// ToParamUpdates converts raw JSON values to parameter updates in name order.
// Type checking against the catalogue happens in the domain.
func ToParamUpdates(raw map[string]json.RawMessage) ([]domain.ParamUpdate, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	updates := make([]domain.ParamUpdate, 0, len(names))
	for _, name := range names {
		value := bytes.TrimSpace(raw[name])
		if len(value) == 0 || bytes.Equal(value, []byte("null")) {
			return nil, fmt.Errorf("%w: %s must be a number or boolean", domain.ErrInvalidParameterValue, name)
		}

		var flag bool
		if err := json.Unmarshal(value, &flag); err == nil {
			updates = append(updates, domain.FlagUpdate(name, flag))
			continue
		}

		var number float64
		if err := json.Unmarshal(value, &number); err == nil {
			updates = append(updates, domain.NumberUpdate(name, number))
			continue
		}

		return nil, fmt.Errorf("%w: %s must be a number or boolean", domain.ErrInvalidParameterValue, name)
	}
	return updates, nil
}
