package dto

import (
	"time"

	"github.com/mtlprog/roicalc/internal/calculator"
	"github.com/mtlprog/roicalc/internal/domain"
	"github.com/mtlprog/roicalc/internal/service"
)

// SessionResponse represents a wizard session with its derived results.
// Envelope fields are snake_case. The keys inside parameters are the camelCase
// catalogue names from GET /parameters, the same names PATCH .../parameters accepts.
type SessionResponse struct {
	ID            string          `json:"id"`
	Step          string          `json:"step"`
	Mode          *string         `json:"mode"`
	Industry      *string         `json:"industry"`
	IndustryLabel *string         `json:"industry_label"`
	Parameters    domain.Input    `json:"parameters" swaggertype:"object"`
	Results       *ResultResponse `json:"results"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	ExpiresAt     time.Time       `json:"expires_at"`
}

// ResultResponse is the results panel. roi_percent and payback_days are rounded to the
// nearest integer; the *_exact fields carry the unrounded values.
type ResultResponse struct {
	Mode                   string                        `json:"mode"`
	CurrentLaborCost       float64                       `json:"current_labor_cost"`
	LostOpportunityValue   float64                       `json:"lost_opportunity_value"`
	AISubscriptionCost     float64                       `json:"ai_subscription_cost"`
	LaborCostSaved         float64                       `json:"labor_cost_saved"`
	RecapturedOrNewRevenue float64                       `json:"recaptured_or_new_revenue"`
	MonthlyNetGain         float64                       `json:"monthly_net_gain"`
	ROIPercent             float64                       `json:"roi_percent"`
	ROIPercentExact        float64                       `json:"roi_percent_exact"`
	PaybackDays            float64                       `json:"payback_days"`
	PaybackDaysExact       float64                       `json:"payback_days_exact"`
	Inbound                *calculator.InboundBreakdown  `json:"inbound,omitempty"`
	Outbound               *calculator.OutboundBreakdown `json:"outbound,omitempty"`
}

// CalculateResponse represents the response for POST /calculate.
// As in SessionResponse, parameters is keyed by catalogue name.
type CalculateResponse struct {
	Mode       string         `json:"mode"`
	Parameters domain.Input   `json:"parameters" swaggertype:"object"`
	Results    ResultResponse `json:"results"`
}

// ParameterSpecResponse describes one input control.
type ParameterSpecResponse struct {
	Name    string  `json:"name"`
	Label   string  `json:"label"`
	Unit    string  `json:"unit,omitempty"`
	Type    string  `json:"type" enums:"number,boolean"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Step    float64 `json:"step"`
	Default any     `json:"default" swaggertype:"number"`
}

// ParametersResponse represents the response for GET /parameters.
type ParametersResponse struct {
	Mode       string                  `json:"mode"`
	Parameters []ParameterSpecResponse `json:"parameters"`
}

// IndustryResponse is one selectable industry.
type IndustryResponse struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// IndustriesResponse represents the response for GET /industries.
type IndustriesResponse struct {
	Industries []IndustryResponse `json:"industries"`
}

func optional[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

// ToResultResponse converts calculator.Result to ResultResponse.
func ToResultResponse(r calculator.Result) ResultResponse {
	return ResultResponse{
		Mode:                   string(r.Mode),
		CurrentLaborCost:       r.CurrentLaborCost,
		LostOpportunityValue:   r.LostOpportunityValue,
		AISubscriptionCost:     r.AISubscriptionCost,
		LaborCostSaved:         r.LaborCostSaved,
		RecapturedOrNewRevenue: r.RecapturedOrNewRevenue,
		MonthlyNetGain:         r.MonthlyNetGain,
		ROIPercent:             r.RoundedROIPercent(),
		ROIPercentExact:        r.ROIPercent,
		PaybackDays:            r.RoundedPaybackDays(),
		PaybackDaysExact:       r.PaybackDays,
		Inbound:                r.Inbound,
		Outbound:               r.Outbound,
	}
}

// ToSessionResponse converts service.SessionView to SessionResponse.
func ToSessionResponse(v *service.SessionView) SessionResponse {
	s := v.Session
	resp := SessionResponse{
		ID:         s.ID,
		Step:       string(s.Step),
		Mode:       optional(s.Mode),
		Industry:   optional(s.Industry),
		Parameters: s.Parameters,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  s.UpdatedAt,
		ExpiresAt:  s.ExpiresAt,
	}
	if s.Industry != "" {
		resp.IndustryLabel = optional(s.Industry.Label())
	}
	if v.Result != nil {
		r := ToResultResponse(*v.Result)
		resp.Results = &r
	}
	return resp
}

// ToParameterSpecResponse converts domain.ParamSpec to ParameterSpecResponse.
func ToParameterSpecResponse(s domain.ParamSpec) ParameterSpecResponse {
	resp := ParameterSpecResponse{
		Name:    s.Name,
		Label:   s.Label,
		Unit:    s.Unit,
		Type:    "number",
		Min:     s.Min,
		Max:     s.Max,
		Step:    s.Step,
		Default: s.Default,
	}
	if s.Boolean {
		resp.Type = "boolean"
		resp.Default = s.Default != 0
	}
	return resp
}

// ToParametersResponse builds the full parameter catalogue for a mode.
func ToParametersResponse(mode domain.Mode) ParametersResponse {
	specs := domain.Specs(mode)
	resp := ParametersResponse{
		Mode:       string(mode),
		Parameters: make([]ParameterSpecResponse, len(specs)),
	}
	for i, spec := range specs {
		resp.Parameters[i] = ToParameterSpecResponse(spec)
	}
	return resp
}
