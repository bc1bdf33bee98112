package domain

import (
	"fmt"
	"math"
)

// Input is the active parameter set of a calculation.
// It is implemented only by InboundParameters and OutboundParameters.
type Input interface {
	Mode() Mode
	sealed()
}

// settable addresses parameter fields by their catalogue name.
type settable interface {
	Mode() Mode
	number(name string) *float64
	flag(name string) *bool
}

// InboundParameters are the business metrics used when the AI answers incoming calls.
type InboundParameters struct {
	MonthlyRevenue       float64 `json:"monthlyRevenue"`
	AvgTicketSize        float64 `json:"avgTicketSize"`
	AvgInboundCalls      float64 `json:"avgInboundCalls"`
	MissedCallsPercent   float64 `json:"missedCallsPercent"`
	ConversionRate       float64 `json:"conversionRate"`
	BookingPercent       float64 `json:"bookingPercent"`
	AvgCallTime          float64 `json:"avgCallTime"`
	HasReceptionStaff    bool    `json:"hasReceptionStaff"`
	NumStaff             float64 `json:"numStaff"`
	HourlyRate           float64 `json:"hourlyRate"`
	CoverageHoursPerWeek float64 `json:"coverageHoursPerWeek"`
	ResponseTimeHours    float64 `json:"responseTimeHours"`
}

// Mode implements Input.
func (InboundParameters) Mode() Mode { return ModeInbound }

func (InboundParameters) sealed() {}

func (p *InboundParameters) number(name string) *float64 {
	switch name {
	case "monthlyRevenue":
		return &p.MonthlyRevenue
	case "avgTicketSize":
		return &p.AvgTicketSize
	case "avgInboundCalls":
		return &p.AvgInboundCalls
	case "missedCallsPercent":
		return &p.MissedCallsPercent
	case "conversionRate":
		return &p.ConversionRate
	case "bookingPercent":
		return &p.BookingPercent
	case "avgCallTime":
		return &p.AvgCallTime
	case "numStaff":
		return &p.NumStaff
	case "hourlyRate":
		return &p.HourlyRate
	case "coverageHoursPerWeek":
		return &p.CoverageHoursPerWeek
	case "responseTimeHours":
		return &p.ResponseTimeHours
	}
	return nil
}

func (p *InboundParameters) flag(name string) *bool {
	if name == "hasReceptionStaff" {
		return &p.HasReceptionStaff
	}
	return nil
}

// OutboundParameters are the business metrics used when the AI places calls to leads.
type OutboundParameters struct {
	MonthlyRevenue          float64 `json:"monthlyRevenue"`
	AvgDealValue            float64 `json:"avgDealValue"`
	LeadsGeneratedPerMonth  float64 `json:"leadsGeneratedPerMonth"`
	QualifyingCallsPerMonth float64 `json:"qualifyingCallsPerMonth"`
	AvgTimePerCallMinutes   float64 `json:"avgTimePerCallMinutes"`
	BookingRate             float64 `json:"bookingRate"`
	CloseRate               float64 `json:"closeRate"`
	FollowUpFrequency       float64 `json:"followUpFrequency"`
	NumSDRs                 float64 `json:"numSDRs"`
	SDRHourlyRate           float64 `json:"sdrHourlyRate"`
	CallsPerPersonPerDay    float64 `json:"callsPerPersonPerDay"`
}

// Mode implements Input.
func (OutboundParameters) Mode() Mode { return ModeOutbound }

func (OutboundParameters) sealed() {}

func (p *OutboundParameters) number(name string) *float64 {
	switch name {
	case "monthlyRevenue":
		return &p.MonthlyRevenue
	case "avgDealValue":
		return &p.AvgDealValue
	case "leadsGeneratedPerMonth":
		return &p.LeadsGeneratedPerMonth
	case "qualifyingCallsPerMonth":
		return &p.QualifyingCallsPerMonth
	case "avgTimePerCallMinutes":
		return &p.AvgTimePerCallMinutes
	case "bookingRate":
		return &p.BookingRate
	case "closeRate":
		return &p.CloseRate
	case "followUpFrequency":
		return &p.FollowUpFrequency
	case "numSDRs":
		return &p.NumSDRs
	case "sdrHourlyRate":
		return &p.SDRHourlyRate
	case "callsPerPersonPerDay":
		return &p.CallsPerPersonPerDay
	}
	return nil
}

func (p *OutboundParameters) flag(string) *bool { return nil }

// ParamUpdate sets one named parameter. Exactly one of Number or Flag is set.
type ParamUpdate struct {
	Name   string
	Number *float64
	Flag   *bool
}

// NumberUpdate builds a numeric ParamUpdate.
func NumberUpdate(name string, v float64) ParamUpdate {
	return ParamUpdate{Name: name, Number: &v}
}

// FlagUpdate builds a boolean ParamUpdate.
func FlagUpdate(name string, v bool) ParamUpdate {
	return ParamUpdate{Name: name, Flag: &v}
}

// ApplyUpdates returns a copy of in with every update applied.
// Numeric values are snapped to the parameter's step and clamped to its range.
// The input is left untouched when any update is rejected.
func ApplyUpdates(in Input, updates []ParamUpdate) (Input, error) {
	switch p := in.(type) {
	case InboundParameters:
		if err := applyTo(&p, updates); err != nil {
			return nil, err
		}
		return p, nil
	case OutboundParameters:
		if err := applyTo(&p, updates); err != nil {
			return nil, err
		}
		return p, nil
	case *InboundParameters:
		if p != nil {
			return ApplyUpdates(*p, updates)
		}
	case *OutboundParameters:
		if p != nil {
			return ApplyUpdates(*p, updates)
		}
	}
	return nil, fmt.Errorf("%w: no parameter set selected", ErrInvalidTransition)
}

func applyTo(target settable, updates []ParamUpdate) error {
	mode := target.Mode()
	for _, u := range updates {
		spec, ok := LookupSpec(mode, u.Name)
		if !ok {
			return fmt.Errorf("%w: %q is not a %s parameter", ErrUnknownParameter, u.Name, mode)
		}

		if spec.Boolean {
			if u.Flag == nil {
				return fmt.Errorf("%w: %s expects a boolean", ErrInvalidParameterValue, u.Name)
			}
			*target.flag(u.Name) = *u.Flag
			continue
		}

		if u.Number == nil {
			return fmt.Errorf("%w: %s expects a number", ErrInvalidParameterValue, u.Name)
		}
		if math.IsNaN(*u.Number) || math.IsInf(*u.Number, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidParameterValue, u.Name)
		}
		*target.number(u.Name) = spec.Clamp(*u.Number)
	}
	return nil
}

// DefaultParameters returns the documented default parameter set for a mode.
func DefaultParameters(mode Mode) (Input, error) {
	var (
		inbound  InboundParameters
		outbound OutboundParameters
		target   settable
	)
	switch mode {
	case ModeInbound:
		target = &inbound
	case ModeOutbound:
		target = &outbound
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}

	for _, spec := range Specs(mode) {
		if spec.Boolean {
			*target.flag(spec.Name) = spec.Default != 0
		} else {
			*target.number(spec.Name) = spec.Default
		}
	}

	if mode == ModeInbound {
		return inbound, nil
	}
	return outbound, nil
}
