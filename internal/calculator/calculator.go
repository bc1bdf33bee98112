// Package calculator projects the monthly cost and benefit of adopting an AI
// voice service. Every function is pure: the same parameters always give the
// same Result and nothing is cached between calls.
package calculator

import (
	"fmt"
	"math"

	"github.com/mtlprog/roicalc/internal/domain"
)

// Result is the comparative projection for one parameter set.
type Result struct {
	Mode                   domain.Mode `json:"mode"`
	CurrentLaborCost       float64     `json:"current_labor_cost"`
	LostOpportunityValue   float64     `json:"lost_opportunity_value"`
	AISubscriptionCost     float64     `json:"ai_subscription_cost"`
	LaborCostSaved         float64     `json:"labor_cost_saved"`
	RecapturedOrNewRevenue float64     `json:"recaptured_or_new_revenue"`
	MonthlyNetGain         float64     `json:"monthly_net_gain"`
	ROIPercent             float64     `json:"roi_percent"`
	PaybackDays            float64     `json:"payback_days"`

	Inbound  *InboundBreakdown  `json:"inbound,omitempty"`
	Outbound *OutboundBreakdown `json:"outbound,omitempty"`
}

// InboundBreakdown holds intermediate inbound figures.
type InboundBreakdown struct {
	MissedCalls float64 `json:"missed_calls"`
}

// OutboundBreakdown holds intermediate outbound figures.
type OutboundBreakdown struct {
	CurrentBookings  float64 `json:"current_bookings"`
	CurrentDeals     float64 `json:"current_deals"`
	CurrentRevenue   float64 `json:"current_revenue"`
	AIContactedLeads float64 `json:"ai_contacted_leads"`
	AIBookings       float64 `json:"ai_bookings"`
	AIDeals          float64 `json:"ai_deals"`
	AIRevenue        float64 `json:"ai_revenue"`
}

// RoundedROIPercent is the ROI as shown to users.
func (r Result) RoundedROIPercent() float64 {
	return math.Round(r.ROIPercent)
}

// RoundedPaybackDays is the payback period as shown to users.
func (r Result) RoundedPaybackDays() float64 {
	return math.Round(r.PaybackDays)
}

// Compute dispatches on the parameter set's mode.
func Compute(in domain.Input) (Result, error) {
	switch p := in.(type) {
	case domain.InboundParameters:
		return ComputeInbound(p), nil
	case *domain.InboundParameters:
		if p != nil {
			return ComputeInbound(*p), nil
		}
	case domain.OutboundParameters:
		return ComputeOutbound(p), nil
	case *domain.OutboundParameters:
		if p != nil {
			return ComputeOutbound(*p), nil
		}
	}
	return Result{}, fmt.Errorf("%w: no parameter set to compute", domain.ErrInvalidMode)
}

// ComputeInbound projects recovered missed-call revenue and reception labor savings.
func ComputeInbound(p domain.InboundParameters) Result {
	laborCost := 0.0
	if p.HasReceptionStaff {
		laborCost = p.NumStaff * p.HourlyRate * p.CoverageHoursPerWeek * WeeksPerMonth
	}

	missedCalls := math.Floor(p.AvgInboundCalls * p.MissedCallsPercent / 100)
	lostOpportunity := missedCalls * (p.ConversionRate / 100) * p.AvgTicketSize
	recapturedRevenue := lostOpportunity * CaptureRate
	laborSaved := laborCost * LaborSavingsRate

	netGain := laborSaved + recapturedRevenue - AISubscriptionCost

	return Result{
		Mode:                   domain.ModeInbound,
		CurrentLaborCost:       laborCost,
		LostOpportunityValue:   lostOpportunity,
		AISubscriptionCost:     AISubscriptionCost,
		LaborCostSaved:         laborSaved,
		RecapturedOrNewRevenue: recapturedRevenue,
		MonthlyNetGain:         netGain,
		ROIPercent:             roiPercent(netGain),
		PaybackDays:            paybackDays(netGain),
		Inbound:                &InboundBreakdown{MissedCalls: missedCalls},
	}
}

// ComputeOutbound projects extra closed revenue from AI lead coverage and SDR labor savings.
func ComputeOutbound(p domain.OutboundParameters) Result {
	laborCost := p.NumSDRs * p.SDRHourlyRate * SDRHoursPerDay * WorkdaysPerMonth

	currentBookings := p.QualifyingCallsPerMonth * (p.BookingRate / 100)
	currentDeals := currentBookings * (p.CloseRate / 100)
	currentRevenue := currentDeals * p.AvgDealValue

	aiContactedLeads := math.Floor(p.LeadsGeneratedPerMonth * AIContactRate)
	aiBookings := aiContactedLeads * (p.BookingRate / 100)
	aiDeals := aiBookings * (p.CloseRate / 100)
	aiRevenue := aiDeals * p.AvgDealValue

	revenueIncrease := aiRevenue - currentRevenue
	laborSaved := laborCost * LaborSavingsRate

	netGain := laborSaved + revenueIncrease - AISubscriptionCost

	return Result{
		Mode:                   domain.ModeOutbound,
		CurrentLaborCost:       laborCost,
		LostOpportunityValue:   0,
		AISubscriptionCost:     AISubscriptionCost,
		LaborCostSaved:         laborSaved,
		RecapturedOrNewRevenue: revenueIncrease,
		MonthlyNetGain:         netGain,
		ROIPercent:             roiPercent(netGain),
		PaybackDays:            paybackDays(netGain),
		Outbound: &OutboundBreakdown{
			CurrentBookings:  currentBookings,
			CurrentDeals:     currentDeals,
			CurrentRevenue:   currentRevenue,
			AIContactedLeads: aiContactedLeads,
			AIBookings:       aiBookings,
			AIDeals:          aiDeals,
			AIRevenue:        aiRevenue,
		},
	}
}

func roiPercent(netGain float64) float64 {
	return (netGain / AISubscriptionCost) * 100
}

// paybackDays substitutes a divisor of 1 when the net gain is exactly zero,
// giving AISubscriptionCost*30 days instead of an infinite period.
func paybackDays(netGain float64) float64 {
	divisor := netGain
	if divisor == 0 {
		divisor = 1
	}
	return (AISubscriptionCost / divisor) * PaybackPeriodDays
}
