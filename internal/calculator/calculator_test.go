package calculator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/roicalc/internal/calculator"
	"github.com/mtlprog/roicalc/internal/domain"
)

const tolerance = 1e-6

func exampleInbound() domain.InboundParameters {
	return domain.InboundParameters{
		MonthlyRevenue:       120000,
		AvgTicketSize:        600,
		AvgInboundCalls:      900,
		MissedCallsPercent:   30,
		ConversionRate:       35,
		BookingPercent:       40,
		AvgCallTime:          6,
		HasReceptionStaff:    true,
		NumStaff:             2,
		HourlyRate:           30,
		CoverageHoursPerWeek: 40,
		ResponseTimeHours:    4,
	}
}

func exampleOutbound() domain.OutboundParameters {
	return domain.OutboundParameters{
		MonthlyRevenue:          200000,
		AvgDealValue:            4300,
		LeadsGeneratedPerMonth:  1200,
		QualifyingCallsPerMonth: 900,
		AvgTimePerCallMinutes:   8,
		BookingRate:             25,
		CloseRate:               20,
		FollowUpFrequency:       3,
		NumSDRs:                 3,
		SDRHourlyRate:           35,
		CallsPerPersonPerDay:    60,
	}
}

func TestComputeInbound_ExampleScenario(t *testing.T) {
	r := calculator.ComputeInbound(exampleInbound())

	assert.Equal(t, domain.ModeInbound, r.Mode)
	assert.InDelta(t, 10392, r.CurrentLaborCost, tolerance)
	require.NotNil(t, r.Inbound)
	assert.Equal(t, 270.0, r.Inbound.MissedCalls)
	assert.InDelta(t, 56700, r.LostOpportunityValue, tolerance)
	assert.InDelta(t, 19845, r.RecapturedOrNewRevenue, tolerance)
	assert.InDelta(t, 3117.6, r.LaborCostSaved, tolerance)
	assert.InDelta(t, 19962.6, r.MonthlyNetGain, tolerance)
	assert.InDelta(t, 665.42, r.ROIPercent, tolerance)
	assert.Equal(t, 665.0, r.RoundedROIPercent())
	assert.Equal(t, 5.0, r.RoundedPaybackDays())
	assert.Equal(t, calculator.AISubscriptionCost, r.AISubscriptionCost)
	assert.Nil(t, r.Outbound)
}

func TestComputeInbound_NoReceptionStaff(t *testing.T) {
	for _, staff := range []float64{1, 2, 10, 50} {
		p := exampleInbound()
		p.HasReceptionStaff = false
		p.NumStaff = staff
		p.HourlyRate = 150

		r := calculator.ComputeInbound(p)

		assert.Zero(t, r.CurrentLaborCost, "staff=%v", staff)
		assert.Zero(t, r.LaborCostSaved, "staff=%v", staff)
	}
}

func TestComputeInbound_MissedCallsAreFloored(t *testing.T) {
	p := exampleInbound()
	p.AvgInboundCalls = 55
	p.MissedCallsPercent = 33

	r := calculator.ComputeInbound(p)

	// 55 * 33% = 18.15 missed calls
	require.NotNil(t, r.Inbound)
	assert.Equal(t, 18.0, r.Inbound.MissedCalls)
	assert.InDelta(t, 18*0.35*600, r.LostOpportunityValue, tolerance)
}

func TestComputeOutbound_ExampleScenario(t *testing.T) {
	r := calculator.ComputeOutbound(exampleOutbound())

	assert.Equal(t, domain.ModeOutbound, r.Mode)
	assert.InDelta(t, 18202.8, r.CurrentLaborCost, tolerance)
	require.NotNil(t, r.Outbound)
	assert.InDelta(t, 193500, r.Outbound.CurrentRevenue, tolerance)
	assert.Equal(t, 960.0, r.Outbound.AIContactedLeads)
	assert.InDelta(t, 206400, r.Outbound.AIRevenue, tolerance)
	assert.InDelta(t, 12900, r.RecapturedOrNewRevenue, tolerance)
	assert.InDelta(t, 5460.84, r.LaborCostSaved, tolerance)
	assert.InDelta(t, 15360.84, r.MonthlyNetGain, tolerance)
	assert.Zero(t, r.LostOpportunityValue)
	assert.Nil(t, r.Inbound)
}

func TestComputeOutbound_ZeroNetGainUsesDivisorGuard(t *testing.T) {
	p := domain.OutboundParameters{
		AvgDealValue:            100,
		LeadsGeneratedPerMonth:  100,
		QualifyingCallsPerMonth: 50,
		BookingRate:             100,
		CloseRate:               100,
		NumSDRs:                 0,
		SDRHourlyRate:           35,
	}

	r := calculator.ComputeOutbound(p)

	assert.Equal(t, 0.0, r.MonthlyNetGain)
	assert.Equal(t, 90000.0, r.PaybackDays)
	assert.False(t, math.IsInf(r.PaybackDays, 0))
	assert.Equal(t, 0.0, r.ROIPercent)
}

func TestCompute_Identities(t *testing.T) {
	inputs := []domain.Input{exampleInbound(), exampleOutbound()}

	noStaff := exampleInbound()
	noStaff.HasReceptionStaff = false
	inputs = append(inputs, noStaff)

	losing := exampleOutbound()
	losing.LeadsGeneratedPerMonth = 50
	inputs = append(inputs, losing)

	for _, in := range inputs {
		r, err := calculator.Compute(in)
		require.NoError(t, err)

		assert.Equal(t, r.LaborCostSaved+r.RecapturedOrNewRevenue-calculator.AISubscriptionCost, r.MonthlyNetGain, "mode=%s", in.Mode())
		assert.Equal(t, (r.MonthlyNetGain/calculator.AISubscriptionCost)*100, r.ROIPercent, "mode=%s", in.Mode())
		assert.Equal(t, (calculator.AISubscriptionCost/r.MonthlyNetGain)*30, r.PaybackDays, "mode=%s", in.Mode())
	}
}

func TestCompute_Idempotent(t *testing.T) {
	for _, in := range []domain.Input{exampleInbound(), exampleOutbound()} {
		first, err := calculator.Compute(in)
		require.NoError(t, err)
		second, err := calculator.Compute(in)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	}
}

func TestCompute_DispatchesOnMode(t *testing.T) {
	in := exampleInbound()
	r, err := calculator.Compute(&in)
	require.NoError(t, err)
	assert.Equal(t, calculator.ComputeInbound(in), r)

	out := exampleOutbound()
	r, err = calculator.Compute(out)
	require.NoError(t, err)
	assert.Equal(t, calculator.ComputeOutbound(out), r)

	_, err = calculator.Compute(nil)
	assert.ErrorIs(t, err, domain.ErrInvalidMode)
}

func TestCompute_LosingScenarioHasNegativePayback(t *testing.T) {
	p := exampleOutbound()
	p.NumSDRs = 0
	p.LeadsGeneratedPerMonth = 50

	r := calculator.ComputeOutbound(p)

	assert.Less(t, r.MonthlyNetGain, 0.0)
	assert.Less(t, r.ROIPercent, 0.0)
	assert.Less(t, r.PaybackDays, 0.0)
}
