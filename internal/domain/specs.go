package domain

import "math"

// ParamSpec describes one input control: its range, step granularity and default.
// Boolean parameters use Min 0, Max 1 and store their default as 0 or 1.
type ParamSpec struct {
	Name    string
	Label   string
	Unit    string
	Boolean bool
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Clamp snaps v to the step grid anchored at Min and bounds it to [Min, Max].
func (s ParamSpec) Clamp(v float64) float64 {
	if s.Step > 0 {
		v = s.Min + math.Round((v-s.Min)/s.Step)*s.Step
	}
	return math.Max(s.Min, math.Min(s.Max, v))
}

var inboundSpecs = []ParamSpec{
	{Name: "monthlyRevenue", Label: "Monthly revenue", Unit: "currency", Min: 10000, Max: 1000000, Step: 1000, Default: 120000},
	{Name: "avgTicketSize", Label: "Average ticket size", Unit: "currency", Min: 50, Max: 20000, Step: 50, Default: 600},
	{Name: "avgInboundCalls", Label: "Inbound calls per month", Unit: "calls", Min: 50, Max: 10000, Step: 10, Default: 900},
	{Name: "missedCallsPercent", Label: "Missed calls", Unit: "percent", Min: 0, Max: 100, Step: 1, Default: 30},
	{Name: "conversionRate", Label: "Caller conversion rate", Unit: "percent", Min: 1, Max: 100, Step: 1, Default: 35},
	{Name: "bookingPercent", Label: "Calls that book an appointment", Unit: "percent", Min: 0, Max: 100, Step: 1, Default: 40},
	{Name: "avgCallTime", Label: "Average call length", Unit: "minutes", Min: 1, Max: 60, Step: 1, Default: 6},
	{Name: "hasReceptionStaff", Label: "Reception staff on payroll", Boolean: true, Min: 0, Max: 1, Step: 1, Default: 1},
	{Name: "numStaff", Label: "Reception staff", Unit: "people", Min: 1, Max: 50, Step: 1, Default: 2},
	{Name: "hourlyRate", Label: "Staff hourly rate", Unit: "currency", Min: 10, Max: 150, Step: 1, Default: 30},
	{Name: "coverageHoursPerWeek", Label: "Phone coverage per week", Unit: "hours", Min: 10, Max: 168, Step: 1, Default: 40},
	{Name: "responseTimeHours", Label: "Average callback time", Unit: "hours", Min: 0, Max: 72, Step: 1, Default: 4},
}

var outboundSpecs = []ParamSpec{
	{Name: "monthlyRevenue", Label: "Monthly revenue", Unit: "currency", Min: 10000, Max: 1000000, Step: 1000, Default: 200000},
	{Name: "avgDealValue", Label: "Average deal value", Unit: "currency", Min: 100, Max: 100000, Step: 100, Default: 4300},
	{Name: "leadsGeneratedPerMonth", Label: "Leads generated per month", Unit: "leads", Min: 50, Max: 20000, Step: 50, Default: 1200},
	{Name: "qualifyingCallsPerMonth", Label: "Qualifying calls per month", Unit: "calls", Min: 0, Max: 20000, Step: 50, Default: 900},
	{Name: "avgTimePerCallMinutes", Label: "Average time per call", Unit: "minutes", Min: 1, Max: 60, Step: 1, Default: 8},
	{Name: "bookingRate", Label: "Booking rate", Unit: "percent", Min: 1, Max: 100, Step: 1, Default: 25},
	{Name: "closeRate", Label: "Close rate", Unit: "percent", Min: 1, Max: 100, Step: 1, Default: 20},
	{Name: "followUpFrequency", Label: "Follow-ups per lead", Unit: "calls", Min: 0, Max: 10, Step: 1, Default: 3},
	{Name: "numSDRs", Label: "Sales development reps", Unit: "people", Min: 0, Max: 50, Step: 1, Default: 3},
	{Name: "sdrHourlyRate", Label: "SDR hourly rate", Unit: "currency", Min: 10, Max: 150, Step: 1, Default: 35},
	{Name: "callsPerPersonPerDay", Label: "Calls per rep per day", Unit: "calls", Min: 10, Max: 300, Step: 5, Default: 60},
}

// Specs returns the parameter catalogue for a mode, or nil for an unknown mode.
func Specs(mode Mode) []ParamSpec {
	var src []ParamSpec
	switch mode {
	case ModeInbound:
		src = inboundSpecs
	case ModeOutbound:
		src = outboundSpecs
	default:
		return nil
	}
	out := make([]ParamSpec, len(src))
	copy(out, src)
	return out
}

// LookupSpec finds a parameter of the given mode by name.
func LookupSpec(mode Mode, name string) (ParamSpec, bool) {
	for _, s := range Specs(mode) {
		if s.Name == name {
			return s, true
		}
	}
	return ParamSpec{}, false
}
