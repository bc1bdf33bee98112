package calculator

// Model assumptions. They are fixed coefficients of the projection, not user inputs.
const (
	// AISubscriptionCost is the monthly price of the AI voice service.
	AISubscriptionCost = 3000.0

	// WeeksPerMonth normalises weekly staffing hours to a month.
	WeeksPerMonth = 4.33

	// WorkdaysPerMonth and SDRHoursPerDay normalise SDR headcount to monthly hours.
	WorkdaysPerMonth = 21.67
	SDRHoursPerDay   = 8.0

	// CaptureRate is the share of previously missed inbound opportunity the AI recovers.
	CaptureRate = 0.35

	// LaborSavingsRate is the share of staff cost reclaimed once the AI takes routine calls.
	LaborSavingsRate = 0.30

	// AIContactRate is the share of generated leads the AI reaches.
	AIContactRate = 0.80

	// PaybackPeriodDays converts months of subscription cost into days.
	PaybackPeriodDays = 30.0
)
