package domain

// Mode is the call direction that selects the active parameter set and formula.
type Mode string

const (
	ModeInbound  Mode = "inbound"
	ModeOutbound Mode = "outbound"
)

// IsValid checks if the mode is one of the allowed values.
func (m Mode) IsValid() bool {
	return m == ModeInbound || m == ModeOutbound
}

// Industry is the business vertical picked in the wizard.
// It is recorded for display only and never feeds the formulas.
type Industry string

const (
	IndustryProperty     Industry = "property"
	IndustryFinance      Industry = "finance"
	IndustryHealth       Industry = "health"
	IndustrySaaS         Industry = "saas"
	IndustryConstruction Industry = "construction"
	IndustryInsurance    Industry = "insurance"
	IndustryAgency       Industry = "agency"
	IndustryOther        Industry = "other"
)

// Industries lists every industry in display order.
var Industries = []Industry{
	IndustryProperty,
	IndustryFinance,
	IndustryHealth,
	IndustrySaaS,
	IndustryConstruction,
	IndustryInsurance,
	IndustryAgency,
	IndustryOther,
}

var industryLabels = map[Industry]string{
	IndustryProperty:     "Property & Real Estate",
	IndustryFinance:      "Finance & Lending",
	IndustryHealth:       "Health & Clinics",
	IndustrySaaS:         "SaaS & Software",
	IndustryConstruction: "Construction & Trades",
	IndustryInsurance:    "Insurance",
	IndustryAgency:       "Agency",
	IndustryOther:        "Other",
}

// IsValid checks if the industry is one of the allowed values.
func (i Industry) IsValid() bool {
	_, ok := industryLabels[i]
	return ok
}

// Label returns the human readable industry name.
func (i Industry) Label() string {
	return industryLabels[i]
}

// WizardStep is a state of the calculator wizard.
type WizardStep string

const (
	StepSelectingCallType WizardStep = "SELECTING_CALL_TYPE"
	StepSelectingIndustry WizardStep = "SELECTING_INDUSTRY"
	StepCalculating       WizardStep = "CALCULATING"
)
