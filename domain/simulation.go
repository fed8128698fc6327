package domain

// SimulationInput is everything the presentation layer sends for one run of
// the simulator.
type SimulationInput struct {
	Loan    LoanInput    `json:"loan"`
	Profile BuyerProfile `json:"profile"`
	// ScheduleMonths caps the amortization schedule; 0 means the default.
	ScheduleMonths int `json:"scheduleMonths,omitempty" validate:"gte=0,lte=600"`
}

type SimulationResult struct {
	EffectiveRatePercent float64           `json:"effectiveRatePercent"`
	DownPaymentAmount    float64           `json:"downPaymentAmount"`
	Mortgage             MortgageResult    `json:"mortgage"`
	Taxes                TaxResult         `json:"taxes"`
	Schedule             []AmortizationRow `json:"schedule"`
}

type IMTInput struct {
	PropertyValue float64      `json:"propertyValue" validate:"gt=0,lte=1000000000"`
	Profile       BuyerProfile `json:"profile"`
}
