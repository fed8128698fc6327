package domain

type TermPreference string

const (
	MinimizeInterest TermPreference = "minimize_interest"
	MinimizePayment  TermPreference = "minimize_payment"
	Balanced         TermPreference = "balanced"
)

type TermComparisonInput struct {
	PropertyValue      float64  `json:"propertyValue" validate:"gt=0,lte=1000000000"`
	DownPaymentPercent float64  `json:"downPaymentPercent" validate:"gte=0,lt=100"`
	RateMode           RateMode `json:"rateMode" validate:"oneof=fixed variable"`
	FixedRatePercent   float64  `json:"fixedRatePercent" validate:"gte=0,lte=100"`
	EuriborPercent     float64  `json:"euriborPercent" validate:"gte=-5,lte=100"`
	SpreadPercent      float64  `json:"spreadPercent" validate:"gte=0,lte=100"`
	MinTermYears       int      `json:"minTermYears" validate:"min=1,max=50"`
	MaxTermYears       int      `json:"maxTermYears" validate:"min=1,max=50,gtefield=MinTermYears"`
	// MaxMonthlyPayment of 0 disables the affordability filter.
	MaxMonthlyPayment float64        `json:"maxMonthlyPayment" validate:"gte=0"`
	Preference        TermPreference `json:"preference" validate:"oneof=minimize_interest minimize_payment balanced"`
}

type TermOption struct {
	TermYears      int     `json:"termYears"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalInterest  float64 `json:"totalInterest"`
	Score          float64 `json:"score"`
	Reason         string  `json:"reason"`
}

type TermComparisonResult struct {
	RecommendedTermYears int          `json:"recommendedTermYears"`
	Options              []TermOption `json:"options"`
}
