package domain

// RateMode selects how the annual interest rate of a mortgage is formed.
type RateMode string

const (
	RateFixed    RateMode = "fixed"
	RateVariable RateMode = "variable"
)

// PropertyPurpose is the buyer's intended use of the property, which decides
// the IMT bracket table.
type PropertyPurpose string

const (
	PrimaryResidence PropertyPurpose = "primary_residence"
	Secondary        PropertyPurpose = "secondary"
)

type LoanInput struct {
	PropertyValue      float64  `json:"propertyValue" validate:"gt=0,lte=1000000000"`
	DownPaymentPercent float64  `json:"downPaymentPercent" validate:"gte=0,lte=100"`
	LoanTermYears      int      `json:"loanTermYears" validate:"min=1,max=50"`
	RateMode           RateMode `json:"rateMode" validate:"oneof=fixed variable"`
	FixedRatePercent   float64  `json:"fixedRatePercent" validate:"gte=0,lte=100"`
	EuriborPercent     float64  `json:"euriborPercent" validate:"gte=-5,lte=100"`
	SpreadPercent      float64  `json:"spreadPercent" validate:"gte=0,lte=100"`
}

type BuyerProfile struct {
	PropertyPurpose PropertyPurpose `json:"propertyPurpose" validate:"oneof=primary_residence secondary"`
	// IsUnder35 only matters for a primary residence.
	IsUnder35 bool `json:"isUnder35"`
}

type MortgageResult struct {
	LoanAmount     float64 `json:"loanAmount"`
	MonthlyPayment float64 `json:"monthlyPayment"`
	TotalPayment   float64 `json:"totalPayment"`
	TotalInterest  float64 `json:"totalInterest"`
}

type TaxResult struct {
	IMTAmount               float64 `json:"imtAmount"`
	StampDutyPropertyAmount float64 `json:"stampDutyPropertyAmount"`
	StampDutyMortgageAmount float64 `json:"stampDutyMortgageAmount"`
	TotalTaxAmount          float64 `json:"totalTaxAmount"`
	TotalInitialInvestment  float64 `json:"totalInitialInvestment"`
}

type AmortizationRow struct {
	Month            int     `json:"month"`
	PaymentAmount    float64 `json:"paymentAmount"`
	PrincipalPortion float64 `json:"principalPortion"`
	InterestPortion  float64 `json:"interestPortion"`
	RemainingBalance float64 `json:"remainingBalance"`
}
