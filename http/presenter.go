package http

import (
	"github.com/shopspring/decimal"

	"property-simulator/domain"
	"property-simulator/money"
	"property-simulator/taxtable"
)

// Amounts leave the service as JSON numbers rounded to cents.
func cents(v float64) money.Amount {
	return money.Amount{Decimal: money.Cents(v)}
}

func formatEUR(a money.Amount) string {
	return money.FormatEUR(a.Decimal)
}

type mortgageView struct {
	LoanAmount     money.Amount `json:"loanAmount"`
	MonthlyPayment money.Amount `json:"monthlyPayment"`
	TotalPayment   money.Amount `json:"totalPayment"`
	TotalInterest  money.Amount `json:"totalInterest"`
}

type taxView struct {
	IMTAmount               money.Amount `json:"imtAmount"`
	StampDutyPropertyAmount money.Amount `json:"stampDutyPropertyAmount"`
	StampDutyMortgageAmount money.Amount `json:"stampDutyMortgageAmount"`
	TotalTaxAmount          money.Amount `json:"totalTaxAmount"`
	TotalInitialInvestment  money.Amount `json:"totalInitialInvestment"`
}

type amortizationRowView struct {
	Month            int          `json:"month"`
	PaymentAmount    money.Amount `json:"paymentAmount"`
	PrincipalPortion money.Amount `json:"principalPortion"`
	InterestPortion  money.Amount `json:"interestPortion"`
	RemainingBalance money.Amount `json:"remainingBalance"`
}

type simulationView struct {
	EffectiveRatePercent money.Amount          `json:"effectiveRatePercent"`
	DownPaymentAmount    money.Amount          `json:"downPaymentAmount"`
	Mortgage             mortgageView          `json:"mortgage"`
	Taxes                taxView               `json:"taxes"`
	Schedule             []amortizationRowView `json:"schedule"`
	Display              map[string]string     `json:"display"`
}

func presentSimulation(r domain.SimulationResult) simulationView {
	v := simulationView{
		EffectiveRatePercent: money.Amount{Decimal: decimal.NewFromFloat(r.EffectiveRatePercent).Round(4)},
		DownPaymentAmount:    cents(r.DownPaymentAmount),
		Mortgage: mortgageView{
			LoanAmount:     cents(r.Mortgage.LoanAmount),
			MonthlyPayment: cents(r.Mortgage.MonthlyPayment),
			TotalPayment:   cents(r.Mortgage.TotalPayment),
			TotalInterest:  cents(r.Mortgage.TotalInterest),
		},
		Taxes: taxView{
			IMTAmount:               cents(r.Taxes.IMTAmount),
			StampDutyPropertyAmount: cents(r.Taxes.StampDutyPropertyAmount),
			StampDutyMortgageAmount: cents(r.Taxes.StampDutyMortgageAmount),
			TotalTaxAmount:          cents(r.Taxes.TotalTaxAmount),
			TotalInitialInvestment:  cents(r.Taxes.TotalInitialInvestment),
		},
		Schedule: make([]amortizationRowView, 0, len(r.Schedule)),
	}

	for _, row := range r.Schedule {
		v.Schedule = append(v.Schedule, amortizationRowView{
			Month:            row.Month,
			PaymentAmount:    cents(row.PaymentAmount),
			PrincipalPortion: cents(row.PrincipalPortion),
			InterestPortion:  cents(row.InterestPortion),
			RemainingBalance: cents(row.RemainingBalance),
		})
	}

	v.Display = map[string]string{
		"downPaymentAmount":      formatEUR(v.DownPaymentAmount),
		"loanAmount":             formatEUR(v.Mortgage.LoanAmount),
		"monthlyPayment":         formatEUR(v.Mortgage.MonthlyPayment),
		"totalInterest":          formatEUR(v.Mortgage.TotalInterest),
		"imtAmount":              formatEUR(v.Taxes.IMTAmount),
		"totalTaxAmount":         formatEUR(v.Taxes.TotalTaxAmount),
		"totalInitialInvestment": formatEUR(v.Taxes.TotalInitialInvestment),
	}
	return v
}

type imtView struct {
	IMTAmount money.Amount     `json:"imtAmount"`
	Display   string           `json:"display"`
	Bracket   taxtable.Bracket `json:"bracket"`
}

func presentIMT(amount float64, bracket taxtable.Bracket) imtView {
	rounded := cents(amount)
	return imtView{IMTAmount: rounded, Display: formatEUR(rounded), Bracket: bracket}
}

type termOptionView struct {
	TermYears      int          `json:"termYears"`
	MonthlyPayment money.Amount `json:"monthlyPayment"`
	TotalInterest  money.Amount `json:"totalInterest"`
	Score          float64      `json:"score"`
	Reason         string       `json:"reason"`
}

type termComparisonView struct {
	RecommendedTermYears int              `json:"recommendedTermYears"`
	Options              []termOptionView `json:"options"`
}

func presentTermComparison(r domain.TermComparisonResult) termComparisonView {
	v := termComparisonView{
		RecommendedTermYears: r.RecommendedTermYears,
		Options:              make([]termOptionView, 0, len(r.Options)),
	}
	for _, o := range r.Options {
		v.Options = append(v.Options, termOptionView{
			TermYears:      o.TermYears,
			MonthlyPayment: cents(o.MonthlyPayment),
			TotalInterest:  cents(o.TotalInterest),
			Score:          o.Score,
			Reason:         o.Reason,
		})
	}
	return v
}
