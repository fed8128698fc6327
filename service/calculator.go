package service

import (
	"math"

	"property-simulator/domain"
	"property-simulator/taxtable"
)

// The functions in this file are the simulator core. They never fail and keep
// no state; callers validate input first (see Validate).

// ComputeEffectiveRate returns the annual rate in percent for the chosen mode.
func ComputeEffectiveRate(input domain.LoanInput) float64 {
	if input.RateMode == domain.RateVariable {
		return input.EuriborPercent + input.SpreadPercent
	}
	return input.FixedRatePercent
}

func loanAmount(input domain.LoanInput) float64 {
	return input.PropertyValue * (1 - input.DownPaymentPercent/100)
}

// annuityPayment is the fixed monthly payment that repays principal over n
// months at the given monthly rate. The factor 1-(1+r)^-n is computed with
// Log1p and Expm1 so rates close to zero do not cancel to 0.
func annuityPayment(principal, monthlyRate float64, n int) float64 {
	if monthlyRate == 0 {
		return principal / float64(n)
	}
	factor := -math.Expm1(-float64(n) * math.Log1p(monthlyRate))
	if factor == 0 {
		return principal / float64(n)
	}
	return principal * monthlyRate / factor
}

// ComputeMortgage derives payment totals for a loan. A 100% down payment
// gives a zero loan and zero outputs.
func ComputeMortgage(input domain.LoanInput) domain.MortgageResult {
	amount := loanAmount(input)
	monthlyRate := ComputeEffectiveRate(input) / 100 / 12
	n := input.LoanTermYears * 12

	payment := annuityPayment(amount, monthlyRate, n)
	if monthlyRate == 0 {
		return domain.MortgageResult{
			LoanAmount:     amount,
			MonthlyPayment: payment,
			TotalPayment:   amount,
			TotalInterest:  0,
		}
	}

	interest := math.Max(0, payment*float64(n)-amount)
	return domain.MortgageResult{
		LoanAmount:     amount,
		MonthlyPayment: payment,
		TotalPayment:   amount + interest,
		TotalInterest:  interest,
	}
}

// BracketIMT applies one bracket to a property value.
func BracketIMT(b taxtable.Bracket, propertyValue float64) float64 {
	tax := propertyValue * b.RatePercent / 100
	if b.SingleRate {
		return tax
	}
	return math.Max(0, tax-b.Deduction)
}

// ComputeIMT returns the property transfer tax for a buyer.
func ComputeIMT(
	tables *taxtable.Set,
	propertyValue float64,
	purpose domain.PropertyPurpose,
	isUnder35 bool,
) float64 {
	table := tables.Table(taxtable.ProfileFor(purpose, isUnder35))
	return BracketIMT(table.Find(propertyValue), propertyValue)
}

// ComputeTaxes adds stamp duties to IMT and the cash needed up front.
func ComputeTaxes(
	tables *taxtable.Set,
	propertyValue float64,
	loanAmount float64,
	downPaymentPercent float64,
	profile domain.BuyerProfile,
) domain.TaxResult {
	imt := ComputeIMT(tables, propertyValue, profile.PropertyPurpose, profile.IsUnder35)
	onProperty := propertyValue * StampDutyPropertyRate
	onMortgage := loanAmount * StampDutyMortgageRate
	total := imt + onProperty + onMortgage

	return domain.TaxResult{
		IMTAmount:               imt,
		StampDutyPropertyAmount: onProperty,
		StampDutyMortgageAmount: onMortgage,
		TotalTaxAmount:          total,
		TotalInitialInvestment:  propertyValue*downPaymentPercent/100 + total,
	}
}
