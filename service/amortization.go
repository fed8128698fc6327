package service

import (
	"iter"
	"math"
	"slices"

	"property-simulator/domain"
)

// GenerateAmortizationSchedule yields the month by month split of each
// payment, stopping after min(termYears*12, maxMonths) rows. maxMonths <= 0
// yields the whole term. Every range over the sequence starts again from
// month 1.
func GenerateAmortizationSchedule(
	loanAmount float64,
	ratePercent float64,
	termYears int,
	maxMonths int,
) iter.Seq[domain.AmortizationRow] {
	return func(yield func(domain.AmortizationRow) bool) {
		n := termYears * 12
		months := n
		if maxMonths > 0 && maxMonths < months {
			months = maxMonths
		}

		monthlyRate := ratePercent / 100 / 12
		payment := annuityPayment(loanAmount, monthlyRate, n)
		balance := loanAmount

		for month := 1; month <= months; month++ {
			interest := balance * monthlyRate
			principal := payment - interest
			balance = math.Max(0, balance-principal)

			row := domain.AmortizationRow{
				Month:            month,
				PaymentAmount:    payment,
				PrincipalPortion: principal,
				InterestPortion:  interest,
				RemainingBalance: balance,
			}
			if !yield(row) {
				return
			}
		}
	}
}

// AmortizationSchedule returns the first year of the schedule.
func AmortizationSchedule(loanAmount, ratePercent float64, termYears int) []domain.AmortizationRow {
	return slices.Collect(GenerateAmortizationSchedule(loanAmount, ratePercent, termYears, DefaultScheduleMonths))
}
