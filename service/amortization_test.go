package service

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmortizationSchedule_DefaultsToFirstYear(t *testing.T) {
	rows := AmortizationSchedule(160000, 3.5, 30)
	require.Len(t, rows, DefaultScheduleMonths)

	assert.Equal(t, 1, rows[0].Month)
	assert.Equal(t, 12, rows[11].Month)
	assert.InDelta(t, 160000*0.035/12, rows[0].InterestPortion, 1e-9)
}

func TestAmortizationSchedule_PrincipalConservation(t *testing.T) {
	loan := 160000.0
	rows := AmortizationSchedule(loan, 3.5, 30)

	paid := 0.0
	for _, r := range rows {
		paid += r.PrincipalPortion
		assert.InDelta(t, r.PaymentAmount, r.PrincipalPortion+r.InterestPortion, 1e-9)
	}

	assert.InDelta(t, loan-rows[len(rows)-1].RemainingBalance, paid, 1e-6)
}

func TestAmortizationSchedule_BalanceDecreases(t *testing.T) {
	prev := 250000.0
	for row := range GenerateAmortizationSchedule(250000, 4, 25, 0) {
		require.Less(t, row.RemainingBalance, prev, "month %d", row.Month)
		prev = row.RemainingBalance
	}
}

func TestGenerateAmortizationSchedule_FullTermPaysOff(t *testing.T) {
	count := 0
	last := 0.0
	for row := range GenerateAmortizationSchedule(200000, 4, 25, 0) {
		count++
		last = row.RemainingBalance
		assert.GreaterOrEqual(t, row.RemainingBalance, 0.0)
	}

	assert.Equal(t, 300, count)
	assert.InDelta(t, 0, last, 0.01)
}

func TestGenerateAmortizationSchedule_CapsAtTerm(t *testing.T) {
	count := 0
	for range GenerateAmortizationSchedule(10000, 5, 1, 600) {
		count++
	}
	assert.Equal(t, 12, count)
}

func TestGenerateAmortizationSchedule_Restartable(t *testing.T) {
	seq := GenerateAmortizationSchedule(180000, 3.9, 30, 24)

	var first, second []float64
	for row := range seq {
		first = append(first, row.RemainingBalance)
	}
	for row := range seq {
		second = append(second, row.RemainingBalance)
	}

	assert.Len(t, first, 24)
	assert.Equal(t, first, second)
}

func TestGenerateAmortizationSchedule_StopsEarly(t *testing.T) {
	months := []int{}
	for row := range GenerateAmortizationSchedule(180000, 3.9, 30, 0) {
		months = append(months, row.Month)
		if row.Month == 3 {
			break
		}
	}
	assert.Equal(t, []int{1, 2, 3}, months)
}

func TestGenerateAmortizationSchedule_ZeroRate(t *testing.T) {
	rows := AmortizationSchedule(12000, 0, 1)
	require.Len(t, rows, 12)

	for _, r := range rows {
		assert.Equal(t, 1000.0, r.PaymentAmount)
		assert.Equal(t, 0.0, r.InterestPortion)
	}
	assert.InDelta(t, 0, rows[11].RemainingBalance, 1e-9)
}

func TestGenerateAmortizationSchedule_TinyRate(t *testing.T) {
	rows := slices.Collect(GenerateAmortizationSchedule(120000, 1e-15, 10, 0))
	require.Len(t, rows, 120)

	for _, row := range rows {
		require.False(t, math.IsInf(row.PaymentAmount, 0) || math.IsNaN(row.PaymentAmount))
	}
	assert.InDelta(t, 1000, rows[0].PaymentAmount, 1e-6)
	assert.InDelta(t, 0, rows[len(rows)-1].RemainingBalance, 1e-6)
}
