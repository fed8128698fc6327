package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"property-simulator/domain"
	"property-simulator/taxtable"
)

func newTestSimulator() *SimulatorService {
	return NewSimulatorService(taxtable.MustDefault(), DefaultScheduleMonths)
}

func validSimulation() domain.SimulationInput {
	return domain.SimulationInput{
		Loan: domain.LoanInput{
			PropertyValue:      300000,
			DownPaymentPercent: 20,
			LoanTermYears:      30,
			RateMode:           domain.RateFixed,
			FixedRatePercent:   3.5,
		},
		Profile: domain.BuyerProfile{PropertyPurpose: domain.Secondary},
	}
}

func TestSimulate_ComposesResult(t *testing.T) {
	result, err := newTestSimulator().Simulate(validSimulation())
	require.NoError(t, err)

	assert.Equal(t, 3.5, result.EffectiveRatePercent)
	assert.InDelta(t, 60000, result.DownPaymentAmount, 1e-9)
	assert.InDelta(t, 240000, result.Mortgage.LoanAmount, 1e-9)
	assert.InDelta(t, 15836.75, result.Taxes.TotalTaxAmount, 1e-6)
	assert.InDelta(t, result.DownPaymentAmount+result.Taxes.TotalTaxAmount, result.Taxes.TotalInitialInvestment, 1e-6)
	assert.Len(t, result.Schedule, DefaultScheduleMonths)
}

func TestSimulate_ScheduleMonths(t *testing.T) {
	in := validSimulation()
	in.ScheduleMonths = 600

	result, err := newTestSimulator().Simulate(in)
	require.NoError(t, err)
	assert.Len(t, result.Schedule, 360)

	in.ScheduleMonths = 3
	result, err = newTestSimulator().Simulate(in)
	require.NoError(t, err)
	assert.Len(t, result.Schedule, 3)
}

func TestSimulate_ConfiguredDefaultSchedule(t *testing.T) {
	svc := NewSimulatorService(taxtable.MustDefault(), 24)

	result, err := svc.Simulate(validSimulation())
	require.NoError(t, err)
	assert.Len(t, result.Schedule, 24)
}

func TestSimulate_VariableRate(t *testing.T) {
	in := validSimulation()
	in.Loan.RateMode = domain.RateVariable
	in.Loan.EuriborPercent = 2.6
	in.Loan.SpreadPercent = 0.9

	result, err := newTestSimulator().Simulate(in)
	require.NoError(t, err)
	assert.InDelta(t, 3.5, result.EffectiveRatePercent, 1e-9)
}

func TestSimulate_FullCash(t *testing.T) {
	in := validSimulation()
	in.Loan.DownPaymentPercent = 100

	result, err := newTestSimulator().Simulate(in)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.Mortgage.MonthlyPayment)
	assert.Equal(t, 0.0, result.Taxes.StampDutyMortgageAmount)
}

func TestSimulate_RejectsInvalidInput(t *testing.T) {
	tests := map[string]func(*domain.SimulationInput){
		"zero property value":  func(in *domain.SimulationInput) { in.Loan.PropertyValue = 0 },
		"negative value":       func(in *domain.SimulationInput) { in.Loan.PropertyValue = -1 },
		"down payment over 100": func(in *domain.SimulationInput) { in.Loan.DownPaymentPercent = 101 },
		"zero term":            func(in *domain.SimulationInput) { in.Loan.LoanTermYears = 0 },
		"term over 50":         func(in *domain.SimulationInput) { in.Loan.LoanTermYears = 51 },
		"missing rate mode":    func(in *domain.SimulationInput) { in.Loan.RateMode = "" },
		"negative fixed rate":  func(in *domain.SimulationInput) { in.Loan.FixedRatePercent = -0.5 },
		"unknown purpose":      func(in *domain.SimulationInput) { in.Profile.PropertyPurpose = "holiday" },
		"schedule too long":    func(in *domain.SimulationInput) { in.ScheduleMonths = 601 },
		"negative variable rate": func(in *domain.SimulationInput) {
			in.Loan.RateMode = domain.RateVariable
			in.Loan.EuriborPercent = -1
			in.Loan.SpreadPercent = 0.5
		},
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			in := validSimulation()
			mutate(&in)

			_, err := newTestSimulator().Simulate(in)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestSimulate_ErrorNamesField(t *testing.T) {
	in := validSimulation()
	in.Loan.LoanTermYears = 0

	_, err := newTestSimulator().Simulate(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan.loanTermYears")
}

func TestSimulate_NegativeEuriborAllowed(t *testing.T) {
	in := validSimulation()
	in.Loan.RateMode = domain.RateVariable
	in.Loan.EuriborPercent = -0.3
	in.Loan.SpreadPercent = 1.1

	result, err := newTestSimulator().Simulate(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, result.EffectiveRatePercent, 1e-9)
}

func TestSimulate_TinyFixedRate(t *testing.T) {
	for _, rate := range []float64{1e-15, 1e-9} {
		in := validSimulation()
		in.Loan.RateMode = domain.RateFixed
		in.Loan.FixedRatePercent = rate

		result, err := newTestSimulator().Simulate(in)
		require.NoError(t, err)
		assert.False(t, math.IsInf(result.Mortgage.MonthlyPayment, 0), "rate %g", rate)
		assert.GreaterOrEqual(t, result.Mortgage.TotalInterest, 0.0, "rate %g", rate)
		for _, row := range result.Schedule {
			assert.False(t, math.IsInf(row.PaymentAmount, 0) || math.IsNaN(row.PaymentAmount))
		}
	}
}

func TestIMT_ReturnsBracket(t *testing.T) {
	amount, bracket, err := newTestSimulator().IMT(domain.IMTInput{
		PropertyValue: 150000,
		Profile:       domain.BuyerProfile{PropertyPurpose: domain.PrimaryResidence},
	})
	require.NoError(t, err)

	assert.InDelta(t, 1279.30, amount, 1e-6)
	assert.Equal(t, 5.0, bracket.RatePercent)
	assert.Equal(t, 139412.0, bracket.LowerBound)
}

func TestIMT_RejectsInvalidInput(t *testing.T) {
	_, _, err := newTestSimulator().IMT(domain.IMTInput{PropertyValue: 150000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
