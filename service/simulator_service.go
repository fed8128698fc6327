package service

import (
	"slices"

	"property-simulator/domain"
	"property-simulator/taxtable"
)

// SimulatorService validates simulator requests and runs the calculator. It
// holds only read-only tables, so one instance serves concurrent callers.
type SimulatorService struct {
	tables         *taxtable.Set
	scheduleMonths int
}

// NewSimulatorService creates a SimulatorService over the given bracket
// tables. scheduleMonths is the schedule length used when a request does not
// ask for one.
func NewSimulatorService(tables *taxtable.Set, scheduleMonths int) *SimulatorService {
	if scheduleMonths <= 0 {
		scheduleMonths = DefaultScheduleMonths
	}
	return &SimulatorService{tables: tables, scheduleMonths: scheduleMonths}
}

func (s *SimulatorService) Tables() *taxtable.Set {
	return s.tables
}

// Simulate computes mortgage, taxes and the amortization schedule for one
// request.
func (s *SimulatorService) Simulate(
	input domain.SimulationInput,
) (domain.SimulationResult, error) {

	if err := Validate(input); err != nil {
		return domain.SimulationResult{}, err
	}

	months := input.ScheduleMonths
	if months == 0 {
		months = s.scheduleMonths
	}

	rate := ComputeEffectiveRate(input.Loan)
	mortgage := ComputeMortgage(input.Loan)
	taxes := ComputeTaxes(
		s.tables,
		input.Loan.PropertyValue,
		mortgage.LoanAmount,
		input.Loan.DownPaymentPercent,
		input.Profile,
	)
	schedule := slices.Collect(GenerateAmortizationSchedule(
		mortgage.LoanAmount,
		rate,
		input.Loan.LoanTermYears,
		months,
	))

	return domain.SimulationResult{
		EffectiveRatePercent: rate,
		DownPaymentAmount:    input.Loan.PropertyValue * input.Loan.DownPaymentPercent / 100,
		Mortgage:             mortgage,
		Taxes:                taxes,
		Schedule:             schedule,
	}, nil
}

// IMT returns the transfer tax and the bracket it was taken from.
func (s *SimulatorService) IMT(
	input domain.IMTInput,
) (float64, taxtable.Bracket, error) {

	if err := Validate(input); err != nil {
		return 0, taxtable.Bracket{}, err
	}

	table := s.tables.Table(taxtable.ProfileFor(input.Profile.PropertyPurpose, input.Profile.IsUnder35))
	bracket := table.Find(input.PropertyValue)
	return BracketIMT(bracket, input.PropertyValue), bracket, nil
}
