package service

import (
	"errors"
	"math"
	"sort"

	"property-simulator/domain"
)

var ErrNoTermFits = errors.New("no term fits the maximum monthly payment")

// roundTo2Decimals arredonda um float64 a 2 casas decimais
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

type TermComparisonService struct{}

func NewTermComparisonService() *TermComparisonService {
	return &TermComparisonService{}
}

// Compare evaluates every term in the requested range and ranks the ones the
// buyer can afford.
func (s *TermComparisonService) Compare(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if err := Validate(input); err != nil {
		return domain.TermComparisonResult{}, err
	}

	options := []domain.TermOption{}
	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		result := ComputeMortgage(domain.LoanInput{
			PropertyValue:      input.PropertyValue,
			DownPaymentPercent: input.DownPaymentPercent,
			LoanTermYears:      term,
			RateMode:           input.RateMode,
			FixedRatePercent:   input.FixedRatePercent,
			EuriborPercent:     input.EuriborPercent,
			SpreadPercent:      input.SpreadPercent,
		})

		if input.MaxMonthlyPayment > 0 && result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: result.MonthlyPayment,
			TotalInterest:  result.TotalInterest,
			Reason:         reasonFor(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, ErrNoTermFits
	}

	scoreOptions(options, input.Preference)

	// Ordenar por score descendente; empates favorecem o prazo mais curto
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	return domain.TermComparisonResult{
		RecommendedTermYears: options[0].TermYears,
		Options:              options,
	}, nil
}

// scoreOptions gives each option a 0-10 score from its total interest and
// monthly payment, both normalized over the affordable options.
func scoreOptions(options []domain.TermOption, preference domain.TermPreference) {
	minInterest, maxInterest := math.Inf(1), math.Inf(-1)
	minPayment, maxPayment := math.Inf(1), math.Inf(-1)
	for _, o := range options {
		minInterest = math.Min(minInterest, o.TotalInterest)
		maxInterest = math.Max(maxInterest, o.TotalInterest)
		minPayment = math.Min(minPayment, o.MonthlyPayment)
		maxPayment = math.Max(maxPayment, o.MonthlyPayment)
	}

	interestWeight := 0.5
	switch preference {
	case domain.MinimizeInterest:
		interestWeight = 0.8
	case domain.MinimizePayment:
		interestWeight = 0.2
	}

	for i := range options {
		o := &options[i]

		interestScore, paymentScore := 10.0, 10.0
		if r := maxInterest - minInterest; r > 0 {
			interestScore = 10.0 * (maxInterest - o.TotalInterest) / r
		}
		if r := maxPayment - minPayment; r > 0 {
			paymentScore = 10.0 * (maxPayment - o.MonthlyPayment) / r
		}

		o.Score = roundTo2Decimals(interestWeight*interestScore + (1-interestWeight)*paymentScore)
	}
}

func reasonFor(preference domain.TermPreference) string {
	switch preference {
	case domain.MinimizeInterest:
		return "Term chosen to minimize total interest paid"
	case domain.MinimizePayment:
		return "Term chosen to minimize the monthly payment"
	case domain.Balanced:
		return "Best balance between monthly payment and total cost"
	}
	return "Recommendation based on the given parameters"
}
