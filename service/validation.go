package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"property-simulator/domain"
)

var ErrInvalidInput = errors.New("invalid input")

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report field names the way clients send them.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	validate.RegisterStructValidation(validateLoanRate, domain.LoanInput{})
	validate.RegisterStructValidation(validateComparisonRate, domain.TermComparisonInput{})
}

// Negative Euribor is accepted as long as the resulting rate is not negative.
func validateLoanRate(sl validator.StructLevel) {
	in := sl.Current().Interface().(domain.LoanInput)
	if in.RateMode == domain.RateVariable && in.EuriborPercent+in.SpreadPercent < 0 {
		sl.ReportError(in.EuriborPercent, "euriborPercent", "EuriborPercent", "nonnegative_rate", "")
	}
}

func validateComparisonRate(sl validator.StructLevel) {
	in := sl.Current().Interface().(domain.TermComparisonInput)
	if in.RateMode == domain.RateVariable && in.EuriborPercent+in.SpreadPercent < 0 {
		sl.ReportError(in.EuriborPercent, "euriborPercent", "EuriborPercent", "nonnegative_rate", "")
	}
}

// Validate checks a request struct and returns an ErrInvalidInput error
// naming the first offending field.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	fe := verrs[0]
	field := strings.SplitN(fe.Namespace(), ".", 2)
	name := field[len(field)-1]
	if fe.Param() != "" {
		return fmt.Errorf("%w: %s failed %s=%s", ErrInvalidInput, name, fe.Tag(), fe.Param())
	}
	return fmt.Errorf("%w: %s failed %s", ErrInvalidInput, name, fe.Tag())
}
