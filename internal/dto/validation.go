package dto

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Decimal bounds compare with decimal arithmetic, never through float64.
	_ = v.RegisterValidation("decimal_gt", decimalBound(decimal.Decimal.GreaterThan))
	_ = v.RegisterValidation("decimal_gte", decimalBound(decimal.Decimal.GreaterThanOrEqual))
	return v
}

// decimalBound builds a validator comparing a decimal field against the tag parameter.
func decimalBound(cmp func(decimal.Decimal, decimal.Decimal) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		if !ok {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return cmp(d, bound)
	}
}

// Validate checks req against its `validate` tags.
// Failures are reported as apperrors.ErrInvalidParameter.
func Validate(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("invalid request: %v: %w", err, apperrors.ErrInvalidParameter)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed '%s=%s'", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed '%s'", fe.Field(), fe.Tag()))
		}
	}
	return fmt.Errorf("invalid request: %s: %w", strings.Join(msgs, "; "), apperrors.ErrInvalidParameter)
}
