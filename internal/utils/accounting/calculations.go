package accounting

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SignificantDigits is the number of significant digits kept on compounding
// intermediates and results. The bound is relative to magnitude, so very small
// factors keep their precision and very large ones keep a bounded coefficient.
const SignificantDigits = 34

// SignedAmount applies the direction sign to an unsigned amount.
// Inflows (deposits) stay positive, outflows (withdrawals) are negated.
func SignedAmount(amount decimal.Decimal, outflow bool) decimal.Decimal {
	if outflow {
		return amount.Neg()
	}
	return amount
}

// SumAmounts adds the given amounts. An empty input sums to zero.
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum
}

// RoundSignificant rounds d to the given number of significant digits.
// Values that already fit are returned unchanged.
func RoundSignificant(d decimal.Decimal, digits int) decimal.Decimal {
	if d.IsZero() || d.NumDigits() <= digits {
		return d
	}
	// Digits left of the decimal point are NumDigits + Exponent.
	places := int64(digits) - int64(d.NumDigits()) - int64(d.Exponent())
	return d.Round(int32(places))
}

// CompoundFactor returns (1 + rate)^periods using exponentiation by squaring,
// keeping SignificantDigits significant digits on every product.
// periods must not be negative; a zero exponent always yields one.
func CompoundFactor(rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	if periods < 0 {
		return decimal.Zero, fmt.Errorf("periods must not be negative, got %d", periods)
	}

	base := decimal.NewFromInt(1).Add(rate)
	result := decimal.NewFromInt(1)
	for n := periods; n > 0; {
		if n&1 == 1 {
			result = RoundSignificant(result.Mul(base), SignificantDigits)
		}
		n >>= 1
		if n == 0 {
			break
		}
		base = RoundSignificant(base.Mul(base), SignificantDigits)
	}
	return result, nil
}

// CompoundFutureValue projects principal × (1 + rate)^periods.
// Example: principal 1000, rate 0.05, periods 2 returns 1102.5
func CompoundFutureValue(principal, rate decimal.Decimal, periods int) (decimal.Decimal, error) {
	factor, err := CompoundFactor(rate, periods)
	if err != nil {
		return decimal.Zero, fmt.Errorf("error calculating compound factor: %w", err)
	}
	if periods == 0 {
		return principal, nil
	}
	return RoundSignificant(principal.Mul(factor), SignificantDigits), nil
}
