package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Investment represents an amount placed at a fixed per-period rate for a
// number of periods. Its inputs are fixed at construction; the future value
// is derived on demand.
type Investment struct {
	InvestmentID string `json:"investmentID"` // Primary Key (e.g., UUID)
	ClientID     string `json:"clientID"`     // Owning client, set when added to one
	Type         string `json:"type"`         // e.g. "Fund", "Stocks"
	AuditFields

	principal decimal.Decimal
	rate      decimal.Decimal
	periods   int
}

// InvestmentOption is a functional option for configuring a new investment.
type InvestmentOption func(*Investment)

// WithInvestmentID sets an explicit identifier instead of a generated UUID.
func WithInvestmentID(id string) InvestmentOption {
	return func(i *Investment) {
		i.InvestmentID = id
	}
}

// WithPurchaseDate sets the creation timestamp of the investment.
func WithPurchaseDate(ts time.Time) InvestmentOption {
	return func(i *Investment) {
		i.AuditFields = newAuditFields(ts)
	}
}

var minRate = decimal.NewFromInt(-1)

// NewInvestment validates and creates an investment.
// principal must be >= 0, rate >= -1 (no more than a total loss per period)
// and periods >= 0.
func NewInvestment(investmentType string, principal, rate decimal.Decimal, periods int, options ...InvestmentOption) (*Investment, error) {
	if principal.IsNegative() {
		return nil, fmt.Errorf("principal must not be negative, got %s: %w", principal.String(), apperrors.ErrInvalidParameter)
	}
	if rate.LessThan(minRate) {
		return nil, fmt.Errorf("rate must be at least -1, got %s: %w", rate.String(), apperrors.ErrInvalidParameter)
	}
	if periods < 0 {
		return nil, fmt.Errorf("duration must not be negative, got %d periods: %w", periods, apperrors.ErrInvalidParameter)
	}

	i := &Investment{
		InvestmentID: uuid.NewString(),
		Type:         strings.TrimSpace(investmentType),
		AuditFields:  newAuditFields(time.Now()),
		principal:    principal,
		rate:         rate,
		periods:      periods,
	}
	for _, option := range options {
		option(i)
	}
	if strings.TrimSpace(i.InvestmentID) == "" {
		return nil, fmt.Errorf("investment identifier is required: %w", apperrors.ErrInvalidParameter)
	}
	return i, nil
}

func (i *Investment) Principal() decimal.Decimal { return i.principal }
func (i *Investment) Rate() decimal.Decimal      { return i.rate }
func (i *Investment) Periods() int               { return i.periods }

// FutureValue returns principal × (1 + rate)^periods.
func (i *Investment) FutureValue() decimal.Decimal {
	// periods is never negative past NewInvestment, so the error is unreachable.
	fv, _ := accounting.CompoundFutureValue(i.principal, i.rate, i.periods)
	return fv
}

// Gain returns the projected profit (or loss, when negative).
func (i *Investment) Gain() decimal.Decimal {
	return i.FutureValue().Sub(i.principal)
}

// ReturnPercentage returns Gain as a percentage of the principal.
// A zero principal yields zero.
func (i *Investment) ReturnPercentage() decimal.Decimal {
	if i.principal.IsZero() {
		return decimal.Zero
	}
	return i.Gain().Div(i.principal).Mul(decimal.NewFromInt(100))
}
