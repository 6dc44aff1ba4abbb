package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// TransactionKind indicates whether a transaction moves money into or out of an account.
type TransactionKind string

const (
	Deposit    TransactionKind = "DEPOSIT"
	Withdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction represents a single movement on an Account.
// Amount is always positive; the direction is carried by Kind.
// Transactions are created by Account operations and never mutated afterwards:
// the owning Account only hands out copies.
type Transaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (e.g., UUID)
	AccountID     string          `json:"accountID"`     // Owning account
	Amount        decimal.Decimal `json:"amount"`        // Positive value
	Kind          TransactionKind `json:"kind"`          // DEPOSIT or WITHDRAWAL
	Category      string          `json:"category"`      // Optional free-form label
	Description   string          `json:"description"`   // Optional
	Timestamp     time.Time       `json:"timestamp"`
}

// SignedAmount returns the amount with the direction applied:
// deposits are positive, withdrawals negative.
func (t Transaction) SignedAmount() decimal.Decimal {
	return accounting.SignedAmount(t.Amount, t.Kind == Withdrawal)
}

// Validate checks the transaction's amount and kind.
// Zero and negative amounts are rejected.
func (t Transaction) Validate() error {
	if !t.Amount.IsPositive() {
		return fmt.Errorf("transaction amount must be positive, got %s: %w", t.Amount.String(), apperrors.ErrInvalidParameter)
	}
	switch t.Kind {
	case Deposit, Withdrawal:
	default:
		return fmt.Errorf("unknown transaction kind '%s': %w", t.Kind, apperrors.ErrInvalidParameter)
	}
	return nil
}

// String renders the transaction for logs and debugging, always with two decimals.
// Display code formats amounts itself with the configured precision.
func (t Transaction) String() string {
	label := t.Description
	if label == "" {
		label = string(t.Kind)
	}
	s := fmt.Sprintf("%s %s", label, t.SignedAmount().StringFixed(2))
	if t.Category != "" {
		s += fmt.Sprintf(" (%s)", t.Category)
	}
	return s
}

// TransactionOption configures optional fields of a transaction posted to an account.
type TransactionOption func(*Transaction)

// WithCategory labels the transaction with a category.
func WithCategory(category string) TransactionOption {
	return func(t *Transaction) {
		t.Category = category
	}
}

// WithDescription attaches a human readable description.
func WithDescription(description string) TransactionOption {
	return func(t *Transaction) {
		t.Description = description
	}
}

// WithTimestamp overrides the account clock for this transaction.
func WithTimestamp(ts time.Time) TransactionOption {
	return func(t *Transaction) {
		t.Timestamp = ts
	}
}

// TransactionFilter selects transactions from an account's history.
// Zero-valued fields do not filter. From and To are inclusive.
type TransactionFilter struct {
	From     time.Time
	To       time.Time
	Category string
}

// Matches reports whether the transaction passes every set criterion.
func (f TransactionFilter) Matches(t Transaction) bool {
	if !f.From.IsZero() && t.Timestamp.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && t.Timestamp.After(f.To) {
		return false
	}
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	return true
}
