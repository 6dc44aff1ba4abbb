package domain

import (
	"fmt"
	"iter"
	"strings"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Account represents a cash account owned by a single Client.
// Its transaction log is append-only and the balance is kept in step with it:
// balance always equals the signed sum of the logged transactions.
//
// Account is not safe for concurrent use; callers that share one across
// goroutines must serialise Deposit and Withdraw themselves.
type Account struct {
	AccountID string `json:"accountID"` // Primary Key (e.g., UUID)
	ClientID  string `json:"clientID"`  // Owning client, set when added to one. Empty while unowned.
	Name      string `json:"name"`      // User-defined name
	AuditFields

	transactions []Transaction
	balance      decimal.Decimal
	clock        Clock
}

// AccountOption is a functional option for configuring a new account.
type AccountOption func(*Account)

// WithAccountID sets an explicit identifier instead of a generated UUID.
func WithAccountID(id string) AccountOption {
	return func(a *Account) {
		a.AccountID = id
	}
}

// WithAccountClock sets the clock used to timestamp transactions.
func WithAccountClock(clock Clock) AccountOption {
	return func(a *Account) {
		a.clock = clock
	}
}

// NewAccount creates an empty account with a zero balance.
func NewAccount(name string, options ...AccountOption) (*Account, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("account name is required: %w", apperrors.ErrInvalidParameter)
	}

	a := &Account{
		AccountID: uuid.NewString(),
		Name:      name,
		balance:   decimal.Zero,
		clock:     time.Now,
	}
	for _, option := range options {
		option(a)
	}
	if strings.TrimSpace(a.AccountID) == "" {
		return nil, fmt.Errorf("account identifier is required: %w", apperrors.ErrInvalidParameter)
	}
	a.AuditFields = newAuditFields(a.clock())
	return a, nil
}

// Deposit credits a positive amount to the account and returns the recorded transaction.
func (a *Account) Deposit(amount decimal.Decimal, options ...TransactionOption) (Transaction, error) {
	return a.post(amount, Deposit, options)
}

// Withdraw debits a positive amount not exceeding the current balance.
// On failure the balance and the log are left untouched.
func (a *Account) Withdraw(amount decimal.Decimal, options ...TransactionOption) (Transaction, error) {
	return a.post(amount, Withdrawal, options)
}

func (a *Account) post(amount decimal.Decimal, kind TransactionKind, options []TransactionOption) (Transaction, error) {
	now := a.clock()
	txn := Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     a.AccountID,
		Amount:        amount,
		Kind:          kind,
		Timestamp:     now,
	}
	for _, option := range options {
		option(&txn)
	}
	// Options only carry metadata.
	txn.Amount, txn.Kind, txn.AccountID = amount, kind, a.AccountID

	if err := txn.Validate(); err != nil {
		return Transaction{}, err
	}
	if kind == Withdrawal && amount.GreaterThan(a.balance) {
		return Transaction{}, fmt.Errorf("withdrawal of %s exceeds balance %s of account %s: %w",
			amount.String(), a.balance.String(), a.AccountID, apperrors.ErrInsufficientFunds)
	}

	a.transactions = append(a.transactions, txn)
	a.balance = a.balance.Add(txn.SignedAmount())
	a.touch(now)
	return txn, nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	return a.balance
}

// Len returns the number of recorded transactions.
func (a *Account) Len() int {
	return len(a.transactions)
}

// History returns the transactions in insertion order.
// The sequence is lazy and may be ranged over any number of times; each pass
// reflects the log at the moment it starts. Yielded values are copies.
func (a *Account) History() iter.Seq[Transaction] {
	return func(yield func(Transaction) bool) {
		for _, txn := range a.transactions {
			if !yield(txn) {
				return
			}
		}
	}
}

// Transactions returns the transactions matching filter, in insertion order.
func (a *Account) Transactions(filter TransactionFilter) []Transaction {
	out := []Transaction{}
	for txn := range a.History() {
		if filter.Matches(txn) {
			out = append(out, txn)
		}
	}
	return out
}
