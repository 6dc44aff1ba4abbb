package dto

import (
	"time"

	"github.com/SscSPs/patrimony/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OpenAccountRequest defines the data needed to open an account for a client.
type OpenAccountRequest struct {
	ClientID string `json:"clientID" validate:"required"`
	Name     string `json:"name" validate:"required,max=200"`
}

// PostTransactionRequest defines a deposit or a withdrawal.
type PostTransactionRequest struct {
	ClientID    string          `json:"clientID" validate:"required"`
	AccountID   string          `json:"accountID" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"decimal_gt=0"`
	Category    string          `json:"category" validate:"max=64"`
	Description string          `json:"description" validate:"max=500"`
	Timestamp   *time.Time      `json:"timestamp"` // Optional, defaults to now
}

// Options converts the optional request fields to domain transaction options.
func (r PostTransactionRequest) Options() []domain.TransactionOption {
	var opts []domain.TransactionOption
	if r.Category != "" {
		opts = append(opts, domain.WithCategory(r.Category))
	}
	if r.Description != "" {
		opts = append(opts, domain.WithDescription(r.Description))
	}
	if r.Timestamp != nil {
		opts = append(opts, domain.WithTimestamp(*r.Timestamp))
	}
	return opts
}

// ListTransactionsRequest defines a filtered, paged read of an account's history.
type ListTransactionsRequest struct {
	ClientID  string    `json:"clientID" validate:"required"`
	AccountID string    `json:"accountID" validate:"required"`
	From      time.Time `json:"from"`     // Inclusive, zero means unbounded
	To        time.Time `json:"to"`       // Inclusive, zero means unbounded
	Category  string    `json:"category"` // Optional
	Limit     int       `json:"limit" validate:"gte=0,lte=500"`
	NextToken *string   `json:"nextToken"`
}

// Filter returns the domain filter described by the request.
func (r ListTransactionsRequest) Filter() domain.TransactionFilter {
	return domain.TransactionFilter{From: r.From, To: r.To, Category: r.Category}
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID        string          `json:"accountID"`
	ClientID         string          `json:"clientID"`
	Name             string          `json:"name"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
	CreatedAt        time.Time       `json:"createdAt"`
	LastUpdatedAt    time.Time       `json:"lastUpdatedAt"`
}

// AccountBalanceResponse defines the data returned for an account balance query.
type AccountBalanceResponse struct {
	AccountID string          `json:"accountID"`
	Balance   decimal.Decimal `json:"balance"`
}

// TransactionResponse mirrors domain.Transaction with the signed amount added.
type TransactionResponse struct {
	TransactionID string                 `json:"transactionID"`
	AccountID     string                 `json:"accountID"`
	Amount        decimal.Decimal        `json:"amount"`
	SignedAmount  decimal.Decimal        `json:"signedAmount"`
	Kind          domain.TransactionKind `json:"kind"`
	Category      string                 `json:"category"`
	Description   string                 `json:"description"`
	Timestamp     time.Time              `json:"timestamp"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:        acc.AccountID,
		ClientID:         acc.ClientID,
		Name:             acc.Name,
		Balance:          acc.Balance(),
		TransactionCount: acc.Len(),
		CreatedAt:        acc.CreatedAt,
		LastUpdatedAt:    acc.LastUpdatedAt,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		SignedAmount:  t.SignedAmount(),
		Kind:          t.Kind,
		Category:      t.Category,
		Description:   t.Description,
		Timestamp:     t.Timestamp,
	}
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(t)
	}
	return res
}
