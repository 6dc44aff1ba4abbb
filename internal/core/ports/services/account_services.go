package services

import (
	"context"

	"github.com/SscSPs/patrimony/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account owned by the client.
	GetAccount(ctx context.Context, clientID string, accountID string) (*dto.AccountResponse, error)

	// ListTransactions returns a filtered page of an account's history in insertion order.
	ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	// OpenAccount creates an empty account and adds it to the client.
	OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*dto.AccountResponse, error)

	// Deposit credits the account.
	Deposit(ctx context.Context, req dto.PostTransactionRequest) (*dto.TransactionResponse, error)

	// Withdraw debits the account; fails with apperrors.ErrInsufficientFunds past the balance.
	Withdraw(ctx context.Context, req dto.PostTransactionRequest) (*dto.TransactionResponse, error)
}

// AccountCalculatorSvc defines calculation operations for account data
type AccountCalculatorSvc interface {
	// GetBalance returns the current balance of an account.
	GetBalance(ctx context.Context, clientID string, accountID string) (*dto.AccountBalanceResponse, error)
}

// AccountSvcFacade combines all account-related service interfaces
// This is a facade for clients that need access to all operations
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountCalculatorSvc
}
