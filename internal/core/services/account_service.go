package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
	"github.com/SscSPs/patrimony/internal/dto"
	"github.com/SscSPs/patrimony/internal/utils/pagination"
)

// accountService implements the AccountSvcFacade interface.
// Every mutation runs inside the repository's UpdateClient so concurrent
// callers never interleave on one client's accounts.
type accountService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
}

// NewAccountService creates a new account service
func NewAccountService(repo portsrepo.ClientRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{clientRepo: repo}
}

// Ensure accountService implements the AccountSvcFacade interface
var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) OpenAccount(ctx context.Context, req dto.OpenAccountRequest) (*dto.AccountResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid open account request")
		return nil, err
	}

	var res dto.AccountResponse
	err := s.clientRepo.UpdateClient(ctx, req.ClientID, func(c *domain.Client) error {
		account, err := c.OpenAccount(req.Name)
		if err != nil {
			return err
		}
		res = dto.ToAccountResponse(account)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to open account",
			slog.String("client_id", req.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Account opened successfully",
		slog.String("account_id", res.AccountID),
		slog.String("client_id", req.ClientID))
	return &res, nil
}

func (s *accountService) Deposit(ctx context.Context, req dto.PostTransactionRequest) (*dto.TransactionResponse, error) {
	return s.post(ctx, req, domain.Deposit)
}

func (s *accountService) Withdraw(ctx context.Context, req dto.PostTransactionRequest) (*dto.TransactionResponse, error) {
	return s.post(ctx, req, domain.Withdrawal)
}

func (s *accountService) post(ctx context.Context, req dto.PostTransactionRequest, kind domain.TransactionKind) (*dto.TransactionResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid transaction request", slog.String("kind", string(kind)))
		return nil, err
	}

	var res dto.TransactionResponse
	var balance, summary string
	err := s.clientRepo.UpdateClient(ctx, req.ClientID, func(c *domain.Client) error {
		account, err := findAccount(c, req.AccountID)
		if err != nil {
			return err
		}

		var txn domain.Transaction
		if kind == domain.Withdrawal {
			txn, err = account.Withdraw(req.Amount, req.Options()...)
		} else {
			txn, err = account.Deposit(req.Amount, req.Options()...)
		}
		if err != nil {
			return err
		}
		res = dto.ToTransactionResponse(txn)
		balance = account.Balance().String()
		summary = txn.String()
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to post transaction",
			slog.String("kind", string(kind)),
			slog.String("client_id", req.ClientID),
			slog.String("account_id", req.AccountID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction posted successfully",
		slog.String("kind", string(kind)),
		slog.String("transaction_id", res.TransactionID),
		slog.String("account_id", req.AccountID),
		slog.String("summary", summary),
		slog.String("balance", balance))
	return &res, nil
}

func (s *accountService) GetAccount(ctx context.Context, clientID string, accountID string) (*dto.AccountResponse, error) {
	var res dto.AccountResponse
	err := s.clientRepo.ViewClient(ctx, clientID, func(c *domain.Client) error {
		account, err := findAccount(c, accountID)
		if err != nil {
			return err
		}
		res = dto.ToAccountResponse(account)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get account",
			slog.String("client_id", clientID),
			slog.String("account_id", accountID))
		return nil, err
	}
	return &res, nil
}

func (s *accountService) GetBalance(ctx context.Context, clientID string, accountID string) (*dto.AccountBalanceResponse, error) {
	var res dto.AccountBalanceResponse
	err := s.clientRepo.ViewClient(ctx, clientID, func(c *domain.Client) error {
		account, err := findAccount(c, accountID)
		if err != nil {
			return err
		}
		res = dto.AccountBalanceResponse{AccountID: account.AccountID, Balance: account.Balance()}
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get account balance",
			slog.String("client_id", clientID),
			slog.String("account_id", accountID))
		return nil, err
	}
	return &res, nil
}

func (s *accountService) ListTransactions(ctx context.Context, req dto.ListTransactionsRequest) (*dto.ListTransactionsResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid list transactions request")
		return nil, err
	}
	offset, size, err := pageParams(req.Limit, req.NextToken, req.AccountID)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid pagination token", slog.String("account_id", req.AccountID))
		return nil, err
	}

	var res dto.ListTransactionsResponse
	err = s.clientRepo.ViewClient(ctx, req.ClientID, func(c *domain.Client) error {
		account, err := findAccount(c, req.AccountID)
		if err != nil {
			return err
		}
		matching := account.Transactions(req.Filter())
		start, end, next := pagination.Page(len(matching), offset, size)
		res.Transactions = dto.ToListTransactionResponse(matching[start:end])
		res.NextToken = nextPageToken(next, req.AccountID)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to list transactions",
			slog.String("client_id", req.ClientID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}
	return &res, nil
}
