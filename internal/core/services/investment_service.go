package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
	"github.com/SscSPs/patrimony/internal/dto"
)

// investmentService implements the InvestmentSvcFacade interface
type investmentService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	clock      domain.Clock
}

// InvestmentServiceOption is a functional option for configuring the investment service
type InvestmentServiceOption func(*investmentService)

// WithInvestmentServiceClock sets the clock used for purchase dates.
func WithInvestmentServiceClock(clock domain.Clock) InvestmentServiceOption {
	return func(s *investmentService) {
		s.clock = clock
	}
}

// NewInvestmentService creates a new investment service with the provided options
func NewInvestmentService(repo portsrepo.ClientRepositoryFacade, options ...InvestmentServiceOption) portssvc.InvestmentSvcFacade {
	svc := &investmentService{
		clientRepo: repo,
		clock:      time.Now,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure investmentService implements the InvestmentSvcFacade interface
var _ portssvc.InvestmentSvcFacade = (*investmentService)(nil)

func (s *investmentService) ProjectInvestment(ctx context.Context, req dto.ProjectInvestmentRequest) (*dto.InvestmentResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid projection request")
		return nil, err
	}

	inv, err := domain.NewInvestment(req.Type, req.Principal, req.Rate, req.Periods)
	if err != nil {
		s.LogFailure(ctx, err, "Failed to build investment for projection")
		return nil, err
	}

	res := dto.ToInvestmentResponse(inv)
	// Projections are never stored, so they carry no identity.
	res.InvestmentID = ""
	return &res, nil
}

func (s *investmentService) AddInvestment(ctx context.Context, req dto.AddInvestmentRequest) (*dto.InvestmentResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid add investment request")
		return nil, err
	}

	inv, err := domain.NewInvestment(req.Type, req.Principal, req.Rate, req.Periods, domain.WithPurchaseDate(s.clock()))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to build investment", slog.String("client_id", req.ClientID))
		return nil, err
	}

	var res dto.InvestmentResponse
	err = s.clientRepo.UpdateClient(ctx, req.ClientID, func(c *domain.Client) error {
		if err := c.AddInvestment(inv); err != nil {
			return err
		}
		res = dto.ToInvestmentResponse(inv)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to add investment",
			slog.String("client_id", req.ClientID),
			slog.String("investment_id", inv.InvestmentID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment added successfully",
		slog.String("client_id", req.ClientID),
		slog.String("investment_id", res.InvestmentID),
		slog.String("future_value", res.FutureValue.String()))
	return &res, nil
}

func (s *investmentService) SellInvestment(ctx context.Context, req dto.SellInvestmentRequest) (*dto.SellInvestmentResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid sell investment request")
		return nil, err
	}

	var res dto.SellInvestmentResponse
	err := s.clientRepo.UpdateClient(ctx, req.ClientID, func(c *domain.Client) error {
		txn, err := c.SellInvestment(req.InvestmentID, req.AccountID)
		if err != nil {
			return err
		}
		if txn.TransactionID != "" {
			txnRes := dto.ToTransactionResponse(txn)
			res.Transaction = &txnRes
		}
		account, err := findAccount(c, req.AccountID)
		if err != nil {
			return err
		}
		res.Account = dto.ToAccountResponse(account)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to sell investment",
			slog.String("client_id", req.ClientID),
			slog.String("investment_id", req.InvestmentID),
			slog.String("account_id", req.AccountID))
		return nil, err
	}

	s.LogInfo(ctx, "Investment sold successfully",
		slog.String("client_id", req.ClientID),
		slog.String("investment_id", req.InvestmentID),
		slog.String("balance", res.Account.Balance.String()))
	return &res, nil
}
