package services

import (
	"context"

	"github.com/SscSPs/patrimony/internal/dto"
)

// InvestmentCalculatorSvc defines stateless projections
type InvestmentCalculatorSvc interface {
	// ProjectInvestment computes the future value of an investment without storing it.
	ProjectInvestment(ctx context.Context, req dto.ProjectInvestmentRequest) (*dto.InvestmentResponse, error)
}

// InvestmentWriterSvc defines write operations for investment data
type InvestmentWriterSvc interface {
	// AddInvestment creates an investment and attaches it to the client.
	AddInvestment(ctx context.Context, req dto.AddInvestmentRequest) (*dto.InvestmentResponse, error)

	// SellInvestment credits the investment's future value to an account and releases it.
	SellInvestment(ctx context.Context, req dto.SellInvestmentRequest) (*dto.SellInvestmentResponse, error)
}

// InvestmentSvcFacade combines all investment-related service interfaces
type InvestmentSvcFacade interface {
	InvestmentCalculatorSvc
	InvestmentWriterSvc
}
