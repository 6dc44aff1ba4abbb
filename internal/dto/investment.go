package dto

import (
	"github.com/SscSPs/patrimony/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ProjectInvestmentRequest describes an investment to project without attaching it to a client.
type ProjectInvestmentRequest struct {
	Type      string          `json:"type" validate:"max=100"`
	Principal decimal.Decimal `json:"principal" validate:"decimal_gte=0"`
	Rate      decimal.Decimal `json:"rate" validate:"decimal_gte=-1"` // Per period
	Periods   int             `json:"periods" validate:"gte=0"`
}

// AddInvestmentRequest defines the data needed to attach an investment to a client.
type AddInvestmentRequest struct {
	ClientID string `json:"clientID" validate:"required"`
	ProjectInvestmentRequest
}

// SellInvestmentRequest liquidates an investment into one of the client's accounts.
type SellInvestmentRequest struct {
	ClientID     string `json:"clientID" validate:"required"`
	InvestmentID string `json:"investmentID" validate:"required"`
	AccountID    string `json:"accountID" validate:"required"`
}

// InvestmentResponse defines the data returned for an investment, projections included.
type InvestmentResponse struct {
	InvestmentID     string          `json:"investmentID,omitempty"`
	ClientID         string          `json:"clientID,omitempty"`
	Type             string          `json:"type"`
	Principal        decimal.Decimal `json:"principal"`
	Rate             decimal.Decimal `json:"rate"`
	Periods          int             `json:"periods"`
	FutureValue      decimal.Decimal `json:"futureValue"`
	Gain             decimal.Decimal `json:"gain"`
	ReturnPercentage decimal.Decimal `json:"returnPercentage"`
}

// SellInvestmentResponse reports the credited transaction and the account afterwards.
type SellInvestmentResponse struct {
	Transaction *TransactionResponse `json:"transaction,omitempty"` // Nil when nothing was credited
	Account     AccountResponse      `json:"account"`
}

// ToInvestmentResponse converts a domain.Investment to InvestmentResponse DTO
func ToInvestmentResponse(inv *domain.Investment) InvestmentResponse {
	return InvestmentResponse{
		InvestmentID:     inv.InvestmentID,
		ClientID:         inv.ClientID,
		Type:             inv.Type,
		Principal:        inv.Principal(),
		Rate:             inv.Rate(),
		Periods:          inv.Periods(),
		FutureValue:      inv.FutureValue(),
		Gain:             inv.Gain(),
		ReturnPercentage: inv.ReturnPercentage(),
	}
}
