package dto

import (
	"time"

	"github.com/SscSPs/patrimony/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest defines the data needed to register a new client.
type CreateClientRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// ListClientsParams defines paging parameters for listing clients.
type ListClientsParams struct {
	Limit     int     `json:"limit" validate:"gte=0,lte=500"` // 0 means the default page size
	NextToken *string `json:"nextToken"`
}

// ClientResponse summarises a client and its aggregates.
type ClientResponse struct {
	ClientID             string          `json:"clientID"`
	Name                 string          `json:"name"`
	AccountCount         int             `json:"accountCount"`
	InvestmentCount      int             `json:"investmentCount"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	TotalInvestmentValue decimal.Decimal `json:"totalInvestmentValue"`
	NetWorth             decimal.Decimal `json:"netWorth"`
	CreatedAt            time.Time       `json:"createdAt"`
	LastUpdatedAt        time.Time       `json:"lastUpdatedAt"`
}

// ListClientsResponse wraps a page of clients.
type ListClientsResponse struct {
	Clients   []ClientResponse `json:"clients"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// NetWorthResponse breaks a client's net worth into its two components.
type NetWorthResponse struct {
	ClientID             string          `json:"clientID"`
	TotalBalance         decimal.Decimal `json:"totalBalance"`
	TotalInvestmentValue decimal.Decimal `json:"totalInvestmentValue"`
	NetWorth             decimal.Decimal `json:"netWorth"`
}

// ToClientResponse converts a domain.Client to ClientResponse DTO
func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:             c.ClientID,
		Name:                 c.Name,
		AccountCount:         c.AccountCount(),
		InvestmentCount:      c.InvestmentCount(),
		TotalBalance:         c.TotalBalance(),
		TotalInvestmentValue: c.TotalInvestmentValue(),
		NetWorth:             c.NetWorth(),
		CreatedAt:            c.CreatedAt,
		LastUpdatedAt:        c.LastUpdatedAt,
	}
}

// ToNetWorthResponse converts a domain.Client to NetWorthResponse DTO
func ToNetWorthResponse(c *domain.Client) NetWorthResponse {
	balance := c.TotalBalance()
	investments := c.TotalInvestmentValue()
	return NetWorthResponse{
		ClientID:             c.ClientID,
		TotalBalance:         balance,
		TotalInvestmentValue: investments,
		NetWorth:             balance.Add(investments),
	}
}
