package services

import (
	"context"

	"github.com/SscSPs/patrimony/internal/dto"
)

// ClientReaderSvc defines read operations for client data
type ClientReaderSvc interface {
	// GetClient returns a summary of the client and its aggregates.
	GetClient(ctx context.Context, clientID string) (*dto.ClientResponse, error)

	// ListClients returns a page of client summaries in registration order.
	ListClients(ctx context.Context, params dto.ListClientsParams) (*dto.ListClientsResponse, error)
}

// ClientWriterSvc defines write operations for client data
type ClientWriterSvc interface {
	// CreateClient registers a new client with no accounts or investments.
	CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error)

	// DeleteClient removes a client and everything it owns.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientCalculatorSvc defines calculation operations for client data
type ClientCalculatorSvc interface {
	// NetWorth sums account balances and investment future values.
	NetWorth(ctx context.Context, clientID string) (*dto.NetWorthResponse, error)
}

// ClientSvcFacade combines all client-related service interfaces
type ClientSvcFacade interface {
	ClientReaderSvc
	ClientWriterSvc
	ClientCalculatorSvc
}
