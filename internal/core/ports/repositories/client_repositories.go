package repositories

import (
	"context"

	"github.com/SscSPs/patrimony/internal/core/domain"
)

// ClientReader defines read operations for client data.
// Callbacks run with shared access and must not mutate the client.
type ClientReader interface {
	// ViewClient runs fn against the client with the given identifier.
	ViewClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error

	// ViewClients runs fn for up to limit clients starting at offset, in registration order.
	// It returns the total number of registered clients.
	ViewClients(ctx context.Context, offset int, limit int, fn func(*domain.Client) error) (int, error)
}

// ClientWriter defines write operations for client data.
type ClientWriter interface {
	// SaveClient registers a new client.
	SaveClient(ctx context.Context, client *domain.Client) error

	// DeleteClient removes a client together with everything it owns.
	DeleteClient(ctx context.Context, clientID string) error
}

// ClientTransactionSupport serialises mutations of a client's accounts and investments.
type ClientTransactionSupport interface {
	// UpdateClient runs fn with exclusive access to the client.
	UpdateClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error
}

// ClientRepositoryFacade combines all client-related repository interfaces
// This is a facade for clients that need access to all operations
type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientTransactionSupport
}
