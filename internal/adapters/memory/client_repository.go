package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
)

// clientRepository keeps clients in process memory, in registration order.
// One RWMutex guards the registry and every client reachable through it.
type clientRepository struct {
	mu      sync.RWMutex
	order   []string
	clients map[string]*domain.Client
}

// NewClientRepository creates an empty in-memory client registry.
func NewClientRepository() portsrepo.ClientRepositoryFacade {
	return &clientRepository{clients: make(map[string]*domain.Client)}
}

var _ portsrepo.ClientRepositoryFacade = (*clientRepository)(nil)

// SaveClient registers a new client.
func (r *clientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if client == nil {
		return fmt.Errorf("client is required: %w", apperrors.ErrInvalidParameter)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[client.ClientID]; exists {
		return fmt.Errorf("client %s: %w", client.ClientID, apperrors.ErrDuplicateIdentifier)
	}
	r.clients[client.ClientID] = client
	r.order = append(r.order, client.ClientID)
	return nil
}

// DeleteClient removes a client.
func (r *clientRepository) DeleteClient(ctx context.Context, clientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.clients[clientID]; !exists {
		return fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	delete(r.clients, clientID)
	r.order = slices.DeleteFunc(r.order, func(id string) bool { return id == clientID })
	return nil
}

// ViewClient runs fn with shared access to one client.
func (r *clientRepository) ViewClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	client, ok := r.clients[clientID]
	if !ok {
		return fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	return fn(client)
}

// ViewClients runs fn with shared access over a window of clients.
// A non-positive limit means every client from offset on.
func (r *clientRepository) ViewClients(ctx context.Context, offset int, limit int, fn func(*domain.Client) error) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if offset < 0 {
		return 0, fmt.Errorf("offset must not be negative, got %d: %w", offset, apperrors.ErrInvalidParameter)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	total := len(r.order)
	start := min(offset, total)
	end := total
	if limit > 0 {
		end = min(start+limit, total)
	}
	for _, id := range r.order[start:end] {
		if err := fn(r.clients[id]); err != nil {
			return total, err
		}
	}
	return total, nil
}

// UpdateClient runs fn with exclusive access to one client.
func (r *clientRepository) UpdateClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	client, ok := r.clients[clientID]
	if !ok {
		return fmt.Errorf("client %s: %w", clientID, apperrors.ErrNotFound)
	}
	return fn(client)
}
