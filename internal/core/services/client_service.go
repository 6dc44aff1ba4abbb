package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
	"github.com/SscSPs/patrimony/internal/dto"
	"github.com/SscSPs/patrimony/internal/utils/pagination"
)

// clientService implements the ClientSvcFacade interface
type clientService struct {
	BaseService
	clientRepo portsrepo.ClientRepositoryFacade
	clock      domain.Clock
}

// ClientServiceOption is a functional option for configuring the client service
type ClientServiceOption func(*clientService)

// WithClientServiceClock sets the clock new clients and their accounts use.
func WithClientServiceClock(clock domain.Clock) ClientServiceOption {
	return func(s *clientService) {
		s.clock = clock
	}
}

// NewClientService creates a new client service with the provided options
func NewClientService(repo portsrepo.ClientRepositoryFacade, options ...ClientServiceOption) portssvc.ClientSvcFacade {
	svc := &clientService{
		clientRepo: repo,
		clock:      time.Now,
	}

	// Apply all options
	for _, option := range options {
		option(svc)
	}

	return svc
}

// Ensure clientService implements the ClientSvcFacade interface
var _ portssvc.ClientSvcFacade = (*clientService)(nil)

func (s *clientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*dto.ClientResponse, error) {
	if err := dto.Validate(req); err != nil {
		s.LogFailure(ctx, err, "Invalid create client request")
		return nil, err
	}

	client, err := domain.NewClient(req.Name, domain.WithClientClock(s.clock))
	if err != nil {
		s.LogFailure(ctx, err, "Failed to build client", slog.String("name", req.Name))
		return nil, err
	}
	// Snapshot before the client becomes reachable by other callers.
	res := dto.ToClientResponse(client)

	if err := s.clientRepo.SaveClient(ctx, client); err != nil {
		s.LogFailure(ctx, err, "Failed to save client",
			slog.String("client_id", client.ClientID))
		return nil, err
	}

	s.LogInfo(ctx, "Client created successfully",
		slog.String("client_id", client.ClientID))
	return &res, nil
}

func (s *clientService) GetClient(ctx context.Context, clientID string) (*dto.ClientResponse, error) {
	var res dto.ClientResponse
	err := s.clientRepo.ViewClient(ctx, clientID, func(c *domain.Client) error {
		res = dto.ToClientResponse(c)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to get client", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogDebug(ctx, "Client retrieved successfully", slog.String("client_id", clientID))
	return &res, nil
}

func (s *clientService) ListClients(ctx context.Context, params dto.ListClientsParams) (*dto.ListClientsResponse, error) {
	if err := dto.Validate(params); err != nil {
		s.LogFailure(ctx, err, "Invalid list clients request")
		return nil, err
	}
	offset, size, err := pageParams(params.Limit, params.NextToken, clientListScope)
	if err != nil {
		s.LogFailure(ctx, err, "Invalid pagination token")
		return nil, err
	}

	clients := []dto.ClientResponse{}
	total, err := s.clientRepo.ViewClients(ctx, offset, size, func(c *domain.Client) error {
		clients = append(clients, dto.ToClientResponse(c))
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients",
			slog.Int("offset", offset),
			slog.Int("limit", size))
		return nil, err
	}

	_, _, next := pagination.Page(total, offset, size)
	return &dto.ListClientsResponse{
		Clients:   clients,
		NextToken: nextPageToken(next, clientListScope),
	}, nil
}

func (s *clientService) DeleteClient(ctx context.Context, clientID string) error {
	if err := s.clientRepo.DeleteClient(ctx, clientID); err != nil {
		s.LogFailure(ctx, err, "Failed to delete client", slog.String("client_id", clientID))
		return err
	}

	s.LogInfo(ctx, "Client deleted successfully", slog.String("client_id", clientID))
	return nil
}

func (s *clientService) NetWorth(ctx context.Context, clientID string) (*dto.NetWorthResponse, error) {
	var res dto.NetWorthResponse
	err := s.clientRepo.ViewClient(ctx, clientID, func(c *domain.Client) error {
		res = dto.ToNetWorthResponse(c)
		return nil
	})
	if err != nil {
		s.LogFailure(ctx, err, "Failed to calculate net worth", slog.String("client_id", clientID))
		return nil, err
	}

	s.LogDebug(ctx, "Net worth calculated",
		slog.String("client_id", clientID),
		slog.String("net_worth", res.NetWorth.String()))
	return &res, nil
}
