package services

import (
	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// A nil clock keeps the services on time.Now.
func NewServiceContainer(repos portsrepo.RepositoryProvider, clock domain.Clock) *portssvc.ServiceContainer {
	var clientOpts []ClientServiceOption
	var investmentOpts []InvestmentServiceOption
	if clock != nil {
		clientOpts = append(clientOpts, WithClientServiceClock(clock))
		investmentOpts = append(investmentOpts, WithInvestmentServiceClock(clock))
	}

	return &portssvc.ServiceContainer{
		Client:     NewClientService(repos.ClientRepo, clientOpts...),
		Account:    NewAccountService(repos.ClientRepo),
		Investment: NewInvestmentService(repos.ClientRepo, investmentOpts...),
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ClientSvcFacade     = (*clientService)(nil)
	_ portssvc.AccountSvcFacade    = (*accountService)(nil)
	_ portssvc.InvestmentSvcFacade = (*investmentService)(nil)
)
