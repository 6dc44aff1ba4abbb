package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/core/domain"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
	"github.com/SscSPs/patrimony/internal/core/services"
	"github.com/SscSPs/patrimony/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

var fixedNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// MockClientRepository is a mock type for the ClientRepositoryFacade interface.
// Callback methods run the callback against the *domain.Client given to Return.
type MockClientRepository struct {
	mock.Mock
}

var _ portsrepo.ClientRepositoryFacade = (*MockClientRepository)(nil)

// --- Implement mock methods for ClientRepositoryFacade ---

func (m *MockClientRepository) SaveClient(ctx context.Context, client *domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) DeleteClient(ctx context.Context, clientID string) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

func (m *MockClientRepository) ViewClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error {
	args := m.Called(ctx, clientID)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return fn(c)
	}
	return args.Error(1)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, clientID string, fn func(*domain.Client) error) error {
	args := m.Called(ctx, clientID)
	if c, ok := args.Get(0).(*domain.Client); ok {
		return fn(c)
	}
	return args.Error(1)
}

func (m *MockClientRepository) ViewClients(ctx context.Context, offset int, limit int, fn func(*domain.Client) error) (int, error) {
	args := m.Called(ctx, offset, limit)
	if clients, ok := args.Get(0).([]*domain.Client); ok {
		for _, c := range clients {
			if err := fn(c); err != nil {
				return args.Int(1), err
			}
		}
	}
	return args.Int(1), args.Error(2)
}

// --- Test Suite Setup ---

type ClientServiceTestSuite struct {
	suite.Suite
	mockRepo *MockClientRepository
	service  portssvc.ClientSvcFacade
}

func (suite *ClientServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockClientRepository)
	suite.service = services.NewClientService(suite.mockRepo, services.WithClientServiceClock(fixedClock))
}

func (suite *ClientServiceTestSuite) newClient(name string) *domain.Client {
	c, err := domain.NewClient(name, domain.WithClientClock(fixedClock))
	suite.Require().NoError(err)
	return c
}

// --- Test Cases ---

func (suite *ClientServiceTestSuite) TestCreateClient_Success() {
	ctx := context.Background()
	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("*domain.Client")).Return(nil).Once()

	res, err := suite.service.CreateClient(ctx, dto.CreateClientRequest{Name: "Alice"})

	suite.Require().NoError(err)
	suite.Require().NotNil(res)
	suite.NotEmpty(res.ClientID)
	suite.Equal("Alice", res.Name)
	suite.Equal(0, res.AccountCount)
	suite.True(res.NetWorth.IsZero())
	suite.Equal(fixedNow, res.CreatedAt)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestCreateClient_ValidationError() {
	res, err := suite.service.CreateClient(context.Background(), dto.CreateClientRequest{Name: ""})

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrInvalidParameter)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_BlankNameAfterTrim() {
	res, err := suite.service.CreateClient(context.Background(), dto.CreateClientRequest{Name: "   "})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrInvalidParameter)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveClient", mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestCreateClient_SaveError() {
	ctx := context.Background()
	expectedErr := assert.AnError // Simulate a repository error
	suite.mockRepo.On("SaveClient", ctx, mock.AnythingOfType("*domain.Client")).Return(expectedErr).Once()

	res, err := suite.service.CreateClient(ctx, dto.CreateClientRequest{Name: "Alice"})

	suite.Require().Error(err)
	suite.Nil(res)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClient_Success() {
	ctx := context.Background()
	client := suite.newClient("Alice")
	account, err := client.OpenAccount("Checking")
	suite.Require().NoError(err)
	_, err = account.Deposit(decimal.NewFromInt(70))
	suite.Require().NoError(err)
	inv, err := domain.NewInvestment("Fund", decimal.NewFromInt(1000), decimal.RequireFromString("0.05"), 2)
	suite.Require().NoError(err)
	suite.Require().NoError(client.AddInvestment(inv))

	suite.mockRepo.On("ViewClient", ctx, client.ClientID).Return(client, nil).Once()

	res, err := suite.service.GetClient(ctx, client.ClientID)

	suite.Require().NoError(err)
	suite.Equal(client.ClientID, res.ClientID)
	suite.Equal(1, res.AccountCount)
	suite.Equal(1, res.InvestmentCount)
	suite.True(res.TotalBalance.Equal(decimal.NewFromInt(70)))
	suite.True(res.TotalInvestmentValue.Equal(decimal.RequireFromString("1102.5")))
	suite.True(res.NetWorth.Equal(decimal.RequireFromString("1172.5")))
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestGetClient_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ViewClient", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	res, err := suite.service.GetClient(ctx, "missing")

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestNetWorth_EmptyClient() {
	ctx := context.Background()
	client := suite.newClient("Bob")
	suite.mockRepo.On("ViewClient", ctx, client.ClientID).Return(client, nil).Once()

	res, err := suite.service.NetWorth(ctx, client.ClientID)

	suite.Require().NoError(err)
	suite.True(res.NetWorth.IsZero())
	suite.True(res.TotalBalance.IsZero())
	suite.True(res.TotalInvestmentValue.IsZero())
}

func (suite *ClientServiceTestSuite) TestListClients_Paging() {
	ctx := context.Background()
	a, b, c := suite.newClient("A"), suite.newClient("B"), suite.newClient("C")

	suite.mockRepo.On("ViewClients", ctx, 0, 2).Return([]*domain.Client{a, b}, 3, nil).Once()
	first, err := suite.service.ListClients(ctx, dto.ListClientsParams{Limit: 2})
	suite.Require().NoError(err)
	suite.Require().Len(first.Clients, 2)
	suite.Equal("A", first.Clients[0].Name)
	suite.Require().NotNil(first.NextToken)

	suite.mockRepo.On("ViewClients", ctx, 2, 2).Return([]*domain.Client{c}, 3, nil).Once()
	second, err := suite.service.ListClients(ctx, dto.ListClientsParams{Limit: 2, NextToken: first.NextToken})
	suite.Require().NoError(err)
	suite.Require().Len(second.Clients, 1)
	suite.Equal("C", second.Clients[0].Name)
	suite.Nil(second.NextToken)

	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_DefaultLimit() {
	ctx := context.Background()
	suite.mockRepo.On("ViewClients", ctx, 0, 20).Return([]*domain.Client{}, 0, nil).Once()

	res, err := suite.service.ListClients(ctx, dto.ListClientsParams{})

	suite.Require().NoError(err)
	suite.NotNil(res.Clients)
	suite.Empty(res.Clients)
	suite.Nil(res.NextToken)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ClientServiceTestSuite) TestListClients_InvalidToken() {
	bad := "not a token"
	res, err := suite.service.ListClients(context.Background(), dto.ListClientsParams{NextToken: &bad})

	suite.Nil(res)
	suite.ErrorIs(err, apperrors.ErrInvalidParameter)
	suite.mockRepo.AssertNotCalled(suite.T(), "ViewClients", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ClientServiceTestSuite) TestDeleteClient() {
	ctx := context.Background()
	suite.mockRepo.On("DeleteClient", ctx, "c1").Return(nil).Once()
	suite.mockRepo.On("DeleteClient", ctx, "c2").Return(apperrors.ErrNotFound).Once()

	suite.NoError(suite.service.DeleteClient(ctx, "c1"))
	suite.ErrorIs(suite.service.DeleteClient(ctx, "c2"), apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Test Suite ---

func TestClientServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClientServiceTestSuite))
}
