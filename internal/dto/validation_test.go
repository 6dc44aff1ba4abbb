package dto_test

import (
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/core/domain"
	"github.com/SscSPs/patrimony/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     any
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid client",
			req:  dto.CreateClientRequest{Name: "Alice"},
		},
		{
			name:    "missing client name",
			req:     dto.CreateClientRequest{},
			wantErr: true,
			errMsg:  "Name failed 'required'",
		},
		{
			name:    "client name too long",
			req:     dto.CreateClientRequest{Name: strings.Repeat("x", 201)},
			wantErr: true,
			errMsg:  "max=200",
		},
		{
			name: "valid deposit",
			req:  dto.PostTransactionRequest{ClientID: "c", AccountID: "a", Amount: decimal.RequireFromString("0.01")},
		},
		{
			name: "amount smaller than any float64 is still positive",
			req:  dto.PostTransactionRequest{ClientID: "c", AccountID: "a", Amount: decimal.RequireFromString("1e-400")},
		},
		{
			name:    "rate a hair below total loss",
			req:     dto.ProjectInvestmentRequest{Principal: decimal.NewFromInt(1), Rate: decimal.RequireFromString("-1.00000000000000000001")},
			wantErr: true,
			errMsg:  "Rate failed 'decimal_gte=-1'",
		},
		{
			name:    "zero amount",
			req:     dto.PostTransactionRequest{ClientID: "c", AccountID: "a", Amount: decimal.Zero},
			wantErr: true,
			errMsg:  "Amount failed 'decimal_gt=0'",
		},
		{
			name:    "negative amount and missing account",
			req:     dto.PostTransactionRequest{ClientID: "c", Amount: decimal.NewFromInt(-1)},
			wantErr: true,
			errMsg:  "AccountID failed 'required'",
		},
		{
			name: "valid investment",
			req: dto.AddInvestmentRequest{ClientID: "c", ProjectInvestmentRequest: dto.ProjectInvestmentRequest{
				Type: "Fund", Principal: decimal.NewFromInt(1000), Rate: decimal.RequireFromString("0.05"), Periods: 2,
			}},
		},
		{
			name: "total loss rate is accepted",
			req: dto.ProjectInvestmentRequest{
				Principal: decimal.Zero, Rate: decimal.NewFromInt(-1), Periods: 0,
			},
		},
		{
			name: "rate below total loss",
			req: dto.AddInvestmentRequest{ClientID: "c", ProjectInvestmentRequest: dto.ProjectInvestmentRequest{
				Principal: decimal.NewFromInt(1), Rate: decimal.RequireFromString("-1.5"), Periods: 1,
			}},
			wantErr: true,
			errMsg:  "Rate failed 'decimal_gte=-1'",
		},
		{
			name: "negative principal and periods",
			req: dto.ProjectInvestmentRequest{
				Principal: decimal.NewFromInt(-5), Periods: -1,
			},
			wantErr: true,
			errMsg:  "Principal failed 'decimal_gte=0'; Periods failed 'gte=0'",
		},
		{
			name:    "limit too large",
			req:     dto.ListTransactionsRequest{ClientID: "c", AccountID: "a", Limit: 501},
			wantErr: true,
			errMsg:  "Limit failed 'lte=500'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := dto.Validate(tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, apperrors.ErrInvalidParameter)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPostTransactionRequest_Options(t *testing.T) {
	ts := time.Date(2024, 2, 29, 8, 0, 0, 0, time.UTC)
	req := dto.PostTransactionRequest{Category: "salary", Description: "Pay", Timestamp: &ts}

	account, err := domain.NewAccount("Checking")
	require.NoError(t, err)
	txn, err := account.Deposit(decimal.NewFromInt(10), req.Options()...)
	require.NoError(t, err)

	assert.Equal(t, "salary", txn.Category)
	assert.Equal(t, "Pay", txn.Description)
	assert.Equal(t, ts, txn.Timestamp)
	assert.Empty(t, dto.PostTransactionRequest{}.Options())
}

func TestToInvestmentResponse(t *testing.T) {
	inv, err := domain.NewInvestment("Fund", decimal.NewFromInt(1000), decimal.RequireFromString("0.05"), 2)
	require.NoError(t, err)

	res := dto.ToInvestmentResponse(inv)
	assert.Equal(t, inv.InvestmentID, res.InvestmentID)
	assert.True(t, res.FutureValue.Equal(decimal.RequireFromString("1102.5")))
	assert.True(t, res.Gain.Equal(decimal.RequireFromString("102.5")))
	assert.Equal(t, 2, res.Periods)
}
