package domain

import (
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleCategory is the category of the deposit recorded when an investment is sold.
const SaleCategory = "investment-sale"

// Client owns a set of accounts and a set of investments and aggregates them.
// Owned entities point back to the client only through their ClientID.
type Client struct {
	ClientID string `json:"clientID"` // Primary Key (e.g., UUID)
	Name     string `json:"name"`
	AuditFields

	accounts    []*Account
	investments []*Investment
	clock       Clock
}

// ClientOption is a functional option for configuring a new client.
type ClientOption func(*Client)

// WithClientID sets an explicit identifier instead of a generated UUID.
func WithClientID(id string) ClientOption {
	return func(c *Client) {
		c.ClientID = id
	}
}

// WithClientClock sets the clock handed to accounts opened through OpenAccount.
func WithClientClock(clock Clock) ClientOption {
	return func(c *Client) {
		c.clock = clock
	}
}

// NewClient creates a client with no accounts and no investments.
func NewClient(name string, options ...ClientOption) (*Client, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("client name is required: %w", apperrors.ErrInvalidParameter)
	}

	c := &Client{
		ClientID: uuid.NewString(),
		Name:     name,
		clock:    time.Now,
	}
	for _, option := range options {
		option(c)
	}
	if strings.TrimSpace(c.ClientID) == "" {
		return nil, fmt.Errorf("client identifier is required: %w", apperrors.ErrInvalidParameter)
	}
	c.AuditFields = newAuditFields(c.clock())
	return c, nil
}

// AddAccount transfers ownership of account to the client.
func (c *Client) AddAccount(account *Account) error {
	if account == nil {
		return fmt.Errorf("account is required: %w", apperrors.ErrInvalidParameter)
	}
	if account.ClientID != "" && account.ClientID != c.ClientID {
		return fmt.Errorf("account %s is owned by client %s: %w", account.AccountID, account.ClientID, apperrors.ErrInvalidParameter)
	}
	if _, ok := c.Account(account.AccountID); ok {
		return fmt.Errorf("account %s already belongs to client %s: %w", account.AccountID, c.ClientID, apperrors.ErrDuplicateIdentifier)
	}

	account.ClientID = c.ClientID
	c.accounts = append(c.accounts, account)
	c.touch(c.clock())
	return nil
}

// OpenAccount creates a new account with the client's clock and adds it.
func (c *Client) OpenAccount(name string, options ...AccountOption) (*Account, error) {
	options = append([]AccountOption{WithAccountClock(c.clock)}, options...)
	account, err := NewAccount(name, options...)
	if err != nil {
		return nil, err
	}
	if err := c.AddAccount(account); err != nil {
		return nil, err
	}
	return account, nil
}

// AddInvestment transfers ownership of investment to the client.
func (c *Client) AddInvestment(investment *Investment) error {
	if investment == nil {
		return fmt.Errorf("investment is required: %w", apperrors.ErrInvalidParameter)
	}
	if investment.ClientID != "" && investment.ClientID != c.ClientID {
		return fmt.Errorf("investment %s is owned by client %s: %w", investment.InvestmentID, investment.ClientID, apperrors.ErrInvalidParameter)
	}
	if _, ok := c.Investment(investment.InvestmentID); ok {
		return fmt.Errorf("investment %s already belongs to client %s: %w", investment.InvestmentID, c.ClientID, apperrors.ErrDuplicateIdentifier)
	}

	investment.ClientID = c.ClientID
	c.investments = append(c.investments, investment)
	c.touch(c.clock())
	return nil
}

// Account looks up an owned account by identifier.
func (c *Client) Account(accountID string) (*Account, bool) {
	i := slices.IndexFunc(c.accounts, func(a *Account) bool { return a.AccountID == accountID })
	if i < 0 {
		return nil, false
	}
	return c.accounts[i], true
}

// Investment looks up an owned investment by identifier.
func (c *Client) Investment(investmentID string) (*Investment, bool) {
	i := slices.IndexFunc(c.investments, func(inv *Investment) bool { return inv.InvestmentID == investmentID })
	if i < 0 {
		return nil, false
	}
	return c.investments[i], true
}

// Accounts yields owned accounts in the order they were added.
func (c *Client) Accounts() iter.Seq[*Account] {
	return slices.Values(c.accounts)
}

// Investments yields owned investments in the order they were added.
func (c *Client) Investments() iter.Seq[*Investment] {
	return slices.Values(c.investments)
}

func (c *Client) AccountCount() int    { return len(c.accounts) }
func (c *Client) InvestmentCount() int { return len(c.investments) }

// TotalBalance sums the balances of all owned accounts.
func (c *Client) TotalBalance() decimal.Decimal {
	balances := make([]decimal.Decimal, len(c.accounts))
	for i, a := range c.accounts {
		balances[i] = a.Balance()
	}
	return accounting.SumAmounts(balances...)
}

// TotalInvestmentValue sums the future values of all owned investments.
func (c *Client) TotalInvestmentValue() decimal.Decimal {
	values := make([]decimal.Decimal, len(c.investments))
	for i, inv := range c.investments {
		values[i] = inv.FutureValue()
	}
	return accounting.SumAmounts(values...)
}

// NetWorth is TotalBalance plus TotalInvestmentValue.
func (c *Client) NetWorth() decimal.Decimal {
	return c.TotalBalance().Add(c.TotalInvestmentValue())
}

// SellInvestment liquidates an owned investment at its future value into one
// of the client's accounts and releases the investment.
// The returned transaction is the zero value when nothing was credited.
func (c *Client) SellInvestment(investmentID, accountID string, options ...TransactionOption) (Transaction, error) {
	idx := slices.IndexFunc(c.investments, func(inv *Investment) bool { return inv.InvestmentID == investmentID })
	if idx < 0 {
		return Transaction{}, fmt.Errorf("investment %s of client %s: %w", investmentID, c.ClientID, apperrors.ErrNotFound)
	}
	account, ok := c.Account(accountID)
	if !ok {
		return Transaction{}, fmt.Errorf("account %s of client %s: %w", accountID, c.ClientID, apperrors.ErrNotFound)
	}

	investment := c.investments[idx]
	var txn Transaction
	if value := investment.FutureValue(); value.IsPositive() {
		label := investment.Type
		if label == "" {
			label = investment.InvestmentID
		}
		options = append([]TransactionOption{
			WithCategory(SaleCategory),
			WithDescription("Sale of " + label),
		}, options...)

		var err error
		txn, err = account.Deposit(value, options...)
		if err != nil {
			return Transaction{}, fmt.Errorf("failed to credit sale of investment %s: %w", investmentID, err)
		}
	}

	c.investments = slices.Delete(c.investments, idx, idx+1)
	investment.ClientID = ""
	c.touch(c.clock())
	return txn, nil
}
