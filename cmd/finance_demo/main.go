package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/patrimony/internal/adapters/memory"
	"github.com/SscSPs/patrimony/internal/apperrors"
	portsrepo "github.com/SscSPs/patrimony/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/patrimony/internal/core/ports/services"
	"github.com/SscSPs/patrimony/internal/core/services"
	"github.com/SscSPs/patrimony/internal/dto"
	"github.com/SscSPs/patrimony/internal/logging"
	"github.com/SscSPs/patrimony/internal/utils"
	"github.com/SscSPs/patrimony/pkg/config"
	"github.com/shopspring/decimal"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Logs go to stderr so stdout carries only the report.
	logger := logging.NewLogger(os.Stderr, cfg.LogLevel, cfg.IsProduction)
	slog.SetDefault(logger)

	ctx := logging.WithOperation(logging.WithLogger(context.Background(), logger), "finance_demo")

	repos := portsrepo.RepositoryProvider{ClientRepo: memory.NewClientRepository()}
	container := services.NewServiceContainer(repos, nil)

	if err := run(ctx, container, cfg); err != nil {
		logger.Error("Demo failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, svc *portssvc.ServiceContainer, cfg *config.Config) error {
	money := func(d decimal.Decimal) string { return utils.FormatWithPrecision(d, cfg.DisplayPrecision) }

	client, err := svc.Client.CreateClient(ctx, dto.CreateClientRequest{Name: cfg.ClientName})
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	account, err := svc.Account.OpenAccount(ctx, dto.OpenAccountRequest{ClientID: client.ClientID, Name: "Checking"})
	if err != nil {
		return fmt.Errorf("open account: %w", err)
	}

	post := func(deposit bool, amount int64, category, description string) error {
		req := dto.PostTransactionRequest{
			ClientID:    client.ClientID,
			AccountID:   account.AccountID,
			Amount:      decimal.NewFromInt(amount),
			Category:    category,
			Description: description,
		}
		var err error
		if deposit {
			_, err = svc.Account.Deposit(ctx, req)
		} else {
			_, err = svc.Account.Withdraw(ctx, req)
		}
		return err
	}

	if err := post(true, 100, "salary", "Monthly salary"); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if err := post(false, 30, "groceries", "Supermarket"); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	err = post(false, 1000, "travel", "Holiday")
	switch {
	case errors.Is(err, apperrors.ErrInsufficientFunds):
		fmt.Printf("Withdrawal of %s refused: insufficient funds\n", money(decimal.NewFromInt(1000)))
	case err != nil:
		return fmt.Errorf("withdraw: %w", err)
	default:
		return errors.New("overdraft was accepted")
	}

	balance, err := svc.Account.GetBalance(ctx, client.ClientID, account.AccountID)
	if err != nil {
		return fmt.Errorf("balance: %w", err)
	}
	fmt.Printf("Balance of %s: %s\n", account.Name, money(balance.Balance))

	history, err := svc.Account.ListTransactions(ctx, dto.ListTransactionsRequest{ClientID: client.ClientID, AccountID: account.AccountID})
	if err != nil {
		return fmt.Errorf("list transactions: %w", err)
	}
	fmt.Println("Transactions:")
	for _, t := range history.Transactions {
		fmt.Printf("  %-10s %10s  %-10s %s\n", t.Kind, money(t.SignedAmount), t.Category, t.Description)
	}

	inv, err := svc.Investment.AddInvestment(ctx, dto.AddInvestmentRequest{
		ClientID: client.ClientID,
		ProjectInvestmentRequest: dto.ProjectInvestmentRequest{
			Type:      "Fund",
			Principal: decimal.NewFromInt(1000),
			Rate:      decimal.RequireFromString("0.05"),
			Periods:   2,
		},
	})
	if err != nil {
		return fmt.Errorf("add investment: %w", err)
	}
	fmt.Printf("Investment %s: future value %s (%s%%)\n", inv.Type, money(inv.FutureValue), money(inv.ReturnPercentage))

	worth, err := svc.Client.NetWorth(ctx, client.ClientID)
	if err != nil {
		return fmt.Errorf("net worth: %w", err)
	}
	fmt.Printf("Net worth of %s: %s\n", client.Name, money(worth.NetWorth))

	sale, err := svc.Investment.SellInvestment(ctx, dto.SellInvestmentRequest{
		ClientID:     client.ClientID,
		InvestmentID: inv.InvestmentID,
		AccountID:    account.AccountID,
	})
	if err != nil {
		return fmt.Errorf("sell investment: %w", err)
	}
	fmt.Printf("Sold %s, %s balance is now %s\n", inv.Type, sale.Account.Name, money(sale.Account.Balance))
	return nil
}
