package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/patrimony/internal/apperrors"
	"github.com/SscSPs/patrimony/internal/core/domain"
	"github.com/SscSPs/patrimony/internal/logging"
	"github.com/SscSPs/patrimony/internal/utils/pagination"
)

const (
	defaultPageSize = 20
	clientListScope = "clients"
)

// BaseService provides common functionality for all services
type BaseService struct{}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx)
}

// LogError logs an error with consistent formatting
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+1)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	logger.Error(msg, args...)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// LogFailure logs business rule rejections (not found, insufficient funds,
// invalid input, duplicates) at debug and anything else as an error.
func (s *BaseService) LogFailure(ctx context.Context, err error, msg string, keyvals ...any) {
	if isExpected(err) {
		args := make([]any, 0, len(keyvals)+1)
		args = append(args, slog.String("error", err.Error()))
		args = append(args, keyvals...)
		s.LogDebug(ctx, msg, args...)
		return
	}
	s.LogError(ctx, err, msg, keyvals...)
}

func isExpected(err error) bool {
	return errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrInsufficientFunds) ||
		errors.Is(err, apperrors.ErrInvalidParameter) ||
		errors.Is(err, apperrors.ErrDuplicateIdentifier)
}

// findAccount looks up an account owned by c.
func findAccount(c *domain.Client, accountID string) (*domain.Account, error) {
	account, ok := c.Account(accountID)
	if !ok {
		return nil, fmt.Errorf("account %s of client %s: %w", accountID, c.ClientID, apperrors.ErrNotFound)
	}
	return account, nil
}

// pageParams resolves a limit and an optional next token into an offset and page size.
func pageParams(limit int, nextToken *string, scope string) (offset int, size int, err error) {
	size = limit
	if size <= 0 {
		size = defaultPageSize
	}
	if nextToken == nil || *nextToken == "" {
		return 0, size, nil
	}
	offset, err = pagination.DecodeOffsetToken(*nextToken, scope)
	if err != nil {
		return 0, 0, fmt.Errorf("%v: %w", err, apperrors.ErrInvalidParameter)
	}
	return offset, size, nil
}

// nextPageToken returns the token for the page after end, or nil on the last page.
func nextPageToken(next int, scope string) *string {
	if next < 0 {
		return nil
	}
	token := pagination.EncodeOffsetToken(scope, next)
	return &token
}
