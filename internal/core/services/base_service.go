package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/middleware"
)

// BaseService provides common functionality for all services
type BaseService struct {
	ProfileAuthorizer portssvc.ProfileAuthorizerSvc
	Now               func() time.Time
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	return middleware.GetLoggerFromCtx(ctx)
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
	s.GetLogger(ctx).Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	s.GetLogger(ctx).Debug(msg, keyvals...)
}

// CurrentTime returns the service clock reading, UTC.
func (s *BaseService) CurrentTime() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// AuthorizeProfile resolves profileID on behalf of userID.
func (s *BaseService) AuthorizeProfile(ctx context.Context, userID, profileID string) (*domain.BusinessProfile, error) {
	if s.ProfileAuthorizer == nil {
		return nil, fmt.Errorf("no profile authorizer configured")
	}
	profile, err := s.ProfileAuthorizer.AuthorizeProfileAccess(ctx, userID, profileID)
	if err != nil {
		s.LogDebug(ctx, "Profile access denied",
			slog.String("user_id", userID),
			slog.String("profile_id", profileID),
			slog.String("reason", err.Error()))
		return nil, err
	}
	return profile, nil
}
