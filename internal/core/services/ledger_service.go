package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/SscSPs/tax_ledger_app/internal/utils/pagination"
	"github.com/google/uuid"
)

type ledgerService struct {
	BaseService
	store ledgerStore
	newID func() string
}

// LedgerServiceOption is a functional option for configuring the ledger service
type LedgerServiceOption func(*ledgerService)

// WithLedgerClock overrides the clock used for audit fields.
func WithLedgerClock(now func() time.Time) LedgerServiceOption {
	return func(s *ledgerService) {
		s.Now = now
	}
}

// WithTransactionIDGenerator overrides the transaction ID generator.
func WithTransactionIDGenerator(gen func() string) LedgerServiceOption {
	return func(s *ledgerService) {
		s.newID = gen
	}
}

// NewLedgerService creates a new ledger service. locks may be shared with the
// import service; nil gets a private table.
func NewLedgerService(repo portsrepo.LedgerRepositoryFacade, authorizer portssvc.ProfileAuthorizerSvc, locks *ProfileLocks, options ...LedgerServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		BaseService: BaseService{ProfileAuthorizer: authorizer},
		store:       newLedgerStore(repo, locks),
		newID:       uuid.NewString,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, s)
	}
	return domain.NormalizeDate(t), nil
}

func validationError(err error) error {
	return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
}

func (s *ledgerService) ListTransactions(ctx context.Context, profileID string, params dto.ListTransactionsParams, userID string) (*portssvc.LedgerPage, error) {
	if _, err := s.AuthorizeProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}

	ledger, err := s.store.load(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("profile_id", profileID))
		return nil, err
	}

	var from, to time.Time
	if params.From != "" {
		if from, err = parseDate(params.From); err != nil {
			return nil, err
		}
	}
	if params.To != "" {
		if to, err = parseDate(params.To); err != nil {
			return nil, err
		}
	}

	filtered := make(domain.Ledger, 0, len(ledger))
	for _, t := range ledger {
		if !from.IsZero() && t.Date.Before(from) {
			continue
		}
		if !to.IsZero() && t.Date.After(to) {
			continue
		}
		if params.Direction != "" && string(t.Direction) != params.Direction {
			continue
		}
		filtered = append(filtered, t)
	}

	start := 0
	if params.NextToken != "" {
		cursorDate, cursorID, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, validationError(err)
		}
		if idx := filtered.Find(cursorID); idx >= 0 {
			start = idx + 1
		} else {
			// The cursor entry is gone; resume at the first older entry.
			start = len(filtered)
			for i, t := range filtered {
				if t.Date.Before(cursorDate) {
					start = i
					break
				}
			}
		}
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	end := min(start+limit, len(filtered))

	page := &portssvc.LedgerPage{Transactions: filtered[start:end]}
	if end < len(filtered) {
		last := filtered[end-1]
		page.NextToken = pagination.EncodeCursor(last.Date, last.TransactionID)
	}
	return page, nil
}

func (s *ledgerService) AddTransaction(ctx context.Context, profileID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	if req.FixedFee && !profile.Regime.FixedFeeAddon {
		return nil, fmt.Errorf("%w: fixed-fee tag requires the fixed-fee add-on", apperrors.ErrValidation)
	}

	direction := domain.Direction(req.Direction)
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = bankexchange.InferCategory(req.Note, direction)
	}

	now := s.CurrentTime()
	txn := domain.Transaction{
		TransactionID: s.newID(),
		Date:          date,
		Amount:        req.Amount,
		Direction:     direction,
		Category:      category,
		Note:          strings.TrimSpace(req.Note),
		AccountNumber: strings.TrimSpace(req.AccountNumber),
		Source:        domain.SourceManual,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if req.FixedFee {
		txn.RegimeTag = domain.FixedFeeTag
	}
	if err := txn.Validate(); err != nil {
		return nil, validationError(err)
	}

	err = s.store.mutate(ctx, profileID, func(current domain.Ledger) (domain.Ledger, error) {
		return current.Add(txn), nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add transaction", slog.String("profile_id", profileID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("profile_id", profileID),
		slog.String("transaction_id", txn.TransactionID),
		slog.String("direction", string(txn.Direction)))
	return &txn, nil
}

func (s *ledgerService) UpdateTransaction(ctx context.Context, profileID, transactionID string, req dto.UpdateTransactionRequest, userID string) (*domain.Transaction, error) {
	if _, err := s.AuthorizeProfile(ctx, userID, profileID); err != nil {
		return nil, err
	}

	var updated domain.Transaction
	err := s.store.mutate(ctx, profileID, func(current domain.Ledger) (domain.Ledger, error) {
		idx := current.Find(transactionID)
		if idx < 0 {
			return nil, apperrors.ErrNotFound
		}
		txn := current[idx]

		if req.Date != nil {
			date, err := parseDate(*req.Date)
			if err != nil {
				return nil, err
			}
			txn.Date = date
		}
		if req.Amount != nil {
			txn.Amount = *req.Amount
		}
		if req.Direction != nil {
			txn.Direction = domain.Direction(*req.Direction)
		}
		if req.Category != nil {
			txn.Category = strings.TrimSpace(*req.Category)
		}
		if req.Note != nil {
			txn.Note = strings.TrimSpace(*req.Note)
		}
		if req.AccountNumber != nil {
			txn.AccountNumber = strings.TrimSpace(*req.AccountNumber)
		}
		txn.LastUpdatedAt = s.CurrentTime()

		if err := txn.Validate(); err != nil {
			return nil, validationError(err)
		}

		next, _ := current.Update(txn)
		updated = txn
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update transaction",
			slog.String("profile_id", profileID),
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated",
		slog.String("profile_id", profileID),
		slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *ledgerService) DeleteTransaction(ctx context.Context, profileID, transactionID string, userID string) error {
	if _, err := s.AuthorizeProfile(ctx, userID, profileID); err != nil {
		return err
	}

	err := s.store.mutate(ctx, profileID, func(current domain.Ledger) (domain.Ledger, error) {
		next, ok := current.Delete(transactionID)
		if !ok {
			return nil, apperrors.ErrNotFound
		}
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete transaction",
			slog.String("profile_id", profileID),
			slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted",
		slog.String("profile_id", profileID),
		slog.String("transaction_id", transactionID))
	return nil
}

func (s *ledgerService) ToggleRegimeTag(ctx context.Context, profileID, transactionID string, userID string) (*domain.Transaction, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}

	var toggled *domain.Transaction
	err = s.store.mutate(ctx, profileID, func(current domain.Ledger) (domain.Ledger, error) {
		idx := current.Find(transactionID)
		if idx < 0 {
			return nil, apperrors.ErrNotFound
		}
		if !current[idx].IsFixedFee() && !profile.Regime.FixedFeeAddon {
			return nil, fmt.Errorf("%w: fixed-fee tag requires the fixed-fee add-on", apperrors.ErrValidation)
		}
		next, txn, _ := current.ToggleRegimeTag(transactionID, s.CurrentTime())
		toggled = txn
		return next, nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to toggle regime tag",
			slog.String("profile_id", profileID),
			slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Regime tag toggled",
		slog.String("profile_id", profileID),
		slog.String("transaction_id", transactionID),
		slog.String("regime_tag", string(toggled.RegimeTag)))
	return toggled, nil
}
