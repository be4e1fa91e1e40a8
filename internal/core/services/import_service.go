package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/reconcile"
	"github.com/SscSPs/tax_ledger_app/internal/utils/textdecode"
)

type importService struct {
	BaseService
	store         ledgerStore
	extractorOpts []bankexchange.ExtractorOption
}

// ImportServiceOption is a functional option for configuring the import service
type ImportServiceOption func(*importService)

// WithExtractorOptions passes options to every extractor the service builds.
func WithExtractorOptions(opts ...bankexchange.ExtractorOption) ImportServiceOption {
	return func(s *importService) {
		s.extractorOpts = append(s.extractorOpts, opts...)
	}
}

// NewImportService creates a new import service.
func NewImportService(repo portsrepo.LedgerRepositoryFacade, authorizer portssvc.ProfileAuthorizerSvc, locks *ProfileLocks, options ...ImportServiceOption) portssvc.ImportSvc {
	svc := &importService{
		BaseService: BaseService{ProfileAuthorizer: authorizer},
		store:       newLedgerStore(repo, locks),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ImportSvc = (*importService)(nil)

// extract decodes raw and pulls the transactions out for profile.
func (s *importService) extract(ctx context.Context, profile *domain.BusinessProfile, raw []byte) (bankexchange.Batch, error) {
	if len(raw) == 0 {
		return bankexchange.Batch{}, fmt.Errorf("%w: uploaded file is empty", apperrors.ErrValidation)
	}
	text, err := textdecode.Decode(raw)
	if err != nil {
		return bankexchange.Batch{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	extractor := bankexchange.NewExtractor(bankexchange.Options{
		OwnINN:                  profile.INN,
		FixedFeeAccountFragment: profile.Regime.TagFragment(),
	}, s.extractorOpts...)

	batch, err := extractor.ExtractAll(text)
	if err != nil {
		s.LogError(ctx, err, "Failed to extract statement", slog.String("profile_id", profile.ProfileID))
		return bankexchange.Batch{}, err
	}

	s.LogInfo(ctx, "Statement extracted",
		slog.String("profile_id", profile.ProfileID),
		slog.Int("documents", batch.Stats.Documents),
		slog.Int("extracted", batch.Stats.Extracted),
		slog.Int("rejected", batch.Stats.Rejected),
		slog.Int("truncated", batch.Stats.Truncated))
	return batch, nil
}

func (s *importService) PreviewImport(ctx context.Context, profileID string, raw []byte, userID string) (*portssvc.ImportPreview, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return nil, err
	}
	batch, err := s.extract(ctx, profile, raw)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.load(ctx, profileID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger", slog.String("profile_id", profileID))
		return nil, err
	}

	return &portssvc.ImportPreview{
		Stats:   batch.Stats,
		Preview: reconcile.NewPreview(existing, batch.Transactions),
	}, nil
}

func (s *importService) CommitImport(ctx context.Context, profileID string, raw []byte, strategy reconcile.Strategy, userID string) (*portssvc.ImportOutcome, *portssvc.ImportPreview, error) {
	profile, err := s.AuthorizeProfile(ctx, userID, profileID)
	if err != nil {
		return nil, nil, err
	}
	batch, err := s.extract(ctx, profile, raw)
	if err != nil {
		return nil, nil, err
	}
	if len(batch.Transactions) == 0 {
		return nil, nil, fmt.Errorf("%w: statement contains no valid transactions", apperrors.ErrValidation)
	}

	var (
		result  reconcile.Result
		preview *portssvc.ImportPreview
	)
	err = s.store.mutate(ctx, profileID, func(current domain.Ledger) (domain.Ledger, error) {
		res, err := reconcile.Reconcile(current, batch.Transactions, strategy)
		if err != nil {
			if errors.Is(err, apperrors.ErrConfirmationRequired) {
				preview = &portssvc.ImportPreview{
					Stats:   batch.Stats,
					Preview: reconcile.NewPreview(current, batch.Transactions),
				}
			}
			return nil, err
		}
		result = res
		return res.Ledger, nil
	})
	if err != nil {
		if preview != nil {
			s.LogInfo(ctx, "Import needs a strategy decision",
				slog.String("profile_id", profileID),
				slog.Int("existing", preview.Preview.ExistingCount),
				slog.Int("duplicates", preview.Preview.Duplicates))
			return nil, preview, err
		}
		s.LogError(ctx, err, "Failed to commit import", slog.String("profile_id", profileID))
		return nil, nil, err
	}

	s.LogInfo(ctx, "Import committed",
		slog.String("profile_id", profileID),
		slog.String("strategy", string(result.Strategy)),
		slog.Int("added", result.Added),
		slog.Int("skipped", result.Skipped),
		slog.Int("total", result.Total))
	return &portssvc.ImportOutcome{Stats: batch.Stats, Result: result}, nil, nil
}
