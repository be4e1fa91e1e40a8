package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/tax_ledger_app/internal/models"
	"github.com/SscSPs/tax_ledger_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const profileColumns = `profile_id, owner_id, name, inn, primary_regime, fixed_fee_addon, has_employees,
	fixed_fee_account_fragment, fixed_fee_cost, created_at, last_updated_at`

type PgxProfileRepository struct {
	BaseRepository
}

// newPgxProfileRepository creates a new repository for business profiles.
func newPgxProfileRepository(pool *pgxpool.Pool) portsrepo.ProfileRepositoryFacade {
	return &PgxProfileRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ProfileRepositoryFacade = (*PgxProfileRepository)(nil)

func scanProfile(row pgx.Row) (models.Profile, error) {
	var p models.Profile
	err := row.Scan(
		&p.ProfileID,
		&p.OwnerID,
		&p.Name,
		&p.INN,
		&p.PrimaryRegime,
		&p.FixedFeeAddon,
		&p.HasEmployees,
		&p.FixedFeeAccountFragment,
		&p.FixedFeeCost,
		&p.CreatedAt,
		&p.LastUpdatedAt,
	)
	return p, err
}

// SaveProfile inserts a new profile.
func (r *PgxProfileRepository) SaveProfile(ctx context.Context, profile domain.BusinessProfile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		INSERT INTO business_profiles (` + profileColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ProfileID,
		m.OwnerID,
		m.Name,
		m.INN,
		m.PrimaryRegime,
		m.FixedFeeAddon,
		m.HasEmployees,
		m.FixedFeeAccountFragment,
		m.FixedFeeCost,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: profile %s already exists", apperrors.ErrDuplicate, m.ProfileID)
		}
		return fmt.Errorf("failed to save profile %s: %w", m.ProfileID, err)
	}
	return nil
}

// UpdateProfile overwrites the mutable columns of a profile.
func (r *PgxProfileRepository) UpdateProfile(ctx context.Context, profile domain.BusinessProfile) error {
	m := mapping.ToModelProfile(profile)
	query := `
		UPDATE business_profiles SET
			name = $2,
			inn = $3,
			primary_regime = $4,
			fixed_fee_addon = $5,
			has_employees = $6,
			fixed_fee_account_fragment = $7,
			fixed_fee_cost = $8,
			last_updated_at = $9
		WHERE profile_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.ProfileID,
		m.Name,
		m.INN,
		m.PrimaryRegime,
		m.FixedFeeAddon,
		m.HasEmployees,
		m.FixedFeeAccountFragment,
		m.FixedFeeCost,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update profile %s: %w", m.ProfileID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindProfileByID retrieves a profile by ID.
func (r *PgxProfileRepository) FindProfileByID(ctx context.Context, profileID string) (*domain.BusinessProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM business_profiles WHERE profile_id = $1;`

	m, err := scanProfile(r.Pool.QueryRow(ctx, query, profileID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find profile %s: %w", profileID, err)
	}

	profile := mapping.ToDomainProfile(m)
	return &profile, nil
}

// ListProfilesByOwner retrieves the profiles of one owner, oldest first.
func (r *PgxProfileRepository) ListProfilesByOwner(ctx context.Context, ownerID string) ([]domain.BusinessProfile, error) {
	query := `SELECT ` + profileColumns + ` FROM business_profiles WHERE owner_id = $1 ORDER BY created_at, profile_id;`

	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query profiles: %w", err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Profile, error) {
		return scanProfile(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan profiles: %w", err)
	}
	return mapping.ToDomainProfileSlice(ms), nil
}
