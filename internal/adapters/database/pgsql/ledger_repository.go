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
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for profile ledgers.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// LoadLedger returns the stored ledger in its saved order.
func (r *PgxLedgerRepository) LoadLedger(ctx context.Context, profileID string) (domain.Ledger, error) {
	query := `
		SELECT transaction_id, profile_id, position, txn_date, amount, direction, category, note,
			account_number, regime_tag, source, created_at, last_updated_at
		FROM ledger_transactions
		WHERE profile_id = $1
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger of profile %s: %w", profileID, err)
	}
	defer rows.Close()

	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var t models.Transaction
		err := row.Scan(
			&t.TransactionID,
			&t.ProfileID,
			&t.Position,
			&t.TxnDate,
			&t.Amount,
			&t.Direction,
			&t.Category,
			&t.Note,
			&t.AccountNumber,
			&t.RegimeTag,
			&t.Source,
			&t.CreatedAt,
			&t.LastUpdatedAt,
		)
		return t, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger of profile %s: %w", profileID, err)
	}
	return mapping.ToDomainLedger(ms), nil
}

// SaveLedger replaces the stored ledger inside one database transaction. The
// profile row is locked for the duration so concurrent saves serialize.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, profileID string, ledger domain.Ledger) error {
	return r.WithTx(ctx, func(tx pgx.Tx) error {
		var locked string
		err := tx.QueryRow(ctx, `SELECT profile_id FROM business_profiles WHERE profile_id = $1 FOR UPDATE;`, profileID).Scan(&locked)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to lock profile %s: %w", profileID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM ledger_transactions WHERE profile_id = $1;`, profileID); err != nil {
			return fmt.Errorf("failed to clear ledger of profile %s: %w", profileID, err)
		}
		if len(ledger) == 0 {
			return nil
		}

		insert := `
			INSERT INTO ledger_transactions (transaction_id, profile_id, position, txn_date, amount, direction,
				category, note, account_number, regime_tag, source, created_at, last_updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
		`
		batch := &pgx.Batch{}
		for i, txn := range ledger {
			m := mapping.ToModelTransaction(profileID, i, txn)
			batch.Queue(insert,
				m.TransactionID,
				m.ProfileID,
				m.Position,
				m.TxnDate,
				m.Amount,
				m.Direction,
				m.Category,
				m.Note,
				m.AccountNumber,
				m.RegimeTag,
				m.Source,
				m.CreatedAt,
				m.LastUpdatedAt,
			)
		}

		results := tx.SendBatch(ctx, batch)
		for i := range ledger {
			if _, err := results.Exec(); err != nil {
				_ = results.Close()
				return fmt.Errorf("failed to insert transaction %s: %w", ledger[i].TransactionID, err)
			}
		}
		if err := results.Close(); err != nil {
			return fmt.Errorf("failed to finish ledger batch: %w", err)
		}
		return nil
	})
}
