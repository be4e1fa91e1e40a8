package pgsql

import (
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProfileRepo: newPgxProfileRepository(dbPool),
		LedgerRepo:  newPgxLedgerRepository(dbPool),
	}
}
