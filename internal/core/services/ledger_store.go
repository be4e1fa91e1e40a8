package services

import (
	"context"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
)

// ledgerStore runs every ledger mutation as one load, mutate and save step
// under the profile lock.
type ledgerStore struct {
	repo  portsrepo.LedgerRepositoryFacade
	locks *ProfileLocks
}

func newLedgerStore(repo portsrepo.LedgerRepositoryFacade, locks *ProfileLocks) ledgerStore {
	if locks == nil {
		locks = NewProfileLocks()
	}
	return ledgerStore{repo: repo, locks: locks}
}

func (l ledgerStore) load(ctx context.Context, profileID string) (domain.Ledger, error) {
	return l.repo.LoadLedger(ctx, profileID)
}

// mutate saves the ledger fn returns. Nothing is saved when fn fails.
func (l ledgerStore) mutate(ctx context.Context, profileID string, fn func(current domain.Ledger) (domain.Ledger, error)) error {
	unlock := l.locks.Lock(profileID)
	defer unlock()

	current, err := l.repo.LoadLedger(ctx, profileID)
	if err != nil {
		return err
	}
	next, err := fn(current)
	if err != nil {
		return err
	}
	return l.repo.SaveLedger(ctx, profileID, next)
}
