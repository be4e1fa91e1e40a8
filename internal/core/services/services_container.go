package services

import (
	portsrepo "github.com/SscSPs/tax_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Profile service first since the others authorize through it
	container.Profile = NewProfileService(repos.ProfileRepo)

	// Ledger edits and imports share one lock table
	locks := NewProfileLocks()
	container.Ledger = NewLedgerService(repos.LedgerRepo, container.Profile, locks)
	container.Import = NewImportService(repos.LedgerRepo, container.Profile, locks)

	container.Tax = NewTaxService(repos.LedgerRepo, container.Profile,
		WithFixedContributions(cfg.FixedContributions),
		WithSafeLoadThreshold(cfg.SafeLoadThreshold),
	)

	return container
}
