package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/adapters/memory"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/tax_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/tax_ledger_app/internal/core/services"
	"github.com/SscSPs/tax_ledger_app/internal/dto"
	"github.com/stretchr/testify/require"
)

const (
	ownerID  = "owner-1"
	otherID  = "owner-2"
	ownINN   = "770100000001"
	fragment = "0001"
)

type fixture struct {
	store     *memory.Store
	profiles  portssvc.ProfileSvcFacade
	profileID string
}

// newFixture creates an in-memory store holding one profile owned by ownerID.
func newFixture(t *testing.T, regime dto.RegimeRequest) *fixture {
	t.Helper()
	store := memory.NewStore()
	profiles := services.NewProfileService(store,
		services.WithProfileClock(func() time.Time { return fixedNow }),
	)
	profile, err := profiles.CreateProfile(context.Background(), dto.CreateProfileRequest{
		Name:   "Test business",
		INN:    ownINN,
		Regime: regime,
	}, ownerID)
	require.NoError(t, err)
	return &fixture{store: store, profiles: profiles, profileID: profile.ProfileID}
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func flatRegime() dto.RegimeRequest {
	return dto.RegimeRequest{Primary: string(domain.RegimeFlatRevenue)}
}
