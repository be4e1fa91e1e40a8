package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionMapping_NullableColumns(t *testing.T) {
	d := domain.Transaction{
		TransactionID: "t1",
		Date:          time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
		Amount:        decimal.NewFromInt(100),
		Direction:     domain.Income,
		Category:      domain.CategorySales,
		Source:        domain.SourceManual,
	}

	m := ToModelTransaction("p1", 3, d)
	assert.Nil(t, m.AccountNumber)
	assert.Nil(t, m.RegimeTag)
	assert.Equal(t, 3, m.Position)
	assert.Equal(t, "p1", m.ProfileID)

	d.RegimeTag = domain.FixedFeeTag
	d.AccountNumber = "40802810000000000001"
	m = ToModelTransaction("p1", 0, d)
	if assert.NotNil(t, m.RegimeTag) {
		assert.Equal(t, "FIXED_FEE", *m.RegimeTag)
	}
}

func TestToDomainTransaction_NormalizesDate(t *testing.T) {
	m := ToModelTransaction("p1", 0, domain.Transaction{TransactionID: "t1", Direction: domain.Expense})
	m.TxnDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	d := ToDomainTransaction(m)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), d.Date)
	assert.Equal(t, domain.NoRegimeTag, d.RegimeTag)
	assert.Empty(t, d.AccountNumber)
}

func TestProfileMapping(t *testing.T) {
	d := domain.BusinessProfile{
		ProfileID: "p1",
		OwnerID:   "u1",
		Name:      "Coffee stand",
		Regime: domain.RegimeConfig{
			Primary:       domain.RegimeFlatRevenue,
			FixedFeeAddon: true,
			FixedFeeCost:  decimal.NewFromInt(60000),
		},
	}

	m := ToModelProfile(d)
	assert.Nil(t, m.FixedFeeAccountFragment)
	assert.Equal(t, "FLAT_REVENUE", m.PrimaryRegime)
	assert.Equal(t, d, ToDomainProfile(m))
}
