package mapping

import (
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/SscSPs/tax_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction at the given ledger
// position to a model Transaction
func ToModelTransaction(profileID string, position int, d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID: d.TransactionID,
		ProfileID:     profileID,
		Position:      position,
		TxnDate:       d.Date,
		Amount:        d.Amount,
		Direction:     string(d.Direction),
		Category:      d.Category,
		Note:          d.Note,
		AccountNumber: nullableString(d.AccountNumber),
		RegimeTag:     nullableString(string(d.RegimeTag)),
		Source:        string(d.Source),
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
// The stored date is normalized back to noon UTC.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID: m.TransactionID,
		Date:          domain.NormalizeDate(m.TxnDate),
		Amount:        m.Amount,
		Direction:     domain.Direction(m.Direction),
		Category:      m.Category,
		Note:          m.Note,
		AccountNumber: stringValue(m.AccountNumber),
		RegimeTag:     domain.RegimeTag(stringValue(m.RegimeTag)),
		Source:        domain.Source(m.Source),
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainLedger converts model Transactions, already in ledger order, to a domain Ledger
func ToDomainLedger(ms []models.Transaction) domain.Ledger {
	ds := make(domain.Ledger, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTransaction(m)
	}
	return ds
}
