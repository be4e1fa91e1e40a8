package bankexchange_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/bankexchange"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("txn-%d", n)
	}
}

func newExtractor(opts bankexchange.Options) *bankexchange.Extractor {
	fixed := time.Date(2024, 4, 1, 9, 0, 0, 0, time.UTC)
	return bankexchange.NewExtractor(opts,
		bankexchange.WithIDGenerator(sequentialIDs()),
		bankexchange.WithClock(func() time.Time { return fixed }),
	)
}

func doc(fields map[string]string) bankexchange.Document {
	return bankexchange.Document{Kind: "Платежное поручение", Fields: fields}
}

func TestExtractAll_SampleStatement(t *testing.T) {
	batch, err := newExtractor(bankexchange.Options{OwnINN: ownINN}).ExtractAll(sampleStatement)
	require.NoError(t, err)

	assert.Equal(t, bankexchange.Stats{Documents: 3, Extracted: 3}, batch.Stats)
	require.Len(t, batch.Transactions, 3)

	// most recent first
	fee, rent, sale := batch.Transactions[0], batch.Transactions[1], batch.Transactions[2]

	assert.Equal(t, domain.Expense, fee.Direction)
	assert.Equal(t, domain.CategoryBankFees, fee.Category)
	assert.True(t, decimal.RequireFromString("1490.50").Equal(fee.Amount))

	assert.Equal(t, domain.Expense, rent.Direction)
	assert.Equal(t, domain.CategoryRent, rent.Category)
	assert.Equal(t, "40802810900000000001", rent.AccountNumber)

	assert.Equal(t, domain.Income, sale.Direction)
	assert.Equal(t, domain.CategorySales, sale.Category)
	assert.Equal(t, time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC), sale.Date)
	assert.True(t, decimal.NewFromInt(120000).Equal(sale.Amount))
	assert.Equal(t, domain.SourceImport, sale.Source)
	assert.Equal(t, domain.NoRegimeTag, sale.RegimeTag)
}

func TestExtractAll_UnrecognizedFormat(t *testing.T) {
	_, err := newExtractor(bankexchange.Options{}).ExtractAll("date,amount,description\n2024-01-01,100,coffee\n")
	assert.ErrorIs(t, err, apperrors.ErrUnrecognizedFormat)
}

func TestExtractAll_HeaderOnlyIsEmptySuccess(t *testing.T) {
	batch, err := newExtractor(bankexchange.Options{}).ExtractAll("1CClientBankExchange\nВерсияФормата=1.03\nКонецФайла\n")
	require.NoError(t, err)
	assert.Empty(t, batch.Transactions)
}

func TestExtractAll_TruncatedDocumentProducesNothing(t *testing.T) {
	text := "1CClientBankExchange\nСекцияДокумент=Платежное поручение\nДата=01.02.2024\nСумма=10,00\nНазначениеПлатежа=Оплата\n"
	batch, err := newExtractor(bankexchange.Options{}).ExtractAll(text)
	require.NoError(t, err)
	assert.Empty(t, batch.Transactions)
	assert.Equal(t, 1, batch.Stats.Truncated)
}

func TestExtractAll_RefusesPartiallyReadStatement(t *testing.T) {
	batch, err := newExtractor(bankexchange.Options{OwnINN: ownINN}).ExtractAll(statementWithLongPurpose(2 * 1024 * 1024))

	require.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Empty(t, batch.Transactions)
}

func TestExtractAll_SkipsBrokenDocumentsOnly(t *testing.T) {
	text := "1CClientBankExchange\n" +
		"СекцияДокумент=Платежное поручение\nДата=31.02.2024\nСумма=10,00\nКонецДокумента\n" +
		"СекцияДокумент=Платежное поручение\nДата=01.03.2024\nСумма=0,00\nКонецДокумента\n" +
		"СекцияДокумент=Платежное поручение\nДата=02.03.2024\nСумма=250,75\nКонецДокумента\n"
	batch, err := newExtractor(bankexchange.Options{}).ExtractAll(text)
	require.NoError(t, err)

	assert.Equal(t, bankexchange.Stats{Documents: 3, Extracted: 1, Rejected: 2}, batch.Stats)
	require.Len(t, batch.Transactions, 1)
	assert.True(t, decimal.RequireFromString("250.75").Equal(batch.Transactions[0].Amount))
}

func TestExtract_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		wantErr error
	}{
		{"missing date", map[string]string{"Сумма": "10,00"}, bankexchange.ErrMissingDate},
		{"malformed date", map[string]string{"Дата": "2024-01-01", "Сумма": "10,00"}, bankexchange.ErrInvalidDate},
		{"missing amount", map[string]string{"Дата": "01.01.2024"}, bankexchange.ErrMissingAmount},
		{"malformed amount", map[string]string{"Дата": "01.01.2024", "Сумма": "десять"}, bankexchange.ErrInvalidAmount},
		{"zero amount", map[string]string{"Дата": "01.01.2024", "Сумма": "0,00"}, bankexchange.ErrNonPositiveAmount},
		{"negative amount", map[string]string{"Дата": "01.01.2024", "Сумма": "-5,00"}, bankexchange.ErrNonPositiveAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newExtractor(bankexchange.Options{}).Extract(doc(tt.fields))
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}
}

func TestExtract_DirectionAndAmountSign(t *testing.T) {
	tests := []struct {
		name   string
		ownINN string
		fields map[string]string
		want   domain.Direction
	}{
		{
			name:   "own INN is the payer",
			ownINN: ownINN,
			fields: map[string]string{"ПлательщикИНН": ownINN, "ПолучательИНН": "1", "НазначениеПлатежа": "Оплата по договору"},
			want:   domain.Expense,
		},
		{
			name:   "own INN is the receiver",
			ownINN: ownINN,
			fields: map[string]string{"ПлательщикИНН": "1", "ПолучательИНН": ownINN, "НазначениеПлатежа": "Комиссия"},
			want:   domain.Income,
		},
		{
			name:   "no INN, fee keyword",
			fields: map[string]string{"НазначениеПлатежа": "Комиссия банка за перевод"},
			want:   domain.Expense,
		},
		{
			name:   "no INN, purchase keyword",
			fields: map[string]string{"НазначениеПлатежа": "Покупка товара по карте"},
			want:   domain.Expense,
		},
		{
			name:   "no INN, no keyword defaults to income",
			fields: map[string]string{"НазначениеПлатежа": "Оплата по счету 7"},
			want:   domain.Income,
		},
		{
			name:   "INN matches neither side falls back to keywords",
			ownINN: ownINN,
			fields: map[string]string{"ПлательщикИНН": "1", "ПолучательИНН": "2", "НазначениеПлатежа": "Service fee"},
			want:   domain.Expense,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]string{"Дата": "10.05.2024", "Сумма": "1000,10"}
			for k, v := range tt.fields {
				fields[k] = v
			}
			txn, err := newExtractor(bankexchange.Options{OwnINN: tt.ownINN}).Extract(doc(fields))
			require.NoError(t, err)
			assert.Equal(t, tt.want, txn.Direction)
			assert.True(t, txn.Amount.IsPositive())
			assert.True(t, decimal.RequireFromString("1000.10").Equal(txn.Amount))
		})
	}
}

func TestExtract_FixedFeeTagging(t *testing.T) {
	opts := bankexchange.Options{OwnINN: ownINN, FixedFeeAccountFragment: "0042"}
	base := map[string]string{"Дата": "10.05.2024", "Сумма": "5000,00", "НазначениеПлатежа": "Оплата услуг"}

	tests := []struct {
		name     string
		payer    string
		receiver string
		account  string
		wantTag  domain.RegimeTag
	}{
		{"income on matching account", "1", ownINN, "40802810900000000042", domain.FixedFeeTag},
		{"income on other account", "1", ownINN, "40802810900000000001", domain.NoRegimeTag},
		{"expense is never tagged", ownINN, "1", "40802810900000000042", domain.NoRegimeTag},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]string{
				"ПлательщикИНН":  tt.payer,
				"ПолучательИНН":  tt.receiver,
				"ПлательщикСчет": tt.account,
				"ПолучательСчет": tt.account,
			}
			for k, v := range base {
				fields[k] = v
			}
			txn, err := newExtractor(opts).Extract(doc(fields))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, txn.RegimeTag)
		})
	}
}

func TestExtract_AssignsUniqueIDs(t *testing.T) {
	e := bankexchange.NewExtractor(bankexchange.Options{})
	fields := map[string]string{"Дата": "10.05.2024", "Сумма": "1,00"}
	a, err := e.Extract(doc(fields))
	require.NoError(t, err)
	b, err := e.Extract(doc(fields))
	require.NoError(t, err)
	assert.NotEqual(t, a.TransactionID, b.TransactionID)
}
