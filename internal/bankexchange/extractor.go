package bankexchange

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/tax_ledger_app/internal/apperrors"
	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the day.month.year layout of the Дата field.
const DateLayout = "02.01.2006"

// Per-document rejection reasons. All of them wrap apperrors.ErrValidation.
var (
	ErrMissingDate       = fmt.Errorf("%w: document has no date", apperrors.ErrValidation)
	ErrInvalidDate       = fmt.Errorf("%w: document date is malformed", apperrors.ErrValidation)
	ErrMissingAmount     = fmt.Errorf("%w: document has no amount", apperrors.ErrValidation)
	ErrInvalidAmount     = fmt.Errorf("%w: document amount is malformed", apperrors.ErrValidation)
	ErrNonPositiveAmount = fmt.Errorf("%w: document amount must be positive", apperrors.ErrValidation)
)

// Options are the caller-declared facts an extraction depends on.
type Options struct {
	// OwnINN is the tax id of the business the statement belongs to.
	OwnINN string
	// FixedFeeAccountFragment tags income received on matching accounts as fixed-fee.
	FixedFeeAccountFragment string
}

// Extractor turns documents into transactions.
type Extractor struct {
	opts  Options
	newID func() string
	now   func() time.Time
}

// ExtractorOption configures an Extractor.
type ExtractorOption func(*Extractor)

// WithIDGenerator replaces the UUID generator.
func WithIDGenerator(gen func() string) ExtractorOption {
	return func(e *Extractor) { e.newID = gen }
}

// WithClock replaces the clock used for audit timestamps.
func WithClock(now func() time.Time) ExtractorOption {
	return func(e *Extractor) { e.now = now }
}

// NewExtractor creates an Extractor.
func NewExtractor(opts Options, options ...ExtractorOption) *Extractor {
	e := &Extractor{
		opts: Options{
			OwnINN:                  strings.TrimSpace(opts.OwnINN),
			FixedFeeAccountFragment: strings.TrimSpace(opts.FixedFeeAccountFragment),
		},
		newID: uuid.NewString,
		now:   func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Stats summarises one extraction run.
type Stats struct {
	Documents int `json:"documents"`
	Extracted int `json:"extracted"`
	Rejected  int `json:"rejected"`
	Truncated int `json:"truncated"`
}

// Batch is the outcome of extracting a whole file.
type Batch struct {
	Transactions domain.Ledger `json:"transactions"`
	Stats        Stats         `json:"stats"`
}

// Extract produces a transaction from one document, or a rejection error that
// only concerns this document.
func (e *Extractor) Extract(doc Document) (domain.Transaction, error) {
	date, err := parseDate(doc.Get(FieldDate))
	if err != nil {
		return domain.Transaction{}, err
	}
	amount, err := parseAmount(doc.Get(FieldAmount))
	if err != nil {
		return domain.Transaction{}, err
	}

	purpose := doc.Get(FieldPaymentPurpose)
	direction := InferDirection(e.opts.OwnINN, doc.Get(FieldPayerINN), doc.Get(FieldReceiverINN), purpose)

	account := doc.Get(FieldPayerAccount)
	if direction == domain.Income {
		account = doc.Get(FieldReceiverAccount)
	}

	tag := domain.NoRegimeTag
	if direction == domain.Income && MatchesFixedFeeAccount(account, e.opts.FixedFeeAccountFragment) {
		tag = domain.FixedFeeTag
	}

	now := e.now()
	return domain.Transaction{
		TransactionID: e.newID(),
		Date:          date,
		Amount:        amount,
		Direction:     direction,
		Category:      InferCategory(purpose, direction),
		Note:          purpose,
		AccountNumber: account,
		RegimeTag:     tag,
		Source:        domain.SourceImport,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

// ExtractAll reads every document of text and extracts what it can. Broken
// documents are skipped; input that never resembles the format at all yields
// apperrors.ErrUnrecognizedFormat. A read failure part way through yields
// apperrors.ErrValidation so a partial batch is never returned.
func (e *Extractor) ExtractAll(text string) (Batch, error) {
	reader := NewReader(text)
	batch := Batch{Transactions: domain.Ledger{}}

	for doc := range reader.Documents() {
		batch.Stats.Documents++
		txn, err := e.Extract(doc)
		if err != nil {
			batch.Stats.Rejected++
			continue
		}
		batch.Transactions = append(batch.Transactions, txn)
	}
	batch.Stats.Extracted = len(batch.Transactions)
	batch.Stats.Truncated = reader.Truncated()

	if err := reader.Err(); err != nil {
		return Batch{}, fmt.Errorf("%w: statement could not be read to the end: %v", apperrors.ErrValidation, err)
	}
	if !reader.Recognized() {
		return Batch{}, apperrors.ErrUnrecognizedFormat
	}
	batch.Transactions.SortByDateDesc()
	return batch, nil
}

func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, ErrMissingDate
	}
	t, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return domain.NormalizeDate(t), nil
}

var amountCleaner = strings.NewReplacer(" ", "", "\u00a0", "", "\u202f", "", ",", ".")

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, ErrMissingAmount
	}
	amount, err := decimal.NewFromString(amountCleaner.Replace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Zero, ErrNonPositiveAmount
	}
	return amount, nil
}
