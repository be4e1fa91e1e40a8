package bankexchange

import (
	"strings"

	"github.com/SscSPs/tax_ledger_app/internal/core/domain"
)

// expenseKeywords drive the direction fallback used when the statement's own
// INN is unknown. It is a best-effort heuristic: anything that does not look
// like a bank fee, charge or purchase is treated as income, which is the
// common case for a sales-receiving business.
var expenseKeywords = []string{
	"комисси",
	"списани",
	"удержан",
	"покупк",
	"плата за обслуживание",
	"fee",
	"charge",
	"purchase",
}

type categoryRule struct {
	category string
	keywords []string
}

// categoryRules are checked in order; the first match wins.
var categoryRules = []categoryRule{
	{category: domain.CategoryRent, keywords: []string{"аренд", "rent"}},
	{category: domain.CategoryTaxes, keywords: []string{"налог", "усн", "ифнс", "страховые взносы", "фиксированные взносы", "патент", "tax"}},
	{category: domain.CategoryPayroll, keywords: []string{"заработн", "зарплат", "аванс сотрудник", "оплата труда", "salary", "payroll"}},
	{category: domain.CategoryBankFees, keywords: []string{"комисси", "обслуживание счета", "плата за обслуживание", "bank fee"}},
}

// InferDirection resolves the direction of a document. The own INN wins when it
// matches either side; otherwise the payment purpose keywords decide.
func InferDirection(ownINN, payerINN, receiverINN, purpose string) domain.Direction {
	if ownINN != "" {
		switch ownINN {
		case payerINN:
			return domain.Expense
		case receiverINN:
			return domain.Income
		}
	}
	if containsAny(strings.ToLower(purpose), expenseKeywords) {
		return domain.Expense
	}
	return domain.Income
}

// InferCategory labels a transaction from its payment purpose.
func InferCategory(purpose string, direction domain.Direction) string {
	text := strings.ToLower(purpose)
	for _, rule := range categoryRules {
		if containsAny(text, rule.keywords) {
			return rule.category
		}
	}
	if direction == domain.Income {
		return domain.CategorySales
	}
	return domain.CategoryOther
}

// MatchesFixedFeeAccount reports whether account belongs to the fixed-fee
// activity. A suffix match is covered by the contains check.
func MatchesFixedFeeAccount(account, fragment string) bool {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" || account == "" {
		return false
	}
	return strings.Contains(account, fragment)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
