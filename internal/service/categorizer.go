package service

import (
	"strings"

	"github.com/finwise/finwise-backend/internal/domain"
)

// CategoryOther is the fallback label when no keyword rule matches.
const CategoryOther = "Other"

// categoryRule maps a set of keywords to a category label. Rules are evaluated
// in order and the first rule with any substring match wins, so earlier rules
// take priority over later ones regardless of match specificity.
type categoryRule struct {
	label    string
	keywords []string
}

// categoryRules is the fixed fallback table used when a record carries no
// explicit category. Read-only after process start. Rent sits above Income:
// "payment" contains the Income keyword "pay", so descriptions like
// "Rent payment" must reach the Rent rule first.
var categoryRules = []categoryRule{
	{label: "Transport", keywords: []string{"uber", "ola", "taxi", "grab", "ride"}},
	{label: "Dining", keywords: []string{"restaurant", "dine", "cafe", "pizza", "dominos", "swiggy"}},
	{label: "Rent", keywords: []string{"rent", "house", "flat"}},
	{label: "Income", keywords: []string{"salary", "pay", "invoice"}},
}

// categoryFor resolves the label for a transaction: an explicit category wins,
// then the keyword rules on the description. Records typed "income" with no
// other signal land in Income rather than the generic fallback.
func categoryFor(t *domain.Transaction) string {
	if t.Category != "" {
		return t.Category
	}
	label := Categorize(t.Description)
	if label == CategoryOther && t.Type == domain.TransactionTypeIncome {
		return "Income"
	}
	return label
}

// Categorize maps a free-text description to a category label. It is total:
// empty or unmatched descriptions resolve to CategoryOther.
func Categorize(description string) string {
	d := strings.ToLower(description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(d, kw) {
				return rule.label
			}
		}
	}
	return CategoryOther
}
