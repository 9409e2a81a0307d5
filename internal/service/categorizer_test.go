package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize_KeywordMatching(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        string
	}{
		{"transport keyword", "Uber ride to airport", "Transport"},
		{"dining keyword", "Pizza night at Dominos", "Dining"},
		{"income keyword", "Monthly salary credit", "Income"},
		{"rent keyword", "Flat rent for January", "Rent"},
		{"rent payment is rent not income", "Rent payment", "Rent"},
		{"case insensitive", "SWIGGY ORDER", "Dining"},
		{"no match", "Pharmacy purchase", "Other"},
		{"empty description", "", "Other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.description))
		})
	}
}

func TestCategorize_EarlierRuleWins(t *testing.T) {
	// "taxi" (Transport) appears before "pay" (Income) in the rule table, so a
	// description matching both resolves to the earlier rule.
	assert.Equal(t, "Transport", Categorize("taxi fare paid"))

	// "ride" matches Transport before "dine" could match Dining.
	assert.Equal(t, "Transport", Categorize("ride to the dine-in place"))

	// "House payment" hits both the Rent keyword "house" and the Income
	// keyword "pay"; Rent is the earlier rule.
	assert.Equal(t, "Rent", Categorize("House payment"))
}

func TestCategorize_Deterministic(t *testing.T) {
	first := Categorize("cafe latte")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Categorize("cafe latte"))
	}
}
