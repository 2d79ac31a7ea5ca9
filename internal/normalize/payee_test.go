package normalize

import "testing"

func TestPayee(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "whitespace only", input: "  ", want: ""},
		{name: "simple name", input: "Starbucks", want: "Starbucks"},
		{name: "already canonical", input: "Target", want: "Target"},
		{name: "costco", input: "Costco", want: "Costco"},
		{name: "store number", input: "Starbucks #1234", want: "Starbucks"},
		{name: "store number uppercase", input: "WALMART #567", want: "Walmart"},
		{name: "store word and number", input: "Target Store #890", want: "Target"},
		{name: "transaction code", input: "Amazon *ABC123", want: "Amazon"},
		{name: "code after alias", input: "Walmart *XYZ789", want: "Walmart"},
		{name: "tst prefix", input: "TST* DOORDASH", want: "DoorDash"},
		{name: "sq prefix keeps unknown", input: "SQ *COFFEE SHOP", want: "COFFEE SHOP"},
		{name: "sp prefix", input: "SP * UBER", want: "Uber"},
		{name: "lowercase alias", input: "walmart", want: "Walmart"},
		{name: "uppercase alias", input: "WALMART", want: "Walmart"},
		{name: "alias substring", input: "amazon marketplace", want: "Amazon"},
		{name: "paypal", input: "paypal payment", want: "PayPal"},
		{name: "hyphenated alias", input: "7-eleven", want: "7-Eleven"},
		{name: "spaced alias", input: "7 eleven", want: "7-Eleven"},
		{name: "mcdonalds", input: "mcdonalds", want: "McDonald's"},
		{name: "prefix plus number", input: "TST* DOORDASH #1234", want: "DoorDash"},
		{name: "prefix store number", input: "SQ *STARBUCKS STORE #567", want: "Starbucks"},
		{name: "stacked number and code", input: "WALMART #123 *STORE", want: "Walmart"},
		{name: "leading trailing spaces", input: "  Starbucks  ", want: "Starbucks"},
		{name: "inner spaces collapse", input: "Best    Buy", want: "Best Buy"},
		{name: "comma quoting", input: "Smith, John Store", want: `"Smith, John Store"`},
		{name: "comma and quotes", input: `Store "ABC", Inc.`, want: `"Store ""ABC"", Inc."`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Payee(tt.input); got != tt.want {
				t.Errorf("Payee(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPayee_Idempotent(t *testing.T) {
	inputs := []string{"", "Walmart", "7-Eleven", "COFFEE SHOP", "Smith, John Store"}
	for _, in := range inputs {
		once := Payee(in)
		twice := Payee(once)
		if once != twice {
			t.Errorf("Payee not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
