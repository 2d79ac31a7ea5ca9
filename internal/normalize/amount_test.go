package normalize

import (
	"regexp"
	"strings"
	"testing"
)

func TestAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr string
	}{
		{name: "positive decimal", input: "120.50", want: "120.50"},
		{name: "integer", input: "1000", want: "1000"},
		{name: "sub unit", input: "0.99", want: "0.99"},
		{name: "negative decimal", input: "-120.50", want: "-120.50"},
		{name: "negative integer", input: "-1000", want: "-1000"},
		{name: "unicode minus sign", input: "−120.50", want: "-120.50"},
		{name: "en dash minus", input: "–50", want: "-50"},
		{name: "thousands separator", input: "1,234.56", want: "1234.56"},
		{name: "many thousands separators", input: "-1,000,000", want: "-1000000"},
		{name: "parenthesized negative", input: "(120.50)", want: "-120.50"},
		{name: "parenthesized integer", input: "(1000)", want: "-1000"},
		{name: "parenthesized with separator", input: "(1,234.50)", want: "-1234.50"},
		{name: "dollar sign", input: "$120.50", want: "120.50"},
		{name: "pound sign", input: "£50", want: "50"},
		{name: "euro with sign", input: "€-30.00", want: "-30.00"},
		{name: "internal spaces", input: "1 234.56", want: "1234.56"},
		{name: "trailing zeros kept", input: "10.00", want: "10.00"},
		{name: "empty", input: "", wantErr: "Amount cannot be empty"},
		{name: "whitespace only", input: "  ", wantErr: "Amount cannot be empty"},
		{name: "letters", input: "abc", wantErr: "Invalid amount format"},
		{name: "double decimal point", input: "12.34.56", wantErr: "Invalid amount format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Amount(tt.input)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("Amount(%q) = %q, want error", tt.input, got)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Errorf("Amount(%q) error = %q, want containing %q", tt.input, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Amount(%q) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Amount(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAmount_OutputShape(t *testing.T) {
	shape := regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	inputs := []string{"$1,234.56", "(99)", "−0.01", "¥3000"}
	for _, in := range inputs {
		got, err := Amount(in)
		if err != nil {
			t.Fatalf("Amount(%q) returned error: %v", in, err)
		}
		if !shape.MatchString(got) {
			t.Errorf("Amount(%q) = %q, want signed decimal shape", in, got)
		}
	}
}

func TestAmount_Idempotent(t *testing.T) {
	inputs := []string{"(1,234.50)", "−50", "$120.50", "1000"}
	for _, in := range inputs {
		once, err := Amount(in)
		if err != nil {
			t.Fatalf("Amount(%q) returned error: %v", in, err)
		}
		twice, err := Amount(once)
		if err != nil {
			t.Fatalf("Amount(%q) returned error: %v", once, err)
		}
		if once != twice {
			t.Errorf("Amount not idempotent: %q -> %q -> %q", in, once, twice)
		}
	}
}
