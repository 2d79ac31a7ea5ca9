package normalize

import (
	"regexp"
	"strings"
)

// gatewayPrefixes are payment-gateway markers that statement feeds prepend to
// the merchant name.
var gatewayPrefixes = []string{"TST*", "SQ *", "SP *"}

var (
	trailingStoreNumber = regexp.MustCompile(`\s*#\s*\d+$`)
	trailingCode        = regexp.MustCompile(`\s*\*\s*[A-Za-z0-9]+$`)
)

// payeeAliases canonicalizes well-known merchants by case-insensitive
// substring match. First match in table order wins.
var payeeAliases = []struct {
	match     string
	canonical string
}{
	{"walmart", "Walmart"},
	{"amazon", "Amazon"},
	{"paypal", "PayPal"},
	{"7-eleven", "7-Eleven"},
	{"7 eleven", "7-Eleven"},
	{"mcdonald", "McDonald's"},
	{"doordash", "DoorDash"},
	{"starbucks", "Starbucks"},
	{"uber", "Uber"},
	{"target", "Target"},
	{"costco", "Costco"},
	{"netflix", "Netflix"},
	{"spotify", "Spotify"},
}

// Payee normalizes a merchant name. Blank input is not an error: Payee is an
// optional column and comes back as the empty string.
func Payee(s string) string {
	s = unwrapQuoted(s)
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	for _, prefix := range gatewayPrefixes {
		if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}

	// Store numbers and transaction codes stack ("WALMART #123 *STORE"),
	// so strip until the tail is stable.
	for {
		trimmed := trailingStoreNumber.ReplaceAllString(s, "")
		trimmed = trailingCode.ReplaceAllString(trimmed, "")
		if trimmed == s {
			break
		}
		s = trimmed
	}

	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return ""
	}

	lower := strings.ToLower(s)
	for _, alias := range payeeAliases {
		if strings.Contains(lower, alias.match) {
			return alias.canonical
		}
	}

	return quoteIfComma(s)
}
