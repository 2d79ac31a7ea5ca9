package normalize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	currencyGlyphs = regexp.MustCompile(`[$£€¥₹¢]`)
	amountPattern  = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// Amount normalizes an amount string to a plain signed decimal: Unicode minus
// variants become '-', "(x)" becomes "-x", currency glyphs and thousands
// separators are stripped. The decimal-digit count of the input is preserved.
func Amount(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("Amount cannot be empty")
	}

	s = strings.ReplaceAll(s, "−", "-") // minus sign
	s = strings.ReplaceAll(s, "–", "-") // en dash

	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		s = "-" + s[1:len(s)-1]
	}

	s = currencyGlyphs.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")

	if !amountPattern.MatchString(s) {
		return "", fmt.Errorf("Invalid amount format: %s", s)
	}

	return s, nil
}
