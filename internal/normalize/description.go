package normalize

import (
	"errors"
	"regexp"
	"strings"
)

// symbolRuns matches the noise symbols commonly injected into statement
// descriptions (store separators, gateway markers, brackets). Dashes and
// underscores are handled separately so runs collapse to one space.
var (
	symbolRuns = regexp.MustCompile("[*#@&/\\\\|<>~`^+=\\[\\]{}]+")
	dashRuns   = regexp.MustCompile(`[-_]+`)
)

// Description normalizes a description to clean, single-line text: noise
// symbols become spaces, whitespace collapses, and the result is CSV-quoted
// when it contains a comma.
func Description(s string) (string, error) {
	s = unwrapQuoted(s)
	s = symbolRuns.ReplaceAllString(s, " ")
	s = dashRuns.ReplaceAllString(s, " ")
	s = strings.Join(strings.Fields(s), " ")

	if s == "" {
		return "", errors.New("Description cannot be empty")
	}

	return quoteIfComma(s), nil
}

// quoteIfComma wraps s in double quotes (doubling embedded quotes) when it
// contains a comma, so the value survives delimited output intact.
func quoteIfComma(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// unwrapQuoted undoes one round of CSV-style field quoting. Normalizers must
// be idempotent, so a value we already quoted has to come back out unchanged.
func unwrapQuoted(s string) string {
	if len(s) < 2 || !strings.HasPrefix(s, `"`) || !strings.HasSuffix(s, `"`) {
		return s
	}
	inner := s[1 : len(s)-1]
	// Reject if the interior contains a bare quote; that is not our quoting.
	if strings.Contains(strings.ReplaceAll(inner, `""`, ""), `"`) {
		return s
	}
	return strings.ReplaceAll(inner, `""`, `"`)
}
