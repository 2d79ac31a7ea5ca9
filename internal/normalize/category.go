package normalize

import "strings"

// CategoryTable is the lookup surface a category normalizer needs. The
// taxonomy package provides the real implementation; tests can supply a stub.
type CategoryTable interface {
	// Match resolves a name case-insensitively to its canonical-cased entry.
	Match(name string) (string, bool)
	// Default is the sentinel returned for blank or unrecognized categories.
	Default() string
}

// categoryRepunctuator rewrites common level-separator spellings to the
// canonical hierarchy separator before a retry lookup.
var categoryRepunctuator = strings.NewReplacer(
	"/", " > ",
	" - ", " > ",
	" & ", " > ",
)

// Category resolves a category string against the taxonomy. It always
// succeeds: anything that cannot be resolved becomes the default sentinel.
func Category(s string, table CategoryTable) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return table.Default()
	}

	if canonical, ok := table.Match(s); ok {
		return canonical
	}

	// "Food/Dining" and "Food - Dining" are frequent model spellings of
	// "Food > Dining"; repunctuate and try once more.
	if canonical, ok := table.Match(categoryRepunctuator.Replace(s)); ok {
		return canonical
	}

	return table.Default()
}
