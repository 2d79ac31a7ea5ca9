package normalize

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// dateLayouts are tried in priority order; the first layout that parses wins.
// Non-padded layouts so single-digit days and months are accepted too.
var dateLayouts = []string{
	"2-1-2006", // DD-MM-YYYY
	"2/1/2006", // DD/MM/YYYY
	"2006-1-2", // YYYY-MM-DD
	"2-1-06",   // DD-MM-YY
	"2/1/06",   // DD/MM/YY
	"2006/1/2", // YYYY/MM/DD
}

// Date normalizes a date string to DD-MM-YYYY.
func Date(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", errors.New("Date cannot be empty")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02-01-2006"), nil
		}
	}

	return "", fmt.Errorf("Invalid date format: %s", s)
}
