package tabular

import (
	"encoding/csv"
	"regexp"
	"strings"
)

// amountAnchor matches a field that can only be the Amount column.
var amountAnchor = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// RepairLine re-quotes a data line whose field count disagrees with the
// schema, which almost always means the model emitted a description, payee or
// category with unescaped embedded commas. The right-most numeric field is
// taken as the Amount anchor and the surrounding fields are folded into
// Description / Payee / Category around it. Lines the heuristic cannot place
// are passed through unrepaired and left to the parser.
func RepairLine(line string, schema Schema) string {
	fields, err := splitTolerant(line)
	if err != nil {
		fields = strings.Split(line, ",")
	}
	if len(fields) == schema.Columns() {
		return line
	}

	anchor := -1
	for i := len(fields) - 1; i >= 0; i-- {
		if amountAnchor.MatchString(strings.TrimSpace(fields[i])) {
			anchor = i
			break
		}
	}
	// Anchor below index 3 leaves no room for both Description and Payee;
	// pass through rather than guess.
	if anchor < 3 {
		return line
	}

	date := fields[0]
	desc := csvQuote(fields[1])
	payee := csvQuote(strings.Join(fields[2:anchor], ","))
	amount := strings.TrimSpace(fields[anchor])
	category := strings.Join(fields[anchor+1:], ",")
	if strings.Contains(category, ",") && !strings.Contains(category, ">") {
		category = csvQuote(category)
	}

	return strings.Join([]string{date, desc, payee, amount, category}, ",")
}

// splitTolerant parses one line with lax quoting, so a count check is
// possible even when the quoting is sloppy.
func splitTolerant(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	return r.Read()
}

// csvQuote wraps a field in double quotes (doubling embedded quotes) when it
// contains a comma.
func csvQuote(s string) string {
	if !strings.Contains(s, ",") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
