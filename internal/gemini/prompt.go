package gemini

// extractionPrompt instructs the model to return the expense detail table as
// raw CSV. The category taxonomy is appended at call time.
const extractionPrompt = `You read the attached multi-page bill PDF and extract ONLY the EXPENSE DETAIL TABLE(S).
Ignore dashboards, charts/graphs, summaries, totals, advertisements, and cover pages.

Output ONLY raw CSV with this exact header:
Date,Description,Payee,Amount,Category

Mapping rules:
- Identify rows representing itemized expenses/charges or payments/credits.
- Date: transaction date preferred (when the purchase occurred), otherwise posting date.
- Description: the full transaction description/details as shown in the bill.
- Payee: the merchant/vendor name extracted from the description (clean, simplified).
- Amount: numeric value for the row.
- Category: the best match from the category list below.

Normalization:
- Date: DD-MM-YYYY (numeric day-month-year, e.g., 13-06-2018).
- Description: clean text with spaces instead of symbols; one line; if it contains commas, quote the field.
- Payee: keep the original language/script; remove store numbers and transaction codes.
- Amount: signed decimal with '.' separator; no thousands separators.
  Outflows/charges are NEGATIVE (e.g., -120.50); credits/refunds are POSITIVE.
- Category: use ONLY categories from the provided list. Use the hierarchical
  format with the " > " separator when subcategories exist.

Scope:
- Extract ALL rows from the expense detail table(s) across ALL pages.
- If the bill contains NO itemized rows, output ONE row using the total due as a charge (negative).

Constraints:
- If a field is unknown, leave it empty (no N/A).
- Output only CSV text. No explanations, no markdown, no code fences, no extra columns.`

// buildPrompt appends the taxonomy document to the base instructions.
func buildPrompt(taxonomyDoc string) string {
	return extractionPrompt +
		"\n\n## Available Categories\n" +
		"Use ONLY these categories for the Category column:\n\n" +
		taxonomyDoc
}
