package insight

import (
	"encoding/json"
	"fmt"
	"strings"

	"fintrack/internal/core"
)

// SampleSize caps how many transactions are rendered into the analysis
// prompt. The list is newest-first, so the cap keeps the most recent sample.
const SampleSize = 50

// renderSample renders transactions as the line-oriented wire format the
// analysis prompt expects, e.g.
//
//	2025-08-20: EXPENSE - Groceries ($85.00) [Food]
func renderSample(ts []core.Transaction, limit int) string {
	if limit <= 0 {
		limit = SampleSize
	}
	if len(ts) > limit {
		ts = ts[:limit]
	}
	var b strings.Builder
	for i, t := range ts {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s: %s - %s (%s) [%s]",
			t.Date, strings.ToUpper(string(t.Type)), t.Title, t.Amount.Display(), t.Category)
	}
	return b.String()
}

func analyzePrompt(ts []core.Transaction, limit int) string {
	return "Analyze these financial transactions and provide a brief summary of spending habits " +
		"and 3 actionable tips to save money. Return JSON.\n\nTransactions:\n" + renderSample(ts, limit)
}

func suggestPrompt(title string, amount core.Money) string {
	return fmt.Sprintf("Categorize this transaction: %q amount %s. "+
		"Return only the category name from this list: %s.",
		title, amount.Display(), combinedCategories())
}

func combinedCategories() string {
	names := core.Categories(core.Expense)
	for _, c := range core.Categories(core.Income) {
		if !core.KnownCategory(core.Expense, c) {
			names = append(names, c)
		}
	}
	return strings.Join(names, ", ")
}

// parseInsight decodes the service's JSON payload. Empty or malformed
// responses resolve to the documented fallback values rather than errors.
func parseInsight(raw string) Insight {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Insight{Summary: summaryEmptyFallback, Tips: []string{}}
	}
	var out Insight
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return Insight{Summary: summaryParseFallback, Tips: []string{}}
	}
	if out.Tips == nil {
		out.Tips = []string{}
	}
	return out
}

// parseCategory normalizes a bare category-name response against the
// combined vocabulary, defaulting when the service answers off-list.
func parseCategory(raw string) string {
	name := strings.Trim(strings.TrimSpace(raw), `"`)
	if name == "" || !core.AnyKnownCategory(name) {
		return core.DefaultCategory
	}
	return name
}
