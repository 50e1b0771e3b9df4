// Package export renders transaction lists as downloadable documents.
package export

import (
	"fmt"
	"io"
	"strings"

	"fintrack/internal/core"
)

// Header is the fixed CSV column order.
const Header = "Date,Type,Category,Title,Amount,Description"

// WriteCSV writes one row per transaction in the given order. Title and
// Description are always double-quoted so embedded commas survive; the
// amount is the plain decimal form with no currency symbol. The standard
// encoding/csv writer is not used because it quotes only when forced, and
// the documented format quotes those two columns unconditionally.
func WriteCSV(w io.Writer, ts []core.Transaction) error {
	if _, err := io.WriteString(w, Header+"\n"); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range ts {
		row := strings.Join([]string{
			t.Date.String(),
			string(t.Type),
			t.Category,
			quote(t.Title),
			t.Amount.Decimal(),
			quote(t.Description),
		}, ",")
		if _, err := io.WriteString(w, row+"\n"); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}
	return nil
}

// Filename names the download after the active view filter.
func Filename(view string) string {
	return fmt.Sprintf("finance_data_%s.csv", view)
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
