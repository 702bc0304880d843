package expense

import (
	"strings"
)

// ExportRenderer turns an expense list into a downloadable text table.
type ExportRenderer interface {
	Render(expenses []Expense) (string, error)
}

type CsvExportRendererImpl struct {
}

func NewCsvExportRenderer() *CsvExportRendererImpl {
	return &CsvExportRendererImpl{}
}

// Render produces the CSV export: header row, then one row per expense in
// the supplied order. The description column is always quoted with internal
// quotes doubled; amounts are formatted with two decimal places.
func (t *CsvExportRendererImpl) Render(expenses []Expense) (string, error) {
	rows := make([]string, 0, len(expenses)+1)
	rows = append(rows, "Date,Category,Description,Amount")
	for _, expense := range expenses {
		row := strings.Join([]string{
			expense.Date.Format("2006-01-02"),
			string(expense.Category),
			quoteField(expense.Description),
			expense.Amount.StringFixed(2),
		}, ",")
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n"), nil
}

func quoteField(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
