package parser

import (
	"regexp"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// GaliciaMastercard handles Banco Galicia Mastercard statements.
//
// Rows use a numeric date and a bare amount at the end of the line:
//
//	06-01-24 STORE NAME 03/06 1.234,56
//
// The installment projection only ever appears in the two-line form, with
// no "A partir de" continuation.
type GaliciaMastercard struct{}

func (f *GaliciaMastercard) Name() string {
	return "Banco Galicia Mastercard"
}

var galiciaMCRowPattern = regexp.MustCompile(
	`(?m)^\s*(\d{2}-\d{2}-\d{2})\s+(.+?)\s+(-?[\d.]+,\d{2})\s*$`,
)

func (f *GaliciaMastercard) Expenses(text string) ([]models.ExpenseRecord, error) {
	var expenses []models.ExpenseRecord
	for _, m := range galiciaMCRowPattern.FindAllStringSubmatch(text, -1) {
		exp, err := buildExpense(len(expenses)+1, m[1], m[2], m[3], locale.LayoutDashNumeric)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

func (f *GaliciaMastercard) Summary(text string) (models.StatementSummary, error) {
	return galiciaSummary(text)
}

func (f *GaliciaMastercard) Projection(text string) ([]models.ProjectionEntry, error) {
	return extractProjection(text, false)
}
