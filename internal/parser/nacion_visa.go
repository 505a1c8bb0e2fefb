package parser

import (
	"regexp"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// NacionVisa handles Banco Nación VISA statements.
//
// Rows use a numeric date and end with the amount, optionally preceded by
// a six-digit transaction reference and a currency symbol:
//
//	06-01-24 STORE NAME 03/06 123456 $ 1.234,56
type NacionVisa struct{}

func (f *NacionVisa) Name() string {
	return "Banco Nación VISA"
}

var nacionVisaRowPattern = regexp.MustCompile(
	`(?m)^\s*(\d{2}-\d{2}-\d{2})\s+(.+?)\s+(?:\d{6}\s+)?\$?\s*(-?[\d.]+,\d{2})\s*$`,
)

func (f *NacionVisa) Expenses(text string) ([]models.ExpenseRecord, error) {
	var expenses []models.ExpenseRecord
	for _, m := range nacionVisaRowPattern.FindAllStringSubmatch(text, -1) {
		exp, err := buildExpense(len(expenses)+1, m[1], m[2], m[3], locale.LayoutDashNumeric)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

func (f *NacionVisa) Summary(text string) (models.StatementSummary, error) {
	return nacionSummary(text)
}

func (f *NacionVisa) Projection(text string) ([]models.ProjectionEntry, error) {
	return extractProjection(text, true)
}
