package parser

import (
	"regexp"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// NacionMastercard handles Banco Nación Mastercard statements. It is also
// the fallback format for documents that cannot be classified.
//
// Transaction rows look like:
//
//	06-Ene-24 MERPAGO*COMERCIO 03/06 12345 1.234,56
//
// date, description (optionally carrying the installment marker), a
// five-digit transaction reference, and the amount.
type NacionMastercard struct{}

func (f *NacionMastercard) Name() string {
	return "Banco Nación Mastercard"
}

var nacionMCRowPattern = regexp.MustCompile(
	`(\d{2}-[A-Za-z]{3}-\d{2})\s+(.+?)\s+\d{5}\s+([\d.,-]+)`,
)

func (f *NacionMastercard) Expenses(text string) ([]models.ExpenseRecord, error) {
	var expenses []models.ExpenseRecord
	for _, m := range nacionMCRowPattern.FindAllStringSubmatch(text, -1) {
		exp, err := buildExpense(len(expenses)+1, m[1], m[2], m[3], locale.LayoutDashAbbrev)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

func (f *NacionMastercard) Summary(text string) (models.StatementSummary, error) {
	return nacionSummary(text)
}

func (f *NacionMastercard) Projection(text string) ([]models.ProjectionEntry, error) {
	return extractProjection(text, true)
}
