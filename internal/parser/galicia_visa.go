package parser

import (
	"regexp"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// GaliciaVisa handles Banco Galicia VISA statements ("Resumen de tarjeta
// de credito VISA").
//
// Rows carry an abbreviated-month date and a currency-prefixed amount at
// the end of the line, with an optional starred transaction reference:
//
//	06-Ene-24 MERCADOPAGO*COMERCIO 123456* $ 1.234,56
type GaliciaVisa struct{}

func (f *GaliciaVisa) Name() string {
	return "Banco Galicia VISA"
}

var galiciaVisaRowPattern = regexp.MustCompile(
	`(?m)^\s*(\d{2}-[A-Za-z]{3}-\d{2})\s+(.+?)\s+(?:\d{4,6}\*?\s+)?\$\s*(-?[\d.]+,\d{2})\s*$`,
)

func (f *GaliciaVisa) Expenses(text string) ([]models.ExpenseRecord, error) {
	var expenses []models.ExpenseRecord
	for _, m := range galiciaVisaRowPattern.FindAllStringSubmatch(text, -1) {
		exp, err := buildExpense(len(expenses)+1, m[1], m[2], m[3], locale.LayoutDashAbbrev)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, exp)
	}
	return expenses, nil
}

func (f *GaliciaVisa) Summary(text string) (models.StatementSummary, error) {
	return galiciaSummary(text)
}

func (f *GaliciaVisa) Projection(text string) ([]models.ProjectionEntry, error) {
	return extractProjection(text, true)
}
