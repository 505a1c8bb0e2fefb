package parser

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// installmentPattern matches the inline "current/total" marker some
// formats embed in the row description, e.g. "CUOTA 03/06".
var installmentPattern = regexp.MustCompile(`(\d{2})/(\d{2})`)

// detectInstallments returns the (current, total) installment pair from a
// row description, or (1, 1) when the row is not an installment purchase.
func detectInstallments(desc string) (int, int) {
	m := installmentPattern.FindStringSubmatch(desc)
	if m == nil {
		return 1, 1
	}
	current, _ := strconv.Atoi(m[1])
	total, _ := strconv.Atoi(m[2])
	return current, total
}

// merchantName takes the first whitespace-delimited token of a description.
// Deliberately coarse: multi-word merchant names get truncated.
func merchantName(desc string) string {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// buildExpense assembles one ExpenseRecord from the captured row pieces.
// A date or amount that fails to parse is a hard error for the document:
// silently dropping a matched row would leave the id sequence inconsistent
// with the visible statement.
func buildExpense(id int, rawDate, desc, rawAmount, dateLayout string) (models.ExpenseRecord, error) {
	date, err := locale.ParseDate(rawDate, dateLayout)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("row %d: %w", id, err)
	}

	amount, err := locale.ParseAmount(rawAmount)
	if err != nil {
		return models.ExpenseRecord{}, fmt.Errorf("row %d: %w", id, err)
	}

	current, total := detectInstallments(desc)
	installmentAmount := amount
	if total > 1 {
		installmentAmount = round2(amount / float64(total))
	}

	merchant := merchantName(desc)

	return models.ExpenseRecord{
		ID:                 id,
		Date:               date.Format("2006-01-02"),
		Merchant:           merchant,
		TotalAmount:        amount,
		Installments:       total,
		CurrentInstallment: current,
		InstallmentAmount:  installmentAmount,
		Category:           Categorize(merchant),
		Period:             date.Format("January 2006"),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
