package parser

import (
	"regexp"
	"strings"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// Nación statements label the balance section with "SALDO ACTUAL" and the
// minimum payment with "PAGO MINIMO", with or without a trailing colon,
// accents, or a currency-symbol prefix on the amount.
var (
	saldoActualPattern = regexp.MustCompile(`(?i)SALDO ACTUAL:?\s*\$?\s*(-?[\d.]+,\d{2})`)
	pagoMinimoPattern  = regexp.MustCompile(`(?i)PAGO M[IÍ]NIMO:?\s*\$?\s*(-?[\d.]+,\d{2})`)
	amountTokenPattern = regexp.MustCompile(`\$?\s*-?[\d.]+,\d{2}`)
)

// nacionSummary scrapes the balance and minimum-payment fields of a Nación
// statement. Absent labels leave their fields at zero.
func nacionSummary(text string) (models.StatementSummary, error) {
	var s models.StatementSummary

	if m := saldoActualPattern.FindStringSubmatch(text); m != nil {
		v, err := locale.ParseAmount(m[1])
		if err != nil {
			return models.StatementSummary{}, err
		}
		s.TotalPesos = v
	}

	if m := pagoMinimoPattern.FindStringSubmatch(text); m != nil {
		v, err := locale.ParseAmount(m[1])
		if err != nil {
			return models.StatementSummary{}, err
		}
		s.MinimumPayment = v
	}

	return s, nil
}

// galiciaSummary scrapes the "TOTAL A PAGAR" line of a Galicia statement,
// which carries the peso and dollar totals as two consecutive amounts.
func galiciaSummary(text string) (models.StatementSummary, error) {
	var s models.StatementSummary

	for _, line := range strings.Split(text, "\n") {
		idx := strings.Index(line, "TOTAL A PAGAR")
		if idx == -1 {
			continue
		}

		amounts := amountTokenPattern.FindAllString(line[idx:], 2)
		if len(amounts) >= 1 {
			v, err := locale.ParseAmount(amounts[0])
			if err != nil {
				return models.StatementSummary{}, err
			}
			s.TotalPesos = v
		}
		if len(amounts) >= 2 {
			v, err := locale.ParseAmount(amounts[1])
			if err != nil {
				return models.StatementSummary{}, err
			}
			s.TotalDollars = v
		}
		break
	}

	return s, nil
}
