package parser

import (
	"regexp"
	"strings"

	"github.com/resumia/statement-engine/internal/locale"
	"github.com/resumia/statement-engine/internal/models"
)

// projectionMarker opens the installments-coming-due section in every
// supported layout.
const projectionMarker = "Cuotas a vencer"

// continuationMarker precedes the optional "starting from" line declaring
// one further future month/amount pair.
const continuationMarker = "A partir de"

var (
	// monthTokenPattern matches schedule column headers like "Ene-24".
	monthTokenPattern = regexp.MustCompile(`([A-Za-z]+-\d{2})`)
	// projectionAmountPattern matches schedule amounts like "$ 1.234,56",
	// tolerating a stray minus sign and spaced thousands groups.
	projectionAmountPattern = regexp.MustCompile(`\$\s*-?[\d.\s]*\d+,\d{2}`)
)

// extractProjection parses the "Cuotas a vencer" section. Two layout
// families exist: month tokens on the marker line itself with amounts on
// the following line (Mastercard-style), or a month-token line followed by
// an amount line (Visa-style). An absent marker is a valid outcome with an
// empty schedule. When allowContinuation is set, an "A partir de" line
// after the schedule contributes one more month/amount pair.
func extractProjection(text string, allowContinuation bool) ([]models.ProjectionEntry, error) {
	lines := strings.Split(text, "\n")

	markerIdx := -1
	for i, line := range lines {
		if strings.Contains(line, projectionMarker) {
			markerIdx = i
			break
		}
	}
	if markerIdx == -1 {
		return nil, nil
	}

	rest := lines[markerIdx][strings.Index(lines[markerIdx], projectionMarker)+len(projectionMarker):]

	var monthTokens []string
	amountIdx := -1
	if tokens := monthTokenPattern.FindAllString(rest, -1); len(tokens) > 0 {
		// Mastercard-style: months share the marker line, amounts follow.
		monthTokens = tokens
		amountIdx = markerIdx + 1
	} else if markerIdx+2 < len(lines) {
		// Visa-style: months on the next line, amounts on the one after.
		monthTokens = monthTokenPattern.FindAllString(lines[markerIdx+1], -1)
		amountIdx = markerIdx + 2
	}
	if len(monthTokens) == 0 || amountIdx < 0 || amountIdx >= len(lines) {
		return nil, nil
	}

	amounts := projectionAmountPattern.FindAllString(lines[amountIdx], -1)

	var entries []models.ProjectionEntry
	for i, month := range monthTokens {
		if i >= len(amounts) {
			break
		}
		v, err := locale.ParsePositiveAmount(amounts[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.ProjectionEntry{
			Month:  locale.NormalizeMonthYear(month),
			Amount: round2(v),
		})
	}

	if allowContinuation {
		entry, ok, err := continuationEntry(lines, amountIdx+1)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, entry)
		}
	}

	return entries, nil
}

// continuationEntry scans the couple of lines after the schedule for an
// "A partir de" declaration and returns its month/amount pair.
func continuationEntry(lines []string, from int) (models.ProjectionEntry, bool, error) {
	for i := from; i < len(lines) && i < from+2; i++ {
		if !strings.Contains(lines[i], continuationMarker) {
			continue
		}
		month := monthTokenPattern.FindString(lines[i])
		amount := projectionAmountPattern.FindString(lines[i])
		if month == "" || amount == "" {
			return models.ProjectionEntry{}, false, nil
		}
		v, err := locale.ParsePositiveAmount(amount)
		if err != nil {
			return models.ProjectionEntry{}, false, err
		}
		return models.ProjectionEntry{
			Month:  locale.NormalizeMonthYear(month),
			Amount: round2(v),
		}, true, nil
	}
	return models.ProjectionEntry{}, false, nil
}
