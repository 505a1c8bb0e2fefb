package locale

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date layouts used by the supported statement formats.
const (
	// LayoutDashAbbrev matches dates like "06-Ene-24" after month translation.
	LayoutDashAbbrev = "02-Jan-06"
	// LayoutDashNumeric matches dates like "06-01-24".
	LayoutDashNumeric = "02-01-06"
)

// ParseError indicates that text matched a structural pattern but could not
// be parsed into a number or date.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// monthEntry maps a Spanish month spelling to its English abbreviation and
// full name. Full names come before abbreviations so that "Enero" is never
// half-replaced through its "Ene" prefix.
type monthEntry struct {
	es     string
	abbrev string
	full   string
}

var months = []monthEntry{
	{"Enero", "Jan", "January"},
	{"Febrero", "Feb", "February"},
	{"Marzo", "Mar", "March"},
	{"Abril", "Apr", "April"},
	{"Mayo", "May", "May"},
	{"Junio", "Jun", "June"},
	{"Julio", "Jul", "July"},
	{"Agosto", "Aug", "August"},
	{"Septiembre", "Sep", "September"},
	{"Setiembre", "Sep", "September"}, // alternate rioplatense spelling
	{"Octubre", "Oct", "October"},
	{"Noviembre", "Nov", "November"},
	{"Diciembre", "Dec", "December"},
	{"Ene", "Jan", "January"},
	{"Feb", "Feb", "February"},
	{"Mar", "Mar", "March"},
	{"Abr", "Apr", "April"},
	{"May", "May", "May"},
	{"Jun", "Jun", "June"},
	{"Jul", "Jul", "July"},
	{"Ago", "Aug", "August"},
	{"Sep", "Sep", "September"},
	{"Set", "Sep", "September"},
	{"Oct", "Oct", "October"},
	{"Nov", "Nov", "November"},
	{"Dic", "Dec", "December"},
}

// TranslateMonth substitutes the first Spanish month name or abbreviation
// found anywhere in s with its English abbreviation. Only one substitution
// is applied; if no month matches, s is returned unchanged.
func TranslateMonth(s string) string {
	lower := strings.ToLower(s)
	for _, m := range months {
		if idx := strings.Index(lower, strings.ToLower(m.es)); idx >= 0 {
			return s[:idx] + m.abbrev + s[idx+len(m.es):]
		}
	}
	return s
}

// monthFull resolves a month token (Spanish or English, full or abbreviated)
// to its full English name. Returns "" if the token is not a known month.
func monthFull(token string) string {
	for _, m := range months {
		if strings.EqualFold(token, m.es) ||
			strings.EqualFold(token, m.abbrev) ||
			strings.EqualFold(token, m.full) {
			return m.full
		}
	}
	return ""
}

// ParseAmount converts a locale-formatted currency string like "$ 1.234,56"
// to its decimal value. Dots are thousands separators and the comma is the
// decimal separator. A leading minus sign is preserved.
func ParseAmount(s string) (float64, error) {
	cleaned := strings.TrimSpace(s)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, " ", "")
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	if cleaned == "" {
		return 0, &ParseError{Input: s, Err: fmt.Errorf("empty amount")}
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return v, nil
}

// ParsePositiveAmount parses an amount that the caller knows must be
// positive, discarding any stray minus signs the layout carries.
func ParsePositiveAmount(s string) (float64, error) {
	return ParseAmount(strings.ReplaceAll(s, "-", ""))
}

// NormalizeMonthYear expands a token like "Ene-24" or "Ene/24" into
// "January 2024". Tokens that do not split into exactly a month and a
// two-digit year are returned unchanged; callers must tolerate that.
func NormalizeMonthYear(token string) string {
	parts := strings.FieldsFunc(token, func(r rune) bool {
		return r == '-' || r == '/'
	})
	if len(parts) != 2 {
		return token
	}

	full := monthFull(parts[0])
	if full == "" {
		return token
	}

	year := parts[1]
	if len(year) != 2 || !isDigits(year) {
		return token
	}

	return full + " 20" + year
}

// ParseDate translates Spanish month names in text and parses the result
// with the given source layout.
func ParseDate(text, layout string) (time.Time, error) {
	t, err := time.Parse(layout, TranslateMonth(text))
	if err != nil {
		return time.Time{}, &ParseError{Input: text, Err: err}
	}
	return t, nil
}

// PeriodLabel returns the human-readable "Month Year" period for a date in
// the given source layout.
func PeriodLabel(text, layout string) (string, error) {
	t, err := ParseDate(text, layout)
	if err != nil {
		return "", err
	}
	return t.Format("January 2006"), nil
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}
