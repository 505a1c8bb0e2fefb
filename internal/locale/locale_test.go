package locale

import (
	"errors"
	"testing"
	"time"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected float64
		wantErr  bool
	}{
		{"$ 1.234,56", 1234.56, false},
		{"1.234,56", 1234.56, false},
		{"25,99", 25.99, false},
		{"-25,99", -25.99, false},
		{"$ 1.234.567,89", 1234567.89, false},
		{"$ 12.000,00", 12000.00, false},
		{"0,00", 0.00, false},
		{"", 0, true},
		{"$ ", 0, true},
		{"no-un-numero", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				var perr *ParseError
				if !errors.As(err, &perr) {
					t.Errorf("expected *ParseError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %f, want %f", got, tt.expected)
			}
		})
	}
}

func TestParsePositiveAmount(t *testing.T) {
	got, err := ParsePositiveAmount("$ -1.500,00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1500.00 {
		t.Errorf("got %f, want 1500.00", got)
	}
}

func TestTranslateMonth(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"06-Ene-24", "06-Jan-24"},
		{"15-Ago-23", "15-Aug-23"},
		{"01-Dic-25", "01-Dec-25"},
		{"Set-23", "Sep-23"},
		{"Setiembre 2023", "Sep 2023"},
		{"Enero", "Jan"},
		{"06-Jan-24", "06-Jan-24"}, // already English
		{"sin mes aqui", "sin mes aqui"},
		// One substitution only: the first table match wins, no re-scan.
		{"Ene y Feb", "Jan y Feb"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TranslateMonth(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestNormalizeMonthYear(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Ene-24", "January 2024"},
		{"Set-23", "September 2023"},
		{"Ago/25", "August 2025"},
		{"Feb-24", "February 2024"},
		{"Diciembre-23", "December 2023"},
		// Defensive pass-through for anything that does not split into a
		// month and a 2-digit year.
		{"2024", "2024"},
		{"Ene-2024", "Ene-2024"},
		{"Xyz-24", "Xyz-24"},
		{"Ene-24-extra", "Ene-24-extra"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeMonthYear(tt.input); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got, err := ParseDate("06-Ene-24", LayoutDashAbbrev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}

	if _, err := ParseDate("99-Xyz-24", LayoutDashAbbrev); err == nil {
		t.Error("expected error for unparseable date")
	}
}

func TestParseDateRoundTrip(t *testing.T) {
	date := time.Date(2024, time.January, 6, 0, 0, 0, 0, time.UTC)

	for _, layout := range []string{LayoutDashAbbrev, LayoutDashNumeric} {
		formatted := date.Format(layout)
		parsed, err := ParseDate(formatted, layout)
		if err != nil {
			t.Fatalf("layout %q: unexpected error: %v", layout, err)
		}
		if !parsed.Equal(date) {
			t.Errorf("layout %q: got %v, want %v", layout, parsed, date)
		}
	}
}

func TestPeriodLabel(t *testing.T) {
	tests := []struct {
		input    string
		layout   string
		expected string
	}{
		{"06-Ene-24", LayoutDashAbbrev, "January 2024"},
		{"15-Set-23", LayoutDashAbbrev, "September 2023"},
		{"06-01-24", LayoutDashNumeric, "January 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := PeriodLabel(tt.input, tt.layout)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}
