package parser

import (
	"testing"

	"github.com/resumia/statement-engine/internal/locale"
)

func TestDetectInstallments(t *testing.T) {
	tests := []struct {
		desc           string
		current, total int
	}{
		{"STORE NAME 03/06", 3, 6},
		{"MUEBLES GARCIA CUOTA 01/12", 1, 12},
		{"SUPERMERCADO CENTRAL", 1, 1},
		{"", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			current, total := detectInstallments(tt.desc)
			if current != tt.current || total != tt.total {
				t.Errorf("got %d/%d, want %d/%d", current, total, tt.current, tt.total)
			}
		})
	}
}

func TestMerchantName(t *testing.T) {
	tests := []struct {
		desc     string
		expected string
	}{
		{"MERPAGO*COMERCIO 03/06", "MERPAGO*COMERCIO"},
		{"SUPERMERCADO CENTRAL SUCURSAL 4", "SUPERMERCADO"},
		{"  RACING  ", "RACING"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := merchantName(tt.desc); got != tt.expected {
			t.Errorf("merchantName(%q): got %q, want %q", tt.desc, got, tt.expected)
		}
	}
}

func TestBuildExpense(t *testing.T) {
	exp, err := buildExpense(1, "06-Ene-24", "MERPAGO*COMERCIO 03/06", "1.234,56", locale.LayoutDashAbbrev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if exp.ID != 1 {
		t.Errorf("id: got %d, want 1", exp.ID)
	}
	if exp.Date != "2024-01-06" {
		t.Errorf("date: got %q, want 2024-01-06", exp.Date)
	}
	if exp.Merchant != "MERPAGO*COMERCIO" {
		t.Errorf("merchant: got %q", exp.Merchant)
	}
	if exp.TotalAmount != 1234.56 {
		t.Errorf("total: got %f, want 1234.56", exp.TotalAmount)
	}
	if exp.CurrentInstallment != 3 || exp.Installments != 6 {
		t.Errorf("installments: got %d/%d, want 3/6", exp.CurrentInstallment, exp.Installments)
	}
	if exp.InstallmentAmount != 205.76 {
		t.Errorf("installment amount: got %f, want 205.76", exp.InstallmentAmount)
	}
	if exp.Category != "E-commerce" {
		t.Errorf("category: got %q, want E-commerce", exp.Category)
	}
	if exp.Period != "January 2024" {
		t.Errorf("period: got %q, want January 2024", exp.Period)
	}
}

func TestBuildExpenseSingleInstallment(t *testing.T) {
	exp, err := buildExpense(2, "15-Feb-24", "RACING", "500,00", locale.LayoutDashAbbrev)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exp.Installments != 1 || exp.CurrentInstallment != 1 {
		t.Errorf("installments: got %d/%d, want 1/1", exp.CurrentInstallment, exp.Installments)
	}
	if exp.InstallmentAmount != exp.TotalAmount {
		t.Errorf("installment amount %f should equal total %f", exp.InstallmentAmount, exp.TotalAmount)
	}
}

func TestBuildExpenseBadDate(t *testing.T) {
	if _, err := buildExpense(1, "99-Xyz-24", "STORE", "1,00", locale.LayoutDashAbbrev); err == nil {
		t.Error("expected error for unparseable date")
	}
}
