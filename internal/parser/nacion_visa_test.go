package parser

import (
	"testing"
)

const nacionVisaStatement = `Banco Nación
Resumen de cuenta VISA

Fecha Descripción Comprobante Importe
06-01-24 MERPAGO*COMERCIO 03/06 123456 $ 1.234,56
15-01-24 FARMACIA CENTRAL 789012 $ 500,00
20-01-24 NETFLIX.COM 3.500,75

SALDO ACTUAL $ 98.765,40
PAGO MINIMO: $ 9.876,54

Cuotas a vencer
Feb-24 Mar-24
$ 411,52 $ 411,52
A partir de Abr-24 $ 411,52
`

func TestNacionVisaExpenses(t *testing.T) {
	f := &NacionVisa{}

	expenses, err := f.Expenses(nacionVisaStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(expenses) != 3 {
		t.Fatalf("expected 3 expenses, got %d", len(expenses))
	}

	first := expenses[0]
	if first.Date != "2024-01-06" {
		t.Errorf("date: got %q, want 2024-01-06", first.Date)
	}
	if first.Merchant != "MERPAGO*COMERCIO" {
		t.Errorf("merchant: got %q", first.Merchant)
	}
	if first.CurrentInstallment != 3 || first.Installments != 6 {
		t.Errorf("installments: got %d/%d, want 3/6", first.CurrentInstallment, first.Installments)
	}
	if first.TotalAmount != 1234.56 {
		t.Errorf("total: got %f, want 1234.56", first.TotalAmount)
	}

	// The transaction reference must not leak into the description.
	second := expenses[1]
	if second.Merchant != "FARMACIA" || second.Category != "Health" {
		t.Errorf("unexpected second expense: %+v", second)
	}
	if second.TotalAmount != 500.00 {
		t.Errorf("total: got %f, want 500.00", second.TotalAmount)
	}

	// Rows without reference or currency symbol still parse.
	third := expenses[2]
	if third.Merchant != "NETFLIX.COM" || third.Category != "Subscriptions" {
		t.Errorf("unexpected third expense: %+v", third)
	}
	if third.TotalAmount != 3500.75 {
		t.Errorf("total: got %f, want 3500.75", third.TotalAmount)
	}
}

func TestNacionVisaSummary(t *testing.T) {
	f := &NacionVisa{}

	s, err := f.Summary(nacionVisaStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.TotalPesos != 98765.40 {
		t.Errorf("totalPesos: got %f, want 98765.40", s.TotalPesos)
	}
	if s.MinimumPayment != 9876.54 {
		t.Errorf("minimumPayment: got %f, want 9876.54", s.MinimumPayment)
	}
}

func TestNacionVisaProjection(t *testing.T) {
	f := &NacionVisa{}

	proj, err := f.Projection(nacionVisaStatement)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(proj) != 3 {
		t.Fatalf("expected 3 projection entries, got %d: %+v", len(proj), proj)
	}

	want := []struct {
		month  string
		amount float64
	}{
		{"February 2024", 411.52},
		{"March 2024", 411.52},
		{"April 2024", 411.52},
	}
	for i, w := range want {
		if proj[i].Month != w.month || proj[i].Amount != w.amount {
			t.Errorf("entry %d: got %+v, want %s %f", i, proj[i], w.month, w.amount)
		}
	}
}
