package parser

import (
	"github.com/resumia/statement-engine/internal/models"
)

// StatementFormat describes one bank/network statement layout. Each
// implementation knows how to pull transaction rows, the balance summary
// section, and the installments-coming-due section out of the raw text.
type StatementFormat interface {
	// Name returns a human-readable format identifier.
	Name() string
	// Expenses extracts transaction rows in document order. Text that does
	// not match the row pattern is ignored; rows that match but fail date
	// or amount parsing are a hard error.
	Expenses(text string) ([]models.ExpenseRecord, error)
	// Summary scrapes the statement's balance section. Absent fields are
	// zero, never an error.
	Summary(text string) (models.StatementSummary, error)
	// Projection parses the "Cuotas a vencer" section. An absent section
	// yields an empty schedule.
	Projection(text string) ([]models.ProjectionEntry, error)
}

type formatKey struct {
	bank    models.Bank
	network models.CardNetwork
}

// Registry maps a (bank, network) classification to its StatementFormat.
// Adding support for a new bank is a new Register call, not a new branch.
type Registry struct {
	formats  map[formatKey]StatementFormat
	fallback StatementFormat
}

// NewRegistry returns a registry with all supported formats wired in.
// Nación/Mastercard doubles as the fallback for unclassified documents.
func NewRegistry() *Registry {
	nacionMC := &NacionMastercard{}

	r := &Registry{
		formats:  make(map[formatKey]StatementFormat),
		fallback: nacionMC,
	}
	r.Register(models.BankNacion, models.NetworkMastercard, nacionMC)
	r.Register(models.BankNacion, models.NetworkVisa, &NacionVisa{})
	r.Register(models.BankGalicia, models.NetworkVisa, &GaliciaVisa{})
	r.Register(models.BankGalicia, models.NetworkMastercard, &GaliciaMastercard{})
	return r
}

// Register adds or replaces the format for a bank/network pair.
func (r *Registry) Register(bank models.Bank, network models.CardNetwork, f StatementFormat) {
	r.formats[formatKey{bank: bank, network: network}] = f
}

// Resolve returns the format for a classification, or the fallback when
// the pair has no registered format (including unknown on either axis).
func (r *Registry) Resolve(c models.Classification) StatementFormat {
	if f, ok := r.formats[formatKey{bank: c.Bank, network: c.Network}]; ok {
		return f
	}
	return r.fallback
}
