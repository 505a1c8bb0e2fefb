package models

// Bank identifies the issuing bank of a statement.
type Bank string

const (
	BankNacion  Bank = "nacion"
	BankGalicia Bank = "galicia"
	BankUnknown Bank = "unknown"
)

// CardNetwork identifies the card network of a statement.
type CardNetwork string

const (
	NetworkVisa       CardNetwork = "visa"
	NetworkMastercard CardNetwork = "mastercard"
	NetworkUnknown    CardNetwork = "unknown"
)

// Classification is the detected bank/network pair for one document.
// It is computed once per document and never persisted.
type Classification struct {
	Bank    Bank        `json:"bank"`
	Network CardNetwork `json:"network"`
}

// ExpenseRecord is a single transaction row extracted from a statement.
// IDs are 1-based and unique only within their source document.
type ExpenseRecord struct {
	ID                 int     `json:"id"`
	Date               string  `json:"date"` // ISO form, YYYY-MM-DD
	Merchant           string  `json:"merchant"`
	TotalAmount        float64 `json:"totalAmount"`
	Installments       int     `json:"installments"`
	CurrentInstallment int     `json:"currentInstallment"`
	InstallmentAmount  float64 `json:"installmentAmount"`
	Category           string  `json:"category"`
	Period             string  `json:"period"` // "Month Year"
}

// ProjectionEntry is one month of the installments-coming-due schedule.
type ProjectionEntry struct {
	Month  string  `json:"month"` // canonical "Month Year"
	Amount float64 `json:"amount"`
}

// Summary is the expense-derived aggregate returned for a batch.
type Summary struct {
	TotalSpent         float64 `json:"totalSpent"`
	TotalToPay         float64 `json:"totalToPay"`
	ActiveInstallments int     `json:"activeInstallments"`
	ProcessedFiles     int     `json:"processedFiles"`
}

// StatementSummary holds the balance fields scraped from one document's
// summary section. Zero values mean the field was absent.
type StatementSummary struct {
	TotalPesos     float64 `json:"totalPesos"`
	TotalDollars   float64 `json:"totalDollars"`
	MinimumPayment float64 `json:"minimumPayment,omitempty"`
}

// DocumentResult is the outcome of processing a single statement.
type DocumentResult struct {
	Classification Classification    `json:"classification"`
	Expenses       []ExpenseRecord   `json:"expenses"`
	Statement      StatementSummary  `json:"statement"`
	Projection     []ProjectionEntry `json:"projection"`
}

// FileFailure records a document that was accepted into a batch but could
// not be processed. The rest of the batch is unaffected.
type FileFailure struct {
	File   string `json:"file"`
	Reason string `json:"reason"`
}

// BatchResult is the consolidated outcome of processing a batch of
// statements. Expense IDs keep their document-local numbering.
type BatchResult struct {
	Summary    Summary           `json:"summaryData"`
	Expenses   []ExpenseRecord   `json:"expensesData"`
	Projection []ProjectionEntry `json:"projectionData"`
	Failures   []FileFailure     `json:"failures,omitempty"`
}
