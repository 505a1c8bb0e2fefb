package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/resumia/statement-engine/internal/models"
)

// CSVWriter writes a batch's expense records to CSV format.
type CSVWriter struct {
	IncludeSummary bool
}

// WriteToFile writes the batch to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, result *models.BatchResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, result)
}

// Write writes the batch's expenses in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, result *models.BatchResult) error {
	cw := csv.NewWriter(out)
	defer cw.Flush()

	if w.IncludeSummary {
		cw.Write([]string{"# Total Spent", formatAmount(result.Summary.TotalSpent)})
		cw.Write([]string{"# Total To Pay", formatAmount(result.Summary.TotalToPay)})
		cw.Write([]string{"# Active Installments", strconv.Itoa(result.Summary.ActiveInstallments)})
		cw.Write([]string{"# Processed Files", strconv.Itoa(result.Summary.ProcessedFiles)})
	}

	header := []string{"ID", "Date", "Merchant", "Category", "Total Amount", "Installment", "Installment Amount", "Period"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range result.Expenses {
		row := []string{
			strconv.Itoa(e.ID),
			e.Date,
			e.Merchant,
			e.Category,
			formatAmount(e.TotalAmount),
			fmt.Sprintf("%d/%d", e.CurrentInstallment, e.Installments),
			formatAmount(e.InstallmentAmount),
			e.Period,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	return nil
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
