package engine

import (
	"errors"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/resumia/statement-engine/internal/models"
)

// ErrNoValidFiles is returned when a batch contains no acceptable PDF
// entries at all. Individual bad entries inside a non-empty batch are
// skipped or recorded instead.
var ErrNoValidFiles = errors.New("no valid PDF files in batch")

// TextExtractor is the upstream PDF-to-text collaborator: it materializes
// one newline-joined text stream per document before parsing begins.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// File is one uploaded document in a batch.
type File struct {
	Name string
	Data []byte
}

// Aggregator runs the processor over a batch of statements and merges the
// per-document results into one consolidated response.
type Aggregator struct {
	processor *Processor
	extractor TextExtractor
	logger    *zap.Logger
}

// NewAggregator builds a batch aggregator.
func NewAggregator(processor *Processor, extractor TextExtractor, logger *zap.Logger) *Aggregator {
	return &Aggregator{processor: processor, extractor: extractor, logger: logger}
}

// ProcessAll processes the accepted documents of a batch strictly in
// submission order. Non-PDF or unnamed entries are silently skipped; a
// document that fails extraction or parsing is recorded as a failure
// without aborting the rest of the batch.
func (a *Aggregator) ProcessAll(files []File) (*models.BatchResult, error) {
	var accepted []File
	for _, f := range files {
		if f.Name == "" || !strings.EqualFold(filepath.Ext(f.Name), ".pdf") {
			a.logger.Debug("skipping non-PDF batch entry", zap.String("file", f.Name))
			continue
		}
		accepted = append(accepted, f)
	}
	if len(accepted) == 0 {
		return nil, ErrNoValidFiles
	}

	result := &models.BatchResult{
		Expenses:   []models.ExpenseRecord{},
		Projection: []models.ProjectionEntry{},
	}
	var projections [][]models.ProjectionEntry

	for _, f := range accepted {
		text, err := a.extractor.ExtractText(f.Data)
		if err != nil {
			a.logger.Error("extraction failed", zap.String("file", f.Name), zap.Error(err))
			result.Failures = append(result.Failures, models.FileFailure{File: f.Name, Reason: err.Error()})
			continue
		}

		doc, err := a.processor.Process(f.Name, text)
		if err != nil {
			a.logger.Error("processing failed", zap.String("file", f.Name), zap.Error(err))
			result.Failures = append(result.Failures, models.FileFailure{File: f.Name, Reason: err.Error()})
			continue
		}

		// Document-local expense ids are preserved, not renumbered.
		result.Expenses = append(result.Expenses, doc.Expenses...)
		projections = append(projections, doc.Projection)
	}

	result.Summary = Summarize(result.Expenses, len(accepted))
	result.Projection = MergeProjections(projections...)

	return result, nil
}

// Summarize derives the batch summary from the combined expense list.
// totalToPay and activeInstallments only count multi-installment purchases.
func Summarize(expenses []models.ExpenseRecord, processedFiles int) models.Summary {
	var s models.Summary
	s.ProcessedFiles = processedFiles
	for _, e := range expenses {
		s.TotalSpent += e.TotalAmount
		if e.Installments > 1 {
			s.TotalToPay += e.InstallmentAmount
			s.ActiveInstallments++
		}
	}
	s.TotalSpent = round2(s.TotalSpent)
	s.TotalToPay = round2(s.TotalToPay)
	return s
}

// MergeProjections groups projection entries by month label, sums the
// amounts per month, and returns them sorted ascending by label string.
func MergeProjections(lists ...[]models.ProjectionEntry) []models.ProjectionEntry {
	byMonth := make(map[string]float64)
	for _, list := range lists {
		for _, e := range list {
			byMonth[e.Month] += e.Amount
		}
	}

	months := make([]string, 0, len(byMonth))
	for m := range byMonth {
		months = append(months, m)
	}
	sort.Strings(months)

	merged := make([]models.ProjectionEntry, 0, len(months))
	for _, m := range months {
		merged = append(merged, models.ProjectionEntry{Month: m, Amount: round2(byMonth[m])})
	}
	return merged
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
