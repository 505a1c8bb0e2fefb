package engine

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/resumia/statement-engine/internal/models"
	"github.com/resumia/statement-engine/internal/parser"
)

// Processor turns one statement's extracted text into structured records.
type Processor struct {
	registry *parser.Registry
	logger   *zap.Logger
}

// NewProcessor builds a processor over the given format registry.
func NewProcessor(registry *parser.Registry, logger *zap.Logger) *Processor {
	return &Processor{registry: registry, logger: logger}
}

// Process classifies the document, then runs the matching expense, summary
// and projection extractors. A parse error aborts this document only.
func (p *Processor) Process(name, text string) (*models.DocumentResult, error) {
	classification := parser.Classify(text)
	format := p.registry.Resolve(classification)

	if classification.Bank == models.BankUnknown && classification.Network == models.NetworkUnknown {
		p.logger.Warn("unrecognized statement, using fallback format",
			zap.String("file", name),
			zap.String("format", format.Name()))
	} else {
		p.logger.Debug("classified statement",
			zap.String("file", name),
			zap.String("bank", string(classification.Bank)),
			zap.String("network", string(classification.Network)),
			zap.String("format", format.Name()))
	}

	expenses, err := format.Expenses(text)
	if err != nil {
		return nil, fmt.Errorf("%s: extracting expenses: %w", name, err)
	}

	statement, err := format.Summary(text)
	if err != nil {
		return nil, fmt.Errorf("%s: extracting summary: %w", name, err)
	}

	projection, err := format.Projection(text)
	if err != nil {
		return nil, fmt.Errorf("%s: extracting projection: %w", name, err)
	}

	p.logger.Debug("processed statement",
		zap.String("file", name),
		zap.Int("expenses", len(expenses)),
		zap.Int("projectionMonths", len(projection)))

	return &models.DocumentResult{
		Classification: classification,
		Expenses:       expenses,
		Statement:      statement,
		Projection:     projection,
	}, nil
}
