package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/resumia/statement-engine/internal/engine"
	"github.com/resumia/statement-engine/internal/extractor"
	"github.com/resumia/statement-engine/internal/logger"
	"github.com/resumia/statement-engine/internal/models"
	"github.com/resumia/statement-engine/internal/parser"
	"github.com/resumia/statement-engine/internal/writer"
)

// documentInfo is the per-document diagnostic section of the CLI output:
// how each file was classified and what its balance section said. The
// scraped balance stays out of the aggregate summary.
type documentInfo struct {
	File           string                  `json:"file"`
	Classification models.Classification   `json:"classification"`
	Statement      models.StatementSummary `json:"statement"`
}

type processOutput struct {
	*models.BatchResult
	Documents []documentInfo `json:"documents,omitempty"`
}

func processCmd() *cobra.Command {
	var csvPath string
	var showStatements bool

	cmd := &cobra.Command{
		Use:   "process <statement.pdf> [statement2.pdf ...]",
		Short: "Process statement PDFs locally and print the result as JSON",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(getLogLevel())
			if err != nil {
				return fmt.Errorf("building logger: %w", err)
			}
			defer log.Sync()

			var files []engine.File
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("reading %s: %w", path, err)
				}
				files = append(files, engine.File{Name: filepath.Base(path), Data: data})
			}

			pdfExtractor := extractor.PDF{}
			processor := engine.NewProcessor(parser.NewRegistry(), log)
			aggregator := engine.NewAggregator(processor, pdfExtractor, log)

			result, err := aggregator.ProcessAll(files)
			if err != nil {
				return err
			}

			out := processOutput{BatchResult: result}
			if showStatements {
				for _, f := range files {
					text, err := pdfExtractor.ExtractText(f.Data)
					if err != nil {
						continue
					}
					doc, err := processor.Process(f.Name, text)
					if err != nil {
						continue
					}
					out.Documents = append(out.Documents, documentInfo{
						File:           f.Name,
						Classification: doc.Classification,
						Statement:      doc.Statement,
					})
				}
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return err
			}

			if csvPath != "" {
				w := &writer.CSVWriter{IncludeSummary: true}
				if err := w.WriteToFile(csvPath, result); err != nil {
					return err
				}
				fmt.Fprintf(os.Stderr, "Wrote %d expense(s) to %s\n", len(result.Expenses), csvPath)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&csvPath, "csv", "", "also write expenses to a CSV file at this path")
	cmd.Flags().BoolVar(&showStatements, "statements", false, "include each document's classification and scraped balance section")
	return cmd
}

func getLogLevel() string {
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		return level
	}
	return "warn"
}
