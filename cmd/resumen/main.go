package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resumen",
	Short: "Credit-card statement interpretation engine",
	Long: `resumen ingests credit-card statement PDFs issued by Argentine banks
(Banco Nación, Banco Galicia), extracts the transaction rows, and produces
structured expenses, an account summary, and an installment projection.`,
}

func init() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(processCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
