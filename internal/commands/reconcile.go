package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-importer/internal/document"
	"github.com/ledgerlens/statement-importer/internal/extractor"
	"github.com/ledgerlens/statement-importer/internal/reconcile"
	"github.com/ledgerlens/statement-importer/internal/writer"
)

func newReconcileCommand() *cobra.Command {
	var source string
	var password string
	var ledgerPath string
	var output string
	var includeHeader bool

	cmd := &cobra.Command{
		Use:   "reconcile <statement.pdf>",
		Short: "Extract transactions and flag duplicates against an existing ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReconcile(args[0], source, password, ledgerPath, output, includeHeader)
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "statement source key (auto-detected if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "PDF open password")
	cmd.Flags().StringVar(&ledgerPath, "ledger", "", "JSON file of already-booked entries (required)")
	_ = cmd.MarkFlagRequired("ledger")
	cmd.Flags().StringVar(&output, "output", "", "output CSV path (defaults to input filename with .reconciled.csv extension)")
	cmd.Flags().BoolVar(&includeHeader, "header", true, "include the CSV header row")

	return cmd
}

func runReconcile(inputPath, source, password, ledgerPath, output string, includeHeader bool) error {
	ledgerRaw, err := os.ReadFile(ledgerPath)
	if err != nil {
		return fmt.Errorf("reading ledger: %w", err)
	}
	var existing []reconcile.LedgerEntry
	if err := json.Unmarshal(ledgerRaw, &existing); err != nil {
		return fmt.Errorf("parsing ledger %s: %w", ledgerPath, err)
	}

	text, err := document.ExtractText(inputPath, password)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	ext := extractor.NewRegistry().Select(text, source)
	fmt.Printf("Using %s extractor\n", ext.Name())

	transactions := ext.Extract(text)
	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.NewString()
		}
	}

	annotated := reconcile.Annotate(existing, transactions)

	var exact, probable int
	for _, a := range annotated {
		if a.ExactMatch {
			exact++
		}
		if a.ProbableDuplicate {
			probable++
		}
	}
	fmt.Printf("Found %d transaction(s): %d exact duplicate(s), %d probable duplicate(s)\n",
		len(annotated), exact, probable)

	outPath := output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".reconciled.csv"
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", outPath, err)
	}
	defer f.Close()

	w := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := w.WriteAnnotated(f, annotated); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	fmt.Printf("Output: %s\n", outPath)
	return nil
}
