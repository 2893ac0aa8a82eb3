package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/ledgerlens/statement-importer/internal/document"
	"github.com/ledgerlens/statement-importer/internal/extractor"
	"github.com/ledgerlens/statement-importer/internal/writer"
)

func newConvertCommand() *cobra.Command {
	var source string
	var password string
	var output string
	var includeHeader bool

	cmd := &cobra.Command{
		Use:   "convert <statement.pdf> [statement2.pdf ...]",
		Short: "Extract transactions from statement PDFs into CSV",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := extractor.NewRegistry()
			if source != "" {
				if !validKey(registry, source) {
					return fmt.Errorf("unknown source %q, supported: %s", source, strings.Join(registry.Keys(), ", "))
				}
			}
			for _, inputPath := range args {
				if err := runConvert(registry, inputPath, source, password, output, includeHeader); err != nil {
					return fmt.Errorf("processing %s: %w", inputPath, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "statement source key (auto-detected if omitted)")
	cmd.Flags().StringVar(&password, "password", "", "PDF open password")
	cmd.Flags().StringVar(&output, "output", "", "output CSV path (defaults to input filename with .csv extension)")
	cmd.Flags().BoolVar(&includeHeader, "header", true, "include the CSV header row")

	return cmd
}

func runConvert(registry *extractor.Registry, inputPath, source, password, output string, includeHeader bool) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	fmt.Printf("Processing: %s\n", inputPath)

	text, err := document.ExtractText(inputPath, password)
	if err != nil {
		return fmt.Errorf("PDF extraction failed: %w", err)
	}

	ext := registry.Select(text, source)
	fmt.Printf("  Using %s extractor\n", ext.Name())

	transactions := ext.Extract(text)
	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.NewString()
		}
	}
	fmt.Printf("  Found %d transaction(s)\n", len(transactions))

	if len(transactions) == 0 {
		fmt.Println("  Warning: No transactions found. The statement layout may not match expected patterns.")
		fmt.Println("  Try specifying the source explicitly with the --source flag.")
	}

	outPath := output
	if outPath == "" {
		outPath = strings.TrimSuffix(inputPath, filepath.Ext(inputPath)) + ".csv"
	}

	w := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := w.WriteToFile(outPath, transactions); err != nil {
		return fmt.Errorf("CSV write failed: %w", err)
	}

	fmt.Printf("  Output: %s\n", outPath)
	return nil
}

func validKey(registry *extractor.Registry, key string) bool {
	for _, k := range registry.Keys() {
		if k == key {
			return true
		}
	}
	return false
}
