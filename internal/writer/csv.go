package writer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ledgerlens/statement-importer/internal/models"
	"github.com/ledgerlens/statement-importer/internal/reconcile"
)

// CSVWriter writes extracted transactions to CSV format.
type CSVWriter struct {
	IncludeHeader bool
}

// WriteToFile writes transactions to a CSV file at the given path.
func (w *CSVWriter) WriteToFile(path string, transactions []models.Transaction) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file %q: %w", path, err)
	}
	defer f.Close()

	return w.Write(f, transactions)
}

// Write writes transactions in CSV format to the given writer.
func (w *CSVWriter) Write(out io.Writer, transactions []models.Transaction) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		header := []string{"Date", "Payee", "Category", "Type", "Amount", "Status", "Source"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, txn := range transactions {
		row := []string{
			txn.Date,
			txn.Payee,
			txn.Category,
			string(txn.Type),
			formatAmount(txn.Amount),
			txn.Status,
			txn.Source,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteAnnotated writes reconciled transactions with their duplicate flags,
// so a spreadsheet review shows what a repeat import would skip.
func (w *CSVWriter) WriteAnnotated(out io.Writer, annotated []reconcile.Annotated) error {
	writer := csv.NewWriter(out)
	defer writer.Flush()

	if w.IncludeHeader {
		header := []string{"Date", "Payee", "Category", "Type", "Amount", "Status", "Source", "ExactMatch", "ProbableDuplicate", "Selected"}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
	}

	for _, a := range annotated {
		row := []string{
			a.Date,
			a.Payee,
			a.Category,
			string(a.Type),
			formatAmount(a.Amount),
			a.Status,
			a.Source,
			strconv.FormatBool(a.ExactMatch),
			strconv.FormatBool(a.ProbableDuplicate),
			strconv.FormatBool(a.Selected),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatAmount(amount float64) string {
	if amount == 0 {
		return ""
	}
	return strconv.FormatFloat(amount, 'f', 2, 64)
}
