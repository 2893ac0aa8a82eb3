package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// GPayExtractor handles Google Pay UPI statements, where one logical
// transaction spans a block of lines bounded by a date-opening line and a
// payment-method closing line:
//
//	02 Dec, 2025  Paid to Akhil Sharma  ₹200
//	11:35 AM  UPI Transaction ID: 114999892784
//	Paid by HDFC Bank 4230
type GPayExtractor struct{}

var gpayBlockPattern = regexp.MustCompile(
	`(?s)(\d{2}\s+\w{3},\s+\d{4})\s+(Paid to|Received from)\s+([^\n]+?)\s+₹([\d,]+)\s*\n` +
		`\s*(\d{1,2}:\d{2}\s+(?:AM|PM))\s+UPI Transaction ID:\s+(\d+)\s*\n` +
		`\s*(Paid (?:by|to)\s+[^\n]+)`)

func (e *GPayExtractor) Name() string { return "GPay" }

func (e *GPayExtractor) Identify(text string) bool {
	return strings.Contains(text, "Google Pay") || strings.Contains(text, "UPI Transaction ID")
}

func (e *GPayExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, m := range gpayBlockPattern.FindAllStringSubmatch(text, -1) {
		amount := parseAmount(m[4])
		if amount == 0 {
			continue
		}

		txnType := models.Income
		if m[2] == "Paid to" {
			txnType = models.Expense
		}

		transactions = append(transactions, models.Transaction{
			ID:          m[6],
			Date:        normalizeDate(m[1]),
			Payee:       strings.TrimSpace(m[3]),
			Category:    models.CategoryUncategorized,
			Amount:      amount,
			Type:        txnType,
			Status:      models.StatusCompleted,
			Source:      e.Name(),
			RawEvidence: m[0],
		})
	}
	return transactions
}
