package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// HDFCExtractor handles the compact HDFC savings layout where every
// transaction fits on one line:
//
//	Date | Narration | Chq./Ref.No. | Value Dt | Withdrawal | Deposit | Balance
//
// Example: 01/10/23 UPI-ZOMATO-1234 100123456789 01/10/23 299.00 0.00 5230.50
type HDFCExtractor struct{}

var hdfcRowPattern = regexp.MustCompile(
	`^(\d{2}/\d{2}/\d{2,4})\s+(.+?)\s+([\d-]+)\s+(\d{2}/\d{2}/\d{2,4})\s+` +
		`([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)\s+([\d,]+(?:\.\d+)?)`)

func (e *HDFCExtractor) Name() string { return "HDFC Bank" }

func (e *HDFCExtractor) Identify(text string) bool {
	return strings.Contains(text, "HDFC BANK") || strings.Contains(text, "HDFC Bank")
}

func (e *HDFCExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		m := hdfcRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		withdrawal := parseAmount(m[5])
		deposit := parseAmount(m[6])

		// Exactly one of the movement columns must be non-zero. Rows with
		// both zero are balance-only noise; rows with both set are
		// malformed and dropped rather than guessed at.
		if (withdrawal > 0) == (deposit > 0) {
			continue
		}

		txnType := models.Income
		amount := deposit
		if withdrawal > 0 {
			txnType = models.Expense
			amount = withdrawal
		}

		transactions = append(transactions, models.Transaction{
			Date:        normalizeDate(m[1]),
			Payee:       strings.TrimSpace(m[2]),
			Category:    models.CategoryUncategorized,
			Amount:      amount,
			Type:        txnType,
			Status:      models.StatusCompleted,
			Source:      e.Name(),
			RawEvidence: line,
		})
	}
	return transactions
}
