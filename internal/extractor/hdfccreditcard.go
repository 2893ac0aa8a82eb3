package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// HDFCCreditCardExtractor handles HDFC credit card statements, which list
// domestic and international transactions in separate tables. Both row
// shapes end in a "C <amount> l" column marker; domestic rows glue the pipe
// to the date while international rows space it out and may carry the
// original USD amount ahead of the INR one.
type HDFCCreditCardExtractor struct{}

var (
	// DD/MM/YYYY| HH:MM DESCRIPTION [+ ]C AMOUNT l
	hdfcCCDomesticPattern = regexp.MustCompile(
		`(\d{2}/\d{2}/\d{4})\|\s+(\d{2}:\d{2})\s+(.+?)\s+\+?\s*C\s+([\d,]+\.\d{2})\s+l`)
	// DD/MM/YYYY | HH:MM DESCRIPTION [USD X.XX ]C AMOUNT l
	hdfcCCInternationalPattern = regexp.MustCompile(
		`(\d{2}/\d{2}/\d{4})\s+\|\s+(\d{2}:\d{2})\s+(.+?)\s+(?:USD\s+([\d,]+\.\d{2})\s+)?C\s+([\d,]+\.\d{2})\s+l`)
)

func (e *HDFCCreditCardExtractor) Name() string { return "HDFC Credit Card" }

func (e *HDFCCreditCardExtractor) Identify(text string) bool {
	return strings.Contains(text, "Domestic Transactions") ||
		strings.Contains(text, "International Transactions") ||
		(strings.Contains(text, "HDFC BANK") && strings.Contains(text, "Credit Card"))
}

func (e *HDFCCreditCardExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, m := range hdfcCCDomesticPattern.FindAllStringSubmatch(text, -1) {
		amount := parseAmount(m[4])
		if amount == 0 {
			continue
		}
		txnType := models.Expense
		if strings.Contains(m[0], "Cr") || strings.Contains(m[0], "+") {
			txnType = models.Income
		}
		transactions = append(transactions, models.Transaction{
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

	// International rows settle in INR; the card bills them as debits.
	for _, m := range hdfcCCInternationalPattern.FindAllStringSubmatch(text, -1) {
		amount := parseAmount(m[5])
		if amount == 0 {
			continue
		}
		transactions = append(transactions, models.Transaction{
			Date:        normalizeDate(m[1]),
			Payee:       strings.TrimSpace(m[3]),
			Category:    models.CategoryUncategorized,
			Amount:      amount,
			Type:        models.Expense,
			Status:      models.StatusCompleted,
			Source:      e.Name(),
			RawEvidence: m[0],
		})
	}

	return transactions
}
