package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// GenericExtractor is the fallback strategy for statements no institution
// layout claims: any line shaped like date, narration, amount and an
// optional DR/CR indicator becomes a transaction.
type GenericExtractor struct{}

var genericRowPattern = regexp.MustCompile(`(?i)(\d{2}[-/]\d{2}[-/]\d{4})\s+(.+?)\s+(\d+\.?\d*)\s*(DR|CR|)`)

func (e *GenericExtractor) Name() string { return "Generic" }

func (e *GenericExtractor) Identify(text string) bool { return true }

func (e *GenericExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		m := genericRowPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		amount := parseAmount(m[3])
		if amount == 0 {
			continue
		}

		txnType := models.Income
		indicator := strings.ToUpper(m[4])
		if indicator == "DR" || strings.Contains(strings.ToLower(line), "debit") {
			txnType = models.Expense
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
