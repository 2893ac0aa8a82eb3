package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// SBIExtractor handles the SBI layout where every row ends in a credit
// field, a debit field and a balance, with a dash standing in for whichever
// movement column is unused:
//
//	Date | Narration | Ref.No./Chq.No. | Credit | Debit | Balance
//
// The trailing pair is located right-to-left from the balance, then stripped
// from the line to expose the narration/reference prefix.
type SBIExtractor struct{}

var (
	sbiDatePattern    = regexp.MustCompile(`^(\d{2}-\d{2}-\d{2,4})`)
	sbiBalancePattern = regexp.MustCompile(`(\d+\.\d{2})$`)
	sbiTrailingPair   = regexp.MustCompile(`(?:^|\s)(-|\d+\.?\d*)\s+(-|\d+\.?\d*)\s+(\d+\.\d{2})$`)
)

func (e *SBIExtractor) Name() string { return "SBI" }

func (e *SBIExtractor) Identify(text string) bool {
	return strings.Contains(text, "STATE BANK OF INDIA") ||
		strings.Contains(text, "State Bank of India") ||
		strings.Contains(text, "SBI")
}

func (e *SBIExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "null") || strings.HasPrefix(trimmed, "*All dates") {
			continue
		}
		if !sbiBalancePattern.MatchString(trimmed) {
			continue
		}

		pairLoc := sbiTrailingPair.FindStringSubmatchIndex(trimmed)
		if pairLoc == nil {
			continue
		}
		dateMatch := sbiDatePattern.FindStringSubmatch(trimmed)
		if dateMatch == nil {
			continue
		}
		date := dateMatch[1]

		credit := parseAmount(trimmed[pairLoc[2]:pairLoc[3]])
		debit := parseAmount(trimmed[pairLoc[4]:pairLoc[5]])

		amount := credit
		txnType := models.Income
		if debit > 0 {
			amount = debit
			txnType = models.Expense
		}
		if amount == 0 {
			continue
		}

		// Everything between the date and the trailing amounts is the
		// narration plus the reference column, which is a lone dash when
		// empty.
		payee := strings.TrimSpace(trimmed[len(date):pairLoc[0]])
		payee = strings.TrimSpace(strings.TrimSuffix(payee, "-"))

		transactions = append(transactions, models.Transaction{
			Date:        normalizeDate(date),
			Payee:       payee,
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
