package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// PNBExtractor handles PNB ONE app exports. A dated row carries the amount,
// a CR/DR marker and the balance, but its remarks column regularly spills
// onto the following undated lines:
//
//	06/01/2026 0.89 DR 60142.63 SMS CHRG FOR:01-10-2025
//	to31-12-2025
//
// Undated lines are folded into the open transaction's payee until the next
// dated row or a footer sentinel closes it.
type PNBExtractor struct{}

var (
	pnbRowPattern  = regexp.MustCompile(`^(\d{2}/\d{2}/\d{4})(?:\s+(.*?))?\s+([\d.,]+)\s+(CR|DR)\s+([\d.,]+)(?:\s+(.+))?$`)
	pnbDatePrefix  = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}`)
	pnbFooterMarks = []string{"***Generated through PNB ONE***", "●"}
)

func (e *PNBExtractor) Name() string { return "PNB" }

func (e *PNBExtractor) Identify(text string) bool {
	return strings.Contains(text, "***Generated through PNB ONE***") ||
		strings.Contains(text, "PUNB0") ||
		strings.Contains(text, "PNB ONE")
}

func (e *PNBExtractor) Extract(text string) []models.Transaction {
	var transactions []models.Transaction

	var pending *models.Transaction
	var remarks []string

	flush := func() {
		if pending == nil {
			return
		}
		pending.Payee = strings.TrimSpace(strings.Join(remarks, " "))
		if pending.Payee == "" {
			pending.Payee = models.PayeeUnknown
		}
		if pending.Amount > 0 {
			transactions = append(transactions, *pending)
		}
		pending = nil
		remarks = nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if m := pnbRowPattern.FindStringSubmatch(line); m != nil {
			flush()
			txnType := models.Income
			if strings.EqualFold(m[4], "DR") {
				txnType = models.Expense
			}
			pending = &models.Transaction{
				Date:        normalizeDate(m[1]),
				Category:    models.CategoryUncategorized,
				Amount:      parseAmount(m[3]),
				Type:        txnType,
				Status:      models.StatusCompleted,
				Source:      e.Name(),
				RawEvidence: line,
			}
			if r := strings.TrimSpace(m[6]); r != "" {
				remarks = append(remarks, r)
			}
			continue
		}

		if pending == nil {
			continue
		}
		if isPNBFooter(line) {
			flush()
			continue
		}
		if !pnbDatePrefix.MatchString(line) && !strings.Contains(line, "Amount(INR)") {
			remarks = append(remarks, line)
			pending.RawEvidence += "\n" + line
		}
	}

	flush()
	return transactions
}

func isPNBFooter(line string) bool {
	if strings.HasPrefix(line, "Date:") {
		return true
	}
	for _, mark := range pnbFooterMarks {
		if strings.Contains(line, mark) {
			return true
		}
	}
	return false
}
