package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// ICICIExtractor handles the ICICI account narrative where the transaction
// table is one bounded section of a longer document. The section is isolated
// by its column header and a footer anchor, then each row is read by
// counting its trailing amounts: one means balance-only (skipped), two means
// one movement plus balance with the direction inferred from the narration,
// three means deposits, withdrawals, balance in column order.
type ICICIExtractor struct{}

var (
	iciciSectionPattern = regexp.MustCompile(
		`(?is)DATE\s+MODE\s+PARTICULARS\s+DEPOSITS\s+WITHDRAWALS\s+BALANCE(.*?)` +
			`(?:Total:|Statement of Linked Fixed Deposits|Page \d+ of \d+|$)`)
	iciciDatePattern   = regexp.MustCompile(`^(\d{2}[-/]\d{2}[-/]\d{4})`)
	iciciAmountPattern = regexp.MustCompile(`\d{1,3}(?:,\d{2,3})*\.\d{2}`)
	// Single-word modes first: "CREDIT CARD ATD ..." splits as mode CREDIT.
	iciciModePattern = regexp.MustCompile(
		`(?i)^(B/F|CREDIT|DEBIT|NEFT|RTGS|UPI|IMPS|ATM|CHEQUE|CARD|SWEEP|CLOSURE|AUTO DEBIT|AUTO CREDIT)`)
)

// Narration keywords that force the single movement of a two-amount row to
// the withdrawals column.
var iciciDebitKeywords = []string{"debit", "withdrawal", "payment", "card atd", "auto debit"}

func (e *ICICIExtractor) Name() string { return "ICICI Bank" }

func (e *ICICIExtractor) Identify(text string) bool {
	return strings.Contains(text, "ICICI Bank") || strings.Contains(text, "ICICI BANK")
}

func (e *ICICIExtractor) Extract(text string) []models.Transaction {
	section := iciciSectionPattern.FindStringSubmatch(text)
	if section == nil {
		return nil
	}

	var transactions []models.Transaction
	for _, line := range strings.Split(section[1], "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		upper := strings.ToUpper(trimmed)
		if strings.Contains(upper, "DATE MODE") || strings.HasPrefix(upper, "TOTAL") {
			continue
		}

		dateMatch := iciciDatePattern.FindStringSubmatch(trimmed)
		if dateMatch == nil {
			continue
		}
		date := dateMatch[1]

		amountLocs := iciciAmountPattern.FindAllStringIndex(trimmed, -1)
		if len(amountLocs) == 0 {
			continue
		}

		modeParticulars := strings.TrimSpace(trimmed[len(date):amountLocs[0][0]])
		if modeParticulars == "" {
			continue
		}
		upperMP := strings.ToUpper(modeParticulars)
		if strings.Contains(upperMP, "DATE") || strings.Contains(upperMP, "MODE") ||
			strings.Contains(upperMP, "PARTICULARS") {
			continue
		}

		var deposits, withdrawals float64
		switch len(amountLocs) {
		case 3:
			deposits = parseAmount(trimmed[amountLocs[0][0]:amountLocs[0][1]])
			withdrawals = parseAmount(trimmed[amountLocs[1][0]:amountLocs[1][1]])
		case 2:
			first := parseAmount(trimmed[amountLocs[0][0]:amountLocs[0][1]])
			if containsAnyFold(modeParticulars, iciciDebitKeywords) {
				withdrawals = first
			} else {
				deposits = first
			}
		default:
			// Balance only (B/F rows), nothing moved.
			continue
		}

		amount := deposits
		txnType := models.Income
		if withdrawals > 0 && deposits == 0 {
			amount = withdrawals
			txnType = models.Expense
		}
		if amount == 0 {
			continue
		}

		_, particulars := splitModeParticulars(modeParticulars)
		payee := particulars
		if payee == "" {
			payee = modeParticulars
		}

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

// splitModeParticulars separates the transaction mode from the narration.
// Account-number-prefixed narrations use a colon; otherwise a known mode
// prefix is peeled off, and failing both the first whitespace token is
// treated as the mode.
func splitModeParticulars(s string) (mode, particulars string) {
	if idx := strings.Index(s, ":"); idx >= 0 {
		return strings.TrimSpace(s[:idx]), strings.TrimSpace(s[idx+1:])
	}
	if m := iciciModePattern.FindStringSubmatch(s); m != nil {
		return strings.TrimSpace(m[1]), strings.TrimSpace(s[len(m[0]):])
	}
	parts := strings.Fields(s)
	if len(parts) > 1 {
		return parts[0], strings.Join(parts[1:], " ")
	}
	return s, ""
}

func containsAnyFold(s string, keywords []string) bool {
	lower := strings.ToLower(s)
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
