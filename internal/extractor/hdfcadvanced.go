package extractor

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// HDFCAdvancedExtractor handles the full HDFC savings statement where a
// narration wraps across several physical lines before the numeric tail
// appears. A line starting with a date opens a transaction; following lines
// accumulate until the next date-opening line. Labeled fields ("Value Dt",
// "Ref") are pulled out of the accumulated text wherever they turn up: on a
// shared line, alone on the next line, or not at all.
type HDFCAdvancedExtractor struct{}

var (
	hdfcOpeningPattern = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})\s+(.+)$`)
	hdfcDatePrefix     = regexp.MustCompile(`^\d{2}/\d{2}/\d{2,4}\s+`)
	hdfcLeadingDate    = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})`)
	hdfcBareDate       = regexp.MustCompile(`^(\d{2}/\d{2}/\d{2,4})$`)
	hdfcTrailingDate   = regexp.MustCompile(`\s+(\d{2}/\d{2}/\d{2,4})$`)

	// Up to three amounts at the end of a line: withdrawal, deposit, balance.
	hdfcTrailingAmounts = regexp.MustCompile(`\s+((?:[\d,.-]+\.\d{2}\s*){1,3})$`)

	hdfcValueDtInline = regexp.MustCompile(`(?i)Value\s+Dt\s+(\d{2}/\d{2}/\d{2,4})`)
	hdfcValueDtBare   = regexp.MustCompile(`(?i)Value\s+Dt\s*$`)
	hdfcRefInline     = regexp.MustCompile(`(?i)Ref\s+([A-Z0-9]+)`)
	hdfcRefBare       = regexp.MustCompile(`(?i)Ref\s*$`)
	hdfcRefCandidate  = regexp.MustCompile(`^[A-Z0-9]{8,20}$`)
	hdfcNumericRef    = regexp.MustCompile(`(?:\s|^)(\d{10,16})(?:\s|$)`)
	hdfcAlphaRef      = regexp.MustCompile(`^([A-Z][A-Z0-9]{10,20})$`)

	hdfcTableNoise = regexp.MustCompile(
		`(?i)Txn\s+Date|Narration|Withdrawals|Deposits|Closing\s+Balance|Opening\s+Balance|Limit`)
	hdfcMetaNoise = regexp.MustCompile(
		`(?i)Customer\s+ID|Account\s+Branch|Account\s+Type|Statement\s+From|Joint\s+Holders|Nomination|RTGS/NEFT\s+IFSC|MICR|HDFC\s+BANK\s+LIMITED|Registered\s+Office|^Page\s+\d+\s+of\s+\d+$`)

	whitespaceRun = regexp.MustCompile(`\s+`)
)

func (e *HDFCAdvancedExtractor) Name() string { return "HDFC Bank" }

func (e *HDFCAdvancedExtractor) Identify(text string) bool {
	return strings.Contains(text, "HDFC BANK") || strings.Contains(text, "HDFC Bank")
}

func (e *HDFCAdvancedExtractor) Extract(text string) []models.Transaction {
	lines := strings.Split(text, "\n")
	var transactions []models.Transaction
	var prevBalance float64

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if line == "" || hdfcMetaNoise.MatchString(line) {
			i++
			continue
		}

		m := hdfcOpeningPattern.FindStringSubmatch(line)
		if m == nil {
			i++
			continue
		}
		date := m[1]
		txnLines := []string{strings.TrimSpace(m[2])}
		rawLines := []string{line}
		i++

		for i < len(lines) {
			next := strings.TrimSpace(lines[i])
			if next == "" {
				i++
				continue
			}
			if hdfcDatePrefix.MatchString(next) {
				break
			}
			if hdfcTableNoise.MatchString(next) || hdfcMetaNoise.MatchString(next) {
				i++
				continue
			}
			txnLines = append(txnLines, next)
			rawLines = append(rawLines, next)
			i++
		}

		if txn, ok := e.buildTransaction(date, txnLines, rawLines, &prevBalance); ok {
			transactions = append(transactions, txn)
		}
	}

	sort.SliceStable(transactions, func(a, b int) bool {
		return transactions[a].Date < transactions[b].Date
	})
	return transactions
}

// buildTransaction resolves the accumulated lines of one transaction into
// amounts, reference metadata and narration. prevBalance tracks the closing
// balance of the previous row in document order; it feeds the two-amount
// disambiguation and is updated even when the row itself is dropped.
func (e *HDFCAdvancedExtractor) buildTransaction(date string, txnLines, rawLines []string, prevBalance *float64) (models.Transaction, bool) {
	var withdrawal, deposit, closing string
	var refNo, valueDate string
	var narrationParts []string

	for j := 0; j < len(txnLines); j++ {
		current := strings.TrimSpace(txnLines[j])
		if current == "" {
			continue
		}

		if am := hdfcTrailingAmounts.FindStringSubmatch(current); am != nil {
			amounts := strings.Fields(am[1])
			current = strings.TrimSpace(strings.TrimSuffix(current, am[0]))
			switch len(amounts) {
			case 3:
				withdrawal, deposit, closing = amounts[0], amounts[1], amounts[2]
			case 2:
				withdrawal, closing = amounts[0], amounts[1]
			case 1:
				closing = amounts[0]
			}
		}

		if vm := hdfcValueDtInline.FindStringSubmatch(current); vm != nil {
			valueDate = vm[1]
			current = strings.TrimSpace(strings.Replace(current, vm[0], "", 1))
		} else if hdfcValueDtBare.MatchString(current) && j+1 < len(txnLines) {
			next := strings.TrimSpace(txnLines[j+1])
			if dm := hdfcLeadingDate.FindStringSubmatch(next); dm != nil {
				valueDate = dm[1]
				txnLines[j+1] = strings.TrimSpace(strings.TrimPrefix(next, dm[0]))
				current = strings.TrimSpace(hdfcValueDtBare.ReplaceAllString(current, ""))
			}
		}

		if rm := hdfcRefInline.FindStringSubmatch(current); rm != nil {
			refNo = rm[1]
			current = strings.TrimSpace(strings.Replace(current, rm[0], "", 1))
		} else if hdfcRefBare.MatchString(current) && j+1 < len(txnLines) {
			candidate := strings.TrimSpace(txnLines[j+1])
			if candidate != "" && hdfcRefCandidate.MatchString(candidate) {
				refNo = candidate
				txnLines[j+1] = ""
				current = strings.TrimSpace(hdfcRefBare.ReplaceAllString(current, ""))
			}
		}

		if valueDate == "" {
			if vm := hdfcTrailingDate.FindStringSubmatch(current); vm != nil {
				valueDate = vm[1]
				current = strings.TrimSpace(strings.TrimSuffix(current, vm[0]))
			} else if j+1 < len(txnLines) {
				// A line holding nothing but a date is the value date.
				if dm := hdfcBareDate.FindStringSubmatch(strings.TrimSpace(txnLines[j+1])); dm != nil {
					valueDate = dm[1]
					txnLines[j+1] = ""
				}
			}
		}

		if refNo == "" {
			// Boundary-anchored so hyphenated narration tokens (IFSC codes,
			// UPI handles) don't give up their digits.
			if loc := hdfcNumericRef.FindStringSubmatchIndex(current); loc != nil {
				refNo = current[loc[2]:loc[3]]
				current = strings.TrimSpace(current[:loc[0]] + " " + current[loc[1]:])
			} else if am := hdfcAlphaRef.FindStringSubmatch(current); am != nil && j > 0 {
				refNo = am[1]
				current = ""
			}
		}

		if current != "" {
			narrationParts = append(narrationParts, current)
		}
	}

	narration := strings.TrimSpace(whitespaceRun.ReplaceAllString(strings.Join(narrationParts, " "), " "))

	// Two trailing amounts leave the first one positionally ambiguous.
	if withdrawal != "" && deposit == "" && closing != "" {
		if classifyTwoAmounts(narration, parseAmount(closing), *prevBalance) == models.Income {
			deposit, withdrawal = withdrawal, ""
		}
	}

	withdrawalAmt := parseAmount(withdrawal)
	depositAmt := parseAmount(deposit)
	closingAmt := parseAmount(closing)
	if closingAmt > 0 {
		*prevBalance = closingAmt
	}

	amount := depositAmt
	txnType := models.Income
	if withdrawalAmt > 0 {
		amount = withdrawalAmt
		txnType = models.Expense
	}
	if amount == 0 {
		return models.Transaction{}, false
	}

	if narration == "" {
		narration = models.PayeeUnknown
	}

	return models.Transaction{
		Date:        normalizeDate(date),
		Payee:       narration,
		Category:    models.CategoryUncategorized,
		Amount:      amount,
		Type:        txnType,
		Status:      models.StatusCompleted,
		Source:      e.Name(),
		RawEvidence: strings.Join(rawLines, "\n"),
	}, true
}
