package extractor

import (
	"regexp"
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// PhonePeExtractor handles PhonePe wallet statements. One logical
// transaction is a block of lines bounded by two consecutive date-opening
// lines (month-name dates) and containing a payment-method terminator
// ("Paid by" / "Debited from" / "Credited to"). Direction comes from the
// DEBIT/CREDIT keyword; the payee is recovered through a cascade of
// fallbacks because real exports disagree about where the name lands.
type PhonePeExtractor struct{}

const monthAlternation = `Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sept|Sep|Oct|Nov|Dec`

var (
	phonepePageHeader = regexp.MustCompile(
		`(?i)Page \d+ of \d+\s+This is a system generated statement\. For any queries,? ` +
			`contact us at https://support\.phonepe\.com/statement\.\s+Date\s+Transaction Details\s+Type\s+Amount`)
	phonepeDocHeader    = regexp.MustCompile(`(?i)Transaction Statement for.*`)
	phonepeDateRange    = regexp.MustCompile(`(?i)(?:` + monthAlternation + `)\s+\d{1,2},\s+\d{4}\s*-\s*(?:` + monthAlternation + `)\s+\d{1,2},\s+\d{4}`)
	phonepeColumnHeader = regexp.MustCompile(`(?i)Date\s+Transaction Details\s+Type\s+Amount`)

	phonepeDateAnchor = regexp.MustCompile(`(?i)(` + monthAlternation + `) \d{1,2}, \d{4}`)
	phonepeTerminator = regexp.MustCompile(`(?i)Paid by|Debited from|Credited to`)
	phonepeTime       = regexp.MustCompile(`(?i)\d{2}:\d{2}\s*(?:AM|PM)`)
	phonepeCredit     = regexp.MustCompile(`(?i)CREDIT`)

	// Amount follows a currency or direction marker, possibly across lines.
	phonepeAmount = regexp.MustCompile(`(?is)(?:INR|₹|DEBIT|CREDIT)[^\d]*?([\d,]+(?:\.\d+)?)`)

	phonepeMarkerPrefix  = regexp.MustCompile(`(?i)^(?:Paid to|Payment to|Received from|Paid -)\s+`)
	phonepeMarkerExact   = regexp.MustCompile(`(?i)^(?:Paid to|Payment to|Received from|Paid -)$`)
	phonepeKeywordSpaced = regexp.MustCompile(`(?i)\s+(?:Debit|Credit|INR|₹)`)
	phonepeKeywordLoose  = regexp.MustCompile(`(?i)(?:Debit|Credit|INR|₹|\n)`)
	phonepeKeywordLead   = regexp.MustCompile(`(?i)^(?:Debit|Credit|INR|₹)`)
	phonepeKeywordTail   = regexp.MustCompile(`(?i)\s+(?:Debit|Credit|INR|₹).*$`)
	phonepeNumericOnly   = regexp.MustCompile(`^[\d,.]+$`)
	phonepeTimeOrID      = regexp.MustCompile(`(?i)^(\d{2}:\d{2}|Transaction ID)`)
	phonepeTimeLead      = regexp.MustCompile(`^\d{2}:\d{2}`)
	phonepeNoiseLead     = regexp.MustCompile(`(?i)^(?:Debit|Credit|INR|₹|Page \d+)`)
	phonepeMonthLead     = regexp.MustCompile(`(?i)^(?:` + monthAlternation + `)`)
	phonepeBadPayee      = regexp.MustCompile(`(?i)^(?:Debit|Credit|Unknown|)$`)
	phonepeTxnID         = regexp.MustCompile(`(?i)Transaction ID\s*:?\s*([A-Z0-9]+)`)
)

func (e *PhonePeExtractor) Name() string { return "PhonePe" }

func (e *PhonePeExtractor) Identify(text string) bool {
	return strings.Contains(text, "PhonePe") && strings.Contains(text, "Transaction Details")
}

func (e *PhonePeExtractor) Extract(text string) []models.Transaction {
	text = phonepePageHeader.ReplaceAllString(text, "")
	text = phonepeDocHeader.ReplaceAllString(text, "")
	text = phonepeDateRange.ReplaceAllString(text, "")
	text = phonepeColumnHeader.ReplaceAllString(text, "")

	anchors := phonepeDateAnchor.FindAllStringIndex(text, -1)
	var transactions []models.Transaction

	for i, anchor := range anchors {
		end := len(text)
		if i+1 < len(anchors) {
			end = anchors[i+1][0]
		}
		rawBlock := text[anchor[0]:end]
		if !phonepeTerminator.MatchString(rawBlock) {
			continue
		}

		// Strip time-of-day tokens so they can't be mistaken for amounts
		// or payee text later on.
		block := phonepeTime.ReplaceAllString(rawBlock, "")

		dateStr := phonepeDateAnchor.FindString(block)
		if dateStr == "" {
			continue
		}

		txnType := models.Expense
		if phonepeCredit.MatchString(block) {
			txnType = models.Income
		}

		am := phonepeAmount.FindStringSubmatch(block)
		if am == nil {
			continue
		}
		amount := parseAmount(am[1])
		if amount == 0 {
			continue
		}

		payee := extractPhonePePayee(block, dateStr)

		var id string
		if m := phonepeTxnID.FindStringSubmatch(block); m != nil {
			id = m[1]
		}

		transactions = append(transactions, models.Transaction{
			ID:          id,
			Date:        normalizeDate(dateStr),
			Payee:       payee,
			Category:    models.CategoryUncategorized,
			Amount:      amount,
			Type:        txnType,
			Status:      models.StatusCompleted,
			Source:      e.Name(),
			RawEvidence: rawBlock,
		})
	}
	return transactions
}

// extractPhonePePayee runs the fallback cascade over one time-stripped
// block. Best effort: a malformed block yields the Unknown sentinel, never
// an error.
func extractPhonePePayee(block, dateStr string) string {
	var lines []string
	for _, l := range strings.Split(block, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}

	payee := ""

	// 1: "Paid to <name>" with the name terminated by a direction or
	// currency keyword (or end of line).
	// 2: the marker alone on its own line, name on the following line.
	for i, line := range lines {
		if m := phonepeMarkerPrefix.FindString(line); m != "" {
			rest := line[len(m):]
			if loc := phonepeKeywordSpaced.FindStringIndex(rest); loc != nil {
				rest = rest[:loc[0]]
			}
			if rest = strings.TrimSpace(rest); rest != "" {
				payee = rest
				break
			}
		}
		if phonepeMarkerExact.MatchString(line) && i+1 < len(lines) {
			next := lines[i+1]
			if !phonepeTimeOrID.MatchString(next) {
				payee = strings.TrimSpace(phonepeKeywordLead.ReplaceAllString(next, ""))
				break
			}
		}
	}

	// 3: the text between the date and the first keyword on the opening
	// line.
	if payee == "" {
		if idx := strings.Index(block, dateStr); idx >= 0 {
			rest := block[idx+len(dateStr):]
			if loc := phonepeKeywordLoose.FindStringIndex(rest); loc != nil {
				rest = rest[:loc[0]]
			}
			candidate := strings.TrimSpace(phonepeMarkerPrefix.ReplaceAllString(strings.TrimSpace(rest), ""))
			if candidate != "" && !phonepeNumericOnly.MatchString(candidate) {
				payee = candidate
			}
		}
	}

	// 4: the line just before the transaction-id line, skipping times and
	// bare numbers.
	if payee == "" || phonepeBadPayee.MatchString(payee) {
		txIdx := -1
		for i, l := range lines {
			if strings.HasPrefix(strings.ToLower(l), "transaction id") {
				txIdx = i
				break
			}
		}
		if txIdx > 1 {
			target := txIdx - 1
			if phonepeTimeLead.MatchString(lines[target]) {
				target--
			}
			for target > 0 && phonepeNumericOnly.MatchString(lines[target]) {
				target--
			}
			if target > 0 {
				line := lines[target]
				if !phonepeNoiseLead.MatchString(line) && !phonepeMonthLead.MatchString(line) {
					candidate := strings.TrimSpace(phonepeMarkerPrefix.ReplaceAllString(line, ""))
					candidate = strings.TrimSpace(phonepeKeywordTail.ReplaceAllString(candidate, ""))
					if candidate != "" && !phonepeNumericOnly.MatchString(candidate) {
						payee = candidate
					}
				}
			}
		}
	}

	if phonepeBadPayee.MatchString(payee) || phonepeNumericOnly.MatchString(payee) || phonepeMonthLead.MatchString(payee) {
		return models.PayeeUnknown
	}
	return payee
}
