package extractor

import (
	"strings"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// creditNarrationKeywords mark a two-amount row as a deposit regardless of
// column position. Matching is case-insensitive over the full narration.
var creditNarrationKeywords = []string{
	"interest",
	"credit",
	"deposit",
	"neft cr",
	"ach c-",
}

func isCreditNarration(narration string) bool {
	lower := strings.ToLower(narration)
	for _, kw := range creditNarrationKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classifyTwoAmounts decides the direction of a row that carries exactly two
// trailing amounts (one movement plus the closing balance), where column
// position alone cannot tell deposit from withdrawal. Narration keywords win;
// failing that, a closing balance strictly above the previous transaction's
// closing balance means money came in. prevBalance <= 0 means no prior
// balance is known and the fallback is skipped. Rows with all three columns
// present never come through here.
func classifyTwoAmounts(narration string, newBalance, prevBalance float64) models.TxnType {
	if isCreditNarration(narration) {
		return models.Income
	}
	if prevBalance > 0 && newBalance > prevBalance {
		return models.Income
	}
	return models.Expense
}
