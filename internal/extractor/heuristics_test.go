package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestClassifyTwoAmountsKeywords(t *testing.T) {
	// Any credit keyword wins regardless of what the balances say.
	narrations := []string{
		"INTEREST PAID TILL 30-09",
		"NEFT CR-AXIS BANK-JOHN",
		"CASH DEPOSIT BRANCH",
		"ACH C-LIC DIVIDEND",
		"REVERSAL CREDIT UPI",
	}
	for _, n := range narrations {
		assert.Equal(t, models.Income, classifyTwoAmounts(n, 100, 5000), "narration %q", n)
	}
}

func TestClassifyTwoAmountsBalanceDelta(t *testing.T) {
	// Rising balance means money came in, falling means it went out.
	assert.Equal(t, models.Income, classifyTwoAmounts("UPI-SOMEONE", 5500, 5000))
	assert.Equal(t, models.Expense, classifyTwoAmounts("UPI-SOMEONE", 4500, 5000))
	assert.Equal(t, models.Expense, classifyTwoAmounts("UPI-SOMEONE", 5000, 5000))
}

func TestClassifyTwoAmountsNoPriorBalance(t *testing.T) {
	// Without a known previous balance the fallback is skipped and the row
	// defaults to an expense.
	assert.Equal(t, models.Expense, classifyTwoAmounts("UPI-SOMEONE", 5500, 0))
}
