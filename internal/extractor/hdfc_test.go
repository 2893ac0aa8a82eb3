package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestHDFCExtractor(t *testing.T) {
	e := &HDFCExtractor{}

	text := `HDFC BANK Account Statement
Date Narration Chq./Ref.No. Value Dt Withdrawal Amt. Deposit Amt. Closing Balance
01/10/23 UPI-ZOMATO-1234 100123456789 01/10/23 299.00 0.00 5230.50
03/10/23 NEFT-SALARY-OCT 100123456790 03/10/23 0.00 50,000.00 55,230.50
05/10/23 BALANCE-ONLY-ROW 100123456791 05/10/23 0.00 0.00 55,230.50
07/10/23 MALFORMED-BOTH-SET 100123456792 07/10/23 10.00 20.00 55,240.50`

	txns := e.Extract(text)
	require.Len(t, txns, 2)

	assert.Equal(t, "2023-10-01", txns[0].Date)
	assert.Equal(t, "UPI-ZOMATO-1234", txns[0].Payee)
	assert.Equal(t, 299.00, txns[0].Amount)
	assert.Equal(t, models.Expense, txns[0].Type)
	assert.Equal(t, models.CategoryUncategorized, txns[0].Category)
	assert.Equal(t, models.StatusCompleted, txns[0].Status)
	assert.Equal(t, "HDFC Bank", txns[0].Source)

	assert.Equal(t, "2023-10-03", txns[1].Date)
	assert.Equal(t, 50000.00, txns[1].Amount)
	assert.Equal(t, models.Income, txns[1].Type)
}

func TestHDFCExtractorIdentify(t *testing.T) {
	e := &HDFCExtractor{}
	assert.True(t, e.Identify("HDFC BANK LIMITED statement"))
	assert.True(t, e.Identify("HDFC Bank statement"))
	assert.False(t, e.Identify("ICICI Bank statement"))
}
