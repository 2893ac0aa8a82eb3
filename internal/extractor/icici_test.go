package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestICICIExtractor(t *testing.T) {
	e := &ICICIExtractor{}

	text := `ICICI Bank Limited
Statement of Account
DATE MODE PARTICULARS DEPOSITS WITHDRAWALS BALANCE
01-04-2024 UPI UPI/PAY/405633/Swiggy 0.00 450.00 12,550.00
03-04-2024 NEFT SALARY APRIL 50,000.00 0.00 62,550.00
05-04-2024 B/F 62,550.00
07-04-2024 CREDIT CARD ATD/Auto Debit CC0xx2516 1,200.00 61,350.00
Total: 50,000.00 1,650.00
Statement of Linked Fixed Deposits`

	txns := e.Extract(text)
	require.Len(t, txns, 3)

	// Three amounts: deposits, withdrawals, balance in column order.
	assert.Equal(t, "2024-04-01", txns[0].Date)
	assert.Equal(t, "UPI/PAY/405633/Swiggy", txns[0].Payee)
	assert.Equal(t, 450.00, txns[0].Amount)
	assert.Equal(t, models.Expense, txns[0].Type)

	assert.Equal(t, "SALARY APRIL", txns[1].Payee)
	assert.Equal(t, 50000.00, txns[1].Amount)
	assert.Equal(t, models.Income, txns[1].Type)

	// Two amounts with a debit keyword in the narration; the mode prefix is
	// peeled off the payee.
	assert.Equal(t, "CARD ATD/Auto Debit CC0xx2516", txns[2].Payee)
	assert.Equal(t, 1200.00, txns[2].Amount)
	assert.Equal(t, models.Expense, txns[2].Type)
	assert.Equal(t, "ICICI Bank", txns[2].Source)
}

func TestICICIExtractorNoSection(t *testing.T) {
	e := &ICICIExtractor{}
	assert.Empty(t, e.Extract("ICICI Bank welcome letter with no transaction table"))
}

func TestICICIExtractorTwoAmountsDefaultsToDeposit(t *testing.T) {
	e := &ICICIExtractor{}

	text := `DATE MODE PARTICULARS DEPOSITS WITHDRAWALS BALANCE
02-04-2024 NEFT REFUND TRAVEL PORTAL 2,500.00 15,050.00
Total:`

	txns := e.Extract(text)
	require.Len(t, txns, 1)
	assert.Equal(t, models.Income, txns[0].Type)
	assert.Equal(t, 2500.00, txns[0].Amount)
}

func TestSplitModeParticulars(t *testing.T) {
	mode, particulars := splitModeParticulars("NEFT SALARY APRIL")
	assert.Equal(t, "NEFT", mode)
	assert.Equal(t, "SALARY APRIL", particulars)

	// Colon form used for account-prefixed narrations.
	mode, particulars = splitModeParticulars("MMT/IMPS: REFUND FLIGHT")
	assert.Equal(t, "MMT/IMPS", mode)
	assert.Equal(t, "REFUND FLIGHT", particulars)

	// Unknown mode falls back to the first token.
	mode, particulars = splitModeParticulars("XYZ SOMETHING ELSE")
	assert.Equal(t, "XYZ", mode)
	assert.Equal(t, "SOMETHING ELSE", particulars)
}
