package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestPNBExtractor(t *testing.T) {
	e := &PNBExtractor{}

	text := `Punjab National Bank
Date Instrument ID Amount(INR) Type Balance Remarks
06/01/2026 0.89 DR 60142.63 SMS CHRG FOR:01-10-2025
to31-12-2025
07/01/2026 1,200.00 CR 61341.74 NEFT-AXIS-REFUND
***Generated through PNB ONE***`

	txns := e.Extract(text)
	require.Len(t, txns, 2)

	// Remark continues on the undated line after the row.
	assert.Equal(t, "2026-01-06", txns[0].Date)
	assert.Equal(t, "SMS CHRG FOR:01-10-2025 to31-12-2025", txns[0].Payee)
	assert.Equal(t, 0.89, txns[0].Amount)
	assert.Equal(t, models.Expense, txns[0].Type)
	assert.Equal(t, "PNB", txns[0].Source)

	assert.Equal(t, "NEFT-AXIS-REFUND", txns[1].Payee)
	assert.Equal(t, 1200.00, txns[1].Amount)
	assert.Equal(t, models.Income, txns[1].Type)
}

func TestPNBExtractorNoRemarks(t *testing.T) {
	e := &PNBExtractor{}

	text := `05/01/2026 500.00 DR 60143.52
***Generated through PNB ONE***`

	txns := e.Extract(text)
	require.Len(t, txns, 1)
	assert.Equal(t, models.PayeeUnknown, txns[0].Payee)
}

func TestPNBExtractorDropsZeroAmountRows(t *testing.T) {
	e := &PNBExtractor{}

	text := `05/01/2026 0.00 DR 60143.52 ZERO FEE ROW`
	assert.Empty(t, e.Extract(text))
}

func TestPNBExtractorIdentify(t *testing.T) {
	e := &PNBExtractor{}
	assert.True(t, e.Identify("statement ***Generated through PNB ONE*** footer"))
	assert.True(t, e.Identify("IFSC PUNB0123456"))
	assert.False(t, e.Identify("HDFC BANK statement"))
}
