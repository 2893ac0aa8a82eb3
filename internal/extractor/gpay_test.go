package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestGPayExtractor(t *testing.T) {
	e := &GPayExtractor{}

	text := `Google Pay
Transaction history
02 Dec, 2025  Paid to Akhil Sharma  ₹200
11:35 AM  UPI Transaction ID: 114999892784
Paid by HDFC Bank 4230
03 Dec, 2025  Received from Priya K  ₹1,500
09:10 AM  UPI Transaction ID: 115000011223
Paid to HDFC Bank 4230`

	txns := e.Extract(text)
	require.Len(t, txns, 2)

	assert.Equal(t, "114999892784", txns[0].ID)
	assert.Equal(t, "2025-12-02", txns[0].Date)
	assert.Equal(t, "Akhil Sharma", txns[0].Payee)
	assert.Equal(t, 200.00, txns[0].Amount)
	assert.Equal(t, models.Expense, txns[0].Type)
	assert.Equal(t, "GPay", txns[0].Source)

	assert.Equal(t, "Priya K", txns[1].Payee)
	assert.Equal(t, 1500.00, txns[1].Amount)
	assert.Equal(t, models.Income, txns[1].Type)
}

func TestGPayExtractorIgnoresIncompleteBlocks(t *testing.T) {
	e := &GPayExtractor{}

	// No payment-method closing line, so the block never completes.
	text := `02 Dec, 2025  Paid to Akhil Sharma  ₹200
11:35 AM  something else entirely`
	assert.Empty(t, e.Extract(text))
}
