package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestRegistryExplicitKeyWins(t *testing.T) {
	r := NewRegistry()

	// The text identifies as HDFC but the caller knows better.
	e := r.Select("HDFC BANK statement", "sbi")
	assert.Equal(t, "SBI", e.Name())
}

func TestRegistryUnknownKeyFallsBackToDetection(t *testing.T) {
	r := NewRegistry()

	e := r.Select("HDFC BANK statement", "no-such-key")
	assert.Equal(t, "HDFC Bank", e.Name())
}

func TestRegistryIdentifyOrder(t *testing.T) {
	r := NewRegistry()

	// Credit card statements carry the HDFC name too; the credit-card
	// layout must be checked first.
	e := r.Select("HDFC BANK Credit Card Domestic Transactions", "")
	assert.Equal(t, "HDFC Credit Card", e.Name())

	e = r.Select("HDFC BANK savings statement", "")
	assert.Equal(t, "HDFC Bank", e.Name())

	e = r.Select("PhonePe Transaction Details", "")
	assert.Equal(t, "PhonePe", e.Name())
}

func TestRegistryGenericFallback(t *testing.T) {
	r := NewRegistry()

	e := r.Select("Some Cooperative Bank nobody has heard of", "")
	assert.Equal(t, "Generic", e.Name())
}

func TestRegistryKeys(t *testing.T) {
	r := NewRegistry()
	keys := r.Keys()

	assert.Contains(t, keys, "hdfc")
	assert.Contains(t, keys, "hdfc-simple")
	assert.Contains(t, keys, "hdfc-credit-card")
	assert.Contains(t, keys, "icici")
	assert.Contains(t, keys, "sbi")
	assert.Contains(t, keys, "phonepe")
	assert.Contains(t, keys, "gpay")
	assert.Contains(t, keys, "pnb")
	assert.Contains(t, keys, "generic")
	assert.IsIncreasing(t, keys)
}

func TestGenericExtractor(t *testing.T) {
	e := &GenericExtractor{}

	text := `Some Cooperative Bank
01-04-2024 GROCERY MART 450.00 DR
02-04-2024 INWARD REMITTANCE 1200.50 CR
03-04-2024 ZERO NOISE ROW 0.00 DR`

	txns := e.Extract(text)
	require.Len(t, txns, 2)

	assert.Equal(t, "2024-04-01", txns[0].Date)
	assert.Equal(t, "GROCERY MART", txns[0].Payee)
	assert.Equal(t, 450.00, txns[0].Amount)
	assert.Equal(t, models.Expense, txns[0].Type)

	assert.Equal(t, models.Income, txns[1].Type)
	assert.Equal(t, 1200.50, txns[1].Amount)
}
