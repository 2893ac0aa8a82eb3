package api

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerlens/statement-importer/internal/models"
)

func TestHealthEndpoint(t *testing.T) {
	app := NewApp()

	req := httptest.NewRequest("GET", "/api/health", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result map[string]string
	require.NoError(t, json.Unmarshal(body, &result))

	assert.Equal(t, "ok", result["status"])
	assert.Equal(t, "fiber", result["engine"])
}

func TestConvertEndpointRequiresFile(t *testing.T) {
	app := NewApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestConvertEndpointWithExtractedText(t *testing.T) {
	app := NewApp()

	statement := `Google Pay
02 Dec, 2025  Paid to Akhil Sharma  ₹200
11:35 AM  UPI Transaction ID: 114999892784
Paid by Axis Bank 4230`

	existing := `[{"date":"2025-12-02","amount":200,"type":"expense","payee":"Akhil Sharma"}]`

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("extractedText", statement))
	require.NoError(t, form.WriteField("existing", existing))
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))

	assert.True(t, result.Success)
	assert.Equal(t, "GPay", result.Source)
	require.Equal(t, 1, result.Count)

	txn := result.Transactions[0]
	assert.Equal(t, "2025-12-02", txn.Date)
	assert.Equal(t, "Akhil Sharma", txn.Payee)
	assert.Equal(t, 200.00, txn.Amount)
	assert.Equal(t, models.Expense, txn.Type)
	assert.NotEmpty(t, txn.ID)

	// Already booked in the existing ledger, so the row is deselected.
	assert.True(t, txn.ExactMatch)
	assert.False(t, txn.Selected)

	assert.Equal(t, 200.00, result.TotalExpense)
	assert.Equal(t, 0.00, result.TotalIncome)
	assert.NotEmpty(t, result.CSV)
}

func TestConvertEndpointExplicitSource(t *testing.T) {
	app := NewApp()

	// Text that would auto-detect as HDFC, forced through the generic
	// extractor instead.
	statement := `HDFC BANK
01-04-2024 GROCERY MART 450.00 DR`

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("extractedText", statement))
	require.NoError(t, form.WriteField("source", "generic"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var result ConvertResponse
	require.NoError(t, json.Unmarshal(body, &result))

	assert.Equal(t, "Generic", result.Source)
	require.Equal(t, 1, result.Count)
	assert.Equal(t, "GROCERY MART", result.Transactions[0].Payee)
}

func TestConvertEndpointRejectsNonPDF(t *testing.T) {
	app := NewApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	part, err := form.CreateFormFile("file", "statement.txt")
	require.NoError(t, err)
	_, err = part.Write([]byte("not a pdf"))
	require.NoError(t, err)
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestConvertEndpointInvalidExistingLedger(t *testing.T) {
	app := NewApp()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	require.NoError(t, form.WriteField("extractedText", "01-04-2024 SHOP 100.00 DR"))
	require.NoError(t, form.WriteField("existing", "{not json"))
	require.NoError(t, form.Close())

	req := httptest.NewRequest("POST", "/api/convert", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
