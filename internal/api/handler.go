// Package api exposes the extraction pipeline over HTTP for the web
// uploader: one conversion endpoint plus a health probe.
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"

	"github.com/ledgerlens/statement-importer/internal/buildinfo"
	"github.com/ledgerlens/statement-importer/internal/document"
	"github.com/ledgerlens/statement-importer/internal/extractor"
	"github.com/ledgerlens/statement-importer/internal/models"
	"github.com/ledgerlens/statement-importer/internal/reconcile"
	"github.com/ledgerlens/statement-importer/internal/writer"
)

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success          bool                  `json:"success"`
	Error            string                `json:"error,omitempty"`
	PasswordRequired bool                  `json:"passwordRequired,omitempty"`
	Source           string                `json:"source,omitempty"`
	Transactions     []reconcile.Annotated `json:"transactions"`
	CSV              string                `json:"csv,omitempty"`
	TotalIncome      float64               `json:"totalIncome"`
	TotalExpense     float64               `json:"totalExpense"`
	Count            int                   `json:"count"`
}

// NewApp builds the fiber application with all routes registered.
func NewApp() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "statement-importer",
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	app.Get("/api/health", HandleHealth)
	app.Post("/api/convert", HandleConvert)
	return app
}

// HandleHealth reports liveness and the running version.
func HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"engine":  "fiber",
		"version": buildinfo.Version,
	})
}

// HandleConvert accepts a statement upload and returns the extracted
// transactions annotated against an optional existing ledger.
//
// Form fields:
//
//	file          the PDF statement (ignored when extractedText is set)
//	extractedText pre-extracted text, pages separated by ---PAGE_BREAK---
//	source        explicit extractor key, empty for auto-detection
//	password      PDF open password, if the document needs one
//	existing      JSON array of already-booked entries to reconcile against
//	header        "false" to omit the CSV header row
func HandleConvert(c *fiber.Ctx) error {
	sourceKey := c.FormValue("source")
	password := c.FormValue("password")
	includeHeader := c.FormValue("header") != "false"

	text, err := statementText(c, password)
	if err != nil {
		if errors.Is(err, document.ErrPasswordProtected) {
			return writeError(c, fiber.StatusUnauthorized, ConvertResponse{
				Error:            "document is password protected",
				PasswordRequired: true,
			})
		}
		return writeError(c, fiber.StatusBadRequest, ConvertResponse{Error: err.Error()})
	}

	ext := extractor.NewRegistry().Select(text, sourceKey)

	transactions := ext.Extract(text)
	for i := range transactions {
		if transactions[i].ID == "" {
			transactions[i].ID = uuid.NewString()
		}
	}

	var existing []reconcile.LedgerEntry
	if raw := c.FormValue("existing"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &existing); err != nil {
			return writeError(c, fiber.StatusBadRequest, ConvertResponse{
				Error: fmt.Sprintf("invalid existing ledger: %v", err),
			})
		}
	}
	annotated := reconcile.Annotate(existing, transactions)

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := csvWriter.WriteAnnotated(&csvBuf, annotated); err != nil {
		return writeError(c, fiber.StatusInternalServerError, ConvertResponse{
			Error: fmt.Sprintf("CSV generation failed: %v", err),
		})
	}

	var totalIncome, totalExpense float64
	for _, txn := range transactions {
		if txn.Type == models.Expense {
			totalExpense += txn.Amount
		} else {
			totalIncome += txn.Amount
		}
	}

	return c.JSON(ConvertResponse{
		Success:      true,
		Source:       ext.Name(),
		Transactions: annotated,
		CSV:          csvBuf.String(),
		TotalIncome:  totalIncome,
		TotalExpense: totalExpense,
		Count:        len(annotated),
	})
}

// statementText resolves the request body into one text blob, preferring
// client-side extracted text over a server-side PDF pass.
func statementText(c *fiber.Ctx, password string) (string, error) {
	if extracted := c.FormValue("extractedText"); extracted != "" {
		var pages []string
		for _, page := range strings.Split(extracted, "\n---PAGE_BREAK---\n") {
			if page = strings.TrimSpace(page); page != "" {
				pages = append(pages, page)
			}
		}
		return strings.Join(pages, "\n\n"), nil
	}

	header, err := c.FormFile("file")
	if err != nil {
		return "", errors.New("no file uploaded, use form field 'file'")
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".pdf") {
		return "", errors.New("only PDF files are supported")
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer file.Close()

	tmpFile, err := os.CreateTemp("", "statement-*.pdf")
	if err != nil {
		return "", errors.New("failed to create temp file")
	}
	defer os.Remove(tmpFile.Name())

	if _, err := io.Copy(tmpFile, file); err != nil {
		tmpFile.Close()
		return "", errors.New("failed to save uploaded file")
	}
	tmpFile.Close()

	return document.ExtractText(tmpFile.Name(), password)
}

func writeError(c *fiber.Ctx, status int, resp ConvertResponse) error {
	resp.Success = false
	return c.Status(status).JSON(resp)
}
