// Package reconcile flags freshly extracted transactions against an
// existing ledger so repeat imports of overlapping statements don't double
// book anything.
package reconcile

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// LedgerEntry is the slice of an already-booked transaction that matters
// for duplicate detection.
type LedgerEntry struct {
	Date   string         `json:"date"`
	Amount float64        `json:"amount"`
	Type   models.TxnType `json:"type"`
	Payee  string         `json:"payee"`
}

// Annotated is a candidate transaction with its duplicate verdict. Exact
// matches are deselected so they drop out of the import unless the user
// insists; probable duplicates stay selected for review.
type Annotated struct {
	models.Transaction
	ExactMatch        bool `json:"isExactMatch"`
	ProbableDuplicate bool `json:"isProbableDuplicate"`
	Selected          bool `json:"selected"`
}

// exactSignature pins down a transaction completely: same day, same amount
// to the paisa, same direction, same payee.
func exactSignature(date string, amount float64, txnType models.TxnType, payee string) string {
	return strings.Join([]string{
		date,
		decimal.NewFromFloat(amount).StringFixed(2),
		string(txnType),
		payee,
	}, "|")
}

// partialSignature drops the payee, catching the same movement booked under
// a different narration.
func partialSignature(date string, amount float64, txnType models.TxnType) string {
	return strings.Join([]string{
		date,
		decimal.NewFromFloat(amount).StringFixed(2),
		string(txnType),
	}, "|")
}

// Annotate compares each candidate against the existing ledger and returns
// them in order with duplicate flags set. Candidates are never mutated or
// filtered; the caller decides what a deselected row means.
func Annotate(existing []LedgerEntry, candidates []models.Transaction) []Annotated {
	exact := make(map[string]struct{}, len(existing))
	partial := make(map[string]struct{}, len(existing))
	for _, entry := range existing {
		exact[exactSignature(entry.Date, entry.Amount, entry.Type, entry.Payee)] = struct{}{}
		partial[partialSignature(entry.Date, entry.Amount, entry.Type)] = struct{}{}
	}

	annotated := make([]Annotated, 0, len(candidates))
	for _, txn := range candidates {
		_, isExact := exact[exactSignature(txn.Date, txn.Amount, txn.Type, txn.Payee)]
		_, isPartial := partial[partialSignature(txn.Date, txn.Amount, txn.Type)]

		annotated = append(annotated, Annotated{
			Transaction:       txn,
			ExactMatch:        isExact,
			ProbableDuplicate: isPartial && !isExact,
			Selected:          !isExact,
		})
	}
	return annotated
}
