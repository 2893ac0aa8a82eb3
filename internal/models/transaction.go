package models

// TxnType is the direction of a transaction.
type TxnType string

const (
	Income  TxnType = "income"
	Expense TxnType = "expense"
)

const (
	// CategoryUncategorized is the sentinel category assigned at extraction
	// time. Categorization happens downstream, never here.
	CategoryUncategorized = "Uncategorized"

	// StatusCompleted is the only status this subsystem emits. Pending
	// states are not modeled by statement extraction.
	StatusCompleted = "completed"

	// PayeeUnknown is the sentinel used when no narration could be
	// recovered for a transaction.
	PayeeUnknown = "Unknown"
)

// Transaction is a single transaction recovered from a statement.
// Amount is always a non-negative magnitude; direction lives in Type.
type Transaction struct {
	ID          string  `json:"id,omitempty"`
	Date        string  `json:"date"` // YYYY-MM-DD once normalized
	Payee       string  `json:"payee"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Type        TxnType `json:"type"`
	Status      string  `json:"status"`
	Source      string  `json:"source,omitempty"`
	RawEvidence string  `json:"rawEvidence,omitempty"`
}
