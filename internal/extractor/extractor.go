package extractor

import (
	"sort"

	"github.com/ledgerlens/statement-importer/internal/models"
)

// Extractor is one institution-specific extraction strategy. Implementations
// are stateless and side-effect-free; all working state is local to a single
// Extract call, so one extractor may be used concurrently across documents.
type Extractor interface {
	// Name is the human-readable institution tag, recorded as the
	// provenance Source on every transaction the strategy emits.
	Name() string
	// Identify reports whether the statement text looks like this
	// institution's layout. It must stay a cheap substring test so that a
	// mis-detection is cheap to recover from with an explicit key.
	Identify(text string) bool
	// Extract parses the statement text into transactions. Unmatched and
	// malformed rows are skipped, never raised.
	Extract(text string) []models.Transaction
}

// Registry holds the fixed, ordered set of extractors plus the generic
// fallback whose Identify always succeeds.
type Registry struct {
	ordered []Extractor
	byKey   map[string]Extractor
	generic Extractor
}

// NewRegistry builds the registry with every supported institution.
// Declaration order matters for auto-detection: the credit-card layout is
// checked before the bank layout because both carry the HDFC name, and the
// bank extractors come before the wallet ones.
func NewRegistry() *Registry {
	hdfcAdvanced := &HDFCAdvancedExtractor{}
	ordered := []Extractor{
		&HDFCCreditCardExtractor{},
		hdfcAdvanced,
		&ICICIExtractor{},
		&SBIExtractor{},
		&PhonePeExtractor{},
		&GPayExtractor{},
		&PNBExtractor{},
	}

	generic := &GenericExtractor{}
	byKey := map[string]Extractor{
		"hdfc":             hdfcAdvanced,
		"hdfc-advanced":    hdfcAdvanced,
		"hdfc-simple":      &HDFCExtractor{},
		"hdfc-credit-card": &HDFCCreditCardExtractor{},
		"icici":            &ICICIExtractor{},
		"sbi":              &SBIExtractor{},
		"phonepe":          &PhonePeExtractor{},
		"gpay":             &GPayExtractor{},
		"pnb":              &PNBExtractor{},
		"generic":          generic,
	}

	return &Registry{ordered: ordered, byKey: byKey, generic: generic}
}

// Select returns the extractor for the given statement text. A known
// explicitKey always wins; otherwise the first extractor whose Identify
// matches is used, falling back to the generic extractor.
func (r *Registry) Select(text, explicitKey string) Extractor {
	if explicitKey != "" {
		if e, ok := r.byKey[explicitKey]; ok {
			return e
		}
	}
	for _, e := range r.ordered {
		if e.Identify(text) {
			return e
		}
	}
	return r.generic
}

// Keys lists the explicit selection keys in sorted order.
func (r *Registry) Keys() []string {
	keys := make([]string, 0, len(r.byKey))
	for k := range r.byKey {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
