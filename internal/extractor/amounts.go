package extractor

import (
	"strconv"
	"strings"
)

// parseAmount converts a monetary token like "1,234.56", "₹200" or "INR 1,400"
// to its magnitude. Empty strings and the dash placeholder used for unused
// columns resolve to zero, as do tokens that are not numbers at all;
// malformed rows are dropped by the zero-amount rule, never raised.
func parseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "₹", "")
	s = strings.ReplaceAll(s, "Rs.", "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, " ", "")
	s = strings.TrimPrefix(s, "INR")

	if s == "" || s == "-" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	if v < 0 {
		return -v
	}
	return v
}
