package extractor

import (
	"regexp"
	"strings"
)

// Statement date shapes seen across institutions.
var (
	// 2023-10-01 (already canonical)
	isoDatePattern = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})$`)
	// 01/10/23, 01/10/2023, 01-10-2023
	numericDatePattern = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{2,4})$`)
	// 02 Dec 2025, 02 Dec, 2025
	dayMonthYearPattern = regexp.MustCompile(`(?i)^(\d{1,2})\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*,?\s+(\d{2,4})$`)
	// Dec 2, 2025 (wallet statements put the month first)
	monthDayYearPattern = regexp.MustCompile(`(?i)^(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+(\d{1,2}),?\s+(\d{2,4})$`)
)

var monthNumbers = map[string]string{
	"jan": "01", "feb": "02", "mar": "03", "apr": "04",
	"may": "05", "jun": "06", "jul": "07", "aug": "08",
	"sep": "09", "oct": "10", "nov": "11", "dec": "12",
}

// normalizeDate converts a statement date in any supported layout to the
// canonical YYYY-MM-DD form. Two-digit years are expanded by prefixing "20"
// exactly once; feeding the result back in returns it unchanged. Anything
// unrecognized is passed through untouched so callers can surface the bad
// value instead of losing the row.
func normalizeDate(s string) string {
	s = strings.TrimSpace(s)

	if isoDatePattern.MatchString(s) {
		return s
	}
	if m := numericDatePattern.FindStringSubmatch(s); m != nil {
		return expandYear(m[3]) + "-" + pad2(m[2]) + "-" + pad2(m[1])
	}
	if m := dayMonthYearPattern.FindStringSubmatch(s); m != nil {
		return expandYear(m[3]) + "-" + monthNumbers[strings.ToLower(m[2])] + "-" + pad2(m[1])
	}
	if m := monthDayYearPattern.FindStringSubmatch(s); m != nil {
		return expandYear(m[3]) + "-" + monthNumbers[strings.ToLower(m[1])] + "-" + pad2(m[2])
	}
	return s
}

func expandYear(year string) string {
	if len(year) == 2 {
		return "20" + year
	}
	return year
}

func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
