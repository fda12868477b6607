package heuristic

import (
	"regexp"
	"strconv"
	"strings"
)

var reAmountRun = regexp.MustCompile(`\d+\.?\d{0,2}`)

// normalizeAmount cleans a raw amount substring and formats it with two
// decimals. Commas are treated as decimal separators, not thousands
// separators, so "1,234.56" does not survive intact: after comma-to-dot
// substitution the last digit run wins. Known simplification, kept as is.
func normalizeAmount(raw string) string {
	t := strings.ReplaceAll(raw, " ", "")
	t = strings.ReplaceAll(t, "S/", "")
	t = strings.ReplaceAll(t, "US$", "")
	t = strings.ReplaceAll(t, "$", "")
	t = strings.ReplaceAll(t, ",", ".")

	runs := reAmountRun.FindAllString(t, -1)
	if len(runs) == 0 {
		return ""
	}
	v, err := strconv.ParseFloat(runs[len(runs)-1], 64)
	if err != nil {
		return ""
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
