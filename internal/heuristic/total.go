package heuristic

import (
	"regexp"
	"strconv"
	"strings"
)

var reMoneyToken = regexp.MustCompile(`\d+[.,]\d{2}`)

// DetectTotal prefers the last monetary token on a line labeled TOTAL;
// receipts list subtotals and taxes before the total, so proximity to the
// label is a stronger signal than magnitude. When no label is found the
// maximum token seen anywhere is the fallback.
func DetectTotal(lines []string) string {
	var maxAmt float64
	labeled := ""

	for _, ln := range lines {
		tokens := reMoneyToken.FindAllString(ln, -1)
		for _, tok := range tokens {
			if v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", "."), 64); err == nil && v > maxAmt {
				maxAmt = v
			}
		}
		if strings.Contains(strings.ToUpper(ln), "TOTAL") && len(tokens) > 0 {
			labeled = normalizeAmount(tokens[len(tokens)-1])
		}
	}

	if labeled != "" {
		return labeled
	}
	if maxAmt > 0 {
		return strconv.FormatFloat(maxAmt, 'f', 2, 64)
	}
	return ""
}
