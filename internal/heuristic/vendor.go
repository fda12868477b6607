package heuristic

import (
	"regexp"
	"strings"
)

var reCompanySuffix = regexp.MustCompile(`SAC|SA|SRL|EIRL|S\.A\.|S\.A\.C`)

// DetectProveedor finds the vendor name. Vendor names are conventionally
// near the top of a receipt and either carry a legal-entity suffix or sit
// directly above the tax-id line.
func DetectProveedor(lines []string) string {
	head := lines
	if len(head) > 8 {
		head = head[:8]
	}
	for _, ln := range head {
		t := strings.TrimSpace(ln)
		if len(t) < 3 {
			continue
		}
		if reCompanySuffix.MatchString(strings.ToUpper(t)) {
			return t
		}
	}

	for i, ln := range lines {
		if strings.Contains(strings.ToUpper(ln), "RUC") && i > 0 {
			prev := strings.TrimSpace(lines[i-1])
			if len(prev) > 3 {
				return prev
			}
		}
	}
	return ""
}
