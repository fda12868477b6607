package heuristic

import (
	"regexp"
	"strings"
)

var (
	reSeriesFB    = regexp.MustCompile(`[FB][0-9]{3}-[0-9]{5,8}`)   // standard invoice/receipt series
	reSeriesAlpha = regexp.MustCompile(`[A-Z][0-9]{3}-[0-9]{5,10}`) // broader series format
	reSeriesBare  = regexp.MustCompile(`[0-9]{3}-[0-9]{5,8}`)       // bare numeric series
)

// DetectNumero finds a series-sequence document number with a three-tier
// fallback. Each tier scans every line before the next tier is tried, so an
// F/B series late in the document beats a broader match earlier in it.
func DetectNumero(lines []string) string {
	for _, ln := range lines {
		if m := reSeriesFB.FindString(strings.ToUpper(ln)); m != "" {
			return m
		}
	}
	for _, ln := range lines {
		if m := reSeriesAlpha.FindString(strings.ToUpper(ln)); m != "" {
			return m
		}
	}
	for _, ln := range lines {
		if m := reSeriesBare.FindString(ln); m != "" {
			return m
		}
	}
	return ""
}
