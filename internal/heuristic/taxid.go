package heuristic

import (
	"regexp"
	"strings"
)

// The RUC label is optional, so any 11 consecutive digits match. That risks
// false positives on other 11-digit numbers; known heuristic limitation.
var reRUC = regexp.MustCompile(`(?:RUC\s*[:#]?\s*)?(\d{11})`)

// DetectRUC returns the first 11-digit taxpayer id found.
func DetectRUC(lines []string) string {
	for _, ln := range lines {
		if m := reRUC.FindStringSubmatch(strings.ToUpper(ln)); m != nil {
			return m[1]
		}
	}
	return ""
}
