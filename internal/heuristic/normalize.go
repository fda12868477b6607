package heuristic

import (
	"regexp"
	"strings"
)

var reWhitespace = regexp.MustCompile(`\s+`)

// NormalizeLines trims each OCR line, collapses internal whitespace runs to a
// single space, and drops lines that become empty. Order is preserved. The
// result is the input every detector reads; none of them mutate it.
func NormalizeLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, ln := range lines {
		t := strings.TrimSpace(ln)
		if t == "" {
			continue
		}
		out = append(out, reWhitespace.ReplaceAllString(t, " "))
	}
	return out
}
