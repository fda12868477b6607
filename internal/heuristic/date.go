package heuristic

import "regexp"

var (
	// YYYY-MM-DD or YYYY/MM/DD, years 2000-2099. No calendar-validity check
	// beyond the digit ranges: "2024-02-31" is accepted as found.
	reDateYMD = regexp.MustCompile(`(20\d{2})[-/](0[1-9]|1[0-2])[-/](0[1-9]|[12]\d|3[01])`)
	// DD-MM-YYYY or DD/MM/YYYY with the same ranges.
	reDateDMY = regexp.MustCompile(`(0[1-9]|[12]\d|3[01])[-/](0[1-9]|1[0-2])[-/](20\d{2})`)
)

// DetectFecha returns the first date found, reordered to ISO YYYY-MM-DD.
// Lines are scanned in order; within a line the year-first pattern is tried
// before day-first, and scanning stops at the first hit.
func DetectFecha(lines []string) string {
	for _, ln := range lines {
		if m := reDateYMD.FindStringSubmatch(ln); m != nil {
			return m[1] + "-" + m[2] + "-" + m[3]
		}
		if m := reDateDMY.FindStringSubmatch(ln); m != nil {
			return m[3] + "-" + m[2] + "-" + m[1]
		}
	}
	return ""
}
