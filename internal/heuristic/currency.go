package heuristic

import (
	"strings"

	"github.com/gastoscan/gastoscan/constants"
)

// DetectMoneda returns PEN or USD from currency markers anywhere in the
// text. The PEN check has priority: "S/" wins over a stray "$".
func DetectMoneda(lines []string) string {
	joined := strings.ToUpper(strings.Join(lines, " "))
	if strings.Contains(joined, "PEN") || strings.Contains(joined, "S/") {
		return constants.CurrencyPEN
	}
	if strings.Contains(joined, "USD") || strings.Contains(joined, "US$") || strings.Contains(joined, "$") {
		return constants.CurrencyUSD
	}
	return ""
}
