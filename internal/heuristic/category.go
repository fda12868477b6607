package heuristic

import (
	"strings"

	"github.com/gastoscan/gastoscan/constants"
)

// DetectCategoria classifies the expense against the fixed keyword
// vocabulary, in priority order. First category with any keyword present
// wins; no catch-all is assigned here (the model path may supply one).
func DetectCategoria(lines []string) string {
	joined := strings.ToLower(strings.Join(lines, " "))
	for _, c := range constants.Categorias() {
		for _, kw := range c.Keywords {
			if strings.Contains(joined, kw) {
				return string(c.Name)
			}
		}
	}
	return ""
}
