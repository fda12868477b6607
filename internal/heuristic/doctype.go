package heuristic

import (
	"strings"

	"github.com/gastoscan/gastoscan/constants"
)

// DetectTipoDocumento classifies the document as factura or boleta from the
// concatenated text. The factura check runs first: a document mentioning both
// words is a factura.
func DetectTipoDocumento(lines []string) string {
	joined := strings.ToLower(strings.Join(lines, " "))
	if strings.Contains(joined, "factura") {
		return constants.DocTypeFactura
	}
	if strings.Contains(joined, "boleta") || strings.Contains(joined, "ticket") {
		return constants.DocTypeBoleta
	}
	return ""
}
