package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectTipoDocumento(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"factura", []string{"FACTURA ELECTRONICA"}, "factura"},
		{"boleta", []string{"Boleta de Venta"}, "boleta"},
		{"ticket counts as boleta", []string{"TICKET 0123"}, "boleta"},
		{"factura has priority over boleta", []string{"boleta anulada", "ver factura adjunta"}, "factura"},
		{"none", []string{"documento sin tipo"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectTipoDocumento(tt.lines))
		})
	}
}
