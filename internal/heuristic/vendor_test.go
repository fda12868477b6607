package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectProveedor(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{
			name:  "suffix marker near the top",
			lines: []string{"POLLERIA EL SOL S.A.C.", "Av. Larco 123, Miraflores"},
			want:  "POLLERIA EL SOL S.A.C.",
		},
		{
			name:  "first suffixed line wins",
			lines: []string{"x", "INVERSIONES NORTE SAC", "COMERCIO SUR EIRL"},
			want:  "INVERSIONES NORTE SAC",
		},
		{
			name:  "suffix beyond first eight lines is ignored",
			lines: []string{"l1", "l2", "l3", "l4", "l5", "l6", "l7", "l8", "TIENDA TARDIA SAC"},
			want:  "",
		},
		{
			name:  "line above RUC as fallback",
			lines: []string{"Boleta de venta", "Comercial Andina", "RUC: 20123456789"},
			want:  "Comercial Andina",
		},
		{
			name:  "RUC on first line has no preceding line",
			lines: []string{"RUC: 20123456789", "algo"},
			want:  "",
		},
		{
			name:  "short preceding line is rejected",
			lines: []string{"ab", "RUC: 20123456789"},
			want:  "",
		},
		{"none", []string{"boleta", "gracias"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectProveedor(tt.lines))
		})
	}
}
