package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeLines(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "trims and collapses whitespace",
			in:   []string{"  Fecha:   2024-03-15  ", "a\t\tb", " c "},
			want: []string{"Fecha: 2024-03-15", "a b", "c"},
		},
		{
			name: "drops empty lines but keeps order",
			in:   []string{"", "uno", "   ", "\t", "dos"},
			want: []string{"uno", "dos"},
		},
		{
			name: "empty input yields empty output",
			in:   nil,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NormalizeLines(tt.in))
		})
	}
}

func TestNormalizeLinesIdempotent(t *testing.T) {
	in := []string{"  POLLERIA   EL SOL  ", "RUC: 20123456789", "", "TOTAL  S/ 45.90"}
	once := NormalizeLines(in)
	twice := NormalizeLines(once)
	require.Equal(t, once, twice)
}
