package heuristic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDetectFecha(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"iso date inside a line", []string{"Fecha: 2024-03-15 gracias"}, "2024-03-15"},
		{"day first is reordered", []string{"15/03/2024"}, "2024-03-15"},
		{"slash and dash mixed", []string{"Emision: 01-12-2023"}, "2023-12-01"},
		{"no date", []string{"sin fecha aqui"}, ""},
		{"first line wins", []string{"15/03/2024", "2023-01-02"}, "2024-03-15"},
		{"year-first tried before day-first within a line", []string{"2023-01-02 15/03/2024"}, "2023-01-02"},
		{"month out of range rejected", []string{"2024-13-01"}, ""},
		{"no calendar validation beyond ranges", []string{"2024-02-31"}, "2024-02-31"},
		{"year below 2000 rejected", []string{"15/03/1999"}, ""},
		{"empty input", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DetectFecha(tt.lines))
		})
	}
}
