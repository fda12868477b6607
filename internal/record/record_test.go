package record

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultMarshalsEveryKey(t *testing.T) {
	b, err := json.Marshal(Default())
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))

	want := []string{
		"tipo_documento", "proveedor", "ruc_proveedor", "fecha_emision",
		"monto_total", "moneda", "categoria_gasto", "numero_documento",
		"items", "observaciones",
	}
	require.Len(t, m, len(want))
	for _, k := range want {
		require.Contains(t, m, k)
	}
	require.Equal(t, []any{}, m["items"], "items must be [] not null")
}

func TestHeuristicResultIncludesText(t *testing.T) {
	b, err := json.Marshal(HeuristicResult{ExpenseRecord: Default()})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.Contains(t, m, "text")
	require.Equal(t, "", m["text"])
}

func TestModelResultOmitsEmptyError(t *testing.T) {
	b, err := json.Marshal(ModelResult{ExpenseRecord: Default()})
	require.NoError(t, err)
	require.NotContains(t, string(b), `"error"`)

	b, err = json.Marshal(ModelResult{ExpenseRecord: Default(), Error: "llm error: boom"})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	require.Equal(t, "llm error: boom", m["error"])
}
