package llm

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gastoscan/gastoscan/internal/record"
)

func TestNormalizeExpenseJSON(t *testing.T) {
	raw := []byte(`{
		"tipo_documento": "FACTURA",
		"proveedor": "  Comercial Andina SAC ",
		"ruc_proveedor": null,
		"fecha_emision": "2024-03-15",
		"monto_total": 55.9,
		"moneda": "PEN",
		"categoria_gasto": null,
		"numero_documento": "F001-00001234",
		"items": [
			{"descripcion": "Pollo a la brasa", "cantidad": 2, "precio_unitario": "27.95", "subtotal": 55.9}
		],
		"observaciones": null,
		"confianza": 0.9
	}`)

	out, notes, err := NormalizeExpenseJSON(raw, nil)
	require.NoError(t, err)
	require.NotEmpty(t, notes)

	var rec record.ModelResult
	require.NoError(t, json.Unmarshal(out, &rec))

	require.Equal(t, "factura", rec.TipoDocumento)
	require.Equal(t, "Comercial Andina SAC", rec.Proveedor)
	require.Equal(t, "", rec.RUCProveedor)
	require.Equal(t, "55.90", rec.MontoTotal)
	require.Equal(t, "", rec.CategoriaGasto)
	require.Equal(t, "", rec.Observaciones)
	require.Len(t, rec.Items, 1)
	require.Equal(t, "2", rec.Items[0].Cantidad)
	require.Equal(t, "27.95", rec.Items[0].PrecioUnitario)
	require.Equal(t, "55.9", rec.Items[0].Subtotal)

	// unknown keys are stripped
	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	require.NotContains(t, m, "confianza")
}

func TestNormalizeExpenseJSONNullItems(t *testing.T) {
	raw := []byte(`{
		"tipo_documento": "boleta", "proveedor": "", "ruc_proveedor": "",
		"fecha_emision": "", "monto_total": "", "moneda": "",
		"categoria_gasto": "", "numero_documento": "", "items": null,
		"observaciones": ""
	}`)

	out, _, err := NormalizeExpenseJSON(raw, nil)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(out, &m))
	require.Equal(t, []any{}, m["items"])
}

func TestNormalizeExpenseJSONRejectsGarbage(t *testing.T) {
	_, _, err := NormalizeExpenseJSON([]byte("not json"), nil)
	require.Error(t, err)
}
