package llm

// BuildExpenseJSONSchema returns the strict JSON-Schema (draft 2020-12
// subset) as a generic map. It is passed to the completion API as a
// structured-output constraint and reused locally to re-validate the answer.
// Every top-level key is required; per-field null/empty is permitted.
func BuildExpenseJSONSchema() map[string]any {
	stringOrNull := func() map[string]any {
		return map[string]any{
			"anyOf": []any{
				map[string]any{"type": "string"},
				map[string]any{"type": "null"},
			},
		}
	}
	numberOrString := func() map[string]any {
		return map[string]any{
			"anyOf": []any{
				map[string]any{"type": "number"},
				map[string]any{"type": "string"},
			},
		}
	}

	itemSchema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"descripcion":     map[string]any{"type": "string"},
			"cantidad":        numberOrString(),
			"precio_unitario": numberOrString(),
			"subtotal":        numberOrString(),
		},
		"required":             []string{"descripcion", "cantidad", "precio_unitario", "subtotal"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"tipo_documento": map[string]any{
				"type": "string",
				"enum": []string{"factura", "boleta", "FACTURA", "BOLETA"},
			},
			"proveedor":        map[string]any{"type": "string"},
			"ruc_proveedor":    stringOrNull(),
			"fecha_emision":    map[string]any{"type": "string"},
			"monto_total":      numberOrString(),
			"moneda":           map[string]any{"type": "string"},
			"categoria_gasto":  stringOrNull(),
			"numero_documento": stringOrNull(),
			"items": map[string]any{
				"anyOf": []any{
					map[string]any{"type": "array", "items": itemSchema},
					map[string]any{"type": "null"},
				},
			},
			"observaciones": stringOrNull(),
		},
		"required": []string{
			"tipo_documento", "proveedor", "ruc_proveedor", "fecha_emision",
			"monto_total", "moneda", "categoria_gasto", "numero_documento",
			"items", "observaciones",
		},
		"additionalProperties": false,
	}
}
