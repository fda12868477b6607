package llm

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

var stringFields = []string{
	"tipo_documento", "proveedor", "ruc_proveedor", "fecha_emision",
	"moneda", "categoria_gasto", "numero_documento", "observaciones",
}

var itemMoneyFields = []string{"cantidad", "precio_unitario", "subtotal"}

// NormalizeExpenseJSON massages a schema-valid model answer into the exact
// shape the record struct unmarshals from:
//   - nulls become empty strings (no field is ever null at the boundary)
//   - numeric amounts are coerced to strings (monto_total gets two decimals)
//   - tipo_documento is lowercased (the schema admits FACTURA/BOLETA)
//   - a null items array becomes []
//   - unknown keys are removed
//
// It returns the cleaned document plus a note per altered field.
func NormalizeExpenseJSON(raw []byte, logger *slog.Logger) ([]byte, []string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, nil, fmt.Errorf("sanitize: decode: %w", err)
	}

	var notes []string

	for _, k := range stringFields {
		switch t := m[k].(type) {
		case string:
			m[k] = strings.TrimSpace(t)
		case nil:
			m[k] = ""
			notes = append(notes, k+"(null)")
		default:
			m[k] = ""
			notes = append(notes, k+"(type)")
		}
	}
	if v, ok := m["tipo_documento"].(string); ok {
		m["tipo_documento"] = strings.ToLower(v)
	}

	switch t := m["monto_total"].(type) {
	case float64:
		m["monto_total"] = strconv.FormatFloat(t, 'f', 2, 64)
		notes = append(notes, "monto_total(number)")
	case string:
		m["monto_total"] = strings.TrimSpace(t)
	default:
		m["monto_total"] = ""
		notes = append(notes, "monto_total(null)")
	}

	items, _ := m["items"].([]any)
	cleaned := make([]any, 0, len(items))
	for _, it := range items {
		im, ok := it.(map[string]any)
		if !ok {
			notes = append(notes, "items(entry)")
			continue
		}
		if d, ok := im["descripcion"].(string); ok {
			im["descripcion"] = strings.TrimSpace(d)
		} else {
			im["descripcion"] = ""
		}
		for _, k := range itemMoneyFields {
			switch t := im[k].(type) {
			case float64:
				im[k] = strconv.FormatFloat(t, 'f', -1, 64)
				notes = append(notes, "items."+k+"(number)")
			case string:
				im[k] = strings.TrimSpace(t)
			default:
				im[k] = ""
				notes = append(notes, "items."+k+"(null)")
			}
		}
		cleaned = append(cleaned, im)
	}
	m["items"] = cleaned

	allowed := map[string]struct{}{
		"tipo_documento": {}, "proveedor": {}, "ruc_proveedor": {},
		"fecha_emision": {}, "monto_total": {}, "moneda": {},
		"categoria_gasto": {}, "numero_documento": {}, "items": {},
		"observaciones": {},
	}
	for k := range m {
		if _, ok := allowed[k]; !ok {
			delete(m, k)
			notes = append(notes, k+"(unknown)")
		}
	}

	out, err := json.Marshal(m)
	if err != nil {
		return nil, notes, fmt.Errorf("sanitize: encode: %w", err)
	}
	if len(notes) > 0 {
		logger.Warn("llm answer normalized", "notes", notes)
	}
	return out, notes, nil
}
