package extract

import "github.com/gastoscan/gastoscan/internal/record"

// Merge combines the two producers' records deterministically: a model-path
// field wins whenever it is non-empty, otherwise the heuristic value is
// kept. Items come from whichever side has any.
func Merge(model, heur record.ExpenseRecord) record.ExpenseRecord {
	out := record.ExpenseRecord{
		TipoDocumento:   prefer(model.TipoDocumento, heur.TipoDocumento),
		Proveedor:       prefer(model.Proveedor, heur.Proveedor),
		RUCProveedor:    prefer(model.RUCProveedor, heur.RUCProveedor),
		FechaEmision:    prefer(model.FechaEmision, heur.FechaEmision),
		MontoTotal:      prefer(model.MontoTotal, heur.MontoTotal),
		Moneda:          prefer(model.Moneda, heur.Moneda),
		CategoriaGasto:  prefer(model.CategoriaGasto, heur.CategoriaGasto),
		NumeroDocumento: prefer(model.NumeroDocumento, heur.NumeroDocumento),
		Observaciones:   prefer(model.Observaciones, heur.Observaciones),
		Items:           []record.Item{},
	}
	if len(model.Items) > 0 {
		out.Items = model.Items
	} else if len(heur.Items) > 0 {
		out.Items = heur.Items
	}
	return out
}

func prefer(model, heur string) string {
	if model != "" {
		return model
	}
	return heur
}
