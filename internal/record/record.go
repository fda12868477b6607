package record

// Item is one line item as reported by the model path. All monetary fields
// are kept as strings; the sanitizer coerces numbers before unmarshal.
type Item struct {
	Descripcion    string `json:"descripcion"`
	Cantidad       string `json:"cantidad"`
	PrecioUnitario string `json:"precio_unitario"`
	Subtotal       string `json:"subtotal"`
}

// ExpenseRecord is the normalized output shape shared by both extraction
// paths. Every field defaults to the empty string (or empty slice for
// items) when undetected; no field is ever omitted or null at the top level.
type ExpenseRecord struct {
	TipoDocumento   string `json:"tipo_documento"`
	Proveedor       string `json:"proveedor"`
	RUCProveedor    string `json:"ruc_proveedor"`
	FechaEmision    string `json:"fecha_emision"`
	MontoTotal      string `json:"monto_total"`
	Moneda          string `json:"moneda"`
	CategoriaGasto  string `json:"categoria_gasto"`
	NumeroDocumento string `json:"numero_documento"`
	Items           []Item `json:"items"`
	Observaciones   string `json:"observaciones"`
}

// Default returns the all-empty record with a non-nil items slice so it
// marshals as [] rather than null.
func Default() ExpenseRecord {
	return ExpenseRecord{Items: []Item{}}
}

// HeuristicResult is the heuristic-path output: the record plus the raw
// concatenated OCR text for audit.
type HeuristicResult struct {
	ExpenseRecord
	Text string `json:"text"`
}

// ModelResult is the model-path output. Error is set only when the remote
// call failed; the embedded record is then all-empty.
type ModelResult struct {
	ExpenseRecord
	Error string `json:"error,omitempty"`
}
