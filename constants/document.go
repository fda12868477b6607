package constants

// Peruvian tax document types recognized in the tipo_documento field.
const (
	DocTypeFactura = "factura"
	DocTypeBoleta  = "boleta"
)

// Currency codes emitted by the moneda detector.
const (
	CurrencyPEN = "PEN"
	CurrencyUSD = "USD"
)
