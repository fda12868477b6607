package llm

import (
	"strings"

	"github.com/gastoscan/gastoscan/constants"
)

// BuildExtractionPrompt composes the Spanish extraction instructions sent
// alongside the receipt image. The model must answer with a single JSON
// document matching the expense schema.
func BuildExtractionPrompt() string {
	parts := []string{
		"Eres una IA experta en análisis de documentos financieros, especializada en facturas y boletas de venta.",
		"Recibirás una imagen de una factura o boleta, y tu tarea es identificar y estructurar la información clave de manera precisa y estandarizada.",
		"",
		"Debes analizar cuidadosamente el documento y devolver únicamente un JSON válido, con los siguientes campos:",
		"{",
		`  "tipo_documento": "factura o boleta",`,
		`  "proveedor": "nombre del comercio o empresa emisora",`,
		`  "ruc_proveedor": "RUC o número de identificación del proveedor (si existe)",`,
		`  "fecha_emision": "YYYY-MM-DD",`,
		`  "monto_total": "monto total del documento",`,
		`  "moneda": "PEN, USD, etc.",`,
		`  "categoria_gasto": "categoría del gasto detectada o nueva",`,
		`  "numero_documento": "número o serie del documento",`,
		`  "items": [{"descripcion": "...", "cantidad": "...", "precio_unitario": "...", "subtotal": "..."}],`,
		`  "observaciones": "comentarios o detalles adicionales relevantes"`,
		"}",
		"",
		"Reglas de extracción:",
		`- Si un dato no aparece en el documento, deja su valor vacío ("").`,
		"- Detecta automáticamente si el documento es factura o boleta.",
		"- Usa formato ISO 8601 para las fechas (YYYY-MM-DD).",
		"- Redondea los montos a dos decimales.",
		`- Si hay varios ítems, incluye todos en la lista "items".`,
		"- No incluyas texto, explicaciones o comentarios fuera del JSON.",
		"- Los montos deben usar punto como separador decimal. Si el documento usa coma decimal (1.234,56), conviértelo a 1234.56.",
		"- Identifica la moneda: 'PEN' (símbolo 'S/') o 'USD' (símbolo '$'). Si no está explícito, asume 'PEN'.",
		"",
		"Categorías base:",
		"- " + strings.Join(constants.BaseCategorias(), ", ") + ".",
		`- Si el gasto pertenece a una categoría nueva, identifícala con un nombre claro y coherente (por ejemplo: "ropa", "mascotas", "viajes") y asigna ese valor en "categoria_gasto".`,
		"",
		"Instrucción final:",
		"Devuelve solo el JSON final sin texto adicional, encabezados ni explicaciones.",
	}
	return strings.Join(parts, "\n")
}
