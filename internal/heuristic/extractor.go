package heuristic

import (
	"context"
	"log/slog"
	"strings"

	"github.com/gastoscan/gastoscan/internal/extract"
	"github.com/gastoscan/gastoscan/internal/record"
)

// Extractor is the heuristic producer: OCR lines in, assembled record out.
// It is total: an OCR failure degrades to the all-empty record.
type Extractor struct {
	lines  extract.LineSource
	logger *slog.Logger
}

func NewExtractor(src extract.LineSource, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{lines: src, logger: logger}
}

// Extract runs OCR and every field detector over the same normalized line
// set. No detector depends on another's output.
func (e *Extractor) Extract(ctx context.Context, imagePath string) record.HeuristicResult {
	raw, err := e.lines.Lines(ctx, imagePath)
	if err != nil {
		// collaborator failure, not "no data": log it, then assemble empty
		e.logger.Warn("ocr unavailable, assembling empty record", "path", imagePath, "error", err)
		raw = nil
	}
	return Assemble(NormalizeLines(raw))
}

// ExtractRecord satisfies extract.RecordExtractor.
func (e *Extractor) ExtractRecord(ctx context.Context, imagePath string) (record.ExpenseRecord, error) {
	return e.Extract(ctx, imagePath).ExpenseRecord, nil
}

// Assemble invokes each detector independently over normalized lines and
// composes the record. Items and observaciones stay empty on this path; the
// raw text field is the lines joined for audit.
func Assemble(lines []string) record.HeuristicResult {
	return record.HeuristicResult{
		ExpenseRecord: record.ExpenseRecord{
			TipoDocumento:   DetectTipoDocumento(lines),
			Proveedor:       DetectProveedor(lines),
			RUCProveedor:    DetectRUC(lines),
			FechaEmision:    DetectFecha(lines),
			MontoTotal:      DetectTotal(lines),
			Moneda:          DetectMoneda(lines),
			CategoriaGasto:  DetectCategoria(lines),
			NumeroDocumento: DetectNumero(lines),
			Items:           []record.Item{},
			Observaciones:   "",
		},
		Text: strings.Join(lines, " \n "),
	}
}
