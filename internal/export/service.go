package export

import (
	"bytes"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/gastoscan/gastoscan/internal/record"
)

// Row pairs one processed image with its extracted record.
type Row struct {
	Path   string
	Record record.ExpenseRecord
}

const sheet = "Gastos"

var headers = []string{
	"Archivo",
	"Tipo",
	"Proveedor",
	"RUC",
	"Fecha",
	"Total",
	"Moneda",
	"Categoría",
	"Número",
	"Ítems",
}

// BuildXLSX renders batch extraction results as an XLSX workbook and
// returns its bytes. Empty fields stay empty cells.
func BuildXLSX(rows []Row, logger *slog.Logger) ([]byte, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()

	f := excelize.NewFile()
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if di, _ := f.GetSheetIndex("Sheet1"); di != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	for i, r := range rows {
		row := i + 2
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.Path)
		write(2, r.Record.TipoDocumento)
		write(3, r.Record.Proveedor)
		write(4, r.Record.RUCProveedor)
		write(5, r.Record.FechaEmision)
		write(6, r.Record.MontoTotal)
		write(7, r.Record.Moneda)
		write(8, r.Record.CategoriaGasto)
		write(9, r.Record.NumeroDocumento)
		write(10, len(r.Record.Items))
	}

	_ = f.SetColWidth(sheet, "A", "A", 48) // path
	_ = f.SetColWidth(sheet, "B", "B", 10)
	_ = f.SetColWidth(sheet, "C", "C", 32) // vendor
	_ = f.SetColWidth(sheet, "D", "D", 14)
	_ = f.SetColWidth(sheet, "E", "G", 12)
	_ = f.SetColWidth(sheet, "H", "I", 18)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	logger.Info("xlsx export ok",
		"rows", len(rows),
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// OpenRows is a convenience for tests and tooling: parse workbook bytes back
// into the sheet's cell matrix.
func OpenRows(b []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return f.GetRows(sheet)
}
