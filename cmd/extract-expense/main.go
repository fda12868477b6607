package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gastoscan/gastoscan/internal/common"
	"github.com/gastoscan/gastoscan/internal/heuristic"
	"github.com/gastoscan/gastoscan/internal/ocr"
	"github.com/gastoscan/gastoscan/internal/record"
)

// extract-expense runs the heuristic pipeline on one receipt image and
// prints a single JSON record on stdout. Logs go to stderr; the exit code
// is always 0 and failures surface as empty fields.
func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	if len(os.Args) < 2 {
		_ = enc.Encode(record.HeuristicResult{ExpenseRecord: record.Default()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	ocrx := ocr.NewExtractor(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)

	res := heuristic.NewExtractor(ocrx, logger).Extract(ctx, os.Args[1])
	_ = enc.Encode(res)
}
