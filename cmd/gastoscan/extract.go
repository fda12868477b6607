package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gastoscan/gastoscan/internal/extract"
	"github.com/gastoscan/gastoscan/internal/heuristic"
	"github.com/gastoscan/gastoscan/internal/llm/openai"
	"github.com/gastoscan/gastoscan/internal/ocr"
	"github.com/gastoscan/gastoscan/internal/record"
)

var extractMode string

var extractCmd = &cobra.Command{
	Use:   "extract <imagen>",
	Short: "Extrae el registro de gasto de una imagen",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()

		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)

		switch extractMode {
		case "heuristic":
			return enc.Encode(buildHeuristic().Extract(ctx, args[0]))
		case "llm":
			out := record.ModelResult{ExpenseRecord: record.Default()}
			rec, err := buildLLM().ExtractRecord(ctx, args[0])
			if err != nil {
				out.Error = fmt.Sprintf("llm error: %v", err)
			} else {
				out.ExpenseRecord = rec
			}
			return enc.Encode(out)
		case "merged":
			return enc.Encode(extractMerged(ctx, args[0]))
		default:
			return fmt.Errorf("unknown mode %q (heuristic|llm|merged)", extractMode)
		}
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractMode, "mode", "merged", "heuristic|llm|merged")
}

// extractMerged runs both producers and combines them, preferring the model
// fields when present. A model failure degrades to the heuristic record.
func extractMerged(ctx context.Context, imagePath string) record.ExpenseRecord {
	var producers = []extract.RecordExtractor{buildLLM(), buildHeuristic()}

	records := make([]record.ExpenseRecord, len(producers))
	for i, p := range producers {
		rec, err := p.ExtractRecord(ctx, imagePath)
		if err != nil {
			logger.Warn("producer failed, using empty record", "path", imagePath, "error", err)
			rec = record.Default()
		}
		records[i] = rec
	}
	return extract.Merge(records[0], records[1])
}

func buildHeuristic() *heuristic.Extractor {
	ocrx := ocr.NewExtractor(ocr.Config{
		Tesseract:   cfg.OCR.Tesseract,
		Language:    cfg.OCR.Language,
		TessdataDir: cfg.OCR.TessdataDir,
		PSM:         cfg.OCR.PSM,
		OEM:         cfg.OCR.OEM,
	}, logger)
	return heuristic.NewExtractor(ocrx, logger)
}

func buildLLM() *openai.Client {
	return openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)
}
