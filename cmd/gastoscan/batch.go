package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gastoscan/gastoscan/internal/export"
	"github.com/gastoscan/gastoscan/internal/extract"
	"github.com/gastoscan/gastoscan/internal/ingest"
	"github.com/gastoscan/gastoscan/internal/record"
)

var (
	batchMode string
	batchOut  string
	batchJSON bool
	batchExts []string
)

var batchCmd = &cobra.Command{
	Use:   "batch <directorio>",
	Short: "Procesa un directorio de imágenes y exporta los resultados",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		paths, stats, err := ingest.ListImages(args[0], batchExts, true)
		if err != nil {
			return fmt.Errorf("list images: %w", err)
		}
		logger.Info("batch start",
			"root", args[0], "matched", stats.Matched, "scanned", stats.Scanned)

		var producer extract.RecordExtractor
		switch batchMode {
		case "heuristic":
			producer = buildHeuristic()
		case "llm":
			producer = buildLLM()
		case "merged":
			producer = mergedProducer{}
		default:
			return fmt.Errorf("unknown mode %q (heuristic|llm|merged)", batchMode)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetEscapeHTML(false)

		rows := make([]export.Row, 0, len(paths))
		for _, p := range paths {
			runCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			rec, err := producer.ExtractRecord(runCtx, p)
			cancel()
			if err != nil {
				logger.Warn("extraction failed, keeping empty record", "path", p, "error", err)
				rec = record.Default()
			}
			rows = append(rows, export.Row{Path: p, Record: rec})
			if batchJSON {
				_ = enc.Encode(struct {
					Path string `json:"archivo"`
					record.ExpenseRecord
				}{p, rec})
			}
		}

		if batchOut != "" {
			b, err := export.BuildXLSX(rows, logger)
			if err != nil {
				return err
			}
			if err := os.WriteFile(batchOut, b, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", batchOut, err)
			}
			logger.Info("batch export written", "out", batchOut, "rows", len(rows))
		}
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchMode, "mode", "heuristic", "heuristic|llm|merged")
	batchCmd.Flags().StringVar(&batchOut, "out", "", "write an XLSX report to this path")
	batchCmd.Flags().BoolVar(&batchJSON, "jsonl", false, "stream one JSON record per image to stdout")
	batchCmd.Flags().StringSliceVar(&batchExts, "ext", nil, "image extensions to include (default jpg,jpeg,png,tif,tiff,bmp,webp)")
}

// mergedProducer adapts the two-producer merge to the RecordExtractor
// interface so batch mode can treat all modes uniformly.
type mergedProducer struct{}

func (mergedProducer) ExtractRecord(ctx context.Context, imagePath string) (record.ExpenseRecord, error) {
	return extractMerged(ctx, imagePath), nil
}
