package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
)

// Config controls how the tesseract binary is invoked.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Language  string // default "spa"

	TessdataDir string

	PSM int // e.g. 6 for a uniform block of text; 0 = tesseract default
	OEM int // 1 = LSTM; 0 = tesseract default
}

// Extractor shells out to tesseract and returns recognized text lines in
// reading order. It is the heuristic pipeline's OCR collaborator.
type Extractor struct {
	cfg    Config
	runner Runner
	logger *slog.Logger
}

func NewExtractor(cfg Config, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "spa"
	}
	return &Extractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// Lines runs OCR on the image at path and splits the output into raw lines.
// Order follows tesseract's reading order. The caller decides how to degrade
// on error; this method never swallows one.
func (e *Extractor) Lines(ctx context.Context, path string) ([]string, error) {
	args := []string{path, "stdout", "-l", e.cfg.Language}
	if e.cfg.PSM > 0 {
		args = append(args, "--psm", strconv.Itoa(e.cfg.PSM))
	}
	if e.cfg.OEM > 0 {
		args = append(args, "--oem", strconv.Itoa(e.cfg.OEM))
	}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return nil, fmt.Errorf("tesseract: %w (%s)", err, truncate(string(errb), 512))
	}

	txt := strings.ReplaceAll(string(out), "\r\n", "\n")
	lines := strings.Split(txt, "\n")
	e.logger.Debug("ocr ok", "path", path, "lines", len(lines), "bytes", len(out))
	return lines, nil
}
