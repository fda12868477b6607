package extract

import (
	"context"

	"github.com/gastoscan/gastoscan/internal/record"
)

// LineSource is the OCR collaborator seam: image path -> recognized text
// lines in reading order.
type LineSource interface {
	Lines(ctx context.Context, path string) ([]string, error)
}

// RecordExtractor is the interface both producers satisfy: image path ->
// normalized expense record. Implementations never let a collaborator
// failure escape as a partial record; they degrade to empty fields.
type RecordExtractor interface {
	ExtractRecord(ctx context.Context, imagePath string) (record.ExpenseRecord, error)
}
