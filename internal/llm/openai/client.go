package openai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gastoscan/gastoscan/internal/llm"
	"github.com/gastoscan/gastoscan/internal/record"
)

// ExtractRecord sends the receipt image to the chat/completions endpoint
// with a strict JSON-schema response format, re-validates the answer
// locally, and returns the normalized record. The error path is for the
// caller to collapse into the default record; nothing partial is returned.
func (c *Client) ExtractRecord(ctx context.Context, imagePath string) (record.ExpenseRecord, error) {
	rid := uuid.New().String()
	start := time.Now()

	if c.cfg.APIKey == "" {
		return record.Default(), fmt.Errorf("missing api key")
	}

	dataURL, size, err := c.encodeImage(imagePath)
	if err != nil {
		return record.Default(), fmt.Errorf("encode image: %w", err)
	}

	c.logger.Info("llm extract start",
		"req_id", rid,
		"model", c.cfg.Model,
		"image", filepath.Base(imagePath),
		"image_bytes", size,
	)

	schema := llm.BuildExpenseJSONSchema()
	body := map[string]any{
		"model":       c.cfg.Model,
		"temperature": c.cfg.Temperature,
		"messages": []map[string]any{
			{
				"role": "user",
				"content": []map[string]any{
					{"type": "text", "text": llm.BuildExtractionPrompt()},
					{"type": "image_url", "image_url": map[string]any{"url": dataURL}},
				},
			},
		},
		"response_format": map[string]any{
			"type": "json_schema",
			"json_schema": map[string]any{
				"name":   "expense_extraction_es",
				"strict": true,
				"schema": schema,
			},
		},
	}

	endpoint := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	raw, err := c.post(ctx, endpoint, body)
	if err != nil {
		c.logger.Error("llm extract http error",
			"req_id", rid, "error", err, "elapsed_ms", time.Since(start).Milliseconds())
		return record.Default(), err
	}

	var cc struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(raw, &cc); err != nil {
		return record.Default(), fmt.Errorf("decode openai response: %w", err)
	}
	if len(cc.Choices) == 0 {
		return record.Default(), fmt.Errorf("no choices in openai response")
	}
	content := []byte(strings.TrimSpace(cc.Choices[0].Message.Content))

	if err := llm.ValidateJSONAgainstSchema(schema, content); err != nil {
		c.logger.Error("llm answer failed schema validation",
			"req_id", rid, "error", err, "content", string(content))
		return record.Default(), fmt.Errorf("schema validation failed: %w", err)
	}

	cleaned, _, err := llm.NormalizeExpenseJSON(content, c.logger)
	if err != nil {
		return record.Default(), fmt.Errorf("normalize answer: %w", err)
	}

	var rec record.ExpenseRecord
	if err := json.Unmarshal(cleaned, &rec); err != nil {
		return record.Default(), fmt.Errorf("unmarshal fields: %w", err)
	}
	if rec.Items == nil {
		rec.Items = []record.Item{}
	}

	c.logger.Info("llm extract ok",
		"req_id", rid,
		"proveedor", rec.Proveedor,
		"fecha", rec.FechaEmision,
		"total", rec.MontoTotal,
		"moneda", rec.Moneda,
		"categoria", rec.CategoriaGasto,
		"items", len(rec.Items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return rec, nil
}

// encodeImage reads the image and packages it as a base64 data URL.
func (c *Client) encodeImage(path string) (string, int, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", 0, err
	}
	if max := c.cfg.MaxImageMB << 20; len(b) > max {
		return "", 0, fmt.Errorf("image %d bytes exceeds %dMB limit", len(b), c.cfg.MaxImageMB)
	}
	mime := mimeForExt(filepath.Ext(path))
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(b), len(b), nil
}

func mimeForExt(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "jpg", "jpeg":
		return "image/jpeg"
	case "webp":
		return "image/webp"
	default:
		return "image/png"
	}
}

func (c *Client) post(ctx context.Context, url string, body map[string]any) ([]byte, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai http error: %w", err)
	}
	defer func(body io.ReadCloser) {
		if cerr := body.Close(); cerr != nil {
			c.logger.Warn("openai response body close error", "error", cerr)
		}
	}(resp.Body)

	buf := new(bytes.Buffer)
	_, _ = buf.ReadFrom(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("openai status %d: %s", resp.StatusCode, buf.String())
	}
	return buf.Bytes(), nil
}
