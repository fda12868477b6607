package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gastoscan/gastoscan/internal/common"
	"github.com/gastoscan/gastoscan/internal/llm/openai"
	"github.com/gastoscan/gastoscan/internal/record"
)

// llm-extract runs the model-call pipeline on one receipt image and prints
// a single JSON record on stdout. Any failure (missing credentials, network,
// schema violation) collapses to the default record with an error field;
// the exit code is always 0.
func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)

	if len(os.Args) < 2 {
		_ = enc.Encode(record.ModelResult{ExpenseRecord: record.Default()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	out := record.ModelResult{ExpenseRecord: record.Default()}
	rec, err := client.ExtractRecord(ctx, os.Args[1])
	if err != nil {
		out.Error = fmt.Sprintf("llm error: %v", err)
	} else {
		out.ExpenseRecord = rec
	}
	_ = enc.Encode(out)
}
