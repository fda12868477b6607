package common

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, k := range []string{
		"TESSERACT_BIN", "TESSERACT_LANG", "TESSDATA_PREFIX",
		"OCR_PSM", "OCR_OEM", "OPENAI_MODEL", "OPENAI_API_KEY",
		"OPENAI_BASE_URL", "OPENAI_TEMPERATURE", "OPENAI_TIMEOUT", "LOG_LEVEL",
	} {
		t.Setenv(k, "")
	}

	cfg := LoadConfig()
	require.Equal(t, "tesseract", cfg.OCR.Tesseract)
	require.Equal(t, "spa", cfg.OCR.Language)
	require.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	require.Equal(t, 45*time.Second, cfg.LLM.Timeout)
	require.Equal(t, slog.LevelInfo, cfg.LogLevel)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TESSERACT_LANG", "eng")
	t.Setenv("OCR_PSM", "6")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("OPENAI_TIMEOUT", "90s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := LoadConfig()
	require.Equal(t, "eng", cfg.OCR.Language)
	require.Equal(t, 6, cfg.OCR.PSM)
	require.Equal(t, "gpt-4o", cfg.LLM.Model)
	require.Equal(t, 90*time.Second, cfg.LLM.Timeout)
	require.Equal(t, slog.LevelDebug, cfg.LogLevel)
}
