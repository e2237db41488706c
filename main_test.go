package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func unsetEnv(t *testing.T, names ...string) {
	t.Helper()
	for _, name := range names {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
}

func TestRunWritesIndexAndMetricsWhenALanguageFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("language") != "en-US" {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = io.WriteString(w, `{"status":500,"error":"boom"}`)
			return
		}
		_, _ = io.WriteString(w, `{"status":200,"data":[{"uuid":"123e4567-e89b-12d3-a456-426614174000","displayName":"Prime","description":"Prime"}]}`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	t.Chdir(dir)
	unsetEnv(t,
		"VALORANT_CONFIG",
		"VALORANT_LOG_LEVEL",
		"VALORANT_LOG_FORMAT",
		"VALORANT_TIMEOUT",
		"VALORANT_USER_AGENT",
		"VALORANT_CONCURRENCY",
	)

	outputDir := filepath.Join(dir, "docs")
	metricsFile := filepath.Join(dir, "valorant.prom")
	t.Setenv("VALORANT_BASE_URL", srv.URL)
	t.Setenv("VALORANT_LANGUAGES", "en-US,de-DE")
	t.Setenv("VALORANT_FORMATS", "rss")
	t.Setenv("VALORANT_OUTPUT_DIR", outputDir)
	t.Setenv("VALORANT_METRICS_FILE", metricsFile)

	err := run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "de-DE")

	_, err = os.Stat(filepath.Join(outputDir, "bundles-en-us.rss"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(outputDir, "bundles-de-de.rss"))
	assert.True(t, os.IsNotExist(err))

	index, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "bundles-en-us.rss")
	assert.Contains(t, string(index), "bundles-de-de.rss")

	metrics, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	assert.Contains(t, string(metrics), `valorant_api_requests_total{code="200",method="get"} 1`)
	assert.Contains(t, string(metrics), `valorant_api_requests_total{code="500",method="get"} 1`)
	assert.Contains(t, string(metrics), "valorant_api_request_duration_seconds")
}
