package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/scraper"
)

func newProviderServer(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/vacancies":
			_, _ = w.Write([]byte(`{"found":120,"pages":1,"items":[
				{"salary":{"from":100000,"to":200000,"currency":"RUR","gross":false}}
			]}`))
		case "/2.0/vacancies/":
			_, _ = w.Write([]byte(`{"total":7,"objects":[
				{"payment_from":0,"payment_to":250000,"currency":"rub"}
			]}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return srv
}

func TestReport_PrintsBothTablesInOrder(t *testing.T) {
	pterm.DisableColor()
	t.Cleanup(pterm.EnableColor)

	srv := newProviderServer(t)

	cfg := config.Default()
	cfg.HeadHunter.BaseURL = srv.URL
	cfg.SuperJob.BaseURL = srv.URL
	cfg.SuperJob.APIKey = "v3.r.test"
	cfg.SuperJob.MaxPages = 1

	var out bytes.Buffer
	err := report(context.Background(), &out, scraper.EnabledProviders(cfg, srv.Client()), []string{"Go"}, false)
	require.NoError(t, err)

	text := out.String()
	hh := strings.Index(text, "HeadHunter Moscow")
	sj := strings.Index(text, "SuperJob Moscow")
	require.NotEqual(t, -1, hh)
	require.NotEqual(t, -1, sj)
	assert.Less(t, hh, sj)

	assert.Contains(t, text, "150,000")
	assert.Contains(t, text, "200,000")
	assert.Contains(t, text, "\n\n", "tables are separated by a blank line")
}

func TestReport_StopsOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.HeadHunter.BaseURL = srv.URL
	cfg.SuperJob.Enabled = false

	var out bytes.Buffer
	err := report(context.Background(), &out, scraper.EnabledProviders(cfg, srv.Client()), []string{"Go"}, false)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_MissingAPIKeyFailsBeforeAnyRequest(t *testing.T) {
	t.Setenv(config.EnvSuperJobKey, "")

	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_file: \"\"\nsuperjob:\n  base_url: "+srv.URL+"\n"), 0o600))

	err := newApp().Run([]string{"salarystats", "--config", path, "--silence", "--no-progress", "--source", "superjob"})
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
	assert.Zero(t, hits)
}

func TestRun_InvalidSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("env_file: \"\"\n"), 0o600))

	err := newApp().Run([]string{"salarystats", "--config", path, "--silence", "--source", "linkedin"})
	assert.Error(t, err)
}

func TestPrintExamples(t *testing.T) {
	var buf bytes.Buffer
	printExamples(&buf)
	assert.Contains(t, buf.String(), "SUPERJOB_SECRET_KEY")
}
