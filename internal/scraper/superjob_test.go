package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/stats"
)

func newSuperJobServer(t *testing.T, requests *[]*http.Request) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests = append(*requests, r)

		if r.URL.Path != "/2.0/vacancies/" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-Api-App-Id") != "v3.r.test" {
			w.WriteHeader(http.StatusForbidden)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("page") == "0" {
			_, _ = w.Write([]byte(`{"total":3,"more":false,"objects":[
				{"id":1,"payment_from":0,"payment_to":500,"currency":"rub"},
				{"id":2,"payment_from":100,"payment_to":200,"currency":"rub"},
				{"id":3,"payment_from":0,"payment_to":0,"currency":"rub"}
			]}`))
			return
		}
		_, _ = w.Write([]byte(`{"total":3,"more":false,"objects":[]}`))
	}))
	t.Cleanup(srv.Close)

	return srv
}

func testSuperJobConfig(baseURL string) config.SuperJobConfig {
	cfg := config.Default().SuperJob
	cfg.BaseURL = baseURL
	cfg.APIKey = "v3.r.test"
	return cfg
}

func TestSuperJob_FetchPage(t *testing.T) {
	var requests []*http.Request
	srv := newSuperJobServer(t, &requests)

	sj := NewSuperJob(testSuperJobConfig(srv.URL), srv.Client())

	page, err := sj.FetchPage(context.Background(), "Python", 0)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Found)
	assert.Equal(t, 0, page.Pages)
	assert.Len(t, page.Items, 3)

	require.Len(t, requests, 1)
	query := requests[0].URL.Query()
	assert.Equal(t, "Python", query.Get("keyword"))
	assert.Equal(t, "4", query.Get("town"))
	assert.Equal(t, "30", query.Get("period"))
	assert.Equal(t, "100", query.Get("count"))
	assert.Equal(t, []string{"программист", "разработчик", "разработка"}, query["keywords"])
}

func TestSuperJob_CollectUsesFixedPageCap(t *testing.T) {
	var requests []*http.Request
	srv := newSuperJobServer(t, &requests)

	sj := NewSuperJob(testSuperJobConfig(srv.URL), srv.Client())

	result, err := (&stats.Aggregator{}).Collect(context.Background(), sj, []string{"Python"})
	require.NoError(t, err)
	require.Len(t, result, 1)

	assert.Equal(t, "Python", result[0].Language)
	assert.Equal(t, 3, result[0].Found)
	assert.Equal(t, 2, result[0].Processed)
	assert.Equal(t, (400+150)/2, result[0].AverageSalary)
	assert.Len(t, requests, 5)
}

func TestSuperJob_BadKeyIsFatal(t *testing.T) {
	var requests []*http.Request
	srv := newSuperJobServer(t, &requests)

	cfg := testSuperJobConfig(srv.URL)
	cfg.APIKey = "wrong"
	sj := NewSuperJob(cfg, srv.Client())

	result, err := (&stats.Aggregator{}).Collect(context.Background(), sj, []string{"Python", "Go"})
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Len(t, requests, 1)
}

func TestEnabledProviders(t *testing.T) {
	cfg := config.Default()
	providers := EnabledProviders(cfg, http.DefaultClient)
	require.Len(t, providers, 2)
	assert.Equal(t, "HeadHunter", providers[0].Name())
	assert.Equal(t, "HeadHunter Moscow", providers[0].Title())
	assert.Equal(t, 100, providers[0].MinFound())
	assert.Equal(t, "SuperJob", providers[1].Name())
	assert.Equal(t, "SuperJob Moscow", providers[1].Title())
	assert.Equal(t, 0, providers[1].MinFound())

	require.NoError(t, cfg.SetSource("sj"))
	providers = EnabledProviders(cfg, http.DefaultClient)
	require.Len(t, providers, 1)
	assert.Equal(t, "SuperJob", providers[0].Name())
}
