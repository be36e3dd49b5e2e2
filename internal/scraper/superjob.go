package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/fr4nk3nst1ner/salarystats/internal/client"
	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/pager"
	"github.com/fr4nk3nst1ner/salarystats/internal/salary"
)

// superJobLayout describes the SuperJob search response:
// {"objects": [...], "total": 321, "more": true}
var superJobLayout = models.PageLayout{
	FoundPath: "total",
	ItemsPath: "objects",
}

// SuperJob searches vacancies through the SuperJob API v2
type SuperJob struct {
	cfg        config.SuperJobConfig
	httpClient *http.Client
	normalizer salary.SuperJobNormalizer
}

func NewSuperJob(cfg config.SuperJobConfig, httpClient *http.Client) *SuperJob {
	return &SuperJob{
		cfg:        cfg,
		httpClient: httpClient,
		normalizer: salary.SuperJobNormalizer{Currency: cfg.Currency},
	}
}

func (s *SuperJob) Name() string {
	return "SuperJob"
}

func (s *SuperJob) Title() string {
	return s.cfg.Title
}

func (s *SuperJob) MinFound() int {
	return s.cfg.MinFound
}

func (s *SuperJob) Normalizer() salary.Normalizer {
	return s.normalizer
}

// Pages always requests MaxPages pages; SuperJob does not report a page count
func (s *SuperJob) Pages(term string) *pager.Pager {
	return pager.New(func(ctx context.Context, page int) (models.Page, error) {
		return s.FetchPage(ctx, term, page)
	}, pager.MaxPages(s.cfg.MaxPages))
}

// FetchPage loads a single zero-based page of results for term
func (s *SuperJob) FetchPage(ctx context.Context, term string, page int) (models.Page, error) {
	headers := http.Header{}
	headers.Set("X-Api-App-Id", s.cfg.APIKey)

	body, err := client.GetJSON(ctx, s.httpClient, s.searchURL(), s.buildQuery(term, page), headers)
	if err != nil {
		return models.Page{}, err
	}

	result, err := models.ParsePage(body, page, superJobLayout)
	if err != nil {
		return models.Page{}, fmt.Errorf("page %d: %w", page, err)
	}

	return result, nil
}

func (s *SuperJob) searchURL() string {
	return strings.TrimRight(s.cfg.BaseURL, "/") + "/2.0/vacancies/"
}

func (s *SuperJob) buildQuery(term string, page int) url.Values {
	query := url.Values{}
	query.Set("keyword", term)
	query.Set("page", strconv.Itoa(page))
	query.Set("count", strconv.Itoa(s.cfg.PerPage))

	if s.cfg.Town > 0 {
		query.Set("town", strconv.Itoa(s.cfg.Town))
	}
	if s.cfg.PeriodDays > 0 {
		query.Set("period", strconv.Itoa(s.cfg.PeriodDays))
	}
	for _, keyword := range s.cfg.Keywords {
		query.Add("keywords", keyword)
	}

	return query
}
