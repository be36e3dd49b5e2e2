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

// headHunterLayout describes the HH.ru search response:
// {"items": [...], "found": 1234, "pages": 13, "page": 0, "per_page": 100}
var headHunterLayout = models.PageLayout{
	FoundPath: "found",
	PagesPath: "pages",
	ItemsPath: "items",
}

// HeadHunter searches vacancies through the public HH.ru API
type HeadHunter struct {
	cfg        config.HeadHunterConfig
	httpClient *http.Client
	userAgent  string
	normalizer salary.HeadHunterNormalizer
}

// NewHeadHunter creates a HeadHunter source. HH.ru rejects requests without
// a User-Agent, so userAgent should never be empty.
func NewHeadHunter(cfg config.HeadHunterConfig, httpClient *http.Client, userAgent string) *HeadHunter {
	return &HeadHunter{
		cfg:        cfg,
		httpClient: httpClient,
		userAgent:  userAgent,
		normalizer: salary.HeadHunterNormalizer{
			Currency:   cfg.Currency,
			GrossToNet: cfg.GrossToNet,
		},
	}
}

func (h *HeadHunter) Name() string {
	return "HeadHunter"
}

// Title is the heading of the rendered table
func (h *HeadHunter) Title() string {
	return h.cfg.Title
}

func (h *HeadHunter) MinFound() int {
	return h.cfg.MinFound
}

func (h *HeadHunter) Normalizer() salary.Normalizer {
	return h.normalizer
}

// Pages walks the result set until the last page HH.ru reports
func (h *HeadHunter) Pages(term string) *pager.Pager {
	return pager.New(func(ctx context.Context, page int) (models.Page, error) {
		return h.FetchPage(ctx, term, page)
	}, pager.UntilExhausted())
}

// FetchPage loads a single zero-based page of results for term
func (h *HeadHunter) FetchPage(ctx context.Context, term string, page int) (models.Page, error) {
	headers := http.Header{}
	headers.Set("User-Agent", h.userAgent)

	body, err := client.GetJSON(ctx, h.httpClient, h.searchURL(), h.buildQuery(term, page), headers)
	if err != nil {
		return models.Page{}, err
	}

	result, err := models.ParsePage(body, page, headHunterLayout)
	if err != nil {
		return models.Page{}, fmt.Errorf("page %d: %w", page, err)
	}

	return result, nil
}

func (h *HeadHunter) searchURL() string {
	return strings.TrimRight(h.cfg.BaseURL, "/") + "/vacancies"
}

func (h *HeadHunter) buildQuery(term string, page int) url.Values {
	query := url.Values{}
	query.Set("text", term)
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(h.cfg.PerPage))

	if h.cfg.ProfessionalRole > 0 {
		query.Set("professional_role", strconv.Itoa(h.cfg.ProfessionalRole))
	}
	if h.cfg.Area > 0 {
		query.Set("area", strconv.Itoa(h.cfg.Area))
	}
	if h.cfg.PeriodDays > 0 {
		query.Set("period", strconv.Itoa(h.cfg.PeriodDays))
	}

	return query
}
