package scraper

import (
	"net/http"

	"github.com/fr4nk3nst1ner/salarystats/internal/config"
	"github.com/fr4nk3nst1ner/salarystats/internal/stats"
)

// Ensure both providers implement the aggregation source.
var (
	_ stats.Source = (*HeadHunter)(nil)
	_ stats.Source = (*SuperJob)(nil)
)

// Provider is a source that also knows how its report is titled
type Provider interface {
	stats.Source
	Title() string
}

// EnabledProviders returns the configured providers in report order:
// HeadHunter first, then SuperJob
func EnabledProviders(cfg *config.Config, httpClient *http.Client) []Provider {
	var providers []Provider
	if cfg.HeadHunter.Enabled {
		providers = append(providers, NewHeadHunter(cfg.HeadHunter, httpClient, cfg.HTTP.UserAgent))
	}
	if cfg.SuperJob.Enabled {
		providers = append(providers, NewSuperJob(cfg.SuperJob, httpClient))
	}
	return providers
}
