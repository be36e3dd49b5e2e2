// Package stats reduces a provider's search results to per-language salary
// statistics.
package stats

import (
	"context"
	"fmt"

	"github.com/fr4nk3nst1ner/salarystats/internal/logger"
	"github.com/fr4nk3nst1ner/salarystats/internal/models"
	"github.com/fr4nk3nst1ner/salarystats/internal/pager"
	"github.com/fr4nk3nst1ner/salarystats/internal/salary"
)

// Source is a job board that can be searched term by term
type Source interface {
	Name() string
	// Pages returns a fresh page sequence for a search term
	Pages(term string) *pager.Pager
	Normalizer() salary.Normalizer
	// MinFound is the smallest found-count worth reporting; zero keeps every term
	MinFound() int
}

// Aggregator walks every term of a source sequentially
type Aggregator struct {
	// OnTerm is called once per term after it has been processed or skipped
	OnTerm func(term string)
}

// Collect returns one stat per term in input order. Terms below the
// source's MinFound are left out. Any fetch error aborts the whole run.
func (a *Aggregator) Collect(ctx context.Context, src Source, terms []string) ([]models.LanguageStat, error) {
	logger.Section(src.Name())

	stats := make([]models.LanguageStat, 0, len(terms))
	for _, term := range terms {
		stat, keep, err := a.collectTerm(ctx, src, term)
		if err != nil {
			return nil, fmt.Errorf("%s: %q: %w", src.Name(), term, err)
		}
		if a.OnTerm != nil {
			a.OnTerm(term)
		}
		if keep {
			stats = append(stats, stat)
		}
	}

	return stats, nil
}

func (a *Aggregator) collectTerm(ctx context.Context, src Source, term string) (models.LanguageStat, bool, error) {
	pages := src.Pages(term)
	normalizer := src.Normalizer()

	first, ok, err := pages.Next(ctx)
	if err != nil {
		return models.LanguageStat{}, false, err
	}
	if !ok {
		return models.LanguageStat{Language: term}, true, nil
	}

	found := first.Found
	if minFound := src.MinFound(); minFound > 0 && found < minFound {
		logger.Debug("Skipping %s: %d vacancies found, need at least %d", term, found, minFound)
		return models.LanguageStat{}, false, nil
	}

	var sum, count int
	page := first
	for ok {
		for _, vacancy := range page.Items {
			estimate, usable := normalizer.Normalize(vacancy)
			if !usable {
				continue
			}
			sum += estimate
			count++
		}

		page, ok, err = pages.Next(ctx)
		if err != nil {
			return models.LanguageStat{}, false, err
		}
	}

	stat := models.LanguageStat{
		Language:      term,
		Found:         found,
		Processed:     count,
		AverageSalary: Average(sum, count),
	}
	logger.Debug("%s: found=%d processed=%d average=%d pages=%d",
		term, stat.Found, stat.Processed, stat.AverageSalary, pages.Fetched())

	return stat, true, nil
}

// Average is the floored mean, or zero when nothing was counted
func Average(sum, count int) int {
	if count == 0 {
		return 0
	}
	return sum / count
}
