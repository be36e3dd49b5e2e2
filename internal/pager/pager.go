// Package pager walks a provider's paginated search results one page at a time.
package pager

import (
	"context"

	"github.com/fr4nk3nst1ner/salarystats/internal/models"
)

// FetchFunc loads a single zero-based page
type FetchFunc func(ctx context.Context, page int) (models.Page, error)

// DoneFunc reports whether the page just fetched is the last one
type DoneFunc func(page int, p models.Page) bool

// UntilExhausted stops on the last page the provider reports.
// A response with no pages at all is treated as the last page.
func UntilExhausted() DoneFunc {
	return func(page int, p models.Page) bool {
		return page >= p.Pages-1
	}
}

// MaxPages stops after a fixed number of pages regardless of what the
// provider reports
func MaxPages(n int) DoneFunc {
	return func(page int, _ models.Page) bool {
		return page >= n-1
	}
}

// Pager is a finite sequence of pages. It cannot be rewound: once the last
// page or an error has been returned, Next keeps returning false.
type Pager struct {
	fetch FetchFunc
	done  DoneFunc
	next  int
	ended bool
}

// New creates a pager starting at page zero
func New(fetch FetchFunc, done DoneFunc) *Pager {
	return &Pager{fetch: fetch, done: done}
}

// Next fetches the following page. The boolean is false when the sequence
// is over, in which case the page is empty.
func (p *Pager) Next(ctx context.Context) (models.Page, bool, error) {
	if p.ended {
		return models.Page{}, false, nil
	}

	number := p.next
	page, err := p.fetch(ctx, number)
	if err != nil {
		p.ended = true
		return models.Page{}, false, err
	}

	p.next++
	if p.done(number, page) {
		p.ended = true
	}

	return page, true, nil
}

// Fetched returns how many pages have been requested so far
func (p *Pager) Fetched() int {
	return p.next
}
