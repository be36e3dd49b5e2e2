package models

import (
	"errors"

	"github.com/tidwall/gjson"
)

// ErrMalformedPage is returned when a provider response is not valid JSON
var ErrMalformedPage = errors.New("malformed page")

// Vacancy is a single provider record. Providers disagree on where salary
// data lives, so the record stays raw and is read by path.
type Vacancy struct {
	raw gjson.Result
}

// NewVacancy wraps an already parsed JSON value
func NewVacancy(raw gjson.Result) Vacancy {
	return Vacancy{raw: raw}
}

// ParseVacancy parses a JSON object into a Vacancy
func ParseVacancy(json string) Vacancy {
	return Vacancy{raw: gjson.Parse(json)}
}

// Get returns the value at a gjson path, e.g. "salary.from"
func (v Vacancy) Get(path string) gjson.Result {
	return v.raw.Get(path)
}

// Page is one unit of a paginated search result
type Page struct {
	Number int       `json:"number"`
	Found  int       `json:"found"`
	Pages  int       `json:"pages"` // zero when the provider does not report it
	Items  []Vacancy `json:"-"`
}

// PageLayout names the JSON paths a provider uses for page metadata
type PageLayout struct {
	FoundPath string
	PagesPath string
	ItemsPath string
}

// ParsePage decodes a raw provider response using the given layout
func ParsePage(body []byte, number int, layout PageLayout) (Page, error) {
	if !gjson.ValidBytes(body) {
		return Page{}, ErrMalformedPage
	}
	doc := gjson.ParseBytes(body)

	page := Page{
		Number: number,
		Found:  int(doc.Get(layout.FoundPath).Int()),
	}
	if layout.PagesPath != "" {
		page.Pages = int(doc.Get(layout.PagesPath).Int())
	}

	items := doc.Get(layout.ItemsPath).Array()
	page.Items = make([]Vacancy, 0, len(items))
	for _, item := range items {
		page.Items = append(page.Items, NewVacancy(item))
	}

	return page, nil
}

// LanguageStat is the per-language summary for one provider
type LanguageStat struct {
	Language      string `json:"language"`
	Found         int    `json:"found"`
	Processed     int    `json:"processed"`
	AverageSalary int    `json:"average_salary"`
}
